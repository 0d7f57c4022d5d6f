package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestIssueAndValidate(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	terminalID := uuid.New()
	employeeID := uuid.New()

	tok, err := m.Issue(terminalID, &employeeID, "Linh", "manager")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := m.Validate(tok)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.TerminalID != terminalID {
		t.Errorf("terminal id: expected %s, got %s", terminalID, claims.TerminalID)
	}
	if claims.EmployeeID == nil || *claims.EmployeeID != employeeID {
		t.Errorf("employee id: expected %s, got %v", employeeID, claims.EmployeeID)
	}
	if claims.Employee != "Linh" || claims.Role != "manager" {
		t.Errorf("unexpected employee claims: %q / %q", claims.Employee, claims.Role)
	}
}

func TestValidateWithoutEmployee(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)

	tok, err := m.Issue(uuid.New(), nil, "", "")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := m.Validate(tok)
	if err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if claims.EmployeeID != nil {
		t.Errorf("expected nil employee id, got %v", claims.EmployeeID)
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewSessionManager("test-secret", -time.Minute)

	tok, err := m.Issue(uuid.New(), nil, "", "")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := m.Validate(tok); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	m := NewSessionManager("test-secret", time.Hour)
	other := NewSessionManager("other-secret", time.Hour)

	tok, err := m.Issue(uuid.New(), nil, "", "")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := other.Validate(tok); err == nil {
		t.Fatal("expected token signed with a different secret to be rejected")
	}
}

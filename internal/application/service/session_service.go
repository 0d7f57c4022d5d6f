package service

import (
	"context"
	"crypto/subtle"

	"github.com/google/uuid"
	"github.com/phamtrung/pos-api/internal/domain/entity"
	"github.com/phamtrung/pos-api/internal/domain/repository"
	"github.com/phamtrung/pos-api/pkg/apperror"
	"github.com/phamtrung/pos-api/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

// SessionService opens till sessions. The store PIN is the single gate for a
// terminal; an employee passcode on top of it identifies the cashier on
// receipts but is optional.
type SessionService struct {
	settingsRepo repository.SettingsRepository
	employeeRepo repository.EmployeeRepository
	sessions     *token.SessionManager
}

// NewSessionService creates a new session service
func NewSessionService(
	settingsRepo repository.SettingsRepository,
	employeeRepo repository.EmployeeRepository,
	sessions *token.SessionManager,
) *SessionService {
	return &SessionService{
		settingsRepo: settingsRepo,
		employeeRepo: employeeRepo,
		sessions:     sessions,
	}
}

// OpenSessionInput represents the open session input
type OpenSessionInput struct {
	PIN        string
	TerminalID *uuid.UUID
	EmployeeID *uuid.UUID
	Passcode   string
}

// Session is an opened till session
type Session struct {
	Token      string           `json:"token"`
	TerminalID uuid.UUID        `json:"terminal_id"`
	Employee   *entity.Employee `json:"employee,omitempty"`
}

// OpenSession verifies the store PIN and issues a session token. A wrong PIN
// is the only failure a cashier should ever see here; everything else means
// the store is not set up yet.
func (s *SessionService) OpenSession(ctx context.Context, input *OpenSessionInput) (*Session, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		return nil, apperror.NewAppError(500, "Store is not configured")
	}

	if subtle.ConstantTimeCompare([]byte(settings.PinCode), []byte(input.PIN)) != 1 {
		return nil, apperror.ErrInvalidPIN
	}

	terminalID := uuid.New()
	if input.TerminalID != nil && *input.TerminalID != uuid.Nil {
		terminalID = *input.TerminalID
	}

	var employee *entity.Employee
	var employeeID *uuid.UUID
	employeeName := ""
	role := ""

	if input.EmployeeID != nil {
		employee, err = s.employeeRepo.GetByID(ctx, *input.EmployeeID)
		if err != nil {
			return nil, err
		}
		if employee == nil || !employee.IsActive {
			return nil, apperror.NewNotFoundError("Employee")
		}
		if employee.PasscodeHash != "" {
			if err := bcrypt.CompareHashAndPassword([]byte(employee.PasscodeHash), []byte(input.Passcode)); err != nil {
				return nil, apperror.NewAppError(401, "Incorrect passcode")
			}
		}
		employeeID = &employee.ID
		employeeName = employee.Name
		role = employee.Role
	}

	tok, err := s.sessions.Issue(terminalID, employeeID, employeeName, role)
	if err != nil {
		return nil, err
	}

	return &Session{
		Token:      tok,
		TerminalID: terminalID,
		Employee:   employee,
	}, nil
}

// VerifySession validates a session token and returns its claims
func (s *SessionService) VerifySession(tokenString string) (*token.SessionClaims, error) {
	return s.sessions.Validate(tokenString)
}

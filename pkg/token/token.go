package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims represents the claims in a terminal session token.
// A session is opened by a successful store-PIN check; the employee is
// optional (some stores run a shared till).
type SessionClaims struct {
	TerminalID uuid.UUID  `json:"terminal_id"`
	EmployeeID *uuid.UUID `json:"employee_id,omitempty"`
	Employee   string     `json:"employee,omitempty"`
	Role       string     `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// SessionManager issues and validates terminal session tokens.
type SessionManager struct {
	secretKey []byte
	expiry    time.Duration
}

// NewSessionManager creates a new session manager.
func NewSessionManager(secret string, expiry time.Duration) *SessionManager {
	return &SessionManager{
		secretKey: []byte(secret),
		expiry:    expiry,
	}
}

// Issue generates a session token for a terminal.
func (m *SessionManager) Issue(terminalID uuid.UUID, employeeID *uuid.UUID, employee, role string) (string, error) {
	claims := &SessionClaims{
		TerminalID: terminalID,
		EmployeeID: employeeID,
		Employee:   employee,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "pos-api",
			Subject:   terminalID.String(),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secretKey)
}

// Validate parses a session token and returns its claims.
func (m *SessionManager) Validate(tokenString string) (*SessionClaims, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := tok.Claims.(*SessionClaims)
	if !ok || !tok.Valid {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}

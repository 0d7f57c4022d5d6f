package request

import "github.com/google/uuid"

// OpenSessionRequest represents a till unlock request
type OpenSessionRequest struct {
	PIN        string     `json:"pin" binding:"required,min=4,max=12"`
	TerminalID *uuid.UUID `json:"terminal_id"`
	EmployeeID *uuid.UUID `json:"employee_id"`
	Passcode   string     `json:"passcode"`
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/phamtrung/pos-api/internal/application/service"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/request"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/response"
)

// SessionHandler handles till session HTTP requests
type SessionHandler struct {
	sessionService *service.SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService *service.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

// Open handles unlocking a terminal with the store PIN
func (h *SessionHandler) Open(c *gin.Context) {
	var req request.OpenSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	session, err := h.sessionService.OpenSession(c.Request.Context(), &service.OpenSessionInput{
		PIN:        req.PIN,
		TerminalID: req.TerminalID,
		EmployeeID: req.EmployeeID,
		Passcode:   req.Passcode,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Session opened successfully", session)
}

// Verify reports whether the presented session token is still valid. The
// session middleware has already validated it by the time we get here.
func (h *SessionHandler) Verify(c *gin.Context) {
	response.OK(c, "Session is valid", gin.H{
		"terminal_id":   GetTerminalID(c),
		"employee_id":   GetEmployeeID(c),
		"employee_name": GetEmployeeName(c),
		"employee_role": GetEmployeeRole(c),
	})
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetTerminalID extracts the terminal ID from the Gin context
func GetTerminalID(c *gin.Context) *uuid.UUID {
	terminalVal, exists := c.Get("terminal_id")
	if !exists {
		return nil
	}
	terminalID, ok := terminalVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &terminalID
}

// GetEmployeeID extracts the employee ID from the Gin context, if an
// employee identified themselves when the session was opened
func GetEmployeeID(c *gin.Context) *uuid.UUID {
	employeeVal, exists := c.Get("employee_id")
	if !exists {
		return nil
	}
	employeeID, ok := employeeVal.(uuid.UUID)
	if !ok {
		return nil
	}
	return &employeeID
}

// GetEmployeeName extracts the employee display name from the Gin context
func GetEmployeeName(c *gin.Context) string {
	name, exists := c.Get("employee_name")
	if !exists {
		return ""
	}
	return name.(string)
}

// GetEmployeeRole extracts the employee role from the Gin context
func GetEmployeeRole(c *gin.Context) string {
	role, exists := c.Get("employee_role")
	if !exists {
		return ""
	}
	return role.(string)
}

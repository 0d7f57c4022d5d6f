package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/phamtrung/pos-api/internal/presentation/http/dto/response"
	"github.com/phamtrung/pos-api/pkg/token"
)

// SessionMiddleware validates the till session token and puts its claims in
// the request context
func SessionMiddleware(sessions *token.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := sessions.Validate(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired session")
			c.Abort()
			return
		}

		c.Set("terminal_id", claims.TerminalID)
		if claims.EmployeeID != nil {
			c.Set("employee_id", *claims.EmployeeID)
		}
		c.Set("employee_name", claims.Employee)
		c.Set("employee_role", claims.Role)

		c.Next()
	}
}

// RequireRole restricts an endpoint to sessions opened with one of the given
// employee roles. Sessions without an employee are plain till sessions and
// carry no role.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("employee_role")
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		response.Forbidden(c, "Insufficient role privileges")
		c.Abort()
	}
}

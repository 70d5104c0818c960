package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/planit-app/planit-api/internal/auth"
	apperrors "github.com/planit-app/planit-api/internal/errors"
	"github.com/planit-app/planit-api/internal/models"
)

const (
	contextKeyEmail = "userEmail"
	contextKeyRole  = "userRole"
)

// RequireAuth verifies the bearer token and stores the caller's email and
// role in the request context. Services receive identity from here and
// never parse tokens themselves.
func RequireAuth(tokens auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			apperrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			apperrors.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set(contextKeyEmail, claims.Email)
		c.Set(contextKeyRole, claims.Role)
		c.Next()
	}
}

// GetCaller retrieves the verified caller identity from the context. The
// role is the zero value when the request carried no recognizable
// credentials; policies turn that into "credentials required".
func GetCaller(c *gin.Context) (email string, role models.Role) {
	if v, exists := c.Get(contextKeyEmail); exists {
		email, _ = v.(string)
	}
	if v, exists := c.Get(contextKeyRole); exists {
		role, _ = v.(models.Role)
	}
	return email, role
}

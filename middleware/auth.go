// Package middleware provides the gin middleware chain: session auth,
// request IDs and request logging.
package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ecomida/ecomida/logging/logger"
	"github.com/ecomida/ecomida/net/resp"
	"github.com/ecomida/ecomida/security/jwt"
	"github.com/ecomida/ecomida/service"
	"github.com/ecomida/ecomida/structs"
)

const currentUserKey = "current_user"

// AuthRequired guards a route behind a valid session token. The header
// is accepted with or without the Bearer prefix.
func AuthRequired(authService *service.AuthService, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			resp.Fail(c.Writer, resp.UnAuthorized("Token não fornecido"))
			c.Abort()
			return
		}

		user, err := authService.ResolveSessionUser(c.Request.Context(), authHeader)
		if err != nil {
			logger.Warn(c.Request.Context(), "session rejected", "error", err)
			resp.Fail(c.Writer, resp.UnAuthorized(sessionErrorMessage(err)))
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

func sessionErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "Token expirado"
	case errors.Is(err, structs.ErrUserNotFound):
		return "Usuário não encontrado"
	default:
		return "Token inválido"
	}
}

// GetCurrentUser retrieves the authenticated user from the context.
func GetCurrentUser(c *gin.Context) (*structs.User, bool) {
	v, exists := c.Get(currentUserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*structs.User)
	return user, ok
}

package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"mycontacts/internal/apperr"
	"mycontacts/internal/utils"
)

// AuthUserKey is the context key the validated token identity is stored
// under for downstream handlers.
const AuthUserKey = "authUser"

// JWTAuthMiddleware validates the bearer token and attaches its user
// claims to the request context. Failures are forwarded to the error
// middleware as authentication errors.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			abortUnauthorized(c, "Invalid authorization header format")
			return
		}

		claims, err := jwtUtil.ValidateToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "Invalid or expired token")
			return
		}

		c.Set(AuthUserKey, claims.User)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	_ = c.Error(apperr.New(apperr.KindAuthentication, message))
	c.Abort()
}

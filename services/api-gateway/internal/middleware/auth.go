package middleware

import (
	"net/http"
	"strings"

	"courseplatform/pkg/authpb"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey = "userId"
	RoleKey   = "role"
)

func bearer(c *gin.Context) (string, bool) {
	parts := strings.Split(c.GetHeader("Authorization"), " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func abort(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, gin.H{"status": "error", "message": msg})
}

// AuthMiddleware пропускает только запросы с валидным access-токеном и кладёт в контекст userId и role.
func AuthMiddleware(authClient authpb.AuthServiceClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			abort(c, http.StatusUnauthorized, "Authorization header is required")
			return
		}
		accessToken, ok := bearer(c)
		if !ok {
			abort(c, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		res, err := authClient.Validate(c, &authpb.ValidateRequest{AccessToken: accessToken})
		if err != nil {
			abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		c.Set(UserIDKey, res.UserId)
		c.Set(RoleKey, res.Role)
		c.Next()
	}
}

// OptionalAuth - для публичных страниц: гость проходит без userId, битый токен тоже не мешает.
func OptionalAuth(authClient authpb.AuthServiceClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if accessToken, ok := bearer(c); ok {
			if res, err := authClient.Validate(c, &authpb.ValidateRequest{AccessToken: accessToken}); err == nil {
				c.Set(UserIDKey, res.UserId)
				c.Set(RoleKey, res.Role)
			}
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(RoleKey) != "admin" {
			abort(c, http.StatusForbidden, "Access denied: admins only")
			return
		}
		c.Next()
	}
}

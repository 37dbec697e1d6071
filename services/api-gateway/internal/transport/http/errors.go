package handlers

import (
	"net/http"

	"courseplatform/services/api-gateway/internal/middleware"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func fail(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"status": "error", "message": msg})
}

// respondError переводит ответ сервиса в HTTP. Текст внутренних ошибок наружу не уходит.
func respondError(c *gin.Context, err error) {
	st, ok := status.FromError(err)
	if !ok {
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, "internal error")
		return
	}

	switch st.Code() {
	case codes.InvalidArgument:
		fail(c, http.StatusBadRequest, st.Message())
	case codes.NotFound:
		fail(c, http.StatusNotFound, st.Message())
	case codes.AlreadyExists:
		fail(c, http.StatusConflict, st.Message())
	case codes.Unauthenticated:
		fail(c, http.StatusUnauthorized, st.Message())
	case codes.PermissionDenied:
		fail(c, http.StatusForbidden, st.Message())
	case codes.Unavailable, codes.DeadlineExceeded:
		_ = c.Error(err)
		fail(c, http.StatusServiceUnavailable, "service unavailable")
	default:
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, "internal error")
	}
}

func identity(c *gin.Context) (userID, role string) {
	return c.GetString(middleware.UserIDKey), c.GetString(middleware.RoleKey)
}

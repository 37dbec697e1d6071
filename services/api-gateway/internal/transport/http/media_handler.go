package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"courseplatform/services/api-gateway/internal/storage"

	"github.com/gin-gonic/gin"
)

// MaxUploadSize - 5 ГБ, предел одиночного PUT в S3.
const MaxUploadSize int64 = 5 << 30

type MediaStore interface {
	PresignUpload(ctx context.Context, fileName, contentType string, size int64) (*storage.Upload, error)
	Delete(ctx context.Context, key string) error
	PublicURL(key string) string
}

type MediaHandler struct {
	store MediaStore
}

// NewMediaHandler с nil-хранилищем отвечает 503 на все запросы.
func NewMediaHandler(store MediaStore) *MediaHandler {
	return &MediaHandler{store: store}
}

type uploadReq struct {
	FileName    string `json:"fileName" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	Size        int64  `json:"size" binding:"required,gt=0"`
	IsImage     bool   `json:"isImage"`
}

func (h *MediaHandler) available(c *gin.Context) bool {
	if h.store == nil {
		fail(c, http.StatusServiceUnavailable, "media storage is not configured")
		return false
	}
	return true
}

// POST /api/v1/admin/media/upload-url
func (h *MediaHandler) UploadURL(c *gin.Context) {
	if !h.available(c) {
		return
	}
	var req uploadReq
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.Size > MaxUploadSize {
		fail(c, http.StatusBadRequest, "file is too large")
		return
	}
	if req.IsImage && !strings.HasPrefix(req.ContentType, "image/") {
		fail(c, http.StatusBadRequest, "content type must be an image")
		return
	}

	up, err := h.store.PresignUpload(c, req.FileName, req.ContentType, req.Size)
	if errors.Is(err, storage.ErrInvalidFileName) {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, "failed to generate upload url")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"presignedUrl": up.URL,
		"key":          up.Key,
		"publicUrl":    h.store.PublicURL(up.Key),
	})
}

// DELETE /api/v1/admin/media/:key
func (h *MediaHandler) Delete(c *gin.Context) {
	if !h.available(c) {
		return
	}
	key := c.Param("key")
	if key == "" {
		fail(c, http.StatusBadRequest, "missing or invalid object key")
		return
	}

	if err := h.store.Delete(c, key); err != nil {
		_ = c.Error(err)
		fail(c, http.StatusInternalServerError, "failed to delete file")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "File deleted successfully"})
}

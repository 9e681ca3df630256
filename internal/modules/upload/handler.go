package upload

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"craftconnect/internal/domain"
)

// Handler handles multipart file uploads. Any authenticated user can
// upload; ownership is tracked by user_id.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/upload", h.Upload)
}

// Upload accepts multipart form fields "file" and "type" and responds
// with the public URL of the stored file.
func (h *Handler) Upload(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "no file provided"})
		return
	}

	kind := domain.FileKind(c.PostForm("type"))

	upload, err := h.service.Upload(c.Request.Context(), userID, kind, fileHeader)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidKind),
			errors.Is(err, ErrEmptyFile),
			errors.Is(err, ErrInvalidMimeType):
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, ErrFileTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"success": false, "error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "upload failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url": upload.URL,
	})
}

package storage

import (
	"fmt"
	"net/http"
	"path"
	"time"

	"github.com/gin-gonic/gin"
)

// Handler exposes admin media upload and presigned-URL endpoints.
type Handler struct {
	media *MediaStorage
}

func NewHandler(media *MediaStorage) *Handler {
	return &Handler{media: media}
}

func (h *Handler) Register(r gin.IRouter) {
	r.POST("", h.upload)
	r.GET("/:key/url", h.presign)
}

func (h *Handler) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing file field"})
		return
	}
	src, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer src.Close()

	key := fmt.Sprintf("%d-%s", time.Now().UnixNano(), path.Base(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if err := h.media.Upload(c.Request.Context(), key, src, file.Size, contentType); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"key": key})
}

func (h *Handler) presign(c *gin.Context) {
	u, err := h.media.PresignedURL(c.Request.Context(), c.Param("key"), time.Hour)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "presign failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": u})
}

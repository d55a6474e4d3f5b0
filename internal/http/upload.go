package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-server/internal/storage"
)

// multipart framing allowance on top of the file size limit
const multipartOverhead = 1 << 20

func (h *Handler) uploadFile(c *gin.Context) {
	if h.storage == nil {
		respondError(c, http.StatusServiceUnavailable, "存储未配置")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.upload.MaxBytes+multipartOverhead)
	fh, err := c.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respondError(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("文件不能超过 %d 字节", h.upload.MaxBytes))
			return
		}
		h.writeError(c, ValidationErrors{{Field: "file", Reason: "is required"}})
		return
	}
	if fh.Size > h.upload.MaxBytes {
		respondError(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("文件不能超过 %d 字节", h.upload.MaxBytes))
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.writeError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer f.Close()

	key := storage.ObjectKey(h.upload.KeyPrefix, fh.Filename)
	url, err := h.storage.Upload(c.Request.Context(), storage.UploadInput{
		Key:         key,
		Body:        f,
		ContentType: fh.Header.Get("Content-Type"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.logger.WithField("user_id", identity(c).UserID).WithField("key", key).Info("file uploaded")
	respondOK(c, url)
}

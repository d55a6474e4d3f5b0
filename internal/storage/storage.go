package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// UploadInput describes a single object to store.
type UploadInput struct {
	Key         string
	Body        io.Reader
	ContentType string
}

// Service stores uploaded files in remote object storage and reports where
// they can be fetched from.
type Service interface {
	Upload(ctx context.Context, in UploadInput) (string, error)
}

// ObjectKey builds "<prefix>/<uuid><ext>" for an uploaded file name. The
// extension is lower-cased; the rest of the original name is discarded.
func ObjectKey(prefix, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	name := uuid.NewString() + ext

	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return name
	}
	return prefix + "/" + name
}

package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
)

// FileStore stores uploaded binaries by opaque path. Paths are recorded on
// value rows and released when the value is replaced or deleted.
type FileStore interface {
	Save(ctx context.Context, objectName, contentType string, content io.Reader, size int64) (string, error)
	Delete(ctx context.Context, path string) error
}

// ObjectName builds a collision-free object name for one uploaded file.
func ObjectName(formID uint, fieldCode, filename string) string {
	return fmt.Sprintf("responses/%d/%s/%s-%s", formID, fieldCode, uuid.New().String(), filename)
}

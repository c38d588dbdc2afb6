// internal/app/store/files/upload.go
package filestore

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dalemusser/tilehub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/storage"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Upload stores a content-area file: bytes go to the storage backend under a
// unique dated path, metadata goes into this store. The path is generated as
// content/YYYY/MM/uuid-filename so repeated uploads of the same filename
// never collide.
func (s *Store) Upload(ctx context.Context, backend storage.Store, contextID primitive.ObjectID, filename string, reader io.Reader, size int64, mimeType string) (models.StoredFile, error) {
	now := time.Now().UTC()
	dateDir := fmt.Sprintf("content/%04d/%02d", now.Year(), now.Month())
	uniqueName := fmt.Sprintf("%s-%s", uuid.New().String()[:8], sanitizeFilename(filename))
	path := filepath.ToSlash(filepath.Join(dateDir, uniqueName))

	opts := &storage.PutOptions{
		ContentType: mimeType,
	}
	if err := backend.Put(ctx, path, reader, opts); err != nil {
		return models.StoredFile{}, fmt.Errorf("upload file bytes: %w", err)
	}

	return s.Add(ctx, models.StoredFile{
		ContextID:   contextID,
		FileName:    filename,
		Size:        size,
		MimeType:    mimeType,
		StoragePath: path,
	})
}

// sanitizeFilename replaces characters that could be problematic in storage
// paths and truncates overlong names while preserving the extension.
func sanitizeFilename(filename string) string {
	filename = filepath.Base(filename)

	result := make([]byte, 0, len(filename))
	for i := 0; i < len(filename); i++ {
		c := filename[i]
		if isAllowedFilenameChar(c) {
			result = append(result, c)
		} else {
			result = append(result, '_')
		}
	}

	if len(result) == 0 {
		return "file"
	}
	if len(result) > 100 {
		ext := filepath.Ext(string(result))
		if len(ext) > 0 && len(ext) < 10 {
			result = append(result[:100-len(ext)], ext...)
		} else {
			result = result[:100]
		}
	}

	return string(result)
}

func isAllowedFilenameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') ||
		c == '-' || c == '_' || c == '.'
}

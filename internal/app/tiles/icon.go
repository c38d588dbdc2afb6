// internal/app/tiles/icon.go
package tiles

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dalemusser/tilehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mimeIcons maps known MIME types to short icon type tokens.
var mimeIcons = map[string]string{
	"application/pdf":    "pdf",
	"application/zip":    "zip",
	"application/msword": "doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": "docx",
	"application/vnd.oasis.opendocument.text":                                 "odf",
	"application/vnd.ms-excel":                                                "xls",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       "xlsx",
	"application/vnd.oasis.opendocument.spreadsheet":                          "ods",
	"application/vnd.ms-powerpoint":                                           "ppt",
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": "pptx",
	"application/vnd.oasis.opendocument.presentation":                           "odp",
	"text/html":  "html",
	"text/plain": "txt",
	"image/jpeg": "jpeg",
	"image/png":  "png",
	"image/gif":  "gif",
	"image/svg+xml": "svg",
	"audio/mpeg":    "mp3",
	"video/mp4":     "mp4",
}

// iconAliases collapses office-suite variants to a canonical 3-letter token
// so the UI needs one icon per document family, not one per container format.
var iconAliases = map[string]string{
	"docx": "doc",
	"odf":  "doc",
	"xlsx": "xls",
	"ods":  "xls",
	"pptx": "ppt",
	"odp":  "ppt",
}

// ModResourceFile returns the first usable file in a resource module's
// content area: nonzero size, not the "." directory placeholder, and a
// recorded MIME type. Returns nil when the area holds no usable file.
// First-match order follows the content area's enumeration order.
func (s *Service) ModResourceFile(ctx context.Context, contextID primitive.ObjectID) (*models.StoredFile, error) {
	files, err := s.Files.ListFiles(ctx, contextID)
	if err != nil {
		return nil, fmt.Errorf("list files for context %s: %w", contextID.Hex(), err)
	}
	for i := range files {
		f := &files[i]
		if f.Size == 0 || f.IsDirectoryPlaceholder() {
			continue
		}
		if f.MimeType == "" {
			continue
		}
		return f, nil
	}
	return nil, nil
}

// ModResourceIconName classifies the icon for a resource module from its
// first usable file. The MIME type decides when recognized; otherwise the
// filename extension is used. Office-suite variants normalize to their
// 3-letter family token. Returns "" when the module has no usable file.
func (s *Service) ModResourceIconName(ctx context.Context, contextID primitive.ObjectID) (string, error) {
	file, err := s.ModResourceFile(ctx, contextID)
	if err != nil {
		return "", err
	}
	if file == nil {
		return "", nil
	}

	icon, ok := mimeIcons[file.MimeType]
	if !ok {
		icon = strings.ToLower(strings.TrimPrefix(filepath.Ext(file.FileName), "."))
	}
	if alias, ok := iconAliases[icon]; ok {
		icon = alias
	}
	return icon, nil
}

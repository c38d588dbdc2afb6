// internal/domain/models/storedfile.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StoredFile is the metadata for one file in a module's content area.
// File bytes live in the storage backend under StoragePath; this record is
// what the tile layer enumerates when classifying resource icons.
type StoredFile struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ContextID primitive.ObjectID `bson:"context_id" json:"context_id"`

	FileName    string `bson:"file_name" json:"file_name"` // "." for directory placeholder entries
	Size        int64  `bson:"size" json:"size"`
	MimeType    string `bson:"mime_type,omitempty" json:"mime_type,omitempty"`
	StoragePath string `bson:"storage_path,omitempty" json:"storage_path,omitempty"`

	// SortOrder preserves the content area's enumeration order.
	SortOrder int `bson:"sort_order" json:"sort_order"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsDirectoryPlaceholder reports whether this entry is the "." marker that
// content areas use to represent an empty directory.
func (f *StoredFile) IsDirectoryPlaceholder() bool {
	return f.FileName == "."
}

// internal/domain/models/pluginsetting.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Well-known setting scopes. Plugin-level settings use PluginScope; theme
// settings (brand colour etc.) are stored under ThemeScope.
const (
	PluginScope = "tiles"
	ThemeScope  = "theme"
	CoreScope   = "core"
)

// PluginSetting is one string-valued configuration entry, scoped to a plugin
// or theme. Settings are recomputed by readers on every call; there is no
// caching layer, so edits take effect on the next request.
type PluginSetting struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Plugin string             `bson:"plugin" json:"plugin"`
	Name   string             `bson:"name" json:"name"`
	Value  string             `bson:"value" json:"value"`

	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

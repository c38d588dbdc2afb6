// internal/domain/models/coursemodule.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Module type tokens. ModType identifies the activity plugin that owns a
// course module ("resource", "page", "url", ...). For "resource" modules the
// ResourceType field further classifies the attached file ("pdf", "html", ...).
const (
	ModTypeResource = "resource"
	ModTypePage     = "page"
	ModTypeURL      = "url"
)

// URL display modes for ModTypeURL modules. Only embed-displayed links are
// eligible for modal display.
const (
	URLDisplayAuto  = "auto"
	URLDisplayEmbed = "embed"
	URLDisplayPopup = "popup"
	URLDisplayOpen  = "open"
)

// CourseModule is one activity or resource placed in a course section.
type CourseModule struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID  primitive.ObjectID `bson:"course_id" json:"course_id"`
	ContextID primitive.ObjectID `bson:"context_id" json:"context_id"` // permission/storage scope for this activity instance

	Section int    `bson:"section" json:"section"`
	Name    string `bson:"name" json:"name"`
	ModType string `bson:"mod_type" json:"mod_type"`

	// ResourceType is set for "resource" modules ("pdf", "html", "doc", ...).
	ResourceType string `bson:"resource_type,omitempty" json:"resource_type,omitempty"`

	// Visible is the editor-controlled visibility flag. Hidden modules are
	// shown only to viewers with the viewhidden capability.
	Visible bool `bson:"visible" json:"visible"`

	// CompletionEnabled means this module participates in completion tracking.
	CompletionEnabled bool `bson:"completion_enabled" json:"completion_enabled"`

	// URL module fields (ModType == "url").
	ExternalURL string `bson:"external_url,omitempty" json:"external_url,omitempty"`
	URLDisplay  string `bson:"url_display,omitempty" json:"url_display,omitempty"`
	// EmbedURL is the provider-specific rewritten embed URL (e.g. a video
	// provider's player URL), precomputed when the link was saved.
	EmbedURL string `bson:"embed_url,omitempty" json:"embed_url,omitempty"`

	// PluginFileURL is the served URL of the module's primary file, if any.
	PluginFileURL string `bson:"plugin_file_url,omitempty" json:"plugin_file_url,omitempty"`

	// Authored content, displayed by the content renderer.
	Intro   string `bson:"intro,omitempty" json:"intro,omitempty"`
	Content string `bson:"content,omitempty" json:"content,omitempty"`

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// internal/domain/models/course.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Course is a course record as the tile display layer sees it.
// The authoring side of a course (sections, enrolment management, grading)
// lives elsewhere; tilehub only reads the fields that drive presentation.
type Course struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName string             `bson:"full_name" json:"full_name"`

	// Tile presentation settings, editable per course.
	TileColour     string `bson:"tile_colour,omitempty" json:"tile_colour,omitempty"` // "#rrggbb" or empty to use the plugin default
	UseTileFitter  bool   `bson:"use_tile_fitter" json:"use_tile_fitter"`             // width-fitting feature for this course
	CompletionUsed bool   `bson:"completion_used" json:"completion_used"`             // completion tracking enabled at course level

	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
	UpdatedAt *time.Time `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
}

// internal/app/store/courses/coursestore.go
package coursestore

import (
	"context"
	"time"

	"github.com/dalemusser/tilehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store provides read access to course records for the tile display layer.
type Store struct {
	c *mongo.Collection
}

// New creates a new course store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("courses")}
}

// CourseByID loads a course. Returns (nil, nil) when the id does not
// resolve; callers decide whether that is a not-found error or a silent
// fall-through.
func (s *Store) CourseByID(ctx context.Context, courseID primitive.ObjectID) (*models.Course, error) {
	var course models.Course
	err := s.c.FindOne(ctx, bson.M{"_id": courseID}).Decode(&course)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// SaveTileSettings updates the tile presentation fields of a course.
func (s *Store) SaveTileSettings(ctx context.Context, courseID primitive.ObjectID, tileColour string, useTileFitter bool) error {
	now := time.Now().UTC()
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": courseID},
		bson.M{"$set": bson.M{
			"tile_colour":     tileColour,
			"use_tile_fitter": useTileFitter,
			"updated_at":      now,
		}},
	)
	return err
}

// Create inserts a course record. Used by admin tooling and tests.
func (s *Store) Create(ctx context.Context, course models.Course) (models.Course, error) {
	if course.ID.IsZero() {
		course.ID = primitive.NewObjectID()
	}
	if course.CreatedAt.IsZero() {
		course.CreatedAt = time.Now().UTC()
	}
	if _, err := s.c.InsertOne(ctx, course); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

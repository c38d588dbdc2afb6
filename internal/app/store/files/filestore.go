// internal/app/store/files/filestore.go
package filestore

import (
	"context"
	"time"

	"github.com/dalemusser/tilehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to stored-file metadata per module content area.
// File bytes live in the storage backend; this collection is what the tile
// layer enumerates.
type Store struct {
	c *mongo.Collection
}

// New creates a new file metadata store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("stored_files")}
}

// EnsureIndexes creates the content-area enumeration index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "context_id", Value: 1}, {Key: "sort_order", Value: 1}},
		Options: options.Index().SetName("idx_files_context_order"),
	})
	return err
}

// ListFiles returns the content area's files in enumeration order.
func (s *Store) ListFiles(ctx context.Context, contextID primitive.ObjectID) ([]models.StoredFile, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"context_id": contextID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var files []models.StoredFile
	if err := cur.All(ctx, &files); err != nil {
		return nil, err
	}
	return files, nil
}

// Add inserts a file metadata record at the end of the content area's
// enumeration order.
func (s *Store) Add(ctx context.Context, file models.StoredFile) (models.StoredFile, error) {
	if file.ID.IsZero() {
		file.ID = primitive.NewObjectID()
	}
	if file.CreatedAt.IsZero() {
		file.CreatedAt = time.Now().UTC()
	}
	if file.SortOrder == 0 {
		count, err := s.c.CountDocuments(ctx, bson.M{"context_id": file.ContextID})
		if err != nil {
			return models.StoredFile{}, err
		}
		file.SortOrder = int(count) + 1
	}
	if _, err := s.c.InsertOne(ctx, file); err != nil {
		return models.StoredFile{}, err
	}
	return file, nil
}

// Remove deletes one file metadata record.
func (s *Store) Remove(ctx context.Context, fileID primitive.ObjectID) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"_id": fileID})
	return err
}

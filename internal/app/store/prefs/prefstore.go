// internal/app/store/prefs/prefstore.go
package prefstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides per-user persistent preference flags. Unlike session
// values these survive across sessions and devices.
type Store struct {
	c *mongo.Collection
}

// New creates a new preference store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("user_prefs")}
}

// EnsureIndexes creates the unique (user, name) lookup index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_prefs_user_name"),
	})
	return err
}

type prefDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    primitive.ObjectID `bson:"user_id"`
	Name      string             `bson:"name"`
	Value     string             `bson:"value"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

// Pref returns one preference value. The bool result is false when the user
// has never set the preference.
func (s *Store) Pref(ctx context.Context, userID primitive.ObjectID, name string) (string, bool, error) {
	var doc prefDoc
	err := s.c.FindOne(ctx, bson.M{"user_id": userID, "name": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.Value, true, nil
}

// SetPref stores a preference value.
func (s *Store) SetPref(ctx context.Context, userID primitive.ObjectID, name, value string) error {
	filter := bson.M{"user_id": userID, "name": name}
	update := bson.M{
		"$set": bson.M{
			"user_id":    userID,
			"name":       name,
			"value":      value,
			"updated_at": time.Now().UTC(),
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// UnsetPref removes a preference so the default applies again.
func (s *Store) UnsetPref(ctx context.Context, userID primitive.ObjectID, name string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"user_id": userID, "name": name})
	return err
}

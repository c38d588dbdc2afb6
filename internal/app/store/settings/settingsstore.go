// internal/app/store/settings/settingsstore.go
package settingsstore

import (
	"context"
	"time"

	"github.com/dalemusser/tilehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to the plugin_settings collection: string-valued
// settings scoped by plugin or theme name. Readers re-query on every call;
// there is no cache to invalidate when an admin edits a value.
type Store struct {
	c *mongo.Collection
}

// New creates a new settings store.
func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("plugin_settings")}
}

// EnsureIndexes creates the unique (plugin, name) lookup index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "plugin", Value: 1}, {Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_settings_plugin_name"),
	})
	return err
}

// Setting returns the value of one setting. The bool result is false when
// the setting has never been stored, which readers treat as "use default".
func (s *Store) Setting(ctx context.Context, plugin, name string) (string, bool, error) {
	var doc models.PluginSetting
	err := s.c.FindOne(ctx, bson.M{"plugin": plugin, "name": name}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return doc.Value, true, nil
}

// Set stores a setting value, creating it if needed.
func (s *Store) Set(ctx context.Context, plugin, name, value string) error {
	now := time.Now().UTC()
	filter := bson.M{"plugin": plugin, "name": name}
	update := bson.M{
		"$set": bson.M{
			"plugin":     plugin,
			"name":       name,
			"value":      value,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.c.UpdateOne(ctx, filter, update, opts)
	return err
}

// Unset removes a setting so readers fall back to their defaults.
func (s *Store) Unset(ctx context.Context, plugin, name string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"plugin": plugin, "name": name})
	return err
}

// All returns every setting stored for one plugin, sorted by name.
func (s *Store) All(ctx context.Context, plugin string) ([]models.PluginSetting, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"plugin": plugin}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var settings []models.PluginSetting
	if err := cur.All(ctx, &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

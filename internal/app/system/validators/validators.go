// internal/app/system/validators/validators.go
package validators

import (
	"context"
	"errors"
	"strings"

	"github.com/dalemusser/tilehub/internal/domain/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// EnsureAll creates collections (if missing) and tries to attach JSON-Schema
// validators. On servers that don't support collMod/validators (e.g. some
// DocumentDB versions), we log and skip gracefully.
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	// helper: ensure collection exists and then validator (if provided)
	ensure := func(coll string, schema bson.M) {
		if _, err := ensureCollection(ctx, db, coll, logger); err != nil {
			problems = append(problems, coll+": "+err.Error())
			return
		}
		if schema == nil {
			return
		}
		if err := setValidator(ctx, db, coll, schema, logger); err != nil {
			// DocumentDB or other deployments may not support collMod/validators.
			if isNoSuchCommand(err) || isNotImplemented(err) {
				logger.Info("validator skipped (unsupported)", zap.String("collection", coll))
				return
			}
			problems = append(problems, coll+": "+err.Error())
		}
	}

	// Core collections this app uses
	ensure("users", usersSchema())
	ensure("courses", coursesSchema())
	ensure("course_modules", courseModulesSchema())
	ensure("stored_files", storedFilesSchema())
	ensure("plugin_settings", pluginSettingsSchema())

	// Per-user state collections
	ensure("module_completion", moduleCompletionSchema())
	ensure("enrollments", enrollmentsSchema())

	// Preferences are free-form; we still ensure the collection exists.
	ensure("user_prefs", nil)

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

/* ---------------------- collection helpers & logging ---------------------- */

// collectionExists returns true when <name> already exists.
// Uses ListCollectionNames to avoid "created collection" log when it didn't.
func collectionExists(ctx context.Context, db *mongo.Database, name string) (bool, error) {
	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return true, nil
		}
	}
	return false, nil
}

// ensureCollection idempotently makes sure <name> exists.
// Returns created==true only if we actually created it.
func ensureCollection(ctx context.Context, db *mongo.Database, name string, logger *zap.Logger) (created bool, err error) {
	exists, listErr := collectionExists(ctx, db, name)
	if listErr == nil && exists {
		logger.Info("collection exists", zap.String("collection", name))
		return false, nil
	}
	// If listing failed, fall back to create-and-handle-race.
	if err := db.CreateCollection(ctx, name); err != nil {
		// NamespaceExists / already exists is fine (race or prior run).
		if isNamespaceExistsErr(err) {
			logger.Info("collection exists", zap.String("collection", name))
			return false, nil
		}
		logger.Warn("createCollection failed", zap.String("collection", name), zap.Error(err))
		return false, err
	}
	logger.Info("created collection", zap.String("collection", name))
	return true, nil
}

/* ------------------------------ validators ------------------------------- */

func setValidator(ctx context.Context, db *mongo.Database, name string, validator bson.M, logger *zap.Logger) error {
	cmd := bson.D{
		{Key: "collMod", Value: name},
		{Key: "validator", Value: validator},
		{Key: "validationLevel", Value: "moderate"},
		{Key: "validationAction", Value: "error"},
	}
	var out bson.M
	if err := db.RunCommand(ctx, cmd).Decode(&out); err != nil {
		return err
	}
	logger.Info("validator ensured", zap.String("collection", name))
	return nil
}

/* ------------------------- error helpers ------------------------- */

func isNamespaceExistsErr(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 48 || strings.Contains(strings.ToLower(ce.Message), "already exists")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "already exists") || strings.Contains(s, "namespace exists")
}

func isNoSuchCommand(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 59 || strings.Contains(strings.ToLower(ce.Message), "no such command")) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "no such command")
}

func isNotImplemented(err error) bool {
	if err == nil {
		return false
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && (ce.Code == 115 ||
		strings.Contains(strings.ToLower(ce.Message), "not implemented") ||
		strings.Contains(strings.ToLower(ce.Message), "not supported")) {
		return true
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "not implemented") || strings.Contains(s, "not supported")
}

/* ------------------------- JSON-Schema docs ---------------------- */

func usersSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"full_name", "login_id", "role"},
			"properties": bson.M{
				"full_name": bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"login_id":  bson.M{"bsonType": "string", "minLength": 1},
				"role":      bson.M{"enum": bson.A{models.RoleAdmin, models.RoleTeacher, models.RoleStudent, models.RoleGuest}},
				"status":    bson.M{"enum": bson.A{"active", "disabled"}},
				"pass_hash": bson.M{"bsonType": "string"},
			},
		},
	}
}

func coursesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"full_name"},
			"properties": bson.M{
				"full_name":       bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"tile_colour":     bson.M{"bsonType": "string"},
				"use_tile_fitter": bson.M{"bsonType": "bool"},
				"completion_used": bson.M{"bsonType": "bool"},
			},
		},
	}
}

func courseModulesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"course_id", "context_id", "name", "mod_type"},
			"properties": bson.M{
				"course_id":  bson.M{"bsonType": "objectId"},
				"context_id": bson.M{"bsonType": "objectId"},
				"section":    bson.M{"bsonType": "int"},
				"name":       bson.M{"bsonType": "string", "minLength": 1, "pattern": ".*\\S.*"},
				"mod_type":   bson.M{"bsonType": "string", "minLength": 1},
				"visible":    bson.M{"bsonType": "bool"},

				"resource_type":   bson.M{"bsonType": "string"},
				"external_url":    bson.M{"bsonType": "string"},
				"url_display":     bson.M{"bsonType": "string"},
				"embed_url":       bson.M{"bsonType": "string"},
				"plugin_file_url": bson.M{"bsonType": "string"},
			},
		},
	}
}

func moduleCompletionSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"module_id", "user_id", "state"},
			"properties": bson.M{
				"module_id": bson.M{"bsonType": "objectId"},
				"user_id":   bson.M{"bsonType": "objectId"},
				"state": bson.M{"enum": bson.A{
					models.CompletionIncomplete,
					models.CompletionComplete,
					models.CompletionCompletePass,
					models.CompletionCompleteFail,
				}},
			},
		},
	}
}

func enrollmentsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"course_id", "user_id", "role"},
			"properties": bson.M{
				"course_id": bson.M{"bsonType": "objectId"},
				"user_id":   bson.M{"bsonType": "objectId"},
				"role":      bson.M{"enum": bson.A{models.RoleTeacher, models.RoleStudent, models.RoleGuest}},
			},
		},
	}
}

func storedFilesSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"context_id", "file_name"},
			"properties": bson.M{
				"context_id":   bson.M{"bsonType": "objectId"},
				"file_name":    bson.M{"bsonType": "string", "minLength": 1},
				"size":         bson.M{"bsonType": bson.A{"long", "int"}},
				"mime_type":    bson.M{"bsonType": "string"},
				"sort_order":   bson.M{"bsonType": "int"},
				"storage_path": bson.M{"bsonType": "string"},
			},
		},
	}
}

func pluginSettingsSchema() bson.M {
	return bson.M{
		"$jsonSchema": bson.M{
			"bsonType": "object",
			"required": bson.A{"plugin", "name"},
			"properties": bson.M{
				"plugin": bson.M{"enum": bson.A{models.PluginScope, models.ThemeScope, models.CoreScope}},
				"name":   bson.M{"bsonType": "string", "minLength": 1},
				"value":  bson.M{"bsonType": "string"},
			},
		},
	}
}

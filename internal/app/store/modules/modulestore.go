// internal/app/store/modules/modulestore.go
package modulestore

import (
	"context"
	"time"

	"github.com/dalemusser/tilehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store provides access to course modules, per-user completion states, and
// enrollment role lookups.
type Store struct {
	modules     *mongo.Collection
	completion  *mongo.Collection
	enrollments *mongo.Collection
}

// New creates a new module store.
func New(db *mongo.Database) *Store {
	return &Store{
		modules:     db.Collection("course_modules"),
		completion:  db.Collection("module_completion"),
		enrollments: db.Collection("enrollments"),
	}
}

// EnsureIndexes creates lookup indexes for modules, completion, and
// enrollments.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if _, err := s.modules.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "course_id", Value: 1}, {Key: "section", Value: 1}},
		Options: options.Index().SetName("idx_modules_course_section"),
	}); err != nil {
		return err
	}
	if _, err := s.completion.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "module_id", Value: 1}, {Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_completion_module_user"),
	}); err != nil {
		return err
	}
	_, err := s.enrollments.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "course_id", Value: 1}, {Key: "user_id", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("idx_enrollments_course_user"),
	})
	return err
}

// ModuleByID loads a module, scoped to its course so a module id from one
// course cannot be addressed through another. Returns (nil, nil) when the
// pair does not resolve.
func (s *Store) ModuleByID(ctx context.Context, courseID, moduleID primitive.ObjectID) (*models.CourseModule, error) {
	var mod models.CourseModule
	err := s.modules.FindOne(ctx, bson.M{"_id": moduleID, "course_id": courseID}).Decode(&mod)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &mod, nil
}

// ListByCourse returns the course's modules in section order.
func (s *Store) ListByCourse(ctx context.Context, courseID primitive.ObjectID) ([]models.CourseModule, error) {
	opts := options.Find().SetSort(bson.D{{Key: "section", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := s.modules.Find(ctx, bson.M{"course_id": courseID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var mods []models.CourseModule
	if err := cur.All(ctx, &mods); err != nil {
		return nil, err
	}
	return mods, nil
}

// CompletionState returns a user's completion state for a module.
// The bool result is false when no completion record exists yet.
func (s *Store) CompletionState(ctx context.Context, moduleID, userID primitive.ObjectID) (int, bool, error) {
	var rec models.ModuleCompletion
	err := s.completion.FindOne(ctx, bson.M{"module_id": moduleID, "user_id": userID}).Decode(&rec)
	if err == mongo.ErrNoDocuments {
		return models.CompletionIncomplete, false, nil
	}
	if err != nil {
		return models.CompletionIncomplete, false, err
	}
	return rec.State, true, nil
}

// SetCompletionState records a user's completion state for a module.
func (s *Store) SetCompletionState(ctx context.Context, moduleID, userID primitive.ObjectID, state int) error {
	now := time.Now().UTC()
	filter := bson.M{"module_id": moduleID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{
			"module_id":  moduleID,
			"user_id":    userID,
			"state":      state,
			"updated_at": now,
		},
		"$setOnInsert": bson.M{
			"_id": primitive.NewObjectID(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.completion.UpdateOne(ctx, filter, update, opts)
	return err
}

// EnrollmentRole returns the user's role in a course. The bool result is
// false when the user is not enrolled.
func (s *Store) EnrollmentRole(ctx context.Context, courseID, userID primitive.ObjectID) (string, bool, error) {
	var enr models.Enrollment
	err := s.enrollments.FindOne(ctx, bson.M{"course_id": courseID, "user_id": userID}).Decode(&enr)
	if err == mongo.ErrNoDocuments {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return enr.Role, true, nil
}

// Enroll links a user to a course with a role.
func (s *Store) Enroll(ctx context.Context, courseID, userID primitive.ObjectID, role string) error {
	filter := bson.M{"course_id": courseID, "user_id": userID}
	update := bson.M{
		"$set": bson.M{"role": role},
		"$setOnInsert": bson.M{
			"_id":        primitive.NewObjectID(),
			"course_id":  courseID,
			"user_id":    userID,
			"created_at": time.Now().UTC(),
		},
	}
	opts := options.Update().SetUpsert(true)
	_, err := s.enrollments.UpdateOne(ctx, filter, update, opts)
	return err
}

// CreateModule inserts a course module. Used by admin tooling and tests.
func (s *Store) CreateModule(ctx context.Context, mod models.CourseModule) (models.CourseModule, error) {
	if mod.ID.IsZero() {
		mod.ID = primitive.NewObjectID()
	}
	if mod.ContextID.IsZero() {
		mod.ContextID = primitive.NewObjectID()
	}
	if mod.CreatedAt.IsZero() {
		mod.CreatedAt = time.Now().UTC()
	}
	if _, err := s.modules.InsertOne(ctx, mod); err != nil {
		return models.CourseModule{}, err
	}
	return mod, nil
}

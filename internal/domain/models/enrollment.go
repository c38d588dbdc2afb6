// internal/domain/models/enrollment.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Enrollment links a user to a course with a role. A user with no enrollment
// on a course (and no site-admin role) has no view capability there.
type Enrollment struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CourseID primitive.ObjectID `bson:"course_id" json:"course_id"`
	UserID   primitive.ObjectID `bson:"user_id" json:"user_id"`
	Role     string             `bson:"role" json:"role"` // teacher | student | guest

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles. Site admins see everything; teachers can see hidden modules in the
// courses they teach; students see visible modules in courses they are
// enrolled in; guests may browse but never resolve completion data.
const (
	RoleAdmin   = "admin"
	RoleTeacher = "teacher"
	RoleStudent = "student"
	RoleGuest   = "guest"
)

// User represents a signed-in account in the host deployment.
type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName   string             `bson:"full_name" json:"full_name"`
	LoginID    string             `bson:"login_id" json:"login_id"`
	Role       string             `bson:"role" json:"role"` // admin | teacher | student | guest
	Status     string             `bson:"status,omitempty" json:"status,omitempty"`
	PassHash   string             `bson:"pass_hash,omitempty" json:"-"`
	AuthMethod string             `bson:"auth_method,omitempty" json:"auth_method,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsGuest reports whether the user is the guest account.
func (u *User) IsGuest() bool {
	return u.Role == RoleGuest
}

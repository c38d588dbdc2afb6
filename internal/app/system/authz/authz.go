// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/tilehub/internal/app/system/auth"
	"github.com/dalemusser/tilehub/internal/app/tiles"
	"github.com/dalemusser/tilehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the user's role (lowercased), name, Mongo ObjectID, and a
// found flag. If no user is present in context or the user ID is malformed,
// it returns "visitor", "", NilObjectID, false, so ok=true always means a
// valid, authenticated user with a valid ObjectID.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok {
		return "visitor", "", primitive.NilObjectID, false
	}
	userID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		// Malformed user ID in session - fail closed.
		return "visitor", "", primitive.NilObjectID, false
	}
	return strings.ToLower(user.Role), user.Name, userID, true
}

// ViewerCtx builds the tile layer's Viewer from the request's session user.
// Anonymous requests yield a signed-out viewer that the policy layer treats
// as a guest.
func ViewerCtx(r *http.Request) tiles.Viewer {
	role, _, userID, ok := UserCtx(r)
	if !ok {
		return tiles.Viewer{Role: models.RoleGuest}
	}
	return tiles.Viewer{ID: userID, Role: role, SignedIn: true}
}

// IsAdmin reports whether the current request's user is a site admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RoleAdmin
}

// IsTeacher reports whether the current request's user is a teacher.
func IsTeacher(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RoleTeacher
}

// IsStudent reports whether the current request's user is a student.
func IsStudent(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == models.RoleStudent
}

// IsGuest reports whether the request is anonymous or from the guest account.
func IsGuest(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return !ok || role == models.RoleGuest
}

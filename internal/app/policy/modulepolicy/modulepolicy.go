// Package modulepolicy decides who may view course modules.
//
// Authorization rules:
//   - Site admins may view everything, including hidden modules.
//   - Enrolled teachers may view hidden modules in their courses.
//   - Enrolled students and guests see visible modules only.
//   - Users with no enrollment on the course have no view capability at all;
//     the tile layer answers those callers with an authorization error.
package modulepolicy

import (
	"context"

	"github.com/dalemusser/tilehub/internal/app/tiles"
	"github.com/dalemusser/tilehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EnrollmentReader is the slice of the module store this policy needs.
type EnrollmentReader interface {
	EnrollmentRole(ctx context.Context, courseID, userID primitive.ObjectID) (string, bool, error)
}

// Policy implements the tile service's ViewPolicy collaborator.
type Policy struct {
	enrollments EnrollmentReader
}

// New creates a module view policy over the given enrollment reader.
func New(enrollments EnrollmentReader) *Policy {
	return &Policy{enrollments: enrollments}
}

// CanView reports whether the viewer may view modules in the course, and
// whether hidden modules are visible to them.
func (p *Policy) CanView(ctx context.Context, viewer tiles.Viewer, courseID primitive.ObjectID) (view bool, viewHidden bool, err error) {
	if viewer.SignedIn && viewer.Role == models.RoleAdmin {
		return true, true, nil
	}
	if !viewer.SignedIn {
		// Anonymous guests may browse courses that enroll the guest account;
		// with no account there is no enrollment to check, so fail closed.
		return false, false, nil
	}

	role, enrolled, err := p.enrollments.EnrollmentRole(ctx, courseID, viewer.ID)
	if err != nil {
		return false, false, err
	}
	if !enrolled {
		return false, false, nil
	}
	return true, role == models.RoleTeacher, nil
}

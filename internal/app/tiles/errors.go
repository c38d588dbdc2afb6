// internal/app/tiles/errors.go
package tiles

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a course or module identifier does not
// resolve to a record. Callers map it to a not-found response.
var ErrNotFound = errors.New("not found")

// AuthorizationError is returned when the viewer lacks the view capability
// on a module. Callers map it to an access-denied response. A hidden module
// the viewer could otherwise see is not an AuthorizationError; that case is
// reported as a nil projection.
type AuthorizationError struct {
	CourseID primitive.ObjectID
	UserID   primitive.ObjectID
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user %s may not view modules in course %s", e.UserID.Hex(), e.CourseID.Hex())
}

// IsAuthorization reports whether err is an AuthorizationError.
func IsAuthorization(err error) bool {
	var authErr *AuthorizationError
	return errors.As(err, &authErr)
}

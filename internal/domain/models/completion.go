// internal/domain/models/completion.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Completion states, recorded per user per module.
const (
	CompletionIncomplete   = 0
	CompletionComplete     = 1
	CompletionCompletePass = 2
	CompletionCompleteFail = 3
)

// ModuleCompletion records a single user's completion state for one module.
type ModuleCompletion struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ModuleID primitive.ObjectID `bson:"module_id" json:"module_id"`
	UserID   primitive.ObjectID `bson:"user_id" json:"user_id"`
	State    int                `bson:"state" json:"state"`

	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsCompleteState reports whether a completion state counts as done.
// Only complete and complete-pass count; complete-fail does not.
func IsCompleteState(state int) bool {
	return state == CompletionComplete || state == CompletionCompletePass
}

// Package sessionstate keeps the tile display's per-user scalar values in
// the cookie session: a measured tile width per course and a
// session-lifetime flag for skipping the width check.
//
// These values are the only cross-request state the tile layer owns. They
// are read-modify-write on one user's session, so no locking is needed
// beyond what the cookie round-trip already implies.
package sessionstate

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	widthKeyPrefix    = "tilewidth_"
	skipWidthCheckKey = "skipwidthcheck"
)

// Manager binds session value access to a cookie store.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager creates a session state manager over the given cookie store.
// The store is shared with the auth session manager so all per-user state
// rides in one cookie.
func NewManager(store *sessions.CookieStore, sessionName string, logger *zap.Logger) *Manager {
	return &Manager{store: store, name: sessionName, log: logger}
}

// ForRequest returns the session values bound to one request/response pair.
// Writes save the session immediately; save failures are logged and the
// in-memory value kept, so a lost cookie write degrades to a re-measure.
func (m *Manager) ForRequest(w http.ResponseWriter, r *http.Request) *Values {
	sess, _ := m.store.Get(r, m.name)
	return &Values{sess: sess, w: w, r: r, log: m.log}
}

// Values is the per-request view of the session's tile display state.
// Implements the tile service's SessionValues collaborator.
type Values struct {
	sess *sessions.Session
	w    http.ResponseWriter
	r    *http.Request
	log  *zap.Logger
}

// CourseWidth returns the stored pixel width for a course, 0 when unset.
func (v *Values) CourseWidth(courseID primitive.ObjectID) int {
	if val, ok := v.sess.Values[widthKey(courseID)].(int); ok {
		return val
	}
	return 0
}

// SetCourseWidth stores the client-measured pixel width for a course.
func (v *Values) SetCourseWidth(courseID primitive.ObjectID, px int) {
	v.sess.Values[widthKey(courseID)] = px
	v.save()
}

// ClearCourseWidth drops the stored width so the next render re-measures.
func (v *Values) ClearCourseWidth(courseID primitive.ObjectID) {
	delete(v.sess.Values, widthKey(courseID))
	v.save()
}

// WidthCheckSkipped reports whether the user opted out of the width check
// earlier in this session.
func (v *Values) WidthCheckSkipped() bool {
	val, _ := v.sess.Values[skipWidthCheckKey].(bool)
	return val
}

// SkipWidthCheck records the opt-out for the rest of the session.
func (v *Values) SkipWidthCheck() {
	v.sess.Values[skipWidthCheckKey] = true
	v.save()
}

func (v *Values) save() {
	if err := v.sess.Save(v.r, v.w); err != nil {
		v.log.Warn("session save failed", zap.Error(err))
	}
}

func widthKey(courseID primitive.ObjectID) string {
	return fmt.Sprintf("%s%s", widthKeyPrefix, courseID.Hex())
}

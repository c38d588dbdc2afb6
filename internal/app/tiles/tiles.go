// Package tiles computes presentation metadata for the tile-based course
// display: modal eligibility, tile colours, width-fitter CSS, resource icon
// classification, and the per-module info projection the course page renders.
//
// Every operation is a leaf query over injected collaborators (settings,
// module metadata, file metadata, user preferences, session values). Nothing
// here caches or holds state between calls; settings reads are deliberately
// uncached so live configuration edits take effect on the next request.
package tiles

import (
	"context"

	"github.com/dalemusser/tilehub/internal/app/system/htmlformat"
	"github.com/dalemusser/tilehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// SettingReader reads string-valued settings scoped to a plugin or theme.
// The bool result distinguishes "unset" from an empty stored value.
type SettingReader interface {
	Setting(ctx context.Context, plugin, name string) (string, bool, error)
}

// CourseProvider resolves course records.
type CourseProvider interface {
	CourseByID(ctx context.Context, courseID primitive.ObjectID) (*models.Course, error)
}

// ModuleProvider resolves course modules and per-user completion states.
type ModuleProvider interface {
	ModuleByID(ctx context.Context, courseID, moduleID primitive.ObjectID) (*models.CourseModule, error)
	// CompletionState returns the user's completion state for a module.
	// The bool result is false when no completion record exists.
	CompletionState(ctx context.Context, moduleID, userID primitive.ObjectID) (int, bool, error)
}

// FileLister enumerates the file metadata of a module content area, in the
// content area's stable enumeration order.
type FileLister interface {
	ListFiles(ctx context.Context, contextID primitive.ObjectID) ([]models.StoredFile, error)
}

// PrefReader reads per-user persistent preference flags.
type PrefReader interface {
	Pref(ctx context.Context, userID primitive.ObjectID, name string) (string, bool, error)
}

// ViewPolicy decides module visibility for a viewer.
type ViewPolicy interface {
	// CanView reports whether the viewer may view modules in the course at
	// all, and whether hidden modules are visible to them. A false first
	// result means the caller must be answered with an authorization error.
	CanView(ctx context.Context, viewer Viewer, courseID primitive.ObjectID) (view bool, viewHidden bool, err error)
}

// SessionValues is the per-user session state the tile fitter consumes:
// a stored pixel width per course and a session-lifetime skip flag.
// Writes persist for the remainder of the user's session.
type SessionValues interface {
	CourseWidth(courseID primitive.ObjectID) int
	WidthCheckSkipped() bool
	SkipWidthCheck()
}

// Viewer identifies the requesting user for permission and completion checks.
type Viewer struct {
	ID       primitive.ObjectID
	Role     string
	SignedIn bool
}

// Guest reports whether the viewer browses without a real account.
// Guests never resolve completion data.
func (v Viewer) Guest() bool {
	return !v.SignedIn || v.Role == models.RoleGuest
}

// Service bundles the collaborators behind the tile display queries.
// All methods are safe for concurrent use; the service itself is stateless.
type Service struct {
	Settings SettingReader
	Courses  CourseProvider
	Modules  ModuleProvider
	Files    FileLister
	Prefs    PrefReader
	Policy   ViewPolicy
	HTML     *htmlformat.Formatter
	Log      *zap.Logger
}

// New constructs a tile display Service.
func New(settings SettingReader, courses CourseProvider, modules ModuleProvider, files FileLister, prefs PrefReader, policy ViewPolicy, html *htmlformat.Formatter, logger *zap.Logger) *Service {
	return &Service{
		Settings: settings,
		Courses:  courses,
		Modules:  modules,
		Files:    files,
		Prefs:    prefs,
		Policy:   policy,
		HTML:     html,
		Log:      logger,
	}
}

// setting reads a plugin-scoped setting, logging and swallowing store errors.
// Presentation queries degrade to defaults rather than failing the page.
func (s *Service) setting(ctx context.Context, plugin, name string) (string, bool) {
	val, ok, err := s.Settings.Setting(ctx, plugin, name)
	if err != nil {
		s.Log.Warn("setting read failed",
			zap.String("plugin", plugin),
			zap.String("name", name),
			zap.Error(err))
		return "", false
	}
	return val, ok
}

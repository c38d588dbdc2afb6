package testutil

import (
	"context"
	"fmt"

	"github.com/dalemusser/tilehub/internal/app/system/htmlformat"
	"github.com/dalemusser/tilehub/internal/app/tiles"
	"github.com/dalemusser/tilehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// In-memory fakes for the tile service's collaborators. Handlers and the
// service itself are exercised against these instead of a live database.

// FakeSettings is an in-memory tiles.SettingReader.
type FakeSettings struct {
	Values map[string]string // key: plugin + "/" + name
	Err    error
}

// NewFakeSettings builds a FakeSettings from plugin/name/value triples.
func NewFakeSettings() *FakeSettings {
	return &FakeSettings{Values: map[string]string{}}
}

// Set stores a setting value.
func (f *FakeSettings) Set(plugin, name, value string) *FakeSettings {
	f.Values[plugin+"/"+name] = value
	return f
}

func (f *FakeSettings) Setting(ctx context.Context, plugin, name string) (string, bool, error) {
	if f.Err != nil {
		return "", false, f.Err
	}
	v, ok := f.Values[plugin+"/"+name]
	return v, ok, nil
}

// FakeCourses is an in-memory tiles.CourseProvider.
type FakeCourses struct {
	Courses map[primitive.ObjectID]*models.Course
	Err     error
}

func NewFakeCourses(courses ...*models.Course) *FakeCourses {
	m := map[primitive.ObjectID]*models.Course{}
	for _, c := range courses {
		m[c.ID] = c
	}
	return &FakeCourses{Courses: m}
}

func (f *FakeCourses) CourseByID(ctx context.Context, courseID primitive.ObjectID) (*models.Course, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Courses[courseID], nil
}

// FakeModules is an in-memory tiles.ModuleProvider.
type FakeModules struct {
	Modules    map[primitive.ObjectID]*models.CourseModule
	Completion map[string]int // moduleID.Hex() + "/" + userID.Hex()
	Err        error
	ComplErr   error
}

func NewFakeModules(mods ...*models.CourseModule) *FakeModules {
	m := map[primitive.ObjectID]*models.CourseModule{}
	for _, mod := range mods {
		m[mod.ID] = mod
	}
	return &FakeModules{Modules: m, Completion: map[string]int{}}
}

// SetCompletion records a user's completion state for a module.
func (f *FakeModules) SetCompletion(moduleID, userID primitive.ObjectID, state int) {
	f.Completion[completionKey(moduleID, userID)] = state
}

func (f *FakeModules) ModuleByID(ctx context.Context, courseID, moduleID primitive.ObjectID) (*models.CourseModule, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	mod, ok := f.Modules[moduleID]
	if !ok || mod.CourseID != courseID {
		return nil, nil
	}
	return mod, nil
}

func (f *FakeModules) CompletionState(ctx context.Context, moduleID, userID primitive.ObjectID) (int, bool, error) {
	if f.ComplErr != nil {
		return 0, false, f.ComplErr
	}
	state, ok := f.Completion[completionKey(moduleID, userID)]
	return state, ok, nil
}

func completionKey(moduleID, userID primitive.ObjectID) string {
	return fmt.Sprintf("%s/%s", moduleID.Hex(), userID.Hex())
}

// FakeFiles is an in-memory tiles.FileLister.
type FakeFiles struct {
	Files map[primitive.ObjectID][]models.StoredFile
	Err   error
}

func NewFakeFiles() *FakeFiles {
	return &FakeFiles{Files: map[primitive.ObjectID][]models.StoredFile{}}
}

// Add appends files to a content area in enumeration order.
func (f *FakeFiles) Add(contextID primitive.ObjectID, files ...models.StoredFile) *FakeFiles {
	f.Files[contextID] = append(f.Files[contextID], files...)
	return f
}

func (f *FakeFiles) ListFiles(ctx context.Context, contextID primitive.ObjectID) ([]models.StoredFile, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Files[contextID], nil
}

// FakePrefs is an in-memory tiles.PrefReader.
type FakePrefs struct {
	Prefs map[string]string // userID.Hex() + "/" + name
	Err   error
}

func NewFakePrefs() *FakePrefs {
	return &FakePrefs{Prefs: map[string]string{}}
}

// Set stores a user preference.
func (f *FakePrefs) Set(userID primitive.ObjectID, name, value string) *FakePrefs {
	f.Prefs[userID.Hex()+"/"+name] = value
	return f
}

func (f *FakePrefs) Pref(ctx context.Context, userID primitive.ObjectID, name string) (string, bool, error) {
	if f.Err != nil {
		return "", false, f.Err
	}
	v, ok := f.Prefs[userID.Hex()+"/"+name]
	return v, ok, nil
}

func (f *FakePrefs) SetPref(ctx context.Context, userID primitive.ObjectID, name, value string) error {
	if f.Err != nil {
		return f.Err
	}
	f.Prefs[userID.Hex()+"/"+name] = value
	return nil
}

func (f *FakePrefs) UnsetPref(ctx context.Context, userID primitive.ObjectID, name string) error {
	if f.Err != nil {
		return f.Err
	}
	delete(f.Prefs, userID.Hex()+"/"+name)
	return nil
}

// FakePolicy is a canned tiles.ViewPolicy.
type FakePolicy struct {
	View       bool
	ViewHidden bool
	Err        error
}

func (f *FakePolicy) CanView(ctx context.Context, viewer tiles.Viewer, courseID primitive.ObjectID) (bool, bool, error) {
	return f.View, f.ViewHidden, f.Err
}

// FakeSession is an in-memory tiles.SessionValues.
type FakeSession struct {
	Widths  map[primitive.ObjectID]int
	Skipped bool
}

func NewFakeSession() *FakeSession {
	return &FakeSession{Widths: map[primitive.ObjectID]int{}}
}

func (f *FakeSession) CourseWidth(courseID primitive.ObjectID) int {
	return f.Widths[courseID]
}

func (f *FakeSession) WidthCheckSkipped() bool {
	return f.Skipped
}

func (f *FakeSession) SkipWidthCheck() {
	f.Skipped = true
}

// ServiceFixture bundles a tiles.Service with its fakes so tests can adjust
// collaborator state after construction.
type ServiceFixture struct {
	Svc      *tiles.Service
	Settings *FakeSettings
	Courses  *FakeCourses
	Modules  *FakeModules
	Files    *FakeFiles
	Prefs    *FakePrefs
	Policy   *FakePolicy
}

// NewServiceFixture assembles a tiles.Service over fresh fakes. The policy
// defaults to full visibility; tighten it per test.
func NewServiceFixture() *ServiceFixture {
	settings := NewFakeSettings()
	courses := NewFakeCourses()
	modules := NewFakeModules()
	files := NewFakeFiles()
	prefs := NewFakePrefs()
	policy := &FakePolicy{View: true, ViewHidden: true}

	svc := tiles.New(settings, courses, modules, files, prefs, policy,
		htmlformat.New("/pluginfile"), zap.NewNop())

	return &ServiceFixture{
		Svc:      svc,
		Settings: settings,
		Courses:  courses,
		Modules:  modules,
		Files:    files,
		Prefs:    prefs,
		Policy:   policy,
	}
}

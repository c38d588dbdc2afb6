package tiles_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/tilehub/internal/app/features/errors"
	tilesfeature "github.com/dalemusser/tilehub/internal/app/features/tiles"
	"github.com/dalemusser/tilehub/internal/app/system/sessionstate"
	"github.com/dalemusser/tilehub/internal/app/tiles"
	"github.com/dalemusser/tilehub/internal/domain/models"
	"github.com/dalemusser/tilehub/internal/testutil"
	"github.com/gorilla/sessions"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const uaIPhone = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"

func newHandler(fx *testutil.ServiceFixture) *tilesfeature.Handler {
	logger := zap.NewNop()
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))
	sessMgr := sessionstate.NewManager(store, "tilehub-test", logger)
	return tilesfeature.NewHandler(fx.Svc, fx.Modules, nil, nil, fx.Prefs, sessMgr,
		uierrors.NewErrorLogger(logger), logger)
}

func visibleModule(fx *testutil.ServiceFixture) *models.CourseModule {
	mod := &models.CourseModule{
		ID:        primitive.NewObjectID(),
		CourseID:  primitive.NewObjectID(),
		ContextID: primitive.NewObjectID(),
		Section:   1,
		Name:      "Week 1 Notes",
		ModType:   models.ModTypePage,
		Visible:   true,
		Content:   "<p>Hello.</p>",
	}
	fx.Modules.Modules[mod.ID] = mod
	return mod
}

func moduleInfoRequest(user testutil.TestUser, courseID, cmID string) *http.Request {
	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/tiles/"+courseID+"/modules/"+cmID, user)
	return testutil.WithURLParams(req, map[string]string{"courseID": courseID, "cmID": cmID})
}

func TestServeModuleInfo_BadID(t *testing.T) {
	h := newHandler(testutil.NewServiceFixture())

	req := moduleInfoRequest(testutil.StudentUser(), "nothex", primitive.NewObjectID().Hex())
	rec := testutil.NewRecorder()
	h.ServeModuleInfo(rec, req)
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestServeModuleInfo_NotFound(t *testing.T) {
	h := newHandler(testutil.NewServiceFixture())

	req := moduleInfoRequest(testutil.StudentUser(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	rec := testutil.NewRecorder()
	h.ServeModuleInfo(rec, req)
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestServeModuleInfo_Forbidden(t *testing.T) {
	fx := testutil.NewServiceFixture()
	mod := visibleModule(fx)
	fx.Policy.View = false
	h := newHandler(fx)

	req := moduleInfoRequest(testutil.StudentUser(), mod.CourseID.Hex(), mod.ID.Hex())
	rec := testutil.NewRecorder()
	h.ServeModuleInfo(rec, req)
	rec.AssertStatus(t, http.StatusForbidden)
}

func TestServeModuleInfo_HiddenIsNoContent(t *testing.T) {
	fx := testutil.NewServiceFixture()
	mod := visibleModule(fx)
	mod.Visible = false
	fx.Policy.ViewHidden = false
	h := newHandler(fx)

	req := moduleInfoRequest(testutil.StudentUser(), mod.CourseID.Hex(), mod.ID.Hex())
	rec := testutil.NewRecorder()
	h.ServeModuleInfo(rec, req)
	rec.AssertStatus(t, http.StatusNoContent)
}

func TestServeModuleInfo_OK(t *testing.T) {
	fx := testutil.NewServiceFixture()
	mod := visibleModule(fx)
	h := newHandler(fx)

	req := moduleInfoRequest(testutil.StudentUser(), mod.CourseID.Hex(), mod.ID.Hex())
	rec := testutil.NewRecorder()
	h.ServeModuleInfo(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var info tiles.CourseModuleInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if info.ID != mod.ID || info.Name != "Week 1 Notes" {
		t.Errorf("unexpected projection: %+v", info)
	}
}

func TestServeModuleContent(t *testing.T) {
	fx := testutil.NewServiceFixture()
	mod := visibleModule(fx)
	h := newHandler(fx)

	courseID, cmID := mod.CourseID.Hex(), mod.ID.Hex()
	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/tiles/"+courseID+"/modules/"+cmID+"/content", testutil.StudentUser())
	req = testutil.WithURLParams(req, map[string]string{"courseID": courseID, "cmID": cmID})
	rec := testutil.NewRecorder()
	h.ServeModuleContent(rec, req)

	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Hello.")
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type: got %q, want text/html", ct)
	}
}

func widthRequest(courseID, width string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/tiles/"+courseID+"/width", strings.NewReader("width="+width))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return testutil.WithURLParams(req, map[string]string{"courseID": courseID})
}

func TestHandleWidthReport(t *testing.T) {
	h := newHandler(testutil.NewServiceFixture())
	courseID := primitive.NewObjectID().Hex()

	tests := []struct {
		name  string
		width string
		want  int
	}{
		{"valid width", "1280", http.StatusNoContent},
		{"zero clears", "0", http.StatusNoContent},
		{"too small", "10", http.StatusBadRequest},
		{"too large", "99999", http.StatusBadRequest},
		{"not an integer", "wide", http.StatusBadRequest},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := testutil.NewRecorder()
			h.HandleWidthReport(rec, widthRequest(courseID, tc.width))
			rec.AssertStatus(t, tc.want)
		})
	}
}

func TestServeModalAllowed(t *testing.T) {
	fx := testutil.NewServiceFixture()
	fx.Settings.Set(models.PluginScope, tiles.SettingModalResources, "html,pdf")
	fx.Settings.Set(models.PluginScope, tiles.SettingModalModules, "url,page")
	h := newHandler(fx)

	req := testutil.NewRequest(http.MethodGet, "/tiles/modal-allowed")
	rec := testutil.NewRecorder()
	h.ServeModalAllowed(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Resources []string `json:"resources"`
		Modules   []string `json:"modules"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Resources) != 2 || resp.Resources[0] != "html" || resp.Resources[1] != "pdf" {
		t.Errorf("resources: got %v, want sorted [html pdf]", resp.Resources)
	}
	if len(resp.Modules) != 2 || resp.Modules[0] != "page" || resp.Modules[1] != "url" {
		t.Errorf("modules: got %v, want sorted [page url]", resp.Modules)
	}
}

func TestServeModalAllowed_MobileGetsEmptyLists(t *testing.T) {
	fx := testutil.NewServiceFixture()
	fx.Settings.Set(models.PluginScope, tiles.SettingModalResources, "pdf")
	h := newHandler(fx)

	req := testutil.NewRequest(http.MethodGet, "/tiles/modal-allowed")
	req.Header.Set("User-Agent", uaIPhone)
	rec := testutil.NewRecorder()
	h.ServeModalAllowed(rec, req)
	rec.AssertStatus(t, http.StatusOK)

	var resp struct {
		Resources []string `json:"resources"`
		Modules   []string `json:"modules"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Resources) != 0 || len(resp.Modules) != 0 {
		t.Errorf("mobile clients should get empty lists, got %v / %v", resp.Resources, resp.Modules)
	}
}

func cssRequest(user testutil.TestUser, courseID string) *http.Request {
	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/tiles/"+courseID+"/css", user)
	return testutil.WithURLParams(req, map[string]string{"courseID": courseID})
}

func TestServeCourseCSS(t *testing.T) {
	fx := testutil.NewServiceFixture()
	course := &models.Course{ID: primitive.NewObjectID(), FullName: "Biology 101", TileColour: "#AABBCC"}
	fx.Courses.Courses[course.ID] = course
	h := newHandler(fx)

	rec := testutil.NewRecorder()
	h.ServeCourseCSS(rec, cssRequest(testutil.StudentUser(), course.ID.Hex()))

	rec.AssertStatus(t, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("content type: got %q, want text/css", ct)
	}
	rec.AssertContains(t, "ul.tiles.course-"+course.ID.Hex())
	rec.AssertContains(t, "background-color: #aabbcc")
}

func TestServeCourseCSS_BadID(t *testing.T) {
	h := newHandler(testutil.NewServiceFixture())

	rec := testutil.NewRecorder()
	h.ServeCourseCSS(rec, cssRequest(testutil.StudentUser(), "nothex"))
	rec.AssertStatus(t, http.StatusBadRequest)
}

func TestServeCourseCSS_UnknownCourseIsEmpty(t *testing.T) {
	h := newHandler(testutil.NewServiceFixture())

	rec := testutil.NewRecorder()
	h.ServeCourseCSS(rec, cssRequest(testutil.StudentUser(), primitive.NewObjectID().Hex()))

	rec.AssertStatus(t, http.StatusOK)
	if rec.Body.Len() != 0 {
		t.Errorf("unknown course should produce an empty stylesheet, got %q", rec.Body.String())
	}
}

func jsnavRequest(disable string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/tiles/jsnav", strings.NewReader("disable="+disable))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestHandleJSNavToggle(t *testing.T) {
	fx := testutil.NewServiceFixture()
	h := newHandler(fx)
	user := testutil.StudentUser()
	userID, _ := primitive.ObjectIDFromHex(user.ID)

	// Opt out.
	rec := testutil.NewRecorder()
	h.HandleJSNavToggle(rec, testutil.WithUser(jsnavRequest("1"), user))
	rec.AssertStatus(t, http.StatusNoContent)
	if _, ok := fx.Prefs.Prefs[userID.Hex()+"/"+tiles.PrefDisableJSNav]; !ok {
		t.Error("opt-out preference not stored")
	}

	// Opt back in.
	rec = testutil.NewRecorder()
	h.HandleJSNavToggle(rec, testutil.WithUser(jsnavRequest("0"), user))
	rec.AssertStatus(t, http.StatusNoContent)
	if _, ok := fx.Prefs.Prefs[userID.Hex()+"/"+tiles.PrefDisableJSNav]; ok {
		t.Error("opt-out preference not removed")
	}
}

func TestHandleJSNavToggle_RequiresAuth(t *testing.T) {
	h := newHandler(testutil.NewServiceFixture())

	rec := testutil.NewRecorder()
	h.HandleJSNavToggle(rec, jsnavRequest("1"))
	rec.AssertStatus(t, http.StatusUnauthorized)
}

func TestHandleJSNavToggle_BadValue(t *testing.T) {
	h := newHandler(testutil.NewServiceFixture())

	rec := testutil.NewRecorder()
	h.HandleJSNavToggle(rec, testutil.WithUser(jsnavRequest("maybe"), testutil.StudentUser()))
	rec.AssertStatus(t, http.StatusBadRequest)
}

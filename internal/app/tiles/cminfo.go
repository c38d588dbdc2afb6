// internal/app/tiles/cminfo.go
package tiles

import (
	"context"
	"fmt"

	"github.com/dalemusser/tilehub/internal/app/system/device"
	"github.com/dalemusser/tilehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CourseModuleInfo is the read projection the course page renders for one
// module tile. It is computed per request and never persisted.
type CourseModuleInfo struct {
	ID        primitive.ObjectID `json:"id"`
	CourseID  primitive.ObjectID `json:"course_id"`
	Section   int                `json:"section"`
	Name      string             `json:"name"`
	ModType   string             `json:"mod_type"`
	Resource  string             `json:"resource_type,omitempty"`
	FileURL   string             `json:"plugin_file_url,omitempty"`

	CompletionEnabled bool `json:"completion_enabled"`
	CompletionState   int  `json:"completion_state"`
	IsComplete        bool `json:"is_complete"`

	ModalAllowed bool `json:"modal_allowed"`

	// DisplayURL is set for embed-displayed url modules: the provider's
	// rewritten embed URL when one exists, else the raw external URL.
	DisplayURL string `json:"display_url,omitempty"`
}

// GetCourseModInfo projects a course module for the given viewer.
//
// Outcomes:
//   - the ids do not resolve: ErrNotFound
//   - the viewer has no view capability on the course: *AuthorizationError
//   - the module is hidden and the viewer may not see hidden modules:
//     (nil, nil) for soft-hidden, not an error
//
// Completion data is resolved only when the course uses completion tracking,
// the module tracks completion, and the viewer is not a guest; IsComplete is
// true only for the complete and complete-pass states. Modal eligibility
// follows the allow-lists, except that url modules must also be stored with
// embed display mode.
func (s *Service) GetCourseModInfo(ctx context.Context, viewer Viewer, client device.Client, courseID, moduleID primitive.ObjectID) (*CourseModuleInfo, error) {
	mod, err := s.Modules.ModuleByID(ctx, courseID, moduleID)
	if err != nil {
		return nil, fmt.Errorf("resolve module %s: %w", moduleID.Hex(), err)
	}
	if mod == nil {
		return nil, ErrNotFound
	}

	view, viewHidden, err := s.Policy.CanView(ctx, viewer, mod.CourseID)
	if err != nil {
		return nil, fmt.Errorf("view policy for course %s: %w", mod.CourseID.Hex(), err)
	}
	if !view {
		return nil, &AuthorizationError{CourseID: mod.CourseID, UserID: viewer.ID}
	}
	if !mod.Visible && !viewHidden {
		return nil, nil
	}

	info := &CourseModuleInfo{
		ID:       mod.ID,
		CourseID: mod.CourseID,
		Section:  mod.Section,
		Name:     mod.Name,
		ModType:  mod.ModType,
		Resource: mod.ResourceType,
		FileURL:  mod.PluginFileURL,
	}

	if mod.CompletionEnabled && !viewer.Guest() && s.courseUsesCompletion(ctx, mod.CourseID) {
		state, found, err := s.Modules.CompletionState(ctx, mod.ID, viewer.ID)
		if err != nil {
			// Completion is decoration on the tile; log and render without it.
			s.Log.Warn("completion lookup failed",
				zap.String("module_id", mod.ID.Hex()),
				zap.Error(err))
		} else if found {
			info.CompletionEnabled = true
			info.CompletionState = state
			info.IsComplete = models.IsCompleteState(state)
		} else {
			info.CompletionEnabled = true
			info.CompletionState = models.CompletionIncomplete
		}
	}

	allowed := s.AllowedModalModules(ctx, client)
	info.ModalAllowed = allowed.AllowsResource(mod.ResourceType) || allowed.AllowsModule(mod.ModType)

	if mod.ModType == models.ModTypeURL {
		if mod.URLDisplay != models.URLDisplayEmbed {
			// Popup/open links leave the page anyway; a modal would just
			// nest navigation.
			info.ModalAllowed = false
		} else {
			info.DisplayURL = mod.ExternalURL
			if mod.EmbedURL != "" {
				info.DisplayURL = mod.EmbedURL
			}
		}
	}

	return info, nil
}

// courseUsesCompletion checks the course-level completion switch. A missing
// course record or a failed lookup suppresses completion rather than failing
// the projection.
func (s *Service) courseUsesCompletion(ctx context.Context, courseID primitive.ObjectID) bool {
	course, err := s.Courses.CourseByID(ctx, courseID)
	if err != nil {
		s.Log.Warn("course lookup for completion failed",
			zap.String("course_id", courseID.Hex()),
			zap.Error(err))
		return false
	}
	return course != nil && course.CompletionUsed
}

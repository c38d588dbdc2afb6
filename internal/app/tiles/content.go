// internal/app/tiles/content.go
package tiles

import (
	"strings"

	"github.com/dalemusser/tilehub/internal/app/system/htmlformat"
	"github.com/dalemusser/tilehub/internal/domain/models"
)

// FormatModuleContent renders a module's authored intro and content for
// in-page display. Both fields are optional; file placeholders in each are
// rewritten to URLs scoped to the module's context before the pieces are
// joined. The combined text is formatted trusted (course editors author it)
// with overflow containers allowed.
func (s *Service) FormatModuleContent(mod *models.CourseModule) string {
	var parts []string
	if mod.Intro != "" {
		parts = append(parts, s.HTML.RewriteFileURLs(mod.Intro, mod.ModType, mod.ContextID))
	}
	if mod.Content != "" {
		parts = append(parts, s.HTML.RewriteFileURLs(mod.Content, mod.ModType, mod.ContextID))
	}
	if len(parts) == 0 {
		return ""
	}
	return s.HTML.Format(strings.Join(parts, "\n"), htmlformat.Options{
		NoClean:  true,
		Overflow: true,
	})
}

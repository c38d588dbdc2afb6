// internal/app/tiles/colour.go
package tiles

import (
	"context"

	"github.com/dalemusser/tilehub/internal/app/system/inputval"
	"github.com/dalemusser/tilehub/internal/domain/models"
)

// Colour setting names.
const (
	SettingFollowThemeColour = "followthemecolour" // plugin scope
	SettingDefaultTileColour = "defaulttilecolour" // plugin scope
	SettingBrandColour       = "brandcolour"       // theme scope
	SettingThemeColour       = "themecolour"       // theme scope
)

// DefaultTileColour is the hard fallback when no configured colour survives
// validation.
const DefaultTileColour = "#1670cc"

// TileBaseColour resolves the base colour for course tiles.
//
// With follow-theme off, the course's own colour wins when valid, then the
// plugin's configured default. With follow-theme on, the theme's brand
// colour is tried first, then the theme colour. Invalid values at any step
// are skipped silently; the final fallback is always DefaultTileColour.
// The result is a lowercased "#rrggbb" string.
func (s *Service) TileBaseColour(ctx context.Context, courseColour string) string {
	if follow, ok := s.setting(ctx, models.PluginScope, SettingFollowThemeColour); ok && settingEnabled(follow) {
		if c, ok := s.setting(ctx, models.ThemeScope, SettingBrandColour); ok && inputval.IsValidHexColour(c) {
			return inputval.NormalizeHexColour(c)
		}
		if c, ok := s.setting(ctx, models.ThemeScope, SettingThemeColour); ok && inputval.IsValidHexColour(c) {
			return inputval.NormalizeHexColour(c)
		}
		return DefaultTileColour
	}

	if inputval.IsValidHexColour(courseColour) {
		return inputval.NormalizeHexColour(courseColour)
	}
	if c, ok := s.setting(ctx, models.PluginScope, SettingDefaultTileColour); ok && inputval.IsValidHexColour(c) {
		return inputval.NormalizeHexColour(c)
	}
	return DefaultTileColour
}

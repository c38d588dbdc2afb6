// internal/app/tiles/jsnav.go
package tiles

import (
	"context"

	"github.com/dalemusser/tilehub/internal/app/system/device"
	"github.com/dalemusser/tilehub/internal/domain/models"
	"go.uber.org/zap"
)

// SettingUseJSNav is the site-wide flag for client-side enhanced navigation.
// Unset means enabled; admins switch it off explicitly.
const SettingUseJSNav = "usejsnav"

// PrefDisableJSNav is the per-user opt-out preference flag.
const PrefDisableJSNav = "disablejsnav"

// UsingJSNav reports whether the request should get client-side enhanced
// navigation: the site flag is on, the user has not opted out, and the
// browser is not a legacy one.
func (s *Service) UsingJSNav(ctx context.Context, viewer Viewer, client device.Client) bool {
	if client.LegacyBrowser {
		return false
	}
	if val, ok := s.setting(ctx, models.PluginScope, SettingUseJSNav); ok && !settingEnabled(val) {
		return false
	}
	if viewer.SignedIn {
		val, ok, err := s.Prefs.Pref(ctx, viewer.ID, PrefDisableJSNav)
		if err != nil {
			s.Log.Warn("preference read failed",
				zap.String("pref", PrefDisableJSNav),
				zap.Error(err))
		} else if ok && settingEnabled(val) {
			return false
		}
	}
	return true
}

// settingEnabled interprets a stored flag value. Settings arrive as strings;
// anything other than the recognized "on" spellings counts as off.
func settingEnabled(val string) bool {
	switch val {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

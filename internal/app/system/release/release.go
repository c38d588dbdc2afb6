// Package release carries the service's release descriptor and the
// major.minor parsers used for compatibility switches in tile rendering.
package release

import (
	"context"
	"regexp"
	"strconv"
)

// Release is this service's declared release string.
const Release = "1.4.2"

// SettingHostRelease is the core-scoped setting holding the host platform's
// release string.
const SettingHostRelease = "release"

// MinHostRelease is the oldest host platform major.minor release the tile
// scripts are tested against.
const MinHostRelease = 4.0

// majorMinorRe captures the leading major.minor pair of a release string.
var majorMinorRe = regexp.MustCompile(`^(\d+\.\d+)`)

// MajorMinor extracts the leading major.minor token of a release string as a
// float. Strings that do not start with digits-dot-digits yield 0.0; callers
// treat that as "unknown release" and take the most conservative branch.
func MajorMinor(release string) float64 {
	m := majorMinorRe.FindStringSubmatch(release)
	if m == nil {
		return 0.0
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0.0
	}
	return v
}

// ServiceMajorMinor returns this service's own major.minor release.
func ServiceMajorMinor() float64 {
	return MajorMinor(Release)
}

// SettingReader is the slice of the settings store the host-release lookup
// needs.
type SettingReader interface {
	Setting(ctx context.Context, plugin, name string) (string, bool, error)
}

// HostMajorMinor reads the host platform's release string from core settings
// and extracts its major.minor pair. Missing or unreadable settings yield
// 0.0, the same silent fallback as an unparseable string.
func HostMajorMinor(ctx context.Context, settings SettingReader, coreScope string) float64 {
	raw, ok, err := settings.Setting(ctx, coreScope, SettingHostRelease)
	if err != nil || !ok {
		return 0.0
	}
	return MajorMinor(raw)
}

// SupportsHost reports whether the host release is new enough for this
// service. An unknown release (0.0) passes; a host that does not publish its
// release is assumed current rather than blocked.
func SupportsHost(hostMajorMinor float64) bool {
	return hostMajorMinor == 0.0 || hostMajorMinor >= MinHostRelease
}

// Package inputval validates presentation input values before they reach
// stores or CSS output: hex colours and client-reported tile widths.
package inputval

import (
	"regexp"
	"strings"
)

// hexColourRe matches a strict 6-digit hex colour with leading hash.
// Shorthand (#abc) and alpha (#rrggbbaa) forms are rejected.
var hexColourRe = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsValidHexColour reports whether s is a 6-digit hex colour like "#1670CC".
// Input case does not matter.
func IsValidHexColour(s string) bool {
	return hexColourRe.MatchString(s)
}

// NormalizeHexColour lowercases a hex colour for stable output.
// Callers must validate first; the value is returned as-is otherwise.
func NormalizeHexColour(s string) string {
	return strings.ToLower(s)
}

// Tile width bounds in pixels. Values outside this range are almost
// certainly a broken client measurement and are rejected rather than stored.
const (
	MinTileWidth = 300
	MaxTileWidth = 3840
)

// IsValidTileWidth reports whether a client-reported tile width is plausible.
func IsValidTileWidth(px int) bool {
	return px >= MinTileWidth && px <= MaxTileWidth
}

package inputval

import "testing"

func TestIsValidHexColour(t *testing.T) {
	tests := []struct {
		colour string
		want   bool
	}{
		// Valid colours
		{"#1670cc", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"#AbCdEf", true},

		// Invalid - wrong length
		{"#abc", false},
		{"#abcd", false},
		{"#aabbccdd", false},

		// Invalid - missing hash or bad characters
		{"1670cc", false},
		{"#zzzzzz", false},
		{"#12345g", false},

		// Invalid - empty/whitespace/garbage
		{"", false},
		{"   ", false},
		{"# abcde", false},
		{"#1670cc ", false},
	}
	for _, tc := range tests {
		if got := IsValidHexColour(tc.colour); got != tc.want {
			t.Errorf("IsValidHexColour(%q) = %v, want %v", tc.colour, got, tc.want)
		}
	}
}

func TestNormalizeHexColour(t *testing.T) {
	if got := NormalizeHexColour("#AABBCC"); got != "#aabbcc" {
		t.Errorf("got %q, want %q", got, "#aabbcc")
	}
	if got := NormalizeHexColour("#aabbcc"); got != "#aabbcc" {
		t.Errorf("got %q, want %q", got, "#aabbcc")
	}
}

func TestIsValidTileWidth(t *testing.T) {
	tests := []struct {
		px   int
		want bool
	}{
		{MinTileWidth, true},
		{MaxTileWidth, true},
		{1280, true},

		{MinTileWidth - 1, false},
		{MaxTileWidth + 1, false},
		{0, false},
		{-100, false},
		{100000, false},
	}
	for _, tc := range tests {
		if got := IsValidTileWidth(tc.px); got != tc.want {
			t.Errorf("IsValidTileWidth(%d) = %v, want %v", tc.px, got, tc.want)
		}
	}
}

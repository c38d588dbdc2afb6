// Package device classifies the requesting client from its User-Agent.
//
// The tile layer disables certain interaction patterns (modal display,
// width fitting) on clients that cannot host them: phones, tablets, and
// legacy browsers without the required DOM APIs.
package device

import (
	"net/http"
	"strings"

	ua "github.com/mileusna/useragent"
)

// Client is the classification of one request's user agent.
type Client struct {
	Mobile        bool
	Tablet        bool
	LegacyBrowser bool
}

// Desktop reports whether the client is neither a phone nor a tablet.
func (c Client) Desktop() bool {
	return !c.Mobile && !c.Tablet
}

// Classify parses the request's User-Agent header.
// An empty or unparseable user agent classifies as a desktop client; the
// features gated on this value fail open toward the simplest rendering.
func Classify(r *http.Request) Client {
	return FromUserAgent(r.UserAgent())
}

// FromUserAgent classifies a raw User-Agent string.
func FromUserAgent(raw string) Client {
	if raw == "" {
		return Client{}
	}
	parsed := ua.Parse(raw)
	return Client{
		Mobile:        parsed.Mobile,
		Tablet:        parsed.Tablet,
		LegacyBrowser: isLegacy(raw, parsed),
	}
}

// isLegacy flags browsers that predate the DOM APIs the tile scripts need.
// Internet Explorer (any version) is the only family still seen in practice.
// IE11 dropped the MSIE token, so the name check alone misses it; the
// Trident engine token covers IE8 through IE11.
func isLegacy(raw string, parsed ua.UserAgent) bool {
	return parsed.Name == ua.InternetExplorer || strings.Contains(raw, "Trident/")
}

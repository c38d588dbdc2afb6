package device

import "testing"

const (
	uaChromeDesktop = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	uaIPhone        = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1"
	uaIPad          = "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1"
	uaIE11          = "Mozilla/5.0 (Windows NT 6.1; Trident/7.0; rv:11.0) like Gecko"
	uaIE7           = "Mozilla/4.0 (compatible; MSIE 7.0; Windows NT 5.1)"
)

func TestFromUserAgent(t *testing.T) {
	tests := []struct {
		name string
		ua   string
		want Client
	}{
		{"desktop chrome", uaChromeDesktop, Client{}},
		{"iphone", uaIPhone, Client{Mobile: true}},
		{"ipad", uaIPad, Client{Tablet: true}},
		{"internet explorer 11", uaIE11, Client{LegacyBrowser: true}},
		{"internet explorer 7", uaIE7, Client{LegacyBrowser: true}},
		{"empty", "", Client{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := FromUserAgent(tc.ua)
			if got != tc.want {
				t.Errorf("got %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestDesktop(t *testing.T) {
	if !(Client{}).Desktop() {
		t.Error("zero client should be desktop")
	}
	if (Client{Mobile: true}).Desktop() {
		t.Error("mobile client is not desktop")
	}
	if (Client{Tablet: true}).Desktop() {
		t.Error("tablet client is not desktop")
	}
}

package scorestruct

import (
	"net/url"
	"strings"
)

// mobileHosts are scorecard mirrors whose layout differs from the desktop
// site; their URLs are recorded against the desktop host.
var mobileHosts = map[string]string{
	"m.cricbuzz.com":   "www.cricbuzz.com",
	"amp.cricbuzz.com": "www.cricbuzz.com",
}

// NormalizeSourceURL rewrites known mobile hosts to their desktop host.
// Anything that does not parse as an absolute URL is returned unchanged.
func NormalizeSourceURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return raw
	}
	if host, ok := mobileHosts[strings.ToLower(u.Hostname())]; ok {
		if port := u.Port(); port != "" {
			host += ":" + port
		}
		u.Host = host
	}
	return u.String()
}

package app

import (
	"net/url"
	"strings"
)

// originHost strips the scheme from an Origin header value.
func originHost(origin string) string {
	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return origin
	}
	return u.Host
}

// originAllowed reports whether host matches pattern. allowed_origins
// entries are either an exact "host[:port]" or a "*.domain" wildcard
// covering subdomains.
func originAllowed(pattern, host string) bool {
	if pattern == host {
		return true
	}
	if strings.HasPrefix(pattern, "*.") {
		return strings.HasSuffix(host, pattern[1:])
	}
	return false
}

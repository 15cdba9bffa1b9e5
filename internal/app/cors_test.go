package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOriginHost(t *testing.T) {
	assert.Equal(t, "example.com", originHost("https://example.com"))
	assert.Equal(t, "example.com:8443", originHost("https://example.com:8443"))
	assert.Equal(t, "not a url", originHost("not a url"))
}

func TestOriginAllowed(t *testing.T) {
	cases := []struct {
		pattern string
		host    string
		want    bool
	}{
		{"example.com", "example.com", true},
		{"example.com", "other.com", false},
		{"example.com", "admin.example.com", false},
		{"*.example.com", "admin.example.com", true},
		{"*.example.com", "example.com", false},
		{"*.example.com", "example.org", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, originAllowed(tc.pattern, tc.host),
			"pattern %q host %q", tc.pattern, tc.host)
	}
}

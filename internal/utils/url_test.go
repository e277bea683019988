package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeManifestURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare host",
			input:    "example.org",
			expected: "https://example.org/site.json",
		},
		{
			name:     "already canonical",
			input:    "https://example.org/site.json",
			expected: "https://example.org/site.json",
		},
		{
			name:     "https without suffix",
			input:    "https://example.org",
			expected: "https://example.org/site.json",
		},
		{
			name:     "suffix without scheme",
			input:    "example.org/site.json",
			expected: "https://example.org/site.json",
		},
		{
			name:     "subpath",
			input:    "example.org/sites/demo",
			expected: "https://example.org/sites/demo/site.json",
		},
		{
			name:     "http scheme is not recognized",
			input:    "http://example.org",
			expected: "https://http://example.org/site.json",
		},
		{
			name:     "trailing slash kept",
			input:    "example.org/",
			expected: "https://example.org//site.json",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, NormalizeManifestURL(tt.input))
		})
	}
}

func TestNormalizeManifestURL_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"example.org",
		"https://example.org",
		"https://example.org/site.json",
		"http://example.org",
		"example.org/site.json",
		"a",
		"https",
		"/site.json",
		"  padded  ",
		"ünïcode.example/path",
	}

	for _, in := range inputs {
		once := NormalizeManifestURL(in)
		assert.Equal(t, once, NormalizeManifestURL(once), "input %q", in)
		assert.True(t, len(once) >= len(ManifestSuffix))
	}
}

func TestNormalizeManifestURL_PrependsScheme(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"example.org", "www.example.org/x", "ftp://example.org"} {
		out := NormalizeManifestURL(in)
		assert.Equal(t, "https://"+in+ManifestSuffix, out)
	}
}

func TestManifestBaseURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://example.org", ManifestBaseURL("https://example.org/site.json"))
	assert.Equal(t, "https://example.org/docs", ManifestBaseURL("https://example.org/docs/site.json"))
	assert.Equal(t, "https://example.org", ManifestBaseURL("https://example.org"))
}

func TestIsAbsoluteURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"https://example.org/page", true},
		{"http://example.org/page", true},
		{"ftp://files.example.org", true},
		{"git+ssh://example.org/repo", true},
		{"page1/index.html", false},
		{"/page1/index.html", false},
		{"//cdn.example.org/x", false},
		{"mailto:someone@example.org", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAbsoluteURL(tt.input))
		})
	}
}

func TestJoinURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, ref, expected string
	}{
		{"https://example.org", "page1/index.html", "https://example.org/page1/index.html"},
		{"https://example.org/", "/page1/index.html", "https://example.org/page1/index.html"},
		{"https://example.org", "", "https://example.org"},
		{"", "page", "page"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, JoinURL(tt.base, tt.ref))
	}
}

func TestResolveItemURL(t *testing.T) {
	t.Parallel()

	canonical := "https://example.org/site.json"

	assert.Equal(t, "https://example.org/page1/index.html", ResolveItemURL(canonical, "page1/index.html"))
	assert.Equal(t, "https://other.example/x", ResolveItemURL(canonical, "https://other.example/x"))
	assert.Equal(t, "https://example.org/docs/intro", ResolveItemURL("https://example.org/docs/site.json", "intro"))
	assert.Equal(t, "https://example.org/cdn.example/x.html", ResolveItemURL(canonical, "//cdn.example/x.html"))
}

func TestGetDomain(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "example.org", GetDomain("https://example.org/site.json"))
	assert.Equal(t, "example.org:8443", GetDomain("https://example.org:8443/site.json"))
	assert.Equal(t, "", GetDomain("://bad"))
}

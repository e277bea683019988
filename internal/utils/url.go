package utils

import (
	"net/url"
	"regexp"
	"strings"
)

const (
	// ManifestScheme is the scheme prefix every canonical manifest URL carries
	ManifestScheme = "https"
	// ManifestSuffix is the path every canonical manifest URL ends with
	ManifestSuffix = "/site.json"
)

var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// NormalizeManifestURL turns user input into the canonical manifest endpoint.
//
// Input not starting with "https" gets "https://" prepended, and input not
// ending with "/site.json" gets the suffix appended. Nothing else is touched,
// so "http://host" becomes "https://http://host/site.json". Callers must
// reject blank input first.
//
// Examples:
//   - example.org -> https://example.org/site.json
//   - https://example.org/site.json -> https://example.org/site.json
func NormalizeManifestURL(raw string) string {
	normalized := raw
	if !strings.HasPrefix(normalized, ManifestScheme) {
		normalized = ManifestScheme + "://" + normalized
	}
	if !strings.HasSuffix(normalized, ManifestSuffix) {
		normalized += ManifestSuffix
	}
	return normalized
}

// ManifestBaseURL strips the manifest suffix from a canonical URL
func ManifestBaseURL(canonical string) string {
	return strings.TrimSuffix(canonical, ManifestSuffix)
}

// IsAbsoluteURL reports whether ref starts with a scheme prefix such as "https://"
func IsAbsoluteURL(ref string) bool {
	return schemePrefix.MatchString(ref)
}

// JoinURL joins a base URL and a relative reference with a single slash
func JoinURL(base, ref string) string {
	base = strings.TrimRight(base, "/")
	ref = strings.TrimLeft(ref, "/")
	if ref == "" {
		return base
	}
	if base == "" {
		return ref
	}
	return base + "/" + ref
}

// ResolveItemURL resolves an item path against the manifest's base URL.
// Absolute references are returned verbatim.
func ResolveItemURL(canonical, ref string) string {
	if IsAbsoluteURL(ref) {
		return ref
	}
	return JoinURL(ManifestBaseURL(canonical), ref)
}

// GetDomain extracts the host from a URL
func GetDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Host
}

// Package urlutil validates and normalizes links found in feeds and
// article pages.
package urlutil

import (
	"fmt"
	"net/url"
	"strings"
)

// nonHTTPPrefixes mark links we leave untouched: anchors, other
// protocols, emails and inline data.
var nonHTTPPrefixes = []string{"#", "gemini://", "ftp://", "mailto:", "data:"}

// IsValid reports whether raw is a well-formed http(s) URL with a host.
// A missing scheme is assumed to be https.
func IsValid(raw string) bool {
	if raw == "" {
		return false
	}
	if strings.HasPrefix(raw, "//") {
		raw = "https:" + raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme == "" {
		u.Scheme = "https"
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != "" && strings.Contains(u.Host, ".") && !strings.Contains(raw, " ")
}

// Normalize resolves raw against base and returns an absolute http(s)
// URL. Protocol-relative links get an https scheme. Links that are not
// http at all (anchors, mailto, ftp) are returned as-is. Relative links
// are resolved against base's scheme and host.
func Normalize(base, raw string) (string, error) {
	for _, prefix := range nonHTTPPrefixes {
		if strings.HasPrefix(raw, prefix) {
			return raw, nil
		}
	}
	if raw == "" {
		return "", fmt.Errorf("failed to normalize URL %q", raw)
	}

	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw, nil
	}
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw, nil
	}

	cleaned := strings.ReplaceAll(raw, "\\", "/")
	cleaned = strings.ReplaceAll(cleaned, " ", "%20")
	if strings.HasPrefix(cleaned, "?") {
		cleaned = "/" + cleaned
	}

	baseURL, err := url.Parse(base)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return "", fmt.Errorf("failed to normalize URL %q: invalid base %q", raw, base)
	}
	ref, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("failed to normalize URL %q: %w", raw, err)
	}

	resolved := baseURL.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", fmt.Errorf("failed to normalize URL %q", raw)
	}
	return resolved.String(), nil
}

// MustNormalize is Normalize for call sites where failure falls back to
// the raw value, typically feed-level links already known to be valid.
func MustNormalize(base, raw string) string {
	normalized, err := Normalize(base, raw)
	if err != nil {
		return raw
	}
	return normalized
}

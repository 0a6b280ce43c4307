package common

import (
	"fmt"
	"net/url"
	"strings"
)

// SanitizeURL performs basic cleanup on a configured URL to handle common
// copy-paste issues: surrounding whitespace, quotes, angle brackets and
// trailing slashes.
func SanitizeURL(rawURL string) string {
	cleaned := strings.TrimSpace(rawURL)

	for _, char := range []string{"\"", "'", "<"} {
		cleaned = strings.TrimPrefix(cleaned, char)
	}
	for _, char := range []string{"\"", "'", ">"} {
		cleaned = strings.TrimSuffix(cleaned, char)
	}

	cleaned = strings.TrimSpace(cleaned)
	return strings.TrimRight(cleaned, "/")
}

// ValidateBaseURL sanitizes rawURL and checks that it is an absolute http(s)
// URL without query or fragment.
func ValidateBaseURL(rawURL string) (string, error) {
	cleaned := SanitizeURL(rawURL)
	if cleaned == "" {
		return "", fmt.Errorf("URL is empty")
	}
	if strings.Contains(cleaned, " ") {
		return "", fmt.Errorf("URL %q contains spaces", cleaned)
	}

	parsed, err := url.Parse(cleaned)
	if err != nil {
		return "", fmt.Errorf("invalid URL %q: %w", cleaned, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", fmt.Errorf("URL %q must use http or https", cleaned)
	}
	if parsed.Host == "" {
		return "", fmt.Errorf("URL %q has no host", cleaned)
	}
	if parsed.RawQuery != "" || parsed.Fragment != "" {
		return "", fmt.Errorf("URL %q must not carry a query or fragment", cleaned)
	}

	return cleaned, nil
}

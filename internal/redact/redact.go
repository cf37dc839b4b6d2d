// Package redact provides utilities for redacting sensitive information
// from strings before they are logged. This prevents accidental leakage of
// credentials, connection strings, and tokens through error messages.
package redact

import "regexp"

// RedactionPlaceholder replaces any matched sensitive fragment.
const RedactionPlaceholder = "[REDACTED]"

var patterns = []*regexp.Regexp{
	// Database connection strings with embedded credentials
	regexp.MustCompile(`(?i)(postgres|postgresql|mysql)://[^@\s]+@`),

	// JWT tokens (three base64url segments starting with eyJ)
	regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),

	// password=..., secret=..., token=... style fragments
	regexp.MustCompile(`(?i)(password|passwd|secret|token|jwt_secret)([=:\s]['"]?)\S{3,}`),
}

// String removes sensitive fragments from the given string.
func String(s string) string {
	for _, p := range patterns {
		s = p.ReplaceAllString(s, RedactionPlaceholder)
	}
	return s
}

// Error redacts an error's message. A nil error yields an empty string.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

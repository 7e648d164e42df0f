// Package redact strips sensitive material from strings before they are
// logged. Session tokens, credentials, and filesystem paths can ride along
// inside wrapped error messages; nothing from this API should ever echo
// them back out through a log line.
package redact

import "regexp"

// Redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
)

// Precompiled redaction patterns
var (
	// Bearer header values and bare base64url session tokens. Our tokens
	// are 43 characters of base64url; match anything in that shape long
	// enough to be a credential.
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_-]+`)
	tokenRegex  = regexp.MustCompile(`\b[A-Za-z0-9_-]{40,}\b`)

	// password=..., password: ... fragments
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]['"]?|['"]?[=:])\S+`)

	// Absolute filesystem paths with at least two segments
	pathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)

	patterns = []struct {
		re          *regexp.Regexp
		placeholder string
	}{
		{bearerRegex, RedactedTokenPlaceholder},
		{tokenRegex, RedactedTokenPlaceholder},
		{passwordRegex, RedactedCredentialPlaceholder},
		{pathRegex, RedactedPathPlaceholder},
	}
)

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, p := range patterns {
		result = p.re.ReplaceAllString(result, p.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

package ui

// maskPlaceholder is the fixed redaction prefix. Its length never varies,
// so the rendered form does not track the secret's length.
const maskPlaceholder = "********"

// MaskSecret returns a terminal-safe rendering of a secret value.
// This is the single choke point for displaying tokens: every call site
// that shows a secret must go through it rather than formatting the raw
// field directly.
//
// Secrets of 4 characters or fewer are fully redacted. Longer secrets show
// only their last 4 characters behind the fixed placeholder. The empty
// string is returned as-is so callers can render "not set".
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 4 {
		return maskPlaceholder
	}
	return maskPlaceholder + secret[len(secret)-4:]
}

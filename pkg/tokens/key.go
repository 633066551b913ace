package tokens

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	hyphenRun     = regexp.MustCompile(`-+`)
)

// KeyFromName derives the canonical token key from a display name: lowercase,
// path separators and whitespace runs become single hyphens, everything outside
// [a-z0-9-] is stripped, hyphen runs collapse, and leading/trailing hyphens are
// trimmed. Pure and deterministic; two names that reduce to the same key
// collide, last writer wins.
func KeyFromName(name string) string {
	s := strings.ToLower(name)
	s = strings.ReplaceAll(s, "/", "-")
	s = whitespaceRun.ReplaceAllString(s, "-")

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	s = hyphenRun.ReplaceAllString(b.String(), "-")
	return strings.Trim(s, "-")
}

package prompts

import "strings"

// Slugify converts a phrase to a URL-safe slug. Used for the self-link
// heuristic: candidate URLs containing the slugified primary keyword are
// assumed to be the article's own page and are excluded.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

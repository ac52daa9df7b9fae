package slug

import (
	"strings"

	"github.com/google/uuid"
)

// Make derives a URL-safe slug from a hotel name: lowercase, runs of
// non-alphanumerics collapsed to single hyphens, trimmed at the edges.
func Make(name string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	s := strings.TrimSuffix(b.String(), "-")
	if s == "" {
		s = "hotel"
	}
	return s
}

// MakeUnique appends a short random suffix, used when the plain slug is
// already taken.
func MakeUnique(name string) string {
	return Make(name) + "-" + uuid.NewString()[:8]
}

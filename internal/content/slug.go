package content

import (
	"regexp"
	"strings"
)

var (
	slugStrip   = regexp.MustCompile(`[^a-z0-9\s-]+`)
	slugSpaces  = regexp.MustCompile(`\s+`)
	slugHyphens = regexp.MustCompile(`-{2,}`)
)

// GenerateSlug derives a URL-safe slug from a title: lowercase, drop anything
// that is not alphanumeric/whitespace/hyphen, collapse whitespace runs and
// hyphen runs to single hyphens, trim hyphens at the ends. Pure and
// idempotent: slugging a slug returns it unchanged.
func GenerateSlug(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSpaces.ReplaceAllString(s, "-")
	s = slugHyphens.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

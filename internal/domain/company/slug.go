package company

import (
	"regexp"
	"strings"
)

var (
	nameDisallowed = regexp.MustCompile(`[^a-z0-9-\s]`)
	whitespaceRun  = regexp.MustCompile(`\s+`)
	slugDisallowed = regexp.MustCompile(`[^a-z0-9-]+`)
)

// SlugFromName derives a URL slug from a company name. Characters outside ASCII
// letters, digits, hyphens and spaces are dropped; whitespace runs become one hyphen.
// Names written entirely in other scripts yield an empty slug.
func SlugFromName(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = nameDisallowed.ReplaceAllString(s, "")
	return whitespaceRun.ReplaceAllString(s, "-")
}

// NormalizeSlug cleans a slug typed by an editor: every run of disallowed
// characters becomes one hyphen.
func NormalizeSlug(slug string) string {
	return slugDisallowed.ReplaceAllString(strings.ToLower(slug), "-")
}

package utils

import (
	"regexp"
	"strings"
)

var (
	slugInvalidChars = regexp.MustCompile(`[^a-z0-9-]+`)
	slugHyphenRuns   = regexp.MustCompile(`-+`)
	whitespace       = regexp.MustCompile(`\s+`)
)

// NormalizeSlug lowercases a slug and strips every whitespace character.
// Storage and lookup both go through this, so a stored slug is always
// already normalized.
func NormalizeSlug(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	return whitespace.ReplaceAllString(lower, "")
}

// GenerateSlug derives a URL-safe slug from free text (used when the admin
// leaves the slug field blank):
// "Jane  Doe / ACME" → "jane-doe-acme"
func GenerateSlug(input string) string {
	lower := strings.ToLower(strings.TrimSpace(input))
	hyphenated := strings.ReplaceAll(lower, " ", "-")
	cleaned := slugInvalidChars.ReplaceAllString(hyphenated, "")
	normalized := slugHyphenRuns.ReplaceAllString(cleaned, "-")
	return strings.Trim(normalized, "-")
}

package utils

import "github.com/microcosm-cc/bluemonday"

var sanitizePolicy = bluemonday.StrictPolicy()

// Sanitize strips all HTML from user supplied content before it is persisted.
func Sanitize(input string) string {
	return sanitizePolicy.Sanitize(input)
}

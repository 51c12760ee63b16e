package utils

import "github.com/microcosm-cc/bluemonday"

// Album fields and comment bodies are rendered back to other users, so
// they pass through a UGC policy before they ever reach storage.
var sanitizer = bluemonday.UGCPolicy()

// Sanitize strips script-capable markup from user-supplied text.
func Sanitize(input string) string {
	return sanitizer.Sanitize(input)
}

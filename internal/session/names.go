package session

import "strings"

// KeyName turns a name as typed by the user into the stored key:
// surrounding space is dropped and inner spaces become underscores.
func KeyName(display string) string {
	return strings.ReplaceAll(strings.TrimSpace(display), " ", "_")
}

// DisplayName turns a stored key back into the name shown to the user.
func DisplayName(key string) string {
	return strings.ReplaceAll(key, "_", " ")
}

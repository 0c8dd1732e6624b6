package ui

import "strings"

// Classes joins class tokens with single spaces. Empty tokens are kept, so an
// unset modifier shows up as a doubled space rather than shifting the others.
func Classes(tokens ...string) string {
	return strings.Join(tokens, " ")
}

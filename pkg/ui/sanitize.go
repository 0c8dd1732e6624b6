package ui

import (
	"context"
	"errors"
	"io"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
)

// ErrSanitized is returned by SanitizeHTML when the policy had to alter the input.
var ErrSanitized = errors.New("HTML input was altered during sanitization")

var ugcPolicy = bluemonday.UGCPolicy()

// SanitizeHTML sanitizes HTML input using the bluemonday UGC policy and returns
// ErrSanitized along with the cleaned markup if sanitization altered the input.
func SanitizeHTML(htmlInput string) (string, error) {
	sanitized := ugcPolicy.Sanitize(htmlInput)
	if sanitized != htmlInput {
		return sanitized, ErrSanitized
	}
	return sanitized, nil
}

// HTML renders caller supplied markup after passing it through the UGC policy.
func HTML(raw string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, ugcPolicy.Sanitize(raw))
		return err
	})
}

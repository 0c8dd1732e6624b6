package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
)

// FragmentByID renders c and returns the inner HTML of the element with the given id.
func FragmentByID(ctx context.Context, c templ.Component, id string) (string, error) {
	markup, err := Render(ctx, c)
	if err != nil {
		return "", fmt.Errorf("failed to render component: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML document: %w", err)
	}

	// Match on the attribute value so ids that are not valid CSS identifiers still work.
	sel := doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	}).First()
	if sel.Length() == 0 {
		return "", fmt.Errorf("element with id %s not found", id)
	}

	fragment, err := sel.Html()
	if err != nil {
		return "", fmt.Errorf("failed to extract HTML for id %s: %w", id, err)
	}
	return fragment, nil
}

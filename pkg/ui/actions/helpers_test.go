package actions

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"

	"github.com/bnema/daisy/pkg/ui"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	out, err := ui.Render(context.Background(), c)
	require.NoError(t, err)
	return out
}

func parse(t *testing.T, markup string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeHTML(t *testing.T) {
	clean, err := SanitizeHTML("<b>bold</b>")
	require.NoError(t, err)
	assert.Equal(t, "<b>bold</b>", clean)

	clean, err = SanitizeHTML(`<b>bold</b><script>alert(1)</script>`)
	assert.ErrorIs(t, err, ErrSanitized)
	assert.Equal(t, "<b>bold</b>", clean)
}

func TestHTMLComponentStripsScripts(t *testing.T) {
	out := render(t, Element("div", nil, HTML(`<em>hi</em><script>alert(1)</script>`)))
	assert.Equal(t, "<div><em>hi</em></div>", out)
}

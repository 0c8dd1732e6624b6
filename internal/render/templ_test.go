package render

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, "<p>"+ctx.Value(VersionKey).(string)+"</p>")
		return err
	})

	r := NewTemplRenderer("v1.0.0")
	require.NoError(t, r.Render(c, http.StatusTeapot, component))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "<p>v1.0.0</p>", rec.Body.String())
}

func TestHTML(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, NewTemplRenderer("").HTML(c, http.StatusOK, "<b>x</b>"))
	assert.Equal(t, "<b>x</b>", rec.Body.String())
}

package render

import (
	"context"
	"fmt"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

type contextKey string

// VersionKey holds the build version in the render context.
const VersionKey contextKey = "BuildVersion"

// TemplRenderer writes templ components into echo responses.
type TemplRenderer struct {
	BuildVersion string
}

// NewTemplRenderer creates a new templ renderer
func NewTemplRenderer(buildVersion string) *TemplRenderer {
	return &TemplRenderer{BuildVersion: buildVersion}
}

// Render sets the content type and status, then renders the component.
func (r *TemplRenderer) Render(ctx echo.Context, status int, component templ.Component) error {
	ctx.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	ctx.Response().WriteHeader(status)

	renderCtx := context.WithValue(ctx.Request().Context(), VersionKey, r.BuildVersion)

	if err := component.Render(renderCtx, ctx.Response().Writer); err != nil {
		return fmt.Errorf("failed to render templ component: %w", err)
	}
	return nil
}

// HTML writes an already rendered fragment.
func (r *TemplRenderer) HTML(ctx echo.Context, status int, fragment string) error {
	return r.Render(ctx, status, templ.Raw(fragment))
}

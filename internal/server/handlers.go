package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bnema/daisy/internal/gallery"
	"github.com/bnema/daisy/pkg/ui"
	"github.com/bnema/daisy/pkg/ui/actions"
	"github.com/bnema/daisy/pkg/version"
)

func (s *Server) handleIndex(c echo.Context) error {
	return s.renderer.Render(c, http.StatusOK, gallery.Page(s.page(gallery.Catalog())))
}

// handleComponent renders one specimen as a full page, or only the inner HTML
// of one element when ?fragment=<id> is given.
func (s *Server) handleComponent(c echo.Context) error {
	specimen, ok := gallery.Find(c.Param("name"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "unknown component "+c.Param("name"))
	}

	if id := c.QueryParam("fragment"); id != "" {
		fragment, err := ui.FragmentByID(c.Request().Context(), gallery.Section(specimen), id)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return s.renderer.HTML(c, http.StatusOK, fragment)
	}

	return s.renderer.Render(c, http.StatusOK, gallery.Page(s.page([]gallery.Specimen{specimen})))
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
		"commit":  version.Commit(),
		"built":   version.BuildDate(),
	})
}

// errorHandler renders errors with the widgets themselves.
func (s *Server) errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(code)
		}
	}
	if code >= http.StatusInternalServerError {
		s.log.Error("request failed", "uri", c.Request().RequestURI, "err", err)
	}

	body := ui.Element("main", ui.Attrs{ui.A("class", "hero min-h-screen")},
		ui.Element("div", ui.Attrs{ui.A("class", "hero-content flex-col text-center")},
			ui.Element("h1", ui.Attrs{ui.A("class", "text-5xl font-bold")}, ui.Text(http.StatusText(code))),
			ui.Element("p", ui.Attrs{ui.A("class", "py-4")}, ui.Text(message)),
			actions.Button(actions.ButtonProps{
				Content: ui.Text("Back to the gallery"),
				Kind:    actions.KindLink,
				Href:    "/",
				Color:   actions.ColorPrimary,
			}),
		),
	)

	if err := s.renderer.Render(c, code, gallery.Document(s.cfg.Gallery.Title, s.cfg.Gallery.Theme, body)); err != nil {
		s.log.Error("failed to render error page", "err", err)
	}
}

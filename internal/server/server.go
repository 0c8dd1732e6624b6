// Package server serves the component gallery over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/bnema/daisy/internal/config"
	"github.com/bnema/daisy/internal/gallery"
	"github.com/bnema/daisy/internal/render"
	"github.com/bnema/daisy/pkg/logger"
)

const (
	healthPath      = "/healthz"
	shutdownTimeout = 10 * time.Second
)

// Server bundles the echo instance with what the handlers need.
type Server struct {
	Echo     *echo.Echo
	cfg      *config.Config
	log      *logger.Logger
	renderer *render.TemplRenderer
	version  string
}

// New builds the gallery server and registers its routes.
func New(cfg *config.Config, log *logger.Logger, version string) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		Echo:     e,
		cfg:      cfg,
		log:      log,
		renderer: render.NewTemplRenderer(version),
		version:  version,
	}

	e.Use(middleware.Recover())
	e.Use(AccessLogger(log))
	e.Use(SecurityHeaders())
	e.HTTPErrorHandler = s.errorHandler

	e.GET("/", s.handleIndex)
	e.GET("/components/:name", s.handleComponent)
	e.GET(healthPath, s.handleHealth)

	return s
}

// Run listens on the configured address until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.log.Info("gallery listening", "addr", s.cfg.Server.Addr, "theme", s.cfg.Gallery.Theme)
		if err := s.Echo.Start(s.cfg.Server.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("gallery server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.log.Info("shutting down gallery")
	if err := s.Echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down gallery: %w", err)
	}
	return nil
}

func (s *Server) page(specimens []gallery.Specimen) gallery.PageProps {
	return gallery.PageProps{
		Title:     s.cfg.Gallery.Title,
		Theme:     s.cfg.Gallery.Theme,
		Version:   s.version,
		Specimens: specimens,
	}
}

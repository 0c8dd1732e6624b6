package server

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/bnema/daisy/pkg/logger"
)

const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self' https://cdn.jsdelivr.net; " +
	"style-src 'self' 'unsafe-inline' https://cdn.jsdelivr.net; " +
	"img-src 'self' data: https:; frame-ancestors 'none'"

// SecurityHeaders adds the standard security headers to every response.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set("X-Content-Type-Options", "nosniff")
			h.Set("X-Frame-Options", "DENY")
			h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
			h.Set("Permissions-Policy", "geolocation=(), microphone=(), camera=()")
			h.Set("Content-Security-Policy", contentSecurityPolicy)

			// Only on a real TLS connection; X-Forwarded-Proto is client controlled.
			if c.Request().TLS != nil {
				h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}
			return next(c)
		}
	}
}

// AccessLogger logs one line per request at info level, health checks at debug.
func AccessLogger(log *logger.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:        true,
		LogStatus:     true,
		LogMethod:     true,
		LogLatency:    true,
		LogRemoteIP:   true,
		LogError:      true,
		HandleError:   true,
		LogValuesFunc: func(_ echo.Context, v middleware.RequestLoggerValues) error {
			keyvals := []interface{}{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"remote_ip", v.RemoteIP,
				"latency", v.Latency.Round(time.Microsecond),
			}
			if v.Error != nil {
				keyvals = append(keyvals, "err", v.Error)
			}
			if v.URI == healthPath {
				log.Debug("request", keyvals...)
				return nil
			}
			log.Info("request", keyvals...)
			return nil
		},
	})
}

package server

import (
	"bytes"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/slack-go/slack"

	"github.com/TimoKask/Creditstar-Kudos/internal/metrics"
)

// verifySlackSignature rejects requests whose Slack signature does not match
// the signing secret. The body is restored afterwards so handlers can parse
// the form payload.
func (s *Server) verifySlackSignature(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		body, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "failed to read request body")
		}
		c.Request().Body = io.NopCloser(bytes.NewReader(body))

		verifier, err := slack.NewSecretsVerifier(c.Request().Header, s.config.SlackSigningSecret)
		if err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "missing signature headers")
		}
		if _, err := verifier.Write(body); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError)
		}
		if err := verifier.Ensure(); err != nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid signature")
		}

		return next(c)
	}
}

// floodLimit applies the per-IP request rate limiter to Slack routes.
func (s *Server) floodLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.flood.Allow(c.RealIP()) {
			metrics.SlackRequestsThrottled.Inc()
			return echo.NewHTTPError(http.StatusTooManyRequests)
		}
		return next(c)
	}
}

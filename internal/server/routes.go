package server

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	// Observability endpoints (no auth required)
	s.echo.GET("/health/live", s.handleLiveness)
	s.echo.GET("/health/ready", s.handleReadiness)
	s.echo.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Slack entry points (signature-verified, flood-limited)
	s.echo.POST("/slack/commands", s.handleSlashCommand, s.floodLimit, s.verifySlackSignature)
	s.echo.POST("/slack/interactivity", s.handleInteractivity, s.floodLimit, s.verifySlackSignature)
}

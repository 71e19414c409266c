// Package server exposes the HTTP surface: Slack slash commands and
// interactivity callbacks, health probes, and Prometheus metrics.
package server

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/TimoKask/Creditstar-Kudos/internal/config"
	"github.com/TimoKask/Creditstar-Kudos/internal/kudos"
)

// kudosService is the slice of the kudos service the handlers invoke.
type kudosService interface {
	HandleCommand(ctx context.Context, cmd kudos.CommandRequest) error
	HandleModalSubmission(ctx context.Context, sub kudos.ModalSubmission) (kudos.FieldErrors, error)
	HandleStats(ctx context.Context, userID, channelID string) error
}

// databasePinger reports storage reachability for the readiness probe.
// Nil when running on the in-memory store.
type databasePinger interface {
	Ping(ctx context.Context) error
}

type Server struct {
	echo      *echo.Echo
	config    *config.Config
	service   kudosService
	db        databasePinger
	flood     *RequestRateLimiter
	startTime time.Time
}

func NewServer(cfg *config.Config, service kudosService, db databasePinger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	srv := &Server{
		echo:      e,
		config:    cfg,
		service:   service,
		db:        db,
		flood:     NewRequestRateLimiter(10.0, 20),
		startTime: time.Now(),
	}

	srv.registerRoutes()

	return srv
}

func (s *Server) Start() error {
	return s.echo.Start(fmt.Sprintf(":%s", s.config.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

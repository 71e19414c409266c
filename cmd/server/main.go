package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/slack-go/slack"

	"github.com/TimoKask/Creditstar-Kudos/internal/config"
	"github.com/TimoKask/Creditstar-Kudos/internal/database"
	"github.com/TimoKask/Creditstar-Kudos/internal/directory"
	"github.com/TimoKask/Creditstar-Kudos/internal/domain"
	"github.com/TimoKask/Creditstar-Kudos/internal/kudos"
	"github.com/TimoKask/Creditstar-Kudos/internal/logging"
	"github.com/TimoKask/Creditstar-Kudos/internal/server"
	"github.com/TimoKask/Creditstar-Kudos/internal/slackbot"
	"github.com/TimoKask/Creditstar-Kudos/internal/store"
)

func setupConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		// Use log before slog is initialized
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setupStore(cfg *config.Config) (domain.KudosStore, *pgxpool.Pool) {
	if cfg.DatabaseURL == "" {
		slog.Warn("DATABASE_URL not set, using in-memory store; kudos are lost on restart")
		return store.NewMemoryStore(), nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(ctx, pool); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	return database.NewKudosRepo(pool), pool
}

func runGracefulShutdown(srv *server.Server) <-chan struct{} {
	done := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		slog.Info("Shutdown signal received, cleaning up...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}

		close(done)
	}()

	return done
}

func main() {
	clock := clockwork.NewRealClock()

	cfg := setupConfig()

	logging.InitLogger(cfg.LogLevel, cfg.LogFormat)
	slog.Info("Application starting", "env", cfg.AppEnv, "port", cfg.Port)

	kudosStore, pool := setupStore(cfg)
	if pool != nil {
		defer pool.Close()
	}

	slackClient := slack.New(cfg.SlackBotToken)
	notifier := slackbot.NewNotifier(slackClient)

	memberCache := directory.NewCache(directory.NewSlackFetcher(slackClient), directory.DefaultTTL, clock)
	parser := kudos.NewParser(memberCache)
	limiter := kudos.NewSubmissionLimiter(kudos.Cooldown, clock)

	service := kudos.NewService(parser, limiter, kudosStore, notifier, clock, cfg.StatsAllowList)

	// Pass nil explicitly to avoid a typed-nil interface in the readiness check.
	var srv *server.Server
	if pool != nil {
		srv = server.NewServer(cfg, service, pool)
	} else {
		srv = server.NewServer(cfg, service, nil)
	}
	done := runGracefulShutdown(srv)

	slog.Info("Server starting", "port", cfg.Port)
	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-done
}

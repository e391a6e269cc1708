package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/querybase/servekit/config"
	"github.com/querybase/servekit/info"
	"github.com/querybase/servekit/logging"
	"github.com/querybase/servekit/pgpool"
	"github.com/querybase/servekit/probe"
	"github.com/querybase/servekit/server"
)

var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		// The logger is not configured yet; stderr is all we have.
		println("failed to load configuration:", err.Error())
		os.Exit(1)
	}

	logger := logging.Init(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The HTTP layer holds the pool through the read-only interface only.
	db, err := pgpool.Open(ctx, cfg.DB.Path)
	if err != nil {
		logger.Error("cannot open database", "error", err)
		os.Exit(1)
	}
	logger.Info("database opened successfully")

	infoHandler := info.NewInfoHandler(
		info.WithInfoProvider(func() any {
			return map[string]string{
				"service": "servekit",
				"version": version,
			}
		}),
		info.WithReadinessChecks(probe.NewPoolPingProbe("postgres", db)),
	)

	srv := server.New(cfg.HTTP, db,
		server.WithLogger(logger),
		server.WithInfoHandler(infoHandler),
	)

	// Query routes register here, e.g.:
	//   srv.AddRoute("address/count", countAddresses)
	//   srv.AddRoute("address/top", topAddresses)

	if err := srv.Init(ctx); err != nil {
		logger.Error("API server failed", "error", err)
		os.Exit(1)
	}

	logger.Info("API server stopped successfully")
}

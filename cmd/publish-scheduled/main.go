// Command publish-scheduled runs one sweep over due scheduled drafts and
// exits. It is intended to be invoked by an external cron job as an
// alternative to the HTTP cron endpoint.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/postroom/postroom-backend/internal/adapter/channel"
	"github.com/postroom/postroom-backend/internal/adapter/channel/linkedin"
	"github.com/postroom/postroom-backend/internal/adapter/channel/x"
	"github.com/postroom/postroom-backend/internal/adapter/postgres"
	draftrepo "github.com/postroom/postroom-backend/internal/adapter/postgres/draft"
	publishedrepo "github.com/postroom/postroom-backend/internal/adapter/postgres/published"
	"github.com/postroom/postroom-backend/internal/app"
	"github.com/postroom/postroom-backend/internal/config"
	"github.com/postroom/postroom-backend/internal/service/publisher"
	"github.com/postroom/postroom-backend/internal/service/scanner"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Scanner.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	drafts := draftrepo.New(pool)
	published := publishedrepo.New(pool)

	var adapters []channel.Adapter
	if cfg.Publish.LinkedInAccessToken != "" {
		adapters = append(adapters, linkedin.New(cfg.Publish.LinkedInAccessToken, cfg.Publish.LinkedInOrganization, cfg.Publish.Timeout, logger))
	}
	if cfg.Publish.XAPIKey != "" {
		adapters = append(adapters, x.New(cfg.Publish.XAPIKey, cfg.Publish.XAPISecret, cfg.Publish.XAccessToken, cfg.Publish.XAccessTokenSecret, cfg.Publish.Timeout, logger))
	}
	registry := channel.NewRegistry(adapters...)

	pub := publisher.NewService(logger, drafts, published, registry, cfg.Publish.Timeout)
	sweeper := scanner.NewService(logger, drafts, pub, cfg.Scanner.Concurrency, cfg.Scanner.SweepLimit)

	result, err := sweeper.Sweep(ctx)
	if err != nil {
		logger.Error("sweep failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("sweep completed",
		slog.Int("due", result.Due),
		slog.Int("published", result.Published),
		slog.Int("failed", result.Failed),
		slog.Int("skipped", result.Skipped),
	)
}

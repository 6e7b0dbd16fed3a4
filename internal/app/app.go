package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/postroom/postroom-backend/internal/adapter/channel"
	"github.com/postroom/postroom-backend/internal/adapter/channel/linkedin"
	"github.com/postroom/postroom-backend/internal/adapter/channel/x"
	"github.com/postroom/postroom-backend/internal/adapter/postgres"
	draftrepo "github.com/postroom/postroom-backend/internal/adapter/postgres/draft"
	historyrepo "github.com/postroom/postroom-backend/internal/adapter/postgres/history"
	publishedrepo "github.com/postroom/postroom-backend/internal/adapter/postgres/published"
	"github.com/postroom/postroom-backend/internal/adapter/provider"
	"github.com/postroom/postroom-backend/internal/adapter/provider/claude"
	"github.com/postroom/postroom-backend/internal/adapter/provider/gemini"
	"github.com/postroom/postroom-backend/internal/adapter/provider/openai"
	"github.com/postroom/postroom-backend/internal/auth"
	"github.com/postroom/postroom-backend/internal/config"
	"github.com/postroom/postroom-backend/internal/service/draft"
	"github.com/postroom/postroom-backend/internal/service/generation"
	"github.com/postroom/postroom-backend/internal/service/publisher"
	"github.com/postroom/postroom-backend/internal/service/scanner"
	"github.com/postroom/postroom-backend/internal/transport/middleware"
)

// generateRateLimit caps council rounds per client IP per minute. Each
// round fans out to every configured provider, so this is the main guard
// against burning through API quotas.
const generateRateLimit = 10

// Run is the application entry point. It loads configuration, wires the
// store, providers, channel adapters, and services, and serves HTTP until
// the context is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	txManager := postgres.NewTxManager(pool)
	drafts := draftrepo.New(pool)
	history := historyrepo.New(pool)
	published := publishedrepo.New(pool)

	providers, judge := buildProviders(cfg.Generation, logger)
	registry := buildRegistry(cfg.Publish, logger)

	publisherSvc := publisher.NewService(logger, drafts, published, registry, cfg.Publish.Timeout)
	draftSvc := draft.NewService(logger, drafts, history, publisherSvc, txManager, cfg.Publish.RetryDelay)
	generationSvc := generation.NewService(logger, drafts, published, providers, judge,
		cfg.Generation.ProviderTimeout, cfg.Generation.JudgeTimeout, cfg.Generation.StyleExamples)
	scannerSvc := scanner.NewService(logger, drafts, publisherSvc, cfg.Scanner.Concurrency, cfg.Scanner.SweepLimit)

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	rl := middleware.NewRateLimiter(time.Minute)
	defer rl.Stop()

	handler := newRouter(routerDeps{
		cfg:        cfg,
		log:        logger,
		pool:       pool,
		verifier:   verifier,
		limiter:    rl,
		drafts:     draftSvc,
		generation: generationSvc,
		scanner:    scannerSvc,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}

// buildProviders constructs the council from whichever API keys are
// configured. The judge prefers the OpenAI provider and falls back to the
// first council member; with fewer than two candidates it is never called.
func buildProviders(cfg config.GenerationConfig, logger *slog.Logger) ([]provider.Provider, provider.Provider) {
	var providers []provider.Provider
	var judge provider.Provider

	if cfg.OpenAIAPIKey != "" {
		p := openai.NewProvider(cfg.OpenAIAPIKey, cfg.OpenAIModel, logger)
		providers = append(providers, p)
		judge = p
	}
	if cfg.GrokAPIKey != "" {
		providers = append(providers, openai.NewGrokProvider(cfg.GrokAPIKey, cfg.GrokModel, logger))
	}
	if cfg.GeminiAPIKey != "" {
		providers = append(providers, gemini.NewProvider(cfg.GeminiAPIKey, cfg.GeminiModel, logger))
	}
	if cfg.AnthropicAPIKey != "" {
		providers = append(providers, claude.NewProvider(cfg.AnthropicAPIKey, cfg.AnthropicModel, logger))
	}

	if judge == nil && len(providers) > 0 {
		judge = providers[0]
	}
	if len(providers) == 0 {
		logger.Warn("no generation providers configured, generation endpoints will fail")
	}

	return providers, judge
}

// buildRegistry constructs channel adapters from whichever credentials are
// configured. Publishing to an unconfigured channel fails the draft with a
// classified error rather than crashing on startup.
func buildRegistry(cfg config.PublishConfig, logger *slog.Logger) *channel.Registry {
	var adapters []channel.Adapter

	if cfg.LinkedInAccessToken != "" {
		adapters = append(adapters, linkedin.New(cfg.LinkedInAccessToken, cfg.LinkedInOrganization, cfg.Timeout, logger))
	}
	if cfg.XAPIKey != "" {
		adapters = append(adapters, x.New(cfg.XAPIKey, cfg.XAPISecret, cfg.XAccessToken, cfg.XAccessTokenSecret, cfg.Timeout, logger))
	}
	if len(adapters) == 0 {
		logger.Warn("no channel adapters configured, publishing will fail")
	}

	return channel.NewRegistry(adapters...)
}

package app

import (
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/postroom/postroom-backend/internal/auth"
	"github.com/postroom/postroom-backend/internal/config"
	"github.com/postroom/postroom-backend/internal/service/draft"
	"github.com/postroom/postroom-backend/internal/service/generation"
	"github.com/postroom/postroom-backend/internal/service/scanner"
	"github.com/postroom/postroom-backend/internal/transport/middleware"
	"github.com/postroom/postroom-backend/internal/transport/rest"
)

type routerDeps struct {
	cfg        *config.Config
	log        *slog.Logger
	pool       *pgxpool.Pool
	verifier   *auth.Verifier
	limiter    *middleware.RateLimiter
	drafts     *draft.Service
	generation *generation.Service
	scanner    *scanner.Service
}

// newRouter builds the HTTP routing table. Draft and generation routes
// require a verified user token; the cron route requires the shared cron
// secret; health probes are open.
func newRouter(deps routerDeps) http.Handler {
	healthH := rest.NewHealthHandler(deps.pool, BuildVersion())
	draftH := rest.NewDraftHandler(deps.drafts, deps.log)
	generateH := rest.NewGenerateHandler(deps.generation, deps.log)
	cronH := rest.NewCronHandler(deps.scanner, deps.log)

	authMW := middleware.Auth(deps.verifier)
	cronMW := middleware.CronAuth(deps.cfg.Auth.CronSecret)
	generateMW := middleware.Chain(authMW, deps.limiter.Limit(generateRateLimit))

	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", healthH.Live)
	mux.HandleFunc("GET /ready", healthH.Ready)
	mux.HandleFunc("GET /health", healthH.Health)

	mux.Handle("POST /api/drafts", authMW(http.HandlerFunc(draftH.Create)))
	mux.Handle("GET /api/drafts", authMW(http.HandlerFunc(draftH.List)))
	mux.Handle("GET /api/drafts/{id}", authMW(http.HandlerFunc(draftH.Get)))
	mux.Handle("PATCH /api/drafts/{id}", authMW(http.HandlerFunc(draftH.Edit)))
	mux.Handle("DELETE /api/drafts/{id}", authMW(http.HandlerFunc(draftH.Delete)))
	mux.Handle("GET /api/drafts/{id}/history", authMW(http.HandlerFunc(draftH.History)))
	mux.Handle("POST /api/drafts/{id}/approve", authMW(http.HandlerFunc(draftH.Approve)))
	mux.Handle("POST /api/drafts/{id}/reject", authMW(http.HandlerFunc(draftH.Reject)))
	mux.Handle("POST /api/drafts/{id}/schedule", authMW(http.HandlerFunc(draftH.Schedule)))
	mux.Handle("POST /api/drafts/{id}/retry", authMW(http.HandlerFunc(draftH.Retry)))
	mux.Handle("POST /api/drafts/{id}/publish", authMW(http.HandlerFunc(draftH.Publish)))

	mux.Handle("POST /api/generate", generateMW(http.HandlerFunc(generateH.Generate)))
	mux.Handle("POST /api/generate/batch", generateMW(http.HandlerFunc(generateH.GenerateBatch)))

	mux.Handle("POST /api/cron/publish-scheduled", cronMW(http.HandlerFunc(cronH.PublishScheduled)))

	base := middleware.Chain(
		middleware.RequestID(),
		middleware.Recovery(deps.log),
		middleware.CORS(deps.cfg.CORS),
		middleware.Logger(deps.log),
	)

	return base(mux)
}

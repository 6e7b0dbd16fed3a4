package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/postroom/postroom-backend/internal/service/scanner"
)

// scannerService defines the minimal interface needed by CronHandler.
type scannerService interface {
	Sweep(ctx context.Context) (scanner.SweepResult, error)
}

// CronHandler serves the machine-invoked scheduled-publish endpoint.
type CronHandler struct {
	svc scannerService
	log *slog.Logger
}

// NewCronHandler creates a CronHandler.
func NewCronHandler(svc scannerService, logger *slog.Logger) *CronHandler {
	return &CronHandler{svc: svc, log: logger.With("handler", "cron")}
}

// PublishScheduled handles POST /api/cron/publish-scheduled. It runs one
// sweep over due drafts and reports the counts. A sweep with individual
// publish failures is still a 200: the failures are recorded on the
// drafts themselves.
func (h *CronHandler) PublishScheduled(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.Sweep(r.Context())
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

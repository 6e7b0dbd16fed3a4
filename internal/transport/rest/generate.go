package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
	"github.com/postroom/postroom-backend/internal/service/generation"
)

// generationService defines the minimal interface needed by GenerateHandler.
type generationService interface {
	Generate(ctx context.Context, in generation.GenerateInput) (*domain.GenerationMetadata, error)
	GenerateBatch(ctx context.Context, in generation.BatchInput) (*generation.BatchResult, error)
}

// GenerateHandler serves council generation REST endpoints.
type GenerateHandler struct {
	svc generationService
	log *slog.Logger
}

// NewGenerateHandler creates a GenerateHandler.
func NewGenerateHandler(svc generationService, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{svc: svc, log: logger.With("handler", "generate")}
}

type generateRequest struct {
	Channel     string `json:"channel"`
	Inspiration string `json:"inspiration"`
}

type inspirationRequest struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

type generateBatchRequest struct {
	Channel      string               `json:"channel"`
	CampaignID   string               `json:"campaignId"`
	Inspirations []inspirationRequest `json:"inspirations"`
}

type batchResponse struct {
	Drafts   []draftResponse               `json:"drafts"`
	Failures []generation.BatchItemFailure `json:"failures"`
}

// Generate handles POST /api/generate. It runs one council round and
// returns the full metadata without creating a draft, so a client can
// preview before committing.
func (h *GenerateHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	meta, err := h.svc.Generate(r.Context(), generation.GenerateInput{
		Channel:     domain.Channel(req.Channel),
		Inspiration: req.Inspiration,
	})
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, meta)
}

// GenerateBatch handles POST /api/generate/batch. One council round per
// inspiration; each winner becomes a proofreading draft tagged with the
// campaign. Partial failures are reported alongside the successes.
func (h *GenerateHandler) GenerateBatch(w http.ResponseWriter, r *http.Request) {
	var req generateBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := generation.BatchInput{Channel: domain.Channel(req.Channel)}
	if req.CampaignID != "" {
		id, err := uuid.Parse(req.CampaignID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid campaignId")
			return
		}
		in.CampaignID = id
	}
	for _, item := range req.Inspirations {
		id, err := uuid.Parse(item.ID)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid inspiration id")
			return
		}
		in.Inspirations = append(in.Inspirations, generation.InspirationInput{
			ID:      id,
			Content: item.Content,
		})
	}

	result, err := h.svc.GenerateBatch(r.Context(), in)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	drafts := make([]draftResponse, 0, len(result.Drafts))
	for _, d := range result.Drafts {
		drafts = append(drafts, toDraftResponse(d))
	}
	writeJSON(w, http.StatusOK, batchResponse{Drafts: drafts, Failures: result.Failures})
}

package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
	"github.com/postroom/postroom-backend/internal/service/draft"
	"github.com/postroom/postroom-backend/pkg/ctxutil"
)

// draftService defines the minimal interface needed by DraftHandler.
type draftService interface {
	Create(ctx context.Context, actor domain.Identity, in draft.CreateInput) (*domain.Draft, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	List(ctx context.Context, filter domain.DraftFilter) ([]*domain.Draft, error)
	History(ctx context.Context, id uuid.UUID) ([]*domain.EditHistoryEntry, error)
	Edit(ctx context.Context, actor domain.Identity, in draft.EditInput) (*domain.Draft, error)
	Approve(ctx context.Context, actor domain.Identity, id uuid.UUID) (*domain.Draft, error)
	Reject(ctx context.Context, actor domain.Identity, id uuid.UUID, reason *string) (*domain.Draft, error)
	Schedule(ctx context.Context, in draft.ScheduleInput) (*domain.Draft, error)
	Retry(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	PublishNow(ctx context.Context, id uuid.UUID) (*domain.Draft, error)
	Delete(ctx context.Context, actor domain.Identity, id uuid.UUID) error
}

// DraftHandler serves draft lifecycle REST endpoints.
type DraftHandler struct {
	svc draftService
	log *slog.Logger
}

// NewDraftHandler creates a DraftHandler.
func NewDraftHandler(svc draftService, logger *slog.Logger) *DraftHandler {
	return &DraftHandler{svc: svc, log: logger.With("handler", "draft")}
}

type mediaRequest struct {
	URL  string `json:"url"`
	Type string `json:"type"`
}

type createDraftRequest struct {
	Channel           string        `json:"channel"`
	Content           string        `json:"content"`
	Media             *mediaRequest `json:"media,omitempty"`
	Route             string        `json:"route"`
	ScheduledFor      *time.Time    `json:"scheduledFor,omitempty"`
	ScheduledTimezone string        `json:"scheduledTimezone,omitempty"`
}

type editDraftRequest struct {
	Content string  `json:"content"`
	Summary *string `json:"summary,omitempty"`
}

type rejectDraftRequest struct {
	Reason *string `json:"reason,omitempty"`
}

type scheduleDraftRequest struct {
	ScheduledFor time.Time `json:"scheduledFor"`
	Timezone     string    `json:"timezone"`
}

type identityResponse struct {
	UserID *string `json:"userId,omitempty"`
	Email  string  `json:"email"`
	Name   string  `json:"name,omitempty"`
}

type draftResponse struct {
	ID                string                     `json:"id"`
	Channel           string                     `json:"channel"`
	Content           string                     `json:"content"`
	OriginalContent   string                     `json:"originalContent"`
	Media             *domain.Media              `json:"media,omitempty"`
	Route             string                     `json:"route"`
	Status            string                     `json:"status"`
	Author            identityResponse           `json:"author"`
	ScheduledFor      *time.Time                 `json:"scheduledFor,omitempty"`
	ScheduledTimezone *string                    `json:"scheduledTimezone,omitempty"`
	CampaignID        *string                    `json:"campaignId,omitempty"`
	InspirationID     *string                    `json:"inspirationId,omitempty"`
	Generation        *domain.GenerationMetadata `json:"generation,omitempty"`
	ExternalID        *string                    `json:"externalId,omitempty"`
	ExternalURL       *string                    `json:"externalUrl,omitempty"`
	FailureReason     *string                    `json:"failureReason,omitempty"`
	CreatedAt         time.Time                  `json:"createdAt"`
	LastEditedAt      *time.Time                 `json:"lastEditedAt,omitempty"`
	ApprovedAt        *time.Time                 `json:"approvedAt,omitempty"`
	PublishedAt       *time.Time                 `json:"publishedAt,omitempty"`
}

type historyEntryResponse struct {
	ID              string           `json:"id"`
	DraftID         string           `json:"draftId"`
	Editor          identityResponse `json:"editor"`
	PreviousContent string           `json:"previousContent"`
	NewContent      string           `json:"newContent"`
	Summary         *string          `json:"summary,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// Create handles POST /api/drafts.
func (h *DraftHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req createDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	in := draft.CreateInput{
		Channel:           domain.Channel(req.Channel),
		Content:           req.Content,
		Route:             domain.Route(req.Route),
		ScheduledFor:      req.ScheduledFor,
		ScheduledTimezone: req.ScheduledTimezone,
	}
	if req.Media != nil {
		in.Media = &domain.Media{URL: req.Media.URL, Type: domain.MediaType(req.Media.Type)}
	}

	created, err := h.svc.Create(r.Context(), actor, in)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDraftResponse(created))
}

// List handles GET /api/drafts.
// Filters: ?channel=&route=&status=&campaign_id=&limit=&offset=
func (h *DraftHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var filter domain.DraftFilter
	if v := q.Get("channel"); v != "" {
		ch := domain.Channel(v)
		filter.Channel = &ch
	}
	if v := q.Get("route"); v != "" {
		rt := domain.Route(v)
		filter.Route = &rt
	}
	if v := q.Get("status"); v != "" {
		st := domain.Status(v)
		filter.Status = &st
	}
	if v := q.Get("campaign_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid campaign_id")
			return
		}
		filter.CampaignID = &id
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		filter.Offset = n
	}

	drafts, err := h.svc.List(r.Context(), filter)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	items := make([]draftResponse, 0, len(drafts))
	for _, d := range drafts {
		items = append(items, toDraftResponse(d))
	}
	writeJSON(w, http.StatusOK, map[string]any{"drafts": items})
}

// Get handles GET /api/drafts/{id}.
func (h *DraftHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}

	d, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(d))
}

// History handles GET /api/drafts/{id}/history.
func (h *DraftHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := draftID(w, r)
	if !ok {
		return
	}

	entries, err := h.svc.History(r.Context(), id)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	items := make([]historyEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, toHistoryResponse(e))
	}
	writeJSON(w, http.StatusOK, map[string]any{"history": items})
}

// Edit handles PATCH /api/drafts/{id}.
func (h *DraftHandler) Edit(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	id, ok := draftID(w, r)
	if !ok {
		return
	}

	var req editDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, err := h.svc.Edit(r.Context(), actor, draft.EditInput{
		ID:      id,
		Content: req.Content,
		Summary: req.Summary,
	})
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(updated))
}

// Approve handles POST /api/drafts/{id}/approve.
func (h *DraftHandler) Approve(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	id, ok := draftID(w, r)
	if !ok {
		return
	}

	approved, err := h.svc.Approve(r.Context(), actor, id)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(approved))
}

// Reject handles POST /api/drafts/{id}/reject.
func (h *DraftHandler) Reject(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	id, ok := draftID(w, r)
	if !ok {
		return
	}

	// Body is optional: a reject without a reason is still a reject.
	var req rejectDraftRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
	}

	rejected, err := h.svc.Reject(r.Context(), actor, id, req.Reason)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(rejected))
}

// Schedule handles POST /api/drafts/{id}/schedule.
func (h *DraftHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireIdentity(w, r); !ok {
		return
	}
	id, ok := draftID(w, r)
	if !ok {
		return
	}

	var req scheduleDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	scheduled, err := h.svc.Schedule(r.Context(), draft.ScheduleInput{
		ID:       id,
		At:       req.ScheduledFor,
		Timezone: req.Timezone,
	})
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(scheduled))
}

// Retry handles POST /api/drafts/{id}/retry.
func (h *DraftHandler) Retry(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireIdentity(w, r); !ok {
		return
	}
	id, ok := draftID(w, r)
	if !ok {
		return
	}

	d, err := h.svc.Retry(r.Context(), id)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(d))
}

// Publish handles POST /api/drafts/{id}/publish.
func (h *DraftHandler) Publish(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireIdentity(w, r); !ok {
		return
	}
	id, ok := draftID(w, r)
	if !ok {
		return
	}

	d, err := h.svc.PublishNow(r.Context(), id)
	if err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDraftResponse(d))
}

// Delete handles DELETE /api/drafts/{id}.
func (h *DraftHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireIdentity(w, r)
	if !ok {
		return
	}
	id, ok := draftID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), actor, id); err != nil {
		respondError(r.Context(), h.log, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func requireIdentity(w http.ResponseWriter, r *http.Request) (domain.Identity, bool) {
	identity, ok := ctxutil.IdentityFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return domain.Identity{}, false
	}
	return identity, true
}

func draftID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid draft id")
		return uuid.Nil, false
	}
	return id, true
}

func toDraftResponse(d *domain.Draft) draftResponse {
	resp := draftResponse{
		ID:                d.ID.String(),
		Channel:           d.Channel.String(),
		Content:           d.EffectiveContent(),
		OriginalContent:   d.OriginalContent,
		Media:             d.Media,
		Route:             d.Route.String(),
		Status:            d.Status.String(),
		Author:            toIdentityResponse(d.Author),
		ScheduledFor:      d.ScheduledFor,
		ScheduledTimezone: d.ScheduledTimezone,
		Generation:        d.Generation,
		ExternalID:        d.ExternalID,
		ExternalURL:       d.ExternalURL,
		FailureReason:     d.FailureReason,
		CreatedAt:         d.CreatedAt,
		LastEditedAt:      d.LastEditedAt,
		ApprovedAt:        d.ApprovedAt,
		PublishedAt:       d.PublishedAt,
	}
	if d.CampaignID != nil {
		s := d.CampaignID.String()
		resp.CampaignID = &s
	}
	if d.InspirationID != nil {
		s := d.InspirationID.String()
		resp.InspirationID = &s
	}
	return resp
}

func toHistoryResponse(e *domain.EditHistoryEntry) historyEntryResponse {
	return historyEntryResponse{
		ID:              e.ID.String(),
		DraftID:         e.DraftID.String(),
		Editor:          toIdentityResponse(e.Editor),
		PreviousContent: e.PreviousContent,
		NewContent:      e.NewContent,
		Summary:         e.Summary,
		CreatedAt:       e.CreatedAt,
	}
}

func toIdentityResponse(i domain.Identity) identityResponse {
	resp := identityResponse{Email: i.Email, Name: i.Name}
	if i.UserID != nil {
		s := i.UserID.String()
		resp.UserID = &s
	}
	return resp
}

package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Identity is the author or editor of a draft. AI-generated drafts carry
// a nil UserID with the generator's service address as email.
type Identity struct {
	UserID *uuid.UUID
	Email  string
	Name   string
}

// SameAs compares identities by email, case-insensitively, mirroring how
// authorship checks treat externally provisioned accounts.
func (i Identity) SameAs(other Identity) bool {
	return strings.EqualFold(i.Email, other.Email)
}

// Media is an optional attachment published alongside the text.
// The json tags define the JSONB shape stored with the draft.
type Media struct {
	URL  string    `json:"url"`
	Type MediaType `json:"type"`
}

// Draft is the core content entity moving through the publication lifecycle.
//
// OriginalContent is immutable after creation; CurrentContent is a nullable
// override written by proofreading edits. The text that actually publishes
// is always EffectiveContent().
type Draft struct {
	ID              uuid.UUID
	Channel         Channel
	OriginalContent string
	CurrentContent  *string
	Media           *Media
	Route           Route
	Status          Status
	Author          Identity

	ScheduledFor      *time.Time
	ScheduledTimezone *string

	// CampaignID and InspirationID are set only on AI-generated drafts.
	CampaignID    *uuid.UUID
	InspirationID *uuid.UUID
	Generation    *GenerationMetadata

	// ExternalID and ExternalURL are set once the draft is published.
	ExternalID  *string
	ExternalURL *string

	// FailureReason explains why the draft did not ship: the classified
	// publish error while failed, or the reviewer's note when rejected.
	FailureReason *string

	CreatedAt    time.Time
	LastEditedAt *time.Time
	ApprovedAt   *time.Time
	PublishedAt  *time.Time
}

// EffectiveContent returns the text that will actually publish:
// the latest edit if present, otherwise the original.
func (d *Draft) EffectiveContent() string {
	if d.CurrentContent != nil {
		return *d.CurrentContent
	}
	return d.OriginalContent
}

// IsAuthoredBy reports whether the given identity is the draft's author.
func (d *Draft) IsAuthoredBy(id Identity) bool {
	return d.Author.SameAs(id)
}

// DraftFilter narrows draft listings. Nil fields are not applied.
type DraftFilter struct {
	Channel    *Channel
	Route      *Route
	Status     *Status
	CampaignID *uuid.UUID
	Limit      int
	Offset     int
}

// RouteSpec is the delivery path chosen at creation. Each variant carries
// exactly the data its route needs, so a draft cannot be constructed in an
// invalid route/status combination: only the scheduled variant has an
// instant, and each variant fixes its own initial status.
type RouteSpec interface {
	Route() Route
	initialStatus() Status
	apply(d *Draft)
}

// DirectRoute publishes immediately after creation: the draft is born
// approved and the caller drives the publish attempt.
type DirectRoute struct{}

func (DirectRoute) Route() Route          { return RouteDirect }
func (DirectRoute) initialStatus() Status { return StatusApproved }
func (DirectRoute) apply(*Draft)          {}

// ProofreadingRoute sends the draft through human review.
type ProofreadingRoute struct{}

func (ProofreadingRoute) Route() Route          { return RouteProofreading }
func (ProofreadingRoute) initialStatus() Status { return StatusPendingReview }
func (ProofreadingRoute) apply(*Draft)          {}

// ScheduledRoute defers publication to an absolute instant. At is
// authoritative for firing; Timezone is display-only.
type ScheduledRoute struct {
	At       time.Time
	Timezone string
}

func (ScheduledRoute) Route() Route          { return RouteScheduled }
func (ScheduledRoute) initialStatus() Status { return StatusScheduled }

func (r ScheduledRoute) apply(d *Draft) {
	at := r.At
	tz := r.Timezone
	d.ScheduledFor = &at
	d.ScheduledTimezone = &tz
}

// NewDraft constructs a draft in the initial state its route dictates.
func NewDraft(channel Channel, content string, media *Media, author Identity, spec RouteSpec) *Draft {
	d := &Draft{
		ID:              uuid.New(),
		Channel:         channel,
		OriginalContent: content,
		Media:           media,
		Route:           spec.Route(),
		Status:          spec.initialStatus(),
		Author:          author,
		CreatedAt:       time.Now().UTC(),
	}
	spec.apply(d)
	return d
}

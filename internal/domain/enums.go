package domain

// Channel identifies an external network the system publishes to.
type Channel string

const (
	ChannelLinkedIn Channel = "linkedin"
	ChannelX        Channel = "x"
)

func (c Channel) String() string { return string(c) }

func (c Channel) IsValid() bool {
	switch c {
	case ChannelLinkedIn, ChannelX:
		return true
	}
	return false
}

// Route is the delivery path chosen when a draft is created.
type Route string

const (
	RouteDirect       Route = "direct"
	RouteProofreading Route = "proofreading"
	RouteScheduled    Route = "scheduled"
)

func (r Route) String() string { return string(r) }

func (r Route) IsValid() bool {
	switch r {
	case RouteDirect, RouteProofreading, RouteScheduled:
		return true
	}
	return false
}

// Status is a draft's position in the publication lifecycle.
//
// StatusPublishing is a transient claim state: a draft is moved there
// atomically before its adapter call so that overlapping scanner runs
// (or a scanner/human race) cannot double-publish it.
type Status string

const (
	StatusPendingReview Status = "pending_review"
	StatusApproved      Status = "approved"
	StatusScheduled     Status = "scheduled"
	StatusPublishing    Status = "publishing"
	StatusPublished     Status = "published"
	StatusRejected      Status = "rejected"
	StatusFailed        Status = "failed"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingReview, StatusApproved, StatusScheduled,
		StatusPublishing, StatusPublished, StatusRejected, StatusFailed:
		return true
	}
	return false
}

// IsTerminal reports whether no further transitions are allowed.
func (s Status) IsTerminal() bool {
	return s == StatusPublished || s == StatusRejected
}

// transitions is the lifecycle table. Creation states (pending_review,
// approved, scheduled) are entered via RouteSpec, not listed here.
var transitions = map[Status][]Status{
	StatusPendingReview: {StatusApproved, StatusRejected, StatusScheduled},
	StatusApproved:      {StatusPublishing},
	StatusScheduled:     {StatusScheduled, StatusPublishing}, // reschedule keeps the state
	StatusPublishing:    {StatusPublished, StatusFailed},
	StatusFailed:        {StatusScheduled, StatusPublishing},
}

// CanTransitionTo reports whether the lifecycle permits moving from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsEditable reports whether content edits (with history entries) are
// allowed in this state. In-flight and terminal drafts are frozen;
// approved drafts publish synchronously so there is no window to edit.
func (s Status) IsEditable() bool {
	switch s {
	case StatusPendingReview, StatusScheduled, StatusFailed:
		return true
	}
	return false
}

// MediaType is the kind of media attached to a draft.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

func (m MediaType) String() string { return string(m) }

func (m MediaType) IsValid() bool {
	switch m {
	case MediaTypeImage, MediaTypeVideo:
		return true
	}
	return false
}

// PublishErrorKind classifies a channel publish failure.
type PublishErrorKind string

const (
	PublishErrAuthExpired       PublishErrorKind = "auth_expired"
	PublishErrRateLimited       PublishErrorKind = "rate_limited"
	PublishErrValidationRejected PublishErrorKind = "validation_rejected"
	PublishErrNetwork           PublishErrorKind = "network_error"
	PublishErrUnknown           PublishErrorKind = "unknown"
)

func (k PublishErrorKind) String() string { return string(k) }

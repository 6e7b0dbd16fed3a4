package draft

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/postroom/postroom-backend/internal/domain"
)

// CreateInput holds parameters for creating a draft. The scheduled fields
// are required exactly when the route is scheduled.
type CreateInput struct {
	Channel           domain.Channel
	Content           string
	Media             *domain.Media
	Route             domain.Route
	ScheduledFor      *time.Time
	ScheduledTimezone string
}

func (in CreateInput) Validate() error {
	var errs []domain.FieldError

	if !in.Channel.IsValid() {
		errs = append(errs, domain.FieldError{Field: "channel", Message: "must be one of: linkedin, x"})
	}
	if strings.TrimSpace(in.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "must not be empty"})
	}
	if !in.Route.IsValid() {
		errs = append(errs, domain.FieldError{Field: "route", Message: "must be one of: direct, proofreading, scheduled"})
	}
	if in.Media != nil {
		if !in.Media.Type.IsValid() {
			errs = append(errs, domain.FieldError{Field: "media.type", Message: "must be one of: image, video"})
		}
		if strings.TrimSpace(in.Media.URL) == "" {
			errs = append(errs, domain.FieldError{Field: "media.url", Message: "must not be empty"})
		}
	}

	if in.Route == domain.RouteScheduled {
		errs = append(errs, validateSchedule(in.ScheduledFor, in.ScheduledTimezone)...)
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// RouteSpec converts the validated input into the domain route variant.
func (in CreateInput) RouteSpec() domain.RouteSpec {
	switch in.Route {
	case domain.RouteDirect:
		return domain.DirectRoute{}
	case domain.RouteScheduled:
		return domain.ScheduledRoute{At: in.ScheduledFor.UTC(), Timezone: in.ScheduledTimezone}
	default:
		return domain.ProofreadingRoute{}
	}
}

// EditInput holds parameters for a proofreading edit.
type EditInput struct {
	ID      uuid.UUID
	Content string
	Summary *string
}

func (in EditInput) Validate() error {
	var errs []domain.FieldError

	if in.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must not be empty"})
	}
	if strings.TrimSpace(in.Content) == "" {
		errs = append(errs, domain.FieldError{Field: "content", Message: "must not be empty"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// ScheduleInput holds parameters for scheduling or re-scheduling a draft.
type ScheduleInput struct {
	ID       uuid.UUID
	At       time.Time
	Timezone string
}

func (in ScheduleInput) Validate() error {
	var errs []domain.FieldError

	if in.ID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "id", Message: "must not be empty"})
	}
	at := in.At
	errs = append(errs, validateSchedule(&at, in.Timezone)...)

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func validateSchedule(at *time.Time, timezone string) []domain.FieldError {
	var errs []domain.FieldError

	if at == nil || at.IsZero() {
		errs = append(errs, domain.FieldError{Field: "scheduled_for", Message: "must be set"})
	} else if !at.After(time.Now()) {
		errs = append(errs, domain.FieldError{Field: "scheduled_for", Message: "must be in the future"})
	}

	if timezone == "" {
		errs = append(errs, domain.FieldError{Field: "scheduled_timezone", Message: "must be set"})
	} else if _, err := time.LoadLocation(timezone); err != nil {
		errs = append(errs, domain.FieldError{Field: "scheduled_timezone", Message: "must be a valid IANA timezone"})
	}

	return errs
}

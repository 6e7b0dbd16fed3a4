package domain

import (
	"time"

	"github.com/google/uuid"
)

// EditHistoryEntry is one immutable record in a draft's edit ledger.
// An entry is appended only when the effective content actually changes
// on an editable draft; lifecycle transitions never produce entries.
type EditHistoryEntry struct {
	ID              uuid.UUID
	DraftID         uuid.UUID
	Editor          Identity
	PreviousContent string
	NewContent      string
	Summary         *string
	CreatedAt       time.Time
}

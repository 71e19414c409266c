package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// KudosEvent is one recorded act of public recognition. Events are immutable
// once recorded; they are created only by a successful command or modal
// submission and never updated or deleted by the system itself.
type KudosEvent struct {
	ID           uuid.UUID
	CreatedAt    time.Time
	SenderID     string
	RecipientIDs []string // ordered, non-empty; duplicates preserved
	Message      string
	ChannelID    string
}

// KudosStore is the persistence contract for kudos events. Adapters only need
// append plus a time-filtered scan; callers must not rely on the ordering of
// RecentSince results.
type KudosStore interface {
	Append(ctx context.Context, event KudosEvent) error
	RecentSince(ctx context.Context, cutoff time.Time) ([]KudosEvent, error)
}

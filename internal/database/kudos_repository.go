package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/TimoKask/Creditstar-Kudos/internal/domain"
)

// kudosColumns must match the Scan order in scanKudosEvent.
const kudosColumns = `id, created_at, sender_id, recipient_ids, message, channel_id`

// KudosRepo implements domain.KudosStore backed by PostgreSQL.
type KudosRepo struct {
	pool *pgxpool.Pool
}

var _ domain.KudosStore = (*KudosRepo)(nil)

func NewKudosRepo(pool *pgxpool.Pool) *KudosRepo {
	return &KudosRepo{pool: pool}
}

func (r *KudosRepo) Append(ctx context.Context, event domain.KudosEvent) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO kudos_events (`+kudosColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, event.ID, event.CreatedAt, event.SenderID, event.RecipientIDs, event.Message, event.ChannelID)
	if err != nil {
		return fmt.Errorf("failed to insert kudos event: %w", err)
	}
	return nil
}

// RecentSince returns events with created_at >= cutoff, newest first.
func (r *KudosRepo) RecentSince(ctx context.Context, cutoff time.Time) ([]domain.KudosEvent, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+kudosColumns+`
		FROM kudos_events
		WHERE created_at >= $1
		ORDER BY created_at DESC
	`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query kudos events: %w", err)
	}
	defer rows.Close()

	var events []domain.KudosEvent
	for rows.Next() {
		event, err := scanKudosEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read kudos events: %w", err)
	}
	return events, nil
}

func scanKudosEvent(row pgx.Row) (domain.KudosEvent, error) {
	var event domain.KudosEvent
	err := row.Scan(
		&event.ID, &event.CreatedAt, &event.SenderID,
		&event.RecipientIDs, &event.Message, &event.ChannelID,
	)
	if err != nil {
		return domain.KudosEvent{}, fmt.Errorf("failed to scan kudos event: %w", err)
	}
	return event, nil
}

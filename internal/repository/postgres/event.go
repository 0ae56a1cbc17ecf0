package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Kerhoff/RosterboT/internal/models"
	"github.com/Kerhoff/RosterboT/internal/repository"
)

type eventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) FindNext(ctx context.Context, chatJID string, today time.Time) (*models.Event, error) {
	query := `
		SELECT id, chat_group_jid, event_date, start_at, end_at, template, created_at, updated_at
		FROM event
		WHERE chat_group_jid = $1
		AND event_date >= $2
		ORDER BY event_date ASC
		LIMIT 1`

	event := &models.Event{}
	err := r.db.QueryRowContext(ctx, query, chatJID, today.Format("2006-01-02")).Scan(
		&event.ID,
		&event.ChatGroupJID,
		&event.EventDate,
		&event.StartAt,
		&event.EndAt,
		&event.Template,
		&event.CreatedAt,
		&event.UpdatedAt,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find next event: %w", err)
	}

	return event, nil
}

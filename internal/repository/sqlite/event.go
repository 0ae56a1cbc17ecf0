package sqlite

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
	stmt, err := r.db.PrepareContext(ctx, `
		SELECT id, chat_group_jid, event_date, start_at, end_at, template, created_at, updated_at
		FROM event
		WHERE chat_group_jid = ?
		AND event_date >= ?
		ORDER BY event_date ASC
		LIMIT 1`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare next event query: %w", err)
	}
	defer stmt.Close()

	var (
		event                models.Event
		date, start, end     string
		createdAt, updatedAt string
	)
	err = stmt.QueryRowContext(ctx, chatJID, today.Format(dateLayout)).Scan(
		&event.ID,
		&event.ChatGroupJID,
		&date,
		&start,
		&end,
		&event.Template,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find next event: %w", err)
	}

	if event.EventDate, err = parseDate(date); err != nil {
		return nil, err
	}
	if event.StartAt, err = parseClock(start); err != nil {
		return nil, err
	}
	if event.EndAt, err = parseClock(end); err != nil {
		return nil, err
	}
	if event.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, err
	}
	if event.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, err
	}

	return &event, nil
}

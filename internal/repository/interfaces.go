package repository

import (
	"context"
	"time"

	"github.com/Kerhoff/RosterboT/internal/models"
)

// ChatGroupRepository defines the interface for chat registration lookups
type ChatGroupRepository interface {
	Exists(ctx context.Context, jid string) (bool, error)
}

// EventRepository defines the interface for event lookups
type EventRepository interface {
	// FindNext returns the soonest event of the chat dated on or after today,
	// or nil when there is none.
	FindNext(ctx context.Context, chatJID string, today time.Time) (*models.Event, error)
}

// PersonRepository defines the interface for attendee operations
type PersonRepository interface {
	// ListByEvent returns the attendees in registration order.
	ListByEvent(ctx context.Context, eventID int64) ([]*models.Person, error)
	// Create inserts an attendee. It fails with ErrDuplicatePerson when the
	// sender is already registered for the event.
	Create(ctx context.Context, person *models.Person) (*models.Person, error)
}

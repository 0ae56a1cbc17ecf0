package models

import "time"

// Event is a scheduled meeting of a chat group. Events are created outside the
// bot and only read here.
type Event struct {
	ID           int64     `json:"id" db:"id"`
	ChatGroupJID string    `json:"chat_group_jid" db:"chat_group_jid"`
	EventDate    time.Time `json:"event_date" db:"event_date"`
	StartAt      time.Time `json:"start_at" db:"start_at"` // clock part only
	EndAt        time.Time `json:"end_at" db:"end_at"`     // clock part only
	Template     string    `json:"template" db:"template"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Weekday returns the day of the week the event falls on.
func (e *Event) Weekday() time.Weekday {
	return e.EventDate.Weekday()
}

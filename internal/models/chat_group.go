package models

import "time"

// ChatGroup is a chat allowed to use the bot
type ChatGroup struct {
	JID       string    `json:"jid" db:"jid"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

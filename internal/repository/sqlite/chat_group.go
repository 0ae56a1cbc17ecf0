package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Kerhoff/RosterboT/internal/repository"
)

type chatGroupRepository struct {
	db *sql.DB
}

// NewChatGroupRepository creates a new chat group repository
func NewChatGroupRepository(db *sql.DB) repository.ChatGroupRepository {
	return &chatGroupRepository{db: db}
}

func (r *chatGroupRepository) Exists(ctx context.Context, jid string) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM chat_group WHERE jid = ?", jid).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check chat group: %w", err)
	}

	return count > 0, nil
}

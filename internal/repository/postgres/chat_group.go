package postgres

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
	query := `SELECT EXISTS (SELECT 1 FROM chat_group WHERE jid = $1)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, jid).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check chat group: %w", err)
	}

	return exists, nil
}

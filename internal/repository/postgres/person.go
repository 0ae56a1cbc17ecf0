package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/Kerhoff/RosterboT/internal/models"
	"github.com/Kerhoff/RosterboT/internal/repository"
)

// uniqueViolation is the SQLSTATE of unique_violation.
const uniqueViolation = pq.ErrorCode("23505")

type personRepository struct {
	db *sql.DB
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *sql.DB) repository.PersonRepository {
	return &personRepository{db: db}
}

func (r *personRepository) ListByEvent(ctx context.Context, eventID int64) ([]*models.Person, error) {
	query := `
		SELECT id, event_id, sender_jid, slug, name, created_at, updated_at
		FROM person
		WHERE event_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	var persons []*models.Person
	for rows.Next() {
		person := &models.Person{}
		if err := rows.Scan(
			&person.ID,
			&person.EventID,
			&person.SenderJID,
			&person.Slug,
			&person.Name,
			&person.CreatedAt,
			&person.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		persons = append(persons, person)
	}

	return persons, rows.Err()
}

func (r *personRepository) Create(ctx context.Context, person *models.Person) (*models.Person, error) {
	query := `
		INSERT INTO person (event_id, sender_jid, slug, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	now := time.Now()
	person.CreatedAt = now
	person.UpdatedAt = now

	err := r.db.QueryRowContext(ctx, query,
		person.EventID,
		person.SenderJID,
		person.Slug,
		person.Name,
		person.CreatedAt,
		person.UpdatedAt,
	).Scan(&person.ID)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("event %d, sender %s: %w", person.EventID, person.SenderJID, repository.ErrDuplicatePerson)
		}
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return person, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

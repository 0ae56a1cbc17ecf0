package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/Kerhoff/RosterboT/internal/models"
	"github.com/Kerhoff/RosterboT/internal/repository"
)

type personRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db *sql.DB) repository.PersonRepository {
	return &personRepository{db: db, now: time.Now}
}

func (r *personRepository) ListByEvent(ctx context.Context, eventID int64) ([]*models.Person, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, event_id, sender_jid, slug, name, created_at, updated_at
		FROM person
		WHERE event_id = ?
		ORDER BY created_at ASC, id ASC`, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to query persons: %w", err)
	}
	defer rows.Close()

	var persons []*models.Person
	for rows.Next() {
		var (
			person               models.Person
			createdAt, updatedAt string
		)
		if err := rows.Scan(
			&person.ID,
			&person.EventID,
			&person.SenderJID,
			&person.Slug,
			&person.Name,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan person: %w", err)
		}
		if person.CreatedAt, err = parseTimestamp(createdAt); err != nil {
			return nil, err
		}
		if person.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
			return nil, err
		}
		persons = append(persons, &person)
	}

	return persons, rows.Err()
}

func (r *personRepository) Create(ctx context.Context, person *models.Person) (*models.Person, error) {
	stmt, err := r.db.PrepareContext(ctx, `
		INSERT INTO person (event_id, sender_jid, slug, name, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare person insert: %w", err)
	}
	defer stmt.Close()

	now := r.now().UTC()
	person.CreatedAt = now
	person.UpdatedAt = now

	result, err := stmt.ExecContext(ctx,
		person.EventID,
		person.SenderJID,
		person.Slug,
		person.Name,
		formatTimestamp(person.CreatedAt),
		formatTimestamp(person.UpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("event %d, sender %s: %w", person.EventID, person.SenderJID, repository.ErrDuplicatePerson)
		}
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	if person.ID, err = result.LastInsertId(); err != nil {
		return nil, fmt.Errorf("failed to get person id: %w", err)
	}

	return person, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

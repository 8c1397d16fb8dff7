package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"AlumniJobForm_Backend/internal/models"
)

const formColumns = `token_no, name, email, contact, batch, location, skillset,
	company, experience, ctc, message, attachment, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanForm(row rowScanner) (models.FormRecord, error) {
	var f models.FormRecord
	var attachment sql.NullString
	var createdStr, updatedStr string

	err := row.Scan(
		&f.TokenNo, &f.Name, &f.Email, &f.Contact, &f.Batch, &f.Location, &f.Skillset,
		&f.Company, &f.Experience, &f.CTC, &f.Message, &attachment, &createdStr, &updatedStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return f, ErrNotFound
		}
		return f, err
	}
	if attachment.Valid {
		f.Attachment = &attachment.String
	}
	f.CreatedAt = parseTime(createdStr)
	f.UpdatedAt = parseTime(updatedStr)
	return f, nil
}

// CreateForm assigns the next tracking token to f and inserts it. The token
// allocation and the insert share one transaction, so a failed insert never
// leaves a half-created submission behind.
func (s *Store) CreateForm(ctx context.Context, f *models.FormRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("CreateForm(): failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := s.now()
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO forms(`+formColumns+`)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("CreateForm(): failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	var attachment sql.NullString
	if f.Attachment != nil {
		attachment = sql.NullString{String: *f.Attachment, Valid: true}
	}

	var token string
	for attempt := 1; ; attempt++ {
		token, err = nextToken(ctx, tx)
		if err != nil {
			return err
		}
		// A failed statement leaves the transaction open, so the advanced
		// counter survives and the next attempt gets a fresh value.
		_, err = stmt.ExecContext(ctx,
			token, f.Name, f.Email, f.Contact, f.Batch, f.Location, f.Skillset,
			f.Company, f.Experience, f.CTC, f.Message, attachment,
			formatTime(now), formatTime(now),
		)
		if err == nil {
			break
		}
		if !isUniqueViolation(err) || attempt == maxTokenAttempts {
			return fmt.Errorf("CreateForm(): failed to insert form %s: %w", token, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("CreateForm(): failed to commit: %w", err)
	}
	f.TokenNo = token
	f.CreatedAt = now.UTC()
	f.UpdatedAt = now.UTC()
	return nil
}

func (s *Store) GetForm(ctx context.Context, token string) (models.FormRecord, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+formColumns+" FROM forms WHERE token_no = ?", token)
	return scanForm(row)
}

// UpdateForm applies every non-nil field of patch and returns the updated record.
func (s *Store) UpdateForm(ctx context.Context, token string, patch models.FormPatch) (models.FormRecord, error) {
	var sets []string
	var args []any
	add := func(column string, value *string) {
		if value != nil {
			sets = append(sets, column+" = ?")
			args = append(args, *value)
		}
	}
	add("name", patch.Name)
	add("email", patch.Email)
	add("contact", patch.Contact)
	add("batch", patch.Batch)
	add("location", patch.Location)
	add("skillset", patch.Skillset)
	add("company", patch.Company)
	add("experience", patch.Experience)
	add("ctc", patch.CTC)
	add("message", patch.Message)

	sets = append(sets, "updated_at = ?")
	args = append(args, formatTime(s.now()), token)

	query := "UPDATE forms SET " + strings.Join(sets, ", ") +
		" WHERE token_no = ? RETURNING " + formColumns
	f, err := scanForm(s.db.QueryRowContext(ctx, query, args...))
	if err != nil && !errors.Is(err, ErrNotFound) {
		return f, fmt.Errorf("UpdateForm(): failed to update form %s: %w", token, err)
	}
	return f, err
}

// SetAttachment replaces the attachment path of the form and returns the
// path it replaced, if any.
func (s *Store) SetAttachment(ctx context.Context, token, path string) (*string, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("SetAttachment(): failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var previous sql.NullString
	err = tx.QueryRowContext(ctx, "SELECT attachment FROM forms WHERE token_no = ?", token).Scan(&previous)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("SetAttachment(): failed to read form %s: %w", token, err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE forms SET attachment = ?, updated_at = ? WHERE token_no = ?",
		path, formatTime(s.now()), token,
	)
	if err != nil {
		return nil, fmt.Errorf("SetAttachment(): failed to update form %s: %w", token, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("SetAttachment(): failed to commit: %w", err)
	}

	if !previous.Valid {
		return nil, nil
	}
	return &previous.String, nil
}

// DeleteForm removes the form and returns the deleted record.
func (s *Store) DeleteForm(ctx context.Context, token string) (models.FormRecord, error) {
	row := s.db.QueryRowContext(ctx, "DELETE FROM forms WHERE token_no = ? RETURNING "+formColumns, token)
	f, err := scanForm(row)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return f, fmt.Errorf("DeleteForm(): failed to delete form %s: %w", token, err)
	}
	return f, err
}

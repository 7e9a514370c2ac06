package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/studyquiz/back/internal/models"
)

type MySQLNoteRepository struct {
	db *sqlx.DB
}

func NewMySQLNoteRepository(db *sqlx.DB) NoteRepository {
	return &MySQLNoteRepository{db: db}
}

func (r *MySQLNoteRepository) Create(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO notes (quiz_id, title, content, created_at, updated_at)
		VALUES (?, ?, ?, NOW(), NOW())
	`

	result, err := r.db.ExecContext(ctx, query,
		note.QuizID,
		note.Title,
		note.Content,
	)
	if err != nil {
		return fmt.Errorf("failed to create note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	note.ID = id
	return nil
}

func (r *MySQLNoteRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	query := `
		SELECT id, quiz_id, title, content, created_at, updated_at
		FROM notes
		WHERE id = ?
	`

	var note models.Note
	err := r.db.GetContext(ctx, &note, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("note not found")
		}
		return nil, fmt.Errorf("failed to get note: %w", err)
	}

	return &note, nil
}

func (r *MySQLNoteRepository) GetAll(ctx context.Context) ([]*models.Note, error) {
	query := `
		SELECT id, quiz_id, title, content, created_at, updated_at
		FROM notes
		ORDER BY updated_at DESC, id DESC
	`

	var notes []*models.Note
	if err := r.db.SelectContext(ctx, &notes, query); err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}

	return notes, nil
}

func (r *MySQLNoteRepository) GetByQuizID(ctx context.Context, quizID int64) ([]*models.Note, error) {
	query := `
		SELECT id, quiz_id, title, content, created_at, updated_at
		FROM notes
		WHERE quiz_id = ?
		ORDER BY updated_at DESC, id DESC
	`

	var notes []*models.Note
	if err := r.db.SelectContext(ctx, &notes, query, quizID); err != nil {
		return nil, fmt.Errorf("failed to get notes: %w", err)
	}

	return notes, nil
}

func (r *MySQLNoteRepository) Update(ctx context.Context, note *models.Note) error {
	query := `
		UPDATE notes
		SET title = ?, content = ?, updated_at = NOW()
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query, note.Title, note.Content, note.ID)
	if err != nil {
		return fmt.Errorf("failed to update note: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("note not found")
	}

	return nil
}

func (r *MySQLNoteRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM notes WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("note not found")
	}

	return nil
}

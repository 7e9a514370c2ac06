package repositories

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/studyquiz/back/internal/models"
)

type MySQLBookmarkRepository struct {
	db *sqlx.DB
}

func NewMySQLBookmarkRepository(db *sqlx.DB) BookmarkRepository {
	return &MySQLBookmarkRepository{db: db}
}

func (r *MySQLBookmarkRepository) Create(ctx context.Context, bookmark *models.Bookmark) error {
	query := `
		INSERT INTO bookmarks (question_id, created_at)
		VALUES (?, NOW())
	`

	result, err := r.db.ExecContext(ctx, query, bookmark.QuestionID)
	if err != nil {
		return fmt.Errorf("failed to create bookmark: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	bookmark.ID = id
	return nil
}

func (r *MySQLBookmarkRepository) DeleteByQuestionID(ctx context.Context, questionID int64) error {
	query := `DELETE FROM bookmarks WHERE question_id = ?`

	result, err := r.db.ExecContext(ctx, query, questionID)
	if err != nil {
		return fmt.Errorf("failed to delete bookmark: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("bookmark not found")
	}

	return nil
}

func (r *MySQLBookmarkRepository) GetAll(ctx context.Context) ([]*models.Bookmark, error) {
	query := `
		SELECT id, question_id, created_at
		FROM bookmarks
		ORDER BY created_at DESC, id DESC
	`

	var bookmarks []*models.Bookmark
	if err := r.db.SelectContext(ctx, &bookmarks, query); err != nil {
		return nil, fmt.Errorf("failed to get bookmarks: %w", err)
	}

	return bookmarks, nil
}

func (r *MySQLBookmarkRepository) ExistsByQuestionID(ctx context.Context, questionID int64) (bool, error) {
	query := `SELECT COUNT(*) FROM bookmarks WHERE question_id = ?`

	var count int
	if err := r.db.GetContext(ctx, &count, query, questionID); err != nil {
		return false, fmt.Errorf("failed to check bookmark: %w", err)
	}

	return count > 0, nil
}

package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/studyquiz/back/internal/models"
)

type MySQLQuizRepository struct {
	db *sqlx.DB
}

func NewMySQLQuizRepository(db *sqlx.DB) QuizRepository {
	return &MySQLQuizRepository{db: db}
}

func (r *MySQLQuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	query := `
		INSERT INTO quizzes (title, source_filename, question_type, question_count, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`

	result, err := r.db.ExecContext(ctx, query,
		quiz.Title,
		quiz.SourceFilename,
		quiz.QuestionType,
		quiz.QuestionCount,
	)
	if err != nil {
		return fmt.Errorf("failed to create quiz: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	quiz.ID = id
	return nil
}

func (r *MySQLQuizRepository) GetByID(ctx context.Context, id int64) (*models.Quiz, error) {
	quiz := &models.Quiz{}
	query := `
		SELECT id, title, source_filename, question_type, question_count, created_at
		FROM quizzes
		WHERE id = ?
	`

	err := r.db.GetContext(ctx, quiz, query, id)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("quiz not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quiz: %w", err)
	}

	return quiz, nil
}

func (r *MySQLQuizRepository) GetAll(ctx context.Context, limit, offset int) ([]*models.Quiz, error) {
	query := `
		SELECT id, title, source_filename, question_type, question_count, created_at
		FROM quizzes
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`

	var quizzes []*models.Quiz
	if err := r.db.SelectContext(ctx, &quizzes, query, limit, offset); err != nil {
		return nil, fmt.Errorf("failed to get quizzes: %w", err)
	}

	return quizzes, nil
}

func (r *MySQLQuizRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM quizzes WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete quiz: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("quiz not found")
	}

	return nil
}

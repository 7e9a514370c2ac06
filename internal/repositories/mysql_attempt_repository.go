package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/studyquiz/back/internal/models"
)

type MySQLAttemptRepository struct {
	db *sqlx.DB
}

func NewMySQLAttemptRepository(db *sqlx.DB) AttemptRepository {
	return &MySQLAttemptRepository{db: db}
}

// 共通のスキャン処理（answers JSONカラム対応）
func (r *MySQLAttemptRepository) scanAttempt(rows *sql.Rows) (*models.Attempt, error) {
	var attempt models.Attempt
	var answersJSON []byte

	err := rows.Scan(
		&attempt.ID,
		&attempt.QuizID,
		&attempt.Score,
		&attempt.TotalQuestions,
		&answersJSON,
		&attempt.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(answersJSON) > 0 {
		if err := json.Unmarshal(answersJSON, &attempt.Answers); err != nil {
			return nil, fmt.Errorf("failed to unmarshal answers: %w", err)
		}
	}

	return &attempt, nil
}

func (r *MySQLAttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	var answersJSON []byte
	var err error
	if attempt.Answers != nil {
		answersJSON, err = json.Marshal(attempt.Answers)
		if err != nil {
			return fmt.Errorf("failed to marshal answers: %w", err)
		}
	}

	query := `
		INSERT INTO attempts (quiz_id, score, total_questions, answers, created_at)
		VALUES (?, ?, ?, ?, NOW())
	`

	result, err := r.db.ExecContext(ctx, query,
		attempt.QuizID,
		attempt.Score,
		attempt.TotalQuestions,
		answersJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to create attempt: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	attempt.ID = id
	return nil
}

func (r *MySQLAttemptRepository) GetByQuizID(ctx context.Context, quizID int64) ([]*models.Attempt, error) {
	query := `
		SELECT id, quiz_id, score, total_questions, answers, created_at
		FROM attempts
		WHERE quiz_id = ?
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.QueryContext(ctx, query, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempts: %w", err)
	}
	defer rows.Close()

	var attempts []*models.Attempt
	for rows.Next() {
		attempt, err := r.scanAttempt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, attempt)
	}

	return attempts, nil
}

func (r *MySQLAttemptRepository) GetAll(ctx context.Context, limit, offset int) ([]*models.Attempt, error) {
	query := `
		SELECT id, quiz_id, score, total_questions, answers, created_at
		FROM attempts
		ORDER BY created_at DESC, id DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get attempts: %w", err)
	}
	defer rows.Close()

	var attempts []*models.Attempt
	for rows.Next() {
		attempt, err := r.scanAttempt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, attempt)
	}

	return attempts, nil
}

func (r *MySQLAttemptRepository) DeleteByQuizID(ctx context.Context, quizID int64) error {
	query := `DELETE FROM attempts WHERE quiz_id = ?`

	if _, err := r.db.ExecContext(ctx, query, quizID); err != nil {
		return fmt.Errorf("failed to delete attempts: %w", err)
	}

	return nil
}

package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/studyquiz/back/internal/models"
)

type MySQLQuestionRepository struct {
	db *sqlx.DB
}

func NewMySQLQuestionRepository(db *sqlx.DB) QuestionRepository {
	return &MySQLQuestionRepository{db: db}
}

// 共通のスキャン処理（options JSONカラム対応）
func (r *MySQLQuestionRepository) scanQuestion(rows *sql.Rows) (*models.Question, error) {
	var question models.Question
	var optionsJSON []byte

	err := rows.Scan(
		&question.ID,
		&question.QuizID,
		&question.Position,
		&question.Type,
		&question.QuestionText,
		&optionsJSON,
		&question.CorrectAnswer,
		&question.Explanation,
		&question.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(optionsJSON) > 0 {
		if err := json.Unmarshal(optionsJSON, &question.Options); err != nil {
			return nil, fmt.Errorf("failed to unmarshal options: %w", err)
		}
	}

	return &question, nil
}

// 共通のスキャン処理（単一行用）
func (r *MySQLQuestionRepository) scanQuestionRow(row *sql.Row) (*models.Question, error) {
	var question models.Question
	var optionsJSON []byte

	err := row.Scan(
		&question.ID,
		&question.QuizID,
		&question.Position,
		&question.Type,
		&question.QuestionText,
		&optionsJSON,
		&question.CorrectAnswer,
		&question.Explanation,
		&question.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(optionsJSON) > 0 {
		if err := json.Unmarshal(optionsJSON, &question.Options); err != nil {
			return nil, fmt.Errorf("failed to unmarshal options: %w", err)
		}
	}

	return &question, nil
}

func (r *MySQLQuestionRepository) CreateBatch(ctx context.Context, quizID int64, generated []models.GeneratedQuestion) ([]*models.Question, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO questions (quiz_id, position, type, question_text, options, correct_answer, explanation, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, NOW())
	`

	questions := make([]*models.Question, 0, len(generated))
	for i, g := range generated {
		var optionsJSON []byte
		if g.Options != nil {
			optionsJSON, err = json.Marshal(g.Options)
			if err != nil {
				return nil, fmt.Errorf("failed to marshal options: %w", err)
			}
		}

		result, err := tx.ExecContext(ctx, query,
			quizID,
			i+1,
			string(g.Type),
			g.QuestionText,
			optionsJSON,
			g.CorrectAnswer,
			g.Explanation,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to create question %d: %w", i+1, err)
		}

		id, err := result.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("failed to get last insert id: %w", err)
		}

		questions = append(questions, &models.Question{
			ID:            id,
			QuizID:        quizID,
			Position:      i + 1,
			Type:          string(g.Type),
			QuestionText:  g.QuestionText,
			Options:       g.Options,
			CorrectAnswer: g.CorrectAnswer,
			Explanation:   g.Explanation,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return questions, nil
}

func (r *MySQLQuestionRepository) GetByQuizID(ctx context.Context, quizID int64) ([]*models.Question, error) {
	query := `
		SELECT id, quiz_id, position, type, question_text, options, correct_answer, explanation, created_at
		FROM questions
		WHERE quiz_id = ?
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	defer rows.Close()

	var questions []*models.Question
	for rows.Next() {
		question, err := r.scanQuestion(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan question: %w", err)
		}
		questions = append(questions, question)
	}

	return questions, nil
}

func (r *MySQLQuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	query := `
		SELECT id, quiz_id, position, type, question_text, options, correct_answer, explanation, created_at
		FROM questions
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	question, err := r.scanQuestionRow(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("question not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get question: %w", err)
	}

	return question, nil
}

func (r *MySQLQuestionRepository) DeleteByQuizID(ctx context.Context, quizID int64) error {
	query := `DELETE FROM questions WHERE quiz_id = ?`

	if _, err := r.db.ExecContext(ctx, query, quizID); err != nil {
		return fmt.Errorf("failed to delete questions: %w", err)
	}

	return nil
}

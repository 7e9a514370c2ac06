package models

import "time"

// Attempt はクイズ1回分の受験記録
type Attempt struct {
	ID             int64             `json:"id" db:"id"`
	QuizID         int64             `json:"quiz_id" db:"quiz_id"`
	Score          int               `json:"score" db:"score"`
	TotalQuestions int               `json:"total_questions" db:"total_questions"`
	Answers        map[string]string `json:"answers" db:"answers"` // 問題番号 → 回答
	CreatedAt      time.Time         `json:"created_at" db:"created_at"`
}

type CreateAttemptRequest struct {
	QuizID         int64             `json:"quizId" validate:"required"`
	Score          int               `json:"score"`
	TotalQuestions int               `json:"totalQuestions" validate:"required"`
	Answers        map[string]string `json:"answers"`
}

type AttemptResponse struct {
	Success bool     `json:"success"`
	Attempt *Attempt `json:"attempt,omitempty"`
	Error   string   `json:"error,omitempty"`
}

type AttemptListResponse struct {
	Success  bool       `json:"success"`
	Attempts []*Attempt `json:"attempts"`
	Count    int        `json:"count"`
	Error    string     `json:"error,omitempty"`
}

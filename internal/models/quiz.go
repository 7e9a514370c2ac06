package models

import "time"

type Quiz struct {
	ID             int64       `json:"id" db:"id"`
	Title          string      `json:"title" db:"title"`
	SourceFilename string      `json:"source_filename" db:"source_filename"`
	QuestionType   string      `json:"question_type" db:"question_type"`
	QuestionCount  int         `json:"question_count" db:"question_count"`
	CreatedAt      time.Time   `json:"created_at" db:"created_at"`
	Questions      []*Question `json:"questions,omitempty"`
}

type GenerateQuizRequest struct {
	Content       string `json:"content" validate:"required"`
	Filename      string `json:"filename"`
	QuestionType  string `json:"questionType" validate:"required"`
	QuestionCount int    `json:"questionCount" validate:"required"`
}

type GenerateQuizResponse struct {
	Success       bool   `json:"success"`
	QuizID        int64  `json:"quizId,omitempty"`
	Title         string `json:"title,omitempty"`
	QuestionCount int    `json:"questionCount,omitempty"`
	Error         string `json:"error,omitempty"`
}

type QuizListResponse struct {
	Success bool    `json:"success"`
	Quizzes []*Quiz `json:"quizzes"`
	Count   int     `json:"count"`
	Error   string  `json:"error,omitempty"`
}

type QuizDetailResponse struct {
	Success bool   `json:"success"`
	Quiz    *Quiz  `json:"quiz,omitempty"`
	Error   string `json:"error,omitempty"`
}

package models

import "time"

// Note は学習メモ。クイズに紐付けることもできる
type Note struct {
	ID        int64     `json:"id" db:"id"`
	QuizID    *int64    `json:"quiz_id,omitempty" db:"quiz_id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

type CreateNoteRequest struct {
	QuizID  *int64 `json:"quizId,omitempty"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type UpdateNoteRequest struct {
	ID      int64  `json:"id" validate:"required"`
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

type NoteResponse struct {
	Success bool   `json:"success"`
	Note    *Note  `json:"note,omitempty"`
	Error   string `json:"error,omitempty"`
}

type NoteListResponse struct {
	Success bool    `json:"success"`
	Notes   []*Note `json:"notes"`
	Count   int     `json:"count"`
	Error   string  `json:"error,omitempty"`
}

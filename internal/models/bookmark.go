package models

import "time"

type Bookmark struct {
	ID         int64     `json:"id" db:"id"`
	QuestionID int64     `json:"question_id" db:"question_id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

type CreateBookmarkRequest struct {
	QuestionID int64 `json:"questionId" validate:"required"`
}

type BookmarkResponse struct {
	Success  bool      `json:"success"`
	Bookmark *Bookmark `json:"bookmark,omitempty"`
	Error    string    `json:"error,omitempty"`
}

// BookmarkedQuestionsResponse はブックマーク済み問題の一覧（問題データ結合済み）
type BookmarkedQuestionsResponse struct {
	Success   bool        `json:"success"`
	Questions []*Question `json:"questions"`
	Count     int         `json:"count"`
	Error     string      `json:"error,omitempty"`
}

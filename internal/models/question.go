package models

import "time"

// QuestionType は生成する問題の形式
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeIdentification QuestionType = "identification"
	QuestionTypeTrueFalse      QuestionType = "true_false"
	QuestionTypeMixed          QuestionType = "mixed" // 入力専用。出力の問題には現れない
)

// IsValid は選択可能な問題形式かどうかを返す
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeIdentification, QuestionTypeTrueFalse, QuestionTypeMixed:
		return true
	}
	return false
}

// GeneratedQuestion はLLMレスポンスから組み立てた1問分のデータ
type GeneratedQuestion struct {
	Type          QuestionType `json:"type"`
	QuestionText  string       `json:"question_text"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer"`
	Explanation   string       `json:"explanation,omitempty"`
}

type Question struct {
	ID            int64     `json:"id" db:"id"`
	QuizID        int64     `json:"quiz_id" db:"quiz_id"`
	Position      int       `json:"position" db:"position"`
	Type          string    `json:"type" db:"type"`
	QuestionText  string    `json:"question_text" db:"question_text"`
	Options       []string  `json:"options,omitempty" db:"options"`
	CorrectAnswer string    `json:"correct_answer" db:"correct_answer"`
	Explanation   string    `json:"explanation,omitempty" db:"explanation"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

package repositories

import (
	"context"
	"testing"

	"github.com/studyquiz/back/internal/models"
)

func TestMemoryQuestionRepositoryCreateBatch(t *testing.T) {
	repo := NewMemoryQuestionRepository()
	ctx := context.Background()

	generated := []models.GeneratedQuestion{
		{Type: models.QuestionTypeMultipleChoice, QuestionText: "Q1", Options: []string{"A", "B", "C", "D"}, CorrectAnswer: "A"},
		{Type: models.QuestionTypeIdentification, QuestionText: "Q2", CorrectAnswer: "Osmosis"},
		{Type: models.QuestionTypeTrueFalse, QuestionText: "Q3", Options: []string{"True", "False"}, CorrectAnswer: "False"},
	}

	created, err := repo.CreateBatch(ctx, 7, generated)
	if err != nil {
		t.Fatalf("CreateBatch returned error: %v", err)
	}
	if len(created) != 3 {
		t.Fatalf("got %d questions, want 3", len(created))
	}

	for i, question := range created {
		if question.ID != int64(i+1) {
			t.Errorf("created[%d].ID = %d, want %d", i, question.ID, i+1)
		}
		if question.Position != i+1 {
			t.Errorf("created[%d].Position = %d, want %d", i, question.Position, i+1)
		}
		if question.QuizID != 7 {
			t.Errorf("created[%d].QuizID = %d, want 7", i, question.QuizID)
		}
	}
	if created[1].Type != "identification" {
		t.Errorf("created[1].Type = %q, want identification", created[1].Type)
	}
}

func TestMemoryQuestionRepositoryGetByQuizID(t *testing.T) {
	repo := NewMemoryQuestionRepository()
	ctx := context.Background()

	first := []models.GeneratedQuestion{
		{Type: models.QuestionTypeIdentification, QuestionText: "Quiz1 Q1", CorrectAnswer: "a"},
		{Type: models.QuestionTypeIdentification, QuestionText: "Quiz1 Q2", CorrectAnswer: "b"},
	}
	second := []models.GeneratedQuestion{
		{Type: models.QuestionTypeIdentification, QuestionText: "Quiz2 Q1", CorrectAnswer: "c"},
	}

	if _, err := repo.CreateBatch(ctx, 1, first); err != nil {
		t.Fatalf("CreateBatch returned error: %v", err)
	}
	if _, err := repo.CreateBatch(ctx, 2, second); err != nil {
		t.Fatalf("CreateBatch returned error: %v", err)
	}

	questions, err := repo.GetByQuizID(ctx, 1)
	if err != nil {
		t.Fatalf("GetByQuizID returned error: %v", err)
	}
	if len(questions) != 2 {
		t.Fatalf("got %d questions for quiz 1, want 2", len(questions))
	}
	// 出題順で返る
	if questions[0].Position != 1 || questions[1].Position != 2 {
		t.Errorf("positions = %d, %d, want 1, 2", questions[0].Position, questions[1].Position)
	}
	if questions[0].QuestionText != "Quiz1 Q1" {
		t.Errorf("questions[0].QuestionText = %q", questions[0].QuestionText)
	}
}

func TestMemoryQuestionRepositoryDeleteByQuizID(t *testing.T) {
	repo := NewMemoryQuestionRepository()
	ctx := context.Background()

	kept := []models.GeneratedQuestion{{Type: models.QuestionTypeIdentification, QuestionText: "keep", CorrectAnswer: "x"}}
	dropped := []models.GeneratedQuestion{
		{Type: models.QuestionTypeIdentification, QuestionText: "drop 1", CorrectAnswer: "y"},
		{Type: models.QuestionTypeIdentification, QuestionText: "drop 2", CorrectAnswer: "z"},
	}

	keptCreated, err := repo.CreateBatch(ctx, 1, kept)
	if err != nil {
		t.Fatalf("CreateBatch returned error: %v", err)
	}
	if _, err := repo.CreateBatch(ctx, 2, dropped); err != nil {
		t.Fatalf("CreateBatch returned error: %v", err)
	}

	if err := repo.DeleteByQuizID(ctx, 2); err != nil {
		t.Fatalf("DeleteByQuizID returned error: %v", err)
	}

	remaining, err := repo.GetByQuizID(ctx, 2)
	if err != nil {
		t.Fatalf("GetByQuizID returned error: %v", err)
	}
	if len(remaining) != 0 {
		t.Errorf("quiz 2 still has %d questions after delete", len(remaining))
	}

	// 他のクイズの問題は残る
	if _, err := repo.GetByID(ctx, keptCreated[0].ID); err != nil {
		t.Errorf("question of another quiz was deleted: %v", err)
	}
}

package services

import (
	"context"
	"strings"
	"testing"

	"github.com/studyquiz/back/internal/models"
	"github.com/studyquiz/back/internal/repositories"
)

func newQuizServiceForTest(client *fakeCompletionClient) (QuizService, repositories.QuestionRepository, repositories.AttemptRepository) {
	generator := NewGeneratorService(client, defaultMixedSplit)
	quizRepo := repositories.NewMemoryQuizRepository()
	questionRepo := repositories.NewMemoryQuestionRepository()
	attemptRepo := repositories.NewMemoryAttemptRepository()
	return NewQuizService(generator, quizRepo, questionRepo, attemptRepo), questionRepo, attemptRepo
}

func TestQuizServiceGenerateQuiz(t *testing.T) {
	client := &fakeCompletionClient{
		response: `[
			{"type": "multiple_choice", "question_text": "Q1", "options": ["A", "B", "C", "D"], "correct_answer": "A", "explanation": "because A"},
			{"type": "multiple_choice", "question_text": "Q2", "options": ["A", "B", "C", "D"], "correct_answer": "B", "explanation": "because B"}
		]`,
	}
	service, questionRepo, _ := newQuizServiceForTest(client)

	quiz, err := service.GenerateQuiz(context.Background(), models.GenerateQuizRequest{
		Content:       "the study material",
		QuestionType:  "multiple_choice",
		QuestionCount: 2,
		Filename:      "intro_to_biology-week1.pptx",
	})
	if err != nil {
		t.Fatalf("GenerateQuiz returned error: %v", err)
	}

	if quiz.ID == 0 {
		t.Error("quiz.ID not assigned")
	}
	if quiz.Title != "intro to biology week1" {
		t.Errorf("Title = %q, want intro to biology week1", quiz.Title)
	}
	if quiz.SourceFilename != "intro_to_biology-week1.pptx" {
		t.Errorf("SourceFilename = %q", quiz.SourceFilename)
	}
	if quiz.QuestionCount != 2 {
		t.Errorf("QuestionCount = %d, want 2", quiz.QuestionCount)
	}
	if len(quiz.Questions) != 2 {
		t.Fatalf("got %d questions, want 2", len(quiz.Questions))
	}

	saved, err := questionRepo.GetByQuizID(context.Background(), quiz.ID)
	if err != nil {
		t.Fatalf("GetByQuizID returned error: %v", err)
	}
	if len(saved) != 2 {
		t.Errorf("saved %d questions, want 2", len(saved))
	}
}

func TestQuizServiceGenerateQuizStoresActualCount(t *testing.T) {
	// 3問要求しても2問しか返らなければ2問のクイズとして保存する
	client := &fakeCompletionClient{
		response: `[
			{"type": "identification", "question_text": "Q1", "correct_answer": "a"},
			{"type": "identification", "question_text": "Q2", "correct_answer": "b"}
		]`,
	}
	service, _, _ := newQuizServiceForTest(client)

	quiz, err := service.GenerateQuiz(context.Background(), models.GenerateQuizRequest{
		Content:       "short material",
		QuestionType:  "identification",
		QuestionCount: 3,
		Filename:      "notes.pdf",
	})
	if err != nil {
		t.Fatalf("GenerateQuiz returned error: %v", err)
	}
	if quiz.QuestionCount != 2 {
		t.Errorf("QuestionCount = %d, want 2 (actual generated count)", quiz.QuestionCount)
	}
}

func TestQuizServiceGenerateQuizEmptyResult(t *testing.T) {
	client := &fakeCompletionClient{response: `[]`}
	service, _, _ := newQuizServiceForTest(client)

	_, err := service.GenerateQuiz(context.Background(), models.GenerateQuizRequest{
		Content:       "material",
		QuestionType:  "true_false",
		QuestionCount: 5,
		Filename:      "deck.pptx",
	})
	if err == nil {
		t.Fatal("expected error for empty generation result, got nil")
	}
	if !strings.Contains(err.Error(), "no usable questions") {
		t.Errorf("error = %q, want no usable questions message", err.Error())
	}
}

func TestQuizServiceGetQuizAttachesQuestions(t *testing.T) {
	client := &fakeCompletionClient{
		response: `[{"type": "identification", "question_text": "Q1", "correct_answer": "a"}]`,
	}
	service, _, _ := newQuizServiceForTest(client)

	created, err := service.GenerateQuiz(context.Background(), models.GenerateQuizRequest{
		Content:       "material",
		QuestionType:  "identification",
		QuestionCount: 1,
		Filename:      "deck.pptx",
	})
	if err != nil {
		t.Fatalf("GenerateQuiz returned error: %v", err)
	}

	quiz, err := service.GetQuiz(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetQuiz returned error: %v", err)
	}
	if len(quiz.Questions) != 1 {
		t.Errorf("got %d questions, want 1", len(quiz.Questions))
	}

	if _, err := service.GetQuiz(context.Background(), 999); err == nil || err.Error() != "quiz not found" {
		t.Errorf("GetQuiz(999) error = %v, want quiz not found", err)
	}
}

func TestQuizServiceDeleteQuizRemovesRelatedRecords(t *testing.T) {
	client := &fakeCompletionClient{
		response: `[{"type": "identification", "question_text": "Q1", "correct_answer": "a"}]`,
	}
	service, questionRepo, attemptRepo := newQuizServiceForTest(client)
	ctx := context.Background()

	quiz, err := service.GenerateQuiz(ctx, models.GenerateQuizRequest{
		Content:       "material",
		QuestionType:  "identification",
		QuestionCount: 1,
		Filename:      "deck.pptx",
	})
	if err != nil {
		t.Fatalf("GenerateQuiz returned error: %v", err)
	}

	if err := attemptRepo.Create(ctx, &models.Attempt{QuizID: quiz.ID, Score: 1, TotalQuestions: 1}); err != nil {
		t.Fatalf("attempt Create returned error: %v", err)
	}

	if err := service.DeleteQuiz(ctx, quiz.ID); err != nil {
		t.Fatalf("DeleteQuiz returned error: %v", err)
	}

	if _, err := service.GetQuiz(ctx, quiz.ID); err == nil {
		t.Error("quiz still retrievable after delete")
	}
	questions, err := questionRepo.GetByQuizID(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("GetByQuizID returned error: %v", err)
	}
	if len(questions) != 0 {
		t.Errorf("%d questions remain after quiz delete", len(questions))
	}
	attempts, err := attemptRepo.GetByQuizID(ctx, quiz.ID)
	if err != nil {
		t.Fatalf("GetByQuizID returned error: %v", err)
	}
	if len(attempts) != 0 {
		t.Errorf("%d attempts remain after quiz delete", len(attempts))
	}

	if err := service.DeleteQuiz(ctx, quiz.ID); err == nil || err.Error() != "quiz not found" {
		t.Errorf("second DeleteQuiz error = %v, want quiz not found", err)
	}
}

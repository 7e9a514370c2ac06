package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/studyquiz/back/internal/models"
)

type stubQuizService struct {
	quiz    *models.Quiz
	quizzes []*models.Quiz
	err     error

	lastRequest models.GenerateQuizRequest
	deletedID   int64
}

func (s *stubQuizService) GenerateQuiz(ctx context.Context, req models.GenerateQuizRequest) (*models.Quiz, error) {
	s.lastRequest = req
	if s.err != nil {
		return nil, s.err
	}
	return s.quiz, nil
}

func (s *stubQuizService) GetQuiz(ctx context.Context, id int64) (*models.Quiz, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.quiz, nil
}

func (s *stubQuizService) ListQuizzes(ctx context.Context, limit, offset int) ([]*models.Quiz, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.quizzes, nil
}

func (s *stubQuizService) DeleteQuiz(ctx context.Context, id int64) error {
	s.deletedID = id
	return s.err
}

func TestQuizHandlerGenerateQuizValidation(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantError string
	}{
		{
			name:      "invalid json",
			body:      `{not json`,
			wantError: "Invalid JSON",
		},
		{
			name:      "missing content",
			body:      `{"content": "  ", "questionType": "multiple_choice", "questionCount": 5}`,
			wantError: "content is required",
		},
		{
			name:      "bad question type",
			body:      `{"content": "material", "questionType": "essay", "questionCount": 5}`,
			wantError: "questionType must be one of",
		},
		{
			name:      "count too low",
			body:      `{"content": "material", "questionType": "mixed", "questionCount": 0}`,
			wantError: "questionCount must be between 1 and 50",
		},
		{
			name:      "count too high",
			body:      `{"content": "material", "questionType": "mixed", "questionCount": 51}`,
			wantError: "questionCount must be between 1 and 50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewQuizHandler(&stubQuizService{})
			req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			handler.GenerateQuiz(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), tt.wantError) {
				t.Errorf("body = %s, want %q", rec.Body.String(), tt.wantError)
			}
		})
	}
}

func TestQuizHandlerGenerateQuizSuccess(t *testing.T) {
	stub := &stubQuizService{
		quiz: &models.Quiz{ID: 12, Title: "lecture 3", QuestionCount: 5},
	}
	handler := NewQuizHandler(stub)

	body := `{"content": "study material", "filename": "lecture 3.pdf", "questionType": "mixed", "questionCount": 5}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.GenerateQuiz(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rec.Code, rec.Body.String())
	}

	var response models.GenerateQuizResponse
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !response.Success || response.QuizID != 12 || response.Title != "lecture 3" || response.QuestionCount != 5 {
		t.Errorf("response = %+v", response)
	}

	if stub.lastRequest.QuestionType != "mixed" || stub.lastRequest.QuestionCount != 5 {
		t.Errorf("service received %+v", stub.lastRequest)
	}
}

func TestQuizHandlerGenerateQuizServiceError(t *testing.T) {
	stub := &stubQuizService{err: fmt.Errorf("the model returned no usable questions")}
	handler := NewQuizHandler(stub)

	body := `{"content": "material", "questionType": "true_false", "questionCount": 3}`
	req := httptest.NewRequest(http.MethodPost, "/api/generate-quiz", strings.NewReader(body))
	rec := httptest.NewRecorder()

	handler.GenerateQuiz(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "no usable questions") {
		t.Errorf("body = %s", rec.Body.String())
	}
}

func TestQuizHandlerGetQuiz(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		stub := &stubQuizService{quiz: &models.Quiz{ID: 3, Title: "algebra"}}
		handler := NewQuizHandler(stub)

		req := httptest.NewRequest(http.MethodGet, "/api/quiz?id=3", nil)
		rec := httptest.NewRecorder()
		handler.GetQuiz(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var response models.QuizDetailResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if response.Quiz == nil || response.Quiz.Title != "algebra" {
			t.Errorf("response = %+v", response)
		}
	})

	t.Run("not found", func(t *testing.T) {
		stub := &stubQuizService{err: fmt.Errorf("quiz not found")}
		handler := NewQuizHandler(stub)

		req := httptest.NewRequest(http.MethodGet, "/api/quiz?id=999", nil)
		rec := httptest.NewRecorder()
		handler.GetQuiz(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})

	t.Run("missing id", func(t *testing.T) {
		handler := NewQuizHandler(&stubQuizService{})

		req := httptest.NewRequest(http.MethodGet, "/api/quiz", nil)
		rec := httptest.NewRecorder()
		handler.GetQuiz(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "id parameter is required") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})

	t.Run("non numeric id", func(t *testing.T) {
		handler := NewQuizHandler(&stubQuizService{})

		req := httptest.NewRequest(http.MethodGet, "/api/quiz?id=abc", nil)
		rec := httptest.NewRecorder()
		handler.GetQuiz(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "id parameter must be a positive integer") {
			t.Errorf("body = %s", rec.Body.String())
		}
	})
}

func TestQuizHandlerListQuizzes(t *testing.T) {
	t.Run("with results", func(t *testing.T) {
		stub := &stubQuizService{quizzes: []*models.Quiz{{ID: 2}, {ID: 1}}}
		handler := NewQuizHandler(stub)

		req := httptest.NewRequest(http.MethodGet, "/api/quizzes", nil)
		rec := httptest.NewRecorder()
		handler.ListQuizzes(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var response models.QuizListResponse
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if response.Count != 2 || len(response.Quizzes) != 2 {
			t.Errorf("response = %+v", response)
		}
	})

	t.Run("empty list is an array", func(t *testing.T) {
		handler := NewQuizHandler(&stubQuizService{})

		req := httptest.NewRequest(http.MethodGet, "/api/quizzes", nil)
		rec := httptest.NewRecorder()
		handler.ListQuizzes(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		// nilでも"quizzes": []で返す
		if !strings.Contains(rec.Body.String(), `"quizzes":[]`) {
			t.Errorf("body = %s, want empty array", rec.Body.String())
		}
	})
}

func TestQuizHandlerDeleteQuiz(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		stub := &stubQuizService{}
		handler := NewQuizHandler(stub)

		req := httptest.NewRequest(http.MethodDelete, "/api/quiz?id=7", nil)
		rec := httptest.NewRecorder()
		handler.DeleteQuiz(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if stub.deletedID != 7 {
			t.Errorf("deletedID = %d, want 7", stub.deletedID)
		}
	})

	t.Run("not found", func(t *testing.T) {
		stub := &stubQuizService{err: fmt.Errorf("quiz not found")}
		handler := NewQuizHandler(stub)

		req := httptest.NewRequest(http.MethodDelete, "/api/quiz?id=999", nil)
		rec := httptest.NewRecorder()
		handler.DeleteQuiz(rec, req)

		if rec.Code != http.StatusNotFound {
			t.Fatalf("status = %d, want 404", rec.Code)
		}
	})
}

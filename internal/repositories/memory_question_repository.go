package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/studyquiz/back/internal/models"
)

// メモリベースの問題リポジトリ（開発・テスト用）
type memoryQuestionRepository struct {
	questions map[int64]*models.Question
	nextID    int64
	mutex     sync.RWMutex
}

func NewMemoryQuestionRepository() QuestionRepository {
	return &memoryQuestionRepository{
		questions: make(map[int64]*models.Question),
		nextID:    1,
	}
}

func (r *memoryQuestionRepository) CreateBatch(ctx context.Context, quizID int64, generated []models.GeneratedQuestion) ([]*models.Question, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	created := make([]*models.Question, 0, len(generated))
	now := time.Now()

	for i, g := range generated {
		question := &models.Question{
			ID:            r.nextID,
			QuizID:        quizID,
			Position:      i + 1,
			Type:          string(g.Type),
			QuestionText:  g.QuestionText,
			Options:       g.Options,
			CorrectAnswer: g.CorrectAnswer,
			Explanation:   g.Explanation,
			CreatedAt:     now,
		}
		r.nextID++

		stored := *question
		r.questions[question.ID] = &stored
		created = append(created, question)
	}

	return created, nil
}

func (r *memoryQuestionRepository) GetByQuizID(ctx context.Context, quizID int64) ([]*models.Question, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var questions []*models.Question
	for _, question := range r.questions {
		if question.QuizID == quizID {
			result := *question
			questions = append(questions, &result)
		}
	}

	sort.Slice(questions, func(i, j int) bool {
		return questions[i].Position < questions[j].Position
	})

	return questions, nil
}

func (r *memoryQuestionRepository) GetByID(ctx context.Context, id int64) (*models.Question, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	question, exists := r.questions[id]
	if !exists {
		return nil, fmt.Errorf("question not found")
	}

	result := *question
	return &result, nil
}

func (r *memoryQuestionRepository) DeleteByQuizID(ctx context.Context, quizID int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for id, question := range r.questions {
		if question.QuizID == quizID {
			delete(r.questions, id)
		}
	}

	return nil
}

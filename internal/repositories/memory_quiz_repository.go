package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/studyquiz/back/internal/models"
)

// メモリベースのクイズリポジトリ（開発・テスト用）
type memoryQuizRepository struct {
	quizzes map[int64]*models.Quiz
	nextID  int64
	mutex   sync.RWMutex
}

func NewMemoryQuizRepository() QuizRepository {
	return &memoryQuizRepository{
		quizzes: make(map[int64]*models.Quiz),
		nextID:  1,
	}
}

func (r *memoryQuizRepository) Create(ctx context.Context, quiz *models.Quiz) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	quiz.ID = r.nextID
	r.nextID++
	quiz.CreatedAt = time.Now()

	stored := *quiz
	r.quizzes[quiz.ID] = &stored

	return nil
}

func (r *memoryQuizRepository) GetByID(ctx context.Context, id int64) (*models.Quiz, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	quiz, exists := r.quizzes[id]
	if !exists {
		return nil, fmt.Errorf("quiz not found")
	}

	result := *quiz
	return &result, nil
}

func (r *memoryQuizRepository) GetAll(ctx context.Context, limit, offset int) ([]*models.Quiz, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	all := make([]*models.Quiz, 0, len(r.quizzes))
	for _, quiz := range r.quizzes {
		result := *quiz
		all = append(all, &result)
	}

	// 新しい順（IDは採番順なのでIDの降順で揃える）
	sort.Slice(all, func(i, j int) bool {
		return all[i].ID > all[j].ID
	})

	if offset >= len(all) {
		return []*models.Quiz{}, nil
	}

	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	return all[offset:end], nil
}

func (r *memoryQuizRepository) Delete(ctx context.Context, id int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.quizzes[id]; !exists {
		return fmt.Errorf("quiz not found")
	}

	delete(r.quizzes, id)
	return nil
}

package repositories

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/studyquiz/back/internal/models"
)

// メモリベースの解答履歴リポジトリ（開発・テスト用）
type memoryAttemptRepository struct {
	attempts map[int64]*models.Attempt
	nextID   int64
	mutex    sync.RWMutex
}

func NewMemoryAttemptRepository() AttemptRepository {
	return &memoryAttemptRepository{
		attempts: make(map[int64]*models.Attempt),
		nextID:   1,
	}
}

func (r *memoryAttemptRepository) Create(ctx context.Context, attempt *models.Attempt) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	attempt.ID = r.nextID
	r.nextID++
	attempt.CreatedAt = time.Now()

	stored := *attempt
	r.attempts[attempt.ID] = &stored

	return nil
}

func (r *memoryAttemptRepository) GetByQuizID(ctx context.Context, quizID int64) ([]*models.Attempt, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var attempts []*models.Attempt
	for _, attempt := range r.attempts {
		if attempt.QuizID == quizID {
			result := *attempt
			attempts = append(attempts, &result)
		}
	}

	sort.Slice(attempts, func(i, j int) bool {
		return attempts[i].ID > attempts[j].ID
	})

	return attempts, nil
}

func (r *memoryAttemptRepository) GetAll(ctx context.Context, limit, offset int) ([]*models.Attempt, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	all := make([]*models.Attempt, 0, len(r.attempts))
	for _, attempt := range r.attempts {
		result := *attempt
		all = append(all, &result)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID > all[j].ID
	})

	if offset >= len(all) {
		return []*models.Attempt{}, nil
	}

	end := offset + limit
	if end > len(all) {
		end = len(all)
	}

	return all[offset:end], nil
}

func (r *memoryAttemptRepository) DeleteByQuizID(ctx context.Context, quizID int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for id, attempt := range r.attempts {
		if attempt.QuizID == quizID {
			delete(r.attempts, id)
		}
	}

	return nil
}

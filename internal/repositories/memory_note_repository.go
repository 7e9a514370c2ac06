package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/studyquiz/back/internal/models"
)

// メモリベースのノートリポジトリ（開発・テスト用）
type memoryNoteRepository struct {
	notes  map[int64]*models.Note
	nextID int64
	mutex  sync.RWMutex
}

func NewMemoryNoteRepository() NoteRepository {
	return &memoryNoteRepository{
		notes:  make(map[int64]*models.Note),
		nextID: 1,
	}
}

func (r *memoryNoteRepository) Create(ctx context.Context, note *models.Note) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	note.ID = r.nextID
	r.nextID++
	now := time.Now()
	note.CreatedAt = now
	note.UpdatedAt = now

	stored := *note
	r.notes[note.ID] = &stored

	return nil
}

func (r *memoryNoteRepository) GetByID(ctx context.Context, id int64) (*models.Note, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	note, exists := r.notes[id]
	if !exists {
		return nil, fmt.Errorf("note not found")
	}

	result := *note
	return &result, nil
}

func (r *memoryNoteRepository) GetAll(ctx context.Context) ([]*models.Note, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	all := make([]*models.Note, 0, len(r.notes))
	for _, note := range r.notes {
		result := *note
		all = append(all, &result)
	}

	sortNotesByUpdatedAt(all)

	return all, nil
}

func (r *memoryNoteRepository) GetByQuizID(ctx context.Context, quizID int64) ([]*models.Note, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var notes []*models.Note
	for _, note := range r.notes {
		if note.QuizID != nil && *note.QuizID == quizID {
			result := *note
			notes = append(notes, &result)
		}
	}

	sortNotesByUpdatedAt(notes)

	return notes, nil
}

func (r *memoryNoteRepository) Update(ctx context.Context, note *models.Note) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	existing, exists := r.notes[note.ID]
	if !exists {
		return fmt.Errorf("note not found")
	}

	existing.Title = note.Title
	existing.Content = note.Content
	existing.UpdatedAt = time.Now()

	note.QuizID = existing.QuizID
	note.CreatedAt = existing.CreatedAt
	note.UpdatedAt = existing.UpdatedAt

	return nil
}

func (r *memoryNoteRepository) Delete(ctx context.Context, id int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.notes[id]; !exists {
		return fmt.Errorf("note not found")
	}

	delete(r.notes, id)
	return nil
}

// 更新日時の新しい順（同時刻はIDの降順）
func sortNotesByUpdatedAt(notes []*models.Note) {
	sort.Slice(notes, func(i, j int) bool {
		if notes[i].UpdatedAt.Equal(notes[j].UpdatedAt) {
			return notes[i].ID > notes[j].ID
		}
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})
}

package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/studyquiz/back/internal/models"
)

// メモリベースのブックマークリポジトリ（開発・テスト用）
type memoryBookmarkRepository struct {
	bookmarks map[int64]*models.Bookmark
	nextID    int64
	mutex     sync.RWMutex
}

func NewMemoryBookmarkRepository() BookmarkRepository {
	return &memoryBookmarkRepository{
		bookmarks: make(map[int64]*models.Bookmark),
		nextID:    1,
	}
}

func (r *memoryBookmarkRepository) Create(ctx context.Context, bookmark *models.Bookmark) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	bookmark.ID = r.nextID
	r.nextID++
	bookmark.CreatedAt = time.Now()

	stored := *bookmark
	r.bookmarks[bookmark.ID] = &stored

	return nil
}

func (r *memoryBookmarkRepository) DeleteByQuestionID(ctx context.Context, questionID int64) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	deleted := false
	for id, bookmark := range r.bookmarks {
		if bookmark.QuestionID == questionID {
			delete(r.bookmarks, id)
			deleted = true
		}
	}

	if !deleted {
		return fmt.Errorf("bookmark not found")
	}

	return nil
}

func (r *memoryBookmarkRepository) GetAll(ctx context.Context) ([]*models.Bookmark, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	all := make([]*models.Bookmark, 0, len(r.bookmarks))
	for _, bookmark := range r.bookmarks {
		result := *bookmark
		all = append(all, &result)
	}

	sort.Slice(all, func(i, j int) bool {
		return all[i].ID > all[j].ID
	})

	return all, nil
}

func (r *memoryBookmarkRepository) ExistsByQuestionID(ctx context.Context, questionID int64) (bool, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, bookmark := range r.bookmarks {
		if bookmark.QuestionID == questionID {
			return true, nil
		}
	}

	return false, nil
}

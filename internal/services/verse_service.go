package services

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/studyquiz/back/internal/clients"
	"github.com/studyquiz/back/internal/models"
)

// 今日の聖句のキャッシュ保持時間（デフォルト6時間）
const defaultVerseCacheTTL = 6 * time.Hour

// VerseService は今日の聖句を返す。外部APIへの負荷を抑えるため結果をキャッシュする
type VerseService interface {
	GetVerseOfTheDay(ctx context.Context) (*models.Verse, error)
}

type verseService struct {
	client clients.VerseAPIClient
	ttl    time.Duration
	now    func() time.Time

	mutex     sync.RWMutex
	cached    *models.Verse
	fetchedAt time.Time
}

func NewVerseService(client clients.VerseAPIClient) VerseService {
	return &verseService{
		client: client,
		ttl:    verseCacheTTLFromEnv(),
		now:    time.Now,
	}
}

func verseCacheTTLFromEnv() time.Duration {
	raw := os.Getenv("VERSE_CACHE_TTL_HOURS")
	if raw == "" {
		return defaultVerseCacheTTL
	}

	hours, err := strconv.Atoi(raw)
	if err != nil || hours <= 0 {
		fmt.Printf("⚠️ VERSE_CACHE_TTL_HOURSの値が不正です（%s）。デフォルトの6時間を使用します\n", raw)
		return defaultVerseCacheTTL
	}

	return time.Duration(hours) * time.Hour
}

func (s *verseService) GetVerseOfTheDay(ctx context.Context) (*models.Verse, error) {
	if verse := s.cachedVerse(); verse != nil {
		return verse, nil
	}

	details, err := s.client.FetchVerseOfTheDay(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch verse of the day: %w", err)
	}

	verse := &models.Verse{
		Text:      details.Text,
		Reference: details.Reference,
		Version:   details.Version,
	}

	s.mutex.Lock()
	s.cached = verse
	s.fetchedAt = s.now()
	s.mutex.Unlock()

	fmt.Printf("📖 今日の聖句を取得しました: %s\n", verse.Reference)
	return verse, nil
}

func (s *verseService) cachedVerse() *models.Verse {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.cached == nil {
		return nil
	}
	if s.now().Sub(s.fetchedAt) >= s.ttl {
		return nil
	}

	result := *s.cached
	return &result
}

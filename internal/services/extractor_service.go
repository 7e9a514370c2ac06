package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/studyquiz/back/internal/models"
)

// ExtractorService はアップロードされた教材ファイルからテキストを抽出する
type ExtractorService interface {
	Extract(ctx context.Context, data []byte, filename string) (*models.ExtractionResult, error)
}

// ファイル形式ごとの抽出処理
type extractionStrategy interface {
	extract(ctx context.Context, data []byte) (*models.ExtractionResult, error)
}

type extractorService struct {
	strategies map[string]extractionStrategy
}

func NewExtractorService() ExtractorService {
	slides := &pptxExtractor{}
	return &extractorService{
		strategies: map[string]extractionStrategy{
			"pptx": slides,
			"ppt":  slides,
			"pdf":  &pdfExtractor{},
		},
	}
}

func (s *extractorService) Extract(ctx context.Context, data []byte, filename string) (*models.ExtractionResult, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	strategy, ok := s.strategies[ext]
	if !ok {
		return nil, fmt.Errorf("unsupported file type %q: only pptx, ppt, and pdf files are supported", ext)
	}

	fmt.Printf("📄 テキスト抽出開始: %s (%d bytes)\n", filename, len(data))

	result, err := strategy.extract(ctx, data)
	if err != nil {
		return nil, err
	}

	fmt.Printf("✅ テキスト抽出完了: %s (%d文字)\n", filename, len(result.Text))
	return result, nil
}

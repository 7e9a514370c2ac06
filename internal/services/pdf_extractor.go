package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/studyquiz/back/internal/models"
	"github.com/studyquiz/back/internal/utils"
)

type pdfExtractor struct{}

func (e *pdfExtractor) extract(ctx context.Context, data []byte) (result *models.ExtractionResult, err error) {
	// ledongthuc/pdf は壊れたファイルでpanicすることがあるためここで回収する
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("failed to parse PDF: %v", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}

	total := reader.NumPage()
	var builder strings.Builder

	for pageNum := 1; pageNum <= total; pageNum++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// 壊れたページは飛ばして残りを抽出する
			fmt.Printf("⚠️ ページ%dのテキスト抽出に失敗しました（スキップ）: %v\n", pageNum, err)
			continue
		}

		builder.WriteString(text)
		builder.WriteString("\n\n")
	}

	cleaned := utils.NormalizeWhitespace(builder.String())
	if cleaned == "" {
		return nil, fmt.Errorf("no text content found in PDF")
	}

	return &models.ExtractionResult{
		Text: cleaned,
		Metadata: models.ExtractionMetadata{
			PageCount: total,
			Title:     e.documentTitle(reader),
		},
	}, nil
}

func (e *pdfExtractor) documentTitle(reader *pdf.Reader) string {
	title := reader.Trailer().Key("Info").Key("Title")
	if title.Kind() != pdf.String {
		return ""
	}
	return strings.TrimSpace(title.RawString())
}

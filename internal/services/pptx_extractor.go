package services

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/studyquiz/back/internal/models"
)

// DrawingMLのテキストタグ（a:t）が属する名前空間
const drawingMLNamespace = "http://schemas.openxmlformats.org/drawingml/2006/main"

// 1行とみなすおおよその文字数。これを超える断片は独立した行として扱う
const reflowLineLength = 50

var (
	slidePathPattern    = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)
	numberedItemPattern = regexp.MustCompile(`^\d+[.)]`)
	bulletPrefixes      = []string{"•", "‣", "◦", "·", "●", "○", "■", "►", "✓", "-", "–", "*"}
)

type pptxExtractor struct{}

type slideEntry struct {
	number int
	file   *zip.File
}

func (e *pptxExtractor) extract(ctx context.Context, data []byte) (*models.ExtractionResult, error) {
	reader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read archive: %w", err)
	}

	slides := e.collectSlides(reader)

	var sections []string
	for _, slide := range slides {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		text, err := e.extractSlideText(slide.file)
		if err != nil {
			return nil, fmt.Errorf("failed to parse slide %d: %w", slide.number, err)
		}
		if text == "" {
			continue
		}

		sections = append(sections, fmt.Sprintf("[Slide %d]\n%s", slide.number, text))
	}

	combined := strings.TrimSpace(strings.Join(sections, "\n\n"))
	if combined == "" {
		return nil, fmt.Errorf("no text content found in presentation")
	}

	return &models.ExtractionResult{
		Text: combined,
		Metadata: models.ExtractionMetadata{
			// 空のスライドも枚数には含める
			SlideCount: len(slides),
		},
	}, nil
}

func (e *pptxExtractor) collectSlides(reader *zip.Reader) []slideEntry {
	var slides []slideEntry
	for _, file := range reader.File {
		matches := slidePathPattern.FindStringSubmatch(file.Name)
		if matches == nil {
			continue
		}
		number, err := strconv.Atoi(matches[1])
		if err != nil {
			continue
		}
		slides = append(slides, slideEntry{number: number, file: file})
	}

	// slide10はslide2の後（辞書順ではなく番号順）
	sort.Slice(slides, func(i, j int) bool {
		return slides[i].number < slides[j].number
	})

	return slides
}

func (e *pptxExtractor) extractSlideText(file *zip.File) (string, error) {
	rc, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open slide entry: %w", err)
	}
	defer rc.Close()

	var primary []string
	var fallback []string

	decoder := xml.NewDecoder(rc)
	var text strings.Builder
	capturing := false
	isPrimary := false

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				capturing = true
				isPrimary = t.Name.Space == drawingMLNamespace
				text.Reset()
			}
		case xml.CharData:
			if capturing {
				text.Write(t)
			}
		case xml.EndElement:
			if capturing && t.Name.Local == "t" {
				capturing = false
				if isPrimary {
					primary = append(primary, text.String())
				} else {
					fallback = append(fallback, text.String())
				}
			}
		}
	}

	// m:tや接頭辞なしのtも拾うが、a:tで取得済みの断片は重複として除外
	captured := make(map[string]bool, len(primary))
	for _, fragment := range primary {
		captured[fragment] = true
	}

	fragments := primary
	for _, fragment := range fallback {
		if !captured[fragment] {
			fragments = append(fragments, fragment)
		}
	}

	return reflowFragments(fragments), nil
}

// テキストランを行に組み直す。箇条書きの記号や長い断片は新しい行の始まりとみなす
func reflowFragments(fragments []string) string {
	var lines []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
	}

	for _, fragment := range fragments {
		fragment = strings.TrimSpace(fragment)
		if fragment == "" {
			continue
		}

		if startsNewLine(fragment) {
			flush()
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(fragment)
	}
	flush()

	return strings.Join(lines, "\n")
}

func startsNewLine(fragment string) bool {
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(fragment, prefix) {
			return true
		}
	}
	if numberedItemPattern.MatchString(fragment) {
		return true
	}
	return utf8.RuneCountInString(fragment) > reflowLineLength
}

package utils

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	spaceRunPattern   = regexp.MustCompile(`[ \t]+`)
	newlineRunPattern = regexp.MustCompile(`\n{3,}`)
)

// NormalizeWhitespace は抽出テキストの空白を整える。
// 連続するスペース・タブは1つに、3つ以上の連続改行は2つにまとめ、
// 各行をトリムして先頭・末尾の空行を落とす
func NormalizeWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = spaceRunPattern.ReplaceAllString(text, " ")

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	text = strings.Join(lines, "\n")
	text = newlineRunPattern.ReplaceAllString(text, "\n\n")

	return strings.TrimSpace(text)
}

// TitleFromFilename はアップロードされたファイル名からクイズタイトルを作る
func TitleFromFilename(filename string) string {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.NewReplacer("_", " ", "-", " ").Replace(base)
	base = spaceRunPattern.ReplaceAllString(base, " ")
	base = strings.TrimSpace(base)
	if base == "" || base == "." {
		return "Untitled Quiz"
	}
	return base
}

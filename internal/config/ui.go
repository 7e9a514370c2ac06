package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// UIConfig はフロントエンドに渡すテーマとボタン文言の設定
type UIConfig struct {
	Themes []Theme           `yaml:"themes" json:"themes"`
	Copy   map[string]string `yaml:"copy" json:"copy"`
}

type Theme struct {
	Name       string `yaml:"name" json:"name"`
	Primary    string `yaml:"primary" json:"primary"`
	Secondary  string `yaml:"secondary" json:"secondary"`
	Background string `yaml:"background" json:"background"`
	Text       string `yaml:"text" json:"text"`
}

// DefaultUIConfig は設定ファイルがない場合の組み込みデフォルト
func DefaultUIConfig() *UIConfig {
	return &UIConfig{
		Themes: []Theme{
			{Name: "light", Primary: "#4F46E5", Secondary: "#10B981", Background: "#FFFFFF", Text: "#1F2937"},
			{Name: "dark", Primary: "#818CF8", Secondary: "#34D399", Background: "#111827", Text: "#F9FAFB"},
		},
		Copy: map[string]string{
			"uploadButton":   "Upload File",
			"generateButton": "Generate Quiz",
			"retryButton":    "Try Again",
			"bookmarkButton": "Bookmark",
		},
	}
}

// LoadUIConfig はYAMLファイルからUI設定を読み込む。失敗時はデフォルトを返す
func LoadUIConfig(path string) *UIConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ UI設定ファイルの読み込みに失敗: %v", err)
		}
		return DefaultUIConfig()
	}

	cfg := DefaultUIConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.Printf("⚠️ UI設定ファイルの解析に失敗 (%s): %v", path, err)
		return DefaultUIConfig()
	}

	log.Printf("✅ UI設定を読み込みました: %s (テーマ%d件)", path, len(cfg.Themes))
	return cfg
}

package models

// Verse は今日の聖句。外部APIから取得し、メモリ上でキャッシュする
type Verse struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
	Version   string `json:"version"`
}

type VerseResponse struct {
	Success bool   `json:"success"`
	Verse   *Verse `json:"verse,omitempty"`
	Error   string `json:"error,omitempty"`
}

package clients

import (
	"context"
)

// CompletionClient defines the interface for remote completion API interactions.
// 1回の生成につき呼び出しは1回だけ。失敗してもリトライしない
type CompletionClient interface {
	GenerateCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// VerseAPIClient defines the interface for the verse of the day API
type VerseAPIClient interface {
	FetchVerseOfTheDay(ctx context.Context) (*VerseDetails, error)
}

// Verse API response types
type VerseAPIResponse struct {
	Verse VersePayload `json:"verse"`
}

type VersePayload struct {
	Details VerseDetails `json:"details"`
	Notice  string       `json:"notice"`
}

type VerseDetails struct {
	Text      string `json:"text"`
	Reference string `json:"reference"`
	Version   string `json:"version"`
}

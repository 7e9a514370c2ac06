package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

type verseClient struct {
	baseURL string
	client  *http.Client
}

func NewVerseClient() VerseAPIClient {
	baseURL := os.Getenv("VERSE_API_URL")
	if baseURL == "" {
		baseURL = "https://beta.ourmanna.com/api/v1/get"
	}

	return &verseClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *verseClient) FetchVerseOfTheDay(ctx context.Context) (*VerseDetails, error) {
	url := c.baseURL + "?format=json&order=daily"

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verse API request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var response VerseAPIResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if response.Verse.Details.Text == "" {
		return nil, fmt.Errorf("verse API returned an empty verse")
	}

	return &response.Verse.Details, nil
}

package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultGeminiModel = "gemini-1.5-flash"

type geminiClient struct {
	apiKey string
	model  string
	client *http.Client
}

type GeminiRequest struct {
	SystemInstruction *GeminiContent         `json:"systemInstruction,omitempty"`
	Contents          []GeminiContent        `json:"contents"`
	GenerationConfig  GeminiGenerationConfig `json:"generationConfig"`
}

type GeminiContent struct {
	Parts []GeminiPart `json:"parts"`
}

type GeminiPart struct {
	Text string `json:"text"`
}

type GeminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type GeminiResponse struct {
	Candidates []GeminiCandidate `json:"candidates"`
	Error      *GeminiError      `json:"error,omitempty"`
}

type GeminiCandidate struct {
	Content      GeminiContent `json:"content"`
	FinishReason string        `json:"finishReason"`
}

type GeminiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func NewGeminiClient(model string) CompletionClient {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		fmt.Printf("⚠️ GEMINI_API_KEY not found in environment variables\n")
	}

	if model == "" {
		model = defaultGeminiModel
	}

	// 古いモデル名を新しいものに自動変換
	if model == "gemini-pro" {
		model = defaultGeminiModel
		fmt.Printf("🔄 Converting deprecated model 'gemini-pro' to '%s'\n", defaultGeminiModel)
	}

	// models/プレフィックスがない場合は自動的に追加
	if !strings.HasPrefix(model, "models/") {
		model = "models/" + model
	}

	return &geminiClient{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 90 * time.Second},
	}
}

func (c *geminiClient) GenerateCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	// ネットワークを呼ぶ前に設定を検証する
	if c.apiKey == "" {
		return "", NewMissingAPIKeyError("Gemini API key not configured. Set GEMINI_API_KEY in the environment")
	}

	fmt.Printf("🤖 Using Gemini API with model: %s\n", c.model)

	request := GeminiRequest{
		Contents: []GeminiContent{
			{
				Parts: []GeminiPart{
					{
						Text: userPrompt,
					},
				},
			},
		},
		GenerationConfig: GeminiGenerationConfig{
			Temperature:     0.3,
			MaxOutputTokens: 8192,
		},
	}

	if systemPrompt != "" {
		request.SystemInstruction = &GeminiContent{
			Parts: []GeminiPart{
				{
					Text: systemPrompt,
				},
			},
		}
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/%s:generateContent?key=%s", c.model, c.apiKey)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		fmt.Printf("❌ Gemini API error - Status: %d, Body: %s\n", resp.StatusCode, string(body))
		// より詳細なエラー情報を提供
		var errorResponse GeminiResponse
		if err := json.Unmarshal(body, &errorResponse); err == nil && errorResponse.Error != nil {
			switch errorResponse.Error.Code {
			case 400:
				if strings.Contains(errorResponse.Error.Message, "too many tokens") || strings.Contains(errorResponse.Error.Message, "maximum context length") {
					return "", NewTokenLimitError(fmt.Sprintf("shorten the uploaded material and try again. Details: %s", errorResponse.Error.Message))
				}
				return "", NewGeneralError(fmt.Sprintf("Gemini API request error: %s", errorResponse.Error.Message))
			case 403:
				return "", NewInvalidAPIKeyError(errorResponse.Error.Message)
			case 404:
				return "", NewModelNotFoundError(fmt.Sprintf("model '%s': %s", c.model, errorResponse.Error.Message))
			case 429:
				return "", NewRateLimitError(errorResponse.Error.Message)
			default:
				return "", NewGeneralError(fmt.Sprintf("Gemini API error (code %d): %s", errorResponse.Error.Code, errorResponse.Error.Message))
			}
		}
		return "", NewGeneralError(fmt.Sprintf("Gemini API error (status %d): %s", resp.StatusCode, string(body)))
	}

	var response GeminiResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if response.Error != nil {
		return "", NewGeneralError(fmt.Sprintf("Gemini API error: %s", response.Error.Message))
	}

	if len(response.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned from Gemini API")
	}

	candidate := response.Candidates[0]

	// finishReasonをチェック
	if candidate.FinishReason == "MAX_TOKENS" {
		fmt.Printf("⚠️ Gemini API response truncated due to MAX_TOKENS\n")
		return "", NewTokenLimitError("the generated response was truncated, request fewer questions")
	}

	if len(candidate.Content.Parts) == 0 {
		return "", fmt.Errorf("no content parts returned from Gemini API. FinishReason: %s", candidate.FinishReason)
	}

	content := candidate.Content.Parts[0].Text
	if content == "" {
		return "", fmt.Errorf("empty content returned from Gemini API. FinishReason: %s", candidate.FinishReason)
	}

	fmt.Printf("✅ Gemini API response received (length: %d, finishReason: %s)\n", len(content), candidate.FinishReason)

	return content, nil
}

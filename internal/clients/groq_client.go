package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultGroqModel = "llama-3.3-70b-versatile"

type groqClient struct {
	apiKey string
	model  string
	client *http.Client
}

type GroqRequest struct {
	Model       string        `json:"model"`
	Messages    []GroqMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type GroqMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type GroqResponse struct {
	Choices []GroqChoice `json:"choices"`
	Error   *APIError    `json:"error,omitempty"`
}

type GroqChoice struct {
	Message GroqMessage `json:"message"`
}

type APIError struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Code    string `json:"code"`
}

func NewGroqClient(model string) CompletionClient {
	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		fmt.Printf("⚠️ GROQ_API_KEY not found in environment variables\n")
	}

	if model == "" {
		model = defaultGroqModel
	}

	// 廃止されたモデル名を現行のものに自動変換
	modelMapping := map[string]string{
		"llama3-70b-8192":         defaultGroqModel,
		"llama-3.1-70b-versatile": defaultGroqModel,
		"mixtral-8x7b-32768":      defaultGroqModel,
	}

	if mappedModel, exists := modelMapping[model]; exists {
		fmt.Printf("🔄 Mapping Groq model '%s' to '%s'\n", model, mappedModel)
		model = mappedModel
	}

	return &groqClient{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 90 * time.Second},
	}
}

func (c *groqClient) GenerateCompletion(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	// ネットワークを呼ぶ前に設定を検証する
	if c.apiKey == "" {
		return "", NewMissingAPIKeyError("Groq API key not configured. Set GROQ_API_KEY in the environment")
	}

	fmt.Printf("🤖 Using Groq API with model: %s\n", c.model)

	request := GroqRequest{
		Model: c.model,
		Messages: []GroqMessage{
			{
				Role:    "system",
				Content: systemPrompt,
			},
			{
				Role:    "user",
				Content: userPrompt,
			},
		},
		Temperature: 0.3,
		MaxTokens:   8000,
	}

	jsonData, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", "https://api.groq.com/openai/v1/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

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
		// より詳細なエラー情報を提供
		var errorResponse GroqResponse
		if err := json.Unmarshal(body, &errorResponse); err == nil && errorResponse.Error != nil {
			switch errorResponse.Error.Code {
			case "context_length_exceeded":
				return "", NewTokenLimitError(fmt.Sprintf("shorten the uploaded material and try again. Details: %s", errorResponse.Error.Message))
			case "rate_limit_exceeded":
				return "", NewRateLimitError(errorResponse.Error.Message)
			case "invalid_api_key":
				return "", NewInvalidAPIKeyError(errorResponse.Error.Message)
			case "insufficient_quota":
				return "", NewQuotaExceededError(errorResponse.Error.Message)
			case "model_not_found", "model_decommissioned":
				return "", NewModelNotFoundError(fmt.Sprintf("model '%s': %s", c.model, errorResponse.Error.Message))
			default:
				return "", NewGeneralError(fmt.Sprintf("Groq API error (%s): %s", errorResponse.Error.Code, errorResponse.Error.Message))
			}
		}
		return "", NewGeneralError(fmt.Sprintf("Groq API error (status %d): %s", resp.StatusCode, string(body)))
	}

	var response GroqResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if response.Error != nil {
		return "", NewGeneralError(fmt.Sprintf("Groq API error: %s", response.Error.Message))
	}

	if len(response.Choices) == 0 {
		return "", fmt.Errorf("no choices returned from Groq API")
	}

	content := response.Choices[0].Message.Content
	fmt.Printf("✅ Groq API response received (length: %d)\n", len(content))

	return content, nil
}

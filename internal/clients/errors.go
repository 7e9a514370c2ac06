package clients

import "fmt"

// CustomError represents different types of AI client errors
type CustomError struct {
	Type    ErrorType
	Message string
}

type ErrorType int

const (
	ErrorTypeGeneral ErrorType = iota
	ErrorTypeTokenLimit
	ErrorTypeMissingAPIKey
	ErrorTypeInvalidAPIKey
	ErrorTypeRateLimit
	ErrorTypeModelNotFound
	ErrorTypeQuotaExceeded
)

func (e *CustomError) Error() string {
	return e.Message
}

// IsTokenLimitError checks if the error is related to token limits
func IsTokenLimitError(err error) bool {
	if customErr, ok := err.(*CustomError); ok {
		return customErr.Type == ErrorTypeTokenLimit
	}
	return false
}

// IsMissingAPIKeyError checks if the error is a missing credential configuration error
func IsMissingAPIKeyError(err error) bool {
	if customErr, ok := err.(*CustomError); ok {
		return customErr.Type == ErrorTypeMissingAPIKey
	}
	return false
}

// IsRateLimitError checks if the error is a rate limit error
func IsRateLimitError(err error) bool {
	if customErr, ok := err.(*CustomError); ok {
		return customErr.Type == ErrorTypeRateLimit
	}
	return false
}

// NewTokenLimitError creates a new token limit error
func NewTokenLimitError(message string) *CustomError {
	return &CustomError{
		Type:    ErrorTypeTokenLimit,
		Message: fmt.Sprintf("the source text is too long for the model: %s", message),
	}
}

// NewMissingAPIKeyError creates a new missing API key error.
// ネットワークを呼ぶ前の設定エラーとして使う
func NewMissingAPIKeyError(message string) *CustomError {
	return &CustomError{
		Type:    ErrorTypeMissingAPIKey,
		Message: message,
	}
}

// NewInvalidAPIKeyError creates a new invalid API key error
func NewInvalidAPIKeyError(message string) *CustomError {
	return &CustomError{
		Type:    ErrorTypeInvalidAPIKey,
		Message: fmt.Sprintf("the API key was rejected: %s", message),
	}
}

// NewRateLimitError creates a new rate limit error
func NewRateLimitError(message string) *CustomError {
	return &CustomError{
		Type:    ErrorTypeRateLimit,
		Message: fmt.Sprintf("rate limit reached, please try again later: %s", message),
	}
}

// NewModelNotFoundError creates a new model not found error
func NewModelNotFoundError(message string) *CustomError {
	return &CustomError{
		Type:    ErrorTypeModelNotFound,
		Message: fmt.Sprintf("the requested model is not available: %s", message),
	}
}

// NewQuotaExceededError creates a new quota exceeded error
func NewQuotaExceededError(message string) *CustomError {
	return &CustomError{
		Type:    ErrorTypeQuotaExceeded,
		Message: fmt.Sprintf("API quota exhausted, check your plan and billing: %s", message),
	}
}

// NewGeneralError creates a new general error
func NewGeneralError(message string) *CustomError {
	return &CustomError{
		Type:    ErrorTypeGeneral,
		Message: message,
	}
}

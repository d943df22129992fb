package translator

import (
	"context"
	"fmt"
)

const (
	// DefaultModel is the completion model every request is sent to.
	DefaultModel = "gpt-4-0125-preview"

	// SystemPrompt fixes the language pair and asks for bare output.
	SystemPrompt = "You are an expert translator who translates text from english to tamil and only return translated text"

	SourceLang = "en"
	TargetLang = "ta"
)

// Translator turns English input into Tamil text. Implementations are safe
// for concurrent use and return upstream errors unchanged.
type Translator interface {
	Name() string
	Translate(ctx context.Context, input string) (string, error)
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []ChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index   int `json:"index"`
		Message struct {
			Role    string  `json:"role"`
			Content *string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

// APIError is returned when the completion endpoint answers with a non-2xx
// status. Body is the raw response body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Error code: %d - %s", e.StatusCode, e.Body)
}

// NewPrompt builds the two-turn conversation sent upstream. The input is
// passed through verbatim.
func NewPrompt(input string) []ChatMessage {
	return []ChatMessage{
		{Role: "system", Content: SystemPrompt},
		{Role: "user", Content: input},
	}
}

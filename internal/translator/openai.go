package translator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const DefaultOpenAIBaseURL = "https://api.openai.com/v1"

// errNoChoices is returned when a 200 response carries an empty choice list.
var errNoChoices = errors.New("list index out of range: completion returned no choices")

type OpenAIService struct {
	apiKey       string
	baseURL      string
	organization string
	client       *http.Client
}

// NewOpenAIService creates a chat-completions client. An empty apiKey is
// accepted; the upstream rejects it on first use.
func NewOpenAIService(apiKey, baseURL, organization string) *OpenAIService {
	if baseURL == "" {
		baseURL = DefaultOpenAIBaseURL
	}
	return &OpenAIService{
		apiKey:       apiKey,
		baseURL:      strings.TrimSuffix(baseURL, "/"),
		organization: organization,
		client:       &http.Client{Timeout: 10 * time.Minute},
	}
}

func (s *OpenAIService) Name() string {
	return "openai"
}

func (s *OpenAIService) Translate(ctx context.Context, input string) (string, error) {
	jsonData, err := json.Marshal(ChatCompletionRequest{
		Model:    DefaultModel,
		Messages: NewPrompt(input),
	})
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))
	if s.organization != "" {
		httpReq.Header.Set("OpenAI-Organization", s.organization)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return "", &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var completion ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}

	if len(completion.Choices) == 0 {
		return "", errNoChoices
	}

	content := completion.Choices[0].Message.Content
	if content == nil {
		return "", nil
	}
	return *content, nil
}

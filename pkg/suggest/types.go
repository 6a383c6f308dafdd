package suggest

import "net/http"

// Config holds the settings for the completion-backed suggestion client.
type Config struct {
	APIKey     string
	BaseURL    string // OpenAI-compatible endpoint root, e.g. https://api.openai.com/v1
	Model      string
	HTTPClient *http.Client
}

// chatRequest is the wire format of a chat completion request.
type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature float64       `json:"temperature"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// chatResponse is the wire format of a chat completion response.
type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Package intent turns free-text requests into structured ledger commands
// using an OpenAI-compatible chat completions endpoint.
package intent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/blogem/dues-ledger/models"
)

const defaultChatURL = "https://api.openai.com/v1/chat/completions"

// OpenAIConfig configures the chat completions endpoint and HTTP behavior.
type OpenAIConfig struct {
	APIKey     string
	Model      string
	ChatURL    string
	HTTPClient *http.Client
}

// OpenAIParser asks a chat model to classify input into one ledger action.
type OpenAIParser struct {
	cfg OpenAIConfig
}

// NewOpenAIParser builds a parser. The API key and model are required.
func NewOpenAIParser(cfg OpenAIConfig) (*OpenAIParser, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("api key is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("model is required")
	}
	if strings.TrimSpace(cfg.ChatURL) == "" {
		cfg.ChatURL = defaultChatURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &OpenAIParser{cfg: cfg}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Parse sends the prompt and decodes the model's JSON reply.
func (p *OpenAIParser) Parse(ctx context.Context, input string) (*models.Command, error) {
	body, err := json.Marshal(chatRequest{
		Model:       p.cfg.Model,
		Messages:    []chatMessage{{Role: "user", Content: BuildPrompt(input)}},
		Temperature: 0,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.ChatURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The key goes only into the Authorization header, never into errors.
	req.Header.Set("Authorization", "Bearer "+p.cfg.APIKey)

	res, err := p.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg, err := io.ReadAll(io.LimitReader(res.Body, 4096))
		if err != nil {
			return nil, fmt.Errorf("read chat error body: %w", err)
		}
		return nil, fmt.Errorf("chat request status %d: %s", res.StatusCode, strings.TrimSpace(string(msg)))
	}

	var payload chatResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	if len(payload.Choices) == 0 {
		return nil, errors.New("chat response has no choices")
	}

	return DecodeCommand(payload.Choices[0].Message.Content)
}

// DecodeCommand parses a model reply into a command. Replies wrapped in a
// markdown code fence are accepted.
func DecodeCommand(content string) (*models.Command, error) {
	content = stripCodeFence(content)

	var cmd models.Command
	if err := json.Unmarshal([]byte(content), &cmd); err != nil {
		return nil, fmt.Errorf("decode command: %w", err)
	}
	return &cmd, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

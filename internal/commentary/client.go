package commentary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/layon940/cine-skeletor-bot/internal/config"
)

// Fallback strings returned instead of errors, so the chat never hangs on an
// upstream failure.
const (
	FallbackEmpty = "¡Ni la mismísima Skeletor tiene palabras!"
	FallbackError = "Los dioses del streaming han fallado. Inténtalo más tarde, insignificante mortal."
)

// Client wraps the LLM chat-completions endpoint.
type Client struct {
	baseURL string
	config  config.CommentaryConfig
	hc      *http.Client
	logger  zerolog.Logger
}

// NewClient creates a new commentary client.
func NewClient(cfg config.CommentaryConfig, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		config:  cfg,
		hc:      &http.Client{Timeout: time.Duration(cfg.Timeout) * time.Second},
		logger:  logger.With().Str("component", "commentary").Logger(),
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Generate sends a rendered prompt and returns the generated text. On any
// transport or API failure it returns a fixed fallback string instead of an
// error: single attempt, no retries, always respond.
func (c *Client) Generate(ctx context.Context, prompt string) string {
	text, err := c.complete(ctx, prompt)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Commentary generation failed, using fallback")
		return FallbackError
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return FallbackEmpty
	}
	return text
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body := chatCompletionRequest{
		Model:       c.config.Model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: c.config.Temperature,
	}

	b, err := json.Marshal(body)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(b))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.config.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}

	var out chatCompletionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("commentary: decode response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if out.Error != nil && out.Error.Message != "" {
			return "", fmt.Errorf("commentary http %d: %s", resp.StatusCode, out.Error.Message)
		}
		return "", fmt.Errorf("commentary http %d: %s", resp.StatusCode, string(raw))
	}

	if len(out.Choices) == 0 {
		return "", fmt.Errorf("commentary: empty choices")
	}
	return out.Choices[0].Message.Content, nil
}

// Package grok calls an x.ai-style chat completions endpoint for the
// support widget. Callers treat every failure as non-fatal: the chat
// service substitutes a canned reply.
package grok

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"agentix_travel/internal/adapters/observability"
	"agentix_travel/internal/domain"
)

const maxTokens = 500

type Client struct {
	base  string
	key   string
	model string
	hc    *http.Client
}

func New(base, key, model string) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	return &Client{
		base:  base,
		key:   key,
		model: model,
		hc:    &http.Client{Timeout: 30 * time.Second},
	}, nil
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

func (c *Client) Complete(ctx context.Context, system string, history []domain.ChatTurn, userMessage string) (string, error) {
	msgs := make([]message, 0, len(history)+2)
	msgs = append(msgs, message{Role: "system", Content: system})
	for _, t := range history {
		msgs = append(msgs, message{Role: t.Role, Content: t.Content})
	}
	msgs = append(msgs, message{Role: "user", Content: userMessage})

	body, err := json.Marshal(map[string]any{
		"model":       c.model,
		"messages":    msgs,
		"max_tokens":  maxTokens,
		"temperature": 0.7,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("grok", "completions", 0, time.Since(start))
		return "", err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("grok", "completions", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("completion status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var out struct {
		Choices []struct {
			Message message `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if len(out.Choices) == 0 || out.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty completion")
	}
	return out.Choices[0].Message.Content, nil
}

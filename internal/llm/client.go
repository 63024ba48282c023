// Package llm asks a local Ollama model to summarize tally history.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// maxErrorBody caps how much of a failed response is kept in the error.
const maxErrorBody = 512

// Prompt is the input of one summarize call.
type Prompt struct {
	System string
	User   string
}

// Reply is the model's answer with surrounding whitespace removed.
type Reply struct {
	Text      string
	Model     string
	LatencyMs int64
}

// Client summarizes a prompt with a language model.
type Client interface {
	Summarize(ctx context.Context, p Prompt) (*Reply, error)
}

type ollamaClient struct {
	cfg      LLMConfig
	http     *http.Client
	observer Observer
}

// NewOllamaClient creates a Client for Ollama's chat endpoint.
func NewOllamaClient(cfg LLMConfig, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &ollamaClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: 5 * time.Second}).DialContext,
			},
		},
		observer: observer,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatOptions struct {
	Temperature float64 `json:"temperature"`
	NumPredict  int     `json:"num_predict,omitempty"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream"`
	Options  chatOptions   `json:"options"`
}

type chatResponse struct {
	Model   string      `json:"model"`
	Message chatMessage `json:"message"`
}

// Summarize sends one non-streaming chat request. There are no retries; the
// caller falls back to its own summary on any error.
func (c *ollamaClient) Summarize(ctx context.Context, p Prompt) (*Reply, error) {
	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout())
	defer cancel()

	body := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: p.System},
			{Role: "user", Content: p.User},
		},
		Options: chatOptions{Temperature: c.cfg.Temperature, NumPredict: c.cfg.MaxTokens},
	}
	resp, err := c.chat(ctx, body)
	if err == nil && strings.TrimSpace(resp.Message.Content) == "" {
		err = ErrEmptyOutput
	}

	event := CallEvent{
		Model:       c.cfg.Model,
		PromptBytes: len(p.System) + len(p.User),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		ErrorCode:   errorCode(err),
	}
	c.observer.OnCallComplete(event)
	if err != nil {
		return nil, err
	}
	return &Reply{
		Text:      strings.TrimSpace(resp.Message.Content),
		Model:     resp.Model,
		LatencyMs: event.LatencyMs,
	}, nil
}

func (c *ollamaClient) chat(ctx context.Context, body chatRequest) (*chatResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint+"/api/chat", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(req)
	if err != nil {
		return nil, transportError(ctx, err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(httpResp.Body, maxErrorBody))
		return nil, fmt.Errorf("%w %d: %s", ErrBadStatus, httpResp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var resp chatResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		if ctx.Err() != nil {
			return nil, transportError(ctx, err)
		}
		return nil, fmt.Errorf("decoding response: %w", err)
	}
	return &resp, nil
}

// transportError maps a failed request onto the package sentinels.
func transportError(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%w: %v", ErrOllamaUnavailable, err)
	}
	return err
}

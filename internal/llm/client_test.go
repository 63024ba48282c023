package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) { o.events = append(o.events, e) }

func newTestClient(t *testing.T, h http.HandlerFunc, tweak func(*LLMConfig)) (Client, *recordingObserver) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Endpoint = srv.URL
	if tweak != nil {
		tweak(&cfg)
	}
	obs := &recordingObserver{}
	return NewOllamaClient(cfg, obs), obs
}

func reply(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(chatResponse{
		Model:   "llama3.2",
		Message: chatMessage{Role: "assistant", Content: content},
	})
}

func TestSummarize_SendsChatRequest(t *testing.T) {
	var got chatRequest
	client, obs := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		reply(w, "  Bikes peaked on Tuesday.\n")
	}, nil)

	res, err := client.Summarize(context.Background(), Prompt{
		System: "You review tally history.",
		User:   "2026-03-04 bikes MPA=2",
	})

	require.NoError(t, err)
	assert.Equal(t, "Bikes peaked on Tuesday.", res.Text)
	assert.Equal(t, "llama3.2", res.Model)

	assert.Equal(t, "llama3.2", got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, chatMessage{Role: "system", Content: "You review tally history."}, got.Messages[0])
	assert.Equal(t, "user", got.Messages[1].Role)
	assert.InDelta(t, 0.3, got.Options.Temperature, 1e-9)
	assert.Equal(t, 768, got.Options.NumPredict)

	require.Len(t, obs.events, 1)
	assert.True(t, obs.events[0].Success)
	assert.Equal(t, len("You review tally history.")+len("2026-03-04 bikes MPA=2"), obs.events[0].PromptBytes)
}

func TestSummarize_Errors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		tweak   func(*LLMConfig)
		want    error
		code    string
	}{
		{
			name:    "blank answer",
			handler: func(w http.ResponseWriter, r *http.Request) { reply(w, " \n ") },
			want:    ErrEmptyOutput,
			code:    "EMPTY",
		},
		{
			name: "bad status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "model not found", http.StatusNotFound)
			},
			want: ErrBadStatus,
			code: "STATUS",
		},
		{
			name: "slow model",
			handler: func(w http.ResponseWriter, r *http.Request) {
				time.Sleep(300 * time.Millisecond)
				reply(w, "late")
			},
			tweak: func(c *LLMConfig) { c.TimeoutMs = 50 },
			want:  ErrTimeout,
			code:  "TIMEOUT",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, obs := newTestClient(t, tt.handler, tt.tweak)

			_, err := client.Summarize(context.Background(), Prompt{User: "history"})

			require.ErrorIs(t, err, tt.want)
			require.Len(t, obs.events, 1)
			assert.False(t, obs.events[0].Success)
			assert.Equal(t, tt.code, obs.events[0].ErrorCode)
		})
	}
}

func TestSummarize_Unavailable(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Endpoint = "http://127.0.0.1:1"
	cfg.TimeoutMs = 1000

	_, err := NewOllamaClient(cfg, nil).Summarize(context.Background(), Prompt{User: "history"})

	assert.ErrorIs(t, err, ErrOllamaUnavailable)
}

func TestLogObserver_WritesStructuredLine(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(&buf)

	obs.OnCallComplete(CallEvent{Model: "llama3.2", PromptBytes: 40, LatencyMs: 12, Success: true})
	obs.OnCallComplete(CallEvent{Model: "llama3.2", ErrorCode: "TIMEOUT"})

	out := buf.String()
	assert.Contains(t, out, "msg=llm_summarize")
	assert.Contains(t, out, "prompt_bytes=40")
	assert.Contains(t, out, "latency_ms=12")
	assert.Contains(t, out, "error_code=TIMEOUT")
}

// Package webhook posts finalized records to a user-configured endpoint.
//
// Delivery is optimistic: the response is never inspected, so a request that
// leaves without a transport error is presumed delivered.
package webhook

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

// DefaultTimeout bounds a single post.
const DefaultTimeout = 10 * time.Second

// Payload is the JSON body posted for every submit.
type Payload struct {
	Date  time.Time `json:"date"`
	Room  string    `json:"room"`
	Items any       `json:"items"`
}

// Result reports the outcome of a send. PresumedSent is true when the
// request left without a transport error; the server's answer is unknown.
type Result struct {
	PresumedSent bool
	LatencyMs    int64
}

// Sender posts payloads to an endpoint.
type Sender interface {
	Send(ctx context.Context, url string, p Payload) (Result, error)
}

type httpSender struct {
	http     *http.Client
	timeout  time.Duration
	observer Observer
}

// NewHTTPSender creates a Sender with the given per-request timeout.
func NewHTTPSender(timeout time.Duration, observer Observer) Sender {
	if observer == nil {
		observer = NoopObserver{}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &httpSender{
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		timeout:  timeout,
		observer: observer,
	}
}

func (s *httpSender) Send(ctx context.Context, url string, p Payload) (Result, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Result{}, ErrNoEndpoint
	}

	data, err := json.Marshal(p)
	if err != nil {
		return Result{}, fmt.Errorf("encoding payload: %w", err)
	}

	start := time.Now()
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	err = s.post(ctx, url, data)
	latency := time.Since(start).Milliseconds()
	if err != nil {
		switch {
		case ctx.Err() != nil:
			err = ErrTimeout
		case isConnectionError(err):
			err = fmt.Errorf("%w: %v", ErrUnreachable, err)
		}
		s.observer.OnSend(SendEvent{Room: p.Room, Bytes: len(data), LatencyMs: latency, ErrorCode: errorCode(err)})
		return Result{LatencyMs: latency}, err
	}

	s.observer.OnSend(SendEvent{Room: p.Room, Bytes: len(data), LatencyMs: latency, Sent: true})
	return Result{PresumedSent: true, LatencyMs: latency}, nil
}

func (s *httpSender) post(ctx context.Context, url string, data []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	// text/plain keeps script endpoints from demanding a preflight.
	req.Header.Set("Content-Type", "text/plain")

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	return nil
}

func isConnectionError(err error) bool {
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnreachable):
		return "UNREACHABLE"
	default:
		return "UNKNOWN"
	}
}

// Package upstream wraps the monitoring REST APIs this gateway fronts:
// an alerts source (alerts and silences) and a metrics source (alerting
// and recording rules). Responses are decoded straight into schemaless
// records so the query pipeline can filter them.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-querystring/query"
	"github.com/sony/gobreaker"

	"github.com/monigate/monigate/config"
	"github.com/monigate/monigate/logging/logger"
)

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream returned %d: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	se, ok := err.(*StatusError)
	return ok && se.StatusCode == http.StatusNotFound
}

// Client is the shared HTTP plumbing for one upstream source. Every call
// goes through a circuit breaker so a dead upstream fails fast instead of
// tying up request handlers.
type Client struct {
	name    string
	baseURL string
	token   string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  *logger.Logger
}

func newClient(name string, src *config.Source, log *logger.Logger) *Client {
	timeout := src.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		name:    name,
		baseURL: strings.TrimSuffix(src.BaseURL, "/"),
		token:   src.Token,
		http:    &http.Client{Timeout: timeout},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 100,
			Interval:    5 * time.Second,
			Timeout:     3 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
				return counts.Requests >= 3 && failureRatio >= 0.6
			},
		}),
		logger: log,
	}
}

// do performs one breaker-protected request. opts, when non-nil, is
// encoded into the query string; out, when non-nil, receives the decoded
// JSON body.
func (c *Client) do(ctx context.Context, method, path string, opts any, body any, out any) error {
	u := c.baseURL + path
	if opts != nil {
		qs, err := query.Values(opts)
		if err != nil {
			return fmt.Errorf("encoding query options: %w", err)
		}
		if encoded := qs.Encode(); encoded != "" {
			u += "?" + encoded
		}
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	raw, err := c.breaker.Execute(func() (any, error) {
		req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if c.token != "" {
			req.Header.Set("Authorization", "Bearer "+c.token)
		}

		res, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()

		data, err := io.ReadAll(res.Body)
		if err != nil {
			return nil, err
		}
		if res.StatusCode < 200 || res.StatusCode >= 300 {
			return nil, &StatusError{StatusCode: res.StatusCode, Body: strings.TrimSpace(string(data))}
		}
		return data, nil
	})
	if err != nil {
		c.logger.Warnf(ctx, "%s request %s %s failed: %v", c.name, method, path, err)
		return err
	}

	if out == nil {
		return nil
	}
	data := raw.([]byte)
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s response: %w", c.name, err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, opts any, out any) error {
	return c.do(ctx, http.MethodGet, path, opts, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

package request

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxErrorBody = 4 << 10

var errNoContent = errors.New("no content")

// Config describes one HTTP call against the backend.
type Config struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Headers map[string]string
}

// ResponseError is returned for any non-2xx answer. Body is the payload the server sent,
// which is what the user gets to see.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (that *ResponseError) Error() string {
	if that.Body == "" {
		return fmt.Sprintf("server responded with status %d", that.StatusCode)
	}

	return fmt.Sprintf("server responded with status %d: %s", that.StatusCode, that.Body)
}

// Client performs JSON requests relative to a base URL.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Do executes the request and decodes a 2xx JSON body into out when out is not nil.
func (that *Client) Do(ctx context.Context, conf Config, out any) error {
	err := that.do(ctx, conf, out)
	if errors.Is(err, errNoContent) {
		return nil
	}

	return err
}

func (that *Client) do(ctx context.Context, conf Config, out any) error {
	req, err := that.newRequest(ctx, conf)
	if err != nil {
		return err
	}

	resp, err := that.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &ResponseError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return errNoContent
	}

	if out == nil {
		return nil
	}

	if err = json.Unmarshal(trimmed, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func (that *Client) newRequest(ctx context.Context, conf Config) (*http.Request, error) {
	method := conf.Method
	if method == "" {
		method = http.MethodGet
	}

	target := that.baseURL + conf.Path
	if len(conf.Query) > 0 {
		target += "?" + conf.Query.Encode()
	}

	var body io.Reader
	if conf.Body != nil {
		payload, err := json.Marshal(conf.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range conf.Headers {
		req.Header.Set(key, value)
	}

	return req, nil
}

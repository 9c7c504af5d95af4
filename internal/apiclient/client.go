package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client issues JSON requests against the fixed backend origin. One
// attempt per call: no retry, no backoff.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Do sends method+path with an optional JSON body. A non-empty token is
// attached as a bearer credential. On 2xx the response body is decoded
// into out (when out is non-nil); any other status is normalized into
// an *Error carrying the backend message.
func (c *Client) Do(ctx context.Context, method, path, token string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return &Error{Kind: KindUnknown, Message: "failed to encode request"}
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return &Error{Kind: KindUnknown, Message: "invalid request"}
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &Error{Kind: KindUnknown, Message: "request failed"}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindUnknown, Status: resp.StatusCode, Message: "request failed"}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			Kind:    kindFromStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: backendMessage(raw),
		}
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return &Error{Kind: KindUnknown, Status: resp.StatusCode, Message: "invalid response body"}
		}
	}
	return nil
}

// backendMessage extracts the human-readable message the backend puts
// in either msg or error.
func backendMessage(raw []byte) string {
	var payload struct {
		Msg   string `json:"msg"`
		Error string `json:"error"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Msg != "" {
			return payload.Msg
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return "Request failed"
}

package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrUnauthorized = errors.New("backend rejected credentials")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is a non-2xx answer from the backend. Detail carries the optional
// "detail" field of the error body.
type APIError struct {
	Method string
	Path   string
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.Status, http.StatusText(e.Status))
}

func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// TransportError means the request never produced an HTTP response.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

type Config struct {
	BaseURL string
}

type Client struct {
	config Config
	client HTTPClient
	now    func() time.Time
}

func NewClient(config Config, client HTTPClient) *Client {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	return &Client{config: config, client: client, now: time.Now}
}

// do sends one request. A nil session sends no Authorization header; a
// non-nil one must still be valid. A 401 invalidates the session.
func (c *Client) do(ctx context.Context, sess *Session, method, path string, query url.Values, body, out any) error {
	if sess != nil && !sess.Valid(c.now()) {
		return ErrSessionInvalid
	}

	target := c.config.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if sess != nil {
		req.Header.Set("Authorization", sess.authHeader())
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{Method: method, Path: path, Status: resp.StatusCode, Detail: readDetail(resp.Body)}
		if resp.StatusCode == http.StatusUnauthorized && sess != nil {
			log.Printf("[pos-svc] session %s invalidated by backend 401", sess.ID)
			sess.Invalidate()
		}
		return apiErr
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// readDetail pulls "detail" out of an error body. FastAPI validation errors
// send a list there; only string details are shown to the user.
func readDetail(r io.Reader) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	data, err := io.ReadAll(io.LimitReader(r, 64<<10))
	if err != nil || len(data) == 0 {
		return ""
	}
	if err := json.Unmarshal(data, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(body.Detail, &detail); err != nil {
		return ""
	}
	return detail
}

func (c *Client) get(ctx context.Context, sess *Session, path string, query url.Values, out any) error {
	return c.do(ctx, sess, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, sess *Session, path string, body, out any) error {
	return c.do(ctx, sess, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, sess *Session, path string, body, out any) error {
	return c.do(ctx, sess, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, sess *Session, path string, body, out any) error {
	return c.do(ctx, sess, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, sess *Session, path string) error {
	return c.do(ctx, sess, http.MethodDelete, path, nil, nil, nil)
}

func pathID(format, id string) string {
	return fmt.Sprintf(format, url.PathEscape(id))
}

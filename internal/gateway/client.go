package gateway

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

	"germanbridge/internal/games"
)

var ErrNotFound = errors.New("game not found")

// TransportError is any failed call to the gateway other than a missing game:
// the request never completed, or the server answered with an unexpected
// status.
type TransportError struct {
	Op     string
	Status int // zero when no response arrived
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gateway %s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("gateway %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client talks to the persistence gateway. Update is a full overwrite with no
// conflict detection, so two tables saving the same game race and the later
// save wins.
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Create(ctx context.Context, names []string) (string, error) {
	var out struct {
		GameID string `json:"gameId"`
	}
	if err := c.do(ctx, "create", http.MethodPost, "/new-game", map[string][]string{"players": names}, &out); err != nil {
		return "", err
	}
	return out.GameID, nil
}

func (c *Client) Read(ctx context.Context, id string) (games.Record, error) {
	var rec games.Record
	err := c.do(ctx, "read", http.MethodGet, "/game/"+url.PathEscape(id), nil, &rec)
	return rec, err
}

func (c *Client) Update(ctx context.Context, id string, rec games.Record) error {
	return c.do(ctx, "update", http.MethodPost, "/game/"+url.PathEscape(id)+"/update", rec, nil)
}

func (c *Client) do(ctx context.Context, op, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return &TransportError{Op: op, Err: err}
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound && op == "read":
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return &TransportError{Op: op, Status: resp.StatusCode}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: op, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// Package client provides an HTTP client for the visitor register JSON API.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/evcraddock/visitor-register/internal/visitor"
)

// Client is an HTTP client for a running front desk server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a new API client.
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// SignIn posts a sign-in to the server.
func (c *Client) SignIn(f visitor.Fields) error {
	return c.post("/api/signin", f)
}

// SignOut posts a sign-out to the server.
func (c *Client) SignOut(firstName, lastName string) error {
	body := map[string]string{"first_name": firstName, "last_name": lastName}
	return c.post("/api/signout", body)
}

// post sends body as JSON and maps error responses back onto the
// visitor error taxonomy.
func (c *Client) post(path string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "error", cerr)
		}
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 400 {
		return nil
	}

	var errResp struct {
		Error string `json:"error"`
	}
	msg := http.StatusText(resp.StatusCode)
	if json.Unmarshal(respBody, &errResp) == nil && errResp.Error != "" {
		msg = errResp.Error
	}

	switch resp.StatusCode {
	case http.StatusBadRequest:
		if msg == visitor.ErrValidation.Error() {
			return visitor.ErrValidation
		}
		return fmt.Errorf("bad request: %s", msg)
	case http.StatusNotFound:
		if msg == visitor.ErrNotFound.Error() {
			return visitor.ErrNotFound
		}
		return fmt.Errorf("not found: %s", msg)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", visitor.ErrStorage, msg)
	default:
		return fmt.Errorf("server error: %s", msg)
	}
}

// Health checks that the server is reachable.
func (c *Client) Health() error {
	resp, err := c.httpClient.Get(c.baseURL + "/health")
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			slog.Warn("closing response body", "error", cerr)
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", http.StatusText(resp.StatusCode))
	}
	return nil
}

package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ClientInterface defines the interface for API client operations
type ClientInterface interface {
	FetchUser(ctx context.Context, username, token string) (*UserInfo, error)
}

// Client talks to the GitHub REST API
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// StatusError is returned when the API answers with a non-2xx status
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("unexpected status code: %d", e.Code)
	}
	return fmt.Sprintf("unexpected status code: %d: %s", e.Code, e.Message)
}

// NewClient creates a new API client rooted at baseURL
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// FetchUser retrieves the authenticated user's profile.
// The token is sent as the basic auth password, which GitHub accepts for
// personal access tokens.
func (c *Client) FetchUser(ctx context.Context, username, token string) (*UserInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(username, token)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body apiErrorBody
		data, _ := io.ReadAll(resp.Body)
		_ = json.Unmarshal(data, &body)
		return nil, &StatusError{Code: resp.StatusCode, Message: body.Message}
	}

	var user UserInfo
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return &user, nil
}

type apiErrorBody struct {
	Message string `json:"message"`
}

// Package sellerclient is the Go client for the seller onboarding API:
// it uploads form attachments concurrently, assembles the composed
// registration payload and submits it.
package sellerclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultBaseURL is used when no base URL is configured.
const DefaultBaseURL = "http://localhost:8080/api"

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithToken sets the bearer token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New builds a client for the given base URL, falling back to
// DefaultBaseURL when it is empty.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) authorize(req *http.Request) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
}

// serverMessage pulls the most specific message out of an error body;
// the fallback is returned when the body is absent or unparseable.
func serverMessage(body []byte, fallback string) string {
	var envelope struct {
		Message string          `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Message != "" {
			return envelope.Message
		}
		var errStr string
		if json.Unmarshal(envelope.Error, &errStr) == nil && errStr != "" {
			return errStr
		}
		var errObj struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(envelope.Error, &errObj) == nil && errObj.Message != "" {
			return errObj.Message
		}
	}
	return fallback
}

func (c *Client) do(req *http.Request, fallback string) ([]byte, error) {
	c.authorize(req)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%s (status %d)", serverMessage(body, fallback), resp.StatusCode)
	}
	return body, nil
}

// Package perplexity provides a chat-completion client for the Perplexity API.
package perplexity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultURL is the chat completions endpoint.
	DefaultURL = "https://api.perplexity.ai/chat/completions"
	// DefaultModel is the model requested when none is configured.
	DefaultModel = "sonar"
)

// Status describes what the provider's answer contained.
type Status string

const (
	StatusOK        Status = "ok"
	StatusEmpty     Status = "empty"     // well-formed, but no choice carried text
	StatusMalformed Status = "malformed" // body was not a completion payload
)

// Completion is the outcome of a successful HTTP exchange. Content is only
// meaningful when Status is StatusOK.
type Completion struct {
	Content string
	Model   string
	Status  Status
}

// Text returns the content and whether there was any.
func (c Completion) Text() (string, bool) {
	if c.Status != StatusOK {
		return "", false
	}
	return c.Content, true
}

// StatusError is returned when the provider answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("perplexity: status %d", e.Code)
}

// Options configures a Client.
type Options struct {
	URL         string
	Model       string
	Timeout     time.Duration
	Temperature float64
	MaxTokens   int
}

// DefaultOptions matches the request shape the search prompt was tuned for.
func DefaultOptions() Options {
	return Options{
		URL:         DefaultURL,
		Model:       DefaultModel,
		Timeout:     30 * time.Second,
		Temperature: 0.1,
		MaxTokens:   1000,
	}
}

// Client calls the chat completions endpoint with a bearer key.
type Client struct {
	apiKey string
	opts   Options
	client *http.Client
}

// NewClient creates a Perplexity client. Zero option fields take defaults.
func NewClient(apiKey string, opts Options) *Client {
	def := DefaultOptions()
	if opts.URL == "" {
		opts.URL = def.URL
	}
	if opts.Model == "" {
		opts.Model = def.Model
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = def.MaxTokens
	}
	if opts.Temperature == 0 {
		opts.Temperature = def.Temperature
	}
	return &Client{
		apiKey: apiKey,
		opts:   opts,
		client: &http.Client{Timeout: opts.Timeout},
	}
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message *message `json:"message"`
	} `json:"choices"`
}

// Complete sends prompt as a single user message. Transport failures and
// non-2xx statuses are errors; a 2xx body without usable text is not.
func (c *Client) Complete(ctx context.Context, prompt string) (Completion, error) {
	body, err := json.Marshal(chatRequest{
		Model:       c.opts.Model,
		Messages:    []message{{Role: "user", Content: prompt}},
		Temperature: c.opts.Temperature,
		MaxTokens:   c.opts.MaxTokens,
	})
	if err != nil {
		return Completion{}, fmt.Errorf("perplexity: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.URL, bytes.NewReader(body))
	if err != nil {
		return Completion{}, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Completion{}, fmt.Errorf("perplexity: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return Completion{}, &StatusError{Code: resp.StatusCode, Body: string(b)}
	}

	return decode(resp.Body), nil
}

func decode(r io.Reader) Completion {
	var cr chatResponse
	if err := json.NewDecoder(r).Decode(&cr); err != nil {
		return Completion{Status: StatusMalformed}
	}
	if len(cr.Choices) == 0 || cr.Choices[0].Message == nil {
		return Completion{Model: cr.Model, Status: StatusEmpty}
	}
	content := cr.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return Completion{Model: cr.Model, Status: StatusEmpty}
	}
	return Completion{Content: content, Model: cr.Model, Status: StatusOK}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/nats-io/nats.go"

	"github.com/WessleyAI/autospecs/engine/compare"
	"github.com/WessleyAI/autospecs/engine/domain"
	"github.com/WessleyAI/autospecs/engine/specs"
	"github.com/WessleyAI/autospecs/pkg/natsutil"
)

// comparison mirrors the API's compare payload.
type comparison struct {
	Cars    []domain.Spec   `json:"cars"`
	Summary compare.Summary `json:"summary"`
	Skipped []string        `json:"skipped,omitempty"`
}

type compareResult struct {
	Success bool        `json:"success"`
	Data    *comparison `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// apiClient talks to the HTTP API.
type apiClient struct {
	base string
	http *http.Client
}

func newAPIClient(base string, timeout time.Duration) *apiClient {
	return &apiClient{base: strings.TrimRight(base, "/"), http: &http.Client{Timeout: timeout}}
}

func (c *apiClient) get(ctx context.Context, path string, q url.Values, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()
	// Error statuses still carry the JSON envelope.
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decode %s (status %d): %w", path, resp.StatusCode, err)
	}
	return nil
}

func (c *apiClient) Search(ctx context.Context, model string) (domain.SearchResult, error) {
	var res domain.SearchResult
	err := c.get(ctx, "/api/car-specs", url.Values{"model": {model}}, &res)
	return res, err
}

func (c *apiClient) Compare(ctx context.Context, models []string) (compareResult, error) {
	var res compareResult
	err := c.get(ctx, "/api/compare", url.Values{"model": models}, &res)
	return res, err
}

// searcher resolves one model into the search envelope.
type searcher interface {
	Search(ctx context.Context, model string) (domain.SearchResult, error)
}

// natsClient performs lookups over NATS request/reply.
type natsClient struct {
	nc *nats.Conn
}

func (c *natsClient) Search(ctx context.Context, model string) (domain.SearchResult, error) {
	return natsutil.Request[specs.LookupRequest, domain.SearchResult](ctx, c.nc, specs.SubjectLookup, specs.LookupRequest{Model: model})
}

func connectNATS(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Name("autospecs-cli"))
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}
	return nc, nil
}

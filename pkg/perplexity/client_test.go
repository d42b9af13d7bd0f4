package perplexity

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *chatRequest) {
	t.Helper()
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-key" {
			t.Errorf("unexpected Authorization header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &got
}

func TestCompleteOK(t *testing.T) {
	srv, got := newTestServer(t, http.StatusOK,
		`{"model":"sonar","choices":[{"message":{"role":"assistant","content":"Make: Honda\nHorsepower: 158"}}]}`)

	c := NewClient("test-key", Options{URL: srv.URL})
	comp, err := c.Complete(context.Background(), "tell me about the Civic")
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	text, ok := comp.Text()
	if !ok || !strings.Contains(text, "Horsepower: 158") {
		t.Fatalf("unexpected completion: %+v", comp)
	}
	if comp.Model != "sonar" {
		t.Errorf("Model = %q", comp.Model)
	}

	if got.Model != DefaultModel || got.MaxTokens != 1000 || got.Temperature != 0.1 {
		t.Errorf("unexpected request params: %+v", got)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" || got.Messages[0].Content != "tell me about the Civic" {
		t.Errorf("unexpected messages: %+v", got.Messages)
	}
}

func TestCompleteNon2xx(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusInternalServerError, `{"error":"boom"}`)

	c := NewClient("test-key", Options{URL: srv.URL})
	_, err := c.Complete(context.Background(), "x")
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if se.Code != http.StatusInternalServerError || !strings.Contains(se.Body, "boom") {
		t.Errorf("unexpected status error: %+v", se)
	}
}

func TestCompleteEmptyAndMalformed(t *testing.T) {
	cases := []struct {
		name string
		body string
		want Status
	}{
		{"no choices", `{"choices":[]}`, StatusEmpty},
		{"null message", `{"choices":[{}]}`, StatusEmpty},
		{"blank content", `{"choices":[{"message":{"content":"   "}}]}`, StatusEmpty},
		{"not json", `<html>oops</html>`, StatusMalformed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := newTestServer(t, http.StatusOK, tc.body)
			comp, err := NewClient("test-key", Options{URL: srv.URL}).Complete(context.Background(), "x")
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if comp.Status != tc.want {
				t.Fatalf("Status = %q, want %q", comp.Status, tc.want)
			}
			if _, ok := comp.Text(); ok {
				t.Fatal("Text should report no content")
			}
		})
	}
}

func TestCompleteTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := NewClient("test-key", Options{URL: srv.URL}).Complete(context.Background(), "x")
	if err == nil {
		t.Fatal("expected error for closed server")
	}
}

func TestCompleteTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	_, err := NewClient("test-key", Options{URL: srv.URL, Timeout: 20 * time.Millisecond}).Complete(context.Background(), "x")
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("k", Options{})
	if c.opts.URL != DefaultURL || c.opts.Model != DefaultModel || c.opts.Timeout != 30*time.Second || c.opts.MaxTokens != 1000 {
		t.Fatalf("unexpected defaults: %+v", c.opts)
	}
}

package ai

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/interview-coach-team/interview-coach/pkg/config"
)

func embeddingsConfig(baseURL string) *config.Config {
	return &config.Config{
		Embeddings: config.EmbeddingsConfig{
			APIKey:         "test-key",
			BaseURL:        baseURL,
			Model:          "text-embedding-3-small",
			RequestTimeout: 5 * time.Second,
		},
	}
}

func TestEmbedReturnsVector(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("unexpected authorization header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","model":"text-embedding-3-small","data":[{"object":"embedding","index":0,"embedding":[0.25,-0.5,1.0]}]}`))
	}))
	defer server.Close()

	client := NewEmbeddingsClient(embeddingsConfig(server.URL), nil)
	vec, err := client.Embed(context.Background(), "hello world")
	if err != nil {
		t.Fatalf("Embed failed: %v", err)
	}
	want := []float32{0.25, -0.5, 1.0}
	if len(vec) != len(want) {
		t.Fatalf("expected %d dimensions, got %d", len(want), len(vec))
	}
	for i := range want {
		if vec[i] != want[i] {
			t.Fatalf("dimension %d = %f, want %f", i, vec[i], want[i])
		}
	}
}

func TestEmbedRetriesTransientFailure(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"rate limit exceeded","type":"rate_limit_error"}}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","data":[{"object":"embedding","index":0,"embedding":[1.0]}]}`))
	}))
	defer server.Close()

	client := NewEmbeddingsClient(embeddingsConfig(server.URL), nil)
	vec, err := client.Embed(context.Background(), "retry me")
	if err != nil {
		t.Fatalf("Embed failed after retry: %v", err)
	}
	if len(vec) != 1 {
		t.Fatalf("expected 1 dimension, got %d", len(vec))
	}
	if got := atomic.LoadInt32(&calls); got < 2 {
		t.Fatalf("expected a retry after 429, got %d calls", got)
	}
}

func TestEmbedPermanentFailureDoesNotRetry(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"invalid input","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	client := NewEmbeddingsClient(embeddingsConfig(server.URL), nil)
	if _, err := client.Embed(context.Background(), "bad input"); err == nil {
		t.Fatal("expected error for permanent failure")
	}
	if got := atomic.LoadInt32(&calls); got != 1 {
		t.Fatalf("permanent failures must not retry, got %d calls", got)
	}
}

func TestEmbedEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"object":"list","data":[]}`))
	}))
	defer server.Close()

	client := NewEmbeddingsClient(embeddingsConfig(server.URL), nil)
	if _, err := client.Embed(context.Background(), "anything"); err == nil {
		t.Fatal("expected error for empty data")
	}
}

func TestEmbeddingsModelID(t *testing.T) {
	client := NewEmbeddingsClient(embeddingsConfig("http://localhost:1"), nil)
	if client.ModelID() != "text-embedding-3-small" {
		t.Fatalf("unexpected model id %q", client.ModelID())
	}
}

func TestFloat64ToFloat32(t *testing.T) {
	in := []float64{1.0, 2.5, -0.5}
	out := float64ToFloat32(in)
	if len(out) != len(in) {
		t.Fatalf("expected %d elements, got %d", len(in), len(out))
	}
	for i, v := range out {
		if v != float32(in[i]) {
			t.Fatalf("index %d: expected %v, got %v", i, float32(in[i]), v)
		}
	}
}

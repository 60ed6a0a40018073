package ai

import (
	"context"
	"fmt"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/param"
	"go.uber.org/zap"

	apperrors "github.com/interview-coach-team/interview-coach/errors"
	"github.com/interview-coach-team/interview-coach/pkg/config"
)

// EmbeddingsClient computes embedding vectors through an OpenAI-compatible
// embeddings endpoint. Transient failures are retried with exponential
// backoff; anything else surfaces immediately so the semantic scorer can
// degrade to its neutral default.
type EmbeddingsClient struct {
	client oai.Client
	model  string
	logger *zap.Logger
}

// NewEmbeddingsClient creates an embeddings client from configuration. The
// base URL override points the client at compatible self-hosted endpoints
// (and at test servers).
func NewEmbeddingsClient(cfg *config.Config, logger *zap.Logger) *EmbeddingsClient {
	reqOpts := []option.RequestOption{
		option.WithAPIKey(cfg.Embeddings.APIKey),
		// Retries live in the backoff layer below, not in the SDK.
		option.WithMaxRetries(0),
	}
	if cfg.Embeddings.BaseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(cfg.Embeddings.BaseURL))
	}
	if cfg.Embeddings.RequestTimeout > 0 {
		reqOpts = append(reqOpts, option.WithHTTPClient(&http.Client{
			Timeout: cfg.Embeddings.RequestTimeout,
		}))
	}
	return &EmbeddingsClient{
		client: oai.NewClient(reqOpts...),
		model:  cfg.Embeddings.Model,
		logger: logger,
	}
}

// Embed returns the embedding vector for one text.
func (c *EmbeddingsClient) Embed(ctx context.Context, text string) ([]float32, error) {
	var vector []float32

	operation := func() error {
		resp, err := c.client.Embeddings.New(ctx, oai.EmbeddingNewParams{
			Model: c.model,
			Input: oai.EmbeddingNewParamsInputUnion{
				OfString: param.NewOpt(text),
			},
		})
		if err != nil {
			if apperrors.IsRetryableProvider(err) {
				if c.logger != nil {
					c.logger.Warn("⚠️ Transient embeddings failure, retrying", zap.Error(err))
				}
				return err
			}
			return backoff.Permanent(err)
		}
		if len(resp.Data) == 0 {
			return backoff.Permanent(fmt.Errorf("embeddings: empty response"))
		}
		vector = float64ToFloat32(resp.Data[0].Embedding)
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.MaxInterval = 2 * time.Second
	bo.MaxElapsedTime = 8 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(bo, ctx)); err != nil {
		return nil, fmt.Errorf("embed text: %w", err)
	}
	return vector, nil
}

// ModelID returns the configured embeddings model, used in cache keys.
func (c *EmbeddingsClient) ModelID() string {
	return c.model
}

// float64ToFloat32 converts a []float64 slice to []float32.
func float64ToFloat32(in []float64) []float32 {
	out := make([]float32, len(in))
	for i, v := range in {
		out[i] = float32(v)
	}
	return out
}

package scoring

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// Embedder produces embedding vectors for text.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
	ModelID() string
}

// VectorCache caches embedding vectors. Implementations swallow their own
// errors: a broken cache degrades to a miss, never to a scoring failure.
type VectorCache interface {
	Get(ctx context.Context, key string) ([]float32, bool)
	Set(ctx context.Context, key string, vector []float32)
}

// SemanticScorer measures how close an answer is to the reference answer by
// embedding both and rescaling the cosine similarity from [-1,1] to [0,100].
type SemanticScorer struct {
	embedder Embedder
	cache    VectorCache
	logger   *zap.Logger
}

// NewSemanticScorer creates a semantic scorer. The cache is optional.
func NewSemanticScorer(embedder Embedder, cache VectorCache, logger *zap.Logger) *SemanticScorer {
	return &SemanticScorer{
		embedder: embedder,
		cache:    cache,
		logger:   logger,
	}
}

// Score returns the content score and whether it was degraded. Either text
// empty yields 0 without a degraded flag; an embedding failure yields the
// neutral score with the degraded flag set.
func (s *SemanticScorer) Score(ctx context.Context, answer, reference string) (float64, bool) {
	if strings.TrimSpace(answer) == "" || strings.TrimSpace(reference) == "" {
		return 0, false
	}

	answerVec, err := s.embed(ctx, answer)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Embedding failed, semantic score degraded to neutral", zap.Error(err))
		}
		return entities.NeutralScore, true
	}
	referenceVec, err := s.embed(ctx, reference)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("⚠️ Embedding failed, semantic score degraded to neutral", zap.Error(err))
		}
		return entities.NeutralScore, true
	}

	cos := cosineSimilarity(answerVec, referenceVec)
	return clamp((cos+1)/2*100, 0, 100), false
}

func (s *SemanticScorer) embed(ctx context.Context, text string) ([]float32, error) {
	key := embeddingCacheKey(s.embedder.ModelID(), text)
	if s.cache != nil {
		if vec, ok := s.cache.Get(ctx, key); ok {
			return vec, nil
		}
	}
	vec, err := s.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, key, vec)
	}
	return vec, nil
}

func embeddingCacheKey(model, text string) string {
	sum := sha256.Sum256([]byte(text))
	return "embedding:" + model + ":" + hex.EncodeToString(sum[:])
}

// cosineSimilarity returns the cosine of the angle between two vectors,
// or 0 when either vector is empty, mismatched, or zero-length.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

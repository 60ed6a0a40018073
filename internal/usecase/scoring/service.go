package scoring

import (
	"context"

	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// Answers below this word count get the short-answer advisory flag. The flag
// is informational for feedback; it never changes any score.
const shortAnswerWordCount = 20

// Service defines the scoring pipeline: one synchronous pass from transcript,
// acoustic summary and reference answer to a full score report.
type Service interface {
	Score(ctx context.Context, transcript entities.Transcript, audio *entities.AudioFeatures, reference entities.ReferenceAnswer) (*entities.ScoreReport, error)
}

type scoringService struct {
	extractor *Extractor
	semantic  *SemanticScorer
	structure *StructureAnalyzer
	logger    *zap.Logger
}

// NewScoringService constructs the scoring pipeline from its analyzers
func NewScoringService(extractor *Extractor, semantic *SemanticScorer, structure *StructureAnalyzer, logger *zap.Logger) Service {
	return &scoringService{
		extractor: extractor,
		semantic:  semantic,
		structure: structure,
		logger:    logger,
	}
}

// Score runs extraction, semantic comparison, structure analysis and
// aggregation. A transcript without tokens short-circuits to the all-zero
// report with the invalid-input flag; no measurement or external call runs.
func (s *scoringService) Score(ctx context.Context, transcript entities.Transcript, audio *entities.AudioFeatures, reference entities.ReferenceAnswer) (*entities.ScoreReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tokens := tokenize(transcript.Text)
	if len(tokens) == 0 {
		if s.logger != nil {
			s.logger.Warn("⚠️ Empty transcript, returning zero scores")
		}
		return entities.ZeroScoreReport(), nil
	}

	flags := entities.ScoreFlags{
		ShortAnswer: len(tokens) < shortAnswerWordCount,
	}

	measurements := s.extractor.Extract(transcript, audio)

	content, semanticDegraded := s.semantic.Score(ctx, transcript.Text, reference.Text)
	flags.DegradedSemantic = semanticDegraded

	star := s.structure.Analyze(transcript.Text, reference)
	structureScore := s.structure.Score(star)

	report := Aggregate(content, structureScore, measurements, flags, star)

	if s.logger != nil {
		s.logger.Info("✅ Answer scored",
			zap.Float64("final_score", report.FinalScore),
			zap.Int("word_count", measurements.WordCount),
			zap.Int("star_components", star.DetectedCount),
			zap.Bool("degraded", report.Flags.Degraded()))
	}
	return report, nil
}

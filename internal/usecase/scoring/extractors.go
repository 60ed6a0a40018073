package scoring

import (
	"sync"

	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// Extractor computes the raw delivery measurements from a transcript and an
// optional acoustic summary. Measurements are pure and independent: each one
// runs in its own goroutine and a failing one never blocks the others.
type Extractor struct {
	fillers *phraseMatcher
	grammar *grammarChecker
	logger  *zap.Logger
}

// NewExtractor creates an extractor from a lexicon set. When the grammar
// rules fail to compile the checker is disabled and the grammar measurement
// is reported as unchecked rather than failing the pipeline.
func NewExtractor(lex *LexiconSet, logger *zap.Logger) *Extractor {
	grammar, err := newGrammarChecker(lex.GrammarRules)
	if err != nil {
		if logger != nil {
			logger.Warn("⚠️ Grammar rules failed to compile, grammar checks disabled",
				zap.String("lexicon_version", lex.Version),
				zap.Error(err))
		}
		grammar = nil
	}
	return &Extractor{
		fillers: newPhraseMatcher(lex.Fillers),
		grammar: grammar,
		logger:  logger,
	}
}

// Extract runs all measurements concurrently and returns them. The acoustic
// summary is passed through untouched; a nil pointer means unavailable.
func (e *Extractor) Extract(transcript entities.Transcript, audio *entities.AudioFeatures) entities.Measurements {
	tokens := tokenize(transcript.Text)
	m := entities.Measurements{
		WordCount: len(tokens),
		Audio:     audio,
	}
	if len(tokens) == 0 {
		return m
	}

	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		m.WPM = wordsPerMinute(len(tokens), transcript.DurationSeconds)
	}()

	go func() {
		defer wg.Done()
		m.FillerCount = e.fillers.count(transcript.Text)
		m.FillerDensity = float64(m.FillerCount) / float64(len(tokens))
	}()

	go func() {
		defer wg.Done()
		if e.grammar == nil {
			return
		}
		m.GrammarErrors = e.grammar.count(transcript.Text)
		m.GrammarChecked = true
	}()

	go func() {
		defer wg.Done()
		m.VocabularyDiversity = vocabularyDiversity(tokens)
	}()

	wg.Wait()
	return m
}

// wordsPerMinute returns the speaking rate, or 0 when duration is unknown.
func wordsPerMinute(wordCount int, durationSeconds float64) float64 {
	if durationSeconds <= 0 {
		return 0
	}
	return float64(wordCount) / (durationSeconds / 60.0)
}

// vocabularyDiversity is the type-token ratio: unique tokens over total.
func vocabularyDiversity(tokens []string) float64 {
	if len(tokens) == 0 {
		return 0
	}
	unique := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		unique[t] = struct{}{}
	}
	return float64(len(unique)) / float64(len(tokens))
}

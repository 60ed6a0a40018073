package scoring

import (
	"math"
	"testing"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	return NewExtractor(DefaultLexicons(), nil)
}

func TestExtractWordsPerMinute(t *testing.T) {
	e := newTestExtractor(t)
	transcript := entities.Transcript{
		Text:            "one two three four five six seven eight nine ten eleven twelve",
		DurationSeconds: 6,
	}
	m := e.Extract(transcript, nil)
	if m.WordCount != 12 {
		t.Fatalf("expected 12 words, got %d", m.WordCount)
	}
	if math.Abs(m.WPM-120) > 1e-9 {
		t.Fatalf("expected 120 WPM, got %f", m.WPM)
	}
}

func TestExtractZeroDuration(t *testing.T) {
	e := newTestExtractor(t)
	m := e.Extract(entities.Transcript{Text: "some words here", DurationSeconds: 0}, nil)
	if m.WPM != 0 {
		t.Fatalf("expected WPM 0 for unknown duration, got %f", m.WPM)
	}
}

func TestExtractFillerPhrases(t *testing.T) {
	e := newTestExtractor(t)
	transcript := entities.Transcript{
		Text:            "You know I was um kind of nervous you know",
		DurationSeconds: 5,
	}
	m := e.Extract(transcript, nil)
	if m.FillerCount != 4 {
		t.Fatalf("expected 4 fillers (you know x2, um, kind of), got %d", m.FillerCount)
	}
	if m.WordCount != 10 {
		t.Fatalf("expected 10 words, got %d", m.WordCount)
	}
	if math.Abs(m.FillerDensity-0.4) > 1e-9 {
		t.Fatalf("expected filler density 0.4, got %f", m.FillerDensity)
	}
}

func TestExtractFillerTokenBoundary(t *testing.T) {
	e := newTestExtractor(t)
	// "summer" contains "um" and "error" contains "err"; neither is a filler.
	m := e.Extract(entities.Transcript{Text: "summer error document", DurationSeconds: 2}, nil)
	if m.FillerCount != 0 {
		t.Fatalf("expected no fillers inside larger words, got %d", m.FillerCount)
	}
}

func TestExtractGrammarErrors(t *testing.T) {
	e := newTestExtractor(t)
	transcript := entities.Transcript{
		Text:            "They was tired and he have a plan because we could of won",
		DurationSeconds: 6,
	}
	m := e.Extract(transcript, nil)
	if !m.GrammarChecked {
		t.Fatal("expected grammar checker to run")
	}
	if m.GrammarErrors != 3 {
		t.Fatalf("expected 3 grammar errors, got %d", m.GrammarErrors)
	}
}

func TestExtractGrammarCheckerUnavailable(t *testing.T) {
	lex := DefaultLexicons()
	lex.GrammarRules = []GrammarRule{{Name: "broken", Pattern: `[`}}
	e := NewExtractor(lex, nil)
	m := e.Extract(entities.Transcript{Text: "they was here", DurationSeconds: 2}, nil)
	if m.GrammarChecked {
		t.Fatal("expected grammar checker to be unavailable")
	}
	if m.GrammarErrors != 0 {
		t.Fatalf("expected 0 grammar errors when unchecked, got %d", m.GrammarErrors)
	}
	if m.WordCount != 3 {
		t.Fatalf("other measurements must still run, got word count %d", m.WordCount)
	}
}

func TestExtractVocabularyDiversity(t *testing.T) {
	e := newTestExtractor(t)
	m := e.Extract(entities.Transcript{Text: "test Test TEST test", DurationSeconds: 2}, nil)
	if math.Abs(m.VocabularyDiversity-0.25) > 1e-9 {
		t.Fatalf("expected diversity 0.25, got %f", m.VocabularyDiversity)
	}
}

func TestExtractEmptyText(t *testing.T) {
	e := newTestExtractor(t)
	m := e.Extract(entities.Transcript{Text: "   ", DurationSeconds: 4}, nil)
	if m.WordCount != 0 {
		t.Fatalf("expected 0 words, got %d", m.WordCount)
	}
	if m.VocabularyDiversity != 0 {
		t.Fatalf("expected diversity 0 with no tokens, got %f", m.VocabularyDiversity)
	}
}

func TestExtractAudioPassthrough(t *testing.T) {
	e := newTestExtractor(t)
	audio := &entities.AudioFeatures{PitchMean: 180, PitchStdev: 30, EnergyMean: -18, EnergyStdev: 6, SilenceRatio: 0.2}
	m := e.Extract(entities.Transcript{Text: "hello there", DurationSeconds: 2}, audio)
	if m.Audio != audio {
		t.Fatal("expected acoustic summary to pass through untouched")
	}
	m = e.Extract(entities.Transcript{Text: "hello there", DurationSeconds: 2}, nil)
	if m.Audio != nil {
		t.Fatal("expected nil acoustic summary to stay nil")
	}
}

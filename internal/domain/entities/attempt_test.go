package entities

import (
	"testing"

	"github.com/google/uuid"
)

func TestAttemptReportRoundTrip(t *testing.T) {
	report := NewScoreReport(
		SubScores{Content: 95, Delivery: 100, Communication: 88.5, Voice: 89.6, Confidence: 90.4, Structure: 66},
		ScoreFlags{ShortAnswer: true},
		Measurements{WordCount: 18, WPM: 135, VocabularyDiversity: 0.89, GrammarChecked: true},
		StarAnalysis{Situation: true, Action: true, Result: true, DetectedCount: 3, OrderBonus: 5, KeywordCoverage: 1.0 / 3.0},
	)

	attempt := NewAttempt(uuid.New(), uuid.New(), "transcript text", 8)
	if err := attempt.SetReport(report); err != nil {
		t.Fatalf("SetReport failed: %v", err)
	}
	if attempt.FinalScore != report.FinalScore {
		t.Fatalf("final score column %f, want %f", attempt.FinalScore, report.FinalScore)
	}

	restored, err := attempt.Report()
	if err != nil {
		t.Fatalf("Report failed: %v", err)
	}
	if restored.SubScores != report.SubScores {
		t.Fatalf("sub-scores drifted: %+v vs %+v", restored.SubScores, report.SubScores)
	}
	if restored.Flags != report.Flags {
		t.Fatalf("flags drifted: %+v vs %+v", restored.Flags, report.Flags)
	}
	if restored.Star.DetectedCount != 3 || restored.Star.OrderBonus != 5 {
		t.Fatalf("star analysis drifted: %+v", restored.Star)
	}
	if restored.Measurements.WPM != 135 {
		t.Fatalf("measurements drifted: %+v", restored.Measurements)
	}
}

func TestAttemptFeedbackRoundTrip(t *testing.T) {
	attempt := NewAttempt(uuid.New(), uuid.New(), "text", 5)

	if payload, err := attempt.FeedbackPayload(); err != nil || payload != nil {
		t.Fatalf("expected no feedback before SetFeedback, got %v err %v", payload, err)
	}

	in := &FeedbackPayload{
		Summary:   "Solid answer with clear impact.",
		Strengths: []string{"clear structure"},
		Source:    FeedbackSourceModel,
	}
	if err := attempt.SetFeedback(in); err != nil {
		t.Fatalf("SetFeedback failed: %v", err)
	}
	if attempt.FeedbackSource != string(FeedbackSourceModel) {
		t.Fatalf("feedback source column %q", attempt.FeedbackSource)
	}

	out, err := attempt.FeedbackPayload()
	if err != nil {
		t.Fatalf("FeedbackPayload failed: %v", err)
	}
	if out.Summary != in.Summary {
		t.Fatalf("summary drifted: %q", out.Summary)
	}
	// Normalize fills nil slices so consumers never see null.
	if out.Improvements == nil || out.Tips == nil {
		t.Fatal("expected normalized empty slices")
	}
}

package scoring

import (
	"math"
	"testing"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

func TestPaceScoreBand(t *testing.T) {
	cases := []struct {
		wpm  float64
		want float64
	}{
		{120, 100}, // lower bound, no penalty
		{160, 100}, // upper bound, no penalty
		{200, 60},  // 40 units above the band
		{140, 100},
		{100, 80},
		{119, 99},
		{161, 99},
		{400, 0}, // penalty clamped at the floor
	}
	for _, c := range cases {
		got := paceScore(c.wpm)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("paceScore(%f) = %f, want %f", c.wpm, got, c.want)
		}
	}
}

func TestFillerScore(t *testing.T) {
	cases := []struct {
		density float64
		want    float64
	}{
		{0, 100},
		{0.05, 80},
		{0.1, 60},
		{0.25, 0},
		{0.5, 0}, // clamped
	}
	for _, c := range cases {
		got := fillerScore(c.density)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("fillerScore(%f) = %f, want %f", c.density, got, c.want)
		}
	}
}

func TestVoiceScoreUnavailableAudio(t *testing.T) {
	score, degraded := voiceScore(nil)
	if score != entities.NeutralScore {
		t.Fatalf("expected neutral voice score 50 without audio, got %f", score)
	}
	if !degraded {
		t.Fatal("expected degraded voice flag without audio")
	}
}

func TestVoiceScoreDistinguishesFlatVoiceFromNoData(t *testing.T) {
	// Measured zeros are a flat, monotone voice, not missing data.
	flat := &entities.AudioFeatures{PitchStdev: 0, EnergyStdev: 0}
	score, degraded := voiceScore(flat)
	if degraded {
		t.Fatal("measured audio must not set the degraded flag")
	}
	if score == entities.NeutralScore {
		t.Fatalf("flat voice should not score the neutral default, got %f", score)
	}
}

func TestPitchVariationScore(t *testing.T) {
	cases := []struct {
		std  float64
		want float64
	}{
		{0, 0},
		{7.5, 25},
		{15, 50},
		{25, 80},
		{37.5, 90},
		{50, 100},
		{70, 70},
		{90, 60},
		{130, 50}, // floor
	}
	for _, c := range cases {
		got := pitchVariationScore(c.std)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("pitchVariationScore(%f) = %f, want %f", c.std, got, c.want)
		}
	}
}

func TestEnergySteadinessScore(t *testing.T) {
	cases := []struct {
		std  float64
		want float64
	}{
		{1, 75},  // flat affect
		{3, 95},
		{8, 90},
		{15, 70},
		{20, 60},
		{40, 50}, // floor
	}
	for _, c := range cases {
		got := energySteadinessScore(c.std)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("energySteadinessScore(%f) = %f, want %f", c.std, got, c.want)
		}
	}
}

func TestProjectionScore(t *testing.T) {
	cases := []struct {
		energyMean float64
		want       float64
	}{
		{-45, 30}, // floor
		{-35, 40},
		{-30, 50},
		{-25, 65},
		{-20, 80},
		{-15, 90},
		{-10, 100},
		{-7, 100},  // ceiling band
		{0, 80},    // too loud
		{-2.5, 90}, // just past the ceiling
	}
	for _, c := range cases {
		got := projectionScore(c.energyMean)
		if math.Abs(got-c.want) > 1e-9 {
			t.Fatalf("projectionScore(%f) = %f, want %f", c.energyMean, got, c.want)
		}
	}
}

func TestConfidenceScoreWithoutAudio(t *testing.T) {
	m := entities.Measurements{WordCount: 50, FillerDensity: 0}
	got := confidenceScore(m)
	// Projection falls back to neutral 50; filler part stays live.
	want := 0.6*50 + 0.4*100
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("confidenceScore without audio = %f, want %f", got, want)
	}
}

func TestCommunicationScoreGrammarUnavailable(t *testing.T) {
	m := entities.Measurements{
		WordCount:           40,
		GrammarChecked:      false,
		VocabularyDiversity: 0.65,
	}
	got, degraded := communicationScore(m)
	if !degraded {
		t.Fatal("expected degraded grammar flag when checker unavailable")
	}
	want := 0.5*50 + 0.5*100
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("communicationScore = %f, want %f", got, want)
	}
}

func TestAggregateFinalScoreIsWeightedSum(t *testing.T) {
	m := entities.Measurements{
		WordCount:           30,
		WPM:                 135,
		FillerCount:         2,
		FillerDensity:       2.0 / 30.0,
		GrammarErrors:       1,
		GrammarChecked:      true,
		VocabularyDiversity: 0.6,
		Audio:               &entities.AudioFeatures{PitchStdev: 30, EnergyMean: -18, EnergyStdev: 6},
	}
	report := Aggregate(82.5, 66, m, entities.ScoreFlags{}, entities.StarAnalysis{})

	var want float64
	for _, d := range entities.Dimensions() {
		want += entities.Weight(d) * report.SubScores.Get(d)
	}
	want = math.Round(want*100) / 100

	if report.FinalScore != want {
		t.Fatalf("final score %f is not the weighted sum %f", report.FinalScore, want)
	}
}

func TestAggregateBounds(t *testing.T) {
	extremes := []entities.Measurements{
		{WordCount: 1, WPM: 900, FillerCount: 1, FillerDensity: 1, GrammarErrors: 5, GrammarChecked: true, VocabularyDiversity: 0},
		{WordCount: 500, WPM: 10, GrammarChecked: true, VocabularyDiversity: 1, Audio: &entities.AudioFeatures{PitchStdev: 500, EnergyMean: 40, EnergyStdev: 200}},
		{WordCount: 50, WPM: 140, GrammarChecked: true, VocabularyDiversity: 0.9, Audio: &entities.AudioFeatures{PitchStdev: 37, EnergyMean: -12, EnergyStdev: 6}},
	}
	contents := []float64{-20, 0, 100, 180}
	structures := []float64{-5, 0, 100, 140}

	for _, m := range extremes {
		for _, content := range contents {
			for _, structure := range structures {
				report := Aggregate(content, structure, m, entities.ScoreFlags{}, entities.StarAnalysis{})
				for _, d := range entities.Dimensions() {
					s := report.SubScores.Get(d)
					if s < 0 || s > 100 {
						t.Fatalf("sub-score %s = %f out of [0,100]", d, s)
					}
				}
				if report.FinalScore < 0 || report.FinalScore > 100 {
					t.Fatalf("final score %f out of [0,100]", report.FinalScore)
				}
			}
		}
	}
}

func TestAggregatePreservesIncomingFlags(t *testing.T) {
	m := entities.Measurements{WordCount: 10, WPM: 130, GrammarChecked: true, VocabularyDiversity: 0.7}
	flags := entities.ScoreFlags{DegradedSemantic: true, ShortAnswer: true}
	report := Aggregate(50, 50, m, flags, entities.StarAnalysis{})
	if !report.Flags.DegradedSemantic || !report.Flags.ShortAnswer {
		t.Fatal("incoming flags must be preserved")
	}
	if !report.Flags.DegradedVoice {
		t.Fatal("expected degraded voice flag for missing audio")
	}
}

package entities

import "strings"

// WordTiming is a single spoken word with optional timing info
type WordTiming struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// Transcript is the spoken answer as delivered by the transcription
// collaborator. Immutable once produced; owned by the submitting request.
type Transcript struct {
	Text            string       `json:"text"`
	Words           []WordTiming `json:"words,omitempty"`
	DurationSeconds float64      `json:"duration_seconds"`
}

// IsEmpty reports whether the transcript carries no spoken content
func (t Transcript) IsEmpty() bool {
	return strings.TrimSpace(t.Text) == ""
}

// AudioFeatures is the fixed acoustic summary derived once per audio clip.
// A nil *AudioFeatures means no acoustic data was available, which is
// distinct from a clip that measured zero on every statistic.
type AudioFeatures struct {
	PitchMean    float64 `json:"pitch_mean"`
	PitchStdev   float64 `json:"pitch_stdev"`
	EnergyMean   float64 `json:"energy_mean"`
	EnergyStdev  float64 `json:"energy_stdev"`
	SilenceRatio float64 `json:"silence_ratio"`
}

// ReferenceAnswer is the question's ideal-answer text and expected keywords.
// Supplied by the question bank; read-only input to scoring.
type ReferenceAnswer struct {
	Text     string   `json:"text"`
	Keywords []string `json:"keywords"`
}

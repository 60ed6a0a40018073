package entities

import "math"

// Dimension names one of the six scored answer qualities
type Dimension string

// Scored dimensions
const (
	DimensionContent       Dimension = "content"
	DimensionDelivery      Dimension = "delivery"
	DimensionCommunication Dimension = "communication"
	DimensionVoice         Dimension = "voice"
	DimensionConfidence    Dimension = "confidence"
	DimensionStructure     Dimension = "structure"
)

// NeutralScore is the documented default substituted when a signal source
// is unavailable, so every dimension is always present.
const NeutralScore = 50.0

// scoreWeights is the single authoritative weight table for the final score.
// Final ranking must always be recomputed from these weights and the current
// sub-scores, never read from a stored copy.
var scoreWeights = map[Dimension]float64{
	DimensionContent:       0.30,
	DimensionDelivery:      0.15,
	DimensionCommunication: 0.15,
	DimensionVoice:         0.15,
	DimensionConfidence:    0.15,
	DimensionStructure:     0.10,
}

// dimensionOrder is the canonical iteration order for the six dimensions
var dimensionOrder = []Dimension{
	DimensionContent,
	DimensionDelivery,
	DimensionCommunication,
	DimensionVoice,
	DimensionConfidence,
	DimensionStructure,
}

// Dimensions returns the six dimensions in canonical order
func Dimensions() []Dimension {
	out := make([]Dimension, len(dimensionOrder))
	copy(out, dimensionOrder)
	return out
}

// Weight returns the final-score weight of a dimension
func Weight(d Dimension) float64 {
	return scoreWeights[d]
}

// SubScores holds the six bounded quality dimensions in [0,100].
// All six are always present; missing signal sources are represented by
// NeutralScore plus a flag, never by absence.
type SubScores struct {
	Content       float64 `json:"content"`
	Delivery      float64 `json:"delivery"`
	Communication float64 `json:"communication"`
	Voice         float64 `json:"voice"`
	Confidence    float64 `json:"confidence"`
	Structure     float64 `json:"structure"`
}

// Get returns the value for a dimension
func (s SubScores) Get(d Dimension) float64 {
	switch d {
	case DimensionContent:
		return s.Content
	case DimensionDelivery:
		return s.Delivery
	case DimensionCommunication:
		return s.Communication
	case DimensionVoice:
		return s.Voice
	case DimensionConfidence:
		return s.Confidence
	case DimensionStructure:
		return s.Structure
	default:
		return 0
	}
}

// Final computes the weighted final score rounded to two decimal places.
// Recomputed on every call from the current sub-scores.
func (s SubScores) Final() float64 {
	total := 0.0
	for _, d := range dimensionOrder {
		total += scoreWeights[d] * s.Get(d)
	}
	return math.Round(total*100) / 100
}

// Strongest returns the highest-scoring dimension, breaking ties by
// canonical dimension order so the result is deterministic.
func (s SubScores) Strongest() Dimension {
	best := dimensionOrder[0]
	for _, d := range dimensionOrder[1:] {
		if s.Get(d) > s.Get(best) {
			best = d
		}
	}
	return best
}

// Weakest returns the lowest-scoring dimension, ties broken by canonical order.
func (s SubScores) Weakest() Dimension {
	worst := dimensionOrder[0]
	for _, d := range dimensionOrder[1:] {
		if s.Get(d) < s.Get(worst) {
			worst = d
		}
	}
	return worst
}

// ScoreFlags records degraded-mode substitutions and input problems.
// InvalidInput is the only flag surfaced to callers as a distinct outcome;
// the rest annotate an otherwise valid result.
type ScoreFlags struct {
	InvalidInput     bool `json:"invalid_input"`
	DegradedVoice    bool `json:"degraded_voice"`
	DegradedSemantic bool `json:"degraded_semantic"`
	DegradedGrammar  bool `json:"degraded_grammar"`
	ShortAnswer      bool `json:"short_answer"`
}

// Degraded reports whether any signal source was substituted
func (f ScoreFlags) Degraded() bool {
	return f.DegradedVoice || f.DegradedSemantic || f.DegradedGrammar
}

// Measurements are the raw per-answer features extracted before scoring
type Measurements struct {
	WordCount           int            `json:"word_count"`
	WPM                 float64        `json:"wpm"`
	FillerCount         int            `json:"filler_count"`
	FillerDensity       float64        `json:"filler_density"`
	GrammarErrors       int            `json:"grammar_errors"`
	GrammarChecked      bool           `json:"grammar_checked"`
	VocabularyDiversity float64        `json:"vocabulary_diversity"`
	Audio               *AudioFeatures `json:"audio,omitempty"`
}

// StarAnalysis reports STAR-method coverage for one answer
type StarAnalysis struct {
	Situation       bool     `json:"situation"`
	Task            bool     `json:"task"`
	Action          bool     `json:"action"`
	Result          bool     `json:"result"`
	DetectedCount   int      `json:"detected_count"`
	OrderBonus      float64  `json:"order_bonus"`
	EarlyOpening    bool     `json:"early_opening"`
	ClosingResult   bool     `json:"closing_result"`
	KeywordCoverage float64  `json:"keyword_coverage"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
}

// ScoreReport is the complete scoring outcome for one attempt, handed to
// the persistence collaborator and to the feedback bridge.
type ScoreReport struct {
	SubScores    SubScores    `json:"sub_scores"`
	FinalScore   float64      `json:"final_score"`
	Flags        ScoreFlags   `json:"flags"`
	Measurements Measurements `json:"measurements"`
	Star         StarAnalysis `json:"star"`
}

// NewScoreReport builds a report with the final score derived from the
// sub-scores, keeping the two in lockstep.
func NewScoreReport(scores SubScores, flags ScoreFlags, m Measurements, star StarAnalysis) *ScoreReport {
	return &ScoreReport{
		SubScores:    scores,
		FinalScore:   scores.Final(),
		Flags:        flags,
		Measurements: m,
		Star:         star,
	}
}

// ZeroScoreReport is the short-circuit result for unscorable input:
// every dimension zero, final zero, InvalidInput set.
func ZeroScoreReport() *ScoreReport {
	report := NewScoreReport(SubScores{}, ScoreFlags{InvalidInput: true}, Measurements{}, StarAnalysis{})
	return report
}

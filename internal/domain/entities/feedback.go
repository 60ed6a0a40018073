package entities

// FeedbackSource marks how a feedback payload was produced
type FeedbackSource string

// Feedback sources
const (
	FeedbackSourceModel    FeedbackSource = "model"
	FeedbackSourceFallback FeedbackSource = "fallback"
)

// RewriteSuggestion proposes an improved phrasing for one sentence
type RewriteSuggestion struct {
	Original  string `json:"original"`
	Suggested string `json:"suggested"`
}

// StarFeedback is per-component coaching detail for the STAR method
type StarFeedback struct {
	Situation string `json:"situation,omitempty"`
	Task      string `json:"task,omitempty"`
	Action    string `json:"action,omitempty"`
	Result    string `json:"result,omitempty"`
}

// FeedbackPayload is the structured coaching feedback for one attempt.
// Produced exactly once per scoring request; immutable after creation;
// owned by the caller who persists it.
type FeedbackPayload struct {
	Summary       string              `json:"summary"`
	Strengths     []string            `json:"strengths"`
	Improvements  []string            `json:"improvements"`
	Tips          []string            `json:"tips"`
	Star          *StarFeedback       `json:"star,omitempty"`
	Rewrites      []RewriteSuggestion `json:"rewrites,omitempty"`
	Source        FeedbackSource      `json:"source"`
	DegradedNotes []string            `json:"degraded_notes,omitempty"`
}

// Normalize fills nil slices with empty defaults so consumers never see null
func (p *FeedbackPayload) Normalize() {
	if p.Strengths == nil {
		p.Strengths = []string{}
	}
	if p.Improvements == nil {
		p.Improvements = []string{}
	}
	if p.Tips == nil {
		p.Tips = []string{}
	}
	if p.Rewrites == nil {
		p.Rewrites = []RewriteSuggestion{}
	}
}

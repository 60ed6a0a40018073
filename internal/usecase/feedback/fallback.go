package feedback

import (
	"fmt"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// dimensionCopy is the canned coaching text for one score dimension.
type dimensionCopy struct {
	label       string
	strength    string
	improvement string
	tip         string
}

var fallbackCopy = map[entities.Dimension]dimensionCopy{
	entities.DimensionContent: {
		label:       "content",
		strength:    "Your answer covered the substance the question was looking for.",
		improvement: "Bring your answer closer to the question: name the specific problem, what you did, and what it achieved.",
		tip:         "Before answering, pick the two or three facts the interviewer must hear and build around them.",
	},
	entities.DimensionDelivery: {
		label:       "delivery",
		strength:    "Your pacing was comfortable and easy to follow.",
		improvement: "Watch your pacing and cut filler words; a steady 120-160 words per minute lands best.",
		tip:         "Pause instead of saying \"um\" or \"you know\"; a beat of silence reads as composure.",
	},
	entities.DimensionCommunication: {
		label:       "communication",
		strength:    "Your wording was clean and varied.",
		improvement: "Tighten your grammar and vary your word choice; repeated phrasing dilutes the message.",
		tip:         "Read your answer aloud once; most grammar slips are easier to hear than to see.",
	},
	entities.DimensionVoice: {
		label:       "voice",
		strength:    "Your tone had good variation and energy.",
		improvement: "Add more vocal variety; a monotone delivery undersells strong content.",
		tip:         "Emphasize the outcome of your story by slowing down and lifting your tone on the result.",
	},
	entities.DimensionConfidence: {
		label:       "confidence",
		strength:    "You projected your answer with conviction.",
		improvement: "Project more confidently: speak up, commit to your statements, and trim hedging fillers.",
		tip:         "State results as facts (\"we cut latency 40%\"), not hopes (\"I think it kind of helped\").",
	},
	entities.DimensionStructure: {
		label:       "structure",
		strength:    "Your answer followed a clear beginning, middle and end.",
		improvement: "Structure your answer with the STAR method: Situation, Task, Action, Result.",
		tip:         "Finish with the result first when in doubt; interviewers remember outcomes.",
	},
}

// Fallback builds the deterministic templated payload used whenever the model
// cannot. It derives everything from the scores and the structure analysis,
// so identical inputs always produce identical feedback.
func Fallback(scores entities.SubScores, star entities.StarAnalysis, flags entities.ScoreFlags) *entities.FeedbackPayload {
	if flags.InvalidInput {
		// All-zero scores make strongest/weakest meaningless.
		payload := &entities.FeedbackPayload{
			Summary: "This answer could not be scored because the transcript was empty. " +
				"Record the answer again, or submit the transcript text directly.",
			Improvements: []string{"Check that your microphone is picking you up and answer in full sentences."},
			Tips:         []string{"Aim for 45-90 seconds of speaking time per answer."},
			Source:       entities.FeedbackSourceFallback,
		}
		payload.DegradedNotes = degradedNotes(flags)
		payload.Normalize()
		return payload
	}

	strongest := fallbackCopy[scores.Strongest()]
	weakest := fallbackCopy[scores.Weakest()]

	payload := &entities.FeedbackPayload{
		Summary: fmt.Sprintf(
			"Your answer scored %.0f out of 100. Strongest area: %s. Biggest opportunity: %s.",
			scores.Final(), strongest.label, weakest.label),
		Strengths:    []string{strongest.strength},
		Improvements: []string{weakest.improvement},
		Tips:         []string{weakest.tip},
		Star:         starBreakdown(star),
		Source:       entities.FeedbackSourceFallback,
	}

	if flags.ShortAnswer {
		payload.Improvements = append(payload.Improvements,
			"Your answer was very short; aim for 45-90 seconds so you can cover situation, action and result.")
	}
	payload.DegradedNotes = degradedNotes(flags)
	payload.Normalize()
	return payload
}

// starBreakdown turns the detection booleans into per-component coaching.
func starBreakdown(star entities.StarAnalysis) *entities.StarFeedback {
	fb := &entities.StarFeedback{}
	if star.Situation {
		fb.Situation = "You set the scene for your story."
	} else {
		fb.Situation = "Open with the situation: where were you and what was going on?"
	}
	if star.Task {
		fb.Task = "Your responsibility in the story came through."
	} else {
		fb.Task = "State the task: what exactly were you responsible for?"
	}
	if star.Action {
		fb.Action = "You described concrete actions you took."
	} else {
		fb.Action = "Describe the actions you personally took, step by step."
	}
	if star.Result {
		fb.Result = "You closed with an outcome."
	} else {
		fb.Result = "End with the result, ideally a number: what changed because of you?"
	}
	return fb
}

// degradedNotes surfaces which signals used neutral defaults.
func degradedNotes(flags entities.ScoreFlags) []string {
	notes := make([]string, 0, 3)
	if flags.DegradedVoice {
		notes = append(notes, "Audio analysis was unavailable; voice and confidence used neutral defaults.")
	}
	if flags.DegradedSemantic {
		notes = append(notes, "Semantic comparison was unavailable; the content score used a neutral default.")
	}
	if flags.DegradedGrammar {
		notes = append(notes, "Grammar checking was unavailable; the communication score used a neutral default.")
	}
	if flags.InvalidInput {
		notes = append(notes, "The transcript was empty, so every score is zero.")
	}
	return notes
}

package feedback

import (
	"fmt"
	"strings"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// buildPrompt renders the coaching request sent to the model. The response
// shape is enforced separately through the provider's JSON schema mode; the
// prompt restates it so weaker models stay on format.
func buildPrompt(req Request) string {
	var b strings.Builder

	b.WriteString("You are an experienced interview coach. ")
	b.WriteString("Review the candidate's spoken answer below and write specific, encouraging coaching feedback.\n\n")

	if req.Question != "" {
		fmt.Fprintf(&b, "Interview question:\n%s\n\n", req.Question)
	}
	fmt.Fprintf(&b, "Candidate's answer (transcribed):\n%s\n\n", req.Transcript)
	if req.ReferenceText != "" {
		fmt.Fprintf(&b, "Reference answer for comparison:\n%s\n\n", req.ReferenceText)
	}

	b.WriteString("Automated scores (0-100):\n")
	for _, d := range entities.Dimensions() {
		fmt.Fprintf(&b, "- %s: %.1f\n", d, req.Scores.Get(d))
	}

	fmt.Fprintf(&b, "\nSTAR components detected: situation=%t task=%t action=%t result=%t\n",
		req.Star.Situation, req.Star.Task, req.Star.Action, req.Star.Result)

	if notes := degradedNotes(req.Flags); len(notes) > 0 {
		b.WriteString("\nMeasurement caveats (mention only if relevant):\n")
		for _, n := range notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
	}

	b.WriteString("\nRespond with a single JSON object, no markdown, with exactly these fields:\n")
	b.WriteString(`{"summary": "two sentences on overall impression", ` +
		`"strengths": ["..."], "improvements": ["..."], "tips": ["..."], ` +
		`"star": {"situation": "...", "task": "...", "action": "...", "result": "..."}, ` +
		`"rewrites": [{"original": "weak sentence from the answer", "suggested": "stronger version"}]}`)
	b.WriteString("\nKeep strengths, improvements and tips to at most three items each. ")
	b.WriteString("Quote the candidate's own words in rewrites. Do not invent facts.")

	return b.String()
}

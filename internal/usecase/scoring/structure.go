package scoring

import (
	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// StructureAnalyzer detects STAR components (Situation, Task, Action, Result)
// through cue phrases and measures reference keyword coverage. Detection is a
// presence test: one cue phrase from a component's lexicon is enough.
type StructureAnalyzer struct {
	situation *phraseMatcher
	task      *phraseMatcher
	action    *phraseMatcher
	result    *phraseMatcher
}

// NewStructureAnalyzer creates an analyzer from a lexicon set.
func NewStructureAnalyzer(lex *LexiconSet) *StructureAnalyzer {
	return &StructureAnalyzer{
		situation: newPhraseMatcher(lex.StarSituation),
		task:      newPhraseMatcher(lex.StarTask),
		action:    newPhraseMatcher(lex.StarAction),
		result:    newPhraseMatcher(lex.StarResult),
	}
}

// Analyze inspects the answer text against the STAR cue lexicons and the
// reference keywords. Positional hints (opening situation, closing result)
// are informational and never change the score.
func (a *StructureAnalyzer) Analyze(text string, reference entities.ReferenceAnswer) entities.StarAnalysis {
	totalTokens := len(tokenize(text))

	// First-occurrence token index per component, -1 when not detected.
	indices := [4]int{
		firstTokenIndex(a.situation, text),
		firstTokenIndex(a.task, text),
		firstTokenIndex(a.action, text),
		firstTokenIndex(a.result, text),
	}

	analysis := entities.StarAnalysis{
		Situation: indices[0] >= 0,
		Task:      indices[1] >= 0,
		Action:    indices[2] >= 0,
		Result:    indices[3] >= 0,
	}
	for _, idx := range indices {
		if idx >= 0 {
			analysis.DetectedCount++
		}
	}
	analysis.OrderBonus = orderBonus(indices, analysis.DetectedCount)

	if totalTokens > 0 {
		firstThird := float64(totalTokens) / 3.0
		lastThird := float64(totalTokens) * 2.0 / 3.0
		analysis.EarlyOpening = (indices[0] >= 0 && float64(indices[0]) < firstThird) ||
			(indices[1] >= 0 && float64(indices[1]) < firstThird)
		analysis.ClosingResult = indices[3] >= 0 && float64(indices[3]) >= lastThird
	}

	analysis.KeywordCoverage, analysis.MatchedKeywords = keywordCoverage(text, reference.Keywords)
	return analysis
}

// Score turns an analysis into the structure sub-score:
// 0.7 x STAR completeness (with order bonus) + 0.3 x keyword coverage.
func (a *StructureAnalyzer) Score(analysis entities.StarAnalysis) float64 {
	starScore := float64(analysis.DetectedCount)/4.0*100 + analysis.OrderBonus
	return clamp(0.7*starScore+0.3*(analysis.KeywordCoverage*100), 0, 100)
}

// firstTokenIndex returns the token index of the earliest cue hit, or -1.
func firstTokenIndex(m *phraseMatcher, text string) int {
	offset := m.firstOffset(text)
	if offset < 0 {
		return -1
	}
	return tokenIndexAt(text, offset)
}

// orderBonus rewards components appearing in canonical S-T-A-R order: up to
// 10 points, scaled by the fraction of adjacent detected pairs in order.
func orderBonus(indices [4]int, detected int) float64 {
	if detected < 2 {
		return 0
	}
	ordered := make([]int, 0, 4)
	for _, idx := range indices {
		if idx >= 0 {
			ordered = append(ordered, idx)
		}
	}
	inOrder := 0
	for i := 0; i < len(ordered)-1; i++ {
		if ordered[i] < ordered[i+1] {
			inOrder++
		}
	}
	return 10.0 * float64(inOrder) / float64(detected-1)
}

// keywordCoverage returns the fraction of reference keywords present in the
// text and the matched keywords themselves. No keywords means full coverage.
func keywordCoverage(text string, keywords []string) (float64, []string) {
	if len(keywords) == 0 {
		return 1.0, nil
	}
	matched := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		m := newPhraseMatcher([]string{kw})
		if m.firstOffset(text) >= 0 {
			matched = append(matched, kw)
		}
	}
	return float64(len(matched)) / float64(len(keywords)), matched
}

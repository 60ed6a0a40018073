package scoring

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// GrammarRule is one deterministic error pattern. Pattern is applied
// case-insensitively against the raw transcript text.
type GrammarRule struct {
	Name    string `json:"name"`
	Pattern string `json:"pattern"`
}

// LexiconSet holds the cue-phrase and rule data the extractors and the
// structure analyzer match against. It is versioned data, not code: the
// embedded defaults can be replaced wholesale or per list by a JSON file
// (SCORING_LEXICON_PATH). Phrases are matched case-insensitively on token
// boundaries; multi-word phrases are allowed.
type LexiconSet struct {
	Version       string        `json:"version"`
	Fillers       []string      `json:"fillers"`
	StarSituation []string      `json:"star_situation"`
	StarTask      []string      `json:"star_task"`
	StarAction    []string      `json:"star_action"`
	StarResult    []string      `json:"star_result"`
	GrammarRules  []GrammarRule `json:"grammar_rules"`
}

// DefaultLexicons returns the embedded lexicon data.
func DefaultLexicons() *LexiconSet {
	return &LexiconSet{
		Version: "builtin-1",
		Fillers: []string{
			"um", "uh", "umm", "uhh", "er", "err",
			"like", "you know", "basically", "actually", "literally",
			"honestly", "right", "okay", "so", "well",
			"i mean", "kind of", "sort of", "you see", "i guess", "anyway",
		},
		StarSituation: []string{
			"situation", "context", "background", "when", "there was",
			"faced with", "challenge was", "problem was", "at the time",
			"in my role", "project", "at work", "my team",
		},
		StarTask: []string{
			"task", "responsible for", "my role", "needed to", "had to",
			"goal was", "objective was", "assigned to", "in charge of",
			"my job was",
		},
		StarAction: []string{
			"action", "i did", "i took", "implemented", "developed",
			"created", "initiated", "led", "organized", "coordinated",
			"decided to", "identified", "shipped", "built",
		},
		StarResult: []string{
			"result", "outcome", "achieved", "increased", "decreased",
			"improved", "saved", "reduce", "reduced", "reducing",
			"generated", "led to", "resulted in", "percent",
		},
		GrammarRules: []GrammarRule{
			{Name: "subject_verb_i_is", Pattern: `\bi\s+is\b`},
			{Name: "subject_verb_he_have", Pattern: `\bhe\s+have\b`},
			{Name: "subject_verb_she_have", Pattern: `\bshe\s+have\b`},
			{Name: "subject_verb_they_was", Pattern: `\bthey\s+was\b`},
			{Name: "subject_verb_we_was", Pattern: `\bwe\s+was\b`},
			{Name: "dont_got", Pattern: `\bdon't\s+got\b`},
			{Name: "could_of", Pattern: `\bcould\s+of\b`},
			{Name: "would_of", Pattern: `\bwould\s+of\b`},
			{Name: "should_of", Pattern: `\bshould\s+of\b`},
			{Name: "double_negative", Pattern: `\b(?:don't|doesn't|didn't|can't|won't)\s+(?:\w+\s+)?(?:no|nothing|nobody|nowhere)\b`},
		},
	}
}

// LoadLexicons reads a JSON lexicon file on top of the embedded defaults.
// Lists present in the file replace the defaults; absent lists are kept.
// An empty path returns the defaults unchanged.
func LoadLexicons(path string) (*LexiconSet, error) {
	lex := DefaultLexicons()
	if path == "" {
		return lex, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read lexicon file %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, lex); err != nil {
		return nil, fmt.Errorf("failed to parse lexicon file %s: %w", path, err)
	}
	return lex, nil
}

// phraseMatcher matches a list of phrases case-insensitively on token
// boundaries. Multi-word phrases tolerate arbitrary whitespace between words.
type phraseMatcher struct {
	patterns []*regexp.Regexp
}

func newPhraseMatcher(phrases []string) *phraseMatcher {
	m := &phraseMatcher{patterns: make([]*regexp.Regexp, 0, len(phrases))}
	for _, phrase := range phrases {
		words := strings.Fields(strings.ToLower(phrase))
		if len(words) == 0 {
			continue
		}
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		expr := `(?i)\b` + strings.Join(words, `\s+`) + `\b`
		m.patterns = append(m.patterns, regexp.MustCompile(expr))
	}
	return m
}

// count returns the total number of phrase occurrences in text.
func (m *phraseMatcher) count(text string) int {
	total := 0
	for _, p := range m.patterns {
		total += len(p.FindAllStringIndex(text, -1))
	}
	return total
}

// firstOffset returns the byte offset of the earliest phrase occurrence,
// or -1 when no phrase matches.
func (m *phraseMatcher) firstOffset(text string) int {
	first := -1
	for _, p := range m.patterns {
		loc := p.FindStringIndex(text)
		if loc == nil {
			continue
		}
		if first == -1 || loc[0] < first {
			first = loc[0]
		}
	}
	return first
}

// grammarChecker applies the compiled grammar rules. A rule set that fails
// to compile leaves the checker unavailable; the caller marks the grammar
// measurement degraded instead of failing the pipeline.
type grammarChecker struct {
	rules []*regexp.Regexp
}

func newGrammarChecker(rules []GrammarRule) (*grammarChecker, error) {
	c := &grammarChecker{rules: make([]*regexp.Regexp, 0, len(rules))}
	for _, r := range rules {
		p, err := regexp.Compile(`(?i)` + r.Pattern)
		if err != nil {
			return nil, fmt.Errorf("grammar rule %s: %w", r.Name, err)
		}
		c.rules = append(c.rules, p)
	}
	return c, nil
}

// count returns the total number of rule hits in text.
func (c *grammarChecker) count(text string) int {
	total := 0
	for _, p := range c.rules {
		total += len(p.FindAllStringIndex(text, -1))
	}
	return total
}

var tokenPattern = regexp.MustCompile(`[a-zA-Z0-9']+`)

// tokenize lowercases text and splits it into word tokens.
func tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// tokenIndexAt counts the tokens that start before the given byte offset,
// which is the token index of a match beginning at that offset.
func tokenIndexAt(text string, offset int) int {
	if offset <= 0 {
		return 0
	}
	locs := tokenPattern.FindAllStringIndex(text, -1)
	idx := 0
	for _, loc := range locs {
		if loc[0] >= offset {
			break
		}
		idx++
	}
	return idx
}

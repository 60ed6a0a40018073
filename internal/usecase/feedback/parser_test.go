package feedback

import (
	"testing"
)

func TestParsePlainJSON(t *testing.T) {
	p := NewParser()
	payload, err := p.Parse(validModelJSON)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if payload.Summary == "" || len(payload.Strengths) != 1 {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestParseMarkdownFences(t *testing.T) {
	p := NewParser()
	cases := []string{
		"```json\n" + validModelJSON + "\n```",
		"```\n" + validModelJSON + "\n```",
		"  \n" + validModelJSON + "\n  ",
	}
	for _, c := range cases {
		payload, err := p.Parse(c)
		if err != nil {
			t.Fatalf("Parse(%q...) failed: %v", c[:10], err)
		}
		if payload.Summary != "Strong story with a clear outcome." {
			t.Fatalf("unexpected summary %q", payload.Summary)
		}
	}
}

func TestParseChatterAroundObject(t *testing.T) {
	p := NewParser()
	payload, err := p.Parse("Sure! Here is the feedback you asked for:\n" + validModelJSON + "\nLet me know if you need more.")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if payload.Summary == "" {
		t.Fatal("expected summary from embedded object")
	}
}

func TestParseRejectsMissingSummary(t *testing.T) {
	p := NewParser()
	if _, err := p.Parse(`{"summary":"  ","strengths":["x"]}`); err == nil {
		t.Fatal("expected error for blank summary")
	}
	if _, err := p.Parse(`{"strengths":["x"]}`); err == nil {
		t.Fatal("expected error for absent summary")
	}
}

func TestParseRejectsNonJSON(t *testing.T) {
	p := NewParser()
	if _, err := p.Parse("I am unable to help with that."); err == nil {
		t.Fatal("expected error for non-JSON content")
	}
}

func TestParseNormalizesOptionalSlices(t *testing.T) {
	p := NewParser()
	payload, err := p.Parse(`{"summary":"Fine."}`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if payload.Strengths == nil || payload.Improvements == nil || payload.Tips == nil || payload.Rewrites == nil {
		t.Fatalf("expected normalized empty slices, got %+v", payload)
	}
}

func TestParseOptionalStarAndRewrites(t *testing.T) {
	p := NewParser()
	raw := `{"summary":"Good.","strengths":[],"improvements":[],"tips":[],` +
		`"star":{"situation":"clear","task":"","action":"strong","result":"quantified"},` +
		`"rewrites":[{"original":"it kind of helped","suggested":"it cut page load by 40%"}]}`
	payload, err := p.Parse(raw)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if payload.Star == nil || payload.Star.Action != "strong" {
		t.Fatalf("star breakdown lost: %+v", payload.Star)
	}
	if len(payload.Rewrites) != 1 || payload.Rewrites[0].Suggested == "" {
		t.Fatalf("rewrites lost: %+v", payload.Rewrites)
	}
}

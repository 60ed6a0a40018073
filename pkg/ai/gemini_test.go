package ai

import (
	"context"
	"testing"

	"google.golang.org/genai"

	"github.com/interview-coach-team/interview-coach/pkg/config"
)

func TestResponseTextConcatenatesParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{
				Content: &genai.Content{
					Parts: []*genai.Part{
						{Text: `{"summary":"ok",`},
						{Text: `"strengths":[]}`},
					},
				},
			},
		},
	}
	got := responseText(resp)
	want := "{\"summary\":\"ok\",\n\"strengths\":[]}"
	if got != want {
		t.Fatalf("responseText = %q, want %q", got, want)
	}
}

func TestResponseTextSkipsEmpty(t *testing.T) {
	if got := responseText(nil); got != "" {
		t.Fatalf("nil response should yield empty text, got %q", got)
	}
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			nil,
			{Content: nil},
			{Content: &genai.Content{Parts: []*genai.Part{nil, {Text: "   "}}}},
		},
	}
	if got := responseText(resp); got != "" {
		t.Fatalf("blank parts should yield empty text, got %q", got)
	}
}

func TestFeedbackSchemaRequiredFields(t *testing.T) {
	required := map[string]bool{}
	for _, f := range feedbackSchema.Required {
		required[f] = true
	}
	for _, f := range []string{"summary", "strengths", "improvements", "tips"} {
		if !required[f] {
			t.Fatalf("schema must require %q", f)
		}
	}
	if required["star"] || required["rewrites"] {
		t.Fatal("star and rewrites must stay optional")
	}
}

func TestGeminiClientRequiresKey(t *testing.T) {
	client := NewGeminiClient(&config.Config{Gemini: config.GeminiConfig{Model: "gemini-2.0-flash"}}, nil)
	if _, err := client.GenerateFeedback(context.Background(), "   ", "prompt"); err == nil {
		t.Fatal("expected error for blank api key")
	}
	if client.Model() != "gemini-2.0-flash" {
		t.Fatalf("unexpected model %q", client.Model())
	}
}

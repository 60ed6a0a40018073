package feedback

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

const validModelJSON = `{"summary":"Strong story with a clear outcome.","strengths":["quantified result"],"improvements":["name the task explicitly"],"tips":["slow down on the result"]}`

type fakeCall struct {
	text string
	err  error
}

type fakeProvider struct {
	calls   []string
	prompts []string
	results []fakeCall
}

func (f *fakeProvider) GenerateFeedback(ctx context.Context, apiKey, prompt string) (string, error) {
	i := len(f.calls)
	f.calls = append(f.calls, apiKey)
	f.prompts = append(f.prompts, prompt)
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	r := f.results[i]
	return r.text, r.err
}

func newBridge(t *testing.T, provider Provider, keys ...string) (Service, *CredentialPool) {
	t.Helper()
	pool, err := NewCredentialPool(keys, time.Minute, time.Hour)
	if err != nil {
		t.Fatalf("NewCredentialPool failed: %v", err)
	}
	return NewFeedbackService(provider, pool, 5*time.Second, nil), pool
}

func sampleRequest() Request {
	return Request{
		Question:      "Tell me about a time you reduced latency.",
		Transcript:    "I led a project to reduce latency.",
		ReferenceText: "Leadership and measurable outcomes.",
		Scores: entities.SubScores{
			Content: 95, Delivery: 100, Communication: 88, Voice: 90, Confidence: 91, Structure: 66,
		},
		Star: entities.StarAnalysis{Situation: true, Action: true, Result: true, DetectedCount: 3},
	}
}

func TestGenerateFirstCredentialSucceeds(t *testing.T) {
	provider := &fakeProvider{results: []fakeCall{{text: validModelJSON}}}
	bridge, _ := newBridge(t, provider, "key-a", "key-b", "key-c")

	payload := bridge.Generate(context.Background(), sampleRequest())
	if payload == nil {
		t.Fatal("bridge must always return a payload")
	}
	if payload.Source != entities.FeedbackSourceModel {
		t.Fatalf("expected model source, got %s", payload.Source)
	}
	if len(provider.calls) != 1 {
		t.Fatalf("expected exactly 1 provider call, got %d", len(provider.calls))
	}
	if provider.calls[0] != "key-a" {
		t.Fatalf("expected first credential, got %q", provider.calls[0])
	}
	if payload.Summary != "Strong story with a clear outcome." {
		t.Fatalf("unexpected summary %q", payload.Summary)
	}
}

func TestGenerateAllCredentialsRetryable(t *testing.T) {
	provider := &fakeProvider{results: []fakeCall{{err: errors.New("429 too many requests")}}}
	bridge, _ := newBridge(t, provider, "key-a", "key-b", "key-c")

	payload := bridge.Generate(context.Background(), sampleRequest())
	if payload == nil {
		t.Fatal("bridge must always return a payload")
	}
	if payload.Source != entities.FeedbackSourceFallback {
		t.Fatalf("expected fallback source, got %s", payload.Source)
	}
	if len(provider.calls) != 3 {
		t.Fatalf("attempts must be bounded by pool size, got %d calls", len(provider.calls))
	}
	for i, want := range []string{"key-a", "key-b", "key-c"} {
		if provider.calls[i] != want {
			t.Fatalf("call %d used %q, want %q (rotation order)", i, provider.calls[i], want)
		}
	}
	if payload.Summary == "" {
		t.Fatal("fallback payload must carry a summary")
	}
}

func TestGenerateRotationContinuesAcrossRequests(t *testing.T) {
	provider := &fakeProvider{results: []fakeCall{{text: validModelJSON}}}
	bridge, _ := newBridge(t, provider, "key-a", "key-b", "key-c")

	bridge.Generate(context.Background(), sampleRequest())
	bridge.Generate(context.Background(), sampleRequest())

	if len(provider.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(provider.calls))
	}
	if provider.calls[1] != "key-b" {
		t.Fatalf("second request should continue the rotation with key-b, got %q", provider.calls[1])
	}
}

func TestGenerateSkipsCoolingCredential(t *testing.T) {
	provider := &fakeProvider{results: []fakeCall{{text: validModelJSON}}}
	bridge, pool := newBridge(t, provider, "key-a", "key-b")
	pool.MarkRetryable(0, false)

	payload := bridge.Generate(context.Background(), sampleRequest())
	if payload.Source != entities.FeedbackSourceModel {
		t.Fatalf("expected model source, got %s", payload.Source)
	}
	if provider.calls[0] != "key-b" {
		t.Fatalf("cooling credential must be skipped, got %q", provider.calls[0])
	}
}

func TestGenerateRetriesThenSucceeds(t *testing.T) {
	provider := &fakeProvider{results: []fakeCall{
		{err: context.DeadlineExceeded},
		{text: validModelJSON},
	}}
	bridge, _ := newBridge(t, provider, "key-a", "key-b")

	payload := bridge.Generate(context.Background(), sampleRequest())
	if payload.Source != entities.FeedbackSourceModel {
		t.Fatalf("expected model source after retry, got %s", payload.Source)
	}
	if len(provider.calls) != 2 {
		t.Fatalf("expected 2 calls, got %d", len(provider.calls))
	}
	if provider.calls[1] != "key-b" {
		t.Fatalf("retry must rotate to the next credential, got %q", provider.calls[1])
	}
}

func TestGenerateFatalErrorFallsBackImmediately(t *testing.T) {
	provider := &fakeProvider{results: []fakeCall{{err: errors.New("401 invalid api key")}}}
	bridge, _ := newBridge(t, provider, "key-a", "key-b", "key-c")

	payload := bridge.Generate(context.Background(), sampleRequest())
	if payload.Source != entities.FeedbackSourceFallback {
		t.Fatalf("expected fallback source, got %s", payload.Source)
	}
	if len(provider.calls) != 1 {
		t.Fatalf("fatal errors must not rotate, got %d calls", len(provider.calls))
	}
}

func TestGenerateSchemaViolationFallsBack(t *testing.T) {
	provider := &fakeProvider{results: []fakeCall{{text: "I cannot produce JSON today."}}}
	bridge, pool := newBridge(t, provider, "key-a", "key-b")

	payload := bridge.Generate(context.Background(), sampleRequest())
	if payload.Source != entities.FeedbackSourceFallback {
		t.Fatalf("expected fallback source, got %s", payload.Source)
	}
	if len(provider.calls) != 1 {
		t.Fatalf("schema violations are fatal, got %d calls", len(provider.calls))
	}
	// The credential itself worked; its failure streak must stay clean.
	if pool.Stats()[0].ConsecutiveFailures != 0 {
		t.Fatal("schema violation must not count against the credential")
	}
}

func TestGenerateParsesFencedJSON(t *testing.T) {
	provider := &fakeProvider{results: []fakeCall{{text: "```json\n" + validModelJSON + "\n```"}}}
	bridge, _ := newBridge(t, provider, "key-a")

	payload := bridge.Generate(context.Background(), sampleRequest())
	if payload.Source != entities.FeedbackSourceModel {
		t.Fatalf("expected fenced JSON to parse, got source %s", payload.Source)
	}
}

func TestGenerateQuotaErrorUsesQuotaCooldown(t *testing.T) {
	provider := &fakeProvider{results: []fakeCall{
		{err: errors.New("quota exceeded for this project")},
		{text: validModelJSON},
	}}
	bridge, pool := newBridge(t, provider, "key-a", "key-b")

	payload := bridge.Generate(context.Background(), sampleRequest())
	if payload.Source != entities.FeedbackSourceModel {
		t.Fatalf("expected model source, got %s", payload.Source)
	}
	stats := pool.Stats()
	if stats[0].Available {
		t.Fatal("quota-limited credential must be cooling")
	}
	if stats[0].CoolingUntil == nil || time.Until(*stats[0].CoolingUntil) < 30*time.Minute {
		t.Fatal("quota cooldown should use the long window")
	}
}

func TestGenerateCarriesDegradedNotes(t *testing.T) {
	provider := &fakeProvider{results: []fakeCall{{text: validModelJSON}}}
	bridge, _ := newBridge(t, provider, "key-a")

	req := sampleRequest()
	req.Flags.DegradedVoice = true

	payload := bridge.Generate(context.Background(), req)
	if len(payload.DegradedNotes) != 1 {
		t.Fatalf("expected one degraded note, got %v", payload.DegradedNotes)
	}
}

func TestGeneratePromptMentionsScoresAndTranscript(t *testing.T) {
	provider := &fakeProvider{results: []fakeCall{{text: validModelJSON}}}
	bridge, _ := newBridge(t, provider, "key-a")

	bridge.Generate(context.Background(), sampleRequest())
	prompt := provider.prompts[0]
	for _, want := range []string{"I led a project to reduce latency.", "content", "structure", "JSON"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q", want)
		}
	}
}

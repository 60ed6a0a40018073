package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/interview-coach-team/interview-coach/pkg/config"
)

// feedbackSchema constrains the model response to the feedback payload shape
// through the Gemini structured-output mode. The prompt restates the shape,
// the schema enforces it.
var feedbackSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary": {Type: genai.TypeString},
		"strengths": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"improvements": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"tips": {
			Type:  genai.TypeArray,
			Items: &genai.Schema{Type: genai.TypeString},
		},
		"star": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"situation": {Type: genai.TypeString},
				"task":      {Type: genai.TypeString},
				"action":    {Type: genai.TypeString},
				"result":    {Type: genai.TypeString},
			},
		},
		"rewrites": {
			Type: genai.TypeArray,
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"original":  {Type: genai.TypeString},
					"suggested": {Type: genai.TypeString},
				},
				Required: []string{"original", "suggested"},
			},
		},
	},
	Required: []string{"summary", "strengths", "improvements", "tips"},
}

// GeminiClient generates coaching feedback through the Gemini API. The
// credential is chosen per call by the feedback bridge, so one SDK client is
// kept per key and reused across requests.
type GeminiClient struct {
	model   string
	mu      sync.Mutex
	clients map[string]*genai.Client
	logger  *zap.Logger
}

// NewGeminiClient creates a Gemini feedback provider
func NewGeminiClient(cfg *config.Config, logger *zap.Logger) *GeminiClient {
	return &GeminiClient{
		model:   cfg.Gemini.Model,
		clients: make(map[string]*genai.Client),
		logger:  logger,
	}
}

// GenerateFeedback sends the prompt with the given credential and returns the
// raw model text. Structured JSON output is requested through the response
// schema; parsing stays with the caller.
func (c *GeminiClient) GenerateFeedback(ctx context.Context, apiKey, prompt string) (string, error) {
	client, err := c.clientFor(ctx, apiKey)
	if err != nil {
		return "", err
	}

	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   feedbackSchema,
	}
	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate feedback: %w", err)
	}

	output := responseText(resp)
	if output == "" {
		return "", errors.New("gemini api returned empty response")
	}
	return output, nil
}

// Model returns the configured model name.
func (c *GeminiClient) Model() string {
	return c.model
}

func (c *GeminiClient) clientFor(ctx context.Context, apiKey string) (*genai.Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if client, ok := c.clients[apiKey]; ok {
		return client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	c.clients[apiKey] = client
	return client, nil
}

// responseText concatenates the textual parts of every candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}
	return strings.TrimSpace(builder.String())
}

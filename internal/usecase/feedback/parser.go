package feedback

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
)

// Parser handles parsing and validation of model feedback responses
type Parser struct{}

// NewParser creates a new Parser instance
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes the model output into a feedback payload. The model might
// wrap the JSON in markdown code blocks or chat around it, so the outermost
// JSON object is extracted first. A payload without a summary is a schema
// violation: the bridge treats it as a fatal failure and falls back.
func (p *Parser) Parse(content string) (*entities.FeedbackPayload, error) {
	jsonString := extractJSON(content)

	var payload entities.FeedbackPayload
	if err := json.Unmarshal([]byte(jsonString), &payload); err != nil {
		return nil, fmt.Errorf("failed to parse feedback response: %w", err)
	}

	// Validate required fields
	if strings.TrimSpace(payload.Summary) == "" {
		return nil, fmt.Errorf("missing summary in feedback response")
	}

	payload.Normalize()
	return &payload, nil
}

// extractJSON unwraps markdown code fences and trims any chatter around the
// outermost JSON object.
func extractJSON(content string) string {
	content = strings.TrimSpace(content)

	// Check if wrapped in markdown code block
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	} else if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
		if idx := strings.LastIndex(content, "```"); idx != -1 {
			content = content[:idx]
		}
	}
	content = strings.TrimSpace(content)

	// Keep only the outermost object when the model chats around it.
	if !strings.HasPrefix(content, "{") {
		start := strings.Index(content, "{")
		end := strings.LastIndex(content, "}")
		if start != -1 && end > start {
			content = content[start : end+1]
		}
	}
	return strings.TrimSpace(content)
}

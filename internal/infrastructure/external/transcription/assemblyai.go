package transcription

import (
	"context"
	"fmt"
	"io"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"

	"github.com/interview-coach-team/interview-coach/internal/domain/entities"
	"github.com/interview-coach-team/interview-coach/pkg/config"
)

// Client transcribes submitted audio clips through AssemblyAI using the
// official SDK.
type Client struct {
	sdk    *aai.Client
	logger *zap.Logger
}

// NewClient creates an AssemblyAI transcription client
func NewClient(cfg *config.AssemblyAIConfig, logger *zap.Logger) *Client {
	return &Client{
		sdk:    aai.NewClient(cfg.APIKey),
		logger: logger,
	}
}

// Transcribe uploads the audio clip and waits for the finished transcript.
// Disfluencies are kept in the text so filler words survive into scoring.
func (c *Client) Transcribe(ctx context.Context, audio io.Reader) (*entities.Transcript, error) {
	uploadURL, err := c.sdk.Upload(ctx, audio)
	if err != nil {
		return nil, fmt.Errorf("failed to upload audio to AssemblyAI: %w", err)
	}

	if c.logger != nil {
		c.logger.Info("📤 Audio uploaded to AssemblyAI",
			zap.String("upload_url", uploadURL),
		)
	}

	params := &aai.TranscriptOptionalParams{
		Punctuate:    aai.Bool(true),
		Disfluencies: aai.Bool(true),
	}

	transcript, err := c.sdk.Transcripts.TranscribeFromURL(ctx, uploadURL, params)
	if err != nil {
		return nil, fmt.Errorf("transcription failed: %w", err)
	}

	if transcript.Status == aai.TranscriptStatusError {
		errorMsg := "transcription failed"
		if transcript.Error != nil {
			errorMsg = *transcript.Error
		}
		return nil, fmt.Errorf("assemblyai error: %s", errorMsg)
	}

	result := &entities.Transcript{}
	if transcript.Text != nil {
		result.Text = *transcript.Text
	}
	if transcript.AudioDuration != nil {
		result.DurationSeconds = *transcript.AudioDuration
	}

	if len(transcript.Words) > 0 {
		words := make([]entities.WordTiming, 0, len(transcript.Words))
		for _, w := range transcript.Words {
			word := entities.WordTiming{}
			if w.Text != nil {
				word.Word = *w.Text
			}
			if w.Start != nil {
				word.Start = float64(*w.Start) / 1000.0 // ms to seconds
			}
			if w.End != nil {
				word.End = float64(*w.End) / 1000.0
			}
			words = append(words, word)
		}
		result.Words = words
	}

	if c.logger != nil {
		c.logger.Info("✅ Transcription completed",
			zap.Int("word_count", len(result.Words)),
			zap.Float64("duration_seconds", result.DurationSeconds),
		)
	}

	return result, nil
}

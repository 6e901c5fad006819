package transcribe

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	geminiModelName = "gemini-2.5-flash"

	// The order language is mixed Arabic/English, so the hint names both.
	transcribePrompt = "Transcribe this voice message verbatim. The speaker " +
		"mixes Arabic and English. Reply with the transcript only, no " +
		"commentary."

	// Transcripts shorter than this carry no usable order text.
	minTranscriptRunes = 3
)

// GeminiTranscriber sends the voice recording to Gemini as an inline
// audio part and reads the transcript back.
type GeminiTranscriber struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiTranscriber(ctx context.Context, apiKey string) (*GeminiTranscriber, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModelName)
	model.SetTemperature(0)

	return &GeminiTranscriber{client: client, model: model}, nil
}

func (t *GeminiTranscriber) Transcribe(ctx context.Context, audio []byte, mimeType string) Result {
	if len(audio) == 0 {
		return FallbackResult("empty audio payload")
	}

	resp, err := t.model.GenerateContent(ctx,
		genai.Text(transcribePrompt),
		genai.Blob{MIMEType: mimeType, Data: audio},
	)
	if err != nil {
		return FallbackResult(fmt.Sprintf("gemini request failed: %v", err))
	}

	text := strings.TrimSpace(collectText(resp))
	if utf8.RuneCountInString(text) < minTranscriptRunes {
		return FallbackResult("transcript empty or too short")
	}

	return Ok(text)
}

func (t *GeminiTranscriber) Close() error {
	return t.client.Close()
}

func collectText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return b.String()
}

// Disabled is the no-API-key variant: every voice message takes the
// placeholder branch. Typed orders keep working.
type Disabled struct{}

func (Disabled) Transcribe(ctx context.Context, audio []byte, mimeType string) Result {
	return FallbackResult("transcription disabled: no API key configured")
}

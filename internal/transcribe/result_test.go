package transcribe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOk(t *testing.T) {
	res := Ok("اريد 2 ايفون 15")

	assert.False(t, res.Fallback)
	assert.Equal(t, "اريد 2 ايفون 15", res.Text)
	assert.Empty(t, res.Reason)
}

func TestFallbackResult(t *testing.T) {
	res := FallbackResult("gemini request failed")

	assert.True(t, res.Fallback)
	assert.Equal(t, VoicePlaceholder, res.Text)
	assert.Equal(t, "gemini request failed", res.Reason)
}

func TestDisabled(t *testing.T) {
	res := Disabled{}.Transcribe(context.Background(), []byte{0x4f}, "audio/ogg")

	assert.True(t, res.Fallback)
	assert.Equal(t, VoicePlaceholder, res.Text)
}

func TestGeminiTranscriber_EmptyAudio(t *testing.T) {
	// No request leaves the process for an empty payload, so a zero-value
	// transcriber is safe here.
	tr := &GeminiTranscriber{}

	res := tr.Transcribe(context.Background(), nil, "audio/ogg")

	assert.True(t, res.Fallback)
	assert.Equal(t, VoicePlaceholder, res.Text)
	assert.Equal(t, "empty audio payload", res.Reason)
}

package transcribe

import "context"

// VoicePlaceholder replaces a transcript that failed or came back too
// short to segment. It flows through the normal pipeline and renders as a
// quote with no extractable items.
const VoicePlaceholder = "طلب صوتي يحتاج إلى مزيد من التفاصيل"

// Result is the explicit two-branch outcome of a transcription attempt.
// Degraded input is a visible branch the caller can log and count, not a
// swallowed exception.
type Result struct {
	Text     string
	Fallback bool
	Reason   string
}

func Ok(text string) Result {
	return Result{Text: text}
}

func FallbackResult(reason string) Result {
	return Result{Text: VoicePlaceholder, Fallback: true, Reason: reason}
}

// Transcriber converts recorded audio into text. Implementations never
// return an error: failures surface as the fallback branch so quote
// generation stays best-effort.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) Result
}

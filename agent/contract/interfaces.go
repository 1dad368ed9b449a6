package contract

import "context"

// Transcriber converts recorded speech to text. The hosted voice runtime owns
// the real-time capture loop; this is the batch surface it calls into.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, cfg AudioConfig) (string, error)
}

// Synthesizer converts reply text to speech audio.
type Synthesizer interface {
	Synthesize(ctx context.Context, text string, cfg VoiceConfig) ([]byte, error)
}

// Archiver receives the terminal summary of a completed practice interview.
type Archiver interface {
	Record(ctx context.Context, summary InterviewSummary) error
}

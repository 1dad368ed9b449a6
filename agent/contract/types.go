package contract

import "time"

// ToolRequest is a structured tool invocation issued by the language model.
type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

// ToolResult carries the outcome of one profile operation back to the model.
// Validation failures travel in Error so the model can self-correct; they are
// not Go-level errors.
type ToolResult struct {
	Tool   string `json:"tool"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// InterviewSummary is the terminal record of a completed practice interview,
// handed to the archive once the wrap_up phase is reached.
type InterviewSummary struct {
	SessionID      string    `json:"session_id"`
	Name           string    `json:"name,omitempty"`
	TargetJob      string    `json:"target_job,omitempty"`
	Score          int       `json:"score"`
	FeedbackPoints []string  `json:"feedback_points,omitempty"`
	ElapsedMinutes float64   `json:"elapsed_minutes"`
	CompletedAt    time.Time `json:"completed_at"`
}

// AudioConfig describes the input audio handed to a Transcriber.
type AudioConfig struct {
	ContentType string `json:"content_type"`
	Language    string `json:"language,omitempty"`
}

// VoiceConfig selects the synthesis voice for a Synthesizer.
type VoiceConfig struct {
	VoiceID  string `json:"voice_id,omitempty"`
	Language string `json:"language,omitempty"`
}

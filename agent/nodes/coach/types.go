package coachnode

import (
	"errors"
	"strings"
	"time"

	contractx "github.com/harz05/onestBack/agent/contract"
	profilex "github.com/harz05/onestBack/agent/profile"
)

var (
	ErrInvalidTranscript = errors.New("transcript is empty")
	ErrInvalidSession    = errors.New("session id is empty")
	ErrNoProfile         = errors.New("profile is missing")
)

type GraphInput struct {
	SessionID  string
	Transcript string
}

type GraphOutput struct {
	Reply string
}

type GraphState struct {
	SessionID  string
	Transcript string
	Now        time.Time

	Profile      *profilex.JobSeekerProfile
	SystemPrompt string

	// WasCompleted snapshots the completion flag at load time so the archive
	// node fires exactly once, on the turn the interview finishes.
	WasCompleted bool

	Message     string
	ToolResults []contractx.ToolResult
}

// ToolExecutor applies one model-issued tool request against the profile.
type ToolExecutor func(p *profilex.JobSeekerProfile, req contractx.ToolRequest, now time.Time) contractx.ToolResult

func ValidateRequest(in GraphInput, nowFn func() time.Time) (*GraphState, error) {
	sessionID := strings.TrimSpace(in.SessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}

	transcript := strings.TrimSpace(in.Transcript)
	if transcript == "" {
		return nil, ErrInvalidTranscript
	}

	return &GraphState{
		SessionID:  sessionID,
		Transcript: transcript,
		Now:        nowFn().UTC(),
	}, nil
}

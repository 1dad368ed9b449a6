package coachnode

import (
	"fmt"
	"strings"

	contractx "github.com/harz05/onestBack/agent/contract"
	promptx "github.com/harz05/onestBack/agent/prompt"
)

// BuildContext assembles the system prompt for this turn: the coaching
// persona, the current profile summary, and the stage guidance line.
func BuildContext(in *GraphState, coachPrompt string) (*GraphState, error) {
	if in == nil || in.Profile == nil {
		return nil, fmt.Errorf("%w: graph profile is nil", ErrNoProfile)
	}
	if strings.TrimSpace(coachPrompt) == "" {
		return nil, fmt.Errorf("%w: coach prompt", contractx.ErrPromptMissing)
	}

	var b strings.Builder
	b.WriteString(coachPrompt)
	b.WriteString("\n\nUser info collected:\n")
	b.WriteString(in.Profile.Summarize(in.Now))
	if guidance := promptx.StageGuidance(in.Profile.CurrentPhase); guidance != "" {
		b.WriteString("\n\n")
		b.WriteString(guidance)
	}

	in.SystemPrompt = b.String()
	return in, nil
}

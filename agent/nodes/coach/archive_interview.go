package coachnode

import (
	"context"
	"fmt"

	contractx "github.com/harz05/onestBack/agent/contract"
)

// ArchiveInterview writes the terminal summary the first time the profile
// turns completed. A nil archiver disables archiving.
func ArchiveInterview(ctx context.Context, in *GraphState, archiver contractx.Archiver) (*GraphState, error) {
	if in == nil || in.Profile == nil {
		return nil, fmt.Errorf("%w: graph profile is nil", ErrNoProfile)
	}
	if archiver == nil || in.WasCompleted || !in.Profile.InterviewCompleted {
		return in, nil
	}

	summary := contractx.InterviewSummary{
		SessionID:      in.Profile.SessionID,
		Name:           in.Profile.Name,
		TargetJob:      in.Profile.TargetJob,
		Score:          in.Profile.InterviewScore,
		FeedbackPoints: in.Profile.FeedbackPoints,
		ElapsedMinutes: in.Profile.ElapsedMinutes(in.Now),
		CompletedAt:    in.Now,
	}
	if err := archiver.Record(ctx, summary); err != nil {
		return nil, fmt.Errorf("archive interview: %w", err)
	}

	return in, nil
}

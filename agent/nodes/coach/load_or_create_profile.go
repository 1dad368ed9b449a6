package coachnode

import (
	"context"
	"errors"
	"fmt"

	contractx "github.com/harz05/onestBack/agent/contract"
	profilex "github.com/harz05/onestBack/agent/profile"
)

func LoadOrCreateProfile(ctx context.Context, in *GraphState, store profilex.Store) (*GraphState, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	p, err := store.Load(ctx, in.SessionID)
	if err != nil {
		if !errors.Is(err, profilex.ErrProfileNotFound) {
			return nil, err
		}
		p = profilex.New(in.SessionID, in.Now)
	}

	// The timer starts on first contact; later turns are no-ops.
	p.StartTimer(in.Now)

	in.Profile = p
	in.WasCompleted = p.InterviewCompleted
	return in, nil
}

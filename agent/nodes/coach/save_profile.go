package coachnode

import (
	"context"
	"fmt"

	profilex "github.com/harz05/onestBack/agent/profile"
)

func SaveProfile(ctx context.Context, in *GraphState, store profilex.Store) (*GraphState, error) {
	if in == nil || in.Profile == nil {
		return nil, fmt.Errorf("%w: graph profile is nil", ErrNoProfile)
	}

	in.Profile.Touch(in.Now)
	if err := in.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile validation failed: %w", err)
	}
	if err := store.Save(ctx, in.Profile); err != nil {
		return nil, err
	}

	return in, nil
}

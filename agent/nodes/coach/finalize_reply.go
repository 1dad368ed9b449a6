package coachnode

import (
	"fmt"
	"strings"

	contractx "github.com/harz05/onestBack/agent/contract"
)

func FinalizeReply(in *GraphState) (GraphOutput, error) {
	if in == nil {
		return GraphOutput{}, fmt.Errorf("%w: graph state is nil", contractx.ErrValidation)
	}

	reply := strings.TrimSpace(in.Message)
	if reply == "" {
		return GraphOutput{}, fmt.Errorf("%w: coach returned empty reply", contractx.ErrValidation)
	}
	return GraphOutput{Reply: reply}, nil
}

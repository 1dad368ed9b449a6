package coachnode

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	contractx "github.com/harz05/onestBack/agent/contract"
)

// GenerateReply runs the chat model against the assembled context and applies
// any tool calls it issues, feeding results back until the model produces a
// plain reply or the tool-step budget runs out.
func GenerateReply(
	ctx context.Context,
	in *GraphState,
	chatModel einomodel.BaseChatModel,
	execute ToolExecutor,
	maxToolSteps int,
) (*GraphState, error) {
	if in == nil || in.Profile == nil {
		return nil, fmt.Errorf("%w: graph profile is nil", ErrNoProfile)
	}
	if chatModel == nil {
		return nil, fmt.Errorf("%w: chat model is required", contractx.ErrValidation)
	}
	if execute == nil {
		return nil, fmt.Errorf("%w: tool executor is required", contractx.ErrValidation)
	}
	if maxToolSteps < 0 {
		maxToolSteps = 0
	}

	msgs := []*schema.Message{
		schema.SystemMessage(in.SystemPrompt),
		schema.UserMessage(in.Transcript),
	}

	for step := 0; step < maxToolSteps; step++ {
		out, err := chatModel.Generate(ctx, msgs)
		if err != nil {
			return nil, fmt.Errorf("%w: coach generate: %v", contractx.ErrModelInvoke, err)
		}
		if out == nil {
			return nil, fmt.Errorf("%w: model returned nil message", contractx.ErrSchemaViolation)
		}

		if len(out.ToolCalls) == 0 {
			in.Message = strings.TrimSpace(out.Content)
			return in, nil
		}

		msgs = append(msgs, out)
		for _, call := range out.ToolCalls {
			req, err := toToolRequest(call)
			if err != nil {
				return nil, err
			}
			result := execute(in.Profile, req, in.Now)
			in.ToolResults = append(in.ToolResults, result)
			msgs = append(msgs, &schema.Message{
				Role:       schema.Tool,
				Content:    toolResultContent(result),
				ToolCallID: call.ID,
			})
		}
	}

	// Budget spent; the model must answer in plain text now.
	out, err := chatModel.Generate(ctx, msgs)
	if err != nil {
		return nil, fmt.Errorf("%w: coach generate: %v", contractx.ErrModelInvoke, err)
	}
	if out == nil {
		return nil, fmt.Errorf("%w: model returned nil message", contractx.ErrSchemaViolation)
	}
	if len(out.ToolCalls) > 0 {
		return nil, fmt.Errorf("%w: tool step budget of %d exceeded", contractx.ErrSchemaViolation, maxToolSteps)
	}

	in.Message = strings.TrimSpace(out.Content)
	return in, nil
}

func toToolRequest(call schema.ToolCall) (contractx.ToolRequest, error) {
	tool := strings.TrimSpace(call.Function.Name)
	if tool == "" {
		return contractx.ToolRequest{}, fmt.Errorf("%w: tool call name is empty", contractx.ErrSchemaViolation)
	}

	args := map[string]any{}
	rawArgs := strings.TrimSpace(call.Function.Arguments)
	if rawArgs != "" {
		if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
			return contractx.ToolRequest{}, fmt.Errorf("%w: invalid tool args for tool=%s: %v", contractx.ErrSchemaViolation, tool, err)
		}
	}

	return contractx.ToolRequest{Tool: tool, Args: args}, nil
}

func toolResultContent(result contractx.ToolResult) string {
	if result.Error != "" {
		return "error: " + result.Error
	}
	return result.Result
}

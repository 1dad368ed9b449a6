package contract

import "errors"

// Sentinel errors shared across the coaching pipeline. Callers wrap these
// with %w and match with errors.Is.
var (
	// ErrModelInvoke marks a failed chat model call.
	ErrModelInvoke = errors.New("chat model invocation failed")

	// ErrSchemaViolation marks model output that breaks the tool-calling
	// contract, such as undecodable arguments or a spent tool budget.
	ErrSchemaViolation = errors.New("model output violates tool contract")

	// ErrPromptMissing marks an absent or empty prompt template.
	ErrPromptMissing = errors.New("prompt template is missing")

	// ErrValidation marks a rejected profile mutation or malformed input.
	ErrValidation = errors.New("validation failed")
)

package workflow

import (
	"fmt"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/types"
)

// ErrReasonRequired indicates an unreal decision arrived without an operator
// reason and the similarity scan offered nothing to suggest.
type ErrReasonRequired struct{}

func (e *ErrReasonRequired) Error() string {
	return "marking a candidate unreal requires a non-empty reason"
}

// ErrAlreadyDecided indicates a decision on a validation that is no longer
// pending.
type ErrAlreadyDecided struct {
	State types.ValidationState
}

func (e *ErrAlreadyDecided) Error() string {
	return fmt.Sprintf("validation already decided: %s", e.State)
}

// ErrUnknownChoice indicates an operator decision outside {matching, unreal}.
type ErrUnknownChoice struct {
	Choice types.Decision
}

func (e *ErrUnknownChoice) Error() string {
	return fmt.Sprintf("unknown decision: %q", e.Choice)
}

// ErrNotFlagged indicates a flag override on a candidate that carries no
// suspicious flag.
type ErrNotFlagged struct{}

func (e *ErrNotFlagged) Error() string {
	return "candidate carries no suspicious flag to clear"
}

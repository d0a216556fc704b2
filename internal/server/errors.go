package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/mumbaikadon/RecruiterProfileManager-sub002/internal/workflow"
)

// ErrCandidateNotFound indicates the candidate does not exist.
type ErrCandidateNotFound struct {
	CandidateID uuid.UUID
}

func (e *ErrCandidateNotFound) Error() string {
	return fmt.Sprintf("candidate not found: %s", e.CandidateID)
}

// ErrValidationNotFound indicates the validation record does not exist.
type ErrValidationNotFound struct {
	ValidationID uuid.UUID
}

func (e *ErrValidationNotFound) Error() string {
	return fmt.Sprintf("validation not found: %s", e.ValidationID)
}

// ErrBadRequest indicates request parsing or validation failure.
type ErrBadRequest struct {
	Message string
}

func (e *ErrBadRequest) Error() string {
	return fmt.Sprintf("bad request: %s", e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		candidateNotFound  *ErrCandidateNotFound
		validationNotFound *ErrValidationNotFound
		badRequest         *ErrBadRequest
		reasonRequired     *workflow.ErrReasonRequired
		unknownChoice      *workflow.ErrUnknownChoice
		notFlagged         *workflow.ErrNotFlagged
		alreadyDecided     *workflow.ErrAlreadyDecided
	)
	switch {
	case errors.As(err, &candidateNotFound), errors.As(err, &validationNotFound):
		return http.StatusNotFound
	case errors.As(err, &badRequest), errors.As(err, &reasonRequired), errors.As(err, &unknownChoice):
		return http.StatusBadRequest
	case errors.As(err, &notFlagged):
		return http.StatusConflict
	case errors.As(err, &alreadyDecided):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

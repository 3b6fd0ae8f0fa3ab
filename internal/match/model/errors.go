package model

import "github.com/festy23/matchday/internal/apperr"

var (
	// ErrMatchNotFound indicates that the requested match does not exist.
	ErrMatchNotFound = apperr.New(apperr.KindNotFound, "MATCH_NOT_FOUND", "match not found")
	// ErrInvalidInterval indicates that the match does not start before it ends.
	ErrInvalidInterval = apperr.New(apperr.KindValidation, "INVALID_INTERVAL", "start must be before end")
	// ErrReferenceChanged indicates that a team or field was removed while the match was being saved.
	ErrReferenceChanged = apperr.New(apperr.KindConflict, "REFERENCE_CHANGED", "a referenced team or field no longer exists")
)

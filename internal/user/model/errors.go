package model

import "github.com/festy23/matchday/internal/apperr"

var (
	// ErrUserNotFound indicates that the requested user does not exist.
	ErrUserNotFound = apperr.New(apperr.KindNotFound, "USER_NOT_FOUND", "user not found")
	// ErrEmailTaken indicates that another user already registered the email.
	ErrEmailTaken = apperr.New(apperr.KindConflict, "EMAIL_TAKEN", "user with this email already exists")
	// ErrInvalidUserID indicates that the provided user ID is empty.
	ErrInvalidUserID = apperr.New(apperr.KindInvalid, "INVALID_REQUEST", "user id is required")
)

package model

import "github.com/festy23/matchday/internal/apperr"

var (
	// ErrInvalidCredentials is returned for an unknown email or a wrong password alike.
	ErrInvalidCredentials = apperr.New(apperr.KindUnauthenticated, "INVALID_CREDENTIALS", "invalid email or password")
	// ErrInvalidEmail indicates a malformed email address.
	ErrInvalidEmail = apperr.New(apperr.KindValidation, "INVALID_EMAIL", "email address is not valid")
	// ErrInvalidName indicates a blank display name.
	ErrInvalidName = apperr.New(apperr.KindValidation, "INVALID_NAME", "name must not be blank")
)

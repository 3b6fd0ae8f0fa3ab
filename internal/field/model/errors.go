package model

import "github.com/festy23/matchday/internal/apperr"

var (
	// ErrFieldNotFound indicates that the requested field does not exist.
	ErrFieldNotFound = apperr.New(apperr.KindNotFound, "FIELD_NOT_FOUND", "field not found")
	// ErrFieldExists indicates that another field already uses the name.
	ErrFieldExists = apperr.New(apperr.KindConflict, "FIELD_EXISTS", "field with this name already exists")
	// ErrAlreadyContact indicates that the user is already a contact of the field.
	ErrAlreadyContact = apperr.New(apperr.KindConflict, "ALREADY_CONTACT", "user is already a contact of this field")
	// ErrNotContact indicates that the user is not a contact of the field.
	ErrNotContact = apperr.New(apperr.KindNotFound, "NOT_A_CONTACT", "user is not a contact of this field")
	// ErrLastContact indicates that removing the contact would leave the field without one.
	ErrLastContact = apperr.New(apperr.KindConflict, "LAST_CONTACT", "a field must keep at least one contact")
	// ErrFacilityExists indicates that the facility tag is already present.
	ErrFacilityExists = apperr.New(apperr.KindConflict, "FACILITY_EXISTS", "facility already listed for this field")
	// ErrInvalidFacility indicates a blank facility tag.
	ErrInvalidFacility = apperr.New(apperr.KindValidation, "INVALID_FACILITY", "facility must not be blank")
	// ErrInvalidDimensions indicates a non-positive length or width.
	ErrInvalidDimensions = apperr.New(apperr.KindValidation, "INVALID_DIMENSIONS", "length and width must be greater than 0")
	// ErrInvalidName indicates a blank field name.
	ErrInvalidName = apperr.New(apperr.KindValidation, "INVALID_NAME", "field name must not be blank")
)

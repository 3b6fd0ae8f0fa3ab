package model

import (
	userModel "github.com/festy23/matchday/internal/user/model"
)

// CreateFieldRequest is the body of POST /fields.
type CreateFieldRequest struct {
	Name        string   `json:"name" binding:"required,max=255"`
	Address     string   `json:"address" binding:"required,max=255"`
	PostalCode  string   `json:"postal_code" binding:"required,max=16"`
	Length      float64  `json:"length"`
	Width       float64  `json:"width"`
	Description string   `json:"description"`
	Facilities  []string `json:"facilities"`
}

// UpdateFieldRequest is the body of PUT /fields/:id. Absent fields are left unchanged.
type UpdateFieldRequest struct {
	Name        *string  `json:"name" binding:"omitempty,max=255"`
	Address     *string  `json:"address" binding:"omitempty,max=255"`
	PostalCode  *string  `json:"postal_code" binding:"omitempty,max=16"`
	Length      *float64 `json:"length"`
	Width       *float64 `json:"width"`
	Description *string  `json:"description"`
}

// AddContactRequest is the body of POST /fields/:id/contacts.
type AddContactRequest struct {
	Contact string `json:"contact" binding:"required"`
}

// FacilityRequest is the body of POST and DELETE /fields/:id/facilities.
type FacilityRequest struct {
	Facility string `json:"facility" binding:"required"`
}

// FieldResponse is a field with its contacts resolved to users.
type FieldResponse struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	Address     string                   `json:"address"`
	PostalCode  string                   `json:"postal_code"`
	Length      float64                  `json:"length"`
	Width       float64                  `json:"width"`
	Description string                   `json:"description"`
	Contacts    []userModel.UserResponse `json:"contacts"`
	Facilities  []string                 `json:"facilities"`
}

// NewFieldResponse projects a loaded field for API output.
func NewFieldResponse(f *Field) *FieldResponse {
	if f == nil {
		return nil
	}
	contacts := make([]userModel.UserResponse, 0, len(f.Contacts))
	for _, c := range f.Contacts {
		if c.User == nil {
			contacts = append(contacts, userModel.UserResponse{ID: c.UserID})
			continue
		}
		contacts = append(contacts, *userModel.NewUserResponse(c.User))
	}
	return &FieldResponse{
		ID:          f.ID,
		Name:        f.Name,
		Address:     f.Address,
		PostalCode:  f.PostalCode,
		Length:      f.Length,
		Width:       f.Width,
		Description: f.Description,
		Contacts:    contacts,
		Facilities:  f.FacilityNames(),
	}
}

// NewFieldResponses projects a list of fields, never returning nil.
func NewFieldResponses(fields []Field) []FieldResponse {
	out := make([]FieldResponse, 0, len(fields))
	for i := range fields {
		out = append(out, *NewFieldResponse(&fields[i]))
	}
	return out
}

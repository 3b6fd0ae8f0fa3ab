package model

// UserResponse is the public projection of a user. Credentials are never part of it.
type UserResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// NewUserResponse projects u for API output. A nil user yields nil.
func NewUserResponse(u *User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:    u.ID,
		Email: u.Email,
		Name:  u.Name,
	}
}

// NewUserResponses projects a list of users, never returning nil.
func NewUserResponses(users []User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *NewUserResponse(&users[i]))
	}
	return out
}

package model

import (
	userModel "github.com/festy23/matchday/internal/user/model"
)

// CreateTeamRequest is the body of POST /teams.
type CreateTeamRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	City        string `json:"city" binding:"required,max=255"`
	Gender      Gender `json:"gender" binding:"required,oneof=men women mixed"`
	Description string `json:"description"`
}

// UpdateTeamRequest is the body of PUT /teams/:id. Absent fields are left unchanged.
type UpdateTeamRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	City        *string `json:"city" binding:"omitempty,max=255"`
	Gender      *Gender `json:"gender" binding:"omitempty,oneof=men women mixed"`
	Description *string `json:"description"`
}

// AddPlayerRequest is the body of POST /teams/:id/players and /teams/:id/spareplayers.
type AddPlayerRequest struct {
	Player string `json:"player" binding:"required"`
}

// TeamResponse is a team with coach and members resolved to users.
type TeamResponse struct {
	ID           string                   `json:"id"`
	Name         string                   `json:"name"`
	City         string                   `json:"city"`
	Gender       Gender                   `json:"gender"`
	Description  string                   `json:"description"`
	Coach        *userModel.UserResponse  `json:"coach"`
	Players      []userModel.UserResponse `json:"players"`
	SparePlayers []userModel.UserResponse `json:"spareplayers"`
}

// NewTeamResponse projects a loaded team for API output.
func NewTeamResponse(t *Team) *TeamResponse {
	if t == nil {
		return nil
	}
	return &TeamResponse{
		ID:           t.ID,
		Name:         t.Name,
		City:         t.City,
		Gender:       t.Gender,
		Description:  t.Description,
		Coach:        userModel.NewUserResponse(t.Coach),
		Players:      memberUsers(t.MembersWithRole(RolePlayer)),
		SparePlayers: memberUsers(t.MembersWithRole(RoleSpare)),
	}
}

// NewTeamResponses projects a list of teams, never returning nil.
func NewTeamResponses(teams []Team) []TeamResponse {
	out := make([]TeamResponse, 0, len(teams))
	for i := range teams {
		out = append(out, *NewTeamResponse(&teams[i]))
	}
	return out
}

func memberUsers(members []Member) []userModel.UserResponse {
	out := make([]userModel.UserResponse, 0, len(members))
	for _, m := range members {
		if m.User == nil {
			out = append(out, userModel.UserResponse{ID: m.UserID})
			continue
		}
		out = append(out, *userModel.NewUserResponse(m.User))
	}
	return out
}

package model

import (
	"time"

	fieldModel "github.com/festy23/matchday/internal/field/model"
	teamModel "github.com/festy23/matchday/internal/team/model"
	userModel "github.com/festy23/matchday/internal/user/model"
)

// CreateMatchRequest is the body of POST /matches. The home team is the caller's own team.
type CreateMatchRequest struct {
	AwayTeam string    `json:"away_team" binding:"required"`
	Field    string    `json:"field" binding:"required"`
	Start    time.Time `json:"start" binding:"required"`
	End      time.Time `json:"end" binding:"required"`
}

// UpdateMatchRequest is the body of PUT /matches/:id. Absent fields are left unchanged.
type UpdateMatchRequest struct {
	AwayTeam *string    `json:"away_team"`
	Field    *string    `json:"field"`
	Start    *time.Time `json:"start"`
	End      *time.Time `json:"end"`
}

// MatchResponse is a match with every reference resolved.
type MatchResponse struct {
	ID        string                    `json:"id"`
	Organizer *userModel.UserResponse   `json:"organizer"`
	HomeTeam  *teamModel.TeamResponse   `json:"home_team"`
	AwayTeam  *teamModel.TeamResponse   `json:"away_team"`
	Field     *fieldModel.FieldResponse `json:"field"`
	Start     time.Time                 `json:"start"`
	End       time.Time                 `json:"end"`
}

// NewMatchResponse projects a loaded match for API output.
func NewMatchResponse(m *Match) *MatchResponse {
	if m == nil {
		return nil
	}
	return &MatchResponse{
		ID:        m.ID,
		Organizer: userModel.NewUserResponse(m.Organizer),
		HomeTeam:  teamModel.NewTeamResponse(m.HomeTeam),
		AwayTeam:  teamModel.NewTeamResponse(m.AwayTeam),
		Field:     fieldModel.NewFieldResponse(m.Field),
		Start:     m.Start.UTC(),
		End:       m.End.UTC(),
	}
}

// NewMatchResponses projects a list of matches, never returning nil.
func NewMatchResponses(matches []Match) []MatchResponse {
	out := make([]MatchResponse, 0, len(matches))
	for i := range matches {
		out = append(out, *NewMatchResponse(&matches[i]))
	}
	return out
}

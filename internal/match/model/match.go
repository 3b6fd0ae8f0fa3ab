// Package model provides domain models and DTOs for the match module.
package model

import (
	"time"

	fieldModel "github.com/festy23/matchday/internal/field/model"
	teamModel "github.com/festy23/matchday/internal/team/model"
	userModel "github.com/festy23/matchday/internal/user/model"
)

// Match is a scheduled game between two teams on a field.
// Matches the matches table schema.
type Match struct {
	ID          string            `gorm:"primaryKey;column:id;type:varchar(36)"`
	OrganizerID string            `gorm:"column:organizer_id;type:varchar(36);not null"`
	Organizer   *userModel.User   `gorm:"foreignKey:OrganizerID"`
	HomeTeamID  string            `gorm:"column:home_team_id;type:varchar(36);not null;index"`
	HomeTeam    *teamModel.Team   `gorm:"foreignKey:HomeTeamID;constraint:OnDelete:CASCADE"`
	AwayTeamID  string            `gorm:"column:away_team_id;type:varchar(36);not null;index"`
	AwayTeam    *teamModel.Team   `gorm:"foreignKey:AwayTeamID;constraint:OnDelete:CASCADE"`
	FieldID     string            `gorm:"column:field_id;type:varchar(36);not null;index"`
	Field       *fieldModel.Field `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE"`
	Start       time.Time         `gorm:"column:start_at;not null;index"`
	End         time.Time         `gorm:"column:end_at;not null"`
	CreatedAt   time.Time         `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt   time.Time         `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (Match) TableName() string {
	return "matches"
}

// Owners returns the home team's coach, the only user who may change the match.
// HomeTeam must be loaded.
func (m *Match) Owners() []string {
	if m.HomeTeam == nil {
		return nil
	}
	return []string{m.HomeTeam.CoachID}
}

// ValidInterval reports whether start is strictly before end.
func ValidInterval(start, end time.Time) bool {
	return start.Before(end)
}

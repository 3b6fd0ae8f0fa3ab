// Package model provides domain models and DTOs for the team module.
package model

import (
	"time"

	userModel "github.com/festy23/matchday/internal/user/model"
)

// Gender is the category a team competes in.
type Gender string

// Team gender categories.
const (
	GenderMen   Gender = "men"
	GenderWomen Gender = "women"
	GenderMixed Gender = "mixed"
)

// Role distinguishes the two membership lists of a team.
type Role string

// Membership roles.
const (
	RolePlayer Role = "player"
	RoleSpare  Role = "spare"
)

// Team represents a club team and its coach.
// Matches the teams table schema.
type Team struct {
	ID          string          `gorm:"primaryKey;column:id;type:varchar(36)"`
	Name        string          `gorm:"column:name;type:varchar(255);not null;uniqueIndex:idx_teams_name"`
	City        string          `gorm:"column:city;type:varchar(255);not null"`
	Gender      Gender          `gorm:"column:gender;type:varchar(16);not null"`
	Description string          `gorm:"column:description;type:text;not null"`
	CoachID     string          `gorm:"column:coach_id;type:varchar(36);not null;uniqueIndex:idx_teams_coach_id"`
	Coach       *userModel.User `gorm:"foreignKey:CoachID"`
	Members     []Member        `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// Member is one row of a team's player or spare player list.
// The composite key makes a duplicate membership impossible at the storage level.
type Member struct {
	TeamID    string          `gorm:"primaryKey;column:team_id;type:varchar(36)"`
	UserID    string          `gorm:"primaryKey;column:user_id;type:varchar(36)"`
	Role      Role            `gorm:"primaryKey;column:role;type:varchar(16)"`
	User      *userModel.User `gorm:"foreignKey:UserID"`
	CreatedAt time.Time       `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for GORM.
func (Member) TableName() string {
	return "team_members"
}

// Owners returns the identities allowed to mutate the team: its coach.
func (t *Team) Owners() []string {
	return []string{t.CoachID}
}

// MembersWithRole returns the loaded members holding role, in stored order.
func (t *Team) MembersWithRole(role Role) []Member {
	out := make([]Member, 0, len(t.Members))
	for _, m := range t.Members {
		if m.Role == role {
			out = append(out, m)
		}
	}
	return out
}

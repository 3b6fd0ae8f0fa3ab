package model

import "github.com/festy23/matchday/internal/apperr"

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = apperr.New(apperr.KindNotFound, "TEAM_NOT_FOUND", "team not found")
	// ErrTeamExists indicates that another team already uses the name.
	ErrTeamExists = apperr.New(apperr.KindConflict, "TEAM_EXISTS", "team with this name already exists")
	// ErrAlreadyCoach indicates that the user already coaches a team.
	ErrAlreadyCoach = apperr.New(apperr.KindConflict, "ALREADY_COACH", "user already coaches a team")
	// ErrCoachNotMember indicates an attempt to list the coach as a member of their own team.
	ErrCoachNotMember = apperr.New(apperr.KindConflict, "COACH_NOT_MEMBER", "the coach cannot be a member of their own team")
	// ErrAlreadyPlayer indicates that the user is already in the players list.
	ErrAlreadyPlayer = apperr.New(apperr.KindConflict, "ALREADY_PLAYER", "user is already a player of this team")
	// ErrAlreadySpare indicates that the user is already in the spare players list.
	ErrAlreadySpare = apperr.New(apperr.KindConflict, "ALREADY_SPARE_PLAYER", "user is already a spare player of this team")
	// ErrNotMember indicates that the user is not in the requested list.
	ErrNotMember = apperr.New(apperr.KindNotFound, "NOT_A_MEMBER", "user is not in this list")
	// ErrNoCoachedTeam indicates that the user coaches no team.
	ErrNoCoachedTeam = apperr.New(apperr.KindNotFound, "TEAM_NOT_FOUND", "user does not coach a team")
	// ErrInvalidName indicates a blank team name.
	ErrInvalidName = apperr.New(apperr.KindValidation, "INVALID_NAME", "team name must not be blank")
)

// ErrDuplicateMember returns the conflict error for role.
func ErrDuplicateMember(role Role) error {
	if role == RoleSpare {
		return ErrAlreadySpare
	}
	return ErrAlreadyPlayer
}

// Package service provides business logic layer for team module.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/apperr"
	"github.com/festy23/matchday/internal/authz"
	teamModel "github.com/festy23/matchday/internal/team/model"
	"github.com/festy23/matchday/internal/team/repository"
	userRepository "github.com/festy23/matchday/internal/user/repository"
)

// Service defines the interface for team business logic operations.
// Every mutation takes the acting user's id and is allowed for the coach only.
type Service interface {
	CreateTeam(ctx context.Context, actorID string, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)
	GetTeam(ctx context.Context, id string) (*teamModel.TeamResponse, error)
	ListTeams(ctx context.Context) ([]teamModel.TeamResponse, error)
	UpdateTeam(ctx context.Context, actorID, id string, req *teamModel.UpdateTeamRequest) (*teamModel.TeamResponse, error)
	DeleteTeam(ctx context.Context, actorID, id string) error

	// AddMember adds candidateID to the players (RolePlayer) or spare players (RoleSpare).
	AddMember(ctx context.Context, actorID, teamID string, role teamModel.Role, candidateID string) (*teamModel.TeamResponse, error)

	// RemoveMember removes userID from the list selected by role.
	RemoveMember(ctx context.Context, actorID, teamID string, role teamModel.Role, userID string) (*teamModel.TeamResponse, error)
}

type service struct {
	repo   repository.Repository
	users  userRepository.Repository
	policy authz.Policy[*teamModel.Team]
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(repo repository.Repository, users userRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		users:  users,
		policy: authz.NewPolicy(repo.GetByID, (*teamModel.Team).Owners),
		logger: logger,
	}
}

func (s *service) authorize(ctx context.Context, actorID, teamID string) (*teamModel.Team, error) {
	team, err := s.policy.Authorize(ctx, actorID, teamID)
	if errors.Is(err, apperr.ErrForbidden) {
		s.logger.Debugw("team mutation denied", "actor_id", actorID, "team_id", teamID)
	}
	return team, err
}

func (s *service) CreateTeam(ctx context.Context, actorID string, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error) {
	if actorID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, teamModel.ErrInvalidName
	}

	_, err := s.repo.GetByCoach(ctx, actorID)
	switch {
	case err == nil:
		return nil, teamModel.ErrAlreadyCoach
	case !errors.Is(err, teamModel.ErrTeamNotFound):
		return nil, err
	}

	team := &teamModel.Team{
		ID:          uuid.NewString(),
		Name:        name,
		City:        strings.TrimSpace(req.City),
		Gender:      req.Gender,
		Description: req.Description,
		CoachID:     actorID,
	}
	if err := s.repo.Create(ctx, team); err != nil {
		return nil, err
	}

	s.logger.Infow("team created", "team_id", team.ID, "coach_id", actorID)
	return s.GetTeam(ctx, team.ID)
}

func (s *service) GetTeam(ctx context.Context, id string) (*teamModel.TeamResponse, error) {
	team, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return teamModel.NewTeamResponse(team), nil
}

func (s *service) ListTeams(ctx context.Context) ([]teamModel.TeamResponse, error) {
	teams, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return teamModel.NewTeamResponses(teams), nil
}

func (s *service) UpdateTeam(ctx context.Context, actorID, id string, req *teamModel.UpdateTeamRequest) (*teamModel.TeamResponse, error) {
	team, err := s.authorize(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, teamModel.ErrInvalidName
		}
		updates["name"] = name
	}
	if req.City != nil {
		updates["city"] = strings.TrimSpace(*req.City)
	}
	if req.Gender != nil {
		updates["gender"] = *req.Gender
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, team.ID, updates); err != nil {
			return nil, err
		}
	}
	return s.GetTeam(ctx, team.ID)
}

func (s *service) DeleteTeam(ctx context.Context, actorID, id string) error {
	team, err := s.authorize(ctx, actorID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, team.ID); err != nil {
		return err
	}
	s.logger.Infow("team deleted", "team_id", team.ID)
	return nil
}

func (s *service) AddMember(ctx context.Context, actorID, teamID string, role teamModel.Role, candidateID string) (*teamModel.TeamResponse, error) {
	team, err := s.authorize(ctx, actorID, teamID)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, candidateID); err != nil {
		return nil, err
	}
	if candidateID == team.CoachID {
		return nil, teamModel.ErrCoachNotMember
	}

	if err := s.repo.AddMember(ctx, team.ID, candidateID, role); err != nil {
		return nil, err
	}

	s.logger.Infow("team member added", "team_id", team.ID, "user_id", candidateID, "role", role)
	return s.GetTeam(ctx, team.ID)
}

func (s *service) RemoveMember(ctx context.Context, actorID, teamID string, role teamModel.Role, userID string) (*teamModel.TeamResponse, error) {
	team, err := s.authorize(ctx, actorID, teamID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.RemoveMember(ctx, team.ID, userID, role); err != nil {
		return nil, err
	}
	return s.GetTeam(ctx, team.ID)
}

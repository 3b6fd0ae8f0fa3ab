// Package service provides business logic layer for match module.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/festy23/matchday/internal/apperr"
	"github.com/festy23/matchday/internal/authz"
	fieldRepository "github.com/festy23/matchday/internal/field/repository"
	matchModel "github.com/festy23/matchday/internal/match/model"
	"github.com/festy23/matchday/internal/match/repository"
	teamModel "github.com/festy23/matchday/internal/team/model"
	teamRepository "github.com/festy23/matchday/internal/team/repository"
)

// Service defines the interface for match business logic operations.
// A match is organized by a coach for their own team and changed only by the home coach.
type Service interface {
	CreateMatch(ctx context.Context, actorID string, req *matchModel.CreateMatchRequest) (*matchModel.MatchResponse, error)
	GetMatch(ctx context.Context, id string) (*matchModel.MatchResponse, error)
	ListMatches(ctx context.Context) ([]matchModel.MatchResponse, error)
	UpdateMatch(ctx context.Context, actorID, id string, req *matchModel.UpdateMatchRequest) (*matchModel.MatchResponse, error)
	DeleteMatch(ctx context.Context, actorID, id string) error
}

type service struct {
	repo   repository.Repository
	teams  teamRepository.Repository
	fields fieldRepository.Repository
	policy authz.Policy[*matchModel.Match]
	logger *zap.SugaredLogger
}

// New creates a new match service instance.
func New(repo repository.Repository, teams teamRepository.Repository, fields fieldRepository.Repository, logger *zap.SugaredLogger) Service {
	return &service{
		repo:   repo,
		teams:  teams,
		fields: fields,
		policy: authz.NewPolicy(repo.GetByID, (*matchModel.Match).Owners),
		logger: logger,
	}
}

func (s *service) authorize(ctx context.Context, actorID, matchID string) (*matchModel.Match, error) {
	match, err := s.policy.Authorize(ctx, actorID, matchID)
	if errors.Is(err, apperr.ErrForbidden) {
		s.logger.Debugw("match mutation denied", "actor_id", actorID, "match_id", matchID)
	}
	return match, err
}

// checkReferences verifies that the away team and field exist.
func (s *service) checkReferences(ctx context.Context, awayTeamID, fieldID string) error {
	if _, err := s.teams.GetByID(ctx, awayTeamID); err != nil {
		return err
	}
	if _, err := s.fields.GetByID(ctx, fieldID); err != nil {
		return err
	}
	return nil
}

func (s *service) CreateMatch(ctx context.Context, actorID string, req *matchModel.CreateMatchRequest) (*matchModel.MatchResponse, error) {
	if actorID == "" {
		return nil, apperr.ErrUnauthenticated
	}
	if !matchModel.ValidInterval(req.Start, req.End) {
		return nil, matchModel.ErrInvalidInterval
	}

	home, err := s.teams.GetByCoach(ctx, actorID)
	if err != nil {
		if errors.Is(err, teamModel.ErrTeamNotFound) {
			return nil, teamModel.ErrNoCoachedTeam
		}
		return nil, err
	}
	if err := s.checkReferences(ctx, req.AwayTeam, req.Field); err != nil {
		return nil, err
	}

	match := &matchModel.Match{
		ID:          uuid.NewString(),
		OrganizerID: actorID,
		HomeTeamID:  home.ID,
		AwayTeamID:  req.AwayTeam,
		FieldID:     req.Field,
		Start:       req.Start.UTC(),
		End:         req.End.UTC(),
	}
	if err := s.repo.Create(ctx, match); err != nil {
		return nil, err
	}

	s.logger.Infow("match created", "match_id", match.ID, "home_team_id", home.ID, "away_team_id", req.AwayTeam)
	return s.GetMatch(ctx, match.ID)
}

func (s *service) GetMatch(ctx context.Context, id string) (*matchModel.MatchResponse, error) {
	match, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return matchModel.NewMatchResponse(match), nil
}

func (s *service) ListMatches(ctx context.Context) ([]matchModel.MatchResponse, error) {
	matches, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return matchModel.NewMatchResponses(matches), nil
}

func (s *service) UpdateMatch(ctx context.Context, actorID, id string, req *matchModel.UpdateMatchRequest) (*matchModel.MatchResponse, error) {
	match, err := s.authorize(ctx, actorID, id)
	if err != nil {
		return nil, err
	}

	start, end := match.Start, match.End
	if req.Start != nil {
		start = req.Start.UTC()
	}
	if req.End != nil {
		end = req.End.UTC()
	}
	if !matchModel.ValidInterval(start, end) {
		return nil, matchModel.ErrInvalidInterval
	}

	awayTeamID, fieldID := match.AwayTeamID, match.FieldID
	if req.AwayTeam != nil {
		awayTeamID = *req.AwayTeam
	}
	if req.Field != nil {
		fieldID = *req.Field
	}
	if req.AwayTeam != nil || req.Field != nil {
		if err := s.checkReferences(ctx, awayTeamID, fieldID); err != nil {
			return nil, err
		}
	}

	updates := map[string]interface{}{}
	if req.Start != nil {
		updates["start_at"] = start
	}
	if req.End != nil {
		updates["end_at"] = end
	}
	if req.AwayTeam != nil {
		updates["away_team_id"] = awayTeamID
	}
	if req.Field != nil {
		updates["field_id"] = fieldID
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, match.ID, updates); err != nil {
			return nil, err
		}
	}
	return s.GetMatch(ctx, match.ID)
}

func (s *service) DeleteMatch(ctx context.Context, actorID, id string) error {
	match, err := s.authorize(ctx, actorID, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, match.ID); err != nil {
		return err
	}
	s.logger.Infow("match deleted", "match_id", match.ID)
	return nil
}

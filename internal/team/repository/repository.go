// Package repository provides data access layer for team module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/matchday/internal/database/database"
	teamModel "github.com/festy23/matchday/internal/team/model"
	userModel "github.com/festy23/matchday/internal/user/model"
)

// Repository defines the interface for team data access operations.
type Repository interface {
	// Create inserts a team without members.
	Create(ctx context.Context, team *teamModel.Team) error

	// GetByID loads a team with coach and members resolved.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// GetByCoach loads the team coached by coachID.
	GetByCoach(ctx context.Context, coachID string) (*teamModel.Team, error)

	// List returns all teams ordered by name.
	List(ctx context.Context) ([]teamModel.Team, error)

	// Update applies column updates to one team.
	Update(ctx context.Context, id string, updates map[string]interface{}) error

	// Delete removes a team, its memberships and the matches it plays in.
	Delete(ctx context.Context, id string) error

	// AddMember inserts a membership unless the same (team, user, role) row exists.
	AddMember(ctx context.Context, teamID, userID string, role teamModel.Role) error

	// RemoveMember deletes one membership row.
	RemoveMember(ctx context.Context, teamID, userID string, role teamModel.Role) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

// withMembers preloads the coach and both member lists in insertion order.
func withMembers(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Coach").
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("team_members.created_at ASC, team_members.user_id ASC")
		}).
		Preload("Members.User")
}

func (r *repository) Create(ctx context.Context, team *teamModel.Team) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(team).Error
	if err == nil {
		return nil
	}
	if database.IsDuplicateKey(err) {
		return r.duplicateCause(ctx, team.CoachID)
	}
	if database.IsForeignKeyViolation(err) {
		return userModel.ErrUserNotFound
	}
	r.logger.Errorw("Create database error", "team_name", team.Name, "error", err)
	return err
}

// duplicateCause tells the two unique indexes on teams apart.
func (r *repository) duplicateCause(ctx context.Context, coachID string) error {
	var count int64
	err := r.db.WithContext(ctx).Model(&teamModel.Team{}).Where("coach_id = ?", coachID).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return teamModel.ErrAlreadyCoach
	}
	return teamModel.ErrTeamExists
}

func (r *repository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *repository) GetByCoach(ctx context.Context, coachID string) (*teamModel.Team, error) {
	return r.first(ctx, "coach_id = ?", coachID)
}

func (r *repository) first(ctx context.Context, query string, arg string) (*teamModel.Team, error) {
	var team teamModel.Team
	err := withMembers(r.db.WithContext(ctx)).Where(query, arg).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		r.logger.Errorw("team lookup failed", "query", query, "error", err)
		return nil, err
	}
	return &team, nil
}

func (r *repository) List(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := withMembers(r.db.WithContext(ctx)).Order("name ASC").Find(&teams).Error
	if err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, err
	}
	return teams, nil
}

func (r *repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&teamModel.Team{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if database.IsDuplicateKey(result.Error) {
			return teamModel.ErrTeamExists
		}
		r.logger.Errorw("Update database error", "team_id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrTeamNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM matches WHERE home_team_id = ? OR away_team_id = ?", id, id).Error; err != nil {
			return err
		}
		if err := tx.Where("team_id = ?", id).Delete(&teamModel.Member{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&teamModel.Team{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return teamModel.ErrTeamNotFound
		}
		return nil
	})
}

func (r *repository) AddMember(ctx context.Context, teamID, userID string, role teamModel.Role) error {
	member := &teamModel.Member{TeamID: teamID, UserID: userID, Role: role}
	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(member)
	if result.Error != nil {
		if database.IsForeignKeyViolation(result.Error) {
			return userModel.ErrUserNotFound
		}
		r.logger.Errorw("AddMember database error", "team_id", teamID, "user_id", userID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrDuplicateMember(role)
	}
	return nil
}

func (r *repository) RemoveMember(ctx context.Context, teamID, userID string, role teamModel.Role) error {
	result := r.db.WithContext(ctx).
		Where("team_id = ? AND user_id = ? AND role = ?", teamID, userID, role).
		Delete(&teamModel.Member{})
	if result.Error != nil {
		r.logger.Errorw("RemoveMember database error", "team_id", teamID, "user_id", userID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return teamModel.ErrNotMember
	}
	return nil
}

// Package repository provides data access layer for match module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/matchday/internal/database/database"
	matchModel "github.com/festy23/matchday/internal/match/model"
)

// Repository defines the interface for match data access operations.
type Repository interface {
	// Create inserts a match. Referenced users, teams and field must exist.
	Create(ctx context.Context, match *matchModel.Match) error

	// GetByID loads a match with organizer, both teams and the field resolved.
	GetByID(ctx context.Context, id string) (*matchModel.Match, error)

	// List returns all matches ordered by start time.
	List(ctx context.Context) ([]matchModel.Match, error)

	// Update applies column updates to one match.
	Update(ctx context.Context, id string, updates map[string]interface{}) error

	// Delete removes a match.
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new match repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func membersOrder(db *gorm.DB) *gorm.DB {
	return db.Order("team_members.created_at ASC, team_members.user_id ASC")
}

func contactsOrder(db *gorm.DB) *gorm.DB {
	return db.Order("field_contacts.created_at ASC, field_contacts.user_id ASC")
}

func facilitiesOrder(db *gorm.DB) *gorm.DB {
	return db.Order("field_facilities.created_at ASC, field_facilities.name ASC")
}

// withReferences resolves everything a match projection shows.
func withReferences(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Organizer").
		Preload("HomeTeam.Coach").
		Preload("HomeTeam.Members", membersOrder).
		Preload("HomeTeam.Members.User").
		Preload("AwayTeam.Coach").
		Preload("AwayTeam.Members", membersOrder).
		Preload("AwayTeam.Members.User").
		Preload("Field.Contacts", contactsOrder).
		Preload("Field.Contacts.User").
		Preload("Field.Facilities", facilitiesOrder)
}

func (r *repository) Create(ctx context.Context, match *matchModel.Match) error {
	err := r.db.WithContext(ctx).Omit(clause.Associations).Create(match).Error
	if err == nil {
		return nil
	}
	if database.IsForeignKeyViolation(err) {
		return matchModel.ErrReferenceChanged
	}
	r.logger.Errorw("Create database error", "match_id", match.ID, "error", err)
	return err
}

func (r *repository) GetByID(ctx context.Context, id string) (*matchModel.Match, error) {
	var match matchModel.Match
	err := withReferences(r.db.WithContext(ctx)).Where("id = ?", id).First(&match).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, matchModel.ErrMatchNotFound
		}
		r.logger.Errorw("GetByID database error", "match_id", id, "error", err)
		return nil, err
	}
	return &match, nil
}

func (r *repository) List(ctx context.Context) ([]matchModel.Match, error) {
	var matches []matchModel.Match
	err := withReferences(r.db.WithContext(ctx)).Order("start_at ASC, id ASC").Find(&matches).Error
	if err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, err
	}
	return matches, nil
}

func (r *repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&matchModel.Match{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if database.IsForeignKeyViolation(result.Error) {
			return matchModel.ErrReferenceChanged
		}
		r.logger.Errorw("Update database error", "match_id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return matchModel.ErrMatchNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&matchModel.Match{})
	if result.Error != nil {
		r.logger.Errorw("Delete database error", "match_id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return matchModel.ErrMatchNotFound
	}
	return nil
}

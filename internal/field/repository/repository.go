// Package repository provides data access layer for field module.
package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/festy23/matchday/internal/apperr"
	"github.com/festy23/matchday/internal/database/database"
	fieldModel "github.com/festy23/matchday/internal/field/model"
	userModel "github.com/festy23/matchday/internal/user/model"
)

// Repository defines the interface for field data access operations.
type Repository interface {
	// Create inserts a field with creatorID as its first contact and the given facilities.
	Create(ctx context.Context, field *fieldModel.Field, creatorID string, facilities []string) error

	// GetByID loads a field with contacts and facilities.
	GetByID(ctx context.Context, id string) (*fieldModel.Field, error)

	// List returns all fields ordered by name.
	List(ctx context.Context) ([]fieldModel.Field, error)

	// Update applies column updates to one field.
	Update(ctx context.Context, id string, updates map[string]interface{}) error

	// Delete removes a field with its contacts, facilities and matches.
	Delete(ctx context.Context, id string) error

	// AddContact inserts a contact unless already present.
	AddContact(ctx context.Context, fieldID, userID string) error

	// RemoveContact deletes a contact only while another contact remains.
	RemoveContact(ctx context.Context, fieldID, userID string) error

	// AddFacility inserts a facility tag unless already present.
	AddFacility(ctx context.Context, fieldID, name string) error

	// RemoveFacility deletes a facility tag. Removing an absent tag is not an error.
	RemoveFacility(ctx context.Context, fieldID, name string) error
}

type repository struct {
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new field repository instance.
func New(db *gorm.DB, logger *zap.SugaredLogger) Repository {
	return &repository{db: db, logger: logger}
}

func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Contacts", func(db *gorm.DB) *gorm.DB {
			return db.Order("field_contacts.created_at ASC, field_contacts.user_id ASC")
		}).
		Preload("Contacts.User").
		Preload("Facilities", func(db *gorm.DB) *gorm.DB {
			return db.Order("field_facilities.created_at ASC, field_facilities.name ASC")
		})
}

func (r *repository) Create(ctx context.Context, field *fieldModel.Field, creatorID string, facilities []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(field).Error; err != nil {
			return err
		}
		contact := &fieldModel.Contact{FieldID: field.ID, UserID: creatorID}
		if err := tx.Omit(clause.Associations).Create(contact).Error; err != nil {
			return err
		}
		for _, name := range facilities {
			err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				Create(&fieldModel.Facility{FieldID: field.ID, Name: name}).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	switch {
	case err == nil:
		return nil
	case database.IsDuplicateKey(err):
		return fieldModel.ErrFieldExists
	case database.IsForeignKeyViolation(err):
		return userModel.ErrUserNotFound
	default:
		r.logger.Errorw("Create database error", "field_name", field.Name, "error", err)
		return err
	}
}

func (r *repository) GetByID(ctx context.Context, id string) (*fieldModel.Field, error) {
	var field fieldModel.Field
	err := withRelations(r.db.WithContext(ctx)).Where("id = ?", id).First(&field).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fieldModel.ErrFieldNotFound
		}
		r.logger.Errorw("GetByID database error", "field_id", id, "error", err)
		return nil, err
	}
	return &field, nil
}

func (r *repository) List(ctx context.Context) ([]fieldModel.Field, error) {
	var fields []fieldModel.Field
	err := withRelations(r.db.WithContext(ctx)).Order("name ASC").Find(&fields).Error
	if err != nil {
		r.logger.Errorw("List database error", "error", err)
		return nil, err
	}
	return fields, nil
}

func (r *repository) Update(ctx context.Context, id string, updates map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&fieldModel.Field{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if database.IsDuplicateKey(result.Error) {
			return fieldModel.ErrFieldExists
		}
		r.logger.Errorw("Update database error", "field_id", id, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fieldModel.ErrFieldNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM matches WHERE field_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("field_id = ?", id).Delete(&fieldModel.Contact{}).Error; err != nil {
			return err
		}
		if err := tx.Where("field_id = ?", id).Delete(&fieldModel.Facility{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&fieldModel.Field{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fieldModel.ErrFieldNotFound
		}
		return nil
	})
}

func (r *repository) AddContact(ctx context.Context, fieldID, userID string) error {
	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fieldModel.Contact{FieldID: fieldID, UserID: userID})
	if result.Error != nil {
		if database.IsForeignKeyViolation(result.Error) {
			return userModel.ErrUserNotFound
		}
		r.logger.Errorw("AddContact database error", "field_id", fieldID, "user_id", userID, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fieldModel.ErrAlreadyContact
	}
	return nil
}

func (r *repository) RemoveContact(ctx context.Context, fieldID, userID string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Removals on one field are serialized on the field row; without the
		// lock two contacts removing each other could both see the other remain.
		var field fieldModel.Field
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").Where("id = ?", fieldID).First(&field).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fieldModel.ErrFieldNotFound
			}
			return err
		}

		result := tx.
			Where("field_id = ? AND user_id = ?", fieldID, userID).
			Where("EXISTS (SELECT 1 FROM field_contacts fc WHERE fc.field_id = ? AND fc.user_id <> ?)", fieldID, userID).
			Delete(&fieldModel.Contact{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected > 0 {
			return nil
		}

		var count int64
		if err := tx.Model(&fieldModel.Contact{}).
			Where("field_id = ? AND user_id = ?", fieldID, userID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fieldModel.ErrLastContact
		}
		return fieldModel.ErrNotContact
	})
	if _, known := apperr.As(err); err != nil && !known {
		r.logger.Errorw("RemoveContact database error", "field_id", fieldID, "user_id", userID, "error", err)
	}
	return err
}

func (r *repository) AddFacility(ctx context.Context, fieldID, name string) error {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&fieldModel.Facility{FieldID: fieldID, Name: name})
	if result.Error != nil {
		r.logger.Errorw("AddFacility database error", "field_id", fieldID, "facility", name, "error", result.Error)
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fieldModel.ErrFacilityExists
	}
	return nil
}

func (r *repository) RemoveFacility(ctx context.Context, fieldID, name string) error {
	err := r.db.WithContext(ctx).
		Where("field_id = ? AND name = ?", fieldID, name).
		Delete(&fieldModel.Facility{}).Error
	if err != nil {
		r.logger.Errorw("RemoveFacility database error", "field_id", fieldID, "facility", name, "error", err)
	}
	return err
}

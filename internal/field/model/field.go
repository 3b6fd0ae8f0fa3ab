// Package model provides domain models and DTOs for the field module.
package model

import (
	"time"

	userModel "github.com/festy23/matchday/internal/user/model"
)

// Field is a playing field and the users responsible for it.
// Matches the fields table schema.
type Field struct {
	ID          string     `gorm:"primaryKey;column:id;type:varchar(36)"`
	Name        string     `gorm:"column:name;type:varchar(255);not null;uniqueIndex:idx_fields_name"`
	Address     string     `gorm:"column:address;type:varchar(255);not null"`
	PostalCode  string     `gorm:"column:postal_code;type:varchar(16);not null"`
	Length      float64    `gorm:"column:length;not null"`
	Width       float64    `gorm:"column:width;not null"`
	Description string     `gorm:"column:description;type:text;not null"`
	Contacts    []Contact  `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE"`
	Facilities  []Facility `gorm:"foreignKey:FieldID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (Field) TableName() string {
	return "fields"
}

// Contact links a user who may manage the field.
type Contact struct {
	FieldID   string          `gorm:"primaryKey;column:field_id;type:varchar(36)"`
	UserID    string          `gorm:"primaryKey;column:user_id;type:varchar(36)"`
	User      *userModel.User `gorm:"foreignKey:UserID"`
	CreatedAt time.Time       `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for GORM.
func (Contact) TableName() string {
	return "field_contacts"
}

// Facility is a free-form tag such as "floodlights" or "showers".
type Facility struct {
	FieldID   string    `gorm:"primaryKey;column:field_id;type:varchar(36)"`
	Name      string    `gorm:"primaryKey;column:name;type:varchar(255)"`
	CreatedAt time.Time `gorm:"column:created_at;not null;autoCreateTime"`
}

// TableName specifies the table name for GORM.
func (Facility) TableName() string {
	return "field_facilities"
}

// Owners returns the contact identities, who alone may mutate the field.
func (f *Field) Owners() []string {
	ids := make([]string, 0, len(f.Contacts))
	for _, c := range f.Contacts {
		ids = append(ids, c.UserID)
	}
	return ids
}

// FacilityNames returns the facility tags in stored order.
func (f *Field) FacilityNames() []string {
	names := make([]string, 0, len(f.Facilities))
	for _, fac := range f.Facilities {
		names = append(names, fac.Name)
	}
	return names
}

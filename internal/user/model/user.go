// Package model provides domain models and DTOs for the user module.
package model

import (
	"time"
)

// User represents a registered club member.
// Matches the users table schema.
type User struct {
	ID           string    `gorm:"primaryKey;column:id;type:varchar(36)"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:idx_users_email"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"column:created_at;not null;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;not null;autoUpdateTime"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

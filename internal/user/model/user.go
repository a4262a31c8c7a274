// Package model provides domain models for the user module.
//
// User documents mirror the identity provider's profile; only the
// membership pointer is owned by this system.
package model

import (
	"time"

	"gorm.io/gorm"
)

// User represents a member entity in the system.
// Matches the users table schema.
type User struct {
	ID            string    `gorm:"primaryKey;column:id;type:varchar(255)"                    json:"id"`
	Name          string    `gorm:"column:name;type:varchar(255);not null;default:''"        json:"name"`
	Email         string    `gorm:"column:email;type:varchar(255);not null;default:''"       json:"email"`
	Image         string    `gorm:"column:image;type:text;not null;default:''"               json:"image"`
	EmailVerified *bool     `gorm:"column:email_verified"                                     json:"emailVerified"`
	MemberOf      *string   `gorm:"column:member_of;type:varchar(36);index"                   json:"memberOf"`
	CreatedAt     time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt     time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (User) TableName() string {
	return "users"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}

package model

import (
	"time"

	"gorm.io/gorm"
)

// Team represents a team entity in the system.
// Matches the teams table schema.
type Team struct {
	TeamUID   string    `gorm:"primaryKey;column:team_uid;type:varchar(36)"               json:"teamUid"`
	TeamID    string    `gorm:"column:team_id;type:varchar(7);not null"                   json:"teamId"`
	Name      string    `gorm:"column:name;type:varchar(15);not null"                     json:"name"`
	Passcode  string    `gorm:"column:passcode;type:varchar(15);not null"                 json:"passcode,omitempty"`
	CreatorID string    `gorm:"column:creator_id;type:varchar(255);not null"              json:"creatorId"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
	UpdatedAt time.Time `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// BeforeUpdate updates the UpdatedAt timestamp before saving.
func (t *Team) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return nil
}

// Membership represents one row of a team's member set.
// The composite primary key makes joining idempotent.
type Membership struct {
	TeamUID  string    `gorm:"primaryKey;column:team_uid;type:varchar(36)"               json:"teamUid"`
	UserID   string    `gorm:"primaryKey;column:user_id;type:varchar(255)"               json:"userId"`
	JoinedAt time.Time `gorm:"column:joined_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Membership) TableName() string {
	return "team_members"
}

package model

import "time"

// Quote represents a quote entity in the system.
// Matches the quotes table schema. Author image and name are a snapshot
// of the author's profile at post time and are intentionally never
// refreshed afterwards.
type Quote struct {
	ID        string    `gorm:"primaryKey;column:id;type:varchar(36)"                     json:"id"`
	TeamUID   string    `gorm:"column:team_uid;type:varchar(36);not null;index"           json:"teamUid"`
	AuthorUID string    `gorm:"column:author_uid;type:varchar(255);not null"              json:"authorUid"`
	Image     string    `gorm:"column:image;type:text;not null;default:''"                json:"image"`
	Name      string    `gorm:"column:name;type:varchar(255);not null;default:''"         json:"name"`
	Text      string    `gorm:"column:text;type:varchar(500);not null"                    json:"text"`
	Rating    int       `gorm:"column:rating;not null;default:0"                          json:"rating"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"createdAt"`

	// RatedBy is assembled from quote_ratings on reads.
	RatedBy []string `gorm:"-" json:"ratedBy"`
}

// TableName specifies the table name for GORM.
func (Quote) TableName() string {
	return "quotes"
}

// Rating represents one up-vote of a quote by a user.
type Rating struct {
	QuoteID   string    `gorm:"primaryKey;column:quote_id;type:varchar(36)"               json:"quoteId"`
	UserID    string    `gorm:"primaryKey;column:user_id;type:varchar(255)"               json:"userId"`
	CreatedAt time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Rating) TableName() string {
	return "quote_ratings"
}

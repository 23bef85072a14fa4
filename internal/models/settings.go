package models

import (
	"time"
)

// SettingsID is the primary key of the single settings row (one user)
const SettingsID = 1

// Settings holds the single user's configuration: the channel registry,
// news feed sources and triage keywords
type Settings struct {
	ID          int64     `gorm:"primaryKey;autoIncrement:false;column:id" json:"id"`
	DisplayName string    `gorm:"type:varchar(128);column:display_name" json:"displayName"`
	Channels    StringSet `gorm:"type:text;column:channels" json:"channels"`
	FeedURLs    StringSet `gorm:"type:text;column:feed_urls" json:"feedUrls"`
	Keywords    StringSet `gorm:"type:text;column:keywords" json:"keywords"`
	UpdatedAt   time.Time `gorm:"not null;column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name for Settings
func (Settings) TableName() string {
	return "settings"
}

package models

import (
	"time"
)

// Quote represents one card of the fixed daily quote sequence
type Quote struct {
	ID            int64      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Author        string     `gorm:"type:varchar(128);column:author" json:"author"`
	Text          string     `gorm:"type:text;not null;column:text" json:"text"`
	ScheduledDate string     `gorm:"type:varchar(10);uniqueIndex;not null;column:scheduled_date" json:"scheduled_date"`
	IsPosted      bool       `gorm:"not null;default:false;column:is_posted" json:"is_posted"`
	PostedAt      *time.Time `gorm:"column:posted_at" json:"posted_at"`
}

// TableName specifies the table name for Quote
func (Quote) TableName() string {
	return "quotes"
}

// TogglePosted flips the posted flag, stamping or clearing PostedAt
func (q *Quote) TogglePosted(now time.Time) {
	if q.IsPosted {
		q.IsPosted = false
		q.PostedAt = nil
		return
	}
	q.IsPosted = true
	q.PostedAt = &now
}

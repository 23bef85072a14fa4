package models

import (
	"time"
)

// News decision status values
const (
	NewsQueued   = "queued"
	NewsPosted   = "posted"
	NewsDeclined = "declined"
)

// NewsDecision is a triage record over a candidate news article. A record
// exists only once the user (or the ingestor) has taken a stance on the
// article; deleting it removes the stance entirely.
type NewsDecision struct {
	ArticleID string    `gorm:"primaryKey;type:varchar(64);column:article_id" json:"articleId"`
	Title     string    `gorm:"type:varchar(512);column:title" json:"title"`
	URL       string    `gorm:"type:varchar(1024);column:url" json:"url"`
	Summary   string    `gorm:"type:text;column:summary" json:"summary"`
	Status    string    `gorm:"type:varchar(16);not null;default:queued;column:status" json:"status"`
	DecidedAt time.Time `gorm:"not null;column:decided_at" json:"decidedAt"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name for NewsDecision
func (NewsDecision) TableName() string {
	return "news_decisions"
}

// ValidNewsStatus reports whether s is one of the three triage states
func ValidNewsStatus(s string) bool {
	return s == NewsQueued || s == NewsPosted || s == NewsDeclined
}

package models

import (
	"time"
)

// Post status values
const (
	StatusDraft     = "draft"
	StatusScheduled = "scheduled"
	StatusPosted    = "posted"
)

// Post source values
const (
	SourceQuote  = "quote"
	SourceNews   = "news"
	SourceCustom = "custom"
)

// ContentPost represents a unit of planned or published social content
type ContentPost struct {
	ID            string    `gorm:"primaryKey;type:varchar(36);column:id" json:"id"`
	Title         string    `gorm:"type:varchar(255);column:title" json:"title"`
	Body          string    `gorm:"type:text;column:body" json:"body"`
	ScheduledDate string    `gorm:"type:varchar(10);index;column:scheduled_date" json:"scheduledDate"`
	Status        string    `gorm:"type:varchar(16);not null;default:draft;column:status" json:"status"`
	Targets       StringSet `gorm:"type:text;column:targets" json:"targets"`
	PostedTargets StringSet `gorm:"type:text;column:posted_targets" json:"postedTargets"`
	Source        string    `gorm:"type:varchar(16);column:source" json:"source"`
	CreatedAt     time.Time `gorm:"not null;column:created_at" json:"createdAt"`
	UpdatedAt     time.Time `gorm:"not null;column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name for ContentPost
func (ContentPost) TableName() string {
	return "posts"
}

// SourceType returns the content-mix bucket for the post. Absent or unknown
// sources classify as custom.
func (p *ContentPost) SourceType() string {
	switch p.Source {
	case SourceQuote, SourceNews:
		return p.Source
	default:
		return SourceCustom
	}
}

// Schedule attaches a date to the post and moves a draft to scheduled.
// An empty date detaches the schedule and returns the post to draft.
func (p *ContentPost) Schedule(date string, now time.Time) {
	p.ScheduledDate = date
	if date == "" {
		if p.Status == StatusScheduled {
			p.Status = StatusDraft
		}
	} else if p.Status == StatusDraft {
		p.Status = StatusScheduled
	}
	p.UpdatedAt = now
}

// MarkPosted confirms publication. The given channels are stamped into
// PostedTargets (restricted to the post's own targets); an empty list confirms
// every target. UpdatedAt is refreshed and becomes the basis for gap and
// best-time math.
func (p *ContentPost) MarkPosted(channels []string, now time.Time) {
	if len(channels) == 0 {
		channels = p.Targets
	}
	for _, ch := range channels {
		if p.Targets.Contains(ch) {
			p.PostedTargets = p.PostedTargets.Add(ch)
		}
	}
	p.Status = StatusPosted
	p.UpdatedAt = now
}

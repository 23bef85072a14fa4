package models

import (
	"time"
)

// Idea is a captured content idea, promotable into a draft post
type Idea struct {
	ID        string    `gorm:"primaryKey;type:varchar(36);column:id" json:"id"`
	Text      string    `gorm:"type:text;not null;column:text" json:"text"`
	Tags      StringSet `gorm:"type:text;column:tags" json:"tags"`
	CreatedAt time.Time `gorm:"not null;column:created_at" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at" json:"updatedAt"`
}

// TableName specifies the table name for Idea
func (Idea) TableName() string {
	return "ideas"
}

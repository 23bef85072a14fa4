package stats

import (
	"time"

	"github.com/postdeck/postdeck/internal/models"
)

// PostingGap describes how long a channel has gone without a confirmed post.
// DaysSinceLastPost is nil when the channel has never been posted to, which
// is distinct from 0 (posted earlier today).
type PostingGap struct {
	Target            string     `json:"target"`
	DaysSinceLastPost *int       `json:"daysSinceLastPost"`
	LastPostedAt      *time.Time `json:"lastPostedAt"`
}

// DayActivity is one day of the weekly activity series
type DayActivity struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// PlatformMonthCount is one calendar month of per-channel post counts
type PlatformMonthCount struct {
	Month  string         `json:"month"`
	Counts map[string]int `json:"counts"`
}

// ContentMixEntry is one source-type bucket of the content mix
type ContentMixEntry struct {
	Type       string `json:"type"`
	Count      int    `json:"count"`
	Percentage int    `json:"percentage"`
}

// BestTimeCell is one non-zero cell of the day-of-week/hour posting heatmap
type BestTimeCell struct {
	Day   int `json:"day"`
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// MonthlyReport is the current-calendar-month snapshot
type MonthlyReport struct {
	Month           string         `json:"month"`
	PostsPerChannel map[string]int `json:"postsPerChannel"`
	TotalPosts      int            `json:"totalPosts"`
	QuotesPosted    int            `json:"quotesPosted"`
	NewsPosted      int            `json:"newsPosted"`
	NewsQueued      int            `json:"newsQueued"`
}

// Result is the immutable snapshot of every derived statistic, recomputed
// from scratch on each invocation
type Result struct {
	GeneratedAt time.Time `json:"generatedAt"`

	TodayPosts        []models.ContentPost `json:"todayPosts"`
	OverduePosts      []models.ContentPost `json:"overduePosts"`
	OverdueTotalCount int                  `json:"overdueTotalCount"`

	PostingStreak     int `json:"postingStreak"`
	PostsThisWeek     int `json:"postsThisWeek"`
	QuotesPostedCount int `json:"quotesPostedCount"`

	PostingGaps    []PostingGap         `json:"postingGaps"`
	WeeklyActivity []DayActivity        `json:"weeklyActivity"`
	PlatformMonths []PlatformMonthCount `json:"platformMonths"`
	ContentMix     []ContentMixEntry    `json:"contentMix"`

	BestTimeCells   []BestTimeCell `json:"bestTimeCells"`
	BestTimeSummary string         `json:"bestTimeSummary"`

	QueueCompletionRate float64 `json:"queueCompletionRate"`
	QueuedNewsCount     int     `json:"queuedNewsCount"`

	MonthlyReport MonthlyReport `json:"monthlyReport"`
}

// GapSeverity bands derivable from DaysSinceLastPost alone
const (
	GapHealthy  = "healthy"  // 0-3 days
	GapWarning  = "warning"  // 4-7 days
	GapCritical = "critical" // >7 days
	GapNever    = "never"    // no post ever
)

// Severity returns the band for the gap
func (g PostingGap) Severity() string {
	if g.DaysSinceLastPost == nil {
		return GapNever
	}
	switch d := *g.DaysSinceLastPost; {
	case d <= 3:
		return GapHealthy
	case d <= 7:
		return GapWarning
	default:
		return GapCritical
	}
}

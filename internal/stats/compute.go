package stats

import (
	"math"
	"sort"
	"time"

	"github.com/postdeck/postdeck/internal/models"
)

// streakLookbackDays caps the backward walk of the streak computation.
// Termination guard, not a designed limit.
const streakLookbackDays = 365

// noDataSummary is returned when no posted post exists to derive a best
// posting time from
const noDataSummary = "Not enough data yet"

// Compute derives every statistic from the three raw record collections.
// It is a pure function of (posts, quotes, decisions, channels, now): no
// I/O, no hidden state, identical output for identical input. now is read
// once so that every sub-calculation shares the same notion of "today".
func Compute(posts []models.ContentPost, quotes []models.Quote, decisions []models.NewsDecision, channels []string, now time.Time) *Result {
	today := formatDate(now)

	result := &Result{
		GeneratedAt:       now,
		TodayPosts:        []models.ContentPost{},
		OverduePosts:      []models.ContentPost{},
		PostingStreak:     computeStreak(posts, quotes, now),
		QuotesPostedCount: countPostedQuotes(quotes),
		PostingGaps:       computeGaps(posts, channels, now),
		WeeklyActivity:    computeWeeklyActivity(posts, quotes, now),
		PlatformMonths:    computePlatformMonths(posts, channels, now),
		ContentMix:        computeContentMix(posts),
		QueuedNewsCount:   countDecisions(decisions, models.NewsQueued),
		MonthlyReport:     computeMonthlyReport(posts, quotes, decisions, channels, now),
	}

	for _, p := range posts {
		if p.ScheduledDate == "" || p.Status == models.StatusPosted {
			continue
		}
		switch {
		case p.ScheduledDate == today:
			result.TodayPosts = append(result.TodayPosts, p)
		case p.ScheduledDate < today:
			result.OverduePosts = append(result.OverduePosts, p)
		}
	}
	result.OverdueTotalCount = len(result.OverduePosts)

	weekStart := formatDate(now.AddDate(0, 0, -6))
	for _, p := range posts {
		if p.ScheduledDate != "" && p.ScheduledDate >= weekStart && p.ScheduledDate <= today {
			result.PostsThisWeek++
		}
	}

	result.BestTimeCells, result.BestTimeSummary = computeBestTime(posts)
	result.QueueCompletionRate = computeQueueCompletionRate(decisions)

	return result
}

// computeStreak walks backward day-by-day starting at yesterday. Today is
// deliberately excluded: an in-progress day can neither break nor extend the
// streak. A day qualifies when a posted post is scheduled on it or a posted
// quote landed on it.
func computeStreak(posts []models.ContentPost, quotes []models.Quote, now time.Time) int {
	active := make(map[string]bool)
	for _, p := range posts {
		if p.Status == models.StatusPosted && p.ScheduledDate != "" {
			active[p.ScheduledDate] = true
		}
	}
	for _, q := range quotes {
		if q.IsPosted && q.PostedAt != nil {
			active[formatDate(q.PostedAt.In(now.Location()))] = true
		}
	}

	streak := 0
	day := now.AddDate(0, 0, -1)
	for i := 0; i < streakLookbackDays; i++ {
		if !active[formatDate(day)] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// computeGaps finds, per channel, the most recent updated_at among posts
// confirmed to that channel. A channel never posted to gets a nil gap,
// distinct from a zero-day gap.
func computeGaps(posts []models.ContentPost, channels []string, now time.Time) []PostingGap {
	gaps := make([]PostingGap, 0, len(channels))
	for _, channel := range channels {
		var last *time.Time
		for i := range posts {
			if !posts[i].PostedTargets.Contains(channel) {
				continue
			}
			if last == nil || posts[i].UpdatedAt.After(*last) {
				t := posts[i].UpdatedAt
				last = &t
			}
		}

		gap := PostingGap{Target: channel}
		if last != nil {
			days := int(now.Sub(*last) / (24 * time.Hour))
			gap.DaysSinceLastPost = &days
			gap.LastPostedAt = last
		}
		gaps = append(gaps, gap)
	}
	return gaps
}

// computeWeeklyActivity builds exactly 7 entries, oldest first, for the
// inclusive range [today-6, today]. Posts and quotes are summed without
// distinction in this series only.
func computeWeeklyActivity(posts []models.ContentPost, quotes []models.Quote, now time.Time) []DayActivity {
	series := make([]DayActivity, 0, 7)
	for i := 6; i >= 0; i-- {
		date := formatDate(now.AddDate(0, 0, -i))
		count := 0
		for _, p := range posts {
			if p.ScheduledDate == date {
				count++
			}
		}
		for _, q := range quotes {
			if q.ScheduledDate == date {
				count++
			}
		}
		series = append(series, DayActivity{Date: date, Count: count})
	}
	return series
}

// computePlatformMonths builds exactly 6 entries, oldest first, ending at the
// current calendar month. Unscheduled posts are excluded; a post targeting
// several channels contributes to each of them.
func computePlatformMonths(posts []models.ContentPost, channels []string, now time.Time) []PlatformMonthCount {
	series := make([]PlatformMonthCount, 0, 6)
	for i := 5; i >= 0; i-- {
		month := monthStart(now, i)
		start, end := monthBounds(month)

		counts := make(map[string]int, len(channels))
		for _, channel := range channels {
			counts[channel] = 0
		}
		for _, p := range posts {
			if p.ScheduledDate == "" || p.ScheduledDate < start || p.ScheduledDate > end {
				continue
			}
			for _, channel := range channels {
				if p.Targets.Contains(channel) {
					counts[channel]++
				}
			}
		}
		series = append(series, PlatformMonthCount{Month: month.Format(monthLayout), Counts: counts})
	}
	return series
}

// computeContentMix classifies every post into exactly three buckets.
// Zero posts yields zero percentages rather than a division fault.
func computeContentMix(posts []models.ContentPost) []ContentMixEntry {
	counts := map[string]int{
		models.SourceQuote:  0,
		models.SourceNews:   0,
		models.SourceCustom: 0,
	}
	for i := range posts {
		counts[posts[i].SourceType()]++
	}

	total := len(posts)
	mix := make([]ContentMixEntry, 0, 3)
	for _, bucket := range []string{models.SourceQuote, models.SourceNews, models.SourceCustom} {
		entry := ContentMixEntry{Type: bucket, Count: counts[bucket]}
		if total > 0 {
			entry.Percentage = int(math.Round(float64(counts[bucket]) / float64(total) * 100))
		}
		mix = append(mix, entry)
	}
	return mix
}

// computeBestTime buckets posted posts by (weekday, hour) of updated_at —
// actual posting time, not planned time. Only non-zero cells are emitted.
// The summary names the top 2 cells; ties break by count desc, then day,
// then hour, so the output is deterministic.
func computeBestTime(posts []models.ContentPost) ([]BestTimeCell, string) {
	buckets := make(map[[2]int]int)
	for i := range posts {
		if posts[i].Status != models.StatusPosted {
			continue
		}
		key := [2]int{int(posts[i].UpdatedAt.Weekday()), posts[i].UpdatedAt.Hour()}
		buckets[key]++
	}

	cells := make([]BestTimeCell, 0, len(buckets))
	for key, count := range buckets {
		cells = append(cells, BestTimeCell{Day: key[0], Hour: key[1], Count: count})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Day != cells[j].Day {
			return cells[i].Day < cells[j].Day
		}
		return cells[i].Hour < cells[j].Hour
	})

	if len(cells) == 0 {
		return cells, noDataSummary
	}

	top := make([]BestTimeCell, len(cells))
	copy(top, cells)
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		if top[i].Day != top[j].Day {
			return top[i].Day < top[j].Day
		}
		return top[i].Hour < top[j].Hour
	})
	if len(top) > 2 {
		top = top[:2]
	}

	summary := ""
	for i, cell := range top {
		if i > 0 {
			summary += ", "
		}
		summary += dayName(cell.Day) + " " + hourLabel(cell.Hour)
	}
	return cells, summary
}

// computeQueueCompletionRate is newsPosted / totalDecided. Queued items do
// not depress the rate; a zero denominator yields 0, never NaN.
func computeQueueCompletionRate(decisions []models.NewsDecision) float64 {
	posted := countDecisions(decisions, models.NewsPosted)
	declined := countDecisions(decisions, models.NewsDeclined)
	decided := posted + declined
	if decided == 0 {
		return 0
	}
	return float64(posted) / float64(decided)
}

// computeMonthlyReport snapshots the current calendar month only
func computeMonthlyReport(posts []models.ContentPost, quotes []models.Quote, decisions []models.NewsDecision, channels []string, now time.Time) MonthlyReport {
	start, end := monthBounds(now)

	report := MonthlyReport{
		Month:           now.Format(monthLayout),
		PostsPerChannel: make(map[string]int, len(channels)),
	}
	for _, channel := range channels {
		report.PostsPerChannel[channel] = 0
	}

	for _, p := range posts {
		if p.ScheduledDate == "" || p.ScheduledDate < start || p.ScheduledDate > end {
			continue
		}
		report.TotalPosts++
		for _, channel := range channels {
			if p.Targets.Contains(channel) {
				report.PostsPerChannel[channel]++
			}
		}
	}

	for _, q := range quotes {
		if !q.IsPosted || q.PostedAt == nil {
			continue
		}
		date := formatDate(q.PostedAt.In(now.Location()))
		if date >= start && date <= end {
			report.QuotesPosted++
		}
	}

	for _, d := range decisions {
		date := formatDate(d.DecidedAt.In(now.Location()))
		if date < start || date > end {
			continue
		}
		switch d.Status {
		case models.NewsPosted:
			report.NewsPosted++
		case models.NewsQueued:
			report.NewsQueued++
		}
	}

	return report
}

func countPostedQuotes(quotes []models.Quote) int {
	count := 0
	for _, q := range quotes {
		if q.IsPosted {
			count++
		}
	}
	return count
}

func countDecisions(decisions []models.NewsDecision, status string) int {
	count := 0
	for _, d := range decisions {
		if d.Status == status {
			count++
		}
	}
	return count
}

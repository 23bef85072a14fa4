package models

import (
	"testing"
	"time"
)

func TestContentPost_SourceType(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		expected string
	}{
		{name: "quote source", source: "quote", expected: "quote"},
		{name: "news source", source: "news", expected: "news"},
		{name: "custom source", source: "custom", expected: "custom"},
		{name: "absent source defaults to custom", source: "", expected: "custom"},
		{name: "unknown source defaults to custom", source: "rss", expected: "custom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &ContentPost{Source: tt.source}
			if got := p.SourceType(); got != tt.expected {
				t.Errorf("SourceType() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestContentPost_Schedule(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	p := &ContentPost{Status: StatusDraft}
	p.Schedule("2026-03-12", now)
	if p.Status != StatusScheduled {
		t.Errorf("draft with date should become scheduled, got %q", p.Status)
	}

	p.Schedule("", now)
	if p.Status != StatusDraft {
		t.Errorf("detaching the date should return to draft, got %q", p.Status)
	}

	// A posted post keeps its status when rescheduled
	p = &ContentPost{Status: StatusPosted, ScheduledDate: "2026-03-09"}
	p.Schedule("2026-03-10", now)
	if p.Status != StatusPosted {
		t.Errorf("posted post should stay posted, got %q", p.Status)
	}
}

func TestContentPost_MarkPosted(t *testing.T) {
	now := time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC)

	p := &ContentPost{
		Status:  StatusScheduled,
		Targets: StringSet{"linkedin", "instagram_personal"},
	}

	// Confirm one channel
	p.MarkPosted([]string{"linkedin"}, now)
	if p.Status != StatusPosted {
		t.Errorf("expected status posted, got %q", p.Status)
	}
	if !p.PostedTargets.Contains("linkedin") {
		t.Error("linkedin should be in posted targets")
	}
	if p.PostedTargets.Contains("instagram_personal") {
		t.Error("instagram_personal should not be confirmed yet")
	}
	if !p.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt should be refreshed, got %v", p.UpdatedAt)
	}

	// Confirming again is idempotent
	p.MarkPosted([]string{"linkedin"}, now)
	if len(p.PostedTargets) != 1 {
		t.Errorf("expected 1 posted target, got %d", len(p.PostedTargets))
	}

	// Empty channel list confirms all targets
	p.MarkPosted(nil, now)
	if len(p.PostedTargets) != 2 {
		t.Errorf("expected all targets confirmed, got %v", p.PostedTargets)
	}

	// Channels outside the post's targets are ignored
	p.MarkPosted([]string{"instagram_secondary"}, now)
	if p.PostedTargets.Contains("instagram_secondary") {
		t.Error("channel outside targets must not be stamped")
	}
}

func TestQuote_TogglePosted(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	q := &Quote{ScheduledDate: "2026-03-10"}
	q.TogglePosted(now)
	if !q.IsPosted || q.PostedAt == nil {
		t.Fatal("toggle on should set IsPosted and PostedAt")
	}
	if !q.PostedAt.Equal(now) {
		t.Errorf("PostedAt = %v, want %v", q.PostedAt, now)
	}

	q.TogglePosted(now)
	if q.IsPosted || q.PostedAt != nil {
		t.Error("toggle off should clear IsPosted and PostedAt")
	}
}

package ingest

import (
	"testing"

	"github.com/postdeck/postdeck/internal/cache"
)

func TestTriggersRefresh(t *testing.T) {
	tests := []struct {
		name  string
		event cache.ChangeEvent
		want  bool
	}{
		{
			name:  "settings update",
			event: cache.ChangeEvent{Entity: "settings", Op: "update"},
			want:  true,
		},
		{
			name:  "post create",
			event: cache.ChangeEvent{Entity: "posts", ID: "abc", Op: "create"},
			want:  false,
		},
		{
			name:  "news update",
			event: cache.ChangeEvent{Entity: "news", Op: "update"},
			want:  false,
		},
		{
			name:  "quote toggle",
			event: cache.ChangeEvent{Entity: "quotes", ID: "1", Op: "update"},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := triggersRefresh(tt.event); got != tt.want {
				t.Errorf("triggersRefresh(%+v) = %v, want %v", tt.event, got, tt.want)
			}
		})
	}
}

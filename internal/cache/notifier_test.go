package cache

import (
	"context"
	"testing"
	"time"
)

func TestNotifier_NilSafety(t *testing.T) {
	var c *Cache
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Publish on a disabled cache must be a silent no-op
	c.PublishChange(ctx, ChangeEvent{Entity: "posts", ID: "abc", Op: "create"})

	// Subscribe on a disabled cache must return immediately and never
	// invoke the callback
	called := make(chan struct{}, 1)
	c.SubscribeChanges(ctx, func(ChangeEvent) {
		called <- struct{}{}
	})

	select {
	case <-called:
		t.Error("SubscribeChanges on nil cache should never invoke the callback")
	case <-time.After(50 * time.Millisecond):
	}
}

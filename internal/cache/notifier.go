package cache

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/postdeck/postdeck/pkg/logging"
)

// changeChannel is the pub/sub channel carrying record-change events
const changeChannel = "postdeck:changes"

// ChangeEvent announces that a record collection changed outside the
// receiver's in-memory state. Listeners re-read their snapshot; the event
// carries no payload beyond identity, so a missed event only delays refresh.
type ChangeEvent struct {
	Entity string `json:"entity"` // posts | quotes | news | ideas | settings
	ID     string `json:"id,omitempty"`
	Op     string `json:"op"` // create | update | delete
}

// PublishChange broadcasts a change event. Best-effort: with the cache
// disabled or Redis down this is a silent no-op.
func (c *Cache) PublishChange(ctx context.Context, event ChangeEvent) {
	if c == nil || c.client == nil {
		return
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := c.client.Publish(ctx, changeChannel, payload).Err(); err != nil {
		logging.WithComponent("cache").Debug("Failed to publish change event", zap.Error(err))
	}
}

// SubscribeChanges invokes fn for every change event until ctx is done.
// With the cache disabled it returns immediately.
func (c *Cache) SubscribeChanges(ctx context.Context, fn func(ChangeEvent)) {
	if c == nil || c.client == nil {
		return
	}

	sub := c.client.Subscribe(ctx, changeChannel)
	logger := logging.WithComponent("cache")

	go func() {
		defer sub.Close()
		ch := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				var event ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					logger.Warn("Malformed change event", zap.Error(err))
					continue
				}
				fn(event)
			}
		}
	}()
}

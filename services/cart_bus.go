package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Lutkowo/lutkowo/libs"
	"github.com/Lutkowo/lutkowo/models"
)

func cartChannel(token string) string {
	return "cart:" + token
}

// CartBus fans cart snapshots out to every open client of one device. It is
// best effort and unordered across instances: the last message wins.
type CartBus struct {
	pubsub libs.PubSub
}

func NewCartBus(pubsub libs.PubSub) *CartBus {
	return &CartBus{pubsub: pubsub}
}

func (b *CartBus) CartChanged(ctx context.Context, change CartChange) {
	msg := models.CartMessage{
		Type:     models.CartMessageReplace,
		Origin:   change.Origin,
		Snapshot: change.Snapshot,
		SentAt:   time.Now(),
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[CartBus] marshal failed: %v", err)
		return
	}
	if err := b.pubsub.Publish(ctx, cartChannel(change.Token), data); err != nil {
		log.Printf("[CartBus] publish to %s failed: %v", change.Token, err)
	}
}

// Subscribe delivers replace messages for the device until ctx is done or
// the returned cancel func is called.
func (b *CartBus) Subscribe(ctx context.Context, token string) (<-chan models.CartMessage, func()) {
	raw, cancel := b.pubsub.Subscribe(ctx, cartChannel(token))

	out := make(chan models.CartMessage, 8)
	go func() {
		defer close(out)
		for data := range raw {
			var msg models.CartMessage
			if err := json.Unmarshal(data, &msg); err != nil {
				log.Printf("[CartBus] dropping malformed message: %v", err)
				continue
			}
			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, cancel
}

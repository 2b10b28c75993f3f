package libs

import (
	"context"
	"encoding/json"
	"time"
)

// KV is the device-side key/value store: cart snapshots, session snapshots
// and cached listings all live here.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	DelPrefix(ctx context.Context, prefix string) error
}

// PubSub delivers payloads to every live subscriber of a channel. Delivery
// is best effort: slow subscribers drop messages.
type PubSub interface {
	Publish(ctx context.Context, channel string, payload []byte) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, func())
}

func GetJSON(ctx context.Context, kv KV, key string, dst interface{}) (bool, error) {
	raw, ok, err := kv.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

func SetJSON(ctx context.Context, kv KV, key string, v interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return kv.Set(ctx, key, raw, ttl)
}

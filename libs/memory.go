package libs

import (
	"context"
	"strings"
	"sync"
	"time"
)

type memoryItem struct {
	value     []byte
	expiresAt time.Time
}

// MemoryStore implements KV and PubSub in-process. It backs single-instance
// deployments without redis and the tests.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]memoryItem
	subs  map[string]map[chan []byte]struct{}
	now   func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: make(map[string]memoryItem),
		subs:  make(map[string]map[chan []byte]struct{}),
		now:   time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	item, ok := s.items[key]
	s.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !item.expiresAt.IsZero() && s.now().After(item.expiresAt) {
		s.mu.Lock()
		delete(s.items, key)
		s.mu.Unlock()
		return nil, false, nil
	}
	out := make([]byte, len(item.value))
	copy(out, item.value)
	return out, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	item := memoryItem{value: append([]byte(nil), value...)}
	if ttl > 0 {
		item.expiresAt = s.now().Add(ttl)
	}
	s.mu.Lock()
	s.items[key] = item
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Del(_ context.Context, keys ...string) error {
	s.mu.Lock()
	for _, k := range keys {
		delete(s.items, k)
	}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) DelPrefix(_ context.Context, prefix string) error {
	s.mu.Lock()
	for k := range s.items {
		if strings.HasPrefix(k, prefix) {
			delete(s.items, k)
		}
	}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Publish(_ context.Context, channel string, payload []byte) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ch := range s.subs[channel] {
		select {
		case ch <- append([]byte(nil), payload...):
		default:
		}
	}
	return nil
}

func (s *MemoryStore) Subscribe(ctx context.Context, channel string) (<-chan []byte, func()) {
	ch := make(chan []byte, 16)

	s.mu.Lock()
	if s.subs[channel] == nil {
		s.subs[channel] = make(map[chan []byte]struct{})
	}
	s.subs[channel][ch] = struct{}{}
	s.mu.Unlock()

	closed := make(chan struct{})
	cancel := sync.OnceFunc(func() {
		close(closed)
		s.mu.Lock()
		delete(s.subs[channel], ch)
		if len(s.subs[channel]) == 0 {
			delete(s.subs, channel)
		}
		close(ch)
		s.mu.Unlock()
	})
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-closed:
		}
	}()
	return ch, cancel
}

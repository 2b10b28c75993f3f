package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoginLimiter(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	l := newLoginLimiter(2)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("anna@example.pl"))
	assert.True(t, l.Allow("anna@example.pl"))
	assert.False(t, l.Allow("anna@example.pl"))
	assert.True(t, l.Allow("ola@example.pl"))

	now = now.Add(30 * time.Second)
	assert.True(t, l.Allow("anna@example.pl"), "one attempt refills every 30s")
	assert.False(t, l.Allow("anna@example.pl"))

	now = now.Add(11 * time.Minute)
	l.Allow("nowy@example.pl")
	assert.Len(t, l.visitors, 1, "idle entries are swept")
}

func TestKeyedMutex(t *testing.T) {
	var k keyedMutex
	var wg sync.WaitGroup
	counter := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock := k.Lock("cart-1")
			v := counter
			time.Sleep(time.Microsecond)
			counter = v + 1
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, counter)
	assert.Empty(t, k.locks)
}

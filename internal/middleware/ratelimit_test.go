package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)

	assert.True(t, limiter.allow("client1"))
	assert.True(t, limiter.allow("client1"))
	assert.True(t, limiter.allow("client1"))
	assert.False(t, limiter.allow("client1"))

	// 不同客户端互不影响
	assert.True(t, limiter.allow("client2"))
}

func TestRateLimiterReset(t *testing.T) {
	limiter := NewRateLimiter(1, 10*time.Millisecond)

	assert.True(t, limiter.allow("client"))
	assert.False(t, limiter.allow("client"))

	time.Sleep(20 * time.Millisecond)
	assert.True(t, limiter.allow("client"))
}

func TestRateLimiterCleanup(t *testing.T) {
	limiter := NewRateLimiter(1, time.Millisecond)
	limiter.allow("stale")

	time.Sleep(5 * time.Millisecond)
	limiter.cleanup()

	limiter.mu.RLock()
	defer limiter.mu.RUnlock()
	assert.Empty(t, limiter.tokens)
}

package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/langschool/contentapi/internal/config"
)

func TestRateLimiter_LocksAfterMaxAttempts(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{MaxAttempts: 3, WindowDuration: time.Minute, LockoutDuration: time.Minute})
	defer rl.Stop()

	for i := 0; i < 2; i++ {
		locked, _ := rl.RecordFailure("1.1.1.1", "alice")
		assert.False(t, locked)
	}
	allowed, _ := rl.Allow("1.1.1.1", "alice")
	assert.True(t, allowed)

	locked, retry := rl.RecordFailure("1.1.1.1", "alice")
	assert.True(t, locked)
	assert.Equal(t, time.Minute, retry)

	allowed, retry = rl.Allow("1.1.1.1", "alice")
	assert.False(t, allowed)
	assert.Greater(t, retry, time.Duration(0))

	allowed, _ = rl.Allow("2.2.2.2", "alice")
	assert.True(t, allowed, "other IPs are unaffected")
}

func TestRateLimiter_SuccessClears(t *testing.T) {
	rl := NewRateLimiter(RateLimitConfig{MaxAttempts: 2})
	defer rl.Stop()

	rl.RecordFailure("ip", "bob")
	rl.RecordSuccess("ip", "bob")
	locked, _ := rl.RecordFailure("ip", "bob")
	assert.False(t, locked)
}

func TestRateLimitConfigFromAuth(t *testing.T) {
	cfg := RateLimitConfigFromAuth(config.Auth{MaxLoginAttempts: 7, LockoutDuration: time.Hour})
	assert.Equal(t, 14, cfg.MaxAttempts)
	assert.Equal(t, time.Hour, cfg.LockoutDuration)
	assert.Equal(t, DefaultRateLimitConfig().WindowDuration, cfg.WindowDuration)
}

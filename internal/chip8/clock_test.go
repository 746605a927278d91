package chip8

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockTryReset(t *testing.T) {
	now := time.Unix(0, 0)
	c := &Clock{interval: 10 * time.Millisecond, last: now, now: func() time.Time { return now }}

	assert.False(t, c.TryReset(), "interval has not elapsed yet")

	now = now.Add(20 * time.Millisecond)
	assert.True(t, c.TryReset(), "interval elapsed")
	assert.False(t, c.TryReset(), "rebased, should not fire again immediately")
}

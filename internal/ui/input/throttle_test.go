package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeyThrottle_BurstDispatchesOnce(t *testing.T) {
	const delay = 100 * time.Millisecond
	th := NewKeyThrottle(delay)
	start := time.Unix(1_700_000_000, 0)

	accepted := 0
	for i := 0; i < 10; i++ {
		if th.Accept(KeycodeDown, start.Add(time.Duration(i)*10*time.Millisecond)) {
			accepted++
		}
	}
	assert.Equal(t, 1, accepted)

	// Swallowed events do not move the reference timestamp, so the next
	// event past the delay from the first accepted one goes through.
	assert.True(t, th.Accept(KeycodeDown, start.Add(delay+time.Millisecond)))
	assert.False(t, th.Accept(KeycodeDown, start.Add(delay+20*time.Millisecond)))
}

func TestKeyThrottle_BoundaryIsInclusive(t *testing.T) {
	th := NewKeyThrottle(50 * time.Millisecond)
	start := time.Unix(0, 0)

	assert.True(t, th.Accept(KeycodeUp, start))
	assert.False(t, th.Accept(KeycodeUp, start.Add(50*time.Millisecond)))
	assert.True(t, th.Accept(KeycodeUp, start.Add(51*time.Millisecond)))
}

func TestKeyThrottle_DifferentKeysPass(t *testing.T) {
	th := NewKeyThrottle(time.Second)
	now := time.Unix(0, 0)

	assert.True(t, th.Accept(KeycodeDown, now))
	assert.True(t, th.Accept(KeycodeRight, now))
	assert.True(t, th.Accept(KeycodeDown, now))
}

func TestKeyThrottle_Disabled(t *testing.T) {
	th := NewKeyThrottle(0)
	now := time.Unix(0, 0)

	for i := 0; i < 5; i++ {
		assert.True(t, th.Accept(KeycodeDown, now))
	}

	th.SetDelay(time.Second)
	assert.Equal(t, time.Second, th.Delay())
	assert.False(t, th.Accept(KeycodeDown, now))
}

package chat

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoller_SkipsTicksWhileRunning(t *testing.T) {
	release := make(chan struct{})
	var runs atomic.Int32
	p := newPoller(10*time.Millisecond, func() {
		runs.Add(1)
		<-release
	})

	p.Start(true)
	defer p.Stop()

	// ticks keep firing but the hung run absorbs them all
	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(1), runs.Load())

	close(release)
	require.Eventually(t, func() bool {
		return runs.Load() >= 2
	}, 2*time.Second, 5*time.Millisecond)
}

func TestPoller_NoRunAfterStop(t *testing.T) {
	var runs atomic.Int32
	p := newPoller(time.Hour, func() {
		runs.Add(1)
	})

	p.Stop()
	assert.NotPanics(t, p.Stop)

	// a tick delivered after Stop must not reach fn
	p.run()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, int32(0), runs.Load())
}

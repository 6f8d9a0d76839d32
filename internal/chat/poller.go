package chat

import (
	"sync"
	"sync/atomic"
	"time"
)

// poller runs fn on a fixed interval until stopped. A run that is still in
// flight when the next tick fires makes the tick a no-op: runs are skipped,
// never queued. Stop is idempotent and stops scheduling; a tick racing
// Stop can still reach fn once, so fn owners guard their own teardown.
type poller struct {
	interval time.Duration
	fn       func()
	done     chan struct{}
	stopOnce sync.Once
	inFlight atomic.Bool
}

func newPoller(interval time.Duration, fn func()) *poller {
	return &poller{
		interval: interval,
		fn:       fn,
		done:     make(chan struct{}),
	}
}

// Start launches the polling goroutine. With immediate set, one run fires
// right away instead of waiting for the first tick.
func (p *poller) Start(immediate bool) {
	go func() {
		if immediate {
			p.run()
		}

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				p.run()
			case <-p.done:
				return
			}
		}
	}()
}

func (p *poller) run() {
	if !p.inFlight.CompareAndSwap(false, true) {
		// previous run still pending, skip this tick
		return
	}
	go func() {
		defer p.inFlight.Store(false)
		select {
		case <-p.done:
			return
		default:
		}
		p.fn()
	}()
}

func (p *poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
	})
}

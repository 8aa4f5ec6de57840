package loop

import (
	"sync"
	"time"
)

// FPS bounds for SetTargetFPS.
const (
	MinFPS = 1
	MaxFPS = 60
)

// baseTickInterval is the rate of the render tick that drains the
// action queue and wakes frame waiters. The tick runs at the maximum
// frame rate; WaitForUpdate paces each caller down to its target.
const baseTickInterval = time.Second / MaxFPS

// frameClock paces animation for caller goroutines. The UI goroutine
// calls tick once per render tick; callers block in waitFrame and then
// account delta and cumulative time under the clock mutex.
type frameClock struct {
	mu        sync.Mutex
	waiters   []chan struct{} // one-shot, cleared on every tick
	targetFPS int
	last      time.Time     // wall time of the previous waitForUpdate return
	delta     time.Duration // measured interval of the latest waitForUpdate
	elapsed   time.Duration // cumulative time across all waits
}

func newFrameClock(targetFPS int) *frameClock {
	c := &frameClock{}
	c.setTargetFPS(targetFPS)
	return c
}

// setTargetFPS clamps fps to [MinFPS, MaxFPS] and stores it. The new
// value takes effect on the next wait.
func (c *frameClock) setTargetFPS(fps int) {
	if fps < MinFPS {
		fps = MinFPS
	}
	if fps > MaxFPS {
		fps = MaxFPS
	}
	c.mu.Lock()
	c.targetFPS = fps
	c.mu.Unlock()
}

func (c *frameClock) targetFPSValue() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.targetFPS
}

// targetInterval returns the frame interval for the current target FPS.
func (c *frameClock) targetInterval() time.Duration {
	return time.Second / time.Duration(c.targetFPSValue())
}

// tick wakes every registered waiter exactly once. Each waiter is a
// one-shot subscription, removed here so repeated WaitForUpdate calls
// cannot leak registrations. Called from the UI goroutine only.
func (c *frameClock) tick() {
	c.mu.Lock()
	waiters := c.waiters
	c.waiters = nil
	c.mu.Unlock()
	for _, w := range waiters {
		close(w)
	}
}

// waitFrame blocks until the next tick, the timeout, or closed,
// whichever comes first. It never blocks past timeout.
func (c *frameClock) waitFrame(timeout time.Duration, closed <-chan struct{}) {
	w := make(chan struct{})
	c.mu.Lock()
	c.waiters = append(c.waiters, w)
	c.mu.Unlock()

	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-w:
	case <-timer.C:
	case <-closed:
	}
}

// account runs after a frame wait: it sleeps out any remainder of the
// target interval not already consumed, so the measured delta never
// undercuts the target even when the underlying tick fires faster,
// then records delta and cumulative elapsed time. It returns the
// measured delta. The pacing sleep aborts early when closed fires.
func (c *frameClock) account(closed <-chan struct{}) time.Duration {
	interval := c.targetInterval()

	c.mu.Lock()
	now := time.Now()
	if c.last.IsZero() {
		c.last = now.Add(-interval)
	}
	if since := now.Sub(c.last); since < interval {
		c.mu.Unlock()
		timer := time.NewTimer(interval - since)
		select {
		case <-timer.C:
		case <-closed:
		}
		timer.Stop()
		c.mu.Lock()
		now = time.Now()
	}
	d := now.Sub(c.last)
	c.last = now
	c.delta = d
	c.elapsed += d
	c.mu.Unlock()
	return d
}

// deltaTime returns the interval measured by the latest waitForUpdate.
func (c *frameClock) deltaTime() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delta
}

// elapsedTime returns the cumulative time accumulated across waits.
func (c *frameClock) elapsedTime() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}

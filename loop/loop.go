// Package loop runs the UI-owning goroutine of an SGL session and
// bridges it to an arbitrary number of caller goroutines.
//
// Exactly one goroutine, locked to its OS thread, owns the canvas
// backend: it runs a select loop over three sources - bridged
// operations submitted by Run, a render ticker that drains the
// deferred action queue and wakes frame waiters, and the backend's
// input event channel. Nothing outside this goroutine touches the
// backend. Caller goroutines interact through the action queue
// (fire-and-forget drawing), the synchronous bridge (blocking
// interactive calls), the frame clock (pacing), and the device
// snapshot (non-blocking key/button reads).
package loop

import (
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/veselink1/SGL/canvas"
)

// Config carries the initial session parameters.
type Config struct {
	Title     string
	Range     float64 // logical half-extent of the shorter axis
	TargetFPS int
	Logger    *slog.Logger // nil disables logging
}

// Loop is a running UI session.
type Loop struct {
	backend canvas.Backend
	log     *slog.Logger

	funcQ   chan func()
	actions actionQueue
	clock   *frameClock
	devs    *deviceState

	tr atomic.Pointer[canvas.Transform]

	mu      sync.Mutex
	pending map[uint64]func(error)
	nextID  uint64
	closed  bool

	closedCh chan struct{} // closed when the session transitions to closed
	readyCh  chan struct{} // closed after the first layout and present
	doneCh   chan struct{} // closed when the run loop has fully exited
	quitCh   chan struct{}
	quitOnce sync.Once

	uiGo atomic.Uint64 // goroutine id of the UI goroutine

	// UI-goroutine-only state.
	subs  []*pointerSub
	dirty bool
}

// Start launches the UI goroutine for backend and blocks until the
// window has been laid out and painted once, so the pixel dimensions
// behind the coordinate transform are known before Start returns.
func Start(backend canvas.Backend, cfg Config) (*Loop, error) {
	if backend == nil {
		return nil, fmt.Errorf("loop: nil backend")
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(discardHandler{})
	}
	l := &Loop{
		backend:  backend,
		log:      log,
		funcQ:    make(chan func()),
		clock:    newFrameClock(cfg.TargetFPS),
		devs:     newDeviceState(),
		pending:  make(map[uint64]func(error)),
		closedCh: make(chan struct{}),
		readyCh:  make(chan struct{}),
		doneCh:   make(chan struct{}),
		quitCh:   make(chan struct{}),
	}
	go l.run(cfg)

	select {
	case <-l.readyCh:
		return l, nil
	case <-l.doneCh:
		return nil, fmt.Errorf("loop: session ended before initialization completed")
	}
}

func (l *Loop) run(cfg Config) {
	runtime.LockOSThread()
	l.uiGo.Store(goroutineID())

	w, h := l.backend.Size()
	tr := canvas.NewTransform(cfg.Range, w, h)
	l.setTransform(tr)
	if cfg.Title != "" {
		l.backend.SetTitle(cfg.Title)
	}
	l.backend.Present(tr)
	close(l.readyCh)
	l.log.Info("session started", "width", w, "height", h, "range", tr.Range)

	ticker := time.NewTicker(baseTickInterval)
	defer ticker.Stop()
	events := l.backend.Events()

	for {
		select {
		case f := <-l.funcQ:
			f()
		case <-ticker.C:
			batch := l.actions.drain()
			for _, a := range batch {
				l.runAction(a)
			}
			if len(batch) > 0 {
				l.dirty = true
			}
			if l.dirty {
				l.backend.Present(l.Transform())
				l.dirty = false
			}
			l.clock.tick()
		case ev, ok := <-events:
			if !ok || l.handleEvent(ev) {
				l.shutdown()
				return
			}
		case <-l.quitCh:
			l.shutdown()
			return
		}
	}
}

// handleEvent processes one input event on the UI goroutine. It
// reports whether the session should shut down.
func (l *Loop) handleEvent(ev canvas.Event) (quit bool) {
	l.trackDevices(ev)

	// Window state is kept current regardless of an open dialog: a
	// resize or zoom arriving mid-dialog must still reach the
	// transform, or every later paint and coordinate mapping uses
	// stale pixel dimensions.
	switch e := ev.(type) {
	case canvas.MouseWheel:
		factor := 1.1
		if e.Delta < 0 {
			factor = 1 / 1.1
		}
		l.setTransform(l.Transform().Zoomed(factor))
		l.dirty = true
		return false
	case canvas.Resize:
		l.setTransform(l.Transform().Resized(e.Width, e.Height))
		l.dirty = true
		return false
	}

	if l.backend.DialogOpen() {
		if _, isClose := ev.(canvas.CloseRequest); isClose {
			// A close while a dialog is open is suppressed so the
			// dialog cannot be orphaned mid-interaction.
			l.log.Debug("close request suppressed while dialog open")
			return false
		}
		l.backend.HandleDialogEvent(ev)
		l.dirty = true
		return false
	}

	switch e := ev.(type) {
	case canvas.MouseMove:
		for _, s := range l.subs {
			if s.move != nil {
				s.move(e.X, e.Y)
			}
		}
	case canvas.MousePress:
		for _, s := range append([]*pointerSub(nil), l.subs...) {
			if s.click != nil && s.click(e.X, e.Y, e.Button) {
				l.removeSub(s)
			}
		}
	case canvas.CloseRequest:
		return true
	}
	return false
}

// trackDevices keeps the input snapshot current.
func (l *Loop) trackDevices(ev canvas.Event) {
	switch e := ev.(type) {
	case canvas.KeyPress:
		l.devs.setKey(e.Key, true)
	case canvas.KeyRelease:
		l.devs.setKey(e.Key, false)
	case canvas.MousePress:
		l.devs.setButton(e.Button, true)
	case canvas.MouseRelease:
		l.devs.setButton(e.Button, false)
	case canvas.FocusLost:
		l.devs.reset()
	}
}

func (l *Loop) removeSub(sub *pointerSub) {
	for i, s := range l.subs {
		if s == sub {
			l.subs = append(l.subs[:i], l.subs[i+1:]...)
			return
		}
	}
}

// runAction executes one queued drawing action. A failure is caught,
// surfaced as a non-fatal notice, and does not abort the rest of the
// batch: the original caller returned long ago, so the error cannot
// propagate to it.
func (l *Loop) runAction(a func()) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error("queued drawing action failed", "panic", r)
			if !l.backend.DialogOpen() {
				l.backend.ShowNotice(fmt.Sprintf("drawing failed: %v", r), func() {})
			}
		}
	}()
	a()
}

// shutdown transitions the session to closed exactly once: it cancels
// every pending bridged call, wakes current frame waiters, and tears
// down the backend. Runs on the UI goroutine.
func (l *Loop) shutdown() {
	l.mu.Lock()
	l.closed = true
	pending := l.pending
	l.pending = nil
	close(l.closedCh)
	l.mu.Unlock()

	for _, cancel := range pending {
		cancel(ErrCanceled)
	}
	l.subs = nil
	l.actions.drain() // discard actions that raced the close
	l.clock.tick()
	if err := l.backend.Close(); err != nil {
		l.log.Warn("backend close failed", "err", err)
	}
	l.log.Info("session closed")
	close(l.doneCh)
}

// Post enqueues a drawing action to run on the UI goroutine during the
// next frame tick. It never blocks and preserves enqueue order. Once
// the session has closed nothing drains the queue, so the action is
// dropped instead of retained.
func (l *Loop) Post(f func()) {
	if l.Closed() {
		return
	}
	l.actions.enqueue(f)
}

// submit hands f to the UI goroutine's dispatch queue, reporting false
// if the session closed first.
func (l *Loop) submit(f func()) bool {
	select {
	case l.funcQ <- f:
		return true
	case <-l.closedCh:
		return false
	}
}

// registerPending records a cancellation hook for an in-flight bridged
// call. The second result is false when the session is already closed.
func (l *Loop) registerPending(cancel func(error)) (unregister func(), ok bool) {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil, false
	}
	l.nextID++
	id := l.nextID
	l.pending[id] = cancel
	l.mu.Unlock()
	return func() {
		l.mu.Lock()
		delete(l.pending, id)
		l.mu.Unlock()
	}, true
}

func (l *Loop) ready() bool {
	select {
	case <-l.readyCh:
		return true
	default:
		return false
	}
}

// Closed reports whether the session has shut down.
func (l *Loop) Closed() bool {
	select {
	case <-l.closedCh:
		return true
	default:
		return false
	}
}

// Stop requests an orderly shutdown, as if the window were closed.
func (l *Loop) Stop() {
	l.quitOnce.Do(func() { close(l.quitCh) })
}

// WaitForExit blocks until the UI goroutine has fully exited.
func (l *Loop) WaitForExit() {
	<-l.doneCh
}

// Transform returns the current logical-to-pixel transform.
func (l *Loop) Transform() canvas.Transform {
	return *l.tr.Load()
}

func (l *Loop) setTransform(tr canvas.Transform) {
	l.tr.Store(&tr)
}

// SetRange replaces the logical half-extent of the shorter axis on the
// next frame tick. Non-positive values are ignored.
func (l *Loop) SetRange(r float64) {
	if r <= 0 {
		return
	}
	l.Post(func() {
		tr := l.Transform()
		tr.Range = r
		l.setTransform(tr)
	})
}

// KeyDown reports whether k is held, without blocking.
func (l *Loop) KeyDown(k canvas.Key) bool {
	return l.devs.keyDown(k)
}

// ButtonDown reports whether b is held, without blocking.
func (l *Loop) ButtonDown(b canvas.Button) bool {
	return l.devs.buttonDown(b)
}

// SetTargetFPS clamps fps to [MinFPS, MaxFPS]; the change takes effect
// on the next WaitForUpdate.
func (l *Loop) SetTargetFPS(fps int) {
	l.clock.setTargetFPS(fps)
}

// TargetFPS returns the effective frame-rate target.
func (l *Loop) TargetFPS() int {
	return l.clock.targetFPSValue()
}

// DeltaTime returns the interval measured by the latest WaitForUpdate.
func (l *Loop) DeltaTime() time.Duration {
	return l.clock.deltaTime()
}

// Elapsed returns the cumulative time accumulated across WaitForUpdate
// calls, unaffected by blocking calls in between.
func (l *Loop) Elapsed() time.Duration {
	return l.clock.elapsedTime()
}

// WaitForUpdate blocks the calling goroutine until the next frame
// tick, paced so the measured delta never undercuts the target frame
// interval. It returns ErrCanceled once the session has closed.
func (l *Loop) WaitForUpdate() (time.Duration, error) {
	if !l.ready() {
		return 0, ErrNotReady
	}
	if goroutineID() == l.uiGo.Load() {
		return 0, ErrUIGoroutine
	}
	if l.Closed() {
		return 0, ErrCanceled
	}
	l.clock.waitFrame(l.clock.targetInterval(), l.closedCh)
	if l.Closed() {
		return 0, ErrCanceled
	}
	d := l.clock.account(l.closedCh)
	if l.Closed() {
		return 0, ErrCanceled
	}
	return d, nil
}

package loop

import (
	"errors"
	"fmt"

	"github.com/veselink1/SGL/canvas"
)

// Errors returned by blocking operations.
var (
	// ErrCanceled reports an interactive call abandoned because the
	// session closed before the interaction completed.
	ErrCanceled = errors.New("loop: canceled")

	// ErrNotReady reports a blocking call attempted before the session
	// finished initializing.
	ErrNotReady = errors.New("loop: session not ready")

	// ErrUIGoroutine reports a blocking call made from the UI goroutine
	// itself, which would deadlock the render tick meant to wake it.
	ErrUIGoroutine = errors.New("loop: blocking call on UI goroutine")
)

// promise is a single-assignment result slot with a completion signal.
// One goroutine writes it (resolve or cancel, whichever comes first),
// one goroutine reads it. Subsequent writes are ignored.
type promise[T any] struct {
	once chan struct{} // closed exactly once, guarded by winner
	done chan struct{}
	val  T
	err  error
}

func newPromise[T any]() *promise[T] {
	return &promise[T]{once: make(chan struct{}, 1), done: make(chan struct{})}
}

// claim reports whether the caller won the right to complete the
// promise. At most one claim ever succeeds.
func (p *promise[T]) claim() bool {
	select {
	case p.once <- struct{}{}:
		return true
	default:
		return false
	}
}

func (p *promise[T]) resolve(v T) {
	if p.claim() {
		p.val = v
		close(p.done)
	}
}

func (p *promise[T]) cancel(err error) {
	if p.claim() {
		p.err = err
		close(p.done)
	}
}

// await blocks until the promise is completed.
func (p *promise[T]) await() (T, error) {
	<-p.done
	return p.val, p.err
}

// Ctx is the view of the session handed to a bridged operation while
// it runs on the UI goroutine.
type Ctx struct {
	loop  *Loop
	armed []*pointerSub
}

// Backend returns the session's canvas backend.
func (c *Ctx) Backend() canvas.Backend {
	return c.loop.backend
}

// Transform returns the current logical-to-pixel transform.
func (c *Ctx) Transform() canvas.Transform {
	return c.loop.Transform()
}

// MarkDirty schedules a repaint on the next frame tick.
func (c *Ctx) MarkDirty() {
	c.loop.dirty = true
}

// ArmPointer installs a temporary pointer subscription. move fires on
// every mouse move; click fires on every press and disarms the
// subscription when it returns true. The returned disarm function may
// be called from UI-goroutine code on any exit path; disarming twice
// is harmless. All armed subscriptions are dropped at shutdown.
func (c *Ctx) ArmPointer(move func(x, y int), click func(x, y int, b canvas.Button) bool) (disarm func()) {
	sub := &pointerSub{move: move, click: click}
	l := c.loop
	l.subs = append(l.subs, sub)
	c.armed = append(c.armed, sub)
	return func() { l.removeSub(sub) }
}

// disarmAll drops every subscription the operation armed. It backs
// the panic path of Run, so an abandoned operation cannot leave
// handlers firing until shutdown.
func (c *Ctx) disarmAll() {
	for _, sub := range c.armed {
		c.loop.removeSub(sub)
	}
	c.armed = nil
}

// pointerSub is a temporarily-armed pointer event handler pair.
type pointerSub struct {
	move  func(x, y int)
	click func(x, y int, b canvas.Button) bool
}

// Run is the synchronous bridge: it dispatches op to the UI goroutine
// and blocks the calling goroutine until op calls resolve, or until
// the session shuts down, in which case it returns ErrCanceled.
//
// op always runs on the UI goroutine, never inline on the caller, so
// every operation observes one execution-order point of reference. It
// may resolve synchronously or hand resolve to event-driven callbacks
// (dialog buttons, armed pointer subscriptions) that fire later. Only
// the first resolution counts.
func Run[T any](l *Loop, op func(ctx *Ctx, resolve func(T))) (T, error) {
	var zero T
	if !l.ready() {
		return zero, ErrNotReady
	}
	if goroutineID() == l.uiGo.Load() {
		return zero, ErrUIGoroutine
	}

	p := newPromise[T]()
	unregister, ok := l.registerPending(func(err error) { p.cancel(err) })
	if !ok {
		return zero, ErrCanceled
	}
	defer unregister()

	submitted := l.submit(func() {
		ctx := &Ctx{loop: l}
		defer func() {
			if r := recover(); r != nil {
				l.log.Error("bridged operation failed", "panic", r)
				ctx.disarmAll()
				p.cancel(fmt.Errorf("loop: operation panic: %v", r))
			}
		}()
		op(ctx, p.resolve)
	})
	if !submitted {
		return zero, ErrCanceled
	}
	return p.await()
}

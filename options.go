package sgl

import (
	"log/slog"

	"github.com/veselink1/SGL/canvas"
)

type config struct {
	title   string
	width   int
	height  int
	rng     float64
	fps     int
	backend canvas.Backend
	logger  *slog.Logger
}

func defaultConfig() config {
	return config{
		title:  "SGL",
		width:  800,
		height: 600,
		rng:    10,
		fps:    60,
		logger: Logger(),
	}
}

// An Option configures a Window at Open time.
type Option func(*config)

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(c *config) { c.title = title }
}

// WithSize sets the window's pixel dimensions. Ignored when a custom
// backend supplies its own size.
func WithSize(width, height int) Option {
	return func(c *config) { c.width, c.height = width, height }
}

// WithRange sets the logical half-extent of the shorter window axis.
// The default is 10, so the shorter axis spans [-10, 10].
func WithRange(r float64) Option {
	return func(c *config) { c.rng = r }
}

// WithTargetFPS sets the frame-rate target used by WaitForUpdate,
// clamped to [1, 60]. The default is 60.
func WithTargetFPS(fps int) Option {
	return func(c *config) { c.fps = fps }
}

// WithBackend substitutes the canvas backend, replacing the default
// on-screen window. Tests use this with a memcanvas.Canvas.
func WithBackend(b canvas.Backend) Option {
	return func(c *config) { c.backend = b }
}

// WithLogger overrides the package logger for this window only.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

package bubblepop

import "time"

// Transition selects how an alert enters and leaves the surface.
type Transition int

const (
	// TransitionSlide moves the alert in from a screen edge.
	TransitionSlide Transition = iota
	// TransitionFade steps the alert between hidden and fully drawn in place.
	TransitionFade
)

// Edge is the screen edge a sliding alert travels from.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Level indicates the severity of an alert
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// DefaultAutoDismissAfter is the auto-dismiss interval used when a Config
// enables auto-dismiss without setting one.
const DefaultAutoDismissAfter = time.Second

// Config describes one alert's display preferences and carries its
// visibility intent. Create one per view with NewConfig and keep the
// pointer: the same value is shared between the presenting code and the
// Model the alert is attached to.
//
// Present and Dismiss are the only caller-facing mutators. They record
// intent and emit a change notification; the Model attached to the Config
// reacts on its next update, so neither call shows or hides anything
// synchronously.
type Config struct {
	// DimBackground dims the view behind the alert while it is shown.
	DimBackground bool

	// DisableOutsideClick keeps clicks on the dimmed background (and the
	// default dismiss key) from dismissing the alert.
	DisableOutsideClick bool

	// Transition selects the enter/exit treatment; Edge applies to
	// TransitionSlide only.
	Transition Transition
	Edge       Edge

	// Level picks the alert's accent styling.
	Level Level

	// Title is rendered above the content inside the alert box when set.
	Title string

	// AutoDismiss dismisses the alert AutoDismissAfter after it becomes
	// active, unless it is dismissed manually first.
	AutoDismiss      bool
	AutoDismissAfter time.Duration

	requested bool
	shown     bool
	changes   chan struct{}
}

// Option configures a Config at construction time.
type Option func(*Config)

// WithTransition sets the enter/exit transition.
func WithTransition(t Transition) Option {
	return func(c *Config) { c.Transition = t }
}

// WithEdge sets the edge a sliding alert travels from.
func WithEdge(e Edge) Option {
	return func(c *Config) { c.Edge = e }
}

// WithLevel sets the alert's severity level.
func WithLevel(l Level) Option {
	return func(c *Config) { c.Level = l }
}

// WithTitle sets a title line rendered inside the alert box.
func WithTitle(title string) Option {
	return func(c *Config) { c.Title = title }
}

// WithAutoDismiss enables timer-driven dismissal after d. A non-positive d
// falls back to DefaultAutoDismissAfter.
func WithAutoDismiss(d time.Duration) Option {
	return func(c *Config) {
		c.AutoDismiss = true
		if d > 0 {
			c.AutoDismissAfter = d
		}
	}
}

// WithOutsideDismiss lets a click outside the alert box (or the dismiss
// key) dismiss it.
func WithOutsideDismiss() Option {
	return func(c *Config) { c.DisableOutsideClick = false }
}

// WithoutBackgroundDim leaves the view behind the alert undimmed.
func WithoutBackgroundDim() Option {
	return func(c *Config) { c.DimBackground = false }
}

// NewConfig creates a Config with safe defaults: dimmed background, outside
// clicks ignored, slide transition from the bottom edge, no auto-dismiss.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		DimBackground:       true,
		DisableOutsideClick: true,
		Transition:          TransitionSlide,
		Edge:                EdgeBottom,
		AutoDismissAfter:    DefaultAutoDismissAfter,
		changes:             make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Present requests that the alert be shown. Safe to call repeatedly.
func (c *Config) Present() { c.setRequested(true) }

// Dismiss requests that the alert be hidden. Safe to call repeatedly; extra
// calls while the alert is already leaving have no further effect.
func (c *Config) Dismiss() { c.setRequested(false) }

// Presented reports the caller's current intent, as set by Present and
// Dismiss.
func (c *Config) Presented() bool { return c.requested }

// Shown reports whether the alert is on its way in or fully visible. It
// turns true only once the alert is the front overlay, and turns false
// when the exit transition starts, before the overlay is torn down.
func (c *Config) Shown() bool { return c.shown }

func (c *Config) setRequested(v bool) {
	c.requested = v
	c.notify()
}

func (c *Config) setShown(v bool) { c.shown = v }

// notify emits a coalesced change notification. Several mutations between
// deliveries collapse into one; the subscriber re-reads current flags, so
// nothing is lost.
func (c *Config) notify() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

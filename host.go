package bubblepop

import (
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// overlay is one registered alert: its tag, its configuration, and the
// content model rendered inside the box while it is active.
type overlay struct {
	tag     int
	cfg     *Config
	content tea.Model
}

// Host owns the overlay surface for one program and the queue of alerts
// competing for it. Create exactly one per top-level window and pass it to
// New; every alert attached to that Model shares it.
//
// The surface counts as attached once the host has learned the window size.
// Alerts presented before that are dropped silently, matching the behavior
// of presenting before a window exists.
type Host struct {
	nextTag int
	active  *overlay
	pending []*overlay // FIFO; never reordered

	width  int
	height int

	zones  *zone.Manager
	logger *slog.Logger
}

// HostOption configures a Host at construction time.
type HostOption func(*Host)

// WithLogger sets the logger for overlay lifecycle events. The default
// discards everything.
func WithLogger(l *slog.Logger) HostOption {
	return func(h *Host) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithZoneManager replaces the host's mouse-zone manager. Pass the
// program-wide manager when the embedding app already marks and scans its
// own views.
func WithZoneManager(m *zone.Manager) HostOption {
	return func(h *Host) {
		if m != nil {
			h.zones = m
		}
	}
}

// NewHost creates an overlay host with no surface attached yet.
func NewHost(opts ...HostOption) *Host {
	h := &Host{
		zones:  zone.New(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SetSize attaches or resizes the surface. The wrapping Model calls this on
// every tea.WindowSizeMsg.
func (h *Host) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// Size returns the surface dimensions.
func (h *Host) Size() (width, height int) { return h.width, h.height }

// Attached reports whether a surface is available to draw on.
func (h *Host) Attached() bool { return h.width > 0 && h.height > 0 }

// Visible reports whether the surface is shown and consuming input. It is
// true exactly while at least one alert is active or pending: a pending
// alert implies an active one, because registration activates immediately
// when the host is idle and Advance promotes before hiding.
func (h *Host) Visible() bool { return h.active != nil }

// ActiveTag returns the tag of the active overlay, or 0 when idle.
func (h *Host) ActiveTag() int {
	if h.active == nil {
		return 0
	}
	return h.active.tag
}

// QueueLen returns the number of pending overlays.
func (h *Host) QueueLen() int { return len(h.pending) }

// Register allocates a tag for the alert and either makes it the active
// overlay (host was idle) or appends it to the pending queue. Tags increase
// monotonically and are never reused, so a caller can identify its overlay
// later even amid overlapping requests.
//
// If no surface is attached yet the request is dropped and tag 0 is
// returned; there is no recoverable action mid-cycle, so no error either.
func (h *Host) Register(cfg *Config, content tea.Model) (tag int, active bool) {
	if !h.Attached() {
		h.logger.Debug("alert dropped, no surface attached")
		return 0, false
	}

	h.nextTag++
	ov := &overlay{tag: h.nextTag, cfg: cfg, content: content}

	if h.active == nil {
		h.active = ov
		h.logger.Debug("alert active", "tag", ov.tag)
		return ov.tag, true
	}

	h.pending = append(h.pending, ov)
	h.logger.Debug("alert queued", "tag", ov.tag, "queue_len", len(h.pending))
	return ov.tag, false
}

// Advance tears down the active overlay once its exit transition has
// finished. The first pending overlay, if any, is promoted in its place;
// otherwise the surface goes idle and stops drawing and consuming input.
// Returns the promoted overlay's tag, or 0 when the host went idle.
func (h *Host) Advance() int {
	if h.active == nil {
		return 0
	}
	closed := h.active.tag
	h.active = nil

	if len(h.pending) == 0 {
		h.logger.Debug("surface hidden", "tag", closed)
		return 0
	}

	h.active = h.pending[0]
	h.pending = h.pending[1:]
	h.logger.Debug("alert promoted", "tag", h.active.tag, "queue_len", len(h.pending))
	return h.active.tag
}

// CancelPending removes a not-yet-active overlay from the queue. Used when
// an alert is dismissed before it ever became active: it never animated in,
// so no exit transition is owed.
func (h *Host) CancelPending(tag int) bool {
	for i, ov := range h.pending {
		if ov.tag == tag {
			h.pending = append(h.pending[:i], h.pending[i+1:]...)
			h.logger.Debug("alert canceled", "tag", tag, "queue_len", len(h.pending))
			return true
		}
	}
	return false
}

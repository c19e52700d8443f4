// Package bubblepop presents transient alert overlays above a Bubble Tea
// model. Alerts are declared with a Config, presented and dismissed by
// flipping that Config's intent, and drawn on a single always-on-top
// surface owned by a per-program Host. Alerts requested while another is
// visible wait in a FIFO queue and take the surface over one at a time.
package bubblepop

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// attachState tracks one attachment through its lifecycle:
// idle → queued|active → exiting → idle, with queued → idle on
// cancel-before-active.
type attachState int

const (
	stateIdle attachState = iota
	stateQueued
	stateActive
	stateExiting
)

// attachment binds one Config and its content template to the host.
type attachment struct {
	cfg     *Config
	content tea.Model
	state   attachState
	tag     int

	// gen invalidates in-flight auto-dismiss timers: a timer fired for an
	// older generation is ignored.
	gen int

	anim anim
	// animating is true while a frame loop is scheduled, so retargeting the
	// spring mid-flight does not start a second loop.
	animating bool
}

// Model layers alert overlays above an inner model. Wrap the program's root
// model with New, attach each alert with Attach, and run the wrapper as
// usual; while no alert is visible the wrapper is transparent.
type Model struct {
	inner       tea.Model
	host        *Host
	attachments []*attachment
	styles      *Styles
	keys        KeyMap
}

// New wraps inner so that alerts attached with Attach render above it,
// hosted on host.
func New(inner tea.Model, host *Host) Model {
	return Model{
		inner:  inner,
		host:   host,
		styles: NewStyles(),
		keys:   DefaultKeyMap(),
	}
}

// Attach binds cfg and the content rendered while it is presented. The
// returned Model replaces the receiver. Content is used as a template: each
// presentation starts from the model given here.
func (m Model) Attach(cfg *Config, content tea.Model) Model {
	m.attachments = append(m.attachments, &attachment{cfg: cfg, content: content})
	return m
}

// SetStyles overrides the overlay styling.
func (m *Model) SetStyles(s *Styles) {
	if s != nil {
		m.styles = s
	}
}

// SetKeyMap overrides the overlay keybindings.
func (m *Model) SetKeyMap(k KeyMap) { m.keys = k }

// Inner returns the wrapped model.
func (m Model) Inner() tea.Model { return m.inner }

// Host returns the overlay host this model draws on.
func (m Model) Host() *Host { return m.host }

// Init initializes the wrapped model, every attached content template, and
// the change subscriptions for every attached Config.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.inner.Init()}
	for _, a := range m.attachments {
		if a.content != nil {
			cmds = append(cmds, a.content.Init())
		}
		cmds = append(cmds, watchConfig(a.cfg))
	}
	return tea.Batch(cmds...)
}

// Update drives the overlay lifecycle and routes input. While the surface
// is visible, key and mouse input belongs to the overlay layer and never
// reaches the wrapped model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.host.SetSize(msg.Width, msg.Height)
		return m.forward(msg)

	case configChangedMsg:
		cmd := m.reconcile(m.attachmentFor(msg.cfg))
		return m, tea.Batch(cmd, watchConfig(msg.cfg))

	case exitElapsedMsg:
		return m, m.finishExit(msg.tag)

	case autoDismissMsg:
		if a := m.attachmentByTag(msg.tag); a != nil && a.state == stateActive && a.gen == msg.gen {
			a.cfg.Dismiss()
		}
		return m, nil

	case frameMsg:
		return m, m.stepFrame(msg.tag)

	case tea.KeyMsg:
		if m.host.Visible() {
			return m, m.overlayKey(msg)
		}

	case tea.MouseMsg:
		if m.host.Visible() {
			return m, m.overlayMouse(msg)
		}
	}

	return m.forward(msg)
}

// View renders the wrapped model with the overlay surface above it when
// visible.
func (m Model) View() string {
	base := m.inner.View()
	if !m.host.Visible() {
		return base
	}
	return m.host.zones.Scan(m.renderSurface(base))
}

// forward delivers a message to the wrapped model and, when an alert is
// active, to its live content as well, so async results reach both.
func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	inner, cmd := m.inner.Update(msg)
	m.inner = inner
	cmds = append(cmds, cmd)

	if ov := m.host.active; ov != nil && ov.content != nil {
		content, ccmd := ov.content.Update(msg)
		ov.content = content
		cmds = append(cmds, ccmd)
	}

	return m, tea.Batch(cmds...)
}

// reconcile compares an attachment's state with its Config's intent and
// moves the state machine. Notifications are coalesced, so this reads the
// current flags rather than replaying events.
func (m Model) reconcile(a *attachment) tea.Cmd {
	if a == nil {
		return nil
	}

	switch {
	case a.cfg.Presented() && a.state == stateIdle:
		tag, active := m.host.Register(a.cfg, a.content)
		if tag == 0 {
			// No surface attached yet; the request is dropped.
			return nil
		}
		a.tag = tag
		if active {
			return m.activate(a)
		}
		a.state = stateQueued
		return nil

	case !a.cfg.Presented() && a.state == stateActive:
		a.cfg.setShown(false)
		a.state = stateExiting
		a.gen++
		a.anim.to(0)
		cmds := []tea.Cmd{exitElapsed(a.tag)}
		if !a.animating {
			a.animating = true
			cmds = append(cmds, nextFrame(a.tag))
		}
		return tea.Batch(cmds...)

	case !a.cfg.Presented() && a.state == stateQueued:
		// Never animated in, so it owes no exit transition: just drop it.
		m.host.CancelPending(a.tag)
		a.state = stateIdle
		a.tag = 0
	}

	return nil
}

// activate marks an attachment as the front overlay and starts its entry
// animation and, if configured, its auto-dismiss timer.
func (m Model) activate(a *attachment) tea.Cmd {
	a.state = stateActive
	a.cfg.setShown(true)
	a.anim = newAnim()
	a.anim.to(1)
	a.animating = true

	cmds := []tea.Cmd{nextFrame(a.tag)}
	if a.cfg.AutoDismiss {
		cmds = append(cmds, autoDismissAfter(a.tag, a.gen, a.cfg.AutoDismissAfter))
	}
	return tea.Batch(cmds...)
}

// finishExit runs when an alert's exit transition has elapsed: the host
// advances, the next queued alert (if any) becomes active, and an alert
// that was re-presented mid-exit is registered again.
func (m Model) finishExit(tag int) tea.Cmd {
	a := m.attachmentByTag(tag)
	if a == nil || a.state != stateExiting {
		return nil
	}

	promoted := m.host.Advance()
	a.state = stateIdle
	a.tag = 0

	var cmds []tea.Cmd
	if next := m.attachmentByTag(promoted); next != nil {
		cmds = append(cmds, m.activate(next))
	}
	if a.cfg.Presented() {
		cmds = append(cmds, m.reconcile(a))
	}
	return tea.Batch(cmds...)
}

// stepFrame advances the transition animation for the overlay with the
// given tag, scheduling another frame until the spring settles.
func (m Model) stepFrame(tag int) tea.Cmd {
	a := m.attachmentByTag(tag)
	if a == nil || (a.state != stateActive && a.state != stateExiting) {
		return nil
	}

	a.anim.step()
	if a.anim.settled() {
		a.anim.snap(a.anim.target)
		a.animating = false
		return nil
	}
	return nextFrame(tag)
}

// overlayKey handles keys while the surface is visible: the dismiss key
// closes the alert when outside dismissal is allowed, everything else goes
// to the active content.
func (m Model) overlayKey(msg tea.KeyMsg) tea.Cmd {
	ov := m.host.active
	if ov == nil {
		return nil
	}

	if key.Matches(msg, m.keys.Dismiss) && !ov.cfg.DisableOutsideClick {
		ov.cfg.Dismiss()
		return nil
	}

	if ov.content == nil {
		return nil
	}
	content, cmd := ov.content.Update(msg)
	ov.content = content
	return cmd
}

// overlayMouse handles mouse input while the surface is visible. Clicks
// inside the alert box go to its content; a left release outside dismisses
// the alert unless the Config forbids it.
func (m Model) overlayMouse(msg tea.MouseMsg) tea.Cmd {
	ov := m.host.active
	if ov == nil {
		return nil
	}

	z := m.host.zones.Get(alertZoneID)
	inside := z != nil && z.InBounds(msg)
	if inside {
		if ov.content == nil {
			return nil
		}
		content, cmd := ov.content.Update(msg)
		ov.content = content
		return cmd
	}

	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft &&
		!ov.cfg.DisableOutsideClick && ov.cfg.Shown() {
		ov.cfg.Dismiss()
	}
	return nil
}

func (m Model) attachmentFor(cfg *Config) *attachment {
	for _, a := range m.attachments {
		if a.cfg == cfg {
			return a
		}
	}
	return nil
}

func (m Model) attachmentByTag(tag int) *attachment {
	if tag == 0 {
		return nil
	}
	for _, a := range m.attachments {
		if a.tag == tag {
			return a
		}
	}
	return nil
}

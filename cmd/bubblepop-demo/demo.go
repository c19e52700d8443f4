package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/calverley/bubblepop"
)

type keyMap struct {
	Notice key.Binding
	Sticky key.Binding
	Burst  key.Binding
	Quit   key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Notice, k.Sticky, k.Burst, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Notice, k.Sticky}, {k.Burst, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Notice: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notice (auto-dismiss)"),
		),
		Sticky: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "sticky alert"),
		),
		Burst: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "burst of three"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// demoModel is the inner model the alerts are layered above.
type demoModel struct {
	keys   keyMap
	help   help.Model
	notice *bubblepop.Config
	sticky *bubblepop.Config
	burst  []*bubblepop.Config
	width  int
	height int
}

func (m demoModel) Init() tea.Cmd { return nil }

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Notice):
			m.notice.Present()
		case key.Matches(msg, m.keys.Sticky):
			m.sticky.Present()
		case key.Matches(msg, m.keys.Burst):
			for _, cfg := range m.burst {
				cfg.Present()
			}
		}
	}
	return m, nil
}

func (m demoModel) View() string {
	title := lipgloss.NewStyle().Bold(true).Render("bubblepop demo")
	body := "Press a key to present an alert. Alerts requested while another\n" +
		"is visible wait their turn in a first-in-first-out queue."

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		body,
		"",
		m.help.View(m.keys),
	)

	if m.width == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// noteContent is static alert content.
type noteContent struct {
	text string
}

func (n noteContent) Init() tea.Cmd { return nil }

func (n noteContent) Update(tea.Msg) (tea.Model, tea.Cmd) { return n, nil }

func (n noteContent) View() string { return n.text }

// stickyContent requires an explicit acknowledgement: it owns its Config
// and dismisses itself, the overlay layer won't.
type stickyContent struct {
	cfg *bubblepop.Config
}

func (s stickyContent) Init() tea.Cmd { return nil }

func (s stickyContent) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
		s.cfg.Dismiss()
	}
	return s, nil
}

func (s stickyContent) View() string {
	return "This alert ignores outside clicks.\n\nPress enter to acknowledge."
}

// newDemo builds the inner model, its alert configurations, and the
// wrapping overlay model.
func newDemo(host *bubblepop.Host, tr bubblepop.Transition, ed bubblepop.Edge, interval time.Duration) bubblepop.Model {
	notice := bubblepop.NewConfig(
		bubblepop.WithTitle("Notice"),
		bubblepop.WithTransition(tr),
		bubblepop.WithEdge(ed),
		bubblepop.WithAutoDismiss(interval),
		bubblepop.WithOutsideDismiss(),
	)

	sticky := bubblepop.NewConfig(
		bubblepop.WithTitle("Action required"),
		bubblepop.WithLevel(bubblepop.LevelError),
		bubblepop.WithTransition(bubblepop.TransitionFade),
	)

	levels := []bubblepop.Level{
		bubblepop.LevelSuccess,
		bubblepop.LevelWarning,
		bubblepop.LevelInfo,
	}
	burst := make([]*bubblepop.Config, len(levels))
	for i, level := range levels {
		burst[i] = bubblepop.NewConfig(
			bubblepop.WithTitle(fmt.Sprintf("Queued %d of %d", i+1, len(levels))),
			bubblepop.WithLevel(level),
			bubblepop.WithTransition(tr),
			bubblepop.WithEdge(ed),
			bubblepop.WithAutoDismiss(1500*time.Millisecond),
			bubblepop.WithOutsideDismiss(),
		)
	}

	inner := demoModel{
		keys:   defaultKeyMap(),
		help:   help.New(),
		notice: notice,
		sticky: sticky,
		burst:  burst,
	}

	m := bubblepop.New(inner, host).
		Attach(notice, noteContent{text: "Something happened, but it can wait."}).
		Attach(sticky, stickyContent{cfg: sticky})
	for i, cfg := range burst {
		m = m.Attach(cfg, noteContent{text: fmt.Sprintf("Alert %d took its turn.", i+1)})
	}
	return m
}

package bubblepop

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// configChangedMsg is delivered after a Config's Present or Dismiss runs.
type configChangedMsg struct {
	cfg *Config
}

// exitElapsedMsg fires once ExitDuration has passed after an alert started
// leaving, so the queue may advance.
type exitElapsedMsg struct {
	tag int
}

// autoDismissMsg fires when an active alert's auto-dismiss interval
// elapses. gen guards against timers outliving a manual dismissal.
type autoDismissMsg struct {
	tag int
	gen int
}

// frameMsg advances an alert's transition animation by one frame.
type frameMsg struct {
	tag int
}

// watchConfig subscribes to a Config's change channel. Re-issued after each
// delivery so the Model keeps observing for the life of the program.
func watchConfig(cfg *Config) tea.Cmd {
	return func() tea.Msg {
		<-cfg.changes
		return configChangedMsg{cfg: cfg}
	}
}

func exitElapsed(tag int) tea.Cmd {
	return tea.Tick(ExitDuration, func(time.Time) tea.Msg {
		return exitElapsedMsg{tag: tag}
	})
}

func autoDismissAfter(tag, gen int, d time.Duration) tea.Cmd {
	if d <= 0 {
		d = DefaultAutoDismissAfter
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return autoDismissMsg{tag: tag, gen: gen}
	})
}

func nextFrame(tag int) tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg {
		return frameMsg{tag: tag}
	})
}

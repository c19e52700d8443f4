package bubblepop

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	assert.True(t, cfg.DimBackground, "background should dim by default")
	assert.True(t, cfg.DisableOutsideClick, "outside clicks should be ignored by default")
	assert.Equal(t, TransitionSlide, cfg.Transition, "default transition should be slide")
	assert.Equal(t, EdgeBottom, cfg.Edge, "default edge should be bottom")
	assert.Equal(t, LevelInfo, cfg.Level, "default level should be info")
	assert.False(t, cfg.AutoDismiss, "auto-dismiss should be off by default")
	assert.Equal(t, DefaultAutoDismissAfter, cfg.AutoDismissAfter, "default interval should be set")
	assert.False(t, cfg.Presented(), "new config should not be presented")
	assert.False(t, cfg.Shown(), "new config should not be shown")
}

func TestNewConfig_Options(t *testing.T) {
	cfg := NewConfig(
		WithTransition(TransitionFade),
		WithEdge(EdgeTop),
		WithLevel(LevelError),
		WithTitle("Heads up"),
		WithAutoDismiss(2*time.Second),
		WithOutsideDismiss(),
		WithoutBackgroundDim(),
	)

	assert.Equal(t, TransitionFade, cfg.Transition)
	assert.Equal(t, EdgeTop, cfg.Edge)
	assert.Equal(t, LevelError, cfg.Level)
	assert.Equal(t, "Heads up", cfg.Title)
	assert.True(t, cfg.AutoDismiss)
	assert.Equal(t, 2*time.Second, cfg.AutoDismissAfter)
	assert.False(t, cfg.DisableOutsideClick)
	assert.False(t, cfg.DimBackground)
}

func TestConfig_AutoDismissIntervalFallback(t *testing.T) {
	cfg := NewConfig(WithAutoDismiss(0))

	assert.True(t, cfg.AutoDismiss)
	assert.Equal(t, DefaultAutoDismissAfter, cfg.AutoDismissAfter,
		"non-positive interval should keep the default")
}

func TestConfig_PresentDismiss(t *testing.T) {
	cfg := NewConfig()

	cfg.Present()
	assert.True(t, cfg.Presented(), "Present should set intent")

	cfg.Dismiss()
	assert.False(t, cfg.Presented(), "Dismiss should clear intent")

	// Redundant calls are harmless.
	cfg.Dismiss()
	cfg.Dismiss()
	assert.False(t, cfg.Presented())
}

func TestConfig_NotificationEmitted(t *testing.T) {
	cfg := NewConfig()

	cfg.Present()

	select {
	case <-cfg.changes:
	default:
		t.Fatal("Present should emit a change notification")
	}
}

func TestConfig_NotificationsCoalesce(t *testing.T) {
	cfg := NewConfig()

	cfg.Present()
	cfg.Dismiss()
	cfg.Present()

	// One pending notification, not three.
	select {
	case <-cfg.changes:
	default:
		t.Fatal("expected a pending notification")
	}
	select {
	case <-cfg.changes:
		t.Fatal("notifications should coalesce into one")
	default:
	}

	assert.True(t, cfg.Presented(), "flags reflect the latest mutation")
}

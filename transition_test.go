package bubblepop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnim_ConvergesToTarget(t *testing.T) {
	a := newAnim()
	a.to(1)

	for i := 0; i < 300 && !a.settled(); i++ {
		a.step()
	}

	assert.True(t, a.settled(), "spring should settle")
	assert.InDelta(t, 1.0, a.pos, 0.01, "spring should reach its target")
}

func TestAnim_Retarget(t *testing.T) {
	a := newAnim()
	a.to(1)
	for i := 0; i < 300 && !a.settled(); i++ {
		a.step()
	}

	a.to(0)
	for i := 0; i < 300 && !a.settled(); i++ {
		a.step()
	}

	assert.InDelta(t, 0.0, a.pos, 0.01, "spring should return when retargeted")
}

func TestAnim_Snap(t *testing.T) {
	a := newAnim()
	a.to(1)
	a.step()

	a.snap(1)

	assert.True(t, a.settled())
	assert.Equal(t, 1.0, a.pos)
	assert.Equal(t, 1.0, a.progress())
}

func TestAnim_ProgressClamped(t *testing.T) {
	a := newAnim()
	a.pos = 1.2

	assert.Equal(t, 1.0, a.progress(), "overshoot is clamped for rendering")

	a.pos = -0.2
	assert.Equal(t, 0.0, a.progress())
}

func TestBoxPosition(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *Config
		progress float64
		wantX    int
		wantY    int
	}{
		{"fade centered", NewConfig(WithTransition(TransitionFade)), 0.2, 30, 7},
		{"slide settled", NewConfig(WithEdge(EdgeBottom)), 1, 30, 7},
		{"slide bottom start", NewConfig(WithEdge(EdgeBottom)), 0, 30, 24},
		{"slide top start", NewConfig(WithEdge(EdgeTop)), 0, 30, -10},
		{"slide left start", NewConfig(WithEdge(EdgeLeft)), 0, -20, 7},
		{"slide right start", NewConfig(WithEdge(EdgeRight)), 0, 80, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := boxPosition(tt.cfg, tt.progress, 20, 10, 80, 24)
			assert.Equal(t, tt.wantX, x)
			assert.Equal(t, tt.wantY, y)
		})
	}
}

package bubblepop

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// ExitDuration is how long an alert's exit transition runs before the host
// tears it down and the queue advances. Queue timing relies on this
// constant, not on the spring settling.
const ExitDuration = 350 * time.Millisecond

const (
	frameInterval = time.Second / 30

	springFrequency = 6.0
	springDamping   = 0.9
)

// anim interpolates an alert between hidden (0) and shown (1) with a
// spring, driven one step per frameMsg.
type anim struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
	target float64
}

func newAnim() anim {
	return anim{
		spring: harmonica.NewSpring(harmonica.FPS(30), springFrequency, springDamping),
	}
}

func (a *anim) to(target float64) { a.target = target }

func (a *anim) step() {
	a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.target)
}

func (a *anim) settled() bool {
	return math.Abs(a.pos-a.target) < 0.005 && math.Abs(a.vel) < 0.005
}

// snap jumps straight to v, ending the animation.
func (a *anim) snap(v float64) {
	a.pos = v
	a.vel = 0
	a.target = v
}

// progress clamps the spring position to [0, 1] for rendering; an
// underdamped spring overshoots slightly.
func (a *anim) progress() float64 {
	return math.Min(1, math.Max(0, a.pos))
}

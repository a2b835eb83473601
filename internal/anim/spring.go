package anim

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// settleEpsilon is the distance and speed below which a spring snaps to
// its target.
const settleEpsilon = 0.01

// SpringConfig parameterizes a spring. Zero fields take the defaults.
type SpringConfig struct {
	Stiffness float64
	Mass      float64
	// Velocity seeds a spring that starts from rest.
	Velocity float64
}

// DefaultSpringConfig matches a unit mass pulled with stiffness 100 and
// launched at velocity 10.
var DefaultSpringConfig = SpringConfig{Stiffness: 100, Mass: 1, Velocity: 10}

func (c SpringConfig) withDefaults() SpringConfig {
	if c.Stiffness <= 0 {
		c.Stiffness = DefaultSpringConfig.Stiffness
	}
	if c.Mass <= 0 {
		c.Mass = DefaultSpringConfig.Mass
	}
	return c
}

// Spring is a critically damped single-axis spring. The zero value is a
// settled spring at zero with the default configuration.
type Spring struct {
	cfg    SpringConfig
	pos    float64
	vel    float64
	target float64
	active bool

	// spring caches the coefficients for the last frame delta.
	spring harmonica.Spring
	dt     float64
}

// NewSpring returns a spring at rest at initial.
func NewSpring(initial float64, cfg SpringConfig) *Spring {
	return &Spring{cfg: cfg, pos: initial, target: initial}
}

// SetTarget starts, or redirects, the spring toward target. A spring in
// flight keeps its position and velocity; a settled one is launched with
// the configured velocity seed.
func (s *Spring) SetTarget(target float64) {
	if !finite(target) {
		return
	}
	if !s.active {
		s.vel = s.config().Velocity
	}
	s.target = target
	s.active = true
}

// Jump moves the spring to v and settles it there. Non-finite values
// are ignored.
func (s *Spring) Jump(v float64) {
	if !finite(v) {
		return
	}
	s.pos, s.target, s.vel = v, v, 0
	s.active = false
}

// Advance integrates the spring over dt seconds.
func (s *Spring) Advance(dt float64) {
	if !s.active || !validDelta(dt) {
		return
	}
	if dt != s.dt {
		cfg := s.config()
		freq := math.Sqrt(cfg.Stiffness / cfg.Mass)
		s.spring = harmonica.NewSpring(dt, freq, 1)
		s.dt = dt
	}
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, s.target)
	if math.Abs(s.pos-s.target) < settleEpsilon && math.Abs(s.vel) < settleEpsilon {
		s.Jump(s.target)
	}
}

// Value returns the spring's position.
func (s *Spring) Value() float64 { return s.pos }

// Velocity returns the spring's velocity in units per second.
func (s *Spring) Velocity() float64 { return s.vel }

// Target returns the position the spring is heading to.
func (s *Spring) Target() float64 { return s.target }

// Settled reports whether the spring is at rest on its target.
func (s *Spring) Settled() bool { return !s.active }

func (s *Spring) config() SpringConfig {
	return s.cfg.withDefaults()
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

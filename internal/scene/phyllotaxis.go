package scene

import (
	"image/color"

	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/pattern-playground/internal/anim"
	"github.com/iburimskiy/pattern-playground/internal/geom"
	"github.com/iburimskiy/pattern-playground/internal/phyllotaxis"
	"github.com/iburimskiy/pattern-playground/internal/render"
	"github.com/iburimskiy/pattern-playground/internal/touch"
)

// touchReach is how far right of and below the spiral center a tap
// still toggles.
const touchReach = 300

// drawScale enlarges particle radii on screen.
const drawScale = 3

var phyllotaxisBackground = [2]color.RGBA{render.Hex("#1B1B2F"), render.Hex("#162447")}

type particle struct {
	phyllotaxis.Particle
	x, y *anim.Tween
}

// Phyllotaxis toggles a golden-angle spiral between its closed
// formation and the open spiral.
type Phyllotaxis struct {
	layout   phyllotaxis.Layout
	duration float64
	mapper   touch.Spiral

	particles []particle
	rotation  *anim.Tween
	anims     anim.Group
	open      bool
}

// NewPhyllotaxis returns a spiral of count particles. Each toggle moves
// the particles over duration seconds and adds gap radians of rotation.
func NewPhyllotaxis(count int, gap, duration float64) *Phyllotaxis {
	layout := phyllotaxis.DefaultLayout
	p := &Phyllotaxis{
		layout:   layout,
		duration: duration,
		mapper: touch.Spiral{
			Bounds:      touch.UpTo(layout.Center, touchReach),
			RotationGap: gap,
		},
		rotation: &anim.Tween{},
	}
	p.anims.Add(p.rotation)
	for _, pt := range layout.Generate(count, phyllotaxis.DefaultRadius()) {
		pp := particle{Particle: pt, x: &anim.Tween{}, y: &anim.Tween{}}
		p.particles = append(p.particles, pp)
		p.anims.Add(pp.x, pp.y)
	}
	return p
}

func (p *Phyllotaxis) Name() string { return "phyllotaxis" }

// Open reports whether the spiral is, or is heading, open.
func (p *Phyllotaxis) Open() bool { return p.open }

// Mount starts closed, with every particle leaving its spiral position
// for the closed formation.
func (p *Phyllotaxis) Mount(geom.Point) {
	p.open = false
	p.rotation.Start(0, 0, 0, nil)
	for i := range p.particles {
		pt := &p.particles[i]
		pt.x.Start(pt.Target.X, pt.Initial.X, p.duration, anim.Linear)
		pt.y.Start(pt.Target.Y, pt.Initial.Y, p.duration, anim.Linear)
	}
}

func (p *Phyllotaxis) Touch(at geom.Point) bool {
	res := p.mapper.OnTouchStart(at)
	if !res.Toggled {
		return false
	}
	p.open = !p.open
	// Each toggle restarts the full run from the other end, even when
	// the previous run is still in flight.
	for i := range p.particles {
		pt := &p.particles[i]
		from, to := pt.Target, pt.Initial
		if p.open {
			from, to = to, from
		}
		pt.x.Start(from.X, to.X, p.duration, anim.Linear)
		pt.y.Start(from.Y, to.Y, p.duration, anim.Linear)
	}
	p.rotation.To(p.rotation.Target()+res.RotateDelta, p.duration, anim.Linear)
	log.Debug().Bool("open", p.open).Float64("rotation", p.rotation.Target()).Msg("spiral toggled")
	return true
}

func (p *Phyllotaxis) Update(frame uint64, dt float64) {
	p.anims.Step(frame, dt)
}

// Transform returns the group transform for the current frame.
func (p *Phyllotaxis) Transform() geom.Affine {
	return geom.Transform{
		Origin: p.layout.Center,
		Ops:    []geom.Op{{Kind: geom.Rotate, Value: p.rotation.Value()}},
	}.Affine()
}

// Position returns the animated position of particle i.
func (p *Phyllotaxis) Position(i int) geom.Point {
	pt := p.particles[i]
	return geom.Pt(pt.x.Value(), pt.y.Value())
}

func (p *Phyllotaxis) Draw(c render.Canvas) {
	c.DrawBackground(phyllotaxisBackground[0], phyllotaxisBackground[1])
	t := p.Transform()
	for i := range p.particles {
		pt := &p.particles[i]
		c.DrawCircle(p.Position(i), pt.Radius*drawScale, t, render.Fill(pt.Color))
	}
}

package scene

import (
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/pattern-playground/internal/anim"
	"github.com/iburimskiy/pattern-playground/internal/geom"
	"github.com/iburimskiy/pattern-playground/internal/render"
	"github.com/iburimskiy/pattern-playground/internal/rings"
	"github.com/iburimskiy/pattern-playground/internal/touch"
)

const (
	ringCount     = 4
	ringSamples   = 96
	ringDeviation = 2
	stripHeight   = 60

	spinDuration  = 980
	spinTurn      = 360
	widthDuration = 0.1
	widthMin      = 1
	widthMax      = 10
)

// Rotator strokes four skewed rings in two counter-rotating groups and
// swaps its look when the bottom strip is tapped.
type Rotator struct {
	viewport geom.Point
	state    rings.State
	ring     rings.Ring
	toggle   touch.Toggle

	spin   *anim.Tween
	widths [ringCount]*anim.Tween
	anims  anim.Group
}

func NewRotator() *Rotator {
	r := &Rotator{spin: &anim.Tween{}}
	r.anims.Add(r.spin)
	for i := range r.widths {
		r.widths[i] = &anim.Tween{}
		r.anims.Add(r.widths[i])
	}
	r.ring = rings.New(r.state.Size())
	return r
}

func (r *Rotator) Name() string { return "rotator" }

// State returns the current look.
func (r *Rotator) State() rings.State { return r.state }

// Ring returns the ring geometry of the current state.
func (r *Rotator) Ring() rings.Ring { return r.ring }

func (r *Rotator) Mount(viewport geom.Point) {
	r.viewport = viewport
	r.toggle = touch.Toggle{Region: geom.Rect{
		Min: geom.Pt(0, viewport.Y-stripHeight),
		Max: viewport,
	}}
	r.spin.Start(0, spinTurn, spinDuration, anim.Linear)
	loop := anim.TweenOptions{Loop: true, Yoyo: true}
	for _, w := range r.widths {
		w.SetOptions(loop)
		w.Start(widthMin, widthMax, widthDuration, anim.Linear)
	}
}

func (r *Rotator) Touch(p geom.Point) bool {
	if !r.toggle.OnTouchStart(p) {
		return false
	}
	r.state = r.state.Toggle()
	r.ring = rings.New(r.state.Size())
	log.Info().Str("label", r.state.Label()).Float64("size", r.state.Size()).Msg("rotator toggled")
	return true
}

func (r *Rotator) Update(frame uint64, dt float64) {
	r.anims.Step(frame, dt)
}

// Width returns the animated stroke width of ring i.
func (r *Rotator) Width(i int) float64 { return r.widths[i].Value() }

// RingTransform returns the transform of ring i. Rings 0 and 1 turn
// with the spin and rings 2 and 3 against it, each rotated twice by its
// group. Even rings take the state's skew, odd rings skew by -1.
func (r *Rotator) RingTransform(i int) geom.Affine {
	c := r.ring.Center
	spin := r.spin.Value()
	if i >= ringCount/2 {
		spin = -spin
	}
	skew := r.state.Skew()
	if i%2 == 1 {
		skew = -1
	}
	return geom.Chain(
		geom.Transform{Ops: []geom.Op{{Kind: geom.TranslateX, Value: r.viewport.X * 0.125}}},
		geom.Transform{Ops: []geom.Op{{Kind: geom.TranslateY, Value: r.viewport.Y * 0.1}}},
		geom.Transform{Origin: c, Ops: []geom.Op{{Kind: geom.Rotate, Value: spin}}},
		geom.Transform{Origin: c, Ops: []geom.Op{{Kind: geom.Rotate, Value: spin}}},
		geom.Transform{Origin: c, Ops: []geom.Op{{Kind: geom.SkewX, Value: skew}}},
	)
}

func (r *Rotator) Draw(c render.Canvas) {
	pal := r.state.Palette()
	c.DrawBackground(pal.Secondary, pal.Primary)

	// The jittered look has no path form, so it is sampled.
	var pts []geom.Point
	if r.state.Jitter() {
		pts = r.ring.Points(ringSamples, rings.Jitter(ringDeviation))
	}
	d := r.ring.SVGPath()
	for i := 0; i < ringCount; i++ {
		paint := render.Stroke(pal.Text, r.Width(i))
		if pts != nil {
			c.DrawPolyline(pts, r.RingTransform(i), paint)
			continue
		}
		c.DrawPath(d, r.RingTransform(i), paint)
	}

	strip := r.toggle.Region
	c.DrawPolygon([]geom.Point{
		strip.Min,
		geom.Pt(strip.Max.X, strip.Min.Y),
		strip.Max,
		geom.Pt(strip.Min.X, strip.Max.Y),
	}, geom.Affine{}, render.Fill(pal.Secondary))
	c.DrawText(r.state.Label(), strip.Min.Add(geom.Pt(16, stripHeight/2-8)))
}

package scene

import (
	"image/color"

	"github.com/iburimskiy/pattern-playground/internal/anim"
	"github.com/iburimskiy/pattern-playground/internal/geom"
	"github.com/iburimskiy/pattern-playground/internal/render"
)

const stretchDuration = 1000

var (
	trianglePoints = []geom.Point{
		geom.Pt(0, 100),
		geom.Pt(50, 15),
		geom.Pt(100, 100),
		geom.Pt(0, 100),
	}
	trianglePaint = render.Paint{Gradient: &render.Gradient{
		Start: geom.Pt(0, 15),
		End:   geom.Pt(0, 100),
		From:  render.Hex("#2E2110"),
		To:    color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
	}}
)

// Triangle stretches a fixed triangle vertically, very slowly.
type Triangle struct {
	viewport geom.Point
	stretch  *anim.Tween
	anims    anim.Group
}

func NewTriangle() *Triangle {
	t := &Triangle{stretch: &anim.Tween{}}
	t.anims.Add(t.stretch)
	return t
}

func (t *Triangle) Name() string { return "triangle" }

func (t *Triangle) Mount(viewport geom.Point) {
	t.viewport = viewport
	t.stretch.SetOptions(anim.TweenOptions{Loop: true, Yoyo: true})
	t.stretch.Start(1, 100, stretchDuration, anim.InOutCubic)
}

// Touch ignores taps.
func (t *Triangle) Touch(geom.Point) bool { return false }

func (t *Triangle) Update(frame uint64, dt float64) {
	t.anims.Step(frame, dt)
}

// Transform returns the triangle transform for the current frame.
func (t *Triangle) Transform() geom.Affine {
	return geom.Transform{Ops: []geom.Op{
		{Kind: geom.TranslateX, Value: t.viewport.X/2 - 100},
		{Kind: geom.ScaleY, Value: t.stretch.Value()},
	}}.Affine()
}

func (t *Triangle) Draw(c render.Canvas) {
	c.DrawBackground(render.Hex("#FFFFFF"), render.Hex("#F4EEE0"))
	c.DrawPolygon(trianglePoints, t.Transform(), trianglePaint)
}

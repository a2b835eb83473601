// Package render defines the drawing surface scenes compose onto. Scenes
// hand geometry, transforms and paints to a Canvas and never see pixels.
package render

import (
	"image/color"

	"github.com/iburimskiy/pattern-playground/internal/geom"
)

// Gradient is a two-stop linear gradient in untransformed shape
// coordinates.
type Gradient struct {
	Start, End geom.Point
	From, To   color.RGBA
}

// At returns the gradient color at p.
func (g Gradient) At(p geom.Point) color.RGBA {
	d := g.End.Sub(g.Start)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return g.From
	}
	v := p.Sub(g.Start)
	return Lerp(g.From, g.To, (v.X*d.X+v.Y*d.Y)/l2)
}

// Paint describes how a shape is filled or stroked.
type Paint struct {
	Color color.RGBA
	// Gradient overrides Color when set.
	Gradient *Gradient
	Stroke   bool
	Width    float64
}

// Fill returns a solid fill paint.
func Fill(c color.RGBA) Paint { return Paint{Color: c} }

// Stroke returns a solid stroke paint.
func Stroke(c color.RGBA, width float64) Paint {
	return Paint{Color: c, Stroke: true, Width: width}
}

// ColorAt returns the paint color at pt in shape coordinates.
func (p Paint) ColorAt(pt geom.Point) color.RGBA {
	if p.Gradient != nil {
		return p.Gradient.At(pt)
	}
	return p.Color
}

// Canvas receives geometry with a transform and a paint.
type Canvas interface {
	// DrawPath draws SVG path data. Fill paints close every subpath.
	DrawPath(d string, t geom.Affine, p Paint)
	// DrawPolygon draws the closed polygon through pts.
	DrawPolygon(pts []geom.Point, t geom.Affine, p Paint)
	// DrawPolyline draws an open stroke through pts.
	DrawPolyline(pts []geom.Point, t geom.Affine, p Paint)
	// DrawCircle draws a circle. The transform moves the center and
	// scales the radius uniformly.
	DrawCircle(center geom.Point, radius float64, t geom.Affine, p Paint)
	// DrawText prints a debug label at a screen position.
	DrawText(s string, at geom.Point)
	// DrawBackground fills the whole surface with a vertical gradient.
	DrawBackground(from, to color.RGBA)
}

// Lerp blends a toward b by t, clamped to [0, 1].
func Lerp(a, b color.RGBA, t float64) color.RGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// Hex parses a #RRGGBB color. Malformed input yields opaque black.
func Hex(s string) color.RGBA {
	c := color.RGBA{A: 0xff}
	if len(s) != 7 || s[0] != '#' {
		return c
	}
	nib := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}
	var v [6]uint8
	for i := 0; i < 6; i++ {
		n, ok := nib(s[i+1])
		if !ok {
			return color.RGBA{A: 0xff}
		}
		v[i] = n
	}
	c.R, c.G, c.B = v[0]<<4|v[1], v[2]<<4|v[3], v[4]<<4|v[5]
	return c
}

// Package rings describes the stroked rings of the rotator scene.
package rings

import (
	"fmt"
	"image/color"
	"math"

	"github.com/iburimskiy/pattern-playground/internal/geom"
)

// Canvas sizes the rotator toggles between.
const (
	InitialSize = 300
	FinalSize   = 1000
)

// Ring is a circle stroked along its circumference.
type Ring struct {
	Center geom.Point
	Radius float64
}

// New returns the ring drawn in a square canvas of the given size: it is
// centered and spans half the canvas.
func New(size float64) Ring {
	half := size / 2
	return Ring{Center: geom.Pt(half, half), Radius: half / 2}
}

// SVGPath renders the ring as two arcs in SVG path syntax.
func (r Ring) SVGPath() string {
	d := 2 * r.Radius
	return fmt.Sprintf("M %g,%g m -%g,0 a %g,%g 0 1,0 %g,0 a %g,%g 0 1,0 -%g,0",
		r.Center.X, r.Center.Y, r.Radius,
		r.Radius, r.Radius, d,
		r.Radius, r.Radius, d,
	)
}

// Palette colors the rotator scene.
type Palette struct {
	Primary   color.RGBA
	Secondary color.RGBA
	Text      color.RGBA
}

var (
	Cold = Palette{
		Primary:   color.RGBA{R: 0x39, G: 0x5B, B: 0x64, A: 0xff},
		Secondary: color.RGBA{R: 0x2C, G: 0x33, B: 0x33, A: 0xff},
		Text:      color.RGBA{R: 0xA5, G: 0xC9, B: 0xCA, A: 0xff},
	}
	Warm = Palette{
		Primary:   color.RGBA{R: 0x42, G: 0x03, B: 0x2C, A: 0xff},
		Secondary: color.RGBA{R: 0x9C, G: 0x9E, B: 0xFE, A: 0xff},
		Text:      color.RGBA{R: 0xAF, G: 0xB4, B: 0xFF, A: 0xff},
	}
)

// State is the toggleable look of the rotator.
type State struct {
	Alternate bool
}

// Toggle returns the other state.
func (s State) Toggle() State { return State{Alternate: !s.Alternate} }

// Palette returns the state's colors.
func (s State) Palette() Palette {
	if s.Alternate {
		return Warm
	}
	return Cold
}

// Size returns the canvas size of the state.
func (s State) Size() float64 {
	if s.Alternate {
		return FinalSize
	}
	return InitialSize
}

// Skew is the shear applied to the positively skewed rings.
func (s State) Skew() float64 {
	if s.Alternate {
		return 10
	}
	return 1
}

// Jitter reports whether rings are drawn with a discrete path effect.
func (s State) Jitter() bool { return s.Alternate }

// Label is the caption of the toggle strip.
func (s State) Label() string {
	if s.Alternate {
		return "Join the world"
	}
	return "Exit Reality"
}

// Points samples n+1 points along the ring, closing the loop. Offsets,
// when non-nil, displaces sample k radially by offsets(k).
func (r Ring) Points(n int, offsets func(k int) float64) []geom.Point {
	if n < 3 {
		n = 3
	}
	pts := make([]geom.Point, 0, n+1)
	for k := 0; k <= n; k++ {
		i := k % n
		rad := r.Radius
		if offsets != nil {
			rad += offsets(i)
		}
		s, c := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		pts = append(pts, r.Center.Add(geom.Pt(c*rad, s*rad)))
	}
	return pts
}

// Jitter returns a fixed pseudo random radial displacement in
// [-deviation, deviation] for sample k.
func Jitter(deviation float64) func(k int) float64 {
	return func(k int) float64 {
		h := uint32(k)*2654435761 + 0x9e3779b9
		h ^= h >> 15
		h *= 0x85ebca6b
		h ^= h >> 13
		u := float64(h) / math.MaxUint32
		return (2*u - 1) * deviation
	}
}

// Package phyllotaxis places particles along a golden-angle spiral.
package phyllotaxis

import (
	"image/color"
	"math"

	"github.com/iburimskiy/pattern-playground/internal/geom"
)

var (
	goldenRatio = (math.Sqrt(6)+1)/2 - 1
	goldenAngle = goldenRatio * 2 * math.Pi
)

// dotGrowth is the radius added per particle index.
const dotGrowth = 0.006

// DefaultCount is the number of particles the spiral scene mounts with.
const DefaultCount = 255

// Particle is one dot of the spiral. Index runs from 1 to the particle
// count and fixes draw order, color and radius.
type Particle struct {
	Index   int
	Initial geom.Point
	Target  geom.Point
	Radius  float64
	Color   color.RGBA
}

// Layout positions a spiral inside a canvas of the given extent.
type Layout struct {
	Center geom.Point
	// Extent scales the initial formation.
	Extent geom.Point
}

// DefaultLayout is a 400x400 canvas with the spiral centered.
var DefaultLayout = Layout{
	Center: geom.Pt(200, 200),
	Extent: geom.Pt(400, 400),
}

// DefaultRadius is the spiral radius used with DefaultLayout.
func DefaultRadius() float64 {
	return DefaultLayout.Extent.X*0.5 - 20
}

// Generate places count particles on a spiral of the given radius. A
// non-positive count yields no particles.
func (l Layout) Generate(count int, radius float64) []Particle {
	if count <= 0 {
		return nil
	}
	ps := make([]Particle, 0, count)
	for i := 1; i <= count; i++ {
		ps = append(ps, l.particle(i, count, radius))
	}
	return ps
}

func (l Layout) particle(i, count int, radius float64) Particle {
	angle := float64(i) * goldenAngle
	ratio := float64(i) / float64(count)
	sin, cos := math.Sincos(angle)
	r := ratio * radius
	return Particle{
		Index:   i,
		Initial: l.initial(i, count),
		Target:  l.Center.Add(geom.Pt(cos*r, sin*r)),
		Radius:  dotGrowth * float64(i),
		Color:   particleColor(i),
	}
}

// initial spreads the particles along a diagonal cosine band, which
// reads as a cylinder seen edge-on.
func (l Layout) initial(i, count int) geom.Point {
	c := math.Cos(2 * math.Pi * float64(i) / float64(count))
	return geom.Pt(l.Extent.X*c, l.Extent.Y*c)
}

func particleColor(i int) color.RGBA {
	g := i % 256
	return color.RGBA{R: 100, G: uint8(g), B: uint8(min(g+20, 255)), A: 255}
}

// Generate lays out count particles with DefaultLayout.
func Generate(count int, radius float64) []Particle {
	return DefaultLayout.Generate(count, radius)
}

// Package touch maps single touch-start events to animation targets.
//
// Mappers are pure: they compute what the scene should animate toward
// and leave applying the result to the caller.
package touch

import "github.com/iburimskiy/pattern-playground/internal/geom"

// DefaultRotateStep is the rotation, in radians, a honeycomb tap adds.
const DefaultRotateStep = 10

// DefaultRotationGap is the rotation, in radians, a spiral toggle adds.
const DefaultRotationGap = 2

// HoneycombResult holds the targets for one honeycomb tap.
type HoneycombResult struct {
	// Translate is the absolute translation the board springs to.
	Translate geom.Point
	// RotateDelta is added to the current rotation target.
	RotateDelta float64
}

// Honeycomb moves the board pivot to the touch point and spins it.
type Honeycomb struct {
	RotateStep float64
}

// OnTouchStart maps a touch at p for a board pivoting on origin. The
// translation is not clamped; a far touch moves the board far.
func (h Honeycomb) OnTouchStart(p, origin geom.Point) HoneycombResult {
	return HoneycombResult{
		Translate:   p.Sub(origin),
		RotateDelta: h.RotateStep,
	}
}

// SpiralResult holds the targets for one spiral tap.
type SpiralResult struct {
	// Toggled reports whether the open state flips.
	Toggled bool
	// RotateDelta is added to the current rotation.
	RotateDelta float64
}

// Spiral toggles the spiral open or closed when a touch lands inside
// Bounds.
type Spiral struct {
	Bounds      func(geom.Point) bool
	RotationGap float64
}

// UpTo returns a bounds check accepting points left of and above
// center+reach.
func UpTo(center geom.Point, reach float64) func(geom.Point) bool {
	return func(p geom.Point) bool {
		return p.X < center.X+reach && p.Y < center.Y+reach
	}
}

// OnTouchStart maps a touch at p. Touches outside the bounds map to
// the zero result.
func (s Spiral) OnTouchStart(p geom.Point) SpiralResult {
	if s.Bounds != nil && !s.Bounds(p) {
		return SpiralResult{}
	}
	return SpiralResult{Toggled: true, RotateDelta: s.RotationGap}
}

// Toggle flips a boolean when a touch lands inside Region.
type Toggle struct {
	Region geom.Rect
}

// OnTouchStart reports whether a touch at p toggles.
func (t Toggle) OnTouchStart(p geom.Point) bool {
	return t.Region.Contains(p)
}

// Package anim implements animated scalar cells advanced by an external
// frame clock.
//
// A cell is a small state machine. Target-setting calls re-arm it, and
// Advance moves it forward by one frame delta. Reads never block and
// are valid at any time, including on the zero value.
package anim

import "math"

// Cell is an animated value.
type Cell interface {
	// Advance moves the animation forward by dt seconds.
	Advance(dt float64)
	// Value returns the current value.
	Value() float64
	// Settled reports whether the animation has come to rest.
	Settled() bool
}

// Group advances a set of cells together. Cells are advanced in the
// order they were added.
type Group struct {
	cells []Cell
	frame uint64
	moved bool
}

// Add appends cells to the group.
func (g *Group) Add(cells ...Cell) {
	g.cells = append(g.cells, cells...)
}

// Advance moves every cell forward by dt seconds.
func (g *Group) Advance(dt float64) {
	for _, c := range g.cells {
		c.Advance(dt)
	}
}

// Step advances the group for the given frame number. Repeated calls
// with the same frame are no-ops, so a frame is never applied twice.
func (g *Group) Step(frame uint64, dt float64) {
	if g.moved && frame == g.frame {
		return
	}
	g.frame, g.moved = frame, true
	g.Advance(dt)
}

// Settled reports whether every cell in the group is at rest.
func (g *Group) Settled() bool {
	for _, c := range g.cells {
		if !c.Settled() {
			return false
		}
	}
	return true
}

// validDelta reports whether dt can move an animation.
func validDelta(dt float64) bool {
	return dt > 0 && !math.IsInf(dt, 1)
}

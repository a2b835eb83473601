// Package scene composes layouts, animated cells and touch mappers into
// the drawable scenes of the playground.
package scene

import (
	"github.com/iburimskiy/pattern-playground/internal/geom"
	"github.com/iburimskiy/pattern-playground/internal/render"
)

// Scene is one interactive pattern. All methods run on the frame loop.
type Scene interface {
	Name() string
	// Mount resets the scene's animations for a viewport of the given size.
	Mount(viewport geom.Point)
	// Touch handles a touch start and reports whether it was accepted.
	Touch(p geom.Point) bool
	// Update advances the scene's animations for one frame.
	Update(frame uint64, dt float64)
	Draw(c render.Canvas)
}

// Command is a configuration change requested from the keyboard.
type Command int

const (
	WiderBoard Command = iota
	NarrowerBoard
	TallerBoard
	ShorterBoard
	LongerSide
	ShorterSide
)

// Configurable is implemented by scenes that accept commands.
type Configurable interface {
	Apply(cmd Command)
}

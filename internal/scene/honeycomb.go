package scene

import (
	"image/color"

	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/pattern-playground/internal/anim"
	"github.com/iburimskiy/pattern-playground/internal/geom"
	"github.com/iburimskiy/pattern-playground/internal/honeycomb"
	"github.com/iburimskiy/pattern-playground/internal/render"
	"github.com/iburimskiy/pattern-playground/internal/touch"
)

var (
	honeycombBackground = [2]color.RGBA{render.Hex("#E38B29"), render.Hex("#FFD8A9")}
	honeycombCellPaint  = render.Paint{Gradient: &render.Gradient{
		Start: geom.Pt(0, 0),
		End:   geom.Pt(256, 256),
		From:  render.Hex("#F1A661"),
		To:    render.Hex("#808080"),
	}}
)

// Honeycomb springs a hex board toward each tap and spins it.
type Honeycomb struct {
	board  honeycomb.Board
	cells  []honeycomb.Cell
	mapper touch.Honeycomb

	x, y, rotation *anim.Spring
	anims          anim.Group
}

// NewHoneycomb returns the scene for board. Each tap adds rotateStep
// radians to the rotation target.
func NewHoneycomb(board honeycomb.Board, rotateStep float64) *Honeycomb {
	h := &Honeycomb{
		mapper:   touch.Honeycomb{RotateStep: rotateStep},
		x:        anim.NewSpring(0, anim.DefaultSpringConfig),
		y:        anim.NewSpring(0, anim.DefaultSpringConfig),
		rotation: anim.NewSpring(0, anim.DefaultSpringConfig),
	}
	h.anims.Add(h.x, h.y, h.rotation)
	h.setBoard(board)
	return h
}

func (h *Honeycomb) Name() string { return "honeycomb" }

// Board returns the current configuration.
func (h *Honeycomb) Board() honeycomb.Board { return h.board }

// Cells returns the generated hexagons.
func (h *Honeycomb) Cells() []honeycomb.Cell { return h.cells }

func (h *Honeycomb) Mount(geom.Point) {
	h.x.Jump(0)
	h.y.Jump(0)
	h.rotation.Jump(0)
}

func (h *Honeycomb) Touch(p geom.Point) bool {
	res := h.mapper.OnTouchStart(p, h.board.Origin())
	h.x.SetTarget(res.Translate.X)
	h.y.SetTarget(res.Translate.Y)
	h.rotation.SetTarget(h.rotation.Target() + res.RotateDelta)
	return true
}

func (h *Honeycomb) Update(frame uint64, dt float64) {
	h.anims.Step(frame, dt)
}

// Transform returns the board transform for the current frame.
func (h *Honeycomb) Transform() geom.Affine {
	o := h.board.Origin()
	return geom.Chain(
		geom.Transform{Origin: o, Ops: []geom.Op{{Kind: geom.TranslateY, Value: h.y.Value()}}},
		geom.Transform{Origin: o, Ops: []geom.Op{{Kind: geom.TranslateX, Value: h.x.Value()}}},
		geom.Transform{Origin: o, Ops: []geom.Op{{Kind: geom.Rotate, Value: h.rotation.Value()}}},
	)
}

func (h *Honeycomb) Draw(c render.Canvas) {
	c.DrawBackground(honeycombBackground[0], honeycombBackground[1])
	t := h.Transform()
	for i := range h.cells {
		c.DrawPolygon(h.cells[i].Outline[:], t, honeycombCellPaint)
	}
}

func (h *Honeycomb) Apply(cmd Command) {
	var dw, dh int
	var ds float64
	switch cmd {
	case WiderBoard:
		dw = 1
	case NarrowerBoard:
		dw = -1
	case TallerBoard:
		dh = 1
	case ShorterBoard:
		dh = -1
	case LongerSide:
		ds = 1
	case ShorterSide:
		ds = -1
	default:
		return
	}
	h.setBoard(h.board.Resize(dw, dh, ds))
}

func (h *Honeycomb) setBoard(b honeycomb.Board) {
	h.board = b
	h.cells = b.Cells()
	log.Debug().
		Int("width", b.Width).
		Int("height", b.Height).
		Float64("side", b.Side).
		Int("cells", len(h.cells)).
		Msg("honeycomb board generated")
}

package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"

	"github.com/iburimskiy/pattern-playground/internal/geom"
	"github.com/iburimskiy/pattern-playground/internal/render"
)

var whiteSubImage *ebiten.Image

// white returns a 1x1 white source image for DrawTriangles. The pixel is
// cut from the middle of a 3x3 image so filtering never samples an edge.
func white() *ebiten.Image {
	if whiteSubImage == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whiteSubImage
}

// screen is a render.Canvas drawing onto an ebiten image. Vertex buffers
// and flattened paths are reused across frames.
type screen struct {
	dst   *ebiten.Image
	vs    []ebiten.Vertex
	is    []uint16
	paths map[string]render.Path
}

func (s *screen) reset(dst *ebiten.Image) {
	s.dst = dst
}

// DrawPath flattens d once and strokes or fills each subpath through t.
// Arcs are flattened before transforming so skews bend them correctly.
func (s *screen) DrawPath(d string, t geom.Affine, p render.Paint) {
	path, ok := s.paths[d]
	if !ok {
		var err error
		path, err = render.ParsePath(d)
		if err != nil {
			log.Warn().Err(err).Str("path", d).Msg("skipping path")
		}
		if s.paths == nil {
			s.paths = make(map[string]render.Path)
		}
		s.paths[d] = path
	}
	for _, sub := range path {
		s.drawPath(sub.Points, sub.Closed || !p.Stroke, t, p)
	}
}

func (s *screen) DrawPolygon(pts []geom.Point, t geom.Affine, p render.Paint) {
	s.drawPath(pts, true, t, p)
}

func (s *screen) DrawPolyline(pts []geom.Point, t geom.Affine, p render.Paint) {
	p.Stroke = true
	s.drawPath(pts, false, t, p)
}

func (s *screen) DrawCircle(center geom.Point, radius float64, t geom.Affine, p render.Paint) {
	if radius <= 0 {
		return
	}
	c := t.Transform(center)
	r := radius * uniformScale(t)
	clr := p.ColorAt(center)
	if p.Stroke {
		vector.StrokeCircle(s.dst, float32(c.X), float32(c.Y), float32(r), float32(p.Width), clr, true)
		return
	}
	vector.DrawFilledCircle(s.dst, float32(c.X), float32(c.Y), float32(r), clr, true)
}

func (s *screen) DrawText(str string, at geom.Point) {
	ebitenutil.DebugPrintAt(s.dst, str, int(at.X), int(at.Y))
}

// DrawBackground fills the image one line per row, like a gradient rect.
func (s *screen) DrawBackground(from, to color.RGBA) {
	b := s.dst.Bounds()
	h := b.Dy()
	for y := 0; y < h; y++ {
		clr := render.Lerp(from, to, float64(y)/float64(max(h-1, 1)))
		vector.StrokeLine(s.dst, 0, float32(y)+0.5, float32(b.Dx()), float32(y)+0.5, 1, clr, false)
	}
}

func (s *screen) drawPath(pts []geom.Point, closed bool, t geom.Affine, p render.Paint) {
	if len(pts) < 2 {
		return
	}
	var path vector.Path
	first := t.Transform(pts[0])
	path.MoveTo(float32(first.X), float32(first.Y))
	for _, pt := range pts[1:] {
		q := t.Transform(pt)
		path.LineTo(float32(q.X), float32(q.Y))
	}
	if closed {
		path.Close()
	}

	s.vs, s.is = s.vs[:0], s.is[:0]
	if p.Stroke {
		s.vs, s.is = path.AppendVerticesAndIndicesForStroke(s.vs, s.is, &vector.StrokeOptions{
			Width:    float32(p.Width),
			LineJoin: vector.LineJoinRound,
			LineCap:  vector.LineCapRound,
		})
	} else {
		s.vs, s.is = path.AppendVerticesAndIndicesForFilling(s.vs, s.is)
	}

	// Gradients live in shape space, so map each vertex back through t.
	inv := t.Invert()
	for i := range s.vs {
		v := &s.vs[i]
		clr := p.ColorAt(inv.Transform(geom.Pt(float64(v.DstX), float64(v.DstY))))
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(clr.R) / 0xff
		v.ColorG = float32(clr.G) / 0xff
		v.ColorB = float32(clr.B) / 0xff
		v.ColorA = float32(clr.A) / 0xff
	}
	s.dst.DrawTriangles(s.vs, s.is, white(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// uniformScale is the area scale factor of t as a length.
func uniformScale(t geom.Affine) float64 {
	sx, hx, _, hy, sy, _ := t.Elems()
	return math.Sqrt(math.Abs(sx*sy - hx*hy))
}

package render

import (
	"image/color"
	"testing"

	"github.com/iburimskiy/pattern-playground/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	require.Equal(t, color.RGBA{R: 0xE3, G: 0x8B, B: 0x29, A: 0xff}, Hex("#E38B29"))
	require.Equal(t, color.RGBA{R: 0xfd, G: 0xee, B: 0xdc, A: 0xff}, Hex("#fdeedc"))
	require.Equal(t, color.RGBA{A: 0xff}, Hex("E38B29"))
	require.Equal(t, color.RGBA{A: 0xff}, Hex("#E38BZ9"))
}

func TestLerp(t *testing.T) {
	a := color.RGBA{R: 0, G: 100, B: 200, A: 255}
	b := color.RGBA{R: 200, G: 100, B: 0, A: 255}
	require.Equal(t, a, Lerp(a, b, -1))
	require.Equal(t, b, Lerp(a, b, 2))
	require.Equal(t, color.RGBA{R: 100, G: 100, B: 100, A: 255}, Lerp(a, b, 0.5))
}

func TestGradientAt(t *testing.T) {
	g := Gradient{
		Start: geom.Pt(0, 0),
		End:   geom.Pt(256, 256),
		From:  color.RGBA{A: 255},
		To:    color.RGBA{R: 200, A: 255},
	}
	require.Equal(t, g.From, g.At(geom.Pt(0, 0)))
	require.Equal(t, g.To, g.At(geom.Pt(256, 256)))
	require.Equal(t, color.RGBA{R: 100, A: 255}, g.At(geom.Pt(256, 0)))
	require.Equal(t, g.To, g.At(geom.Pt(1000, 1000)))

	flat := Gradient{From: g.To}
	require.Equal(t, g.To, flat.At(geom.Pt(3, 3)))
}

func TestPaintColor(t *testing.T) {
	p := Fill(color.RGBA{G: 9, A: 255})
	require.Equal(t, color.RGBA{G: 9, A: 255}, p.ColorAt(geom.Pt(5, 5)))
	s := Stroke(color.RGBA{B: 1, A: 255}, 3)
	require.True(t, s.Stroke)
	require.Equal(t, 3.0, s.Width)
}

package phyllotaxis

import (
	"math"
	"testing"

	"github.com/iburimskiy/pattern-playground/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestGenerateEmpty(t *testing.T) {
	require.Empty(t, Generate(0, 100))
	require.Empty(t, Generate(-4, 100))
}

func TestGenerateOrdering(t *testing.T) {
	for _, count := range []int{1, 2, 17, DefaultCount, 600} {
		ps := Generate(count, DefaultRadius())
		require.Len(t, ps, count)
		for k := 1; k < len(ps); k++ {
			require.Greater(t, ps[k].Index, ps[k-1].Index)
			require.GreaterOrEqual(t, ps[k].Radius, ps[k-1].Radius)
		}
		require.Equal(t, 1, ps[0].Index)
		require.Equal(t, count, ps[len(ps)-1].Index)
	}
}

func TestGenerateSingle(t *testing.T) {
	ps := Generate(1, 180)
	require.Len(t, ps, 1)
	p := ps[0]
	want := DefaultLayout.Center.Add(geom.Pt(math.Cos(goldenAngle)*180, math.Sin(goldenAngle)*180))
	require.InDelta(t, want.X, p.Target.X, 1e-9)
	require.InDelta(t, want.Y, p.Target.Y, 1e-9)
	require.InDelta(t, 0.006, p.Radius, 1e-12)
}

func TestGoldenAngle(t *testing.T) {
	require.InDelta(t, ((math.Sqrt(6)+1)/2-1)*2*math.Pi, goldenAngle, 1e-12)
	require.InDelta(t, 4.5537, goldenAngle, 1e-3)
}

func TestTargetsOnSpiral(t *testing.T) {
	const radius = 180.0
	ps := Generate(DefaultCount, radius)
	for _, p := range ps {
		d := p.Target.Dist(DefaultLayout.Center)
		require.InDelta(t, float64(p.Index)/DefaultCount*radius, d, 1e-9)
	}
	// The outermost particle sits on the board radius.
	require.InDelta(t, radius, ps[len(ps)-1].Target.Dist(DefaultLayout.Center), 1e-9)
}

func TestInitialDiffersFromTarget(t *testing.T) {
	ps := Generate(DefaultCount, DefaultRadius())
	differ := 0
	for _, p := range ps {
		if p.Initial != p.Target {
			differ++
		}
	}
	require.Equal(t, len(ps), differ)
	require.Equal(t, ps, Generate(DefaultCount, DefaultRadius()))
}

func TestColors(t *testing.T) {
	ps := Generate(300, 100)
	require.EqualValues(t, 100, ps[0].Color.R)
	require.EqualValues(t, 1, ps[0].Color.G)
	require.EqualValues(t, 21, ps[0].Color.B)
	// The blue channel saturates instead of wrapping.
	require.EqualValues(t, 255, ps[249].Color.B)
	// Index 256 cycles back to zero green.
	require.EqualValues(t, 0, ps[255].Color.G)
	require.EqualValues(t, 20, ps[255].Color.B)
	for _, p := range ps {
		require.EqualValues(t, 255, p.Color.A)
	}
}

func TestCustomLayout(t *testing.T) {
	l := Layout{Center: geom.Pt(0, 0), Extent: geom.Pt(10, 20)}
	ps := l.Generate(4, 1)
	// i == count puts the initial point at the full extent.
	require.InDelta(t, 10, ps[3].Initial.X, 1e-9)
	require.InDelta(t, 20, ps[3].Initial.Y, 1e-9)
	require.InDelta(t, 1, ps[3].Target.Dist(geom.Point{}), 1e-9)
}

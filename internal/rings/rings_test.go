package rings

import (
	"testing"

	"github.com/iburimskiy/pattern-playground/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	r := New(InitialSize)
	require.Equal(t, geom.Pt(150, 150), r.Center)
	require.Equal(t, 75.0, r.Radius)
}

func TestSVGPath(t *testing.T) {
	require.Equal(t,
		"M 150,150 m -75,0 a 75,75 0 1,0 150,0 a 75,75 0 1,0 -150,0",
		New(InitialSize).SVGPath())
}

func TestPointsClosed(t *testing.T) {
	r := New(FinalSize)
	pts := r.Points(64, nil)
	require.Len(t, pts, 65)
	require.Equal(t, pts[0], pts[64])
	for _, p := range pts {
		require.InDelta(t, r.Radius, p.Dist(r.Center), 1e-9)
	}

	jittered := r.Points(64, Jitter(2))
	require.Equal(t, jittered[0], jittered[64])
	for _, p := range jittered {
		require.InDelta(t, r.Radius, p.Dist(r.Center), 2+1e-9)
	}
	require.Len(t, r.Points(1, nil), 4)
}

func TestJitterDeterministic(t *testing.T) {
	j := Jitter(2)
	for k := 0; k < 100; k++ {
		require.Equal(t, j(k), Jitter(2)(k))
		require.LessOrEqual(t, j(k), 2.0)
		require.GreaterOrEqual(t, j(k), -2.0)
	}
}

func TestStateToggle(t *testing.T) {
	var s State
	require.Equal(t, Cold, s.Palette())
	require.Equal(t, float64(InitialSize), s.Size())
	require.Equal(t, 1.0, s.Skew())
	require.False(t, s.Jitter())
	require.Equal(t, "Exit Reality", s.Label())

	s = s.Toggle()
	require.Equal(t, Warm, s.Palette())
	require.Equal(t, float64(FinalSize), s.Size())
	require.Equal(t, 10.0, s.Skew())
	require.True(t, s.Jitter())
	require.Equal(t, "Join the world", s.Label())
	require.Equal(t, State{}, s.Toggle())
}

package render

import (
	"testing"

	"github.com/iburimskiy/pattern-playground/internal/geom"
	"github.com/stretchr/testify/require"
)

func TestParsePathLines(t *testing.T) {
	path, err := ParsePath("M 0,0 L 10,0 V 10 H 0 z")
	require.NoError(t, err)
	require.Equal(t, Path{{
		Points: []geom.Point{geom.Pt(0, 0), geom.Pt(10, 0), geom.Pt(10, 10), geom.Pt(0, 10)},
		Closed: true,
	}}, path)

	path, err = ParsePath("m 5,5 10,0 v 5 h -10 M 1,1 L 2,2")
	require.NoError(t, err)
	require.Len(t, path, 2)
	require.Equal(t, []geom.Point{geom.Pt(5, 5), geom.Pt(15, 5), geom.Pt(15, 10), geom.Pt(5, 10)}, path[0].Points)
	require.False(t, path[0].Closed)
	require.Equal(t, []geom.Point{geom.Pt(1, 1), geom.Pt(2, 2)}, path[1].Points)
}

func TestParsePathArcs(t *testing.T) {
	// Two half arcs make a full circle of radius 75 around (150, 150).
	path, err := ParsePath("M 150,150 m -75,0 a 75,75 0 1,0 150,0 a 75,75 0 1,0 -150,0")
	require.NoError(t, err)
	require.Len(t, path, 1)

	pts := path[0].Points
	require.Greater(t, len(pts), 32)
	require.Equal(t, geom.Pt(75, 150), pts[0])
	require.Equal(t, pts[0], pts[len(pts)-1])

	center := geom.Pt(150, 150)
	var above, below bool
	for _, p := range pts {
		require.InDelta(t, 75, p.Dist(center), 1e-9)
		above = above || p.Y < 149
		below = below || p.Y > 151
	}
	require.True(t, above)
	require.True(t, below)
}

func TestParsePathArcRadiusTooSmall(t *testing.T) {
	path, err := ParsePath("M 0,0 A 1,1 0 0,1 10,0")
	require.NoError(t, err)
	pts := path[0].Points
	require.Equal(t, geom.Pt(10, 0), pts[len(pts)-1])
	// The radius grows to span the endpoints.
	for _, p := range pts {
		require.InDelta(t, 5, p.Dist(geom.Pt(5, 0)), 1e-9)
	}
}

func TestParsePathErrors(t *testing.T) {
	for _, d := range []string{
		"10,10",
		"M 1",
		"M 0,0 Q 1,1 2,2",
		"M 0,0 z 5,5",
	} {
		_, err := ParsePath(d)
		require.ErrorIs(t, err, ErrBadPath, d)
	}

	path, err := ParsePath("")
	require.NoError(t, err)
	require.Empty(t, path)
}

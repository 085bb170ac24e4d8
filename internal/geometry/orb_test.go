package geometry

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
	"github.com/paulmach/orb/planar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClipRingMatchesOrb clips every bounded cell against a box that cuts
// through the site cloud and compares the area with orb's clipper run on
// the raw coordinates.
func TestClipRingMatchesOrb(t *testing.T) {
	sites := randomSites(7, 60)
	aug, err := Augment(sites, DefaultRingPoints, DefaultRingMargin)
	require.NoError(t, err)
	d, err := BuildDiagram(aug)
	require.NoError(t, err)

	b := BoundsOf(sites)
	box := BBox{
		MinX: b.MinX + b.Width()/4,
		MaxX: b.MaxX - b.Width()/4,
		MinY: b.MinY + b.Height()/4,
		MaxY: b.MaxY - b.Height()/4,
	}
	bound := orb.Bound{Min: orb.Point{box.MinX, box.MinY}, Max: orb.Point{box.MaxX, box.MaxY}}
	tol := 1e-9 * box.Width() * box.Height()

	checked := 0
	for _, s := range sites {
		ring := d.Ring(s.ID)
		if ring == nil {
			continue
		}

		var want float64
		if theirs := clip.Polygon(bound, orb.Polygon{toOrbRing(ring)}); len(theirs) > 0 && len(theirs[0]) > 0 {
			want = math.Abs(planar.Area(theirs))
		}

		got := 0.0
		if ours := ClipRing(ring, box); ours != nil {
			got = Area(ours)
			checked++
		}
		assert.InDelta(t, want, got, tol, "site %d", s.ID)
	}
	assert.Greater(t, checked, 0)
}

func toOrbRing(points []Point) orb.Ring {
	r := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		r = append(r, orb.Point{p.X, p.Y})
	}
	return append(r, r[0])
}

func TestClipRingExtremeScales(t *testing.T) {
	for _, scale := range []float64{1e140, 1e-200} {
		box := BBox{MaxX: 10 * scale, MaxY: 10 * scale}
		ring := []Point{{8 * scale, 2 * scale}, {12 * scale, 2 * scale}, {12 * scale, 4 * scale}, {8 * scale, 4 * scale}}
		want := []Point{{8, 2}, {10, 2}, {10, 4}, {8, 4}}

		got := ClipRing(ring, box)
		require.Len(t, got, len(want), "scale %g", scale)
		for i, p := range got {
			assert.InDelta(t, want[i].X, p.X/scale, 1e-9, "scale %g vertex %d", scale, i)
			assert.InDelta(t, want[i].Y, p.Y/scale, 1e-9, "scale %g vertex %d", scale, i)
			assert.True(t, box.Contains(p))
		}
	}
}

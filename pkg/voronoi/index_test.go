package voronoi

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionAtSiteLocations(t *testing.T) {
	sites := randomSites(31, 200)
	tess, err := Tessellate(sites, DefaultOptions())
	require.NoError(t, err)

	for _, s := range sites {
		region, ok := tess.RegionAt(s.X, s.Y)
		require.True(t, ok, "site %d", s.ID)
		assert.Equal(t, s.ID, region.SiteID)
	}

	_, ok := tess.RegionAt(tess.Bounds().MaxX+10, 0)
	assert.False(t, ok)
}

// TestRegionAtAgreesWithNearestSite checks the R-tree region lookup against
// the nearest-site query at random points.
func TestRegionAtAgreesWithNearestSite(t *testing.T) {
	sites := randomSites(37, 150)
	tess, err := Tessellate(sites, DefaultOptions())
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(99))
	checked := 0
	for i := 0; i < 500; i++ {
		x := -72 + rng.Float64()*2
		y := 41 + rng.Float64()*2

		region, ok := tess.RegionAt(x, y)
		require.True(t, ok, "(%v, %v) lies among the input sites", x, y)

		nearest, ok := tess.NearestSite(x, y)
		require.True(t, ok)
		assert.Equal(t, nearest.ID, region.SiteID, "(%v, %v)", x, y)
		checked++
	}
	assert.Equal(t, 500, checked)
}

func TestRegionsInBounds(t *testing.T) {
	sites := randomSites(41, 120)
	tess, err := Tessellate(sites, DefaultOptions())
	require.NoError(t, err)

	all := tess.RegionsInBounds(tess.Bounds())
	assert.Equal(t, tess.Polygons(), all, "whole box returns every region in input order")

	viewport := Bounds{MinX: -71.2, MaxX: -71.0, MinY: 41.8, MaxY: 42.0}
	visible := tess.RegionsInBounds(viewport)
	require.NotEmpty(t, visible)
	for _, p := range visible {
		assert.True(t, viewport.Intersects(polygonBounds(p)), "site %d", p.SiteID)
	}

	// Every region that really intersects the viewport is returned.
	ids := map[int]bool{}
	for _, p := range visible {
		ids[p.SiteID] = true
	}
	for _, p := range tess.Polygons() {
		if viewport.Intersects(polygonBounds(p)) {
			assert.True(t, ids[p.SiteID], "site %d missing", p.SiteID)
		}
	}

	assert.Empty(t, tess.RegionsInBounds(Bounds{MinX: 1, MaxX: 0, MinY: 0, MaxY: 1}))
}

func TestBounds(t *testing.T) {
	b := Bounds{MinX: 0, MaxX: 2, MinY: 0, MaxY: 1}

	assert.True(t, b.Contains(1, 0.5))
	assert.True(t, b.Contains(2, 1))
	assert.False(t, b.Contains(3, 0.5))

	assert.True(t, b.Intersects(Bounds{MinX: 1, MaxX: 3, MinY: 0.5, MaxY: 2}))
	assert.True(t, b.Intersects(Bounds{MinX: 2, MaxX: 3, MinY: 1, MaxY: 2}), "touching")
	assert.False(t, b.Intersects(Bounds{MinX: 2.1, MaxX: 3, MinY: 0, MaxY: 1}))

	assert.Equal(t, Bounds{MinX: -1, MaxX: 3, MinY: -1, MaxY: 2}, b.Expand(1))
	assert.Equal(t, Bounds{MinX: 0, MaxX: 5, MinY: -2, MaxY: 1}, b.Union(Bounds{MinX: 4, MaxX: 5, MinY: -2, MaxY: 0}))
	assert.Equal(t, 2.0, b.Width())
	assert.Equal(t, 1.0, b.Height())
}

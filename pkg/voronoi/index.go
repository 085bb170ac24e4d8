package voronoi

import (
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/beetlebugorg/voronoi/internal/geometry"
)

// regionIndex provides O(log n) lookups over clipped regions and sites using
// R-trees.
type regionIndex struct {
	regions *rtreego.Rtree
	sites   *rtreego.Rtree
}

// indexedRegion wraps a polygon for R-tree storage.
type indexedRegion struct {
	index  int // position in Tessellation.polygons
	bounds Bounds
}

// Bounds implements rtreego.Spatial interface.
func (r *indexedRegion) Bounds() rtreego.Rect {
	point := rtreego.Point{r.bounds.MinX, r.bounds.MinY}

	// R-tree requires non-zero dimensions
	const epsilon = 1e-9
	width := r.bounds.Width()
	height := r.bounds.Height()
	if width < epsilon {
		width = epsilon
	}
	if height < epsilon {
		height = epsilon
	}

	rect, _ := rtreego.NewRect(point, []float64{width, height})
	return rect
}

// indexedSite wraps an input site for nearest-neighbour queries.
type indexedSite struct {
	index int // position in Tessellation.sites
	point rtreego.Point
}

// Bounds implements rtreego.Spatial interface.
func (s *indexedSite) Bounds() rtreego.Rect {
	return s.point.ToRect(0)
}

func buildRegionIndex(polygons []Polygon, sites []Site) *regionIndex {
	// Create R-trees (2D, min=25 children, max=50 children)
	idx := &regionIndex{
		regions: rtreego.NewTree(2, 25, 50),
		sites:   rtreego.NewTree(2, 25, 50),
	}
	for i, p := range polygons {
		idx.regions.Insert(&indexedRegion{index: i, bounds: polygonBounds(p)})
	}
	for i, s := range sites {
		idx.sites.Insert(&indexedSite{index: i, point: rtreego.Point{s.X, s.Y}})
	}
	return idx
}

// candidates returns the indexes of regions whose bounds intersect b, in
// ascending order. b is padded slightly so regions touching its edges count.
func (idx *regionIndex) candidates(b Bounds) []int {
	const epsilon = 1e-9
	if b.MaxX < b.MinX || b.MaxY < b.MinY {
		return nil
	}
	rect, err := rtreego.NewRectFromPoints(
		rtreego.Point{b.MinX - epsilon, b.MinY - epsilon},
		rtreego.Point{b.MaxX + epsilon, b.MaxY + epsilon},
	)
	if err != nil {
		return nil
	}

	spatials := idx.regions.SearchIntersect(rect)
	out := make([]int, 0, len(spatials))
	for _, s := range spatials {
		out = append(out, s.(*indexedRegion).index)
	}
	sort.Ints(out)
	return out
}

// nearest returns the index of the site closest to (x, y), or -1.
func (idx *regionIndex) nearest(x, y float64) int {
	if idx.sites.Size() == 0 {
		return -1
	}
	s := idx.sites.NearestNeighbor(rtreego.Point{x, y})
	if s == nil {
		return -1
	}
	return s.(*indexedSite).index
}

func containsPoint(p Polygon, x, y float64) bool {
	return geometry.ContainsPoint(p.Vertices, geometry.Point{X: x, Y: y})
}

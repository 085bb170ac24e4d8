package geometry

import (
	"math"
	"sort"

	"github.com/pzsz/voronoi"
)

// normalizer maps site coordinates into [1, 2] x [1, 2] and back. The sweep
// works with absolute tolerances, so it always sees the same scale.
type normalizer struct {
	cx, cy float64
	half   float64
}

func newNormalizer(points []Point) normalizer {
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	// Halves first: the full extent can overflow.
	return normalizer{
		cx:   minX/2 + maxX/2,
		cy:   minY/2 + maxY/2,
		half: math.Max(maxX/2-minX/2, maxY/2-minY/2),
	}
}

func (n normalizer) apply(x, y float64) voronoi.Vertex {
	return voronoi.Vertex{
		X: 1.5 + 0.5*((x-n.cx)/n.half),
		Y: 1.5 + 0.5*((y-n.cy)/n.half),
	}
}

func (n normalizer) restore(x, y float64) (float64, float64) {
	return n.cx + (2*(x-1.5))*n.half, n.cy + (2*(y-1.5))*n.half
}

// sweepResult is the raw Fortune diagram with each cell tied back to the
// distinct point it was built from.
type sweepResult struct {
	diagram   *voronoi.Diagram
	box       voronoi.BBox
	cells     []*voronoi.Cell
	cellPoint map[*voronoi.Cell]int
}

// sweep runs Fortune's algorithm over the normalised points inside a
// construction box far larger than the sites. Points that collapse onto an
// earlier one after normalisation get no cell.
func (n normalizer) sweep(points []Point) *sweepResult {
	vs := make([]voronoi.Vertex, len(points))
	index := make(map[voronoi.Vertex]int, len(points))
	for i, p := range points {
		vs[i] = n.apply(p.X, p.Y)
		if _, dup := index[vs[i]]; !dup {
			index[vs[i]] = i
		}
	}

	lo, hi := 1-constructionMargin, 2+constructionMargin
	box := voronoi.NewBBox(lo, hi, lo, hi)
	diagram := voronoi.ComputeDiagram(vs, box, false)

	sw := &sweepResult{
		diagram:   diagram,
		box:       box,
		cells:     make([]*voronoi.Cell, len(points)),
		cellPoint: make(map[*voronoi.Cell]int, len(diagram.Cells)),
	}
	for _, c := range diagram.Cells {
		p, ok := index[c.Site]
		if !ok || sw.cells[p] != nil {
			continue
		}
		sw.cells[p] = c
		sw.cellPoint[c] = p
	}
	return sw
}

// neighbors returns the IDs of the owning sites of every cell across an
// edge of cell, in ascending order.
func (sw *sweepResult) neighbors(cell *voronoi.Cell, owners []int, sites []Site) []int {
	var out []int
	seen := make(map[int]bool)
	for _, he := range cell.Halfedges {
		other := he.Edge.LeftCell
		if other == cell {
			other = he.Edge.RightCell
		}
		if other == nil {
			continue
		}
		p, ok := sw.cellPoint[other]
		if !ok || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, sites[owners[p]].ID)
	}
	sort.Ints(out)
	return out
}

// onBox reports whether v lies on or past the construction box.
func onBox(v voronoi.Vertex, box voronoi.BBox) bool {
	return v.X <= box.Xl || v.X >= box.Xr || v.Y <= box.Yt || v.Y >= box.Yb
}

func near(a, b voronoi.Vertex) bool {
	return math.Abs(a.X-b.X) <= closeTolerance && math.Abs(a.Y-b.Y) <= closeTolerance
}

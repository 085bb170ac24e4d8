package geometry

import (
	"math"
	"sort"

	"github.com/pzsz/voronoi"
)

// closeTolerance is the distance, in normalised units, below which two
// diagram points are the same vertex. Co-circular sites leave such pairs.
const closeTolerance = 1e-8

// turnTolerance bounds how far a cell boundary may turn clockwise, relative
// to the edge lengths, before the cell is considered self-intersecting.
const turnTolerance = 1e-9

// constructionMargin is how far, in normalised units, the construction box
// extends past the sites. A cell reaching it is unbounded.
const constructionMargin = 1e6

// CellState tags a cell as bounded, unbounded or degenerate.
type CellState int

const (
	// CellBounded has a closed counter-clockwise vertex ring.
	CellBounded CellState = iota

	// CellUnbounded extends to infinity (its site is on the convex hull).
	CellUnbounded

	// CellDegenerate has no valid ring: a coincident site, zero area or a
	// self-intersecting boundary.
	CellDegenerate
)

// String returns the state name.
func (s CellState) String() string {
	switch s {
	case CellBounded:
		return "bounded"
	case CellUnbounded:
		return "unbounded"
	case CellDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// Vertex is a finite Voronoi vertex. Vertices are shared between cells.
type Vertex struct {
	ID int
	X  float64
	Y  float64
}

// Cell is the Voronoi region of one site. Boundary lists vertex IDs in
// counter-clockwise order and is empty unless State is CellBounded.
type Cell struct {
	SiteID   int
	Boundary []int
	State    CellState
}

// Unbounded reports whether the cell extends to infinity.
func (c Cell) Unbounded() bool {
	return c.State == CellUnbounded
}

// Diagram is a planar Voronoi diagram. It is immutable once built and safe
// for concurrent reads.
type Diagram struct {
	sites     []Site
	siteIndex map[int]int
	vertices  []Vertex
	cells     []Cell
	neighbors [][]int

	// normVertices mirrors vertices in sweep coordinates, where ring
	// validation cannot underflow or overflow.
	normVertices []voronoi.Vertex
}

// BuildDiagram computes the Voronoi diagram of sites with Fortune's sweep.
//
// Sites are handed to the sweep in (X, Y, ID) order, normalised into the
// unit square, so the result depends neither on input order nor on the
// coordinate scale. Among coincident sites the smallest ID owns the cell;
// the others get CellDegenerate. Returns an *InputError for non-finite
// coordinates or repeated IDs, and a *DegenerateError if fewer than 3
// distinct sites exist or all of them are collinear.
func BuildDiagram(sites []Site) (*Diagram, error) {
	siteIndex := make(map[int]int, len(sites))
	for i, s := range sites {
		if err := ValidateCoordinate(s.X, s.Y); err != nil {
			return nil, invalidf("site %d (index %d): coordinate (%v, %v) is not finite", s.ID, i, s.X, s.Y)
		}
		if prev, dup := siteIndex[s.ID]; dup {
			return nil, invalidf("site id %d is used at index %d and %d", s.ID, prev, i)
		}
		siteIndex[s.ID] = i
	}

	order := make([]int, len(sites))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		sa, sb := sites[order[a]], sites[order[b]]
		if sa.X != sb.X {
			return sa.X < sb.X
		}
		if sa.Y != sb.Y {
			return sa.Y < sb.Y
		}
		return sa.ID < sb.ID
	})

	// pointOf maps a site index to its distinct point, -1 for a coincident
	// duplicate.
	pointOf := make([]int, len(sites))
	var points []Point
	var owners []int
	for i, idx := range order {
		s := sites[idx]
		if i > 0 {
			prev := sites[order[i-1]]
			if prev.X == s.X && prev.Y == s.Y {
				pointOf[idx] = -1
				continue
			}
		}
		pointOf[idx] = len(points)
		points = append(points, Point{X: s.X, Y: s.Y})
		owners = append(owners, idx)
	}

	if err := checkNonDegenerate(points); err != nil {
		return nil, err
	}

	d := &Diagram{
		sites:     append([]Site(nil), sites...),
		siteIndex: siteIndex,
		cells:     make([]Cell, len(sites)),
		neighbors: make([][]int, len(sites)),
	}

	n := newNormalizer(points)
	sweep := n.sweep(points)
	vertexOf := d.buildVertices(sweep, n)

	for idx, s := range sites {
		p := pointOf[idx]
		if p < 0 || sweep.cells[p] == nil {
			d.cells[idx] = Cell{SiteID: s.ID, State: CellDegenerate}
			continue
		}
		cell := sweep.cells[p]
		d.neighbors[idx] = sweep.neighbors(cell, owners, sites)
		d.cells[idx] = d.buildCell(s.ID, cell, sweep.box, vertexOf)
	}
	return d, nil
}

// checkNonDegenerate requires 3 distinct points that are not all collinear.
func checkNonDegenerate(points []Point) error {
	if len(points) < 3 {
		return &DegenerateError{Sites: len(points), Reason: "fewer than 3 distinct sites"}
	}
	a, b := points[0], points[1]
	for _, c := range points[2:] {
		if orient(a, b, c) != 0 {
			return nil
		}
	}
	return &DegenerateError{Sites: len(points), Reason: "all sites are collinear"}
}

// buildVertices registers every finite edge endpoint of the sweep as a
// diagram vertex, merging endpoints closer than closeTolerance. IDs follow
// (X, Y) order of the normalised coordinates.
func (d *Diagram) buildVertices(sw *sweepResult, n normalizer) map[voronoi.Vertex]int {
	seen := make(map[voronoi.Vertex]bool)
	var pts []voronoi.Vertex
	for _, e := range sw.diagram.Edges {
		for _, v := range []voronoi.Vertex{e.Va.Vertex, e.Vb.Vertex} {
			if v == voronoi.NO_VERTEX || onBox(v, sw.box) || seen[v] {
				continue
			}
			seen[v] = true
			pts = append(pts, v)
		}
	}
	sort.Slice(pts, func(a, b int) bool {
		if pts[a].X != pts[b].X {
			return pts[a].X < pts[b].X
		}
		return pts[a].Y < pts[b].Y
	})

	vertexOf := make(map[voronoi.Vertex]int, len(pts))
	var norm []voronoi.Vertex
	for _, v := range pts {
		id := -1
		for j := len(norm) - 1; j >= 0 && v.X-norm[j].X <= closeTolerance; j-- {
			if math.Abs(v.Y-norm[j].Y) <= closeTolerance {
				id = j
				break
			}
		}
		if id < 0 {
			id = len(norm)
			norm = append(norm, v)
			x, y := n.restore(v.X, v.Y)
			d.vertices = append(d.vertices, Vertex{ID: id, X: x, Y: y})
		}
		vertexOf[v] = id
	}
	d.normVertices = norm
	return vertexOf
}

// buildCell walks the half-edges of one sweep cell. A chain that does not
// close, or that touches the construction box, is unbounded.
func (d *Diagram) buildCell(siteID int, cell *voronoi.Cell, box voronoi.BBox, vertexOf map[voronoi.Vertex]int) Cell {
	hes := cell.Halfedges
	if len(hes) < 3 {
		return Cell{SiteID: siteID, State: CellUnbounded}
	}
	ring := make([]int, 0, len(hes))
	for i, he := range hes {
		start, end := he.GetStartpoint(), he.GetEndpoint()
		next := hes[(i+1)%len(hes)].GetStartpoint()
		if onBox(start, box) || onBox(end, box) || !near(end, next) {
			return Cell{SiteID: siteID, State: CellUnbounded}
		}
		v, ok := vertexOf[start]
		if !ok {
			return Cell{SiteID: siteID, State: CellUnbounded}
		}
		if len(ring) > 0 && ring[len(ring)-1] == v {
			continue
		}
		ring = append(ring, v)
	}
	for len(ring) > 1 && ring[0] == ring[len(ring)-1] {
		ring = ring[:len(ring)-1]
	}
	if len(ring) >= 3 && SignedArea(d.normPoints(ring)) < 0 {
		for i, j := 0, len(ring)-1; i < j; i, j = i+1, j-1 {
			ring[i], ring[j] = ring[j], ring[i]
		}
	}
	if !validRing(d.normPoints(ring)) {
		return Cell{SiteID: siteID, State: CellDegenerate}
	}
	return Cell{SiteID: siteID, Boundary: ring, State: CellBounded}
}

// validRing accepts a ring of at least 3 points with positive area and no
// clockwise turn beyond turnTolerance.
func validRing(pts []Point) bool {
	if len(pts) < 3 {
		return false
	}
	if SignedArea(pts) <= 0 {
		return false
	}
	n := len(pts)
	for i := 0; i < n; i++ {
		a, b, c := pts[(i+n-1)%n], pts[i], pts[(i+1)%n]
		ux, uy := b.X-a.X, b.Y-a.Y
		vx, vy := c.X-b.X, c.Y-b.Y
		cross := ux*vy - uy*vx
		if cross < -turnTolerance*math.Hypot(ux, uy)*math.Hypot(vx, vy) {
			return false
		}
	}
	return true
}

func (d *Diagram) points(ids []int) []Point {
	out := make([]Point, len(ids))
	for i, id := range ids {
		out[i] = Point{X: d.vertices[id].X, Y: d.vertices[id].Y}
	}
	return out
}

func (d *Diagram) normPoints(ids []int) []Point {
	out := make([]Point, len(ids))
	for i, id := range ids {
		out[i] = Point{X: d.normVertices[id].X, Y: d.normVertices[id].Y}
	}
	return out
}

// Sites returns the sites the diagram was built from, in input order.
func (d *Diagram) Sites() []Site {
	return d.sites
}

// Site returns the site with the given ID.
func (d *Diagram) Site(id int) (Site, bool) {
	i, ok := d.siteIndex[id]
	if !ok {
		return Site{}, false
	}
	return d.sites[i], true
}

// Vertices returns all diagram vertices indexed by ID.
func (d *Diagram) Vertices() []Vertex {
	return d.vertices
}

// Cells returns one cell per site, in input order.
func (d *Diagram) Cells() []Cell {
	return d.cells
}

// Cell returns the cell of the site with the given ID.
func (d *Diagram) Cell(siteID int) (Cell, bool) {
	i, ok := d.siteIndex[siteID]
	if !ok {
		return Cell{}, false
	}
	return d.cells[i], true
}

// Ring returns the boundary coordinates of a bounded cell, nil otherwise.
func (d *Diagram) Ring(siteID int) []Point {
	c, ok := d.Cell(siteID)
	if !ok || c.State != CellBounded {
		return nil
	}
	return d.points(c.Boundary)
}

// Neighbors returns the IDs of sites whose cells share an edge with siteID,
// in ascending order. Coincident duplicates have no neighbours.
func (d *Diagram) Neighbors(siteID int) []int {
	i, ok := d.siteIndex[siteID]
	if !ok {
		return nil
	}
	return d.neighbors[i]
}

package voronoi

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/beetlebugorg/voronoi/internal/geometry"
)

// Site is an input location. ID must be unique within a call; Label is
// carried through to the output polygon.
type Site = geometry.Site

// Point is a planar coordinate.
type Point = geometry.Point

// Polygon is the clipped region of one site: an open counter-clockwise ring
// of at least 3 vertices inside the bounding box.
type Polygon = geometry.ClippedPolygon

// SkippedSite records a site that produced no polygon.
type SkippedSite = geometry.SkippedSite

// SkipReason explains why a site was skipped.
type SkipReason = geometry.SkipReason

// Skip reasons.
const (
	SkipUnbounded  = geometry.SkipUnbounded
	SkipDegenerate = geometry.SkipDegenerate
)

// Error kinds. Use errors.Is to test for them.
var (
	ErrInvalidInput       = geometry.ErrInvalidInput
	ErrDegenerateGeometry = geometry.ErrDegenerateGeometry
)

// ComputeBoundedCells returns one clipped polygon per site whose cell is
// bounded, plus the sites that produced none.
//
// Polygons and skips follow the input order of sites. A stage failure aborts
// with a single error matching ErrInvalidInput or ErrDegenerateGeometry.
func ComputeBoundedCells(sites []Site, opts Options) ([]Polygon, []SkippedSite, error) {
	t, err := Tessellate(sites, opts)
	if err != nil {
		return nil, nil, err
	}
	return t.polygons, t.skipped, nil
}

// Tessellation is the result of Tessellate. It is immutable and safe for
// concurrent reads.
type Tessellation struct {
	sites    []Site
	polygons []Polygon
	skipped  []SkippedSite
	bounds   Bounds
	diagram  *geometry.Diagram
	index    *regionIndex
	bySite   map[int]int
}

// Tessellate runs the full pipeline and indexes the result for spatial
// queries.
//
// Example:
//
//	t, err := voronoi.Tessellate(sites, voronoi.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d regions, %d skipped\n", len(t.Polygons()), len(t.Skipped()))
func Tessellate(sites []Site, opts Options) (*Tessellation, error) {
	log := opts.logger()

	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if err := geometry.ValidateSites(sites); err != nil {
		return nil, err
	}

	start := time.Now()
	augmented, err := geometry.Augment(sites, opts.RingPoints, opts.RingMargin)
	if err != nil {
		return nil, fmt.Errorf("augment sites: %w", err)
	}
	log.Debug("augmented sites",
		zap.Int("sites", len(sites)),
		zap.Int("ring_points", opts.RingPoints),
		zap.Duration("elapsed", time.Since(start)))

	start = time.Now()
	diagram, err := geometry.BuildDiagram(augmented)
	if err != nil {
		return nil, fmt.Errorf("build diagram: %w", err)
	}
	log.Debug("built diagram",
		zap.Int("vertices", len(diagram.Vertices())),
		zap.Duration("elapsed", time.Since(start)))

	box := geometry.BoundsOf(augmented).Expand(opts.BoxMargin)

	start = time.Now()
	polygons, skipped := clipCells(diagram, sites, box, opts)
	log.Debug("clipped cells",
		zap.Int("polygons", len(polygons)),
		zap.Int("skipped", len(skipped)),
		zap.Bool("parallel", opts.Parallel),
		zap.Duration("elapsed", time.Since(start)))

	for _, s := range skipped {
		log.Warn("site skipped",
			zap.Int("site_id", s.SiteID),
			zap.String("reason", string(s.Reason)))
	}

	t := &Tessellation{
		sites:    append([]Site(nil), sites...),
		polygons: polygons,
		skipped:  skipped,
		bounds:   boundsFromBBox(box),
		diagram:  diagram,
		index:    buildRegionIndex(polygons, sites),
		bySite:   make(map[int]int, len(polygons)),
	}
	for i, p := range polygons {
		t.bySite[p.SiteID] = i
	}
	return t, nil
}

// Polygons returns the clipped regions in input order.
func (t *Tessellation) Polygons() []Polygon {
	return t.polygons
}

// Skipped returns the sites that produced no region, in input order.
func (t *Tessellation) Skipped() []SkippedSite {
	return t.skipped
}

// Sites returns the input sites.
func (t *Tessellation) Sites() []Site {
	return t.sites
}

// Bounds returns the clipping box.
func (t *Tessellation) Bounds() Bounds {
	return t.bounds
}

// Region returns the polygon of the site with the given ID.
func (t *Tessellation) Region(siteID int) (Polygon, bool) {
	i, ok := t.bySite[siteID]
	if !ok {
		return Polygon{}, false
	}
	return t.polygons[i], true
}

// Neighbors returns the IDs of input sites whose cells share an edge with
// the cell of siteID, in ascending order. Synthetic ring sites are omitted.
func (t *Tessellation) Neighbors(siteID int) []int {
	var out []int
	for _, id := range t.diagram.Neighbors(siteID) {
		if s, ok := t.diagram.Site(id); ok && !s.Synthetic {
			out = append(out, id)
		}
	}
	return out
}

// RegionAt returns the region containing (x, y). A point on a shared edge
// belongs to the region listed first in input order.
func (t *Tessellation) RegionAt(x, y float64) (Polygon, bool) {
	for _, i := range t.index.candidates(Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y}) {
		if containsPoint(t.polygons[i], x, y) {
			return t.polygons[i], true
		}
	}
	return Polygon{}, false
}

// RegionsInBounds returns all regions whose bounding box intersects b, in
// input order.
func (t *Tessellation) RegionsInBounds(b Bounds) []Polygon {
	var out []Polygon
	for _, i := range t.index.candidates(b) {
		out = append(out, t.polygons[i])
	}
	return out
}

// NearestSite returns the input site closest to (x, y).
func (t *Tessellation) NearestSite(x, y float64) (Site, bool) {
	i := t.index.nearest(x, y)
	if i < 0 {
		return Site{}, false
	}
	return t.sites[i], true
}

package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
)

// SkipReason explains why a site produced no polygon.
type SkipReason string

// Skip reasons.
const (
	SkipUnbounded  SkipReason = "unbounded"
	SkipDegenerate SkipReason = "degenerate"
)

// ClippedPolygon is the clipped cell of one original site. Vertices form an
// open counter-clockwise ring with at least 3 points inside the box.
type ClippedPolygon struct {
	SiteID   int
	Label    string
	Vertices []Point
}

// SkippedSite records a site that produced no polygon. Skips are not errors.
type SkippedSite struct {
	SiteID int
	Reason SkipReason
}

// ClipCell clips the cell of site to box. It returns either a polygon or a
// skip record, never both.
func ClipCell(d *Diagram, site Site, box BBox) (ClippedPolygon, *SkippedSite) {
	cell, ok := d.Cell(site.ID)
	if !ok {
		return ClippedPolygon{}, &SkippedSite{SiteID: site.ID, Reason: SkipDegenerate}
	}
	switch cell.State {
	case CellUnbounded:
		return ClippedPolygon{}, &SkippedSite{SiteID: site.ID, Reason: SkipUnbounded}
	case CellDegenerate:
		return ClippedPolygon{}, &SkippedSite{SiteID: site.ID, Reason: SkipDegenerate}
	}

	ring := ClipRing(d.points(cell.Boundary), box)
	if len(ring) < 3 {
		return ClippedPolygon{}, &SkippedSite{SiteID: site.ID, Reason: SkipDegenerate}
	}
	return ClippedPolygon{SiteID: site.ID, Label: site.Label, Vertices: ring}, nil
}

// ClipRing clips an open ring to box with orb's Sutherland-Hodgman clipper.
// Winding is preserved, consecutive duplicates are dropped and every output
// vertex is clamped into the box. Rings with fewer than 3 points left clip
// to nil.
//
// Coordinates are scaled by a power of two that brings the box extent near
// 1, which is exact and keeps the intersection products finite.
func ClipRing(ring []Point, box BBox) []Point {
	if len(ring) < 3 {
		return nil
	}
	exp := 0
	if ext := math.Max(box.Width(), box.Height()); ext > 0 && !math.IsInf(ext, 0) {
		exp = -math.Ilogb(ext)
	}
	scale := func(v float64) float64 { return math.Ldexp(v, exp) }

	in := make(orb.Ring, 0, len(ring)+1)
	for _, p := range ring {
		in = append(in, orb.Point{scale(p.X), scale(p.Y)})
	}
	in = append(in, in[0])
	bound := orb.Bound{
		Min: orb.Point{scale(box.MinX), scale(box.MinY)},
		Max: orb.Point{scale(box.MaxX), scale(box.MaxY)},
	}
	out := clip.Ring(bound, in)

	result := make([]Point, 0, len(out))
	for _, q := range out {
		p := Point{X: math.Ldexp(q[0], -exp), Y: math.Ldexp(q[1], -exp)}
		p.X = math.Min(math.Max(p.X, box.MinX), box.MaxX)
		p.Y = math.Min(math.Max(p.Y, box.MinY), box.MaxY)
		if len(result) > 0 && result[len(result)-1] == p {
			continue
		}
		result = append(result, p)
	}
	for len(result) > 1 && result[0] == result[len(result)-1] {
		result = result[:len(result)-1]
	}
	if len(result) < 3 {
		return nil
	}
	return result
}

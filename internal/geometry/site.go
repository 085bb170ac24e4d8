// Package geometry builds bounded Voronoi cells for planar sites.
//
// The pipeline is Augment (synthetic boundary ring), BuildDiagram (Fortune
// sweep) and ClipCell (Sutherland-Hodgman against a box). Coordinates are
// treated as flat Euclidean values even when they are latitude/longitude.
package geometry

import "math"

// Site is an input location. Synthetic sites are produced by Augment and
// never appear in output.
type Site struct {
	ID        int
	Label     string
	X         float64
	Y         float64
	Synthetic bool
}

// Point is a planar coordinate.
type Point struct {
	X, Y float64
}

// BBox is an axis-aligned rectangle.
type BBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// BoundsOf returns the tight bounding box of the sites.
func BoundsOf(sites []Site) BBox {
	if len(sites) == 0 {
		return BBox{}
	}
	b := BBox{MinX: sites[0].X, MinY: sites[0].Y, MaxX: sites[0].X, MaxY: sites[0].Y}
	for _, s := range sites[1:] {
		b.MinX = math.Min(b.MinX, s.X)
		b.MinY = math.Min(b.MinY, s.Y)
		b.MaxX = math.Max(b.MaxX, s.X)
		b.MaxY = math.Max(b.MaxY, s.Y)
	}
	return b
}

// Expand returns the box grown by margin on every side.
func (b BBox) Expand(margin float64) BBox {
	return BBox{
		MinX: b.MinX - margin,
		MinY: b.MinY - margin,
		MaxX: b.MaxX + margin,
		MaxY: b.MaxY + margin,
	}
}

// Contains reports whether p lies inside the box, edges included.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Width returns MaxX-MinX.
func (b BBox) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

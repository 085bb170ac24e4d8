package voronoi

import "github.com/beetlebugorg/voronoi/internal/geometry"

// Bounds represents an axis-aligned rectangle in site coordinates.
type Bounds struct {
	MinX float64 // Left edge
	MaxX float64 // Right edge
	MinY float64 // Bottom edge
	MaxY float64 // Top edge
}

// Contains returns true if the point (x, y) is within the bounds.
func (b Bounds) Contains(x, y float64) bool {
	return x >= b.MinX && x <= b.MaxX &&
		y >= b.MinY && y <= b.MaxY
}

// Intersects returns true if the given bounds intersects with this bounds.
func (b Bounds) Intersects(other Bounds) bool {
	return !(other.MaxX < b.MinX ||
		other.MinX > b.MaxX ||
		other.MaxY < b.MinY ||
		other.MinY > b.MaxY)
}

// Expand returns a new Bounds expanded by the given margin in all directions.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		MinX: b.MinX - margin,
		MaxX: b.MaxX + margin,
		MinY: b.MinY - margin,
		MaxY: b.MaxY + margin,
	}
}

// Union returns the smallest bounds containing both.
func (b Bounds) Union(other Bounds) Bounds {
	if other.MinX < b.MinX {
		b.MinX = other.MinX
	}
	if other.MaxX > b.MaxX {
		b.MaxX = other.MaxX
	}
	if other.MinY < b.MinY {
		b.MinY = other.MinY
	}
	if other.MaxY > b.MaxY {
		b.MaxY = other.MaxY
	}
	return b
}

// Width returns MaxX-MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

func boundsFromBBox(b geometry.BBox) Bounds {
	return Bounds{MinX: b.MinX, MaxX: b.MaxX, MinY: b.MinY, MaxY: b.MaxY}
}

// polygonBounds calculates the bounding box of a polygon's vertices.
func polygonBounds(p Polygon) Bounds {
	if len(p.Vertices) == 0 {
		return Bounds{}
	}

	first := p.Vertices[0]
	bounds := Bounds{MinX: first.X, MaxX: first.X, MinY: first.Y, MaxY: first.Y}
	for _, v := range p.Vertices[1:] {
		bounds = bounds.Union(Bounds{MinX: v.X, MaxX: v.X, MinY: v.Y, MaxY: v.Y})
	}
	return bounds
}

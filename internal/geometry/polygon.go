package geometry

import "math"

// SignedArea returns the shoelace area of an open ring. It is positive for
// counter-clockwise rings.
func SignedArea(ring []Point) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[(i+1)%n]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum / 2
}

// Area returns the absolute area of an open ring.
func Area(ring []Point) float64 {
	return math.Abs(SignedArea(ring))
}

// PolygonCentroid returns the area centroid of an open ring. ok is false for
// rings with zero area.
func PolygonCentroid(ring []Point) (c Point, ok bool) {
	a := SignedArea(ring)
	if a == 0 {
		return Point{}, false
	}
	n := len(ring)
	var cx, cy float64
	for i := 0; i < n; i++ {
		p, q := ring[i], ring[(i+1)%n]
		f := p.X*q.Y - q.X*p.Y
		cx += (p.X + q.X) * f
		cy += (p.Y + q.Y) * f
	}
	return Point{X: cx / (6 * a), Y: cy / (6 * a)}, true
}

// IsConvex reports whether a counter-clockwise ring never turns clockwise.
// Collinear vertices are allowed.
func IsConvex(ring []Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	for i := 0; i < n; i++ {
		if orient(ring[i], ring[(i+1)%n], ring[(i+2)%n]) < 0 {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether p lies inside or on the boundary of an open
// ring, using the crossing number rule.
func ContainsPoint(ring []Point, p Point) bool {
	n := len(ring)
	if n < 3 {
		return false
	}
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := ring[i], ring[j]
		if onSegment(a, b, p) {
			return true
		}
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegment(a, b, p Point) bool {
	if orient(a, b, p) != 0 {
		return false
	}
	return p.X >= math.Min(a.X, b.X) && p.X <= math.Max(a.X, b.X) &&
		p.Y >= math.Min(a.Y, b.Y) && p.Y <= math.Max(a.Y, b.Y)
}

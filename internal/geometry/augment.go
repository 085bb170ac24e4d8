package geometry

import (
	"math"
)

// Default augmentation parameters.
const (
	DefaultRingPoints = 100
	DefaultRingMargin = 10.0
)

// Augment appends a ring of synthetic sites around the originals so every
// original site ends up strictly inside the convex hull of the result.
//
// The ring is centred on the mean of the originals and maxRadius is the
// largest centroid distance plus margin. Ring points sit at
// maxRadius/cos(pi/n) rather than at maxRadius: the chords of the ring
// polygon, not only its corners, then stay at least margin away from every
// original. The n angles 2*pi*k/n are all distinct.
//
// Synthetic IDs continue after the largest original ID. An *InputError is
// returned when they would overflow int.
func Augment(sites []Site, ringPoints int, margin float64) ([]Site, error) {
	if len(sites) == 0 {
		return nil, invalidf("cannot augment an empty site set")
	}
	if ringPoints < 3 {
		return nil, invalidf("ring point count must be at least 3, got %d", ringPoints)
	}
	if !(margin > 0) || math.IsInf(margin, 0) {
		return nil, invalidf("ring margin must be positive and finite, got %v", margin)
	}

	c := Centroid(sites)
	maxID := sites[0].ID
	maxRadius := 0.0
	for _, s := range sites {
		if d := math.Hypot(s.X-c.X, s.Y-c.Y); d > maxRadius {
			maxRadius = d
		}
		if s.ID > maxID {
			maxID = s.ID
		}
	}
	if maxID > math.MaxInt-ringPoints {
		return nil, invalidf("site id %d leaves no room for %d synthetic ids", maxID, ringPoints)
	}
	maxRadius += margin
	radius := maxRadius / math.Cos(math.Pi/float64(ringPoints))

	out := make([]Site, 0, len(sites)+ringPoints)
	out = append(out, sites...)
	step := 2 * math.Pi / float64(ringPoints)
	for k := 0; k < ringPoints; k++ {
		angle := step * float64(k)
		out = append(out, Site{
			ID:        maxID + 1 + k,
			X:         c.X + radius*math.Cos(angle),
			Y:         c.Y + radius*math.Sin(angle),
			Synthetic: true,
		})
	}
	return out, nil
}

// Centroid returns the arithmetic mean of the site coordinates.
func Centroid(sites []Site) Point {
	var sx, sy float64
	for _, s := range sites {
		sx += s.X
		sy += s.Y
	}
	n := float64(len(sites))
	return Point{X: sx / n, Y: sy / n}
}

package geometry

import (
	"math"
)

// ValidateCoordinate rejects NaN and infinite coordinates.
func ValidateCoordinate(x, y float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return invalidf("coordinate (%v, %v) is not finite", x, y)
	}
	return nil
}

// ValidateSites checks a caller-supplied site set before augmentation.
//
// The set must be non-empty, every coordinate finite, every ID unique, and no
// site may claim to be synthetic. Coincident coordinates are allowed; the
// builder resolves them.
func ValidateSites(sites []Site) error {
	if len(sites) == 0 {
		return invalidf("site set is empty")
	}

	seen := make(map[int]int, len(sites))
	for i, s := range sites {
		if err := ValidateCoordinate(s.X, s.Y); err != nil {
			return invalidf("site %d (index %d): coordinate (%v, %v) is not finite", s.ID, i, s.X, s.Y)
		}
		if s.Synthetic {
			return invalidf("site %d (index %d) is marked synthetic", s.ID, i)
		}
		if prev, dup := seen[s.ID]; dup {
			return invalidf("site id %d is used at index %d and %d", s.ID, prev, i)
		}
		seen[s.ID] = i
	}
	return nil
}

package geofile

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Centroid returns the planar area centroid of a longitude/latitude ring.
// Rings with fewer than 3 points or zero area have no centroid.
func Centroid(ring orb.Ring) (lon, lat float64, err error) {
	if len(ring) < 3 {
		return 0, 0, fmt.Errorf("centroid: ring has %d points, need at least 3", len(ring))
	}
	if !ring.Closed() {
		ring = append(append(orb.Ring(nil), ring...), ring[0])
	}

	c, area := planar.CentroidArea(orb.Polygon{ring})
	if area == 0 || math.IsNaN(c[0]) || math.IsNaN(c[1]) {
		return 0, 0, fmt.Errorf("centroid: ring has zero area")
	}
	return c[0], c[1], nil
}

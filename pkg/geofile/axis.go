package geofile

import (
	"fmt"
	"strings"

	"github.com/paulmach/orb"

	"github.com/beetlebugorg/voronoi/pkg/voronoi"
)

// Axis maps between file longitude/latitude and planar (X, Y).
type Axis int

const (
	// AxisLonLat uses X = longitude, Y = latitude.
	AxisLonLat Axis = iota

	// AxisLatLon uses X = latitude, Y = longitude.
	AxisLatLon
)

// String returns the axis name used in configuration.
func (a Axis) String() string {
	switch a {
	case AxisLonLat:
		return "lonlat"
	case AxisLatLon:
		return "latlon"
	default:
		return "unknown"
	}
}

// ParseAxis parses "lonlat" or "latlon". Empty selects AxisLonLat.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lonlat", "xy":
		return AxisLonLat, nil
	case "latlon", "yx":
		return AxisLatLon, nil
	default:
		return AxisLonLat, fmt.Errorf("unknown axis order %q (want lonlat or latlon)", s)
	}
}

// XY converts a file coordinate to planar coordinates.
func (a Axis) XY(lon, lat float64) (x, y float64) {
	if a == AxisLatLon {
		return lat, lon
	}
	return lon, lat
}

// LonLat converts planar coordinates back to a file coordinate.
func (a Axis) LonLat(x, y float64) (lon, lat float64) {
	if a == AxisLatLon {
		return y, x
	}
	return x, y
}

// ring converts a polygon to a closed longitude/latitude ring.
func (a Axis) ring(vertices []voronoi.Point) orb.Ring {
	ring := make(orb.Ring, 0, len(vertices)+1)
	for _, v := range vertices {
		lon, lat := a.LonLat(v.X, v.Y)
		ring = append(ring, orb.Point{lon, lat})
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	// KML and GeoJSON expect counter-clockwise outer rings in lon/lat.
	if a == AxisLatLon {
		ring.Reverse()
	}
	return ring
}

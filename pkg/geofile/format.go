package geofile

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/beetlebugorg/voronoi/pkg/voronoi"
)

// Format identifies an output encoding for regions.
type Format string

// Supported output formats.
const (
	FormatKML     Format = "kml"
	FormatGeoJSON Format = "geojson"
	FormatWKT     Format = "wkt"
)

// ParseFormat parses a format name. Empty selects FormatKML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatKML, nil
	case FormatKML, FormatGeoJSON, FormatWKT:
		return f, nil
	case "json":
		return FormatGeoJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want kml, geojson or wkt)", s)
	}
}

// Extension returns the file extension for the format, including the dot.
func (f Format) Extension() string {
	switch f {
	case FormatGeoJSON:
		return ".geojson"
	case FormatWKT:
		return ".wkt"
	default:
		return ".kml"
	}
}

// FormatFromPath guesses the format from a file extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".kml":
		return FormatKML, true
	case ".geojson", ".json":
		return FormatGeoJSON, true
	case ".wkt":
		return FormatWKT, true
	default:
		return "", false
	}
}

// WriteOptions controls how regions are written.
type WriteOptions struct {
	// Axis maps planar coordinates back to longitude/latitude.
	Axis Axis

	// DocumentName names the KML Document. Ignored by other formats.
	DocumentName string
}

// DefaultWriteOptions returns options for lon/lat output.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{
		Axis:         AxisLonLat,
		DocumentName: "Voronoi regions",
	}
}

// WritePolygons writes regions in the given format.
func WritePolygons(w io.Writer, format Format, polygons []voronoi.Polygon, opts WriteOptions) error {
	switch format {
	case FormatKML:
		return WriteKML(w, polygons, opts)
	case FormatGeoJSON:
		return WriteGeoJSON(w, polygons, opts)
	case FormatWKT:
		return WriteWKT(w, polygons, opts)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// placemarkName returns the display name of a region.
func placemarkName(p voronoi.Polygon) string {
	if p.Label != "" {
		return p.Label
	}
	return fmt.Sprintf("site %d", p.SiteID)
}

package geofile

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/beetlebugorg/voronoi/pkg/voronoi"
)

// WriteGeoJSON writes regions as a FeatureCollection of Polygons. Each
// feature carries site_id and label properties.
func WriteGeoJSON(w io.Writer, polygons []voronoi.Polygon, opts WriteOptions) error {
	fc := geojson.NewFeatureCollection()
	for _, p := range polygons {
		f := geojson.NewFeature(orb.Polygon{opts.Axis.ring(p.Vertices)})
		f.Properties["site_id"] = p.SiteID
		f.Properties["label"] = p.Label
		fc.Append(f)
	}

	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode GeoJSON: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write GeoJSON: %w", err)
	}
	return nil
}

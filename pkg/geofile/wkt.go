package geofile

import (
	"fmt"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"github.com/beetlebugorg/voronoi/pkg/voronoi"
)

// WriteWKT writes one POLYGON per line, in region order.
func WriteWKT(w io.Writer, polygons []voronoi.Polygon, opts WriteOptions) error {
	for _, p := range polygons {
		line := wkt.MarshalString(orb.Polygon{opts.Axis.ring(p.Vertices)})
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write WKT: %w", err)
		}
	}
	return nil
}

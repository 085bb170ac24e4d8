package geofile

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/paulmach/orb"

	"github.com/beetlebugorg/voronoi/pkg/voronoi"
)

const kmlNamespace = "http://www.opengis.net/kml/2.2"

// XML structures for KML documents. Only the elements used for sites,
// regions and centroids are modelled; everything else is ignored on read.
type kmlRoot struct {
	XMLName    xml.Name       `xml:"kml"`
	Xmlns      string         `xml:"xmlns,attr,omitempty"`
	Document   *kmlContainer  `xml:"Document"`
	Folder     *kmlContainer  `xml:"Folder"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
}

type kmlContainer struct {
	Name       string         `xml:"name,omitempty"`
	Placemarks []kmlPlacemark `xml:"Placemark"`
	Folders    []kmlContainer `xml:"Folder"`
	Documents  []kmlContainer `xml:"Document"`
}

type kmlPlacemark struct {
	Name          string            `xml:"name"`
	Description   string            `xml:"description,omitempty"`
	Point         *kmlPoint         `xml:"Point"`
	Polygon       *kmlPolygon       `xml:"Polygon"`
	MultiGeometry *kmlMultiGeometry `xml:"MultiGeometry"`
}

type kmlPoint struct {
	Coordinates string `xml:"coordinates"`
}

type kmlPolygon struct {
	Outer kmlLinearRing `xml:"outerBoundaryIs>LinearRing"`
}

type kmlLinearRing struct {
	Coordinates string `xml:"coordinates"`
}

type kmlMultiGeometry struct {
	Points   []kmlPoint   `xml:"Point"`
	Polygons []kmlPolygon `xml:"Polygon"`
}

// KMLOptions controls KML site parsing.
type KMLOptions struct {
	// Axis maps longitude/latitude onto planar coordinates.
	Axis Axis
}

// ReadSitesKML reads every Placemark Point in a KML document, at any
// Document/Folder depth. The Placemark name becomes the site label and
// sites are numbered from 0 in depth-first order.
func ReadSitesKML(r io.Reader, opts KMLOptions) ([]voronoi.Site, error) {
	root, err := decodeKML(r)
	if err != nil {
		return nil, err
	}

	var sites []voronoi.Site
	var walkErr error
	root.walk(func(pm kmlPlacemark) bool {
		points := make([]kmlPoint, 0, 1)
		if pm.Point != nil {
			points = append(points, *pm.Point)
		}
		if pm.MultiGeometry != nil {
			points = append(points, pm.MultiGeometry.Points...)
		}
		for _, pt := range points {
			coords, err := parseCoordinates(pt.Coordinates)
			if err != nil {
				walkErr = fmt.Errorf("placemark %q: %w", pm.Name, err)
				return false
			}
			if len(coords) != 1 {
				walkErr = fmt.Errorf("placemark %q: point has %d coordinates", pm.Name, len(coords))
				return false
			}
			site := voronoi.Site{ID: len(sites), Label: strings.TrimSpace(pm.Name)}
			site.X, site.Y = opts.Axis.XY(coords[0][0], coords[0][1])
			sites = append(sites, site)
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return sites, nil
}

// ReadPolygonKML returns the name and outer ring of the first Placemark
// Polygon in a KML document, at any Document/Folder depth.
func ReadPolygonKML(r io.Reader) (string, orb.Ring, error) {
	root, err := decodeKML(r)
	if err != nil {
		return "", nil, err
	}

	var (
		name    string
		ring    orb.Ring
		ringErr error
	)
	root.walk(func(pm kmlPlacemark) bool {
		poly := pm.Polygon
		if poly == nil && pm.MultiGeometry != nil && len(pm.MultiGeometry.Polygons) > 0 {
			poly = &pm.MultiGeometry.Polygons[0]
		}
		if poly == nil {
			return true
		}
		coords, err := parseCoordinates(poly.Outer.Coordinates)
		if err != nil {
			ringErr = fmt.Errorf("placemark %q: %w", pm.Name, err)
			return false
		}
		name, ring = strings.TrimSpace(pm.Name), coords
		return false
	})
	if ringErr != nil {
		return "", nil, ringErr
	}
	if ring == nil {
		return "", nil, fmt.Errorf("kml: document does not contain a Polygon")
	}
	return name, ring, nil
}

// WriteKML writes one Placemark Polygon per region inside a Document.
func WriteKML(w io.Writer, polygons []voronoi.Polygon, opts WriteOptions) error {
	doc := &kmlContainer{Name: opts.DocumentName}
	for _, p := range polygons {
		doc.Placemarks = append(doc.Placemarks, kmlPlacemark{
			Name: placemarkName(p),
			Polygon: &kmlPolygon{
				Outer: kmlLinearRing{Coordinates: formatCoordinates(opts.Axis.ring(p.Vertices))},
			},
		})
	}
	return encodeKML(w, &kmlRoot{Xmlns: kmlNamespace, Document: doc})
}

// WriteCentroidKML writes a single Point placemark marking the centroid of
// the named polygon.
func WriteCentroidKML(w io.Writer, name string, lon, lat float64) error {
	pm := kmlPlacemark{
		Name:        " ",
		Description: name + " centroid",
		Point:       &kmlPoint{Coordinates: formatCoordinates([]orb.Point{{lon, lat}})},
	}
	return encodeKML(w, &kmlRoot{
		Xmlns:    kmlNamespace,
		Document: &kmlContainer{Placemarks: []kmlPlacemark{pm}},
	})
}

func decodeKML(r io.Reader) (*kmlRoot, error) {
	var root kmlRoot
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("parse KML: %w", err)
	}
	return &root, nil
}

func encodeKML(w io.Writer, root *kmlRoot) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("write KML: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(root); err != nil {
		return fmt.Errorf("write KML: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("write KML: %w", err)
	}
	return nil
}

// walk visits placemarks in document order until fn returns false.
func (k *kmlRoot) walk(fn func(kmlPlacemark) bool) {
	for _, pm := range k.Placemarks {
		if !fn(pm) {
			return
		}
	}
	for _, c := range []*kmlContainer{k.Document, k.Folder} {
		if c != nil && !c.walk(fn) {
			return
		}
	}
}

func (c *kmlContainer) walk(fn func(kmlPlacemark) bool) bool {
	for _, pm := range c.Placemarks {
		if !fn(pm) {
			return false
		}
	}
	for i := range c.Folders {
		if !c.Folders[i].walk(fn) {
			return false
		}
	}
	for i := range c.Documents {
		if !c.Documents[i].walk(fn) {
			return false
		}
	}
	return true
}

// parseCoordinates parses a KML coordinates string: whitespace separated
// "lon,lat[,alt]" tuples.
func parseCoordinates(s string) ([]orb.Point, error) {
	var out []orb.Point
	for _, tuple := range strings.Fields(s) {
		parts := strings.Split(tuple, ",")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, fmt.Errorf("invalid coordinate tuple %q", tuple)
		}
		lon, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid longitude in %q", tuple)
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid latitude in %q", tuple)
		}
		out = append(out, orb.Point{lon, lat})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("empty coordinates")
	}
	return out, nil
}

// formatCoordinates renders points as "lon,lat,0" tuples.
func formatCoordinates(points []orb.Point) string {
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = strconv.FormatFloat(p[0], 'f', -1, 64) + "," +
			strconv.FormatFloat(p[1], 'f', -1, 64) + ",0"
	}
	return strings.Join(parts, " ")
}

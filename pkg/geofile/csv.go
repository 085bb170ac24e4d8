package geofile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/beetlebugorg/voronoi/pkg/voronoi"
)

// Recognised CSV header names, compared case-insensitively.
var (
	latitudeColumns  = []string{"lat", "latitude"}
	longitudeColumns = []string{"lon", "lng", "long", "longitude"}
	labelColumns     = []string{"name", "label", "id"}
)

// CSVOptions controls CSV site parsing.
type CSVOptions struct {
	// Axis maps longitude/latitude onto planar coordinates.
	Axis Axis

	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// ReadSitesCSV reads sites from a CSV table with a header row.
//
// The header must name a latitude column (lat, latitude) and a longitude
// column (lon, lng, long, longitude). An optional name, label or id column
// becomes the site label. Sites are numbered from 0 in row order.
func ReadSitesCSV(r io.Reader, opts CSVOptions) ([]voronoi.Site, error) {
	reader := csv.NewReader(r)
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read csv: missing header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}

	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	latCol := findColumn(header, latitudeColumns)
	lonCol := findColumn(header, longitudeColumns)
	labelCol := findColumn(header, labelColumns)
	if latCol < 0 || lonCol < 0 {
		return nil, fmt.Errorf("read csv: header %v needs latitude and longitude columns", header)
	}

	var sites []voronoi.Site
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line, _ := reader.FieldPos(0)

		if isBlank(record) {
			continue
		}
		if latCol >= len(record) || lonCol >= len(record) {
			return nil, fmt.Errorf("line %d: expected at least %d fields, got %d", line, max(latCol, lonCol)+1, len(record))
		}

		lat, err := strconv.ParseFloat(strings.TrimSpace(record[latCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid latitude %q", line, record[latCol])
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(record[lonCol]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid longitude %q", line, record[lonCol])
		}

		site := voronoi.Site{ID: len(sites)}
		site.X, site.Y = opts.Axis.XY(lon, lat)
		if labelCol >= 0 && labelCol < len(record) {
			site.Label = strings.TrimSpace(record[labelCol])
		}
		sites = append(sites, site)
	}
	return sites, nil
}

func findColumn(header []string, names []string) int {
	for _, name := range names {
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
	}
	return -1
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beetlebugorg/voronoi/pkg/geofile"
	"github.com/beetlebugorg/voronoi/pkg/voronoi"
)

// CellsOptions holds flags for the cells command. Flags left unset fall
// back to configuration.
type CellsOptions struct {
	Output     string
	Format     string
	Axis       string
	RingPoints int
	RingMargin float64
	BoxMargin  float64
	Workers    int
	Serial     bool
}

// NewCellsCmd computes bounded Voronoi regions for a site file.
func NewCellsCmd() *cobra.Command {
	opts := &CellsOptions{}

	cmd := &cobra.Command{
		Use:   "cells <sites.csv|sites.kml>",
		Short: "Compute bounded Voronoi regions for a set of sites",
		Long: "Reads sites from a CSV table (lat/lon columns) or the Point placemarks\n" +
			"of a KML file and writes one clipped polygon per site. Sites whose\n" +
			"region cannot be bounded are reported on stderr.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCells(cmd, args[0], opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.Output, "output", "o", "", "output file (default: stdout)")
	f.StringVarP(&opts.Format, "format", "f", "", "output format (kml, geojson, wkt)")
	f.StringVar(&opts.Axis, "axis", "", "coordinate order mapped to x,y (lonlat, latlon)")
	f.IntVar(&opts.RingPoints, "ring-points", 0, "number of synthetic boundary sites")
	f.Float64Var(&opts.RingMargin, "ring-margin", 0, "distance of the boundary ring beyond the farthest site")
	f.Float64Var(&opts.BoxMargin, "box-margin", 0, "margin added around the clipping box")
	f.IntVar(&opts.Workers, "workers", 0, "clipping goroutines (0 = one per CPU)")
	f.BoolVar(&opts.Serial, "serial", false, "clip cells on a single goroutine")
	return cmd
}

func runCells(cmd *cobra.Command, input string, opts *CellsOptions) error {
	cc, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}
	cfg := cc.Config
	log := cc.Logger

	flags := cmd.Flags()
	if flags.Changed("axis") {
		cfg.Output.Axis = opts.Axis
	}
	if flags.Changed("format") {
		cfg.Output.Format = opts.Format
	} else if opts.Output != "" {
		if f, ok := geofile.FormatFromPath(opts.Output); ok {
			cfg.Output.Format = string(f)
		}
	}
	if flags.Changed("ring-points") {
		cfg.Tessellation.RingPoints = opts.RingPoints
	}
	if flags.Changed("ring-margin") {
		cfg.Tessellation.RingMargin = opts.RingMargin
	}
	if flags.Changed("box-margin") {
		cfg.Tessellation.BoxMargin = opts.BoxMargin
	}
	if flags.Changed("workers") {
		cfg.Tessellation.Workers = opts.Workers
	}
	if opts.Serial {
		cfg.Tessellation.Parallel = false
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	sites, err := readSites(input, cfg.Axis())
	if err != nil {
		return err
	}
	log.Info("read sites", zap.String("input", input), zap.Int("count", len(sites)))

	vopts := cfg.Options()
	vopts.Logger = log
	t, err := voronoi.Tessellate(sites, vopts)
	if err != nil {
		return fmt.Errorf("tessellate %s: %w", input, err)
	}

	wopts := geofile.DefaultWriteOptions()
	wopts.Axis = cfg.Axis()
	wopts.DocumentName = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	if err := writeRegions(cmd.OutOrStdout(), opts.Output, cfg.Format(), t.Polygons(), wopts); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%d regions written, %d sites skipped\n", len(t.Polygons()), len(t.Skipped()))
	for _, s := range t.Skipped() {
		fmt.Fprintf(cmd.ErrOrStderr(), "  skipped site %d: %s\n", s.SiteID, s.Reason)
	}
	return nil
}

// readSites picks a reader by file extension.
func readSites(path string, axis geofile.Axis) ([]voronoi.Site, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open sites: %w", err)
	}
	defer f.Close()

	var sites []voronoi.Site
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		sites, err = geofile.ReadSitesCSV(f, geofile.CSVOptions{Axis: axis})
	case ".kml":
		sites, err = geofile.ReadSitesKML(f, geofile.KMLOptions{Axis: axis})
	default:
		return nil, fmt.Errorf("unsupported site file %q (want .csv or .kml)", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return sites, nil
}

// writeRegions writes to path, or to stdout when path is empty.
func writeRegions(stdout io.Writer, path string, format geofile.Format, polygons []voronoi.Polygon, opts geofile.WriteOptions) error {
	if path == "" {
		return geofile.WritePolygons(stdout, format, polygons, opts)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := geofile.WritePolygons(f, format, polygons, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

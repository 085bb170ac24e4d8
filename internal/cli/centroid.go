package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/beetlebugorg/voronoi/pkg/geofile"
)

// NewCentroidCmd prints the centroid of a KML polygon and saves it as a
// placemark next to the input.
func NewCentroidCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "centroid <polygon.kml>",
		Short: "Compute the centroid of a KML polygon",
		Long: "Prints the area centroid of the first Polygon in a KML file as\n" +
			"\"lat,lon\" and writes it as a Point placemark to <name>_centroid.kml\n" +
			"in the same directory.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCentroid(cmd, args[0])
		},
	}
}

func runCentroid(cmd *cobra.Command, path string) error {
	cc, err := GetCLIContext(cmd)
	if err != nil {
		return err
	}

	in, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open polygon: %w", err)
	}
	name, ring, err := geofile.ReadPolygonKML(in)
	in.Close()
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	lon, lat, err := geofile.Centroid(ring)
	if err != nil {
		return fmt.Errorf("centroid of %s: %w", path, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%v,%v\n", lat, lon)

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(filepath.Dir(path), title+"_centroid.kml")
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create centroid placemark: %w", err)
	}
	if err := geofile.WriteCentroidKML(out, name, lon, lat); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	cc.Logger.Info("wrote centroid placemark", zap.String("path", outPath))
	fmt.Fprintf(cmd.ErrOrStderr(), "Centroid placemark saved as %s\n", outPath)
	return nil
}

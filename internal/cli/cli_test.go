package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beetlebugorg/voronoi/pkg/geofile"
)

const sitesCSV = "name,lat,lon\n" +
	"A,42.00,-71.00\n" +
	"B,42.10,-70.80\n" +
	"C,42.30,-70.90\n" +
	"D,41.90,-70.70\n" +
	"E,42.05,-70.95\n"

// run executes the root command with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRootCommandStructure(t *testing.T) {
	cmd := NewRootCommand()
	assert.Equal(t, "voronoi", cmd.Use)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	for _, want := range []string{"cells", "centroid", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}

	for _, flag := range []string{"config", "log-level", "log-format"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestVersionCmd(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "voronoi dev")
}

func TestCellsKMLToStdout(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "sites.csv", sitesCSV)

	stdout, stderr, err := run(t, "cells", input)
	require.NoError(t, err)
	assert.Contains(t, stderr, "5 regions written, 0 sites skipped")

	name, ring, err := geofile.ReadPolygonKML(strings.NewReader(stdout))
	require.NoError(t, err)
	assert.Equal(t, "A", name)
	assert.GreaterOrEqual(t, len(ring), 4)
	assert.Equal(t, 5, strings.Count(stdout, "<Placemark>"))
}

func TestCellsGeoJSONFromOutputExtension(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "sites.csv", sitesCSV)
	output := filepath.Join(dir, "regions.geojson")

	stdout, _, err := run(t, "cells", input, "-o", output, "--serial", "--ring-points", "24")
	require.NoError(t, err)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	fc, err := geojson.UnmarshalFeatureCollection(data)
	require.NoError(t, err)
	require.Len(t, fc.Features, 5)
	assert.Equal(t, "E", fc.Features[4].Properties.MustString("label"))
}

func TestCellsFromKML(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "sites.kml", `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2"><Document>
<Placemark><name>A</name><Point><coordinates>-71.0,42.0,0</coordinates></Point></Placemark>
<Placemark><name>B</name><Point><coordinates>-70.8,42.1,0</coordinates></Point></Placemark>
<Placemark><name>C</name><Point><coordinates>-70.9,42.3,0</coordinates></Point></Placemark>
</Document></kml>`)

	stdout, stderr, err := run(t, "cells", input, "--format", "wkt")
	require.NoError(t, err)
	assert.Contains(t, stderr, "3 regions written")
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 3)
	assert.True(t, strings.HasPrefix(stdout, "POLYGON(("))
}

func TestCellsReportsSkippedSites(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "sites.csv", sitesCSV+"A2,42.00,-71.00\n")

	_, stderr, err := run(t, "cells", input, "--format", "wkt")
	require.NoError(t, err)
	assert.Contains(t, stderr, "5 regions written, 1 sites skipped")
	assert.Contains(t, stderr, "skipped site 5: degenerate")
}

func TestCellsErrors(t *testing.T) {
	dir := t.TempDir()
	csv := writeFile(t, dir, "sites.csv", sitesCSV)
	empty := writeFile(t, dir, "empty.csv", "lat,lon\n")
	txt := writeFile(t, dir, "sites.txt", sitesCSV)

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"missing arg", []string{"cells"}, "accepts 1 arg"},
		{"missing file", []string{"cells", filepath.Join(dir, "nope.csv")}, "open sites"},
		{"extension", []string{"cells", txt}, "unsupported site file"},
		{"format", []string{"cells", csv, "--format", "svg"}, "output.format"},
		{"ring points", []string{"cells", csv, "--ring-points", "2"}, "ring_points"},
		{"no sites", []string{"cells", empty}, "site set is empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

// TestCentroidCmd writes a square region and checks the printed centroid
// and the placemark file written next to it.
func TestCentroidCmd(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "harbor.kml", `<?xml version="1.0" encoding="UTF-8"?>
<kml xmlns="http://www.opengis.net/kml/2.2"><Document><Placemark><name>Harbor</name>
<Polygon><outerBoundaryIs><LinearRing><coordinates>
-71,42,0 -70,42,0 -70,43,0 -71,43,0 -71,42,0
</coordinates></LinearRing></outerBoundaryIs></Polygon></Placemark></Document></kml>`)

	stdout, stderr, err := run(t, "centroid", input)
	require.NoError(t, err)
	assert.Equal(t, "42.5,-70.5\n", stdout)

	outPath := filepath.Join(dir, "harbor_centroid.kml")
	assert.Contains(t, stderr, outPath)

	f, err := os.Open(outPath)
	require.NoError(t, err)
	defer f.Close()
	sites, err := geofile.ReadSitesKML(f, geofile.KMLOptions{})
	require.NoError(t, err)
	require.Len(t, sites, 1)
	assert.Equal(t, -70.5, sites[0].X)
	assert.Equal(t, 42.5, sites[0].Y)
}

func TestCentroidCmdNoPolygon(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "empty.kml", `<kml><Document/></kml>`)

	_, _, err := run(t, "centroid", input)
	assert.ErrorContains(t, err, "does not contain a Polygon")
}

func TestConfigFileFlag(t *testing.T) {
	dir := t.TempDir()
	input := writeFile(t, dir, "sites.csv", sitesCSV)
	cfgPath := writeFile(t, dir, "voronoi.yaml", "output:\n  format: wkt\n")

	stdout, _, err := run(t, "--config", cfgPath, "cells", input)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "POLYGON(("))

	_, _, err = run(t, "--config", filepath.Join(dir, "missing.yaml"), "version")
	assert.ErrorContains(t, err, "failed to read config file")
}

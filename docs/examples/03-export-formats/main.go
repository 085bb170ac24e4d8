package main

import (
	"log"
	"os"

	"github.com/beetlebugorg/voronoi/pkg/geofile"
	"github.com/beetlebugorg/voronoi/pkg/voronoi"
)

func main() {
	// Sites from a CSV table with name, lat and lon columns
	in, err := os.Open("lighthouses.csv")
	if err != nil {
		log.Fatal(err)
	}
	sites, err := geofile.ReadSitesCSV(in, geofile.CSVOptions{})
	in.Close()
	if err != nil {
		log.Fatal(err)
	}

	polygons, skipped, err := voronoi.ComputeBoundedCells(sites, voronoi.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}
	for _, s := range skipped {
		log.Printf("site %d skipped: %s", s.SiteID, s.Reason)
	}

	// Same regions in every supported format
	for _, format := range []geofile.Format{geofile.FormatKML, geofile.FormatGeoJSON, geofile.FormatWKT} {
		out, err := os.Create("regions" + format.Extension())
		if err != nil {
			log.Fatal(err)
		}
		if err := geofile.WritePolygons(out, format, polygons, geofile.DefaultWriteOptions()); err != nil {
			log.Fatal(err)
		}
		if err := out.Close(); err != nil {
			log.Fatal(err)
		}
	}
}

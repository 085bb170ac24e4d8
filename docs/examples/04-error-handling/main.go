package main

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/beetlebugorg/voronoi/pkg/voronoi"
)

func compute(sites []voronoi.Site) {
	polygons, skipped, err := voronoi.ComputeBoundedCells(sites, voronoi.DefaultOptions())
	switch {
	case errors.Is(err, voronoi.ErrInvalidInput):
		log.Printf("Rejected input: %v", err)
		return
	case errors.Is(err, voronoi.ErrDegenerateGeometry):
		log.Printf("Degenerate sites: %v", err)
		return
	case err != nil:
		log.Fatal(err)
	}

	fmt.Printf("%d regions\n", len(polygons))

	// Per-site problems are not errors
	for _, s := range skipped {
		fmt.Printf("  site %d skipped: %s\n", s.SiteID, s.Reason)
	}
}

func main() {
	// Empty input
	compute(nil)

	// Non-finite coordinate
	compute([]voronoi.Site{{ID: 0, X: math.NaN(), Y: 42}})

	// Duplicate location: the smaller ID keeps the region
	compute([]voronoi.Site{
		{ID: 0, X: -71.0, Y: 42.0},
		{ID: 1, X: -70.9, Y: 42.1},
		{ID: 2, X: -71.0, Y: 42.0},
	})
}

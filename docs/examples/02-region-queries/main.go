package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/voronoi/pkg/voronoi"
)

func main() {
	sites := []voronoi.Site{
		{ID: 0, Label: "Boston Light", X: -70.8903, Y: 42.3279},
		{ID: 1, Label: "Graves Light", X: -70.8694, Y: 42.3650},
		{ID: 2, Label: "Long Island Head", X: -70.9578, Y: 42.3300},
		{ID: 3, Label: "Deer Island", X: -70.9544, Y: 42.3394},
	}

	t, err := voronoi.Tessellate(sites, voronoi.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	// Which region contains a vessel position? (R-tree lookup)
	if region, ok := t.RegionAt(-70.92, 42.34); ok {
		fmt.Printf("Vessel is in the region of %s\n", region.Label)
	}

	// Regions intersecting a viewport
	viewport := voronoi.Bounds{
		MinX: -70.96, MaxX: -70.94,
		MinY: 42.32, MaxY: 42.34,
	}
	for _, region := range t.RegionsInBounds(viewport) {
		fmt.Printf("  visible: %s\n", region.Label)
	}

	// Neighbours share a region edge
	fmt.Printf("Neighbours of site 0: %v\n", t.Neighbors(0))
}

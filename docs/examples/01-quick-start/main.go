package main

import (
	"fmt"
	"log"

	"github.com/beetlebugorg/voronoi/pkg/voronoi"
)

func main() {
	// Lighthouses around Boston Harbor, x = longitude, y = latitude
	sites := []voronoi.Site{
		{ID: 0, Label: "Boston Light", X: -70.8903, Y: 42.3279},
		{ID: 1, Label: "Graves Light", X: -70.8694, Y: 42.3650},
		{ID: 2, Label: "Long Island Head", X: -70.9578, Y: 42.3300},
		{ID: 3, Label: "Deer Island", X: -70.9544, Y: 42.3394},
	}

	polygons, skipped, err := voronoi.ComputeBoundedCells(sites, voronoi.DefaultOptions())
	if err != nil {
		log.Fatal(err)
	}

	for _, p := range polygons {
		fmt.Printf("%s: %d vertices\n", p.Label, len(p.Vertices))
	}
	fmt.Printf("Skipped: %d\n", len(skipped))
}

// Package voronoi computes bounded Voronoi regions for a set of planar sites.
//
// Every site gets the convex polygon of plane points closer to it than to any
// other site, clipped to a box around the input. Coordinates are treated as
// flat Euclidean values, so latitude/longitude input is handled as a plane.
//
// # Basic Usage
//
//	sites := []voronoi.Site{
//	    {ID: 0, Label: "north", X: -71.05, Y: 42.40},
//	    {ID: 1, Label: "south", X: -71.06, Y: 42.30},
//	    {ID: 2, Label: "east", X: -70.95, Y: 42.35},
//	}
//
//	polygons, skipped, err := voronoi.ComputeBoundedCells(sites, voronoi.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range polygons {
//	    fmt.Printf("site %d: %d vertices\n", p.SiteID, len(p.Vertices))
//	}
//
// Polygons are returned in input order. Sites that produce no polygon are
// listed in skipped with a reason; they are not errors.
//
// # How It Works
//
// The pipeline has three stages:
//
//  1. A ring of synthetic sites is placed around the input so that every
//     input site is interior and its cell is finite.
//  2. The Voronoi diagram is built with Fortune's sweep over sites
//     normalised to the unit square, so any coordinate scale works.
//  3. Each input site's cell is clipped to the bounding box of the augmented
//     sites grown by Options.BoxMargin.
//
// Coordinates are treated as planar. For longitude/latitude input the
// margins are in degrees, which is only an approximation away from the
// equator.
//
// Clipping runs on a worker pool when Options.Parallel is set. The output is
// identical for any worker count.
//
// # Spatial Queries
//
// Tessellate keeps the result in an R-tree for lookups:
//
//	t, err := voronoi.Tessellate(sites, voronoi.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if region, ok := t.RegionAt(-71.0, 42.36); ok {
//	    fmt.Println("inside region of site", region.SiteID)
//	}
//
//	visible := t.RegionsInBounds(voronoi.Bounds{MinX: -71.1, MaxX: -71.0, MinY: 42.3, MaxY: 42.4})
//
// # Errors
//
// Invalid input (empty set, non-finite coordinates, duplicate IDs, bad
// options) matches ErrInvalidInput. Sites that are all collinear or fewer
// than 3 distinct after augmentation match ErrDegenerateGeometry. Use
// errors.Is to test for them.
package voronoi

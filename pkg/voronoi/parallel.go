package voronoi

import (
	"runtime"
	"sync"

	"github.com/beetlebugorg/voronoi/internal/geometry"
)

// clipResult is the outcome of clipping one site.
type clipResult struct {
	index   int
	polygon Polygon
	skip    *SkippedSite
}

// clipCells clips the cell of every site against box.
//
// With opts.Parallel the work is spread over a worker pool. Results are
// stored by input index, so polygons and skips come back in input order
// whatever the scheduling.
func clipCells(d *geometry.Diagram, sites []Site, box geometry.BBox, opts Options) ([]Polygon, []SkippedSite) {
	if len(sites) == 0 {
		return nil, nil
	}

	if !opts.Parallel {
		return clipCellsSerial(d, sites, box, opts)
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// Don't create more workers than sites
	if workers > len(sites) {
		workers = len(sites)
	}

	jobs := make(chan int, len(sites))
	results := make(chan clipResult, len(sites))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				poly, skip := geometry.ClipCell(d, sites[index], box)
				results <- clipResult{index: index, polygon: poly, skip: skip}
			}
		}()
	}

	for i := range sites {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	ordered := make([]clipResult, len(sites))
	done := 0
	for result := range results {
		ordered[result.index] = result
		done++
		if opts.Progress != nil {
			opts.Progress(done, len(sites))
		}
	}

	return collect(ordered)
}

// clipCellsSerial clips one site at a time (fallback when Parallel=false).
func clipCellsSerial(d *geometry.Diagram, sites []Site, box geometry.BBox, opts Options) ([]Polygon, []SkippedSite) {
	ordered := make([]clipResult, len(sites))
	for i, s := range sites {
		poly, skip := geometry.ClipCell(d, s, box)
		ordered[i] = clipResult{index: i, polygon: poly, skip: skip}
		if opts.Progress != nil {
			opts.Progress(i+1, len(sites))
		}
	}
	return collect(ordered)
}

func collect(ordered []clipResult) ([]Polygon, []SkippedSite) {
	polygons := make([]Polygon, 0, len(ordered))
	var skipped []SkippedSite
	for _, r := range ordered {
		if r.skip != nil {
			skipped = append(skipped, *r.skip)
			continue
		}
		polygons = append(polygons, r.polygon)
	}
	return polygons, skipped
}

package parallel

// Rows splits the half-open row range [0, height) into contiguous bands
// and runs fn once per band, distributing bands across workers.
//
// With workers <= 1 the whole range runs inline on the calling
// goroutine; no pool is created. Bands never overlap and together cover
// the full range exactly once, so fn may write its rows of a shared
// output buffer without synchronization.
//
// More bands than workers are created (4x) so that work stealing can
// rebalance rows of unequal cost.
func Rows(workers, height int, fn func(y0, y1 int)) {
	if height <= 0 {
		return
	}
	if workers <= 1 || height == 1 {
		fn(0, height)
		return
	}
	if workers > height {
		workers = height
	}

	bands := workers * 4
	if bands > height {
		bands = height
	}
	bandHeight := (height + bands - 1) / bands

	work := make([]func(), 0, bands)
	for y0 := 0; y0 < height; y0 += bandHeight {
		y1 := y0 + bandHeight
		if y1 > height {
			y1 = height
		}
		start, end := y0, y1
		work = append(work, func() { fn(start, end) })
	}

	pool := NewWorkerPool(workers)
	defer pool.Close()
	pool.ExecuteAll(work)
}

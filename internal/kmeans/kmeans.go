package kmeans

import (
	"context"
	"math/rand"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the pixel count below which the assignment
// step always runs on the calling goroutine.
const parallelThreshold = 4096

// Seed assigns every pixel a uniformly random cluster in [0, k).
func Seed(assignments []uint8, k int, rng *rand.Rand) {
	for i := range assignments {
		assignments[i] = uint8(rng.Intn(k))
	}
}

// Result describes a completed refinement.
type Result struct {
	// Centroids holds k packed RGB triplets, the integer mean of each
	// cluster's members.
	Centroids []byte
	// Iterations is the number of update/assign rounds executed.
	Iterations int
	// Converged reports whether the final round changed no assignment.
	Converged bool
}

// Refine runs Lloyd iterations over the pixels until no assignment
// changes or maxIterations rounds have run. rgba holds one RGBA quad
// per assignment entry; the alpha byte is ignored and the buffer is
// never written. assignments carries the initial clustering in and the
// final clustering out.
//
// A cluster that loses all members keeps a (0,0,0) centroid for the
// next round, which lets it recapture pixels near black. parallelism
// bounds the number of goroutines used for the assignment step; the
// result is identical for every value because each pixel's nearest
// centroid is computed independently.
func Refine(ctx context.Context, rgba []byte, assignments []uint8, k, maxIterations, parallelism int) (Result, error) {
	n := len(assignments)

	res := Result{Centroids: make([]byte, k*3)}
	sums := make([]uint64, k*3)
	counts := make([]uint64, k)

	for res.Iterations < maxIterations {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		// Update step
		for i := range sums {
			sums[i] = 0
		}
		for i := range counts {
			counts[i] = 0
		}
		for i := 0; i < n; i++ {
			c := assignments[i]
			o := i * 4
			sums[int(c)*3+0] += uint64(rgba[o+0])
			sums[int(c)*3+1] += uint64(rgba[o+1])
			sums[int(c)*3+2] += uint64(rgba[o+2])
			counts[c]++
		}
		for j := 0; j < k; j++ {
			if counts[j] > 0 {
				res.Centroids[j*3+0] = byte(sums[j*3+0] / counts[j])
				res.Centroids[j*3+1] = byte(sums[j*3+1] / counts[j])
				res.Centroids[j*3+2] = byte(sums[j*3+2] / counts[j])
			} else {
				res.Centroids[j*3+0] = 0
				res.Centroids[j*3+1] = 0
				res.Centroids[j*3+2] = 0
			}
		}

		// Assignment step
		changed := assign(ctx, rgba, assignments, res.Centroids, k, parallelism)

		res.Iterations++
		if !changed {
			res.Converged = true
			break
		}
	}

	return res, nil
}

// assign reassigns every pixel to its nearest centroid and reports
// whether any assignment changed.
func assign(ctx context.Context, rgba []byte, assignments []uint8, centroids []byte, k, parallelism int) bool {
	n := len(assignments)
	if parallelism <= 1 || n < parallelThreshold {
		return assignRange(rgba, assignments, centroids, k, 0, n)
	}
	if parallelism > n {
		parallelism = n
	}

	changed := make([]bool, parallelism)
	chunk := (n + parallelism - 1) / parallelism

	g, _ := errgroup.WithContext(ctx)
	for w := 0; w < parallelism; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			break
		}
		g.Go(func() error {
			changed[w] = assignRange(rgba, assignments, centroids, k, start, end)
			return nil
		})
	}
	_ = g.Wait()

	for _, c := range changed {
		if c {
			return true
		}
	}
	return false
}

func assignRange(rgba []byte, assignments []uint8, centroids []byte, k, start, end int) bool {
	changed := false
	for i := start; i < end; i++ {
		o := i * 4
		r := int(rgba[o+0])
		g := int(rgba[o+1])
		b := int(rgba[o+2])

		best := 0
		minDist := distSq(r, g, b, centroids, 0)
		for j := 1; j < k; j++ {
			if d := distSq(r, g, b, centroids, j); d < minDist {
				minDist = d
				best = j
			}
		}

		if assignments[i] != uint8(best) {
			assignments[i] = uint8(best)
			changed = true
		}
	}
	return changed
}

// distSq returns the squared Euclidean RGB distance between a pixel
// and centroid j. Channel deltas must be taken in signed arithmetic,
// not in the byte domain; squaring then makes the sign irrelevant.
func distSq(r, g, b int, centroids []byte, j int) int {
	dr := r - int(centroids[j*3+0])
	dg := g - int(centroids[j*3+1])
	db := b - int(centroids[j*3+2])
	return dr*dr + dg*dg + db*db
}

package kmeans

import (
	"context"
	"image/color"
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/posterize/testutil"
)

func TestSeed(t *testing.T) {
	a := make([]uint8, 1000)
	Seed(a, 16, rand.New(rand.NewSource(1)))

	distinct := make(map[uint8]bool)
	for i, v := range a {
		require.Less(t, v, uint8(16), "pixel %d", i)
		distinct[v] = true
	}
	assert.Greater(t, len(distinct), 1)

	// Same seed, same assignment.
	b := make([]uint8, 1000)
	Seed(b, 16, rand.New(rand.NewSource(1)))
	assert.Equal(t, a, b)
}

func TestRefine_PerfectSeparation(t *testing.T) {
	// One pixel per cluster: the first update recovers every color
	// exactly and no pixel moves afterwards.
	colors := testutil.WellSeparated16()
	rgba := testutil.FromColors(colors...)

	assignments := make([]uint8, 16)
	for i := range assignments {
		assignments[i] = uint8(i)
	}

	res, err := Refine(context.Background(), rgba, assignments, 16, 24, 1)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)

	for i, c := range colors {
		assert.Equal(t, c.R, res.Centroids[i*3+0], "centroid %d red", i)
		assert.Equal(t, c.G, res.Centroids[i*3+1], "centroid %d green", i)
		assert.Equal(t, c.B, res.Centroids[i*3+2], "centroid %d blue", i)
		assert.Equal(t, uint8(i), assignments[i], "pixel %d", i)
	}
}

func TestRefine_TieBreakLowestIndex(t *testing.T) {
	// Two identical pixels split across two clusters. Both centroids
	// coincide, so the second pixel must fall back to cluster 0.
	rgba := testutil.FromColors(
		color.RGBA{R: 50, A: 255},
		color.RGBA{R: 50, A: 255},
	)
	assignments := []uint8{0, 1}

	res, err := Refine(context.Background(), rgba, assignments, 2, 24, 1)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, []uint8{0, 0}, assignments)
	assert.Equal(t, []byte{50, 0, 0, 0, 0, 0}, res.Centroids)
}

func TestRefine_EmptyClusterBlackMagnet(t *testing.T) {
	// Everything starts in cluster 1. Cluster 0 is empty, so its
	// centroid stays at (0,0,0) and pulls the black pixel over.
	bright := color.RGBA{R: 200, G: 200, B: 200, A: 255}
	rgba := append(testutil.SolidRGBA(9, bright), testutil.FromColors(color.RGBA{A: 255})...)

	assignments := make([]uint8, 10)
	for i := range assignments {
		assignments[i] = 1
	}

	res, err := Refine(context.Background(), rgba, assignments, 2, 24, 1)
	require.NoError(t, err)
	assert.True(t, res.Converged)
	assert.Equal(t, 2, res.Iterations)

	for i := 0; i < 9; i++ {
		assert.Equal(t, uint8(1), assignments[i], "bright pixel %d", i)
	}
	assert.Equal(t, uint8(0), assignments[9], "black pixel")
	assert.Equal(t, []byte{0, 0, 0, 200, 200, 200}, res.Centroids)
}

func TestRefine_ConvergesWithinCap(t *testing.T) {
	rng := testutil.NewRNG(99)
	rgba := rng.RandomRGBA(5000)

	assignments := make([]uint8, 5000)
	Seed(assignments, 16, rand.New(rand.NewSource(7)))

	res, err := Refine(context.Background(), rgba, assignments, 16, 24, 1)
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Iterations, 24)
	if !res.Converged {
		assert.Equal(t, 24, res.Iterations)
	}
}

func TestRefine_DeterministicAcrossParallelism(t *testing.T) {
	rng := testutil.NewRNG(3)
	rgba := rng.RandomRGBA(20000)

	base := make([]uint8, 20000)
	Seed(base, 16, rand.New(rand.NewSource(11)))

	serial := slices.Clone(base)
	resSerial, err := Refine(context.Background(), rgba, serial, 16, 24, 1)
	require.NoError(t, err)

	parallel := slices.Clone(base)
	resParallel, err := Refine(context.Background(), rgba, parallel, 16, 24, 8)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
	assert.Equal(t, resSerial.Centroids, resParallel.Centroids)
	assert.Equal(t, resSerial.Iterations, resParallel.Iterations)
	assert.Equal(t, resSerial.Converged, resParallel.Converged)
}

func TestRefine_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	rgba := testutil.SolidRGBA(4, color.RGBA{R: 1, A: 255})
	_, err := Refine(ctx, rgba, make([]uint8, 4), 16, 24, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func BenchmarkRefine(b *testing.B) {
	rng := testutil.NewRNG(1)
	rgba := rng.RandomRGBA(640 * 400)
	assignments := make([]uint8, 640*400)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Seed(assignments, 16, rand.New(rand.NewSource(1)))
		if _, err := Refine(context.Background(), rgba, assignments, 16, 24, 1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRefine_Parallel(b *testing.B) {
	rng := testutil.NewRNG(1)
	rgba := rng.RandomRGBA(640 * 400)
	assignments := make([]uint8, 640*400)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Seed(assignments, 16, rand.New(rand.NewSource(1)))
		if _, err := Refine(context.Background(), rgba, assignments, 16, 24, 8); err != nil {
			b.Fatal(err)
		}
	}
}

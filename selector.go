package starscroll

import (
	"math/rand/v2"

	"github.com/ojrac/opensimplex-go"
)

// Selector picks which tile fills the grid cell (cellX, cellY) from a tile
// set of n tiles. It must return an index in [0, n).
type Selector func(cellX, cellY, n int) int

// UniformRandom picks every cell uniformly at random from src. A nil src
// uses the runtime-seeded global generator, so each build differs.
func UniformRandom(src rand.Source) Selector {
	if src == nil {
		return func(_, _, n int) int { return rand.IntN(n) }
	}
	r := rand.New(src)
	return func(_, _, n int) int { return r.IntN(n) }
}

// Seeded is UniformRandom over a PCG generator seeded with seed. Two
// backgrounds built with the same seed and geometry are identical.
func Seeded(seed uint64) Selector {
	return UniformRandom(rand.NewPCG(seed, seed))
}

// Deterministic picks tile (cellX + cellY) mod n, giving a diagonal pattern
// that is the same on every build.
func Deterministic(cellX, cellY, n int) int {
	return (cellX + cellY) % n
}

// Fixed fills every cell with tile i.
func Fixed(i int) Selector {
	return func(_, _, _ int) int { return i }
}

// Noise picks tiles by sampling normalized 2D simplex noise at
// (cellX/scale, cellY/scale), so neighbouring cells tend to share a tile
// and the field forms clusters instead of static. The layout depends only
// on seed, scale and geometry. A scale <= 0 is treated as 1.
func Noise(seed int64, scale float64) Selector {
	if scale <= 0 {
		scale = 1
	}
	noise := opensimplex.NewNormalized(seed)
	return func(cellX, cellY, n int) int {
		v := noise.Eval2(float64(cellX)/scale, float64(cellY)/scale)
		i := int(v * float64(n))
		return min(max(i, 0), n-1)
	}
}

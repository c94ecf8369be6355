package steering

import (
	"github.com/aquilax/go-perlin"
)

// Noise yields a smooth pseudo-random value for increasing x. Outputs
// are expected in roughly [-1, 1]; consumers clamp.
type Noise interface {
	Noise1D(x float64) float64
}

// NewPerlinNoise builds the standard smooth noise source for a seed.
func NewPerlinNoise(seed int64) Noise {
	return perlin.NewPerlin(2, 2, 3, seed)
}

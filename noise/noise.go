package noise

import (
	"errors"

	"github.com/aquilax/go-perlin"
)

// ErrBadOctaves indicates that a Field was requested with fewer than one octave.
var ErrBadOctaves = errors.New("noise: octaves must be at least 1")

// Smoothness parameters for the fractal sum. alpha is the weight divisor
// between successive octaves, beta the frequency multiplier. The pair (2, 2)
// halves the amplitude and doubles the frequency per octave, the standard
// terrain-like setting.
const (
	alpha = 2.0
	beta  = 2.0
)

// Field is a deterministic 2D coherent-noise generator. It is immutable
// after construction; Sample is safe for concurrent use.
type Field struct {
	p       *perlin.Perlin // seeded permutation-table Perlin generator
	seed    int64          // seed the permutation table was built from
	octaves int            // number of fractal octaves summed per sample
}

// New constructs a Field from a seed and an octave count.
// Returns ErrBadOctaves if octaves < 1.
// Complexity: O(1) per call (the permutation table has fixed size).
func New(seed int64, octaves int) (*Field, error) {
	if octaves < 1 {
		return nil, ErrBadOctaves
	}

	return &Field{
		p:       perlin.NewPerlin(alpha, beta, int32(octaves), seed),
		seed:    seed,
		octaves: octaves,
	}, nil
}

// Sample returns the noise value at the continuous coordinate (x, y),
// nominally in [-1, 1]. Pure: the result depends only on (seed, octaves, x, y).
// Any real-valued input is valid; there are no error conditions.
// Complexity: O(octaves).
func (f *Field) Sample(x, y float64) float64 {
	return f.p.Noise2D(x, y)
}

// Seed returns the seed this field was constructed with.
func (f *Field) Seed() int64 { return f.seed }

// Octaves returns the octave count this field was constructed with.
func (f *Field) Octaves() int { return f.octaves }

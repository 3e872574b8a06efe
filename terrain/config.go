package terrain

// Config holds the tunable parameters for grid generation.
//
// MapSize    – total map extent in world units.
// TileSize   – edge length of one cell in world units.
//
//	cols = rows = MapSize / TileSize (integer division; MapSize
//	should be a multiple of TileSize).
//
// NoiseScale – stretch factor applied to cell coordinates before sampling;
//
//	larger values correlate more neighboring cells and produce
//	larger contiguous terrain features.
//
// Octaves    – number of fractal octaves summed per noise sample.
// Seed       – noise permutation seed; fixing it makes generation
//
//	reproducible cell-for-cell.
type Config struct {
	MapSize    int
	TileSize   int
	NoiseScale int
	Octaves    int
	Seed       int64
}

// Option represents a functional option for configuring grid generation.
type Option func(*Config)

// WithMapSize sets the total map extent. Validated at NewGrid.
func WithMapSize(size int) Option {
	return func(c *Config) {
		c.MapSize = size
	}
}

// WithTileSize sets the cell edge length. Validated at NewGrid.
func WithTileSize(size int) Option {
	return func(c *Config) {
		c.TileSize = size
	}
}

// WithNoiseScale sets the sampling stretch factor. Validated at NewGrid.
func WithNoiseScale(scale int) Option {
	return func(c *Config) {
		c.NoiseScale = scale
	}
}

// WithOctaves sets the fractal octave count. Validated by noise.New.
func WithOctaves(octaves int) Option {
	return func(c *Config) {
		c.Octaves = octaves
	}
}

// WithSeed sets the noise seed.
func WithSeed(seed int64) Option {
	return func(c *Config) {
		c.Seed = seed
	}
}

// DefaultConfig returns the Config used when no options are supplied:
//
//   - MapSize:    800
//   - TileSize:   8     (→ a 100×100 grid)
//   - NoiseScale: 280
//   - Octaves:    2
//   - Seed:       0
func DefaultConfig() Config {
	return Config{
		MapSize:    800,
		TileSize:   8,
		NoiseScale: 280,
		Octaves:    2,
		Seed:       0,
	}
}

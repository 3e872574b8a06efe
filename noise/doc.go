// Package noise provides a seeded, deterministic 2D coherent-noise field
// built on fractal Perlin noise.
//
// Overview:
//
//   - Field is constructed once from (seed, octaves) and is immutable.
//   - Field.Sample(x, y) is a pure function of (seed, octaves, x, y):
//     the same inputs always produce the same output, which is what makes
//     regeneration with a fixed seed reproducible across redraws.
//   - Output is nominally in [-1, 1]. Fractal summation is not hard-clamped,
//     so consumers must tolerate slight excursions past the nominal range;
//     ordered threshold comparisons (see terrain.Classify) do so naturally.
//
// When to use:
//
//   - As the height source for terrain.NewGrid.
//   - Anywhere a stable, seam-free scalar field over continuous coordinates
//     is needed (heightmaps, moisture maps, density fields).
//
// Errors (sentinel):
//
//	– ErrBadOctaves if octaves < 1 (a fractal sum needs at least one octave).
//
// Example usage:
//
//	f, err := noise.New(42, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	h := f.Sample(3.5/280.0, 7.0/280.0)
//
// Thread safety:
//
//   - Field carries no mutable state after construction; Sample may be
//     called from any number of goroutines concurrently.
package noise

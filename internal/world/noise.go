package world

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Octave is one rung of the height ladder: a Perlin sample taken at
// coordinate*Frequency and scaled by Amplitude.
type Octave struct {
	Frequency float64
	Amplitude float64
}

// HeightOctaves is the fixed ladder summed into every terrain height:
// micro roughness, rolling hills, continental swells and a very low
// frequency bias. Changing any value changes every generated world.
var HeightOctaves = [4]Octave{
	{Frequency: 1.1, Amplitude: 0.5},
	{Frequency: 0.01, Amplitude: 10},
	{Frequency: 0.0002, Amplitude: 100},
	{Frequency: 0.000003, Amplitude: 10000},
}

// NoiseField samples terrain height for a world seed. It is immutable after
// construction and safe for concurrent use.
type NoiseField struct {
	seed   int64
	perlin *perlin.Perlin
}

// NewNoiseField creates the sampler for seed.
func NewNoiseField(seed int64) *NoiseField {
	return &NoiseField{
		seed: seed,
		// n=1: each call is a single Perlin octave, the ladder is applied by Height
		perlin: perlin.NewPerlin(2, 2, 1, seed),
	}
}

// Seed returns the world seed the field was built from.
func (f *NoiseField) Seed() int64 {
	return f.seed
}

// Height returns the summed four-octave height at absolute world (x, z).
func (f *NoiseField) Height(x, z float64) float64 {
	var h float64
	for _, o := range HeightOctaves {
		h += f.perlin.Noise2D(fold(x*o.Frequency), fold(z*o.Frequency)) * o.Amplitude
	}
	return h
}

// Sample is the stateless form of NoiseField.Height. Callers that sample many
// points should build one NoiseField and reuse it.
func Sample(seed int64, x, z float64) float64 {
	return NewNoiseField(seed).Height(x, z)
}

// latticePeriod is the repeat length of the Perlin permutation table.
const latticePeriod = 256

// fold maps a lattice coordinate into [0, latticePeriod). The sampler floors
// through int32 after a fixed +4096 bias, which only works for inputs in
// roughly [-4096, 2^31); the noise repeats every period, so folding leaves
// the value unchanged while keeping every input in range.
func fold(t float64) float64 {
	if t >= 0 && t < latticePeriod {
		return t
	}
	t = math.Mod(t, latticePeriod)
	if t < 0 {
		t += latticePeriod
	}
	// a tiny negative remainder rounds up to exactly one period
	if t >= latticePeriod {
		t = 0
	}
	return t
}

// maxExactCoord is the largest magnitude at which every integer grid index is
// still exactly representable as a float64.
const maxExactCoord = 1 << 53

// hash2 is a SplitMix64 style integer hash, stable across runs for the same
// inputs. Used to seed per-chunk color streams.
func hash2(x int64, z int64, seed int64) uint64 {
	v := uint64(x)*0x9E3779B97F4A7C15 + uint64(z)*0x517CC1B727220A95 + uint64(seed)
	v += 0x9E3779B97F4A7C15
	v = (v ^ (v >> 30)) * 0xBF58476D1CE4E5B9
	v = (v ^ (v >> 27)) * 0x94D049BB133111EB
	v = v ^ (v >> 31)
	return v
}

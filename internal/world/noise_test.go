package world

import (
	"math"
	"math/rand"
	"testing"
)

// TestSampleDeterministic verifies the same (seed, x, z) yields bit-identical heights
func TestSampleDeterministic(t *testing.T) {
	rng := rand.New(rand.NewSource(12345))
	for i := 0; i < 200; i++ {
		seed := rng.Int63()
		x := rng.Float64()*2e6 - 1e6
		z := rng.Float64()*2e6 - 1e6

		a := Sample(seed, x, z)
		b := Sample(seed, x, z)
		if math.Float64bits(a) != math.Float64bits(b) {
			t.Fatalf("Sample(%d, %f, %f) not deterministic: %v vs %v", seed, x, z, a, b)
		}
	}
}

// TestNoiseFieldMatchesSample verifies a shared field and one-shot sampling agree
func TestNoiseFieldMatchesSample(t *testing.T) {
	f := NewNoiseField(42)
	for x := -5; x <= 5; x++ {
		for z := -5; z <= 5; z++ {
			fx, fz := float64(x)*3.7, float64(z)*1.3
			if got, want := f.Height(fx, fz), Sample(42, fx, fz); got != want {
				t.Fatalf("Height(%f,%f)=%v, Sample=%v", fx, fz, got, want)
			}
		}
	}
}

// TestHeightFinite verifies no NaN or Inf leaks out for finite input
func TestHeightFinite(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	f := NewNoiseField(99)
	for i := 0; i < 1000; i++ {
		x := (rng.Float64()*2 - 1) * maxExactCoord
		z := (rng.Float64()*2 - 1) * maxExactCoord
		h := f.Height(x, z)
		if math.IsNaN(h) || math.IsInf(h, 0) {
			t.Fatalf("Height(%g, %g) = %v", x, z, h)
		}
	}
}

// TestHeightBounded verifies the summed ladder stays inside the sum of amplitudes
func TestHeightBounded(t *testing.T) {
	var bound float64
	for _, o := range HeightOctaves {
		bound += o.Amplitude
	}
	f := NewNoiseField(3)
	for x := 0; x < 64; x++ {
		for z := 0; z < 64; z++ {
			if h := f.Height(float64(x*97), float64(z*89)); math.Abs(h) > bound {
				t.Fatalf("Height(%d,%d)=%v exceeds %v", x*97, z*89, h, bound)
			}
		}
	}
}

// TestSeedsDiffer verifies different seeds produce different terrain
func TestSeedsDiffer(t *testing.T) {
	a := NewNoiseField(1)
	b := NewNoiseField(2)
	for x := 1; x < 100; x++ {
		if a.Height(float64(x), float64(x*3)) != b.Height(float64(x), float64(x*3)) {
			return
		}
	}
	t.Fatal("seeds 1 and 2 produced identical heights on 99 samples")
}

func TestHash2Deterministic(t *testing.T) {
	if hash2(10, 20, 42) != hash2(10, 20, 42) {
		t.Fatal("hash2 not deterministic")
	}
	if hash2(1, 0, 42) == hash2(0, 1, 42) {
		t.Error("hash2 should differ for swapped axes")
	}
	if hash2(1, 1, 100) == hash2(1, 1, 200) {
		t.Error("hash2 should differ for different seeds")
	}
}

func TestOctaveLadder(t *testing.T) {
	want := [4]Octave{{1.1, 0.5}, {0.01, 10}, {0.0002, 100}, {0.000003, 10000}}
	if HeightOctaves != want {
		t.Fatalf("HeightOctaves = %v, want %v", HeightOctaves, want)
	}
}

func TestFold(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{12.5, 12.5},
		{255.75, 255.75},
		{256, 0},
		{256 + 3.25, 3.25},
		{-1, 255},
		{-4097.5, 254.5},
		{-256, 0},
		{1 << 40, 0},
	}
	for _, tt := range tests {
		if got := fold(tt.in); got != tt.want {
			t.Errorf("fold(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := fold(-1e-300); got < 0 || got >= latticePeriod {
		t.Errorf("fold(-1e-300) = %v, want [0, %d)", got, latticePeriod)
	}
}

// TestHeightContinuousAtNegativeLattice samples just either side of an integer
// lattice line far below zero for every octave; the height must not jump.
func TestHeightContinuousAtNegativeLattice(t *testing.T) {
	f := NewNoiseField(11)
	const eps = 1e-6
	for _, o := range HeightOctaves {
		for _, line := range []float64{-4097, -409700, -1e7} {
			x := line / o.Frequency
			a := f.Height(x-eps, 0.3)
			b := f.Height(x+eps, 0.3)
			if math.Abs(a-b) > 1e-2 {
				t.Errorf("octave %v: Height(%.6f±eps) jumps from %v to %v", o.Frequency, x, a, b)
			}
		}
	}
}

// TestHeightBoundedNegative verifies the amplitude bound holds far from the
// origin on the negative side.
func TestHeightBoundedNegative(t *testing.T) {
	var bound float64
	for _, o := range HeightOctaves {
		bound += o.Amplitude
	}
	rng := rand.New(rand.NewSource(21))
	f := NewNoiseField(5)
	for i := 0; i < 2000; i++ {
		x := -rng.Float64() * 1e10
		z := -rng.Float64() * 1e10
		if h := f.Height(x, z); math.Abs(h) > bound {
			t.Fatalf("Height(%g, %g) = %v exceeds %v", x, z, h, bound)
		}
	}
}

// TestFoldMatchesSampler verifies folding does not change in-range samples.
func TestFoldMatchesSampler(t *testing.T) {
	f := NewNoiseField(8)
	for _, x := range []float64{-4000.25, -300.5, -0.75, 17.125, 3000.5} {
		raw := f.perlin.Noise2D(x, 0.3)
		folded := f.perlin.Noise2D(fold(x), 0.3)
		if math.Abs(raw-folded) > 1e-9 {
			t.Errorf("x=%v: raw %v, folded %v", x, raw, folded)
		}
	}
}

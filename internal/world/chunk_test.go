package world

import (
	"errors"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGenerateBufferSizes(t *testing.T) {
	g := NewGenerator(7)
	for _, size := range []int{2, 3, 4, 16, 33} {
		m, err := g.Generate(size, 1, -2)
		if err != nil {
			t.Fatalf("size %d: %v", size, err)
		}
		verts := size * size
		idx := 6 * (size - 1) * (size - 1)
		if len(m.Positions) != verts || len(m.Normals) != verts || len(m.UVs) != verts || len(m.Colors) != verts {
			t.Errorf("size %d: got %d/%d/%d/%d attributes, want %d each",
				size, len(m.Positions), len(m.Normals), len(m.UVs), len(m.Colors), verts)
		}
		if len(m.Indices) != idx {
			t.Errorf("size %d: got %d indices, want %d", size, len(m.Indices), idx)
		}
		for _, ix := range m.Indices {
			if int(ix) >= verts {
				t.Fatalf("size %d: index %d out of range", size, ix)
			}
		}
	}
}

func TestGenerateInvalidSize(t *testing.T) {
	for _, size := range []int{-1, 0, 1, MaxChunkSize + 1} {
		m, err := GenerateChunk(size, 0, 0, 1)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("size %d: err = %v, want ErrInvalidArgument", size, err)
		}
		if m != nil {
			t.Errorf("size %d: got partial mesh", size)
		}
	}
}

func TestGenerateOverflow(t *testing.T) {
	huge := maxExactCoord // chunk*(size-1) far beyond exact float range
	for _, c := range [][2]int{{huge, 0}, {0, -huge}} {
		m, err := GenerateChunk(16, c[0], c[1], 1)
		if !errors.Is(err, ErrNumericOverflow) {
			t.Errorf("chunk %v: err = %v, want ErrNumericOverflow", c, err)
		}
		if m != nil {
			t.Errorf("chunk %v: got partial mesh", c)
		}
	}
}

// TestGenerateFarNegativeSmooth generates chunks well below x = -4096, where
// neighbouring vertices one unit apart may differ by at most the ladder's
// slope and every height stays inside the amplitude bound.
func TestGenerateFarNegativeSmooth(t *testing.T) {
	var bound float64
	for _, o := range HeightOctaves {
		bound += o.Amplitude
	}
	g := NewGenerator(3)
	for _, c := range []ChunkCoord{{-8, 0}, {-1000, -1000}, {0, -50000}} {
		m, err := g.Generate(17, c.X, c.Z)
		if err != nil {
			t.Fatalf("chunk %v: %v", c, err)
		}
		for k, p := range m.Positions {
			if h := float64(p.Y()); h > bound || h < -bound {
				t.Fatalf("chunk %v vertex %d: height %v exceeds %v", c, k, h, bound)
			}
		}
		for i := 1; i < m.Size; i++ {
			for j := range m.Size {
				// the 1.1 octave alone can move at most ~1 per unit step
				if d := m.HeightAt(i, j) - m.HeightAt(i-1, j); d > 2 || d < -2 {
					t.Fatalf("chunk %v: step (%d,%d) jumps by %v", c, i, j, d)
				}
			}
		}
	}
}

func TestSeamContinuity(t *testing.T) {
	const size = 9
	for _, seed := range []int64{0, 1, 42, -77, 1 << 40} {
		g := NewGenerator(seed)
		for _, c := range []ChunkCoord{{0, 0}, {3, 5}, {-2, 1}, {-1, -1}} {
			m, err := g.Generate(size, c.X, c.Z)
			if err != nil {
				t.Fatal(err)
			}
			east, err := g.Generate(size, c.X+1, c.Z)
			if err != nil {
				t.Fatal(err)
			}
			south, err := g.Generate(size, c.X, c.Z+1)
			if err != nil {
				t.Fatal(err)
			}
			for k := range size {
				if a, b := m.HeightAt(size-1, k), east.HeightAt(0, k); a != b {
					t.Errorf("seed %d chunk %v: x seam at j=%d: %v != %v", seed, c, k, a, b)
				}
				if a, b := m.HeightAt(k, size-1), south.HeightAt(k, 0); a != b {
					t.Errorf("seed %d chunk %v: z seam at i=%d: %v != %v", seed, c, k, a, b)
				}
			}
		}
	}
}

func TestGenerateSizeFourExample(t *testing.T) {
	m, err := GenerateChunk(4, 0, 0, 42)
	if err != nil {
		t.Fatal(err)
	}
	h := float32(Sample(42, 0, 0))
	if got, want := m.Positions[0], (mgl32.Vec3{0, h, 0}); got != want {
		t.Fatalf("vertex 0 = %v, want %v", got, want)
	}
	wantPrefix := []uint32{0, 1, 4, 1, 5, 4}
	for k, want := range wantPrefix {
		if m.Indices[k] != want {
			t.Fatalf("indices[:6] = %v, want %v", m.Indices[:6], wantPrefix)
		}
	}
	// last cell of a 4x4 grid
	tail := m.Indices[len(m.Indices)-6:]
	wantTail := []uint32{10, 11, 14, 11, 15, 14}
	for k, want := range wantTail {
		if tail[k] != want {
			t.Fatalf("indices[-6:] = %v, want %v", tail, wantTail)
		}
	}
}

func TestGenerateLocalLayout(t *testing.T) {
	const size = 5
	m, err := GenerateChunk(size, 2, 3, 11)
	if err != nil {
		t.Fatal(err)
	}
	g := NewGenerator(11)
	for i := range size {
		for j := range size {
			v := i*size + j
			p := m.Positions[v]
			if p.X() != float32(i) || p.Z() != float32(j) {
				t.Fatalf("vertex %d at %v, want local (%d, _, %d)", v, p, i, j)
			}
			if want := float32(g.WorldHeight(size, ChunkCoord{2, 3}, i, j)); p.Y() != want {
				t.Fatalf("vertex %d height %v, want %v", v, p.Y(), want)
			}
			if uv := m.UVs[v]; uv != (mgl32.Vec2{float32(i) / size, float32(j) / size}) {
				t.Fatalf("vertex %d uv %v", v, uv)
			}
			if m.Normals[v] != (mgl32.Vec3{0, 1, 0}) {
				t.Fatalf("vertex %d normal %v", v, m.Normals[v])
			}
			c := m.Colors[v]
			if c.X() != 0.1 || c.Z() != 0.1 || c.W() != 1 || c.Y() < 0 || c.Y() >= 0.4 {
				t.Fatalf("vertex %d color %v", v, c)
			}
		}
	}
}

// TestGenerateWinding verifies every triangle faces up (CCW seen from +Y)
func TestGenerateWinding(t *testing.T) {
	m, err := GenerateChunk(6, 0, 0, 5)
	if err != nil {
		t.Fatal(err)
	}
	for k := 0; k < len(m.Indices); k += 3 {
		a := m.Positions[m.Indices[k]]
		b := m.Positions[m.Indices[k+1]]
		c := m.Positions[m.Indices[k+2]]
		// winding in the ground plane only; heights do not change orientation
		ab := mgl32.Vec3{b.X() - a.X(), 0, b.Z() - a.Z()}
		ac := mgl32.Vec3{c.X() - a.X(), 0, c.Z() - a.Z()}
		if n := ab.Cross(ac); n.Y() <= 0 {
			t.Fatalf("triangle %d has normal %v, want +Y", k/3, n)
		}
	}
}

func TestGenerateGeometryDeterministic(t *testing.T) {
	a, err := GenerateChunk(12, -3, 4, 2024)
	if err != nil {
		t.Fatal(err)
	}
	b, err := GenerateChunk(12, -3, 4, 2024)
	if err != nil {
		t.Fatal(err)
	}
	for k := range a.Positions {
		if a.Positions[k] != b.Positions[k] {
			t.Fatalf("position %d differs: %v vs %v", k, a.Positions[k], b.Positions[k])
		}
	}
}

func TestChunkOrigin(t *testing.T) {
	if got, want := ChunkOrigin(ChunkCoord{3, -2}, 512), (mgl32.Vec3{3 * 511, 0, -2 * 511}); got != want {
		t.Fatalf("ChunkOrigin = %v, want %v", got, want)
	}
}

func BenchmarkGenerate64(b *testing.B) {
	g := NewGenerator(1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Generate(64, i%8, i/8%8)
	}
}

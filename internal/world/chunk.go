package world

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	// ErrInvalidArgument is returned for sizes that cannot form a mesh or world.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNumericOverflow is returned when absolute grid coordinates leave the
	// range where noise sampling stays exact.
	ErrNumericOverflow = errors.New("numeric overflow")
)

const (
	// MinChunkSize is the smallest edge length that forms a triangle.
	MinChunkSize = 2
	// MaxChunkSize keeps every vertex index inside a uint32.
	MaxChunkSize = 1 << 16

	grassRed   = 0.1
	grassBlue  = 0.1
	grassGreen = 0.4 // exclusive upper bound of the per-vertex green jitter
)

// ChunkCoord identifies a chunk on the world grid.
type ChunkCoord struct {
	X, Z int
}

// Mesh is the static triangle list for one chunk. Positions are chunk-local:
// vertex (i, j) sits at (i, height, j).
type Mesh struct {
	Coord     ChunkCoord
	Size      int
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Colors    []mgl32.Vec4
	Indices   []uint32
}

// VertexCount returns the number of vertices in the mesh.
func (m *Mesh) VertexCount() int {
	return len(m.Positions)
}

// HeightAt returns the height of local grid point (i, j).
func (m *Mesh) HeightAt(i, j int) float32 {
	return m.Positions[i*m.Size+j].Y()
}

// Generator builds chunk meshes from a shared NoiseField.
type Generator struct {
	field *NoiseField
}

// NewGenerator creates a generator for the given world seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{field: NewNoiseField(seed)}
}

// NewGeneratorWithField creates a generator that samples an existing field.
func NewGeneratorWithField(field *NoiseField) *Generator {
	return &Generator{field: field}
}

// Field returns the noise field backing the generator.
func (g *Generator) Field() *NoiseField {
	return g.field
}

// GenerateChunk is the one-shot form of Generator.Generate.
func GenerateChunk(size, chunkX, chunkZ int, seed int64) (*Mesh, error) {
	return NewGenerator(seed).Generate(size, chunkX, chunkZ)
}

// Generate builds the mesh of chunk (chunkX, chunkZ) with size vertices per
// edge. Adjacent chunks share their border row/column in noise space because
// the sampling offset is chunk*(size-1).
func (g *Generator) Generate(size, chunkX, chunkZ int) (*Mesh, error) {
	if size < MinChunkSize {
		return nil, fmt.Errorf("%w: chunk size %d, need at least %d", ErrInvalidArgument, size, MinChunkSize)
	}
	if size > MaxChunkSize {
		return nil, fmt.Errorf("%w: chunk size %d exceeds %d", ErrInvalidArgument, size, MaxChunkSize)
	}
	xOffset, err := chunkOffset(chunkX, size)
	if err != nil {
		return nil, err
	}
	zOffset, err := chunkOffset(chunkZ, size)
	if err != nil {
		return nil, err
	}

	n := size * size
	m := &Mesh{
		Coord:     ChunkCoord{X: chunkX, Z: chunkZ},
		Size:      size,
		Positions: make([]mgl32.Vec3, 0, n),
		Normals:   make([]mgl32.Vec3, n),
		UVs:       make([]mgl32.Vec2, 0, n),
		Colors:    make([]mgl32.Vec4, 0, n),
		Indices:   make([]uint32, 0, 6*(size-1)*(size-1)),
	}

	rng := rand.New(rand.NewPCG(hash2(int64(chunkX), int64(chunkZ), g.field.Seed()), uint64(size)))
	fsize := float32(size)

	for i := range size {
		for j := range size {
			worldI := float64(xOffset + int64(i))
			worldJ := float64(zOffset + int64(j))
			h := g.field.Height(worldI, worldJ)

			m.Positions = append(m.Positions, mgl32.Vec3{float32(i), float32(h), float32(j)})
			m.UVs = append(m.UVs, mgl32.Vec2{float32(i) / fsize, float32(j) / fsize})
			m.Colors = append(m.Colors, mgl32.Vec4{grassRed, grassGreen * rng.Float32(), grassBlue, 1})
		}
	}
	for k := range m.Normals {
		m.Normals[k] = mgl32.Vec3{0, 1, 0}
	}

	s := uint32(size)
	for i := range s - 1 {
		for j := range s - 1 {
			topLeft := i*s + j
			topRight := topLeft + 1
			bottomLeft := topLeft + s
			bottomRight := bottomLeft + 1

			m.Indices = append(m.Indices,
				topLeft, topRight, bottomLeft,
				topRight, bottomRight, bottomLeft,
			)
		}
	}

	return m, nil
}

// chunkOffset returns chunk*(size-1), failing when any absolute coordinate
// of the chunk would not be exactly representable for noise sampling.
func chunkOffset(chunk, size int) (int64, error) {
	step := int64(size - 1)
	limit := int64(maxExactCoord) - step
	if c := int64(chunk); c > limit/step || c < -limit/step {
		return 0, fmt.Errorf("%w: chunk coordinate %d with size %d", ErrNumericOverflow, chunk, size)
	}
	return int64(chunk) * step, nil
}

// ChunkOrigin returns where chunk coord must be placed in world space so its
// first row/column coincides with the previous chunk's last one.
func ChunkOrigin(coord ChunkCoord, size int) mgl32.Vec3 {
	step := float32(size - 1)
	return mgl32.Vec3{float32(coord.X) * step, 0, float32(coord.Z) * step}
}

// WorldHeight returns the world-space height of local vertex (i, j) of a chunk
// without generating the whole mesh.
func (g *Generator) WorldHeight(size int, coord ChunkCoord, i, j int) float64 {
	step := size - 1
	return g.field.Height(float64(coord.X*step+i), float64(coord.Z*step+j))
}

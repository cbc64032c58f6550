package world

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"sync"

	"mini-terrain/internal/profiling"

	"github.com/alitto/pond/v2"
	"github.com/go-gl/mathgl/mgl32"
)

// Params describes the fixed world grid.
type Params struct {
	SizeChunks int // chunks per side
	ChunkSize  int // vertices per chunk edge
	Seed       int64
	Workers    int // 0 means runtime.NumCPU()
}

// Chunk is a generated chunk placed in world space.
type Chunk struct {
	Coord  ChunkCoord
	Origin mgl32.Vec3
	Mesh   *Mesh
}

// World is the fixed square grid of generated chunks.
type World struct {
	Seed       int64
	SizeChunks int
	ChunkSize  int
	Chunks     []*Chunk // row-major by (X, Z)
}

// NewSeed draws a fresh world seed.
func NewSeed() int64 {
	return rand.Int64()
}

// Build generates every chunk of the grid on a bounded worker pool. Chunks are
// independent, so the only shared state is the read-only NoiseField.
func Build(ctx context.Context, p Params) (*World, error) {
	defer profiling.Track("world.Build")()

	if p.SizeChunks < 1 {
		return nil, fmt.Errorf("%w: world size %d chunks", ErrInvalidArgument, p.SizeChunks)
	}
	if p.ChunkSize < MinChunkSize {
		return nil, fmt.Errorf("%w: chunk size %d, need at least %d", ErrInvalidArgument, p.ChunkSize, MinChunkSize)
	}

	workers := p.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	gen := NewGenerator(p.Seed)
	w := &World{
		Seed:       p.Seed,
		SizeChunks: p.SizeChunks,
		ChunkSize:  p.ChunkSize,
		Chunks:     make([]*Chunk, p.SizeChunks*p.SizeChunks),
	}

	pool := pond.NewPool(workers)
	defer pool.StopAndWait()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

submit:
	for x := range p.SizeChunks {
		for z := range p.SizeChunks {
			if err := ctx.Err(); err != nil {
				setErr(err)
				break submit
			}
			slot := x*p.SizeChunks + z
			coord := ChunkCoord{X: x, Z: z}

			wg.Add(1)
			pool.Submit(func() {
				defer wg.Done()
				if ctx.Err() != nil {
					return
				}
				m, err := gen.Generate(p.ChunkSize, coord.X, coord.Z)
				if err != nil {
					setErr(fmt.Errorf("chunk %d,%d: %w", coord.X, coord.Z, err))
					return
				}
				w.Chunks[slot] = &Chunk{
					Coord:  coord,
					Origin: ChunkOrigin(coord, p.ChunkSize),
					Mesh:   m,
				}
			})
		}
	}

	wg.Wait()

	if firstErr == nil {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return w, nil
}

// Chunk returns the chunk at coord, or nil outside the grid.
func (w *World) Chunk(coord ChunkCoord) *Chunk {
	if coord.X < 0 || coord.X >= w.SizeChunks || coord.Z < 0 || coord.Z >= w.SizeChunks {
		return nil
	}
	return w.Chunks[coord.X*w.SizeChunks+coord.Z]
}

// Extent returns the world-space edge length covered by the grid.
func (w *World) Extent() float32 {
	return float32(w.SizeChunks*(w.ChunkSize-1))
}

// VertexCount returns the total number of vertices across all chunks.
func (w *World) VertexCount() int {
	n := 0
	for _, c := range w.Chunks {
		n += c.Mesh.VertexCount()
	}
	return n
}

// Package meshio writes generated chunk meshes to disk and reads them back.
//
// A file is a single zstd frame holding one JSON header line followed by a
// gob stream of chunk records.
package meshio

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"mini-terrain/internal/world"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/klauspost/compress/zstd"
)

const Version = 1

var (
	ErrVersion = errors.New("unsupported mesh file version")
	// ErrCorrupt is returned when the header or a chunk record is inconsistent.
	ErrCorrupt = errors.New("corrupt mesh file")
)

// maxPrealloc bounds how many chunk slots are reserved from the header count.
const maxPrealloc = 1024

type Header struct {
	Version   int   `json:"version"`
	Seed      int64 `json:"seed"`
	ChunkSize int   `json:"chunk_size"`
	Chunks    int   `json:"chunks"`
}

type chunkRecord struct {
	X, Z      int
	Origin    mgl32.Vec3
	Size      int
	Positions []mgl32.Vec3
	Normals   []mgl32.Vec3
	UVs       []mgl32.Vec2
	Colors    []mgl32.Vec4
	Indices   []uint32
}

// WriteWorld writes every chunk of w to path.
func WriteWorld(path string, w *world.World) error {
	h := Header{Version: Version, Seed: w.Seed, ChunkSize: w.ChunkSize, Chunks: len(w.Chunks)}
	return WriteChunks(path, h, w.Chunks)
}

// WriteChunks writes header and chunks to path, creating parent directories.
// Header.Version and Header.Chunks are filled in.
func WriteChunks(path string, h Header, chunks []*world.Chunk) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	// path only ever holds a complete file
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	err = Encode(f, h, chunks)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Chmod(tmp, 0o644)
	}
	if err == nil {
		err = os.Rename(tmp, path)
	}
	if err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// Encode writes the compressed stream to out.
func Encode(out io.Writer, h Header, chunks []*world.Chunk) error {
	enc, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	err = encodeStream(enc, h, chunks)
	if cerr := enc.Close(); err == nil {
		err = cerr
	}
	return err
}

func encodeStream(w io.Writer, h Header, chunks []*world.Chunk) error {
	bw := bufio.NewWriterSize(w, 256*1024)

	h.Version = Version
	h.Chunks = len(chunks)
	hb, err := json.Marshal(h)
	if err != nil {
		return err
	}
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	ge := gob.NewEncoder(bw)
	for _, c := range chunks {
		m := c.Mesh
		if m == nil {
			return fmt.Errorf("chunk %d,%d: no mesh", c.Coord.X, c.Coord.Z)
		}
		rec := chunkRecord{
			X: c.Coord.X, Z: c.Coord.Z, Origin: c.Origin, Size: m.Size,
			Positions: m.Positions, Normals: m.Normals, UVs: m.UVs, Colors: m.Colors, Indices: m.Indices,
		}
		if err := ge.Encode(&rec); err != nil {
			return fmt.Errorf("gob encode chunk %d,%d: %w", c.Coord.X, c.Coord.Z, err)
		}
	}

	return bw.Flush()
}

// ReadChunks reads a file written by WriteChunks.
func ReadChunks(path string) (Header, []*world.Chunk, error) {
	f, err := os.Open(path)
	if err != nil {
		return Header{}, nil, err
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads a compressed stream produced by Encode.
func Decode(in io.Reader) (Header, []*world.Chunk, error) {
	var h Header
	dec, err := zstd.NewReader(in)
	if err != nil {
		return h, nil, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 256*1024)

	line, err := br.ReadBytes('\n')
	if err != nil {
		return h, nil, fmt.Errorf("read header: %w", err)
	}
	if err := json.Unmarshal(line, &h); err != nil {
		return h, nil, fmt.Errorf("decode header: %w", err)
	}
	if h.Version != Version {
		return h, nil, fmt.Errorf("%w: %d", ErrVersion, h.Version)
	}

	if h.Chunks < 0 {
		return h, nil, fmt.Errorf("%w: chunk count %d", ErrCorrupt, h.Chunks)
	}

	gd := gob.NewDecoder(br)
	chunks := make([]*world.Chunk, 0, min(h.Chunks, maxPrealloc))
	for range h.Chunks {
		var rec chunkRecord
		if err := gd.Decode(&rec); err != nil {
			return h, nil, fmt.Errorf("gob decode chunk %d: %w", len(chunks), err)
		}
		if err := rec.validate(); err != nil {
			return h, nil, fmt.Errorf("chunk %d (%d,%d): %w", len(chunks), rec.X, rec.Z, err)
		}
		coord := world.ChunkCoord{X: rec.X, Z: rec.Z}
		chunks = append(chunks, &world.Chunk{
			Coord:  coord,
			Origin: rec.Origin,
			Mesh: &world.Mesh{
				Coord: coord, Size: rec.Size,
				Positions: rec.Positions, Normals: rec.Normals, UVs: rec.UVs, Colors: rec.Colors, Indices: rec.Indices,
			},
		})
	}
	return h, chunks, nil
}

// validate checks the buffers against Size so they can be uploaded as-is.
func (r *chunkRecord) validate() error {
	if r.Size < world.MinChunkSize || r.Size > world.MaxChunkSize {
		return fmt.Errorf("%w: size %d", ErrCorrupt, r.Size)
	}
	verts := r.Size * r.Size
	if len(r.Positions) != verts || len(r.Normals) != verts || len(r.UVs) != verts || len(r.Colors) != verts {
		return fmt.Errorf("%w: %d/%d/%d/%d attributes, want %d each",
			ErrCorrupt, len(r.Positions), len(r.Normals), len(r.UVs), len(r.Colors), verts)
	}
	if want := 6 * (r.Size - 1) * (r.Size - 1); len(r.Indices) != want {
		return fmt.Errorf("%w: %d indices, want %d", ErrCorrupt, len(r.Indices), want)
	}
	for k, ix := range r.Indices {
		if int(ix) >= verts {
			return fmt.Errorf("%w: index %d = %d out of range", ErrCorrupt, k, ix)
		}
	}
	return nil
}

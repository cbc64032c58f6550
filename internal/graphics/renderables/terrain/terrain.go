package terrain

import (
	"fmt"
	"path/filepath"
	"unsafe"

	"mini-terrain/internal/graphics"
	renderer "mini-terrain/internal/graphics/renderer"
	"mini-terrain/internal/profiling"
	"mini-terrain/internal/world"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	ShadersDir = "assets/shaders/terrain"
)

var (
	TerrainVertShader = filepath.Join(ShadersDir, "terrain.vert")
	TerrainFragShader = filepath.Join(ShadersDir, "terrain.frag")
)

// Vertex attribute locations, matching terrain.vert
const (
	attribPosition = 0
	attribNormal   = 1
	attribUV       = 2
	attribColor    = 3
)

// LightDir is the fixed direction towards the sun used for diffuse shading
var LightDir = mgl32.Vec3{0.3, 1.0, 0.2}

type gpuChunk struct {
	vao        uint32
	vbos       [4]uint32
	ebo        uint32
	indexCount int32
	model      mgl32.Mat4
}

// Terrain draws static chunk meshes. Each mesh is uploaded once.
type Terrain struct {
	shader  *graphics.Shader
	chunks  []*world.Chunk
	uploads []gpuChunk
}

// NewTerrain creates the renderable for the given chunks
func NewTerrain(chunks []*world.Chunk) *Terrain {
	return &Terrain{chunks: chunks}
}

// Init compiles the shader and uploads every chunk
func (t *Terrain) Init() error {
	var err error
	t.shader, err = graphics.NewShader(TerrainVertShader, TerrainFragShader)
	if err != nil {
		return err
	}

	t.uploads = make([]gpuChunk, 0, len(t.chunks))
	for _, c := range t.chunks {
		g, err := upload(c)
		if err != nil {
			t.Dispose()
			return err
		}
		t.uploads = append(t.uploads, g)
	}
	return nil
}

func upload(c *world.Chunk) (gpuChunk, error) {
	m := c.Mesh
	if len(m.Positions) == 0 || len(m.Indices) == 0 {
		return gpuChunk{}, fmt.Errorf("chunk %d,%d: empty mesh", c.Coord.X, c.Coord.Z)
	}

	g := gpuChunk{
		indexCount: int32(len(m.Indices)),
		model:      mgl32.Translate3D(c.Origin.X(), c.Origin.Y(), c.Origin.Z()),
	}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)
	gl.GenBuffers(4, &g.vbos[0])

	attrib(g.vbos[0], attribPosition, 3, len(m.Positions)*3*4, gl.Ptr(m.Positions))
	attrib(g.vbos[1], attribNormal, 3, len(m.Normals)*3*4, gl.Ptr(m.Normals))
	attrib(g.vbos[2], attribUV, 2, len(m.UVs)*2*4, gl.Ptr(m.UVs))
	attrib(g.vbos[3], attribColor, 4, len(m.Colors)*4*4, gl.Ptr(m.Colors))

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, gl.Ptr(m.Indices), gl.STATIC_DRAW)

	gl.BindVertexArray(0)
	return g, nil
}

func attrib(vbo, location uint32, components int32, size int, data unsafe.Pointer) {
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, size, data, gl.STATIC_DRAW)
	gl.VertexAttribPointerWithOffset(location, components, gl.FLOAT, false, components*4, 0)
	gl.EnableVertexAttribArray(location)
}

// Render draws every uploaded chunk
func (t *Terrain) Render(ctx renderer.RenderContext) {
	defer profiling.Track("terrain.Render")()

	t.shader.Use()
	t.shader.SetMat4("view", ctx.View)
	t.shader.SetMat4("projection", ctx.Proj)
	t.shader.SetVec3("lightDir", LightDir.Normalize())

	for i := range t.uploads {
		g := &t.uploads[i]
		t.shader.SetMat4("model", g.model)
		gl.BindVertexArray(g.vao)
		gl.DrawElementsWithOffset(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, 0)
	}
	gl.BindVertexArray(0)
}

// Dispose cleans up OpenGL resources
func (t *Terrain) Dispose() {
	for i := range t.uploads {
		g := &t.uploads[i]
		gl.DeleteBuffers(4, &g.vbos[0])
		gl.DeleteBuffers(1, &g.ebo)
		gl.DeleteVertexArrays(1, &g.vao)
	}
	t.uploads = nil
	if t.shader != nil {
		t.shader.Delete()
		t.shader = nil
	}
}

// SetViewport is a no-op; terrain only depends on the projection matrix
func (t *Terrain) SetViewport(width, height int) {}

// Package gpubuf owns the grid's vertex buffer and gives scoped,
// host-visible access to its contents.
package gpubuf

import (
	"errors"
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/ripplegrid/internal/engine/grid"
)

const vertexSize = int(unsafe.Sizeof(grid.Vertex{}))

var (
	// ErrMapFailed is returned when the driver gives back a nil mapping.
	ErrMapFailed = errors.New("vertex buffer map returned nil")
	// ErrUnmapFailed is returned when the buffer contents were lost while mapped.
	ErrUnmapFailed = errors.New("vertex buffer contents corrupted while mapped")
	// ErrEmpty is returned when creating a buffer with no vertices.
	ErrEmpty = errors.New("vertex buffer needs at least one vertex")
)

// mapper is the raw map/unmap primitive set behind a Buffer.
type mapper interface {
	bind()
	unbind()
	mapBuffer() unsafe.Pointer
	unmapBuffer() bool
}

// Buffer is a fixed-size array buffer of positions with its VAO.
// The vertex count never changes after creation.
type Buffer struct {
	m     mapper
	count int
}

// New uploads verts into a dynamic array buffer whose layout is
// one vec3 position at attribute 0. A GL context must be current.
func New(verts []grid.Vertex) (*Buffer, error) {
	if len(verts) == 0 {
		return nil, ErrEmpty
	}

	g := &glMapper{}
	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*vertexSize, unsafe.Pointer(&verts[0]), gl.DYNAMIC_DRAW)

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, int32(vertexSize), 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if g.vao == 0 || g.vbo == 0 {
		return nil, fmt.Errorf("allocating vertex buffer: vao=%d vbo=%d", g.vao, g.vbo)
	}

	return &Buffer{m: g, count: len(verts)}, nil
}

// Len returns the number of vertices in the buffer.
func (b *Buffer) Len() int {
	return b.count
}

// Update maps the buffer, hands its contents to fn and unmaps it.
// The slice passed to fn is only valid during the call. The buffer is
// unmapped on every path out of Update once the map succeeded, including
// when fn returns an error or panics.
func (b *Buffer) Update(fn func(verts []grid.Vertex) error) (err error) {
	b.m.bind()
	defer b.m.unbind()

	ptr := b.m.mapBuffer()
	if ptr == nil {
		return ErrMapFailed
	}
	defer func() {
		if !b.m.unmapBuffer() && err == nil {
			err = ErrUnmapFailed
		}
	}()

	return fn(unsafe.Slice((*grid.Vertex)(ptr), b.count))
}

// Draw issues an unindexed triangle draw over the whole buffer.
func (b *Buffer) Draw() {
	b.m.bind()
	gl.DrawArrays(gl.TRIANGLES, 0, int32(b.count))
	b.m.unbind()
}

// Delete releases the GPU objects.
func (b *Buffer) Delete() {
	if g, ok := b.m.(*glMapper); ok {
		g.delete()
	}
}

// glMapper implements mapper on top of a VAO and its array buffer.
type glMapper struct {
	vao uint32
	vbo uint32
}

func (g *glMapper) bind() {
	gl.BindVertexArray(g.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
}

func (g *glMapper) unbind() {
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (g *glMapper) mapBuffer() unsafe.Pointer {
	return gl.MapBuffer(gl.ARRAY_BUFFER, gl.READ_WRITE)
}

func (g *glMapper) unmapBuffer() bool {
	return gl.UnmapBuffer(gl.ARRAY_BUFFER)
}

func (g *glMapper) delete() {
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}

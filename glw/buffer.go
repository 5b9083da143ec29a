package glw

import (
	"encoding/binary"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/mobile/exp/f32"
)

// FloatBuffer is an array buffer of float32 values.
type FloatBuffer struct {
	Buffer uint32
	count  int
	usage  uint32
}

// Create generates the buffer, binds it and uploads data.
func (buf *FloatBuffer) Create(usage uint32, data []float32) {
	buf.usage = usage
	gl.GenBuffers(1, &buf.Buffer)
	buf.Bind()
	buf.Update(data)
}

func (buf *FloatBuffer) Delete() { gl.DeleteBuffers(1, &buf.Buffer) }
func (buf FloatBuffer) Bind()    { gl.BindBuffer(gl.ARRAY_BUFFER, buf.Buffer) }

// Len returns the number of floats last uploaded.
func (buf FloatBuffer) Len() int { return buf.count }

// Update replaces the contents of the bound buffer with data.
func (buf *FloatBuffer) Update(data []float32) {
	buf.count = len(data)
	bin := encode(data)
	if len(bin) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, buf.usage)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(bin), gl.Ptr(bin), buf.usage)
}

// encode returns data as little-endian bytes, the layout GL reads on every
// platform this builds for.
func encode(data []float32) []byte { return f32.Bytes(binary.LittleEndian, data...) }

// VertexArray pairs a vertex array object with the buffer feeding a single
// vec2 attribute.
type VertexArray struct {
	Attrib A2fv
	Floats FloatBuffer

	vao uint32
}

// Create generates the vertex array, uploads data as x, y pairs and points
// Attrib at it.
func (va *VertexArray) Create(usage uint32, data []float32) {
	gl.GenVertexArrays(1, &va.vao)
	gl.BindVertexArray(va.vao)
	va.Floats.Create(usage, data)
	va.Attrib.Pointer()
}

// Count returns the number of vertices in the array.
func (va VertexArray) Count() int { return va.Floats.Len() / 2 }

// Draw renders all vertices of the array as mode, non-indexed.
func (va VertexArray) Draw(mode uint32) { gl.DrawArrays(mode, 0, int32(va.Count())) }

func (va *VertexArray) Delete() {
	va.Floats.Delete()
	gl.DeleteVertexArrays(1, &va.vao)
}

package glw

import "github.com/go-gl/gl/v4.1-core/gl"

// A2fv is the location of a vec2 vertex attribute.
type A2fv uint32

func (a A2fv) Enable() { gl.EnableVertexAttribArray(uint32(a)) }

// Pointer enables a and sources it from tightly packed pairs in the bound
// array buffer.
func (a A2fv) Pointer() {
	a.Enable()
	gl.VertexAttribPointer(uint32(a), 2, gl.FLOAT, false, 0, nil)
}

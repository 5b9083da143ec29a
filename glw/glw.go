// Package glw wraps the handful of OpenGL calls needed to put vertices on
// screen. All functions must be called on the thread owning the current
// context.
package glw

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/math/f32"
)

// caller returns first file and line number outside of this package for calling
// goroutine's stack, prefixed with defaultName which may be overridden based on
// stack frames.
func caller(defaultName string) string {
	pc := make([]uintptr, 10)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])

	var (
		frame runtime.Frame
		more  bool
		name  = defaultName
		inpkg = func(s string) bool { return strings.HasPrefix(s, "dasa.cc/tri/glw") }
	)

	for frame, more = frames.Next(); more && inpkg(frame.Function); frame, more = frames.Next() {
		switch frame.Function {
		case "dasa.cc/tri/glw.VertSrc.Compile":
			name = "VertexShader"
		case "dasa.cc/tri/glw.FragSrc.Compile":
			name = "FragmentShader"
		}
	}

	return fmt.Sprintf("%s %s:%v", name, frame.File, frame.Line)
}

// Version returns the version string of the current context.
func Version() string { return gl.GoStr(gl.GetString(gl.VERSION)) }

// Viewport maps normalized device coordinates to width by height pixels.
func Viewport(width, height int) { gl.Viewport(0, 0, int32(width), int32(height)) }

// Clear fills the color buffer with rgba.
func Clear(rgba f32.Vec4) {
	gl.ClearColor(rgba[0], rgba[1], rgba[2], rgba[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// Floats2fv flattens vs into x0, y0, x1, y1, ...
func Floats2fv(vs []f32.Vec2) []float32 {
	fs := make([]float32, 0, 2*len(vs))
	for _, v := range vs {
		fs = append(fs, v[0], v[1])
	}
	return fs
}

package glw

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

func compile(typ uint32, src string) (uint32, error) {
	shd := gl.CreateShader(typ)
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shd, 1, csrc, nil)
	free()
	gl.CompileShader(shd)

	var status int32
	gl.GetShaderiv(shd, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(shd, gl.INFO_LOG_LENGTH, &n)
		msg := strings.Repeat("\x00", int(n+1))
		gl.GetShaderInfoLog(shd, n, nil, gl.Str(msg))
		gl.DeleteShader(shd)
		return 0, fmt.Errorf("%s\n%s", caller("CompileShader"), strings.TrimRight(msg, "\x00"))
	}
	return shd, nil
}

// VertSrc is vertex shader source code.
type VertSrc string

// Compile returns the compiled shader of src and error if any.
func (src VertSrc) Compile() (uint32, error) { return compile(gl.VERTEX_SHADER, string(src)) }

// FragSrc is fragment shader source code.
type FragSrc string

// Compile returns the compiled shader of src and error if any.
func (src FragSrc) Compile() (uint32, error) { return compile(gl.FRAGMENT_SHADER, string(src)) }

// Program identifies a linked shader program.
type Program struct{ Program uint32 }

// Use installs program as part of current rendering state.
func (prg Program) Use() { gl.UseProgram(prg.Program) }

// Attrib returns location of the named vec2 attribute, or error if program
// has no active attribute by that name.
func (prg Program) Attrib(name string) (A2fv, error) {
	loc := gl.GetAttribLocation(prg.Program, gl.Str(name+"\x00"))
	if loc < 0 {
		return 0, fmt.Errorf("glw: attribute %q not active in program %v", name, prg.Program)
	}
	return A2fv(loc), nil
}

// Delete frees the memory and invalidates the name associated with the program.
func (prg Program) Delete() { gl.DeleteProgram(prg.Program) }

// Build compiles shaders and links program. On error, the program is
// deleted and prg reset to its zero value.
func (prg *Program) Build(vsrc VertSrc, fsrc FragSrc) error {
	prg.Program = gl.CreateProgram()

	vshd, err := vsrc.Compile()
	if err != nil {
		return prg.fail(err)
	}
	gl.AttachShader(prg.Program, vshd)
	defer gl.DeleteShader(vshd)

	fshd, err := fsrc.Compile()
	if err != nil {
		return prg.fail(err)
	}
	gl.AttachShader(prg.Program, fshd)
	defer gl.DeleteShader(fshd)

	gl.LinkProgram(prg.Program)

	var status int32
	gl.GetProgramiv(prg.Program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(prg.Program, gl.INFO_LOG_LENGTH, &n)

		msg := strings.Repeat("\x00", int(n+1))
		gl.GetProgramInfoLog(prg.Program, n, nil, gl.Str(msg))
		return prg.fail(fmt.Errorf("%s\n%s", caller("LinkProgram"), strings.TrimRight(msg, "\x00")))
	}

	return nil
}

func (prg *Program) fail(err error) error {
	gl.DeleteProgram(prg.Program)
	prg.Program = 0
	return err
}

// Install is a helper that wraps Program.Build and Program.Use.
func (prg *Program) Install(vsrc VertSrc, fsrc FragSrc) error {
	if err := prg.Build(vsrc, fsrc); err != nil {
		return err
	}
	prg.Use()
	return nil
}

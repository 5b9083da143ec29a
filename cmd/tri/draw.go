package main

import (
	"dasa.cc/tri/glw"
	"dasa.cc/tri/loop"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// draw clears the frame target and draws frame.Triangle once, non-indexed,
// with no uniforms.
//
// The program and vertex array are built and deleted within every call.
// TODO hoist Build and Create out of the frame and only Update the buffer.
func draw(frame loop.DrawFrame) error {
	glw.Clear(frame.Clear)

	var prg glw.Program
	if err := prg.Install(vsrc, fsrc); err != nil {
		return err
	}
	defer prg.Delete()

	var va glw.VertexArray
	var err error
	if va.Attrib, err = prg.Attrib("position"); err != nil {
		return err
	}
	va.Create(gl.STREAM_DRAW, glw.Floats2fv(frame.Triangle[:]))
	defer va.Delete()

	va.Draw(gl.TRIANGLES)
	return nil
}

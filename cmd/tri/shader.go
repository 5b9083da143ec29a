package main

import "dasa.cc/tri/glw"

const vsrc glw.VertSrc = `#version 410 core
in vec2 position;

void main() {
	gl_Position = vec4(position, 0.0, 1.0);
}`

const fsrc glw.FragSrc = `#version 410 core
out vec4 color;

void main() {
	color = vec4(1.0, 0.0, 0.0, 1.0);
}`

package loop

import (
	"math"

	"golang.org/x/image/math/f32"
)

const (
	// Step is added to Clock.DeltaT once per redraw.
	Step float32 = 0.02

	// Amplitude bounds the horizontal offset of the triangle.
	Amplitude float32 = 0.5
)

// ClearColor is the RGBA every frame target is cleared to.
var ClearColor = f32.Vec4{0.02, 0.02, 0.02, 1}

// base positions of the triangle before offset.
var base = Triangle{
	{-0.5, -0.5},
	{+0.0, +0.5},
	{+0.5, -0.25},
}

// Clock counts redraws in units of Step. It is never reset.
type Clock struct{ DeltaT float32 }

// Advance adds Step and returns the new value.
func (c *Clock) Advance() float32 {
	c.DeltaT += Step
	return c.DeltaT
}

// Offset returns the horizontal displacement for deltaT.
func Offset(deltaT float32) float32 {
	return float32(math.Sin(float64(deltaT))) * Amplitude
}

// Triangle is three vertices in normalized device coordinates.
type Triangle [3]f32.Vec2

// Shape returns the triangle with offset added to each x.
func Shape(offset float32) Triangle {
	tri := base
	for i := range tri {
		tri[i][0] += offset
	}
	return tri
}

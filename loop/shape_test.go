package loop

import (
	"math"
	"testing"
)

func TestOffset(t *testing.T) {
	for _, d := range []float32{0, Step, 0.5, 1, math.Pi / 2, math.Pi, -3, 100, 1e6, math.MaxFloat32} {
		want := math.Sin(float64(d)) * 0.5
		have := Offset(d)
		if math.Abs(want-float64(have)) > 1e-6 {
			t.Fatalf("Offset(%v)\nwant: %v\nhave: %v", d, want, have)
		}
		if have < -Amplitude || have > Amplitude {
			t.Fatalf("Offset(%v) = %v out of bounds", d, have)
		}
	}
}

func TestShape(t *testing.T) {
	xs := [3]float32{-0.5, 0, 0.5}
	ys := [3]float32{-0.5, 0.5, -0.25}

	var c Clock
	for i := 0; i < 400; i++ {
		off := Offset(c.Advance())
		tri := Shape(off)
		for j, v := range tri {
			if v[1] != ys[j] {
				t.Fatalf("frame %v vertex %v: y want %v, have %v", i, j, ys[j], v[1])
			}
			if v[0] != xs[j]+off {
				t.Fatalf("frame %v vertex %v: x want %v, have %v", i, j, xs[j]+off, v[0])
			}
		}
	}
}

func TestShapeDoesNotMutateBase(t *testing.T) {
	Shape(0.3)
	if have := Shape(0); have != base {
		t.Fatalf("base mutated\nwant: %v\nhave: %v", base, have)
	}
}

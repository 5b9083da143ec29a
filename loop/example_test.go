package loop_test

import (
	"fmt"

	"dasa.cc/tri/loop"
)

func Example() {
	var d loop.Driver

	events := []loop.Event{
		loop.Resized{Width: 800, Height: 480},
		loop.RedrawRequested{},
		loop.AboutToWait{},
		loop.CloseRequested{},
		loop.RedrawRequested{},
	}
	for _, ev := range events {
		for _, eff := range d.Update(ev) {
			switch eff := eff.(type) {
			case loop.ResizeSurface:
				fmt.Printf("resize %vx%v\n", eff.Width, eff.Height)
			case loop.DrawFrame:
				fmt.Printf("draw %.2f\n", eff.Triangle[1])
			case loop.RequestRedraw:
				fmt.Println("request redraw")
			case loop.Exit:
				fmt.Println("exit")
			}
		}
	}
	fmt.Println(d.State())

	// Output:
	// resize 800x480
	// draw [0.01 0.50]
	// request redraw
	// exit
	// Exiting
}

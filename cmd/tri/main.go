// Command tri draws a red triangle swaying left and right until its window
// is closed.
package main

import (
	"fmt"
	"runtime"
	"time"

	"dasa.cc/tri/glw"
	"dasa.cc/tri/log"
	"dasa.cc/tri/loop"
	"dasa.cc/tri/nui"
)

const title = "tri"

var logger = log.New(title)

// glfw and GL calls must come from the main thread.
func init() { runtime.LockOSThread() }

func must(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}

type app struct {
	win    *nui.Window
	driver loop.Driver

	meter loop.Meter
	last  time.Time
}

func (a *app) apply(eff loop.Effect) {
	switch eff := eff.(type) {
	case loop.ResizeSurface:
		glw.Viewport(eff.Width, eff.Height)
	case loop.DrawFrame:
		must(draw(eff))
		a.win.Present()
		a.tick()
	case loop.RequestRedraw:
		a.win.RequestRedraw()
	case loop.Exit:
		logger.Noticef("exiting at deltaT %.2f", a.driver.Clock().DeltaT)
	}
}

// tick reports frame rate once a second.
func (a *app) tick() {
	now := time.Now()
	if fps, ok := a.meter.Tick(now.Sub(a.last)); ok {
		a.win.SetTitle(fmt.Sprintf("%s - FPS: %.2f", title, fps))
		logger.Debugf("%.2f fps", fps)
	}
	a.last = now
}

func main() {
	win, err := nui.Open(nui.Title(title))
	must(err)
	defer win.Close()

	logger.Infof("GL %s", glw.Version())

	a := &app{win: win, last: time.Now()}
	for !a.driver.Done() {
		for _, ev := range win.Events() {
			for _, eff := range a.driver.Update(ev) {
				a.apply(eff)
			}
		}
	}
}

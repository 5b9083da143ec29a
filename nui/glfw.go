package nui

import (
	"fmt"

	"dasa.cc/tri/loop"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	pollEvents = glfw.PollEvents
	waitEvents = glfw.WaitEvents
)

// Window is a resizable glfw window with a current OpenGL 4.1 core context.
type Window struct {
	win *glfw.Window

	queue  []loop.Event
	redraw bool
}

// Open initializes glfw, creates the window and makes its context current
// on the calling thread, which must be the main thread.
func Open(options ...func(*Config)) (*Window, error) {
	cfg := defaultConfig
	for _, opt := range options {
		opt(&cfg)
	}

	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("nui: glfw init: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("nui: create window: %w", err)
	}

	win.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("nui: gl init: %w", err)
	}
	glfw.SwapInterval(1)

	w := &Window{win: win}
	win.SetCloseCallback(w.onClose)
	win.SetFramebufferSizeCallback(w.onSize)
	win.SetRefreshCallback(w.onRefresh)

	// framebuffer may differ from cfg on high density displays
	width, height := win.GetFramebufferSize()
	w.onSize(win, width, height)

	logger.Infof("opened %q %vx%v, framebuffer %vx%v", cfg.Title, cfg.Width, cfg.Height, width, height)
	return w, nil
}

func (w *Window) onClose(*glfw.Window)                     { w.push(loop.CloseRequested{}) }
func (w *Window) onRefresh(*glfw.Window)                   { w.RequestRedraw() }
func (w *Window) onSize(_ *glfw.Window, width, height int) { w.push(loop.Resized{Width: width, Height: height}) }

// Present swaps front and back buffers.
func (w *Window) Present() { w.win.SwapBuffers() }

func (w *Window) SetTitle(s string) { w.win.SetTitle(s) }

// Close destroys the window and terminates glfw.
func (w *Window) Close() {
	w.win.Destroy()
	glfw.Terminate()
	logger.Infof("closed")
}

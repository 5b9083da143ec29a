// Package nui aims to be unremarkable in aiding windowing.
//
// A Window turns glfw callbacks into loop events, delivered in batches that
// always end with loop.AboutToWait.
package nui

import (
	"dasa.cc/tri/log"
	"dasa.cc/tri/loop"
)

var logger = log.New("nui")

// Config of a window created by Open.
type Config struct {
	Width, Height int
	Title         string
}

var defaultConfig = Config{Width: 800, Height: 480, Title: "tri"}

// Size sets initial window size in screen coordinates.
func Size(width, height int) func(*Config) {
	return func(cfg *Config) { cfg.Width, cfg.Height = width, height }
}

// Title sets initial window title.
func Title(s string) func(*Config) {
	return func(cfg *Config) { cfg.Title = s }
}

// Events returns the next batch of events, blocking until at least one
// platform event arrives unless a redraw is pending.
func (w *Window) Events() []loop.Event {
	if w.redraw || len(w.queue) > 0 {
		pollEvents()
	} else {
		waitEvents()
	}
	return w.drain()
}

// RequestRedraw schedules loop.RedrawRequested for the next batch.
// Requests made before the batch is drained coalesce.
func (w *Window) RequestRedraw() { w.redraw = true }

func (w *Window) push(ev loop.Event) { w.queue = append(w.queue, ev) }

func (w *Window) drain() []loop.Event {
	evs := w.queue
	w.queue = nil
	if w.redraw {
		evs = append(evs, loop.RedrawRequested{})
		w.redraw = false
	}
	return append(evs, loop.AboutToWait{})
}

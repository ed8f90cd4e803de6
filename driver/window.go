package driver

import (
	"fmt"
	"image"

	"github.com/jmigpin/glfwdemo/util/uiutil/event"
)

// Window is a native window with its rendering context, as seen by the
// session loop. Implementations must only be used from the OS thread that
// created them.
type Window interface {
	// Non-blocking. Returns every event received since the last call, in
	// arrival order. Empty if nothing happened.
	PollEvents() []*event.Record

	ShouldClose() bool
	SetShouldClose(bool)

	// Presents the rendered frame.
	SwapBuffers() error

	// Framebuffer size in pixels.
	Size() image.Point

	Close() error
}

//----------

type Options struct {
	Width, Height int
	Title         string
	Context       ContextHints

	// Buffer swaps to wait for before presenting (1=vsync, 0=none). Ignored
	// by backends without a GL context.
	SwapInterval int
}

func (opt *Options) Validate() error {
	if opt.Width <= 0 || opt.Height <= 0 {
		return fmt.Errorf("bad window size: %vx%v", opt.Width, opt.Height)
	}
	return opt.Context.Validate()
}

//----------

type ContextHints struct {
	Major, Minor  int
	ForwardCompat bool
	CoreProfile   bool
}

// A profile compatible with OS X 10.7+.
func DefaultContextHints() ContextHints {
	return ContextHints{Major: 3, Minor: 2, ForwardCompat: true, CoreProfile: true}
}

func (h ContextHints) Validate() error {
	if h.Major == 0 && h.Minor == 0 {
		return nil // backend default
	}
	if h.Major < 1 || h.Minor < 0 {
		return fmt.Errorf("bad context version: %v.%v", h.Major, h.Minor)
	}
	// core and forward compatible profiles only exist from 3.x on
	if (h.CoreProfile || h.ForwardCompat) && h.Major < 3 {
		return fmt.Errorf("context %v.%v has no core profile", h.Major, h.Minor)
	}
	return nil
}

func (h ContextHints) String() string {
	s := fmt.Sprintf("%v.%v", h.Major, h.Minor)
	if h.CoreProfile {
		s += " core"
	}
	if h.ForwardCompat {
		s += " fwd"
	}
	return s
}

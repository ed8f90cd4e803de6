// Package glfwdriver implements a window with an OpenGL context using GLFW.
//
// GLFW must be used from the main OS thread: programs call
// runtime.LockOSThread from an init function before creating a window.
package glfwdriver

import (
	"image"
	"sync"
	"time"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/jmigpin/glfwdemo/util/logutil"
	"github.com/jmigpin/glfwdemo/util/uiutil/event"
	"github.com/pkg/errors"
)

type Options struct {
	Width, Height int
	Title         string

	// context version hints (0.0 keeps the glfw default)
	Major, Minor  int
	ForwardCompat bool
	CoreProfile   bool

	SwapInterval int
}

type Window struct {
	win    *glfw.Window
	events *event.Queue

	closeOnce sync.Once
}

func NewWindow(opt *Options) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, errors.Wrap(err, "init")
	}
	win, err := createWindow(opt)
	if err != nil {
		glfw.Terminate()
		return nil, err
	}

	w := &Window{win: win, events: event.NewQueue()}
	w.setupCallbacks()

	// context must be current before loading gl functions
	w.win.MakeContextCurrent()
	glfw.SwapInterval(opt.SwapInterval)

	logutil.Logger().Info("glfw window created",
		"size", image.Pt(opt.Width, opt.Height),
		"title", opt.Title,
		"glfw", glfw.GetVersionString())
	return w, nil
}

func createWindow(opt *Options) (*glfw.Window, error) {
	glfw.DefaultWindowHints()
	if opt.Major != 0 || opt.Minor != 0 {
		glfw.WindowHint(glfw.ContextVersionMajor, opt.Major)
		glfw.WindowHint(glfw.ContextVersionMinor, opt.Minor)
	}
	if opt.ForwardCompat {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if opt.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}

	win, err := glfw.CreateWindow(opt.Width, opt.Height, opt.Title, nil, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "create window %vx%v", opt.Width, opt.Height)
	}
	return win, nil
}

func (w *Window) setupCallbacks() {
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if ev := keyEvent(key, action, mods); ev != nil {
			w.push(ev)
		}
	})
	w.win.SetCloseCallback(func(_ *glfw.Window) {
		w.push(&event.WindowClose{})
	})
	w.win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.push(&event.WindowResize{Rect: image.Rect(0, 0, width, height)})
	})
}

func (w *Window) push(ev event.Event) {
	t := time.Duration(glfw.GetTime() * float64(time.Second))
	w.events.PushAt(t, ev)
}

//----------

func (w *Window) PollEvents() []*event.Record {
	glfw.PollEvents() // runs the callbacks
	return w.events.Drain()
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}
func (w *Window) SetShouldClose(v bool) {
	w.win.SetShouldClose(v)
}

func (w *Window) SwapBuffers() error {
	w.win.SwapBuffers()
	return nil
}

func (w *Window) Size() image.Point {
	x, y := w.win.GetFramebufferSize()
	return image.Pt(x, y)
}

// Function loader for the current context.
func (w *Window) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (w *Window) Close() error {
	w.closeOnce.Do(func() {
		w.win.Destroy()
		glfw.Terminate()
		logutil.Logger().Info("glfw window destroyed")
	})
	return nil
}

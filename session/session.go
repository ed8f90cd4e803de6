// Package session drives a window from creation to close: each iteration
// drains the pending events, filters them, and renders one frame.
package session

import (
	"github.com/jmigpin/glfwdemo/driver"
	"github.com/jmigpin/glfwdemo/render"
	"github.com/jmigpin/glfwdemo/util/logutil"
	"github.com/jmigpin/glfwdemo/util/uiutil/event"
	"github.com/pkg/errors"
)

var newWindow = driver.NewWindow

// Creates the renderer once the window context is current.
type RendererFactory func(driver.Window) (render.Renderer, error)

type Session struct {
	win    driver.Window
	rend   render.Renderer
	filter Filter
	rf     RendererFactory

	closed   bool // monotonic
	frames   int
	shutdown bool
	onEvent  func(*event.Record, Action)
}

type Option func(*Session)

func WithFilter(f Filter) Option {
	return func(s *Session) { s.filter = f }
}

// Used by Initialize. Without a factory the frames are only presented.
func WithRendererFactory(rf RendererFactory) Option {
	return func(s *Session) { s.rf = rf }
}

// Called for every filtered event, after the filter.
func WithEventHook(fn func(*event.Record, Action)) Option {
	return func(s *Session) { s.onEvent = fn }
}

// Session over an existing window and renderer. The session owns both and
// releases them on Shutdown. A nil renderer presents empty frames.
func New(win driver.Window, rend render.Renderer, opts ...Option) *Session {
	s := &Session{win: win, rend: rend, filter: EscapeFilter}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Creates the window (context current on the calling thread) and the
// renderer. Failures return an *InitializationError with nothing left
// acquired.
func Initialize(backend string, opt *driver.Options, opts ...Option) (*Session, error) {
	win, err := newWindow(backend, opt)
	if err != nil {
		return nil, &InitializationError{Op: "window", Err: err}
	}
	s := New(win, nil, opts...)
	if s.rf != nil {
		rend, err := s.rf(win)
		if err != nil {
			if err2 := win.Close(); err2 != nil {
				logutil.Logger().Warn("close window", "err", err2)
			}
			return nil, &InitializationError{Op: "renderer", Err: err}
		}
		s.rend = rend
	}
	return s, nil
}

//----------

// Runs until the close flag is set, then shuts down. Returns a
// *RenderError if a frame failed; shutdown is still attempted.
func (s *Session) Run() (err error) {
	defer func() {
		if err2 := s.Shutdown(); err2 != nil && err == nil {
			err = err2
		}
	}()
	for s.ShouldContinue() {
		for _, rec := range s.PollAndDrain() {
			if s.ApplyFilter(rec) == RequestClose {
				s.RequestClose()
			}
		}
		if err := s.RenderFrame(); err != nil {
			return err
		}
	}
	logutil.Logger().Info("session closed", "frames", s.frames)
	return nil
}

// Non-blocking. Every event since the previous call, in arrival order.
func (s *Session) PollAndDrain() []*event.Record {
	recs := s.win.PollEvents()
	if len(recs) > 0 {
		logutil.Logger().Debug("events", "n", len(recs))
	}
	return recs
}

func (s *Session) ApplyFilter(rec *event.Record) Action {
	a := s.filter(rec.Ev)
	if s.onEvent != nil {
		s.onEvent(rec, a)
	}
	return a
}

// Renders and presents one frame.
func (s *Session) RenderFrame() error {
	if s.rend != nil {
		if err := s.rend.Render(); err != nil {
			return &RenderError{Frame: s.frames, Err: err}
		}
	}
	if err := s.win.SwapBuffers(); err != nil {
		return &RenderError{Frame: s.frames, Err: errors.Wrap(err, "swap buffers")}
	}
	s.frames++
	return nil
}

// Sets the close flag. Once set it stays set.
func (s *Session) RequestClose() {
	if !s.closed {
		logutil.Logger().Debug("close requested", "frame", s.frames)
	}
	s.closed = true
	s.win.SetShouldClose(true)
}

func (s *Session) ShouldContinue() bool {
	// close button of the window manager
	if !s.closed && s.win.ShouldClose() {
		s.closed = true
	}
	return !s.closed
}

// Frames presented so far.
func (s *Session) Frames() int {
	return s.frames
}

// Releases the renderer resources and then the window. Only the first call
// has effect. Returns the first release error.
func (s *Session) Shutdown() error {
	if s.shutdown {
		return nil
	}
	s.shutdown = true

	var first error
	if s.rend != nil {
		if err := s.rend.Close(); err != nil {
			logutil.Logger().Warn("close renderer", "err", err)
			first = errors.Wrap(err, "close renderer")
		}
	}
	if err := s.win.Close(); err != nil {
		logutil.Logger().Warn("close window", "err", err)
		if first == nil {
			first = errors.Wrap(err, "close window")
		}
	}
	return first
}

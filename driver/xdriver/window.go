// Package xdriver implements a window over the X11 protocol without a GL
// context. Frames are drawn in software into Image() and sent to the server
// on SwapBuffers.
package xdriver

import (
	"image"
	"math"
	"os"
	"sync"
	"sync/atomic"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shm"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/glfwdemo/driver/xdriver/wimage"
	"github.com/jmigpin/glfwdemo/driver/xdriver/wmprotocols"
	"github.com/jmigpin/glfwdemo/driver/xdriver/xcursors"
	"github.com/jmigpin/glfwdemo/driver/xdriver/xinput"
	"github.com/jmigpin/glfwdemo/driver/xdriver/xutil"
	"github.com/jmigpin/glfwdemo/util/logutil"
	"github.com/jmigpin/glfwdemo/util/uiutil/event"
	"github.com/pkg/errors"
)

type Options struct {
	Width, Height int
	Title         string
}

// Image put requests carry int16 coordinates.
const maxSize = math.MaxInt16

func (opt *Options) validate() error {
	if opt.Width <= 0 || opt.Height <= 0 || opt.Width > maxSize || opt.Height > maxSize {
		return errors.Errorf("bad window size: %vx%v", opt.Width, opt.Height)
	}
	return nil
}

type Window struct {
	Conn   *xgb.Conn
	Window xproto.Window
	Screen *xproto.ScreenInfo
	GCtx   xproto.Gcontext

	Cursors *xcursors.Cursors
	XInput  *xinput.XInput
	Wmp     *wmprotocols.DeleteWindow
	WImg    wimage.WImage

	events      *event.Queue
	shouldClose atomic.Bool

	closeOnce sync.Once
	done      chan struct{}
}

func NewWindow(opt *Options) (*Window, error) {
	if err := opt.validate(); err != nil {
		return nil, err
	}
	display := os.Getenv("DISPLAY")
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}

	win := &Window{
		Conn:   conn,
		events: event.NewQueue(),
		done:   make(chan struct{}),
	}
	if err := win.initialize(opt); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "win init")
	}

	go win.eventLoop()

	logutil.Logger().Info("x11 window created",
		"size", image.Pt(opt.Width, opt.Height),
		"title", opt.Title,
		"display", display)
	return win, nil
}

func (win *Window) initialize(opt *Options) error {
	// initialize extensions early (xgb concurrent map access)
	wimage.Init(win.Conn)

	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskExposure |
		xproto.EventMaskKeyPress |
		xproto.EventMaskKeyRelease |
		0
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwBackPixel | xproto.CwEventMask)
	values := []uint32{win.Screen.BlackPixel, evMask}

	c1 := xproto.CreateWindowChecked(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, uint16(opt.Width), uint16(opt.Height),
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values)
	if err := c1.Check(); err != nil {
		return errors.Wrap(err, "create window")
	}

	if err := xutil.LoadAtoms(win.Conn, &Atoms, false); err != nil {
		return err
	}
	win.SetWindowName(opt.Title)

	// graphical context
	gCtx, err := xproto.NewGcontextId(win.Conn)
	if err != nil {
		return err
	}
	win.GCtx = gCtx
	c2 := xproto.CreateGCChecked(win.Conn, win.GCtx, xproto.Drawable(win.Window), 0, nil)
	if err := c2.Check(); err != nil {
		return err
	}

	xi, err := xinput.NewXInput(win.Conn)
	if err != nil {
		return err
	}
	win.XInput = xi

	wmp, err := wmprotocols.Register(win.Conn, win.Window)
	if err != nil {
		return err
	}
	win.Wmp = wmp

	win.Cursors = xcursors.NewCursors(win.Conn, win.Window)
	if err := win.Cursors.SetCursor(xcursors.Default); err != nil {
		logutil.Logger().Warn("set cursor", "err", err)
	}

	wopt := &wimage.Options{Conn: win.Conn, Window: win.Window, ScreenInfo: win.Screen, GCtx: win.GCtx}
	img, err := wimage.NewWImage(wopt)
	if err != nil {
		return err
	}
	win.WImg = img
	if err := win.WImg.Resize(image.Rect(0, 0, opt.Width, opt.Height)); err != nil {
		return err
	}

	return xproto.MapWindowChecked(win.Conn, window).Check()
}

//----------

func (win *Window) Close() error {
	var err error
	win.closeOnce.Do(func() {
		close(win.done)
		err = win.WImg.Close()
		win.Conn.Close()
		logutil.Logger().Info("x11 window destroyed")
	})
	return err
}

//----------

func (win *Window) eventLoop() {
	for {
		ev, xerr := win.Conn.WaitForEvent()
		select {
		case <-win.done:
			return
		default:
		}
		if ev == nil && xerr == nil {
			// connection closed
			win.shouldClose.Store(true)
			win.events.Push(&event.WindowClose{})
			return
		}
		if xerr != nil {
			logutil.Logger().Warn("x11 error", "err", xerr)
		}
		if ev != nil {
			win.handleEvent(ev)
		}
	}
}

func (win *Window) handleEvent(ev xgb.Event) {
	switch t := ev.(type) {
	case xproto.ConfigureNotifyEvent: // window structure (position,size,...)
		r := image.Rect(0, 0, int(t.Width), int(t.Height))
		win.events.Push(&event.WindowResize{Rect: r})
	case xproto.ExposeEvent: // region needs paint
		// every iteration draws a full frame
	case xproto.MapNotifyEvent, xproto.ReparentNotifyEvent:

	case shm.CompletionEvent:
		win.WImg.PutImageCompleted()

	case xproto.MappingNotifyEvent: // keyboard mapping
		if err := win.XInput.ReadMapTable(); err != nil {
			logutil.Logger().Warn("read keyboard mapping", "err", err)
		}

	case xproto.KeyPressEvent:
		win.events.Push(win.XInput.KeyPress(&t))
	case xproto.KeyReleaseEvent:
		// The paired press is only seen if xgb already read it. Otherwise an
		// autorepeat arrives as KeyUp followed by KeyDown.
		next, err := win.Conn.PollForEvent()
		if err != nil {
			logutil.Logger().Warn("x11 error", "err", err)
		}
		if press, ok := xinput.IsAutoRepeat(&t, next); ok {
			win.events.Push(win.XInput.KeyRepeat(press))
			return
		}
		win.events.Push(win.XInput.KeyRelease(&t))
		if next != nil {
			win.handleEvent(next)
		}

	case xproto.ClientMessageEvent:
		if win.Wmp.Requested(&t) {
			win.shouldClose.Store(true)
			win.events.Push(&event.WindowClose{})
		}

	default:
		logutil.Logger().Debug("unhandled x11 event", "ev", ev.String())
	}
}

//----------

func (win *Window) PollEvents() []*event.Record {
	recs := win.events.Drain()
	for _, r := range recs {
		if t, ok := r.Ev.(*event.WindowResize); ok {
			if err := win.resizeImage(t.Rect); err != nil {
				logutil.Logger().Warn("resize image", "err", err)
			}
		}
	}
	return recs
}

func (win *Window) resizeImage(r image.Rectangle) error {
	if r.Empty() || r.Eq(win.WImg.Image().Bounds()) {
		return nil
	}
	return win.WImg.Resize(r)
}

func (win *Window) ShouldClose() bool {
	return win.shouldClose.Load()
}
func (win *Window) SetShouldClose(v bool) {
	win.shouldClose.Store(v)
}

func (win *Window) SwapBuffers() error {
	return win.WImg.PutImage(win.WImg.Image().Bounds())
}

func (win *Window) Size() image.Point {
	return win.WImg.Image().Bounds().Size()
}

// Image to draw the next frame into. Valid until the next PollEvents.
func (win *Window) Image() *image.RGBA {
	return win.WImg.Image()
}

func (win *Window) SetWindowName(str string) {
	b := []byte(str)
	_ = xproto.ChangeProperty(
		win.Conn,
		xproto.PropModeReplace,
		win.Window,       // requestor window
		Atoms.NetWMName,  // property
		Atoms.Utf8String, // target
		8,                // format
		uint32(len(b)),
		b)
	_ = xproto.ChangeProperty(
		win.Conn,
		xproto.PropModeReplace,
		win.Window,
		xproto.AtomWmName,
		xproto.AtomString,
		8,
		uint32(len(b)),
		b)
}

//----------

var Atoms struct {
	NetWMName  xproto.Atom `loadAtoms:"_NET_WM_NAME"`
	Utf8String xproto.Atom `loadAtoms:"UTF8_STRING"`
}

package session

import (
	"errors"
	"image"
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmigpin/glfwdemo/driver"
	"github.com/jmigpin/glfwdemo/render"
	"github.com/jmigpin/glfwdemo/util/uiutil/event"
)

type fakeWindow struct {
	batches     [][]event.Event
	polls       int
	shouldClose bool
	swapErr     error
	closeErr    error

	trace []string
}

func (w *fakeWindow) PollEvents() []*event.Record {
	w.trace = append(w.trace, "poll")
	if w.polls >= len(w.batches) {
		w.polls++
		return nil
	}
	b := w.batches[w.polls]
	w.polls++
	recs := []*event.Record{}
	for _, ev := range b {
		recs = append(recs, &event.Record{Ev: ev})
	}
	return recs
}
func (w *fakeWindow) ShouldClose() bool     { return w.shouldClose }
func (w *fakeWindow) SetShouldClose(v bool) { w.shouldClose = v }
func (w *fakeWindow) Size() image.Point     { return image.Pt(800, 600) }
func (w *fakeWindow) SwapBuffers() error {
	w.trace = append(w.trace, "swap")
	return w.swapErr
}
func (w *fakeWindow) Close() error {
	w.trace = append(w.trace, "closewindow")
	return w.closeErr
}

//----------

type fakeRenderer struct {
	win      *fakeWindow
	failAt   int // frame index, -1 never fails
	rendered int
	closeErr error
}

func (r *fakeRenderer) Render() error {
	if r.rendered == r.failAt {
		return errors.New("render failed")
	}
	r.rendered++
	r.win.trace = append(r.win.trace, "render")
	return nil
}
func (r *fakeRenderer) Close() error {
	r.win.trace = append(r.win.trace, "closerenderer")
	return r.closeErr
}

func newFakes(batches ...[]event.Event) (*fakeWindow, *fakeRenderer) {
	w := &fakeWindow{batches: batches}
	return w, &fakeRenderer{win: w, failAt: -1}
}

func countTrace(trace []string, s string) int {
	n := 0
	for _, u := range trace {
		if u == s {
			n++
		}
	}
	return n
}

//----------

func TestEscapeFilter(t *testing.T) {
	type pair struct {
		ev event.Event
		a  Action
	}
	pairs := []pair{
		{&event.KeyDown{KeySym: event.KSymEscape}, RequestClose},
		{&event.KeyDown{KeySym: event.KSymEscape, Mods: event.ModShift | event.ModCtrl}, RequestClose},
		{&event.KeyDown{KeySym: event.KSymEscape, Mods: event.ModNumLock}, RequestClose},
		{&event.KeyUp{KeySym: event.KSymEscape}, Ignore},
		{&event.KeyRepeat{KeySym: event.KSymEscape}, Ignore},
		{&event.KeyDown{KeySym: event.KSymA}, Ignore},
		{&event.KeyDown{KeySym: event.KSymQ, Mods: event.ModCtrl}, Ignore},
		{&event.WindowClose{}, Ignore},
		{&event.WindowResize{Rect: image.Rect(0, 0, 10, 10)}, Ignore},
	}
	for i, p := range pairs {
		if a := EscapeFilter(p.ev); a != p.a {
			t.Errorf("%v: %v: expected %v, got %v", i, event.EventString(p.ev), p.a, a)
		}
	}
}

func TestRunEscapePress(t *testing.T) {
	w, r := newFakes([]event.Event{&event.KeyDown{KeySym: event.KSymEscape}})
	s := New(w, r)
	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	// close observed before the next poll, exactly one frame rendered
	exp := []string{"poll", "render", "swap", "closerenderer", "closewindow"}
	if !reflect.DeepEqual(w.trace, exp) {
		t.Fatal(spew.Sdump(w.trace))
	}
	if s.Frames() != 1 || s.ShouldContinue() {
		t.Fatal(s.Frames())
	}
}

func TestRunOtherKeyKeepsRunning(t *testing.T) {
	w, r := newFakes(
		[]event.Event{&event.KeyDown{KeySym: event.KSymA}},
		[]event.Event{&event.KeyUp{KeySym: event.KSymA}},
		[]event.Event{&event.KeyDown{KeySym: event.KSymEscape}},
	)
	s := New(w, r)
	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	if w.polls != 3 || s.Frames() != 3 || r.rendered != 3 {
		t.Fatal(spew.Sdump(w.trace))
	}
}

func TestEscapeReleaseAlone(t *testing.T) {
	w, r := newFakes([]event.Event{&event.KeyUp{KeySym: event.KSymEscape}})
	s := New(w, r)
	for _, rec := range s.PollAndDrain() {
		if s.ApplyFilter(rec) == RequestClose {
			s.RequestClose()
		}
	}
	if !s.ShouldContinue() {
		t.Fatal("release closed the session")
	}
}

func TestEmptyBatchStillRenders(t *testing.T) {
	w, r := newFakes()
	s := New(w, r)
	recs := s.PollAndDrain()
	if len(recs) != 0 {
		t.Fatal(spew.Sdump(recs))
	}
	if err := s.RenderFrame(); err != nil {
		t.Fatal(err)
	}
	if s.Frames() != 1 || r.rendered != 1 {
		t.Fatal(spew.Sdump(w.trace))
	}
}

func TestFilterEveryEventOnce(t *testing.T) {
	batch := []event.Event{
		&event.KeyDown{KeySym: event.KSymEscape},
		&event.KeyDown{KeySym: event.KSymA},
		&event.KeyDown{KeySym: event.KSymEscape},
		&event.KeyUp{KeySym: event.KSymEscape},
	}
	w, r := newFakes(batch)
	seen := []event.Event{}
	hook := func(rec *event.Record, a Action) {
		seen = append(seen, rec.Ev)
	}
	s := New(w, r, WithEventHook(hook))
	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	// no short-circuit after the first close request
	if len(seen) != len(batch) {
		t.Fatal(spew.Sdump(seen))
	}
	for i := range batch {
		if seen[i] != batch[i] {
			t.Fatalf("order: %v", spew.Sdump(seen))
		}
	}
	if s.Frames() != 1 {
		t.Fatal(s.Frames())
	}
}

func TestCloseFlagMonotonic(t *testing.T) {
	w, r := newFakes()
	s := New(w, r)
	s.RequestClose()
	s.RequestClose()
	if s.ShouldContinue() {
		t.Fatal("expected closed")
	}
	// window flag cleared externally: session stays closed
	w.SetShouldClose(false)
	if s.ShouldContinue() {
		t.Fatal("close flag not monotonic")
	}
}

func TestWindowManagerClose(t *testing.T) {
	w, r := newFakes(
		[]event.Event{&event.KeyDown{KeySym: event.KSymA}},
		[]event.Event{&event.WindowClose{}},
	)
	s := New(w, r)
	if !s.ShouldContinue() {
		t.Fatal("closed early")
	}
	w.shouldClose = true
	if s.ShouldContinue() {
		t.Fatal("window close flag ignored")
	}
	w.shouldClose = false
	if s.ShouldContinue() {
		t.Fatal("close flag not latched")
	}
}

func TestCustomFilter(t *testing.T) {
	w, r := newFakes(
		[]event.Event{&event.KeyDown{KeySym: event.KSymEscape}},
		[]event.Event{&event.KeyDown{KeySym: event.KSymQ}},
	)
	qFilter := func(ev event.Event) Action {
		if kd, ok := ev.(*event.KeyDown); ok && kd.KeySym == event.KSymQ {
			return RequestClose
		}
		return Ignore
	}
	s := New(w, r, WithFilter(qFilter))
	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	if s.Frames() != 2 {
		t.Fatal(s.Frames())
	}
}

func TestRenderErrorShutdownOnce(t *testing.T) {
	w, r := newFakes(
		[]event.Event{&event.KeyDown{KeySym: event.KSymA}},
		[]event.Event{&event.KeyDown{KeySym: event.KSymA}},
	)
	r.failAt = 1
	s := New(w, r)
	err := s.Run()
	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected render error, got %v", err)
	}
	if rerr.Frame != 1 {
		t.Fatal(rerr.Frame)
	}
	if err := s.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if countTrace(w.trace, "closerenderer") != 1 || countTrace(w.trace, "closewindow") != 1 {
		t.Fatal(spew.Sdump(w.trace))
	}
}

func TestSwapErrorIsRenderError(t *testing.T) {
	w, r := newFakes()
	w.swapErr = errors.New("lost context")
	s := New(w, r)
	err := s.RenderFrame()
	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatal(err)
	}
	if s.Frames() != 0 {
		t.Fatal(s.Frames())
	}
}

func TestShutdownOrderAndFirstError(t *testing.T) {
	w, r := newFakes()
	r.closeErr = errors.New("renderer")
	w.closeErr = errors.New("window")
	s := New(w, r)
	err := s.Shutdown()
	if err == nil || !errors.Is(err, r.closeErr) {
		t.Fatal(err)
	}
	exp := []string{"closerenderer", "closewindow"}
	if !reflect.DeepEqual(w.trace, exp) {
		t.Fatal(spew.Sdump(w.trace))
	}
	if err := s.Shutdown(); err != nil {
		t.Fatal(err)
	}
	if len(w.trace) != 2 {
		t.Fatal(spew.Sdump(w.trace))
	}
}

func TestNilRenderer(t *testing.T) {
	w, _ := newFakes([]event.Event{&event.KeyDown{KeySym: event.KSymEscape}})
	s := New(w, nil)
	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	exp := []string{"poll", "swap", "closewindow"}
	if !reflect.DeepEqual(w.trace, exp) {
		t.Fatal(spew.Sdump(w.trace))
	}
}

func TestInitializeBadOptions(t *testing.T) {
	opts := []*driver.Options{
		{Width: 0, Height: 600, Title: "T", Context: driver.DefaultContextHints()},
		{Width: 800, Height: -1, Title: "T", Context: driver.DefaultContextHints()},
	}
	for i, opt := range opts {
		_, err := Initialize(driver.BackendGLFW, opt)
		var ierr *InitializationError
		if !errors.As(err, &ierr) {
			t.Errorf("%v: expected initialization error, got %v", i, err)
		}
	}
}

func TestInitializeUnknownBackend(t *testing.T) {
	opt := &driver.Options{Width: 800, Height: 600, Title: "T", Context: driver.DefaultContextHints()}
	_, err := Initialize("vulkan", opt)
	var ierr *InitializationError
	if !errors.As(err, &ierr) || ierr.Op != "window" {
		t.Fatal(err)
	}
}

func stubNewWindow(t *testing.T, w driver.Window) {
	t.Helper()
	orig := newWindow
	newWindow = func(string, *driver.Options) (driver.Window, error) { return w, nil }
	t.Cleanup(func() { newWindow = orig })
}

func TestInitializeRendererFails(t *testing.T) {
	w, _ := newFakes()
	stubNewWindow(t, w)
	rf := func(driver.Window) (render.Renderer, error) {
		return nil, errors.New("no gl")
	}
	opt := &driver.Options{Width: 800, Height: 600, Title: "T"}
	s, err := Initialize(driver.BackendGLFW, opt, WithRendererFactory(rf))
	if s != nil {
		t.Fatal("expected no session")
	}
	var ierr *InitializationError
	if !errors.As(err, &ierr) || ierr.Op != "renderer" {
		t.Fatal(err)
	}
	exp := []string{"closewindow"}
	if !reflect.DeepEqual(w.trace, exp) {
		t.Fatal(spew.Sdump(w.trace))
	}
}

func TestInitializeEscapeScenario(t *testing.T) {
	w, r := newFakes([]event.Event{&event.KeyDown{KeySym: event.KSymEscape}})
	stubNewWindow(t, w)
	rf := func(win driver.Window) (render.Renderer, error) {
		if win != w {
			t.Fatal("factory got another window")
		}
		return r, nil
	}
	opt := &driver.Options{Width: 800, Height: 600, Title: "T"}
	s, err := Initialize(driver.BackendGLFW, opt, WithRendererFactory(rf))
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Run(); err != nil {
		t.Fatal(err)
	}
	if r.rendered != 1 || countTrace(w.trace, "closewindow") != 1 {
		t.Fatal(spew.Sdump(w.trace))
	}
}

package xdriver

import (
	"image"
	"os"
	"testing"
)

func newTestWindow(t *testing.T) *Window {
	t.Helper()
	if os.Getenv("DISPLAY") == "" {
		t.Skip("no display")
	}
	win, err := NewWindow(&Options{Width: 64, Height: 48, Title: "xdriver test"})
	if err != nil {
		t.Skipf("no x server: %v", err)
	}
	return win
}

func TestWindowLifecycle(t *testing.T) {
	win := newTestWindow(t)
	defer win.Close()

	if win.ShouldClose() {
		t.Fatal("closed at start")
	}
	if sz := win.Size(); sz != image.Pt(64, 48) {
		t.Fatal(sz)
	}
	_ = win.PollEvents()
	if err := win.SwapBuffers(); err != nil {
		t.Fatal(err)
	}

	win.SetShouldClose(true)
	if !win.ShouldClose() {
		t.Fatal("expecting close flag")
	}
	if err := win.Close(); err != nil {
		t.Fatal(err)
	}
	if err := win.Close(); err != nil { // second close is a no-op
		t.Fatal(err)
	}
}

func TestNewWindowBadSize(t *testing.T) {
	opts := []*Options{
		{Width: 0, Height: 48},
		{Width: 64, Height: -1},
		{Width: 70000, Height: 48},
		{Width: 64, Height: maxSize + 1},
	}
	for _, opt := range opts {
		// rejected before connecting, no display needed
		if _, err := NewWindow(opt); err == nil {
			t.Errorf("%vx%v: expected error", opt.Width, opt.Height)
		}
	}
	if err := (&Options{Width: maxSize, Height: 1}).validate(); err != nil {
		t.Fatal(err)
	}
}

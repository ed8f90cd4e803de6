// Package render has what is shared by the renderers: the renderer
// interface, validated shader and vertex buffers, and ordered release of
// graphics resources.
package render

import (
	"image/color"

	"github.com/jmigpin/glfwdemo/util/logutil"
)

// Renderer draws one frame per call. Called only from the thread that owns
// the window context.
type Renderer interface {
	Render() error
	// Releases every resource created by the renderer, in reverse order of
	// creation.
	Close() error
}

// Grey used to clear the screen, as normalized rgba.
var clearColor = [4]float32{0.3, 0.3, 0.3, 1}

func ClearColorF() (r, g, b, a float32) {
	c := clearColor
	return c[0], c[1], c[2], c[3]
}

// Clear color for 8-bit images, rounded to nearest.
func ClearColor() color.NRGBA {
	u8 := func(v float32) uint8 { return uint8(v*255 + 0.5) }
	c := clearColor
	return color.NRGBA{R: u8(c[0]), G: u8(c[1]), B: u8(c[2]), A: u8(c[3])}
}

//----------

// Releaser keeps release functions and runs them in reverse order of
// acquisition.
type Releaser struct {
	items []releaseItem
}

type releaseItem struct {
	name string
	fn   func() error
}

func (r *Releaser) Push(name string, fn func() error) {
	r.items = append(r.items, releaseItem{name, fn})
}

// Runs all pending release functions, last pushed first. Errors are logged
// and the first one is returned. Calling it again does nothing.
func (r *Releaser) ReleaseAll() error {
	var first error
	for i := len(r.items) - 1; i >= 0; i-- {
		it := r.items[i]
		if err := it.fn(); err != nil {
			logutil.Logger().Warn("release", "name", it.name, "err", err)
			if first == nil {
				first = err
			}
		} else {
			logutil.Logger().Debug("released", "name", it.name)
		}
	}
	r.items = nil
	return first
}

func (r *Releaser) Len() int {
	return len(r.items)
}

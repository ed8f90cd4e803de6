package softrender

import (
	"image"
	"image/color"
	"testing"

	"github.com/jmigpin/glfwdemo/render"
)

type target struct {
	img *image.RGBA
}

func (t *target) Image() *image.RGBA { return t.img }

func newTarget(w, h int) *target {
	return &target{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func isGrey(c color.RGBA) bool {
	g := render.ClearColor()
	return c.R == g.R && c.G == g.G && c.B == g.B && c.A == 255
}

func TestClearOnly(t *testing.T) {
	tg := newTarget(40, 30)
	r, err := New(tg, &Options{})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	for _, p := range []image.Point{{0, 0}, {20, 15}, {39, 29}} {
		if c := tg.img.RGBAAt(p.X, p.Y); !isGrey(c) {
			t.Fatalf("%v: %v", p, c)
		}
	}
	if r.Frames() != 1 {
		t.Fatal(r.Frames())
	}
}

func TestTriangle(t *testing.T) {
	tg := newTarget(100, 100)
	r, err := New(tg, &Options{Triangle: true})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}

	// vertices at (50,25) (75,75) (25,75)
	if c := tg.img.RGBAAt(50, 60); c != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("inside: %v", c)
	}
	for _, p := range []image.Point{{2, 98}, {97, 2}, {50, 10}, {50, 90}} {
		if c := tg.img.RGBAAt(p.X, p.Y); !isGrey(c) {
			t.Fatalf("outside %v: %v", p, c)
		}
	}
}

func TestTriangleFollowsResize(t *testing.T) {
	tg := newTarget(20, 20)
	r, err := New(tg, &Options{Triangle: true})
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	tg.img = image.NewRGBA(image.Rect(0, 0, 200, 100))
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	if c := tg.img.RGBAAt(100, 60); c != (color.RGBA{255, 255, 255, 255}) {
		t.Fatalf("inside: %v", c)
	}
}

func TestEmptyTarget(t *testing.T) {
	tg := &target{img: &image.RGBA{}}
	r, err := New(tg, &Options{Triangle: true})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	if r.Frames() != 0 {
		t.Fatal(r.Frames())
	}
}

func TestLabel(t *testing.T) {
	tg := newTarget(120, 40)
	r, err := New(tg, &Options{Label: "Hurro", FontSize: 14})
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Render(); err != nil {
		t.Fatal(err)
	}
	drawn := 0
	for y := 0; y < 24; y++ {
		for x := 0; x < 120; x++ {
			if !isGrey(tg.img.RGBAAt(x, y)) {
				drawn++
			}
		}
	}
	if drawn == 0 {
		t.Fatal("label not drawn")
	}
	// bottom stays clear
	if c := tg.img.RGBAAt(60, 38); !isGrey(c) {
		t.Fatal(c)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
}

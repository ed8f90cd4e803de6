// Package softrender draws the demo frames on the cpu, for windows without
// a gl context.
package softrender

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"github.com/jmigpin/glfwdemo/render"
	"github.com/jmigpin/glfwdemo/util/logutil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Target provides the image of the next frame.
type Target interface {
	Image() *image.RGBA
}

type Options struct {
	Triangle bool

	// Text drawn at the top left, followed by the frame number. No text if
	// empty.
	Label    string
	FontSize float64
}

type Renderer struct {
	target Target
	opt    Options
	vd     *render.VertexData
	face   font.Face
	z      *vector.Rasterizer
	frame  int

	rel render.Releaser
}

func New(target Target, opt *Options) (*Renderer, error) {
	r := &Renderer{target: target, opt: *opt, z: &vector.Rasterizer{}}
	if r.opt.Triangle {
		vd, err := render.NewVertexData(2, render.TriangleVertices)
		if err != nil {
			return nil, err
		}
		r.vd = vd
	}
	if r.opt.Label != "" {
		face, err := newFace(r.opt.FontSize)
		if err != nil {
			return nil, err
		}
		r.face = face
		r.rel.Push("font face", face.Close)
	}
	logutil.Logger().Info("software renderer ready", "triangle", r.opt.Triangle)
	return r, nil
}

func newFace(size float64) (font.Face, error) {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = 14
	}
	opt := &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}
	return truetype.NewFace(f, opt), nil
}

//----------

func (r *Renderer) Render() error {
	img := r.target.Image()
	b := img.Bounds()
	if b.Empty() {
		return nil
	}

	draw.Draw(img, b, image.NewUniform(render.ClearColor()), image.Point{}, draw.Src)
	if r.vd != nil {
		r.drawPolygon(img, r.vd, color.White)
	}
	if r.face != nil {
		r.drawLabel(img)
	}
	r.frame++
	return nil
}

// Vertices in normalized device coordinates, y up.
func (r *Renderer) drawPolygon(img *image.RGBA, vd *render.VertexData, c color.Color) {
	b := img.Bounds()
	w, h := float32(b.Dx()), float32(b.Dy())
	toPixel := func(v []float32) (float32, float32) {
		return (v[0] + 1) / 2 * w, (1 - v[1]) / 2 * h
	}

	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
	x, y := toPixel(vd.Vertex(0))
	r.z.MoveTo(x, y)
	for i := 1; i < vd.Count(); i++ {
		x, y := toPixel(vd.Vertex(i))
		r.z.LineTo(x, y)
	}
	r.z.ClosePath()
	r.z.Draw(img, b, image.NewUniform(c), image.Point{})
}

func (r *Renderer) drawLabel(img *image.RGBA) {
	m := r.face.Metrics()
	d := &font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: r.face,
		Dot:  fixed.Point26_6{X: fixed.I(img.Bounds().Min.X + 6), Y: fixed.I(img.Bounds().Min.Y+4) + m.Ascent},
	}
	d.DrawString(fmt.Sprintf("%s %d", r.opt.Label, r.frame))
}

func (r *Renderer) Frames() int {
	return r.frame
}

func (r *Renderer) Close() error {
	return r.rel.ReleaseAll()
}

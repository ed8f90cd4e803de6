package wimage

import (
	"fmt"
	"image"

	"github.com/BurntSushi/xgb/xproto"
)

// Sends the image with plain PutImage requests, in chunks.
type PutWImage struct {
	opt *Options
	img *image.RGBA
	buf []byte
}

func NewPutWImage(opt *Options) (*PutWImage, error) {
	wi := &PutWImage{opt: opt}
	if err := wi.Resize(image.Rect(0, 0, 1, 1)); err != nil {
		return nil, err
	}
	return wi, nil
}

func (wi *PutWImage) Close() error {
	wi.img = &image.RGBA{}
	wi.buf = nil
	return nil
}

func (wi *PutWImage) Resize(r image.Rectangle) error {
	wi.img = image.NewRGBA(r)
	wi.buf = make([]byte, bgraSize(r))
	return nil
}

func (wi *PutWImage) Image() *image.RGBA {
	return wi.img
}

func (wi *PutWImage) PutImage(r image.Rectangle) error {
	r = r.Intersect(wi.img.Bounds())
	if r.Empty() {
		return nil
	}
	copyToBGRA(wi.buf, wi.img, r)

	// X max data length = (2^16) * 4 = 262144, need to send it in chunks
	putImgReqSize := 28
	maxReqSize := (1 << 16) * 4
	maxSize := (maxReqSize - putImgReqSize) / bpp
	if r.Dx() > maxSize {
		return fmt.Errorf("putwimage: dx>max, %v>%v", r.Dx(), maxSize)
	}
	chunkH := maxSize / r.Dx()

	b := wi.img.Bounds()
	stride := b.Dx() * bpp
	for minY := r.Min.Y; minY < r.Max.Y; minY += chunkH {
		h := chunkH
		if h2 := r.Max.Y - minY; h2 < h {
			h = h2
		}
		data := make([]byte, 0, r.Dx()*h*bpp)
		for y := minY; y < minY+h; y++ {
			i := (y-b.Min.Y)*stride + (r.Min.X-b.Min.X)*bpp
			data = append(data, wi.buf[i:i+r.Dx()*bpp]...)
		}
		_ = xproto.PutImage( // unchecked, errors arrive in the event loop
			wi.opt.Conn,
			xproto.ImageFormatZPixmap,
			xproto.Drawable(wi.opt.Window),
			wi.opt.GCtx,
			uint16(r.Dx()), uint16(h), // width/height
			int16(r.Min.X), int16(minY), // dst X/Y
			0, // left pad, must be 0 for ZPixmap format
			wi.opt.ScreenInfo.RootDepth,
			data)
	}
	return nil
}

func (wi *PutWImage) PutImageCompleted() {
	panic("putwimage: not expecting async put image completed")
}

package wimage

import (
	"image"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/glfwdemo/util/logutil"
)

// Window image for drawing. Renderers draw into Image(); PutImage converts
// to the server pixel format and sends it to the window.
type WImage interface {
	Image() *image.RGBA
	PutImage(image.Rectangle) error
	PutImageCompleted()
	Resize(image.Rectangle) error
	Close() error
}

func NewWImage(opt *Options) (WImage, error) {
	// image using shared memory (better performance)
	wimg, err := NewShmWImage(opt)
	if err == nil {
		return wimg, nil
	}
	logutil.Logger().Warn("unable to use shm wimage", "err", err)

	// default method via copy in chunks
	return NewPutWImage(opt)
}

type Options struct {
	Conn       *xgb.Conn
	Window     xproto.Window
	ScreenInfo *xproto.ScreenInfo
	GCtx       xproto.Gcontext
}

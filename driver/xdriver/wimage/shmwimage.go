package wimage

import (
	"fmt"
	"image"
	"time"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/shm"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/pkg/errors"
)

type ShmWImage struct {
	opt   *Options
	segId shm.Seg
	img   *image.RGBA
	seg   *shmSeg

	completed chan struct{}
}

func NewShmWImage(opt *Options) (*ShmWImage, error) {
	// get error from early init
	if initErr != nil {
		return nil, initErr
	}

	wi := &ShmWImage{opt: opt, completed: make(chan struct{}, 1)}

	// server segment id
	segId, err := shm.NewSegId(wi.opt.Conn)
	if err != nil {
		return nil, err
	}
	wi.segId = segId

	if err := wi.Resize(image.Rect(0, 0, 1, 1)); err != nil {
		return nil, err
	}
	return wi, nil
}

func (wi *ShmWImage) Close() error {
	if wi.seg == nil {
		return nil
	}
	_ = shm.Detach(wi.opt.Conn, wi.segId)
	err := wi.seg.close()
	wi.seg = nil
	return err
}

func (wi *ShmWImage) Resize(r image.Rectangle) error {
	seg, err := openShmSeg(bgraSize(r))
	if err != nil {
		return err
	}

	// need to detach to attach a new segment later
	if err := wi.Close(); err != nil {
		_ = seg.close()
		return err
	}
	wi.seg = seg
	wi.img = image.NewRGBA(r)

	readOnly := false
	cookie := shm.AttachChecked(wi.opt.Conn, wi.segId, uint32(seg.id), readOnly)
	if err := cookie.Check(); err != nil {
		return errors.Wrap(err, "shmwimage: resize: attach")
	}
	return nil
}

func (wi *ShmWImage) Image() *image.RGBA {
	return wi.img
}

func (wi *ShmWImage) PutImage(r image.Rectangle) error {
	r = r.Intersect(wi.img.Bounds())
	if r.Empty() {
		return nil
	}
	copyToBGRA(wi.seg.buf, wi.img, r)

	// drop a stale completion from a previous timed out put
	select {
	case <-wi.completed:
	default:
	}

	if err := wi.putImage2(r); err != nil {
		return err
	}

	// wait for shm.CompletionEvent that should call PutImageCompleted()
	// (returns early if the server fails to send the msg)
	select {
	case <-wi.completed:
		return nil
	case <-time.After(500 * time.Millisecond):
		return fmt.Errorf("shmwimage: put image completion timeout")
	}
}

func (wi *ShmWImage) putImage2(r image.Rectangle) error {
	b := wi.img.Bounds()
	c1 := shm.PutImageChecked(
		wi.opt.Conn,
		xproto.Drawable(wi.opt.Window),
		wi.opt.GCtx,
		uint16(b.Dx()), uint16(b.Dy()), // total width/height
		uint16(r.Min.X-b.Min.X), uint16(r.Min.Y-b.Min.Y), uint16(r.Dx()), uint16(r.Dy()), // src x,y,w,h
		int16(r.Min.X), int16(r.Min.Y), // dst x,y
		wi.opt.ScreenInfo.RootDepth,
		xproto.ImageFormatZPixmap,
		1, // send shm.CompletionEvent when done
		wi.segId,
		0) // offset
	return c1.Check()
}

// Called from the event loop goroutine.
func (wi *ShmWImage) PutImageCompleted() {
	select {
	case wi.completed <- struct{}{}:
	default:
	}
}

//----------

var initErr error

// Initialize early to avoid concurrent map read/write (xgb library issue).
func Init(conn *xgb.Conn) {
	initErr = shm.Init(conn)
}

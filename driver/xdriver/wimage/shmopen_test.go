//go:build linux

package wimage

import (
	"image"
	"testing"
)

func TestShmSeg(t *testing.T) {
	size := bgraSize(image.Rect(0, 0, 16, 8))
	seg, err := openShmSeg(size)
	if err != nil {
		t.Skip(err) // no sysv ipc in this environment
	}
	if len(seg.buf) != size {
		t.Fatalf("expected %v bytes, got %v", size, len(seg.buf))
	}
	seg.buf[0] = 1
	seg.buf[size-1] = 2
	if err := seg.close(); err != nil {
		t.Fatal(err)
	}
	if seg.buf != nil {
		t.Fatal("buffer kept after close")
	}
}

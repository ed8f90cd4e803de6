package xcursors

import (
	"image/color"
	"testing"
)

func TestColorUint16s(t *testing.T) {
	r, g, b := colorUint16s(color.RGBA{R: 0xff, G: 0x80, B: 0, A: 0xff})
	if r != 0xffff || g != 0x8080 || b != 0 {
		t.Fatal(r, g, b)
	}
}

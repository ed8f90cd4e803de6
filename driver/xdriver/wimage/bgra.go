package wimage

import "image"

// Bytes per pixel of the 24/32 bit ZPixmap format.
const bpp = 4

func bgraSize(r image.Rectangle) int {
	return r.Dx() * r.Dy() * bpp
}

// Copies the rectangle r of src into dst (a buffer with the size of src
// bounds) swapping red and blue.
func copyToBGRA(dst []byte, src *image.RGBA, r image.Rectangle) {
	b := src.Bounds()
	r = r.Intersect(b)
	stride := b.Dx() * bpp
	for y := r.Min.Y; y < r.Max.Y; y++ {
		si := src.PixOffset(r.Min.X, y)
		di := (y-b.Min.Y)*stride + (r.Min.X-b.Min.X)*bpp
		n := r.Dx() * bpp
		s := src.Pix[si : si+n]
		d := dst[di : di+n]
		for i := 0; i < n; i += bpp {
			d[i+0] = s[i+2]
			d[i+1] = s[i+1]
			d[i+2] = s[i+0]
			d[i+3] = s[i+3]
		}
	}
}

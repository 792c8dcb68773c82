package render

import (
	"image"
	"image/color"
	"math"
)

// Raster is an in-memory Canvas backed by an RGBA image.
type Raster struct {
	img *image.RGBA
}

// NewRaster allocates a w x h raster.
func NewRaster(w, h int) *Raster {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

// Size returns the raster dimensions.
func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

// At returns the colour of one pixel.
func (r *Raster) At(x, y int) color.RGBA { return r.img.RGBAAt(x, y) }

// Fill paints every pixel with c.
func (r *Raster) Fill(c color.RGBA) {
	buf := r.img.Pix
	for base := 0; base+3 < len(buf); base += 4 {
		buf[base+0] = c.R
		buf[base+1] = c.G
		buf[base+2] = c.B
		buf[base+3] = c.A
	}
}

// FillRect paints the pixels whose top-left corner lies inside the rectangle,
// clipped to the raster.
func (r *Raster) FillRect(x, y, w, h float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	rect := image.Rect(
		int(math.Ceil(x)), int(math.Ceil(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(r.img.Bounds())
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			r.img.SetRGBA(px, py, c)
		}
	}
}

// Line draws a one-pixel line; width is ignored since a raster pixel is the
// thinnest stroke available.
func (r *Raster) Line(x0, y0, x1, y1, _ float64, c color.RGBA) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		r.plot(x0, y0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.plot(x0+dx*t, y0+dy*t, c)
	}
}

func (r *Raster) plot(x, y float64, c color.RGBA) {
	p := image.Pt(int(math.Floor(x)), int(math.Floor(y)))
	if p.In(r.img.Bounds()) {
		r.img.SetRGBA(p.X, p.Y, c)
	}
}

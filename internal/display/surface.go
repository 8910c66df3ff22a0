package display

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/openmatrix/ledweather/internal/render"
)

// Surface accepts a draw plan and renders it. A hardware matrix driver
// implements this same interface; rendering is assumed synchronous.
type Surface interface {
	Render(plan render.DrawPlan) error
}

// Framebuffer is an image-backed Surface. It is what the preview endpoint
// serves, and the seam where a HUB75 driver would attach.
type Framebuffer struct {
	mu     sync.Mutex
	width  int
	height int
	img    *image.RGBA
}

// NewFramebuffer creates a black framebuffer of the given dimensions.
func NewFramebuffer(width, height int) *Framebuffer {
	fb := &Framebuffer{width: width, height: height}
	fb.img = blank(width, height)
	return fb
}

// Render clears the framebuffer and replays the plan in order, so later
// instructions paint over earlier ones.
func (f *Framebuffer) Render(plan render.DrawPlan) error {
	img := blank(f.width, f.height)

	for _, in := range plan {
		switch in.Op {
		case render.OpPixel:
			setPixel(img, in.X, in.Y, in.Color)
		case render.OpText:
			drawText(img, in.X, in.Y, in.Text, in.Color)
		case render.OpIcon:
			drawSprite(img, in.X, in.Y, in.Icon)
		}
	}

	f.mu.Lock()
	f.img = img
	f.mu.Unlock()
	return nil
}

// PNG encodes the current frame.
func (f *Framebuffer) PNG() ([]byte, error) {
	f.mu.Lock()
	img := f.img
	f.mu.Unlock()

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func blank(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{0, 0, 0, 0xFF}), image.Point{}, draw.Src)
	return img
}

func setPixel(img *image.RGBA, x, y int, c color.RGBA) {
	if image.Pt(x, y).In(img.Rect) {
		img.SetRGBA(x, y, c)
	}
}

func drawText(img *image.RGBA, x, y int, s string, c color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

package viewport

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is an RGBA raster target for wireframe drawing.
type Canvas struct {
	Img *image.RGBA
}

// NewCanvas allocates a canvas cleared to the given background color.
func NewCanvas(width, height int, background color.Color) *Canvas {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	return &Canvas{Img: img}
}

// Line draws a straight segment with a DDA walk. Out-of-bounds pixels are
// clipped by the underlying image.
func (c *Canvas) Line(a, b Point2, col color.Color) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy))) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(a.X + t*dx))
		y := int(math.Round(a.Y + t*dy))
		if image.Pt(x, y).In(c.Img.Bounds()) {
			c.Img.Set(x, y, col)
		}
	}
}

// Polygon draws the closed outline through the given points.
func (c *Canvas) Polygon(pts []Point2, col color.Color) {
	if len(pts) < 2 {
		return
	}
	for i := range pts {
		c.Line(pts[i], pts[(i+1)%len(pts)], col)
	}
}

// Wireframe draws every projected face group in its color, cycling the
// palette per body.
func (c *Canvas) Wireframe(groups [][][]Point2, palette []color.Color) {
	for i, faces := range groups {
		col := palette[i%len(palette)]
		for _, f := range faces {
			c.Polygon(f, col)
		}
	}
}

// Label draws a line of text with the fixed 7x13 basic font, anchored at
// the baseline origin (x, y).
func (c *Canvas) Label(x, y int, text string, col color.Color) {
	d := font.Drawer{
		Dst:  c.Img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// DefaultPalette is the body color cycle used by the sandbox tools.
var DefaultPalette = []color.Color{
	color.RGBA{R: 0xe6, G: 0x5c, B: 0x5c, A: 0xff},
	color.RGBA{R: 0x5c, G: 0xc8, B: 0x7a, A: 0xff},
	color.RGBA{R: 0x5c, G: 0x9c, B: 0xe6, A: 0xff},
	color.RGBA{R: 0xe6, G: 0xc4, B: 0x5c, A: 0xff},
	color.RGBA{R: 0xb0, G: 0x7c, B: 0xe6, A: 0xff},
}

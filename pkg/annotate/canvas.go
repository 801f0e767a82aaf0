package annotate

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// TextLabel is a literal string drawn at a fixed position. X, Y locate the
// baseline of the first line; additional lines continue below.
type TextLabel struct {
	Text string
	X    int
	Y    int
}

// Region is a rectangular region of interest with its label placement.
type Region struct {
	X, Y, W, H int
	Label      string
	LabelX     int
	LabelY     int
}

// Rect returns the region's rectangle in image coordinates.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

var (
	fontOnce sync.Once
	fontTTF  *opentype.Font
	fontErr  error
)

func sansSerif() (*opentype.Font, error) {
	fontOnce.Do(func() {
		fontTTF, fontErr = opentype.Parse(goregular.TTF)
	})
	return fontTTF, fontErr
}

// Canvas is an explicit drawing context for one image. It replaces ambient
// editor state (current font, current line width) with per-canvas fields, so
// two canvases never contaminate each other even when used concurrently on
// different images.
type Canvas struct {
	img       *image.NRGBA
	face      font.Face
	col       color.NRGBA
	lineWidth int
}

// NewCanvas creates a drawing context over img. The canvas draws directly
// into img. Defaults: black ink, line width 1, no font (call SetFontSize
// before drawing text).
func NewCanvas(img *image.NRGBA) *Canvas {
	return &Canvas{
		img:       img,
		col:       color.NRGBA{0, 0, 0, 255},
		lineWidth: 1,
	}
}

// Image returns the underlying image.
func (c *Canvas) Image() *image.NRGBA {
	return c.img
}

// SetColor sets the ink used for subsequent text and outlines.
func (c *Canvas) SetColor(col color.NRGBA) {
	c.col = col
}

// SetLineWidth sets the outline thickness for subsequent DrawRect calls.
func (c *Canvas) SetLineWidth(w int) {
	if w < 1 {
		w = 1
	}
	c.lineWidth = w
}

// SetFontSize selects a sans-serif face of the given point size for
// subsequent DrawText calls. At 72 DPI one point equals one pixel.
func (c *Canvas) SetFontSize(points float64) error {
	ttf, err := sansSerif()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	face, err := opentype.NewFace(ttf, &opentype.FaceOptions{
		Size:    points,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("create %.0fpt face: %w", points, err)
	}
	c.face = face
	return nil
}

// DrawText draws text with the first line's baseline at (x, y). Newlines
// start additional lines one line-height further down. Glyphs falling
// outside the image are clipped, not an error.
func (c *Canvas) DrawText(x, y int, text string) error {
	if c.face == nil {
		return fmt.Errorf("no font selected")
	}
	lineHeight := c.face.Metrics().Height.Ceil()
	for i, line := range strings.Split(text, "\n") {
		d := font.Drawer{
			Dst:  c.img,
			Src:  image.NewUniform(c.col),
			Face: c.face,
			Dot:  fixed.P(x, y+i*lineHeight),
		}
		d.DrawString(line)
	}
	return nil
}

// MeasureText returns the pixel width and height text would occupy with
// the current font: the widest line's advance and the line height times
// the number of lines.
func (c *Canvas) MeasureText(text string) (w, h int, err error) {
	if c.face == nil {
		return 0, 0, fmt.Errorf("no font selected")
	}
	lines := strings.Split(text, "\n")
	for _, line := range lines {
		if adv := font.MeasureString(c.face, line).Ceil(); adv > w {
			w = adv
		}
	}
	h = c.face.Metrics().Height.Ceil() * len(lines)
	return w, h, nil
}

// DrawLabel draws a positioned text label.
func (c *Canvas) DrawLabel(l TextLabel) error {
	return c.DrawText(l.X, l.Y, l.Text)
}

// DrawRect draws the outline of r using the current line width. The stroke
// grows inward from the rectangle edge.
func (c *Canvas) DrawRect(r image.Rectangle) {
	w := c.lineWidth
	src := image.NewUniform(c.col)
	bounds := c.img.Bounds()
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w), // top
		image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y), // bottom
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y), // left
		image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Max.Y), // right
	}
	for _, e := range edges {
		draw.Draw(c.img, e.Intersect(bounds), src, image.Point{}, draw.Src)
	}
}

// DrawRegions outlines every region and draws its label, in slice order.
// Order matters only for label overlap, not correctness.
func (c *Canvas) DrawRegions(regions []Region) error {
	for _, reg := range regions {
		c.DrawRect(reg.Rect())
		if err := c.DrawText(reg.LabelX, reg.LabelY, reg.Label); err != nil {
			return fmt.Errorf("label %q: %w", reg.Label, err)
		}
	}
	return nil
}

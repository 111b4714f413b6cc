package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/riftcard/riftcard/internal/domain/layout"
)

// The display list is the pipeline's vector stage: the flex engine resolves
// the tree into absolutely positioned draw ops, and the rasterizer replays
// them. It is a pure function of the tree, so serializing it gives a
// byte-stable fingerprint of the vector output.

// Rect is an absolute box in canvas coordinates.
type Rect struct {
	X, Y, W, H float64
}

// RectOp fills a (possibly rounded, possibly stroked) rectangle.
type RectOp struct {
	Rect         Rect
	Fill         color.NRGBA
	Stroke       color.NRGBA
	StrokeWidth  float64
	CornerRadius float64
}

// ImageOp draws a resolved asset into a rectangle.
type ImageOp struct {
	Rect         Rect
	Asset        string
	Stroke       color.NRGBA
	StrokeWidth  float64
	CornerRadius float64
}

// TextOp draws a single-line text run anchored at its top-left corner.
type TextOp struct {
	Pos   Rect
	Text  string
	Font  layout.Font
	Color color.NRGBA
}

// Op is one vector drawing instruction.
type Op interface {
	op()
}

func (RectOp) op()  {}
func (ImageOp) op() {}
func (TextOp) op()  {}

// DisplayList is the ordered vector output of the layout stage, back-to-front.
type DisplayList struct {
	Width  float64
	Height float64
	Ops    []Op
}

// Serialize renders the list into a deterministic byte form. Used by tests
// and cache-key computations; the raster stage reads the ops directly.
func (d *DisplayList) Serialize() []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "canvas %gx%g\n", d.Width, d.Height)
	for _, op := range d.Ops {
		switch v := op.(type) {
		case RectOp:
			fmt.Fprintf(&buf, "rect %g %g %g %g fill=%v stroke=%v/%g r=%g\n",
				v.Rect.X, v.Rect.Y, v.Rect.W, v.Rect.H, v.Fill, v.Stroke, v.StrokeWidth, v.CornerRadius)
		case ImageOp:
			fmt.Fprintf(&buf, "image %g %g %g %g asset=%s stroke=%v/%g r=%g\n",
				v.Rect.X, v.Rect.Y, v.Rect.W, v.Rect.H, v.Asset, v.Stroke, v.StrokeWidth, v.CornerRadius)
		case TextOp:
			fmt.Fprintf(&buf, "text %g %g %q size=%g bold=%t color=%v\n",
				v.Pos.X, v.Pos.Y, v.Text, v.Font.Size, v.Font.Bold, v.Color)
		}
	}
	return buf.Bytes()
}

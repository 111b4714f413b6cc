package render

import (
	"bytes"
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// rasterize replays a display list onto a canvas. Asset bytes come from the
// resolver cache, which the pipeline validated up front; a miss here means
// the cache was bypassed and is treated as fatal.
func (p *Pipeline) rasterize(ctx context.Context, list *DisplayList) (image.Image, error) {
	w := int(list.Width * p.scale)
	h := int(list.Height * p.scale)
	dc := gg.NewContext(w, h)
	dc.Scale(p.scale, p.scale)

	for _, op := range list.Ops {
		switch v := op.(type) {
		case RectOp:
			if err := p.drawRect(dc, v); err != nil {
				return nil, err
			}
		case ImageOp:
			if err := p.drawImage(ctx, dc, v); err != nil {
				return nil, err
			}
		case TextOp:
			if err := p.drawText(dc, v); err != nil {
				return nil, err
			}
		}
	}
	return dc.Image(), nil
}

func (p *Pipeline) drawRect(dc *gg.Context, op RectOp) error {
	if op.CornerRadius > 0 {
		dc.DrawRoundedRectangle(op.Rect.X, op.Rect.Y, op.Rect.W, op.Rect.H, op.CornerRadius)
	} else {
		dc.DrawRectangle(op.Rect.X, op.Rect.Y, op.Rect.W, op.Rect.H)
	}
	if op.Fill.A > 0 {
		dc.SetColor(op.Fill)
		dc.FillPreserve()
	}
	if op.StrokeWidth > 0 && op.Stroke.A > 0 {
		dc.SetColor(op.Stroke)
		dc.SetLineWidth(op.StrokeWidth)
		dc.Stroke()
	} else {
		dc.ClearPath()
	}
	return nil
}

func (p *Pipeline) drawImage(ctx context.Context, dc *gg.Context, op ImageOp) error {
	if op.Asset == "" {
		return nil
	}
	raw, err := p.resolver.Resolve(ctx, op.Asset)
	if err != nil {
		return err
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("decode asset %s: %w", op.Asset, err)
	}

	img = imaging.Resize(img, int(op.Rect.W*p.scale), int(op.Rect.H*p.scale), imaging.Lanczos)

	dc.Push()
	if op.CornerRadius > 0 {
		dc.DrawRoundedRectangle(op.Rect.X, op.Rect.Y, op.Rect.W, op.Rect.H, op.CornerRadius)
		dc.Clip()
	}
	// The context is pre-scaled; counteract it so the resized bitmap maps
	// one texel to one canvas unit.
	dc.ScaleAbout(1/p.scale, 1/p.scale, op.Rect.X, op.Rect.Y)
	dc.DrawImage(img, int(op.Rect.X), int(op.Rect.Y))
	dc.Pop()

	if op.StrokeWidth > 0 && op.Stroke.A > 0 {
		if op.CornerRadius > 0 {
			dc.DrawRoundedRectangle(op.Rect.X, op.Rect.Y, op.Rect.W, op.Rect.H, op.CornerRadius)
		} else {
			dc.DrawRectangle(op.Rect.X, op.Rect.Y, op.Rect.W, op.Rect.H)
		}
		dc.SetColor(op.Stroke)
		dc.SetLineWidth(op.StrokeWidth)
		dc.Stroke()
	}
	return nil
}

func (p *Pipeline) drawText(dc *gg.Context, op TextOp) error {
	face, err := p.fonts.Face(op.Font)
	if err != nil {
		return fmt.Errorf("face for %q: %w", op.Text, err)
	}
	defer face.Close()

	dc.SetFontFace(face)
	dc.SetColor(op.Color)
	ascent := float64(face.Metrics().Ascent) / 64
	dc.DrawString(op.Text, op.Pos.X, op.Pos.Y+ascent)
	return nil
}

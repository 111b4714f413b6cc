// Package render turns a composed layout tree into the final report bitmap:
// asset validation, flex layout to a display list, rasterization and a
// content crop. Failures are fatal and unretried; they indicate a data or
// configuration defect, never a transient fault.
package render

import (
	"bytes"
	"context"
	"fmt"
	"image/png"

	"github.com/riftcard/riftcard/internal/adapters/assets"
	"github.com/riftcard/riftcard/internal/domain/layout"
	"github.com/riftcard/riftcard/internal/domain/model"
)

// Canvas presets per match variant; the crop trims unused space afterwards.
var presets = map[model.Variant]Preset{
	model.VariantTraditional: {Width: 1060, Height: 920},
	model.VariantArena:       {Width: 980, Height: 1080},
}

// Preset is a fixed canvas size for one report shape.
type Preset struct {
	Width  float64
	Height float64
}

// PresetFor returns the canvas preset for a match variant.
func PresetFor(v model.Variant) Preset {
	return presets[v]
}

// Default raster configuration.
const defaultScale = 2.0

// Pipeline renders layout trees. It holds no per-render state; concurrent
// Render calls share only the resolver's cache.
type Pipeline struct {
	resolver assets.Resolver
	fonts    *FontSet
	scale    float64
}

// Option applies a configuration option to the Pipeline.
type Option func(*Pipeline)

// WithScale sets the raster supersampling factor.
func WithScale(scale float64) Option {
	return func(p *Pipeline) {
		if scale > 0 {
			p.scale = scale
		}
	}
}

// NewPipeline creates a render pipeline over the given resolver.
func NewPipeline(resolver assets.Resolver, opts ...Option) (*Pipeline, error) {
	fonts, err := NewFontSet()
	if err != nil {
		return nil, err
	}
	p := &Pipeline{
		resolver: resolver,
		fonts:    fonts,
		scale:    defaultScale,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Vector validates every referenced asset and resolves the tree into its
// display list. Validation happens before any layout or drawing so a missing
// asset can never leave a partially rendered report.
func (p *Pipeline) Vector(ctx context.Context, tree layout.Node, preset Preset) (*DisplayList, error) {
	for _, id := range layout.CollectAssets(tree) {
		if err := p.resolver.Validate(ctx, id); err != nil {
			return nil, err
		}
	}
	return Layout(tree, preset.Width, preset.Height, p.fonts)
}

// Render produces the final PNG for a tree at the given preset.
func (p *Pipeline) Render(ctx context.Context, tree layout.Node, preset Preset) ([]byte, error) {
	list, err := p.Vector(ctx, tree, preset)
	if err != nil {
		return nil, err
	}

	img, err := p.rasterize(ctx, list)
	if err != nil {
		return nil, err
	}

	img = cropToContent(img)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return buf.Bytes(), nil
}

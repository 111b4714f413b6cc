package render

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/riftcard/riftcard/internal/domain/layout"
)

// renderDPI is fixed; reports never follow a display's scaling.
const renderDPI = 72

// FontSet holds the two embedded faces the reports use. System fonts are
// never consulted, so output is identical across hosts. The parsed fonts are
// immutable; faces are minted per call because font.Face drawing state is
// not safe for concurrent renders.
type FontSet struct {
	regular *opentype.Font
	bold    *opentype.Font
}

// NewFontSet parses the embedded Go faces.
func NewFontSet() (*FontSet, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &FontSet{regular: regular, bold: bold}, nil
}

// Face mints a fresh face for the given spec.
func (fs *FontSet) Face(spec layout.Font) (font.Face, error) {
	src := fs.regular
	if spec.Bold {
		src = fs.bold
	}
	return opentype.NewFace(src, &opentype.FaceOptions{
		Size:    spec.Size,
		DPI:     renderDPI,
		Hinting: font.HintingFull,
	})
}

// Measure returns the pixel box of a single-line text run.
func (fs *FontSet) Measure(content string, spec layout.Font) (width, height float64, err error) {
	face, err := fs.Face(spec)
	if err != nil {
		return 0, 0, err
	}
	defer face.Close()

	adv := font.MeasureString(face, content)
	m := face.Metrics()
	w := float64(adv) / 64
	h := float64(m.Ascent+m.Descent) / 64
	return w, h, nil
}

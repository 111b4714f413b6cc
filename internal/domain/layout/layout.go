// Package layout declares the declarative node tree handed to the render
// pipeline: nested flex boxes, text runs and image references. Trees are
// built per render call and discarded with it.
package layout

import "image/color"

// Direction is the main axis of a Box.
type Direction int

const (
	Row Direction = iota
	Column
)

// Justify positions children along the main axis.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
)

// Align positions children across the cross axis.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
)

// Node is one element of the layout tree. The concrete types are *Box,
// *Text and *Image; the render pipeline switches exhaustively on them.
type Node interface {
	node()
}

// Box is a flex container.
type Box struct {
	Dir     Direction
	Justify Justify
	Align   Align

	// Gap is inserted between adjacent children along the main axis.
	Gap float64
	// Padding applies on all four edges.
	Padding float64

	// Width/Height fix the box size; zero means size-to-content.
	Width  float64
	Height float64
	// Grow stretches the box into leftover main-axis space of its parent.
	Grow float64

	Background   color.NRGBA
	BorderColor  color.NRGBA
	BorderWidth  float64
	CornerRadius float64

	Children []Node
}

// Font selects a face and size for a Text node.
type Font struct {
	Size float64
	Bold bool
}

// Text is a single-line text run.
type Text struct {
	Content string
	Font    Font
	Color   color.NRGBA
}

// Image references an asset by id at a fixed size.
type Image struct {
	// Asset is the resolver key, e.g. "champion/Ahri" or "item/3078".
	Asset  string
	Width  float64
	Height float64

	BorderColor  color.NRGBA
	BorderWidth  float64
	CornerRadius float64
}

func (*Box) node()   {}
func (*Text) node()  {}
func (*Image) node() {}

// CollectAssets walks the tree depth-first and returns the referenced asset
// ids in traversal order, deduplicated.
func CollectAssets(root Node) []string {
	var ids []string
	seen := make(map[string]bool)
	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case *Box:
			for _, c := range v.Children {
				walk(c)
			}
		case *Image:
			if v.Asset != "" && !seen[v.Asset] {
				seen[v.Asset] = true
				ids = append(ids, v.Asset)
			}
		case *Text:
		}
	}
	if root != nil {
		walk(root)
	}
	return ids
}

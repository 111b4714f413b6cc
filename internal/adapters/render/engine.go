package render

import (
	"fmt"

	"github.com/kjk/flex"

	"github.com/riftcard/riftcard/internal/domain/layout"
)

// Layout resolves a declarative tree into a display list at the given canvas
// size using the flex engine. Text nodes are pre-measured with the font set
// so the engine sees fixed intrinsic sizes; box gaps become child margins,
// which is how the engine models spacing.
func Layout(tree layout.Node, width, height float64, fonts *FontSet) (*DisplayList, error) {
	config := flex.NewConfig()
	root, err := buildNode(tree, config, fonts)
	if err != nil {
		return nil, err
	}

	flex.CalculateLayout(root.flexNode, float32(width), float32(height), flex.DirectionLTR)

	list := &DisplayList{Width: width, Height: height}
	emit(root, 0, 0, list)
	return list, nil
}

// treeNode pairs a layout node with its computed flex node.
type treeNode struct {
	source   layout.Node
	flexNode *flex.Node
	children []*treeNode
}

func buildNode(n layout.Node, config *flex.Config, fonts *FontSet) (*treeNode, error) {
	fn := flex.NewNodeWithConfig(config)
	t := &treeNode{source: n, flexNode: fn}

	switch v := n.(type) {
	case *layout.Box:
		applyBoxStyle(fn, v)
		for i, child := range v.Children {
			ct, err := buildNode(child, config, fonts)
			if err != nil {
				return nil, err
			}
			applyGap(ct.flexNode, v, i)
			fn.InsertChild(ct.flexNode, i)
			t.children = append(t.children, ct)
		}
	case *layout.Text:
		w, h, err := fonts.Measure(v.Content, v.Font)
		if err != nil {
			return nil, fmt.Errorf("measure %q: %w", v.Content, err)
		}
		fn.StyleSetWidth(float32(w))
		fn.StyleSetHeight(float32(h))
	case *layout.Image:
		fn.StyleSetWidth(float32(v.Width))
		fn.StyleSetHeight(float32(v.Height))
	default:
		return nil, fmt.Errorf("unhandled layout node %T", n)
	}
	return t, nil
}

func applyBoxStyle(fn *flex.Node, b *layout.Box) {
	if b.Dir == layout.Row {
		fn.StyleSetFlexDirection(flex.FlexDirectionRow)
	} else {
		fn.StyleSetFlexDirection(flex.FlexDirectionColumn)
	}

	switch b.Justify {
	case layout.JustifyCenter:
		fn.StyleSetJustifyContent(flex.JustifyCenter)
	case layout.JustifyEnd:
		fn.StyleSetJustifyContent(flex.JustifyFlexEnd)
	case layout.JustifySpaceBetween:
		fn.StyleSetJustifyContent(flex.JustifySpaceBetween)
	default:
		fn.StyleSetJustifyContent(flex.JustifyFlexStart)
	}

	switch b.Align {
	case layout.AlignCenter:
		fn.StyleSetAlignItems(flex.AlignCenter)
	case layout.AlignEnd:
		fn.StyleSetAlignItems(flex.AlignFlexEnd)
	case layout.AlignStretch:
		fn.StyleSetAlignItems(flex.AlignStretch)
	default:
		fn.StyleSetAlignItems(flex.AlignFlexStart)
	}

	if b.Padding > 0 {
		fn.StyleSetPadding(flex.EdgeAll, float32(b.Padding))
	}
	if b.Width > 0 {
		fn.StyleSetWidth(float32(b.Width))
	}
	if b.Height > 0 {
		fn.StyleSetHeight(float32(b.Height))
	}
	if b.Grow > 0 {
		fn.StyleSetFlexGrow(float32(b.Grow))
	}
}

// applyGap spaces children with a leading margin on every child but the first.
func applyGap(fn *flex.Node, parent *layout.Box, index int) {
	if parent.Gap <= 0 || index == 0 {
		return
	}
	if parent.Dir == layout.Row {
		fn.StyleSetMargin(flex.EdgeLeft, float32(parent.Gap))
	} else {
		fn.StyleSetMargin(flex.EdgeTop, float32(parent.Gap))
	}
}

// emit walks the computed tree back-to-front, translating relative flex
// positions into absolute canvas ops.
func emit(t *treeNode, parentX, parentY float64, list *DisplayList) {
	x := parentX + float64(t.flexNode.LayoutGetLeft())
	y := parentY + float64(t.flexNode.LayoutGetTop())
	w := float64(t.flexNode.LayoutGetWidth())
	h := float64(t.flexNode.LayoutGetHeight())

	switch v := t.source.(type) {
	case *layout.Box:
		if v.Background.A > 0 || (v.BorderWidth > 0 && v.BorderColor.A > 0) {
			list.Ops = append(list.Ops, RectOp{
				Rect:         Rect{X: x, Y: y, W: w, H: h},
				Fill:         v.Background,
				Stroke:       v.BorderColor,
				StrokeWidth:  v.BorderWidth,
				CornerRadius: v.CornerRadius,
			})
		}
		for _, c := range t.children {
			emit(c, x, y, list)
		}
	case *layout.Image:
		list.Ops = append(list.Ops, ImageOp{
			Rect:         Rect{X: x, Y: y, W: w, H: h},
			Asset:        v.Asset,
			Stroke:       v.BorderColor,
			StrokeWidth:  v.BorderWidth,
			CornerRadius: v.CornerRadius,
		})
	case *layout.Text:
		list.Ops = append(list.Ops, TextOp{
			Pos:   Rect{X: x, Y: y, W: w, H: h},
			Text:  v.Content,
			Font:  v.Font,
			Color: v.Color,
		})
	}
}

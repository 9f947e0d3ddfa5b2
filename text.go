package wordreel

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Font is the interface for text measurement.
type Font interface {
	MeasureString(text string) (width, height float64)
	LineHeight() float64
}

// --- TTFFont ---

// TTFFont wraps Ebitengine's text/v2 for TrueType font rendering.
type TTFFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	size   float64
	lh     float64 // cached line height
}

// LoadTTFFont loads a TrueType font from raw TTF/OTF data at the given size.
func LoadTTFFont(ttfData []byte, size float64) (*TTFFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("wordreel: failed to parse TTF data: %w", err)
	}

	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}

	m := face.Metrics()
	lh := m.HAscent + m.HDescent + m.HLineGap

	return &TTFFont{
		face:   face,
		source: source,
		size:   size,
		lh:     lh,
	}, nil
}

// MeasureString returns the width and height of the rendered text.
func (f *TTFFont) MeasureString(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *TTFFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *TTFFont) Face() *text.GoTextFace {
	return f.face
}

// --- Splitting ---

// CharClass is the Class given to nodes produced by SplitChars.
const CharClass = "char"

// SplitChars turns a text node into one child text node per rune and returns
// them in reading order. The source node stops drawing itself but keeps its
// Text, so it can be split again after its content changes; previous char
// children are disposed first.
//
// Each char is pivoted on its own center, so rotation and scale happen in
// place. Its resting position is (left + w/2, h/2) in the source node's space.
func SplitChars(n *Node) []*Node {
	for _, c := range n.FindAll("." + CharClass) {
		if c != n {
			c.Dispose()
		}
	}
	n.Type = NodeTypeContainer

	runes := []rune(n.Text)
	chars := make([]*Node, 0, len(runes))
	var left float64
	for i, r := range runes {
		c := NewText(fmt.Sprintf("%s[%d]", n.Name, i), string(r), n.Font)
		c.Class = CharClass
		c.Color = n.Color
		if n.Font != nil {
			// Measure the prefix so kerning between neighbors is kept.
			left, _ = n.Font.MeasureString(string(runes[:i]))
			c.Height = n.Font.LineHeight()
		}
		c.SetPivot(c.Width/2, c.Height/2)
		c.SetPosition(left+c.Width/2, c.Height/2)
		n.AddChild(c)
		chars = append(chars, c)
	}
	return chars
}

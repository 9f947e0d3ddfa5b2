package wordreel

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Draw renders the tree to screen in child order. Transforms come from the
// last Update.
func (s *Stage) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}
	s.draw(screen, s.root)
}

func (s *Stage) draw(screen *ebiten.Image, n *Node) {
	if !n.Visible || n.worldAlpha <= 0 {
		return
	}
	switch n.Type {
	case NodeTypeSprite:
		drawSprite(screen, n)
	case NodeTypeText:
		drawText(screen, n)
	}
	for _, child := range n.children {
		s.draw(screen, child)
	}
}

func drawSprite(screen *ebiten.Image, n *Node) {
	if n.image == nil {
		if n.Source == nil {
			return
		}
		n.image = ebiten.NewImageFromImage(n.Source)
	}
	b := n.image.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(n.Width/float64(b.Dx()), n.Height/float64(b.Dy()))
	op.GeoM.Concat(geoM(n.worldTransform))
	op.ColorScale = colorScale(n.Color, n.worldAlpha)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(n.image, op)
}

func drawText(screen *ebiten.Image, n *Node) {
	f, ok := n.Font.(*TTFFont)
	if !ok || n.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM = geoM(n.worldTransform)
	op.ColorScale = colorScale(n.Color, n.worldAlpha)
	op.LineSpacing = f.LineHeight()
	text.Draw(screen, n.Text, f.Face(), op)
}

// geoM converts a [a, b, c, d, tx, ty] affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

func colorScale(c Color, alpha float64) ebiten.ColorScale {
	var cs ebiten.ColorScale
	cs.Scale(float32(c.R), float32(c.G), float32(c.B), float32(c.A))
	cs.ScaleAlpha(float32(clamp01(alpha)))
	return cs
}

package deck

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// whitePixel is a 1x1 white image scaled to draw solid rectangles. Created on
// first draw so the package can be used without a graphics context.
var whitePixel *ebiten.Image

func solidImage() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// geoM converts an affine matrix [a, b, c, d, tx, ty] to an ebiten.GeoM.
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

// scaleColor applies a non-premultiplied tint and an alpha to cs.
func scaleColor(cs *ebiten.ColorScale, c Color, alpha float64) {
	a := clamp01(c.A * alpha)
	cs.Scale(float32(c.R*a), float32(c.G*a), float32(c.B*a), float32(a))
}

// drawTree renders n and its descendants in painter order. World transforms
// must be current.
func drawTree(dst *ebiten.Image, n *Node) {
	if !n.Visible || n.worldAlpha <= 0 {
		return
	}
	switch n.Type {
	case NodeTypeRect:
		drawRect(dst, n)
	case NodeTypeText:
		drawText(dst, n)
	}
	for _, child := range n.children {
		drawTree(dst, child)
	}
}

func drawRect(dst *ebiten.Image, n *Node) {
	if n.Width <= 0 || n.Height <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(n.Width, n.Height)
	op.GeoM.Concat(geoM(n.worldTransform))
	scaleColor(&op.ColorScale, n.Color, n.worldAlpha)
	dst.DrawImage(solidImage(), op)
}

func drawText(dst *ebiten.Image, n *Node) {
	tb := n.TextBlock
	if tb == nil || tb.Content == "" {
		return
	}
	face := tb.face()
	if face == nil {
		return
	}
	m := face.Metrics()
	op := &text.DrawOptions{}
	op.LineSpacing = m.HAscent + m.HDescent + m.HLineGap
	switch tb.Align {
	case TextAlignCenter:
		op.PrimaryAlign = text.AlignCenter
		op.GeoM.Translate(n.Width/2, 0)
	case TextAlignRight:
		op.PrimaryAlign = text.AlignEnd
		op.GeoM.Translate(n.Width, 0)
	}
	op.GeoM.Concat(geoM(n.worldTransform))
	c := Color{tb.Color.R * n.Color.R, tb.Color.G * n.Color.G, tb.Color.B * n.Color.B, tb.Color.A * n.Color.A}
	scaleColor(&op.ColorScale, c, n.worldAlpha)
	text.Draw(dst, tb.Content, face, op)
}

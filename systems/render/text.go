package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face faces from freetype
	"golang.org/x/image/font"
)

// drawCentered draws s with its baseline at y, horizontally centred on cx.
func drawCentered(screen *ebiten.Image, s string, face font.Face, cx, y float64, c color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, int(cx)-bounds.Dx()/2, int(y), c)
}

// drawRight draws s so that it ends at x.
func drawRight(screen *ebiten.Image, s string, face font.Face, x, y float64, c color.Color) {
	bounds := text.BoundString(face, s)
	text.Draw(screen, s, face, int(x)-bounds.Dx(), int(y), c)
}

func drawLeft(screen *ebiten.Image, s string, face font.Face, x, y float64, c color.Color) {
	text.Draw(screen, s, face, int(x), int(y), c)
}

// drawScaled draws s centred on cx and scaled around its baseline centre.
func drawScaled(screen *ebiten.Image, s string, face font.Face, cx, y, scale float64, c color.Color) {
	bounds := text.BoundString(face, s)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(bounds.Dx())/2, 0)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, y)
	op.ColorScale.ScaleWithColor(c)
	text.DrawWithOptions(screen, s, face, op)
}

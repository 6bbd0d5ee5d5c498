package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// uiFace is the single bitmap face used for all text; larger sizes are
// integer upscales of it.
var uiFace = text.NewGoXFace(basicfont.Face7x13)

var (
	colorText   = color.RGBA{R: 236, G: 240, B: 241, A: 255}
	colorMuted  = color.RGBA{R: 149, G: 165, B: 166, A: 255}
	colorAccent = color.RGBA{R: 46, G: 204, B: 113, A: 255}
)

// drawText draws s with its top-left corner at (x, y), scaled by scale.
func drawText(dst *ebiten.Image, s string, x, y int, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, uiFace, op)
}

// drawTextCentered draws s horizontally centred on cx.
func drawTextCentered(dst *ebiten.Image, s string, cx, y int, scale float64, clr color.Color) {
	w, _ := text.Measure(s, uiFace, 0)
	drawText(dst, s, cx-int(w*scale/2), y, scale, clr)
}

// drawTextRight draws s with its right edge at rx.
func drawTextRight(dst *ebiten.Image, s string, rx, y int, scale float64, clr color.Color) {
	w, _ := text.Measure(s, uiFace, 0)
	drawText(dst, s, rx-int(w*scale), y, scale, clr)
}

package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(10, 10, 18)
	RgbWall       = tcell.NewRGBColor(90, 110, 160)
	RgbGrid       = tcell.NewRGBColor(28, 30, 48)
	RgbCrosshair  = tcell.NewRGBColor(45, 50, 80)
	RgbText       = tcell.NewRGBColor(220, 220, 220)
	RgbDimText    = tcell.NewRGBColor(120, 120, 140)

	RgbBlocker      = tcell.NewRGBColor(255, 70, 40)
	RgbBlockerDim   = tcell.NewRGBColor(110, 40, 30)
	RgbShield       = tcell.NewRGBColor(120, 200, 255)
	RgbShieldDim    = tcell.NewRGBColor(50, 80, 110)
	RgbExplosion    = tcell.NewRGBColor(255, 240, 200)
	RgbLightRed     = tcell.NewRGBColor(255, 30, 30)
	RgbLightYellow  = tcell.NewRGBColor(255, 210, 0)
	RgbLightGreen   = tcell.NewRGBColor(30, 255, 60)
	RgbLightOff     = tcell.NewRGBColor(50, 50, 60)
	RgbStatusBg     = tcell.NewRGBColor(30, 32, 50)
	RgbStatusAccent = tcell.NewRGBColor(255, 165, 0)
)

// Player slot colors
var playerColors = [...]tcell.Color{
	tcell.NewRGBColor(0x00, 0xFF, 0x00),
	tcell.NewRGBColor(0xFF, 0x00, 0xFF),
	tcell.NewRGBColor(0x00, 0xFF, 0xFF),
	tcell.NewRGBColor(0xFF, 0xFF, 0x00),
}

// StyleBackground is the blank cell style
var StyleBackground = tcell.StyleDefault.Foreground(RgbText).Background(RgbBackground)

// PlayerColor returns the color of a slot; out of range slots wrap
func PlayerColor(slot int) tcell.Color {
	if slot < 0 {
		slot = -slot
	}
	return playerColors[slot%len(playerColors)]
}

// Blend mixes src over c, alpha 0 keeps c and 1 returns src
func Blend(c, src tcell.Color, alpha float64) tcell.Color {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}
	cr, cg, cb := c.RGB()
	sr, sg, sb := src.RGB()
	inv := 1.0 - alpha
	mix := func(a, b int32) int32 {
		return int32(float64(b)*alpha + float64(a)*inv)
	}
	return tcell.NewRGBColor(mix(cr, sr), mix(cg, sg), mix(cb, sb))
}

// Fg returns the background style with a foreground color
func Fg(c tcell.Color) tcell.Style {
	return StyleBackground.Foreground(c)
}

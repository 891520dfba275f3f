package main

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/fps-model/entity"
	"github.com/lixenwraith/fps-model/vmath"
)

const (
	radarHalfWidth  = 12
	radarHalfHeight = 6
	radarScale      = 2 // columns per meter; rows are one meter
)

var (
	styleText    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleNote    = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleReticle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleRadar   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePickup  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleHazard  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleShell   = tcell.StyleDefault.Foreground(tcell.ColorOlive)
)

// screenHUD records HUD output from the player and paints it with the status on each frame
type screenHUD struct {
	screen  tcell.Screen
	reticle entity.ReticleState
	note    string
}

func newScreenHUD(screen tcell.Screen) *screenHUD {
	return &screenHUD{screen: screen}
}

func (h *screenHUD) SetReticle(s entity.ReticleState) { h.reticle = s }
func (h *screenHUD) Notify(msg string)                { h.note = msg }

func (h *screenHUD) draw(sb *sandbox) {
	s := h.screen
	s.Clear()
	w, ht := s.Size()

	for i, line := range sb.statusLines() {
		drawText(s, 1, i, styleText, line)
	}
	if h.note != "" {
		drawText(s, 1, ht-2, styleNote, h.note)
	}

	h.drawRadar(sb, w-radarHalfWidth-2, radarHalfHeight+1)

	switch h.reticle {
	case entity.ReticleCrosshair:
		s.SetContent(w/2, ht/2, '+', nil, styleReticle)
	case entity.ReticleInteraction:
		s.SetContent(w/2, ht/2, 'o', nil, styleReticle)
	}

	s.Show()
}

// drawRadar plots world objects top-down around the player, forward up
func (h *screenHUD) drawRadar(sb *sandbox, cx, cy int) {
	s := h.screen
	for x := -radarHalfWidth; x <= radarHalfWidth; x++ {
		s.SetContent(cx+x, cy-radarHalfHeight-1, '-', nil, styleRadar)
		s.SetContent(cx+x, cy+radarHalfHeight+1, '-', nil, styleRadar)
	}

	origin := sb.body.Position()
	yaw := sb.look.Yaw() * math.Pi / 180
	fwd := vmath.Vec3{X: math.Sin(yaw), Z: math.Cos(yaw)}
	right := vmath.Vec3{X: fwd.Z, Z: -fwd.X}

	plot := func(p vmath.Vec3, r rune, style tcell.Style) {
		d := vmath.V3Planar(vmath.V3Sub(p, origin))
		col := int(math.Round(vmath.V3Dot(d, right) * radarScale))
		row := -int(math.Round(vmath.V3Dot(d, fwd)))
		if col < -radarHalfWidth || col > radarHalfWidth || row < -radarHalfHeight || row > radarHalfHeight {
			return
		}
		s.SetContent(cx+col, cy+row, r, nil, style)
	}

	plot(sb.hazard.Position, 'x', styleHazard)
	for _, fx := range sb.shells.Live() {
		plot(fx.Position, '.', styleShell)
	}
	for _, p := range sb.pickups {
		if !p.Consumed() {
			plot(p.Position, rune(p.Weapon.Name[0]), stylePickup)
		}
	}
	s.SetContent(cx, cy, '@', nil, styleText)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

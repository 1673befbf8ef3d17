package pong

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/games/pong/core"
)

// Visual characters for rendering
const (
	PaddleChar = '█'
	BallChar   = '●'
	NetChar    = '│'
	WallChar   = '─'
)

// hudHeight is the number of rows above the field.
const hudHeight = 1

var tintColors = map[core.Tint]platformcore.Color{
	core.TintWhite:   platformcore.ColorBrightWhite,
	core.TintYellow:  platformcore.ColorBrightYellow,
	core.TintCyan:    platformcore.ColorBrightCyan,
	core.TintMagenta: platformcore.ColorMagenta,
}

// viewport maps the field onto the rows below the HUD, between two wall lines.
func viewport(dst *platformcore.Screen, field core.Field) platformcore.Viewport {
	return platformcore.Viewport{
		Area:   platformcore.NewRect(0, hudHeight+1, dst.Width(), max(1, dst.Height()-hudHeight-2)),
		FieldW: field.W,
		FieldH: field.H,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()
	if g.session == nil {
		return
	}
	v := g.session.View()
	vp := viewport(dst, v.Field)

	// Walls and net
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, vp.Area.Y-1, WallChar, platformcore.ColorGray)
		dst.SetColored(x, vp.Area.Bottom(), WallChar, platformcore.ColorGray)
	}
	dst.DrawVLine(vp.Col(v.Field.W/2), vp.Area.Y, vp.Area.H, NetChar, platformcore.ColorGray, true)

	g.drawPaddle(dst, vp, v.Left, platformcore.ColorCyan)
	g.drawPaddle(dst, vp, v.Right, platformcore.ColorMagenta)

	if v.Phase == core.PhasePlaying && g.flash == 0 {
		b := v.Ball
		dst.DrawRect(vp.Span(b.X, b.Y, b.Size, b.Size), BallChar, tintColors[b.Tint])
	}

	g.drawHUD(dst, v)

	switch {
	case v.Phase == core.PhaseNotStarted:
		drawCenteredMessage(dst, g.title, "Press F to start/stop playing")
	case v.Phase == core.PhaseEnded:
		g.drawEndScreen(dst, v)
	case g.paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case g.flash > 0:
		drawCenteredMessage(dst, "SCORE!", g.sideLabel(g.flashSide)+" scores")
	}
}

func (g *Game) drawPaddle(dst *platformcore.Screen, vp platformcore.Viewport, p core.Paddle, c platformcore.Color) {
	dst.DrawRect(vp.Span(p.X, p.Y, p.W, p.H), PaddleChar, c)
}

func (g *Game) drawHUD(dst *platformcore.Screen, v core.View) {
	score := fmt.Sprintf("%d  :  %d", v.Score.Left, v.Score.Right)
	dst.DrawTextCentered(0, score, platformcore.ColorBrightWhite)

	dst.DrawTextColored(1, 0, g.sideLabel(core.SideLeft), platformcore.ColorCyan)
	right := g.sideLabel(core.SideRight)
	dst.DrawTextColored(dst.Width()-len(right)-1, 0, right, platformcore.ColorMagenta)

	if v.Phase == core.PhasePlaying {
		t := fmt.Sprintf("%.1fs", v.Elapsed.Seconds())
		dst.DrawTextColored(dst.Width()/2+len(score)/2+3, 0, t, platformcore.ColorGray)
	}
}

func (g *Game) drawEndScreen(dst *platformcore.Screen, v core.View) {
	lines := []string{
		fmt.Sprintf("%s Score: %d", g.sideLabel(core.SideLeft), v.Score.Left),
		fmt.Sprintf("%s Score: %d", g.sideLabel(core.SideRight), v.Score.Right),
		fmt.Sprintf("Time Played: %.1f seconds", v.Elapsed.Seconds()),
	}
	hint := "Press F to play again"
	if g.session.Done() {
		hint = "Thanks for playing"
	}

	w := len(hint)
	for _, l := range lines {
		w = max(w, len(l))
	}
	boxW := w + 4
	boxH := len(lines) + 4
	box := platformcore.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)
	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorWhite)

	for i, l := range lines {
		dst.DrawTextColored(box.X+2, box.Y+1+i, l, platformcore.ColorBrightWhite)
	}
	dst.DrawTextColored(box.X+(boxW-len(hint))/2, box.Bottom()-2, hint, platformcore.ColorGray)
}

// sideLabel names the player defending a side.
func (g *Game) sideLabel(s core.Side) string {
	ai := g.session.Options().AI
	switch {
	case ai == core.SideNone && s == core.SideLeft:
		return "Left"
	case ai == core.SideNone:
		return "Right"
	case s == ai:
		return "AI"
	default:
		return "Player"
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *platformcore.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := platformcore.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-len(title))/2, boxY+1, title, platformcore.ColorBrightYellow)
	dst.DrawTextColored(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, platformcore.ColorWhite)
}

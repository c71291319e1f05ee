package kokaton

import (
	"fmt"

	"github.com/vovakirdan/kokaton/internal/core"
)

// Minimum terminal size the field can be projected onto.
const (
	MinCols = 44
	MinRows = 13
)

const gameOverText = "GAME OVER"

// Render draws the current frame. The world is scaled to fill dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinCols || dst.Height() < MinRows {
		g.drawTooSmall(dst)
		return
	}

	vp := core.NewViewport(g.world, dst.Width(), dst.Height())
	g.background.Draw(dst, vp.Rect(core.NewRect(0, 0, g.world.W, g.world.H)))

	if g.phase == PhaseGameOver {
		g.player.Sprite().Draw(dst, vp.Rect(g.player.Rect()))
		g.drawBanner(dst, vp)
		return
	}

	g.player.Sprite().Draw(dst, vp.Rect(g.player.Rect()))
	for _, b := range g.beams {
		b.Sprite().Draw(dst, vp.Rect(b.Rect()))
	}
	for _, h := range g.hazards {
		h.Sprite().Draw(dst, vp.Rect(h.Rect()))
	}
	for _, e := range g.explosions {
		if e.Visible() {
			e.Frame().Draw(dst, vp.Rect(e.Rect()))
		}
	}

	sx, sy := vp.Point(g.score.Position())
	dst.DrawTextWithColor(sx, sy, g.score.Text(), g.score.color)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawBanner boxes the game-over text at its world position.
func (g *Game) drawBanner(dst *core.Screen, vp core.Viewport) {
	x, y := vp.Point(g.world.W/2-150, g.world.H/2)
	box := core.NewRect(x-2, y-1, len(gameOverText)+4, 3)
	dst.DrawRectWithColor(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightRed)
	dst.DrawTextWithColor(x, y, gameOverText, core.ColorBrightRed)
}

func (g *Game) drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y-1, "Terminal too small")
	dst.DrawTextCentered(y, fmt.Sprintf("need at least %dx%d", MinCols, MinRows))
}

// drawCenteredMessage draws a boxed two-line message in the screen center.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := max(len(title), len(subtitle)) + 4
	x := (dst.Width() - w) / 2
	y := dst.Height()/2 - 2
	box := core.NewRect(x, y, w, 4)

	dst.DrawRectWithColor(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+2, subtitle)
}

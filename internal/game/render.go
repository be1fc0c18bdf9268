package game

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

// Layout in screen cells.
const (
	cellWidth   = 2  // Each field cell is two characters wide
	panelGap    = 2  // Space between the field box and the side panel
	panelWidth  = 14 // "STATS" column plus counts
	panelHeight = 21
)

var kindColors = [tetris.NumKinds]core.Color{
	tetris.O: core.ColorYellow,
	tetris.I: core.ColorCyan,
	tetris.S: core.ColorGreen,
	tetris.Z: core.ColorRed,
	tetris.J: core.ColorBlue,
	tetris.L: core.ColorOrange,
	tetris.T: core.ColorMagenta,
}

// KindColor returns the color a piece kind is drawn with.
func KindColor(k tetris.Kind) core.Color {
	if int(k) >= len(kindColors) {
		return core.ColorDefault
	}
	return kindColors[k]
}

// RequiredSize returns the smallest screen that fits the field and panel.
func (g *Game) RequiredSize() (int, int) {
	boxW := g.cfg.Field.Width*cellWidth + 2
	boxH := g.cfg.Field.Height + 2
	if g.engine != nil {
		boxW = g.engine.Width()*cellWidth + 2
		boxH = g.engine.Height() + 2
	}
	return boxW + panelGap + panelWidth, max(boxH, panelHeight)
}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.engine == nil {
		return
	}

	needW, needH := g.RequiredSize()
	layout := core.NewRect((dst.Width()-needW)/2, (dst.Height()-needH)/2, needW, needH)
	if !dst.Bounds().Fits(layout) {
		_, cy := dst.Bounds().Center()
		dst.DrawTextCentered(cy-1, "Terminal too small")
		dst.DrawTextCentered(cy, fmt.Sprintf("need %dx%d", needW, needH))
		return
	}

	box := core.NewRect(layout.X, layout.Y, g.engine.Width()*cellWidth+2, g.engine.Height()+2)

	dst.DrawBox(box)
	g.renderField(dst, box)
	g.renderPanel(dst, box.Right()+panelGap, layout.Y)

	switch {
	case g.gameOver:
		g.renderOverlay(dst, box, "GAME OVER", "r restart")
	case g.paused:
		g.renderOverlay(dst, box, "PAUSED", "p resume")
	}
}

// renderField draws the stack and the live piece inside the box border.
// Row 0 of the field is the bottom line of the box.
func (g *Game) renderField(dst *core.Screen, box core.Rect) {
	field := g.engine.Field()
	h := field.Height()

	for row := range h {
		y := box.Y + 1 + (h - 1 - row)
		for col := range field.Width() {
			x := box.X + 1 + col*cellWidth
			if field.Occupied(row, col) {
				dst.SetColored(x, y, '█', core.ColorWhite)
				dst.SetColored(x+1, y, '█', core.ColorWhite)
			} else {
				dst.SetColored(x+1, y, '·', core.ColorGray)
			}
		}
	}

	cells := core.NewRect(0, 0, field.Width(), h)
	color := KindColor(g.engine.Current())
	for _, p := range g.engine.PieceCells() {
		if !cells.Contains(p.X, p.Y) {
			continue
		}
		x := box.X + 1 + p.X*cellWidth
		y := box.Y + 1 + (h - 1 - p.Y)
		dst.SetColored(x, y, '█', color)
		dst.SetColored(x+1, y, '█', color)
	}
}

// renderPanel draws score, lines, level, the next piece and statistics.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x, y, "SCORE", core.ColorGray)
	dst.DrawText(x, y+1, fmt.Sprintf("%d", g.engine.Score()))
	dst.DrawTextColored(x, y+2, "LINES", core.ColorGray)
	dst.DrawText(x, y+3, fmt.Sprintf("%d", g.engine.Lines()))
	dst.DrawTextColored(x, y+4, "LEVEL", core.ColorGray)
	dst.DrawText(x, y+5, fmt.Sprintf("%d", g.engine.Level()))

	dst.DrawHLine(x, y+6, panelWidth-2, '─')
	dst.DrawTextColored(x, y+7, "NEXT", core.ColorGray)
	renderPreview(dst, x, y+8, g.engine.Next())
	dst.DrawHLine(x, y+12, panelWidth-2, '─')

	dst.DrawTextColored(x, y+13, "STATS", core.ColorGray)
	stats := g.engine.Statistics()
	for i, k := range tetris.Kinds {
		dst.DrawTextColored(x, y+14+i, k.String(), KindColor(k))
		dst.DrawText(x+2, y+14+i, fmt.Sprintf("%4d", stats[k]))
	}
}

// renderPreview draws a kind in its spawn rotation with its top-left block
// at (x, y).
func renderPreview(dst *core.Screen, x, y int, k tetris.Kind) {
	blocks := tetris.Offsets(k, 0)
	minX, minY := blocks[0].X, blocks[0].Y
	for _, b := range blocks[1:] {
		minX = min(minX, b.X)
		minY = min(minY, b.Y)
	}

	color := KindColor(k)
	for _, b := range blocks {
		px := x + (b.X-minX)*cellWidth
		py := y + (b.Y - minY)
		dst.SetColored(px, py, '█', color)
		dst.SetColored(px+1, py, '█', color)
	}
}

// renderOverlay draws a two-line message in the middle of the field box.
func (g *Game) renderOverlay(dst *core.Screen, box core.Rect, line1, line2 string) {
	_, cy := box.Center()
	inner := core.NewRect(box.X+1, cy-2, box.W-2, 5)
	dst.DrawRect(inner, ' ')
	drawCentered(dst, inner, inner.Y+1, line1)
	drawCentered(dst, inner, inner.Y+3, line2)
}

func drawCentered(dst *core.Screen, r core.Rect, y int, text string) {
	n := len([]rune(text))
	x := r.X + core.Clamp((r.W-n)/2, 0, r.W)
	dst.DrawText(x, y, text)
}

package wumpus

import (
	"fmt"

	"github.com/vovakirdan/tui-wumpus/internal/core"
)

const (
	cellWidth = 4 // content glyph followed by three hint slots
	hudHeight = 3
	minHUDW   = 54
)

// RenderOptions control presentation only; they never affect the simulation.
type RenderOptions struct {
	Reveal bool // draw undiscovered tiles as if discovered
}

// hintColors maps each hint marker to its color.
var hintColors = map[Hint]core.Color{
	HintStench:  core.ColorGreen,
	HintWind:    core.ColorCyan,
	HintGlitter: core.ColorYellow,
}

// contentColors maps each content glyph to its color.
var contentColors = map[Content]core.Color{
	Empty:    core.ColorGray,
	Hole:     core.ColorBlue,
	Hazard:   core.ColorBrightRed,
	Treasure: core.ColorBrightYellow,
}

// MinScreenSize returns the smallest screen that fits a board of the given size.
func MinScreenSize(size int) (w, h int) {
	boardW := size*cellWidth + 2
	boardH := size + 2
	return core.Max(boardW, minHUDW), hudHeight + boardH + 3
}

// Render draws a snapshot into dst. The screen is cleared first.
func Render(dst *core.Screen, snap Snapshot, opts RenderOptions) {
	dst.Clear()

	minW, minH := MinScreenSize(snap.Size)
	if dst.Width() < minW || dst.Height() < minH {
		renderTooSmall(dst, minW, minH)
		return
	}

	boardW := snap.Size*cellWidth + 2
	boardH := snap.Size + 2
	boardX := (dst.Width() - boardW) / 2
	boardY := hudHeight

	renderHUD(dst, snap)
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH))
	renderTiles(dst, snap, boardX+1, boardY+1, opts)
	renderFooter(dst, snap, boardY+boardH)
}

// renderTooSmall shows a "window too small" message.
func renderTooSmall(dst *core.Screen, minW, minH int) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need at least %dx%d", minW, minH))
}

// renderHUD draws the title and the score line.
func renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextCentered(0, "Hunt the Wumpus")

	status := fmt.Sprintf("Treasure %d/%d   Arrows %d   Facing %-5s   Deaths %d",
		snap.Score, snap.TotalScore, snap.Player.Ammo, snap.Player.Heading, snap.Resets)
	dst.DrawTextCentered(1, status)
}

// renderTiles draws the grid with y = Size-1 on the top row.
func renderTiles(dst *core.Screen, snap Snapshot, originX, originY int, opts RenderOptions) {
	for y := 0; y < snap.Size; y++ {
		row := originY + (snap.Size - 1 - y)
		for x := 0; x < snap.Size; x++ {
			col := originX + x*cellWidth
			c := C(x, y)
			tile := snap.At(c)

			if !tile.Discovered && !opts.Reveal {
				for i := 0; i < cellWidth; i++ {
					dst.SetColored(col+i, row, '░', core.ColorGray)
				}
				continue
			}

			if c == snap.Player.Pos {
				dst.SetColored(col, row, snap.Player.Heading.Arrow(), core.ColorBrightWhite)
			} else {
				dst.SetColored(col, row, tile.Content.Rune(), contentColors[tile.Content])
			}

			for i, h := range AllHints() {
				if tile.HasHint(h) {
					dst.SetColored(col+1+i, row, h.Rune(), hintColors[h])
				}
			}
		}
	}
}

// renderFooter draws the last event message, the win banner and the legend.
func renderFooter(dst *core.Screen, snap Snapshot, y int) {
	msg := snap.Last.Message()
	if snap.State == StateWon {
		msg = "All treasure collected! Press R for a new cave."
	}
	if msg != "" {
		dst.DrawTextCentered(y, msg)
	}

	dst.DrawTextCentered(y+1, "S stench  W wind  G glitter  O hole  M wumpus  $ gold")
}

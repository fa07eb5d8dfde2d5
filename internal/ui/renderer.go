package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hollowdeep/internal/entity"
	"github.com/samdwyer/hollowdeep/internal/gamedata"
	"github.com/samdwyer/hollowdeep/internal/world"
)

// Fixed screen layout: the map occupies the top rows, a HUD line sits
// directly below it, and the message window fills the remaining rows.
const (
	HUDRow    = world.DefaultHeight
	LogX      = 21
	LogY      = world.DefaultHeight + 1
	LogWidth  = 40
	LogHeight = 5
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Screen returns the underlying drawing surface.
func (r *Renderer) Screen() *Screen {
	return r.screen
}

// Size returns the current terminal dimensions.
func (r *Renderer) Size() (width, height int) {
	return r.screen.Size()
}

// Clear clears the screen buffer.
func (r *Renderer) Clear() {
	r.screen.Clear()
}

// Show flushes the screen buffer to the terminal.
func (r *Renderer) Show() {
	r.screen.Show()
}

// RenderMap draws the dungeon tiles. Unexplored tiles stay blank, explored
// but out-of-sight tiles are dimmed, visible tiles use their full color.
func (r *Renderer) RenderMap(d *world.Dungeon) {
	for y := 0; y < d.Height; y++ {
		for x := 0; x < d.Width; x++ {
			if !d.IsExplored(x, y) {
				continue
			}
			tile := d.GetTile(x, y)
			color := tileColor(tile)
			if !d.IsVisible(x, y) {
				color = gamedata.Dim(color)
			}
			r.screen.SetContent(x, y, tile.Rune(), tcell.StyleDefault.Foreground(color))
		}
	}
}

// RenderItems draws floor items on currently visible tiles.
func (r *Renderer) RenderItems(d *world.Dungeon, items []*entity.Item) {
	for _, item := range items {
		if !d.IsVisible(item.X, item.Y) {
			continue
		}
		r.screen.SetContent(item.X, item.Y, item.Glyph, tcell.StyleDefault.Foreground(item.Color))
	}
}

// RenderActors draws monsters and the player on currently visible tiles.
// Corpses render first so living actors always draw on top of them.
func (r *Renderer) RenderActors(d *world.Dungeon, monsters []*entity.Actor, player *entity.Actor) {
	for _, m := range monsters {
		if m.Blocks || !d.IsVisible(m.X, m.Y) {
			continue
		}
		r.screen.SetContent(m.X, m.Y, m.Glyph, tcell.StyleDefault.Foreground(m.Color))
	}
	for _, m := range monsters {
		if !m.Blocks || !d.IsVisible(m.X, m.Y) {
			continue
		}
		r.screen.SetContent(m.X, m.Y, m.Glyph, tcell.StyleDefault.Foreground(m.Color))
	}

	playerStyle := tcell.StyleDefault.Foreground(player.Color).Bold(true)
	r.screen.SetContent(player.X, player.Y, player.Glyph, playerStyle)
}

// Print writes a line of text starting at the given position.
func (r *Renderer) Print(x, y int, text string, style tcell.Style) {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, style)
		col++
	}
}

// PrintCentered writes text centered within a width-wide band starting at x.
func (r *Renderer) PrintCentered(x, y, width int, text string, style tcell.Style) {
	runes := []rune(text)
	start := x + (width-len(runes))/2
	if start < x {
		start = x
	}
	r.Print(start, y, text, style)
}

// DrawFrame draws a box-drawing border around the given region.
func (r *Renderer) DrawFrame(x, y, width, height int, style tcell.Style) {
	if width < 2 || height < 2 {
		return
	}

	for col := x + 1; col < x+width-1; col++ {
		r.screen.SetContent(col, y, '─', style)
		r.screen.SetContent(col, y+height-1, '─', style)
	}
	for row := y + 1; row < y+height-1; row++ {
		r.screen.SetContent(x, row, '│', style)
		r.screen.SetContent(x+width-1, row, '│', style)
	}

	r.screen.SetContent(x, y, '┌', style)
	r.screen.SetContent(x+width-1, y, '┐', style)
	r.screen.SetContent(x, y+height-1, '└', style)
	r.screen.SetContent(x+width-1, y+height-1, '┘', style)

	// Blank the interior so the overlay hides what is underneath
	for row := y + 1; row < y+height-1; row++ {
		for col := x + 1; col < x+width-1; col++ {
			r.screen.SetContent(col, row, ' ', style)
		}
	}
}

// tileColor returns the full-visibility color for a tile type.
func tileColor(tile world.Tile) tcell.Color {
	switch tile {
	case world.TileWall:
		return tcell.NewRGBColor(130, 110, 50)
	case world.TileFloor:
		return tcell.NewRGBColor(192, 192, 192)
	default:
		return tcell.ColorWhite
	}
}

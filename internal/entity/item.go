package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/hollowdeep/internal/gamedata"
)

// Item is something lying on the dungeon floor that can be picked up.
type Item struct {
	ID    uuid.UUID
	X, Y  int
	Glyph rune
	Color tcell.Color
	Name  string
}

// NewItem creates an item from a definition at the given position.
func NewItem(def *gamedata.ItemDef, x, y int) *Item {
	return &Item{
		ID:    uuid.New(),
		X:     x,
		Y:     y,
		Glyph: def.GlyphRune(),
		Color: gamedata.MustParseHexColor(def.Color),
		Name:  def.Name,
	}
}

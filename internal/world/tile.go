// Package world provides dungeon generation, map queries, and visibility.
package world

// Tile represents a single map tile.
type Tile rune

const (
	// TileWall represents an impassable, sight-blocking wall tile.
	TileWall Tile = '#'
	// TileFloor represents a passable floor tile.
	TileFloor Tile = '.'
)

// IsPassable returns true if the tile can be walked on.
func (t Tile) IsPassable() bool {
	return t == TileFloor
}

// IsTransparent returns true if the tile can be seen through.
func (t Tile) IsTransparent() bool {
	return t == TileFloor
}

// Rune returns the tile's display character.
func (t Tile) Rune() rune {
	return rune(t)
}

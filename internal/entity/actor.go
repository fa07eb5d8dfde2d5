// Package entity provides game entities: actors (the player and monsters)
// and items lying on the dungeon floor.
package entity

import (
	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"

	"github.com/samdwyer/hollowdeep/internal/gamedata"
)

// Actor is anything that occupies a tile and can act or be fought.
type Actor struct {
	ID      uuid.UUID
	X, Y    int
	Glyph   rune
	Color   tcell.Color
	Name    string
	Blocks  bool // Blocks movement while alive
	HP      int
	MaxHP   int
	Power   int // Melee damage before defense
	Defense int // Flat damage reduction
}

// NewPlayer creates the player actor at the given position.
func NewPlayer(x, y int) *Actor {
	return &Actor{
		ID:      uuid.New(),
		X:       x,
		Y:       y,
		Glyph:   '@',
		Color:   tcell.ColorWhite,
		Name:    "Player",
		Blocks:  true,
		HP:      30,
		MaxHP:   30,
		Power:   5,
		Defense: 2,
	}
}

// NewMonster creates an actor from a monster definition at the given position.
func NewMonster(def *gamedata.MonsterDef, x, y int) *Actor {
	return &Actor{
		ID:      uuid.New(),
		X:       x,
		Y:       y,
		Glyph:   def.GlyphRune(),
		Color:   gamedata.MustParseHexColor(def.Color),
		Name:    def.Name,
		Blocks:  true,
		HP:      def.HP,
		MaxHP:   def.HP,
		Power:   def.Power,
		Defense: def.Defense,
	}
}

// IsAlive returns true while the actor has hit points left.
func (a *Actor) IsAlive() bool {
	return a.HP > 0
}

// Move updates the actor position by the given delta.
func (a *Actor) Move(dx, dy int) {
	a.X += dx
	a.Y += dy
}

// Position returns the current x, y coordinates.
func (a *Actor) Position() (int, int) {
	return a.X, a.Y
}

// TakeDamage reduces HP by the given amount, floored at zero.
// Returns the actual damage taken.
func (a *Actor) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := amount
	if actual > a.HP {
		actual = a.HP
	}
	a.HP -= actual
	return actual
}

// Die turns the actor into a corpse: it stops blocking movement and is
// renamed and redrawn as remains.
func (a *Actor) Die() {
	a.Glyph = '%'
	a.Color = tcell.ColorDarkRed
	a.Blocks = false
	a.Name = "remains of " + a.Name
}

// DistanceTo returns the Chebyshev distance to the given position.
// Adjacent (including diagonals) means distance 1.
func (a *Actor) DistanceTo(x, y int) int {
	dx := abs(x - a.X)
	dy := abs(y - a.Y)
	if dx > dy {
		return dx
	}
	return dy
}

// StepToward returns a single-tile delta moving the actor closer to the
// target, preferring diagonal movement when both axes differ.
func (a *Actor) StepToward(x, y int) (dx, dy int) {
	dx = sign(x - a.X)
	dy = sign(y - a.Y)
	return dx, dy
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

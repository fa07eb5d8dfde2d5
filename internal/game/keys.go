package game

import "github.com/gdamore/tcell/v2"

// keyChord normalizes a tcell key event for table lookup. Special keys use
// the tcell.Key value; printable keys use KeyRune plus the rune.
type keyChord struct {
	key tcell.Key
	ch  rune
}

// chordOf extracts the lookup chord from a key event.
func chordOf(ev *tcell.EventKey) keyChord {
	if ev.Key() == tcell.KeyRune {
		return keyChord{key: tcell.KeyRune, ch: ev.Rune()}
	}
	return keyChord{key: ev.Key()}
}

type delta struct {
	dx, dy int
}

// moveKeys maps movement keys to their direction. Arrows move orthogonally;
// Home/End/PgUp/PgDn cover the diagonals.
var moveKeys = map[keyChord]delta{
	{key: tcell.KeyUp}:    {0, -1},
	{key: tcell.KeyDown}:  {0, 1},
	{key: tcell.KeyLeft}:  {-1, 0},
	{key: tcell.KeyRight}: {1, 0},
	{key: tcell.KeyHome}:  {-1, -1},
	{key: tcell.KeyEnd}:   {-1, 1},
	{key: tcell.KeyPgUp}:  {1, -1},
	{key: tcell.KeyPgDn}:  {1, 1},
}

// waitKeys maps keys that pass the turn without acting.
var waitKeys = map[keyChord]struct{}{
	{key: tcell.KeyRune, ch: '.'}: {},
}

// cursorKeys maps history-view scroll keys to a signed cursor step.
var cursorKeys = map[keyChord]int{
	{key: tcell.KeyUp}:   -1,
	{key: tcell.KeyDown}: 1,
	{key: tcell.KeyPgUp}: -10,
	{key: tcell.KeyPgDn}: 10,
}

package game

import (
	"math/rand"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hollowdeep/internal/entity"
	"github.com/samdwyer/hollowdeep/internal/world"
)

// testEngine builds a screenless engine on an open 12x12 map with the
// player at (5,5).
func testEngine(t *testing.T) *Engine {
	t.Helper()

	rng := rand.New(rand.NewSource(7))
	d := world.NewDungeon(12, 12, rng)
	for y := 1; y < 11; y++ {
		for x := 1; x < 11; x++ {
			d.Tiles[y][x] = world.TileFloor
		}
	}

	return NewEngine(d, entity.NewPlayer(5, 5), rng)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestMainPlayMoveKeys(t *testing.T) {
	e := testEngine(t)
	m := NewMainPlay(e)

	tests := []struct {
		name   string
		ev     *tcell.EventKey
		dx, dy int
	}{
		{"up", key(tcell.KeyUp), 0, -1},
		{"down", key(tcell.KeyDown), 0, 1},
		{"left", key(tcell.KeyLeft), -1, 0},
		{"right", key(tcell.KeyRight), 1, 0},
		{"home", key(tcell.KeyHome), -1, -1},
		{"end", key(tcell.KeyEnd), -1, 1},
		{"pgup", key(tcell.KeyPgUp), 1, -1},
		{"pgdn", key(tcell.KeyPgDn), 1, 1},
	}

	for _, tt := range tests {
		dec := m.Translate(tt.ev)
		bump, ok := dec.Action.(BumpAction)
		if !ok {
			t.Errorf("%s: expected BumpAction, got %T", tt.name, dec.Action)
			continue
		}
		if bump.DX != tt.dx || bump.DY != tt.dy {
			t.Errorf("%s: delta = (%d,%d), want (%d,%d)", tt.name, bump.DX, bump.DY, tt.dx, tt.dy)
		}
		if dec.Next != nil || dec.Terminate {
			t.Errorf("%s: movement must never transition or terminate", tt.name)
		}
	}
}

func TestMainPlayWaitKey(t *testing.T) {
	e := testEngine(t)
	m := NewMainPlay(e)

	dec := m.Translate(runeKey('.'))
	if _, ok := dec.Action.(WaitAction); !ok {
		t.Errorf("Period key: expected WaitAction, got %T", dec.Action)
	}
}

func TestMainPlayEscapeKey(t *testing.T) {
	e := testEngine(t)
	m := NewMainPlay(e)

	dec := m.Translate(key(tcell.KeyEscape))
	if _, ok := dec.Action.(EscapeAction); !ok {
		t.Errorf("Escape key: expected EscapeAction, got %T", dec.Action)
	}
	if dec.Terminate {
		t.Error("Escape is a quit intent, not the hard termination signal")
	}
}

func TestMainPlayPickupKey(t *testing.T) {
	e := testEngine(t)
	m := NewMainPlay(e)

	dec := m.Translate(runeKey('g'))
	if _, ok := dec.Action.(PickupAction); !ok {
		t.Errorf("'g' key: expected PickupAction, got %T", dec.Action)
	}
}

func TestMainPlayHistoryKeyTransitions(t *testing.T) {
	e := testEngine(t)
	e.Log.Add("one", e.Palette.Welcome)
	e.Log.Add("two", e.Palette.Welcome)
	m := NewMainPlay(e)

	dec := m.Translate(runeKey('v'))
	if dec.Action != nil {
		t.Errorf("'v' must not produce an action, got %T", dec.Action)
	}

	h, ok := dec.Next.(*HistoryReview)
	if !ok {
		t.Fatalf("'v' should transition to HistoryReview, got %T", dec.Next)
	}
	if h.cursor != 1 || h.logLength != 2 {
		t.Errorf("HistoryReview snapshot = cursor %d, length %d; want 1, 2", h.cursor, h.logLength)
	}
}

func TestMainPlayIgnoresUnknownKeys(t *testing.T) {
	e := testEngine(t)
	m := NewMainPlay(e)

	for _, ev := range []*tcell.EventKey{runeKey('z'), runeKey('?'), key(tcell.KeyTab), key(tcell.KeyEnter)} {
		dec := m.Translate(ev)
		if dec.Action != nil || dec.Next != nil || dec.Terminate {
			t.Errorf("Key %v should be ignored, got %+v", ev.Key(), dec)
		}
	}
}

func TestGameOverOnlyEscapeTerminates(t *testing.T) {
	e := testEngine(t)
	m := NewGameOver(e)

	dec := m.Translate(key(tcell.KeyEscape))
	if !dec.Terminate {
		t.Error("Escape in GameOver should terminate")
	}
	if dec.Action != nil {
		t.Errorf("Termination must not be an action, got %T", dec.Action)
	}

	for _, ev := range []*tcell.EventKey{key(tcell.KeyUp), runeKey('v'), runeKey('.'), runeKey('g')} {
		dec := m.Translate(ev)
		if dec.Action != nil || dec.Next != nil || dec.Terminate {
			t.Errorf("GameOver should ignore %v, got %+v", ev.Key(), dec)
		}
	}
}

func TestHelpIgnoresEverything(t *testing.T) {
	e := testEngine(t)
	m := NewHelp(e)

	for _, ev := range []*tcell.EventKey{key(tcell.KeyEscape), key(tcell.KeyUp), runeKey('v')} {
		dec := m.Translate(ev)
		if dec.Action != nil || dec.Next != nil || dec.Terminate {
			t.Errorf("Help should ignore %v, got %+v", ev.Key(), dec)
		}
	}
}

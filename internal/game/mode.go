package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hollowdeep/internal/ui"
)

// Mode is the active input-handling and rendering context. Exactly one mode
// is live at a time; transitions replace it wholesale.
type Mode interface {
	// Translate converts a key event into a Decision. It never mutates
	// engine state itself; the dispatcher applies the returned decision.
	Translate(ev *tcell.EventKey) Decision
	// Render draws the mode's view onto the renderer.
	Render(r *ui.Renderer)
}

// Decision is the outcome of translating one key event: at most one of an
// action to resolve, a mode to transition to, or a termination request.
// The zero value means the key was ignored.
type Decision struct {
	Action    Action
	Next      Mode
	Terminate bool
}

// MainPlay is the default mode: keys translate to game actions.
type MainPlay struct {
	engine *Engine
}

// NewMainPlay creates the main play mode.
func NewMainPlay(e *Engine) *MainPlay {
	return &MainPlay{engine: e}
}

func (m *MainPlay) Translate(ev *tcell.EventKey) Decision {
	chord := chordOf(ev)

	if d, ok := moveKeys[chord]; ok {
		return Decision{Action: BumpAction{DX: d.dx, DY: d.dy}}
	}
	if _, ok := waitKeys[chord]; ok {
		return Decision{Action: WaitAction{}}
	}

	switch chord {
	case keyChord{key: tcell.KeyEscape}:
		return Decision{Action: EscapeAction{}}
	case keyChord{key: tcell.KeyRune, ch: 'v'}:
		return Decision{Next: NewHistoryReview(m.engine)}
	case keyChord{key: tcell.KeyRune, ch: 'g'}:
		return Decision{Action: PickupAction{}}
	}

	// No valid key pressed
	return Decision{}
}

func (m *MainPlay) Render(r *ui.Renderer) {
	m.engine.renderWorld(r)
}

// GameOver accepts only the escape key, which ends the process. It is
// entered from the death check, never from translation.
type GameOver struct {
	engine *Engine
}

// NewGameOver creates the game over mode.
func NewGameOver(e *Engine) *GameOver {
	return &GameOver{engine: e}
}

func (m *GameOver) Translate(ev *tcell.EventKey) Decision {
	if ev.Key() == tcell.KeyEscape {
		return Decision{Terminate: true}
	}
	return Decision{}
}

func (m *GameOver) Render(r *ui.Renderer) {
	m.engine.renderWorld(r)
}

// Help is a placeholder mode kept so the mode set stays exhaustive.
// TODO: render the key binding reference.
type Help struct {
	engine *Engine
}

// NewHelp creates the help mode.
func NewHelp(e *Engine) *Help {
	return &Help{engine: e}
}

func (m *Help) Translate(ev *tcell.EventKey) Decision {
	return Decision{}
}

func (m *Help) Render(r *ui.Renderer) {
	m.engine.renderWorld(r)
}

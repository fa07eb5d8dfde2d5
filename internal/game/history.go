package game

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/hollowdeep/internal/ui"
)

// historyMargin is the gap between the screen edge and the overlay frame.
const historyMargin = 3

// HistoryReview lets the player scroll back through the message log on a
// framed overlay. The log length is snapshotted at activation; the cursor
// marks the newest message shown. It produces no actions and costs no turns.
type HistoryReview struct {
	engine    *Engine
	cursor    int
	logLength int
}

// NewHistoryReview creates the history mode positioned at the newest message.
func NewHistoryReview(e *Engine) *HistoryReview {
	n := e.Log.Len()
	return &HistoryReview{
		engine:    e,
		cursor:    n - 1,
		logLength: n,
	}
}

func (h *HistoryReview) Translate(ev *tcell.EventKey) Decision {
	chord := chordOf(ev)

	if step, ok := cursorKeys[chord]; ok {
		if h.logLength > 0 {
			// Clamp at both extremes; the scroll never wraps
			h.cursor = clamp(h.cursor+step, 0, h.logLength-1)
		}
		return Decision{}
	}

	switch chord {
	case keyChord{key: tcell.KeyHome}:
		if h.logLength > 0 {
			h.cursor = 0
		}
		return Decision{}
	case keyChord{key: tcell.KeyEnd}:
		if h.logLength > 0 {
			h.cursor = h.logLength - 1
		}
		return Decision{}
	}

	// Any other key returns to the game
	return Decision{Next: NewMainPlay(h.engine)}
}

func (h *HistoryReview) Render(r *ui.Renderer) {
	h.engine.renderWorld(r)

	width, height := r.Size()
	frameWidth := width - 2*historyMargin
	frameHeight := height - 2*historyMargin
	if frameWidth < 4 || frameHeight < 4 {
		return
	}

	style := h.engine.Palette.BarText
	r.DrawFrame(historyMargin, historyMargin, frameWidth, frameHeight, style)
	r.PrintCentered(historyMargin, historyMargin, frameWidth, "┤Message history├", style)

	if h.logLength == 0 {
		return
	}

	// Show only messages up to the cursor so older entries scroll into view
	visible := h.engine.Log.Messages[:h.cursor+1]
	h.engine.Log.RenderSlice(
		r.Screen(),
		historyMargin+1,
		historyMargin+1,
		frameWidth-2,
		frameHeight-2,
		visible,
	)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

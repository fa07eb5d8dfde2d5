package game

import (
	"context"
	"errors"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hollowdeep/internal/telemetry"
)

// HandleEvent routes one terminal event. Keys go through the active mode's
// translation; mouse motion updates the pointer tile in every mode without
// ever costing a turn; Ctrl-C and interrupts are the hard termination
// signal, honored before any mode gets a say.
func (e *Engine) HandleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			e.running = false
			return
		}
		e.applyDecision(ctx, e.mode.Translate(ev))

	case *tcell.EventMouse:
		x, y := ev.Position()
		if e.Dungeon.InBounds(x, y) {
			e.MouseX, e.MouseY = x, y
		}

	case *tcell.EventResize:
		if e.screen != nil {
			e.screen.Sync()
		}

	case *tcell.EventInterrupt:
		e.running = false
	}
}

// applyDecision carries out whatever translation returned. At most one of
// the decision's fields is set.
func (e *Engine) applyDecision(ctx context.Context, dec Decision) {
	switch {
	case dec.Terminate:
		e.running = false
	case dec.Next != nil:
		e.SetMode(dec.Next)
	case dec.Action != nil:
		e.ResolveAction(ctx, dec.Action)
	}
}

// ResolveAction executes an action and returns true iff a turn elapsed.
// Success costs a turn: every monster acts and visibility is recomputed.
// An Impossible outcome only logs its reason; the world does not tick, so
// the player never pays for an action that could not happen.
func (e *Engine) ResolveAction(ctx context.Context, action Action) bool {
	if action == nil {
		return false
	}

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "turn.resolve")
	defer span.End()
	span.SetAttributes(attribute.String("action.kind", action.Kind()))

	if err := action.Perform(e); err != nil {
		var imp *Impossible
		if !errors.As(err, &imp) {
			// The binding tables only construct executable actions;
			// anything else is a defect.
			panic(err)
		}
		e.Log.Add(imp.Reason, e.Palette.Impossible)
		span.SetAttributes(attribute.String("action.outcome", "impossible"))
		return false
	}

	span.SetAttributes(attribute.String("action.outcome", "success"))

	if e.running {
		e.handleEnemyTurns(ctx)
		e.updateFOV(ctx)
	}
	return true
}

package game

import "fmt"

// Impossible is the recoverable failure returned when an action cannot be
// performed right now (bumping a wall, picking up thin air). The resolver
// logs the reason and the turn is not consumed. Any other error from an
// action is a programming defect.
type Impossible struct {
	Reason string
}

func (e *Impossible) Error() string {
	return e.Reason
}

// Action is an intent produced by input translation. An action is created
// per key event and consumed exactly once by the resolver.
type Action interface {
	// Perform executes the action against the engine. A nil return means
	// the action succeeded and a turn elapses; an *Impossible return means
	// it failed recoverably and no turn elapses.
	Perform(e *Engine) error
	// Kind identifies the action for telemetry.
	Kind() string
}

// BumpAction moves the player one tile, or melee-attacks whatever blocking
// actor occupies the destination.
type BumpAction struct {
	DX, DY int
}

func (a BumpAction) Kind() string { return "bump" }

func (a BumpAction) Perform(e *Engine) error {
	destX := e.Player.X + a.DX
	destY := e.Player.Y + a.DY

	if target := e.BlockingActorAt(destX, destY); target != nil {
		e.meleeAttack(e.Player, target)
		return nil
	}

	if !e.Dungeon.IsPassable(destX, destY) {
		return &Impossible{Reason: "That way is blocked."}
	}

	e.Player.Move(a.DX, a.DY)
	return nil
}

// WaitAction passes the turn without doing anything.
type WaitAction struct{}

func (a WaitAction) Kind() string { return "wait" }

func (a WaitAction) Perform(e *Engine) error {
	return nil
}

// EscapeAction is the in-game quit intent: it requests a clean shutdown of
// the run loop. Distinct from the hard termination signal, which bypasses
// action resolution entirely.
type EscapeAction struct{}

func (a EscapeAction) Kind() string { return "escape" }

func (a EscapeAction) Perform(e *Engine) error {
	e.running = false
	return nil
}

// PickupAction moves the item under the player into the inventory.
type PickupAction struct{}

func (a PickupAction) Kind() string { return "pickup" }

func (a PickupAction) Perform(e *Engine) error {
	item := e.ItemAt(e.Player.X, e.Player.Y)
	if item == nil {
		return &Impossible{Reason: "There is nothing here to pick up."}
	}
	if len(e.Inventory) >= InventoryCapacity {
		return &Impossible{Reason: "Your inventory is full."}
	}

	e.removeItem(item)
	e.Inventory = append(e.Inventory, item)
	e.Log.Add(fmt.Sprintf("You picked up the %s!", item.Name), e.Palette.PlayerAttack)
	return nil
}

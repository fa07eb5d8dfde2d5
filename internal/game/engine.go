package game

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hollowdeep/internal/entity"
	"github.com/samdwyer/hollowdeep/internal/gamedata"
	"github.com/samdwyer/hollowdeep/internal/message"
	"github.com/samdwyer/hollowdeep/internal/telemetry"
	"github.com/samdwyer/hollowdeep/internal/ui"
	"github.com/samdwyer/hollowdeep/internal/world"
)

const (
	// InventoryCapacity bounds how many items the player can carry.
	InventoryCapacity = 26

	maxMonstersPerRoom = 2
	maxItemsPerRoom    = 2
)

// Engine holds the entire game state: the player, the dungeon, monsters and
// items, the message log, and the active input mode. It is created once per
// session and lives for the process.
type Engine struct {
	Dungeon   *world.Dungeon
	Player    *entity.Actor
	Monsters  []*entity.Actor
	Items     []*entity.Item
	Inventory []*entity.Item
	Log       *message.Log
	Palette   Styles

	// Last pointer tile reported inside map bounds
	MouseX, MouseY int

	mode     Mode
	running  bool
	rng      *rand.Rand
	screen   *ui.Screen
	renderer *ui.Renderer
}

// NewEngine assembles an engine around prepared collaborators. Run attaches
// a terminal screen via New; tests construct engines directly, screenless.
func NewEngine(dungeon *world.Dungeon, player *entity.Actor, rng *rand.Rand) *Engine {
	e := &Engine{
		Dungeon: dungeon,
		Player:  player,
		Log:     message.NewLog(),
		Palette: NewStyles(gamedata.MustLoadPalette()),
		rng:     rng,
		running: true,
	}
	e.mode = NewMainPlay(e)
	return e
}

// New creates a playable game instance with a live terminal screen.
func New(cfg Config) (*Engine, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	dungeon := world.NewDungeon(world.DefaultWidth, world.DefaultHeight, rng)
	e := NewEngine(dungeon, entity.NewPlayer(0, 0), rng)
	e.screen = screen
	e.renderer = ui.NewRenderer(screen)
	return e, nil
}

// Mode returns the active input mode.
func (e *Engine) Mode() Mode {
	return e.mode
}

// SetMode replaces the active mode. The previous mode and its transient
// state are discarded.
func (e *Engine) SetMode(m Mode) {
	e.mode = m
}

// Running reports whether the run loop should keep accepting events.
func (e *Engine) Running() bool {
	return e.running
}

// Run initializes the world and executes the main event loop: render, block
// for one event, dispatch it, repeat. One event is fully resolved before the
// next is accepted.
func (e *Engine) Run(ctx context.Context) error {
	e.setup(ctx)

	for e.running {
		e.render()
		e.HandleEvent(ctx, e.screen.PollEvent())
	}

	e.screen.Close()
	return nil
}

// setup generates the dungeon, places the player, and spawns the inhabitants.
func (e *Engine) setup(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "game.init")
	defer span.End()

	e.Dungeon.Generate(ctx)

	if len(e.Dungeon.Rooms) > 0 {
		e.Player.X, e.Player.Y = e.Dungeon.Rooms[0].Center()
	} else {
		// Fallback: place in center of map
		e.Player.X, e.Player.Y = e.Dungeon.Width/2, e.Dungeon.Height/2
	}

	e.spawnMonsters()
	e.spawnItems()

	e.Log.Add("Hello and welcome, adventurer, to yet another dungeon!", e.Palette.Welcome)
	e.updateFOV(ctx)

	span.SetAttributes(
		attribute.Int("dungeon.rooms", len(e.Dungeon.Rooms)),
		attribute.Int("spawn.monsters", len(e.Monsters)),
		attribute.Int("spawn.items", len(e.Items)),
		attribute.String("player.id", e.Player.ID.String()),
	)
}

// spawnMonsters fills every room except the starting one with monsters drawn
// from the weighted registry.
func (e *Engine) spawnMonsters() {
	registry := gamedata.MustLoadMonsterRegistry()

	for i := 1; i < len(e.Dungeon.Rooms); i++ {
		count := e.rng.Intn(maxMonstersPerRoom + 1)
		for j := 0; j < count; j++ {
			x, y := e.Dungeon.RandomPointInRoom(i)
			if e.BlockingActorAt(x, y) != nil {
				continue
			}
			if def := registry.SpawnRandom(e.rng); def != nil {
				e.Monsters = append(e.Monsters, entity.NewMonster(def, x, y))
			}
		}
	}
}

// spawnItems scatters floor items through the rooms beyond the first.
func (e *Engine) spawnItems() {
	defs := gamedata.MustLoadItems()
	if len(defs) == 0 {
		return
	}

	for i := 1; i < len(e.Dungeon.Rooms); i++ {
		count := e.rng.Intn(maxItemsPerRoom)
		for j := 0; j < count; j++ {
			x, y := e.Dungeon.RandomPointInRoom(i)
			if e.ItemAt(x, y) != nil {
				continue
			}
			e.Items = append(e.Items, entity.NewItem(pickWeightedItem(e.rng, defs), x, y))
		}
	}
}

// pickWeightedItem selects an item definition by spawn weight.
func pickWeightedItem(rng *rand.Rand, defs []gamedata.ItemDef) *gamedata.ItemDef {
	total := 0
	for i := range defs {
		total += defs[i].SpawnWeight
	}
	if total <= 0 {
		return &defs[0]
	}

	roll := rng.Intn(total)
	cumulative := 0
	for i := range defs {
		cumulative += defs[i].SpawnWeight
		if roll < cumulative {
			return &defs[i]
		}
	}
	return &defs[0]
}

// BlockingActorAt returns the live actor occupying the tile, or nil.
// The player counts as a blocking actor.
func (e *Engine) BlockingActorAt(x, y int) *entity.Actor {
	if e.Player.Blocks && e.Player.X == x && e.Player.Y == y {
		return e.Player
	}
	for _, m := range e.Monsters {
		if m.Blocks && m.X == x && m.Y == y {
			return m
		}
	}
	return nil
}

// ItemAt returns the item lying on the tile, or nil.
func (e *Engine) ItemAt(x, y int) *entity.Item {
	for _, item := range e.Items {
		if item.X == x && item.Y == y {
			return item
		}
	}
	return nil
}

// removeItem takes an item off the floor.
func (e *Engine) removeItem(item *entity.Item) {
	for i, it := range e.Items {
		if it == item {
			e.Items = append(e.Items[:i], e.Items[i+1:]...)
			return
		}
	}
}

// meleeAttack resolves one melee swing and logs the outcome.
func (e *Engine) meleeAttack(attacker, defender *entity.Actor) {
	damage := attacker.Power - defender.Defense

	style := e.Palette.EnemyAttack
	if attacker == e.Player {
		style = e.Palette.PlayerAttack
	}

	desc := fmt.Sprintf("%s attacks %s", attacker.Name, defender.Name)
	if damage > 0 {
		e.Log.Add(fmt.Sprintf("%s for %d hit points.", desc, damage), style)
		defender.TakeDamage(damage)
	} else {
		e.Log.Add(fmt.Sprintf("%s but does no damage.", desc), style)
	}

	if !defender.IsAlive() {
		e.killActor(defender)
	}
}

// killActor handles an actor reaching zero HP. Player death is the only
// path into GameOver.
func (e *Engine) killActor(a *entity.Actor) {
	if a == e.Player {
		e.Log.Add("You died!", e.Palette.PlayerDie)
		e.SetMode(NewGameOver(e))
		return
	}

	e.Log.Add(fmt.Sprintf("%s is dead!", a.Name), e.Palette.EnemyDie)
	a.Die()
}

// handleEnemyTurns lets every visible live monster act: melee when adjacent
// to the player, otherwise one step closer.
func (e *Engine) handleEnemyTurns(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "turn.enemies")
	defer span.End()

	acted := 0
	for _, m := range e.Monsters {
		if !m.IsAlive() || !e.Dungeon.IsVisible(m.X, m.Y) {
			continue
		}
		acted++

		if m.DistanceTo(e.Player.X, e.Player.Y) <= 1 {
			e.meleeAttack(m, e.Player)
			continue
		}

		dx, dy := m.StepToward(e.Player.X, e.Player.Y)
		destX, destY := m.X+dx, m.Y+dy
		if e.Dungeon.IsPassable(destX, destY) && e.BlockingActorAt(destX, destY) == nil {
			m.Move(dx, dy)
		}
	}

	span.SetAttributes(attribute.Int("turn.monsters_acted", acted))
}

// updateFOV recomputes the player's field of visibility.
func (e *Engine) updateFOV(ctx context.Context) {
	e.Dungeon.ComputeFOV(ctx, e.Player.X, e.Player.Y, world.DefaultFOVRadius)
}

// render draws one full frame through the active mode.
func (e *Engine) render() {
	if e.renderer == nil {
		return
	}
	e.renderer.Clear()
	e.mode.Render(e.renderer)
	e.renderer.Show()
}

// renderWorld draws the base frame shared by every mode: map, entities, HUD,
// and the message window.
func (e *Engine) renderWorld(r *ui.Renderer) {
	r.RenderMap(e.Dungeon)
	r.RenderItems(e.Dungeon, e.Items)
	r.RenderActors(e.Dungeon, e.Monsters, e.Player)

	r.Print(0, ui.HUDRow, fmt.Sprintf("HP: %d/%d", e.Player.HP, e.Player.MaxHP), e.Palette.BarText)
	if names := e.namesAtPointer(); names != "" {
		r.Print(ui.LogX, ui.HUDRow, names, e.Palette.BarText)
	}

	e.Log.Render(r.Screen(), ui.LogX, ui.LogY, ui.LogWidth, ui.LogHeight)
}

// namesAtPointer lists what the pointer hovers over, if it is visible.
func (e *Engine) namesAtPointer() string {
	if !e.Dungeon.IsVisible(e.MouseX, e.MouseY) {
		return ""
	}

	var names []string
	for _, m := range e.Monsters {
		if m.X == e.MouseX && m.Y == e.MouseY {
			names = append(names, m.Name)
		}
	}
	for _, item := range e.Items {
		if item.X == e.MouseX && item.Y == e.MouseY {
			names = append(names, item.Name)
		}
	}
	return strings.Join(names, ", ")
}

package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/hollowdeep/internal/telemetry"
)

// DefaultFOVRadius is the sight radius used for the player.
const DefaultFOVRadius = 8

// ComputeFOV recomputes the field of visibility from the given origin.
// Rays are cast to every tile on the perimeter of the radius square; walls
// occlude tiles behind them but are themselves visible. Every visible tile is
// also marked explored, permanently.
func (d *Dungeon) ComputeFOV(ctx context.Context, originX, originY, radius int) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.compute_fov")
	defer span.End()

	for y := range d.visible {
		for x := range d.visible[y] {
			d.visible[y][x] = false
		}
	}

	if !d.InBounds(originX, originY) {
		span.SetAttributes(attribute.Bool("fov.origin_out_of_bounds", true))
		return
	}

	d.markVisible(originX, originY)

	for x := originX - radius; x <= originX+radius; x++ {
		d.castRay(originX, originY, x, originY-radius)
		d.castRay(originX, originY, x, originY+radius)
	}
	for y := originY - radius; y <= originY+radius; y++ {
		d.castRay(originX, originY, originX-radius, y)
		d.castRay(originX, originY, originX+radius, y)
	}

	span.SetAttributes(
		attribute.Int("fov.origin_x", originX),
		attribute.Int("fov.origin_y", originY),
		attribute.Int("fov.radius", radius),
		attribute.Int("fov.visible_tiles", d.countVisible()),
	)
}

// IsVisible returns true if the tile is in the current field of visibility.
func (d *Dungeon) IsVisible(x, y int) bool {
	if !d.InBounds(x, y) {
		return false
	}
	return d.visible[y][x]
}

// IsExplored returns true if the tile has ever been visible.
func (d *Dungeon) IsExplored(x, y int) bool {
	if !d.InBounds(x, y) {
		return false
	}
	return d.explored[y][x]
}

// markVisible flags a tile as visible and explored.
func (d *Dungeon) markVisible(x, y int) {
	if !d.InBounds(x, y) {
		return
	}
	d.visible[y][x] = true
	d.explored[y][x] = true
}

// castRay walks a Bresenham line from the origin toward (x1, y1), marking
// tiles visible until (and including) the first opaque tile.
func (d *Dungeon) castRay(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	x, y := x0, y0
	for {
		d.markVisible(x, y)
		if !d.IsTransparent(x, y) && !(x == x0 && y == y0) {
			return
		}
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// countVisible returns the number of currently visible tiles.
func (d *Dungeon) countVisible() int {
	count := 0
	for y := range d.visible {
		for x := range d.visible[y] {
			if d.visible[y][x] {
				count++
			}
		}
	}
	return count
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

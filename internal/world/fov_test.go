package world

import (
	"context"
	"math/rand"
	"testing"
)

// openDungeon builds a dungeon with every interior tile carved to floor.
func openDungeon(width, height int) *Dungeon {
	d := NewDungeon(width, height, rand.New(rand.NewSource(1)))
	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			d.Tiles[y][x] = TileFloor
		}
	}
	return d
}

func TestComputeFOVOriginVisible(t *testing.T) {
	d := openDungeon(20, 20)
	d.ComputeFOV(context.Background(), 10, 10, 4)

	if !d.IsVisible(10, 10) {
		t.Error("Origin should always be visible")
	}
	if !d.IsExplored(10, 10) {
		t.Error("Origin should be marked explored")
	}
}

func TestComputeFOVOpenArea(t *testing.T) {
	d := openDungeon(20, 20)
	d.ComputeFOV(context.Background(), 10, 10, 4)

	// With nothing in the way, nearby floor is visible
	for _, p := range [][2]int{{10, 6}, {10, 14}, {6, 10}, {14, 10}, {8, 8}} {
		if !d.IsVisible(p[0], p[1]) {
			t.Errorf("(%d,%d) should be visible in open area", p[0], p[1])
		}
	}

	// Beyond the radius square nothing is visible
	if d.IsVisible(10, 4) {
		t.Error("(10,4) is outside radius 4 and should not be visible")
	}
}

func TestComputeFOVWallsOcclude(t *testing.T) {
	d := openDungeon(20, 20)

	// Vertical wall segment two tiles east of the origin
	for y := 8; y <= 12; y++ {
		d.Tiles[y][12] = TileWall
	}

	d.ComputeFOV(context.Background(), 10, 10, 6)

	if !d.IsVisible(12, 10) {
		t.Error("The wall itself should be visible")
	}
	if d.IsVisible(14, 10) {
		t.Error("Tiles behind the wall should be occluded")
	}
}

func TestComputeFOVResetsVisibility(t *testing.T) {
	d := openDungeon(30, 10)

	ctx := context.Background()
	d.ComputeFOV(ctx, 5, 5, 3)
	if !d.IsVisible(5, 5) {
		t.Fatal("(5,5) should be visible from first origin")
	}

	// Move far away; old tiles leave the visible set but stay explored
	d.ComputeFOV(ctx, 24, 5, 3)
	if d.IsVisible(5, 5) {
		t.Error("(5,5) should no longer be visible after moving away")
	}
	if !d.IsExplored(5, 5) {
		t.Error("(5,5) should remain explored after moving away")
	}
}

func TestComputeFOVOutOfBoundsOrigin(t *testing.T) {
	d := openDungeon(10, 10)
	// Must not panic, and nothing becomes visible
	d.ComputeFOV(context.Background(), -5, -5, 4)

	if got := d.countVisible(); got != 0 {
		t.Errorf("countVisible() = %d after out-of-bounds origin, want 0", got)
	}
}

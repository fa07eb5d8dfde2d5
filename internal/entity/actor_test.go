package entity

import (
	"testing"

	"github.com/samdwyer/hollowdeep/internal/gamedata"
)

func TestNewMonsterFromDef(t *testing.T) {
	def := &gamedata.MonsterDef{
		ID:      "orc",
		Name:    "Orc",
		Glyph:   "o",
		Color:   "#3F7F3F",
		HP:      10,
		Power:   3,
		Defense: 0,
	}

	m := NewMonster(def, 4, 7)

	if m.Name != "Orc" || m.Glyph != 'o' {
		t.Errorf("NewMonster() = %q %q, want Orc 'o'", m.Name, string(m.Glyph))
	}
	if m.X != 4 || m.Y != 7 {
		t.Errorf("NewMonster() position = (%d,%d), want (4,7)", m.X, m.Y)
	}
	if m.HP != 10 || m.MaxHP != 10 {
		t.Errorf("NewMonster() HP = %d/%d, want 10/10", m.HP, m.MaxHP)
	}
	if !m.Blocks {
		t.Error("A live monster should block movement")
	}
	if m.ID == NewMonster(def, 0, 0).ID {
		t.Error("Each monster should get a unique ID")
	}
}

func TestTakeDamage(t *testing.T) {
	p := NewPlayer(0, 0)

	if got := p.TakeDamage(5); got != 5 {
		t.Errorf("TakeDamage(5) = %d, want 5", got)
	}
	if p.HP != 25 {
		t.Errorf("HP after 5 damage = %d, want 25", p.HP)
	}

	// Damage never takes HP below zero
	if got := p.TakeDamage(100); got != 25 {
		t.Errorf("TakeDamage(100) = %d, want 25 (clamped to remaining HP)", got)
	}
	if p.HP != 0 || p.IsAlive() {
		t.Errorf("HP = %d, IsAlive = %v; want 0, false", p.HP, p.IsAlive())
	}

	// Non-positive damage is a no-op
	if got := p.TakeDamage(-3); got != 0 {
		t.Errorf("TakeDamage(-3) = %d, want 0", got)
	}
}

func TestDie(t *testing.T) {
	def := &gamedata.MonsterDef{ID: "orc", Name: "Orc", Glyph: "o", Color: "#3F7F3F", HP: 1}
	m := NewMonster(def, 0, 0)

	m.TakeDamage(1)
	m.Die()

	if m.Blocks {
		t.Error("A corpse should not block movement")
	}
	if m.Glyph != '%' {
		t.Errorf("Corpse glyph = %q, want %%", string(m.Glyph))
	}
	if m.Name != "remains of Orc" {
		t.Errorf("Corpse name = %q, want %q", m.Name, "remains of Orc")
	}
}

func TestDistanceTo(t *testing.T) {
	a := NewPlayer(5, 5)

	tests := []struct {
		x, y int
		want int
	}{
		{5, 5, 0},
		{6, 5, 1},
		{6, 6, 1}, // Diagonal is adjacent
		{9, 5, 4},
		{2, 9, 4},
	}

	for _, tt := range tests {
		if got := a.DistanceTo(tt.x, tt.y); got != tt.want {
			t.Errorf("DistanceTo(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestStepToward(t *testing.T) {
	a := NewPlayer(5, 5)

	tests := []struct {
		x, y   int
		dx, dy int
	}{
		{9, 5, 1, 0},
		{0, 5, -1, 0},
		{5, 9, 0, 1},
		{9, 0, 1, -1}, // Both axes differ: diagonal step
		{5, 5, 0, 0},
	}

	for _, tt := range tests {
		dx, dy := a.StepToward(tt.x, tt.y)
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("StepToward(%d, %d) = (%d,%d), want (%d,%d)", tt.x, tt.y, dx, dy, tt.dx, tt.dy)
		}
	}
}

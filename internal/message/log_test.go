package message

import (
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// fakeSurface records every cell write for assertions.
type fakeSurface struct {
	cells map[[2]int]rune
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{cells: make(map[[2]int]rune)}
}

func (f *fakeSurface) SetContent(x, y int, r rune, _ tcell.Style) {
	f.cells[[2]int{x, y}] = r
}

func (f *fakeSurface) rowText(y, x, width int) string {
	out := make([]rune, 0, width)
	for col := x; col < x+width; col++ {
		r, ok := f.cells[[2]int{col, y}]
		if !ok {
			break
		}
		out = append(out, r)
	}
	return string(out)
}

func TestLogAddAppends(t *testing.T) {
	log := NewLog()
	style := tcell.StyleDefault

	log.Add("Hello and welcome, adventurer!", style)
	log.Add("The orc attacks.", style)

	if log.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", log.Len())
	}
	if log.Messages[0].Text != "Hello and welcome, adventurer!" {
		t.Errorf("First message = %q, ordering should be insertion order", log.Messages[0].Text)
	}
}

func TestLogAddStacksDuplicates(t *testing.T) {
	log := NewLog()
	style := tcell.StyleDefault

	log.Add("That way is blocked.", style)
	log.Add("That way is blocked.", style)
	log.Add("That way is blocked.", style)

	if log.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (duplicates should stack)", log.Len())
	}
	if got := log.Messages[0].FullText(); got != "That way is blocked. (x3)" {
		t.Errorf("FullText() = %q, want %q", got, "That way is blocked. (x3)")
	}

	// A different message breaks the stack
	log.Add("You wait.", style)
	log.Add("That way is blocked.", style)
	if log.Len() != 3 {
		t.Errorf("Len() = %d, want 3 after interleaving", log.Len())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  []string
	}{
		{"short", 10, []string{"short"}},
		{"two words", 9, []string{"two words"}},
		{"two words", 5, []string{"two", "words"}},
		{"", 10, []string{""}},
		{"abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
	}

	for _, tt := range tests {
		got := wrap(tt.text, tt.width)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("wrap(%q, %d) = %v, want %v", tt.text, tt.width, got, tt.want)
		}
	}
}

func TestRenderNewestAtBottom(t *testing.T) {
	log := NewLog()
	style := tcell.StyleDefault
	log.Add("first", style)
	log.Add("second", style)

	s := newFakeSurface()
	log.Render(s, 0, 0, 20, 5)

	if got := s.rowText(4, 0, 20); got != "second" {
		t.Errorf("Bottom row = %q, want %q", got, "second")
	}
	if got := s.rowText(3, 0, 20); got != "first" {
		t.Errorf("Row above = %q, want %q", got, "first")
	}
}

func TestRenderSliceRestrictsWindow(t *testing.T) {
	log := NewLog()
	style := tcell.StyleDefault
	for _, text := range []string{"one", "two", "three", "four"} {
		log.Add(text, style)
	}

	// Render only the first two messages (history scroll-back view)
	s := newFakeSurface()
	log.RenderSlice(s, 0, 0, 20, 10, log.Messages[:2])

	if got := s.rowText(9, 0, 20); got != "two" {
		t.Errorf("Bottom row = %q, want %q", got, "two")
	}
	if got := s.rowText(8, 0, 20); got != "one" {
		t.Errorf("Row above = %q, want %q", got, "one")
	}
	if got := s.rowText(7, 0, 20); got != "" {
		t.Errorf("Row above slice = %q, want empty", got)
	}
}

func TestRenderTruncatesWhenWindowFull(t *testing.T) {
	log := NewLog()
	style := tcell.StyleDefault
	for _, text := range []string{"one", "two", "three"} {
		log.Add(text, style)
	}

	s := newFakeSurface()
	log.Render(s, 0, 0, 20, 2)

	if got := s.rowText(1, 0, 20); got != "three" {
		t.Errorf("Bottom row = %q, want %q", got, "three")
	}
	if got := s.rowText(0, 0, 20); got != "two" {
		t.Errorf("Top row = %q, want %q", got, "two")
	}
	// "one" must not appear anywhere
	for pos := range s.cells {
		if pos[1] < 0 {
			t.Errorf("Rendered outside window at %v", pos)
		}
	}
}

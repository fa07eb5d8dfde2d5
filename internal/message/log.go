// Package message provides the append-only styled message log.
package message

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Surface is the minimal drawing target the log renders onto.
// ui.Screen satisfies it.
type Surface interface {
	SetContent(x, y int, r rune, style tcell.Style)
}

// Message is a single log entry. Entries are never mutated after insertion
// except for the repetition count, which grows when the same text is added
// again back-to-back.
type Message struct {
	Text  string
	Style tcell.Style
	Count int
}

// FullText returns the message text with a repetition suffix when stacked.
func (m *Message) FullText() string {
	if m.Count > 1 {
		return fmt.Sprintf("%s (x%d)", m.Text, m.Count)
	}
	return m.Text
}

// Log is an ordered, append-only sequence of messages.
type Log struct {
	Messages []Message
}

// NewLog creates an empty message log.
func NewLog() *Log {
	return &Log{Messages: make([]Message, 0, 64)}
}

// Add appends a message with the given style. If the text matches the most
// recent entry, that entry's count is incremented instead of appending a
// duplicate; ordering is never changed.
func (l *Log) Add(text string, style tcell.Style) {
	if n := len(l.Messages); n > 0 && l.Messages[n-1].Text == text {
		l.Messages[n-1].Count++
		return
	}
	l.Messages = append(l.Messages, Message{Text: text, Style: style, Count: 1})
}

// Len returns the number of entries in the log.
func (l *Log) Len() int {
	return len(l.Messages)
}

// Render draws the newest messages into the (x, y, width, height) window.
func (l *Log) Render(s Surface, x, y, width, height int) {
	l.RenderSlice(s, x, y, width, height, l.Messages)
}

// RenderSlice draws the given messages into the window, newest at the bottom,
// word-wrapping long lines and walking backward until the window is full.
func (l *Log) RenderSlice(s Surface, x, y, width, height int, messages []Message) {
	if width <= 0 || height <= 0 {
		return
	}

	yOffset := height - 1

	for i := len(messages) - 1; i >= 0; i-- {
		msg := messages[i]
		lines := wrap(msg.FullText(), width)

		// Lines of one message render top-to-bottom, so place them from
		// the bottom of the remaining window upward.
		for j := len(lines) - 1; j >= 0; j-- {
			if yOffset < 0 {
				return
			}
			printLine(s, x, y+yOffset, lines[j], msg.Style)
			yOffset--
		}
	}
}

// printLine writes a single line of text starting at (x, y).
func printLine(s Surface, x, y int, text string, style tcell.Style) {
	col := x
	for _, r := range text {
		s.SetContent(col, y, r, style)
		col++
	}
}

// wrap splits text into lines no wider than width, breaking on spaces.
// Words longer than the width are split mid-word.
func wrap(text string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
	}

	for _, word := range strings.Fields(text) {
		for len(word) > width {
			flush()
			lines = append(lines, word[:width])
			word = word[width:]
		}
		switch {
		case current.Len() == 0:
			current.WriteString(word)
		case current.Len()+1+len(word) <= width:
			current.WriteByte(' ')
			current.WriteString(word)
		default:
			flush()
			current.WriteString(word)
		}
	}
	flush()

	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

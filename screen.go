package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-runewidth"
)

// Screen holds the viewport dimensions and owns the escape-sequence draw
// primitives. Everything is a targeted single-row operation; there is no
// full-screen repaint after startup, so drawing cost is independent of the
// buffer size. Cursor repositioning is always issued as its own primitive.
type Screen struct {
	screenCols  int
	screenLines int
	w           io.Writer
}

func NewScreen() *Screen {
	return &Screen{w: os.Stdout}
}

// ClearRow erases the row at y.
func (s *Screen) ClearRow(y int) {
	if y < 0 {
		return
	}
	fmt.Fprintf(s.w, "\x1b[%d;H\x1b[2K", y+1)
}

// SetCursor moves the cursor to (x, y), 0-based.
func (s *Screen) SetCursor(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	fmt.Fprintf(s.w, "\x1b[%d;%dH", y+1, x+1)
}

// Print clears the row at y and prints text at (x, y), wrapped in color
// when one is given.
func (s *Screen) Print(x, y int, color, text string) {
	if x < 0 || y < 0 {
		return
	}
	fmt.Fprintf(s.w, "\x1b[%d;%dH\x1b[2K", y+1, x+1)
	if color != "" {
		io.WriteString(s.w, color)
	}
	io.WriteString(s.w, text)
	if color != "" {
		io.WriteString(s.w, RESET)
	}
}

// Printf is Print with formatting.
func (s *Screen) Printf(x, y int, color, format string, args ...any) {
	s.Print(x, y, color, fmt.Sprintf(format, args...))
}

// ShowMessage prints a message on the reserved status row, truncated to the
// display width so a long error never wraps onto the text rows.
func (s *Screen) ShowMessage(color, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if s.screenCols > 0 {
		msg = runewidth.Truncate(msg, s.screenCols, "")
	}
	s.Print(0, s.screenLines-1, color, msg)
}

// ClearMessage erases the status row.
func (s *Screen) ClearMessage() {
	s.ClearRow(s.screenLines - 1)
}

package main

import (
	"github.com/slzatz/govi/terminal"
)

// Cursor movement shared by NORMAL and INSERT mode. Vertical moves re-clamp
// the column to the target row's length; vertical bounds reserve the last
// screen row for the status/command line.

func (e *Editor) cursorUp() {
	if e.cy > 0 {
		e.cy--
		if l := e.buf.RowLen(e.cy); e.cx > l {
			e.cx = l
		}
		e.screen.SetCursor(e.cx, e.cy)
	}
}

func (e *Editor) cursorDown() {
	if e.cy < e.screen.screenLines-2 {
		e.cy++
		if l := e.buf.RowLen(e.cy); e.cx > l {
			e.cx = l
		}
		e.screen.SetCursor(e.cx, e.cy)
	}
}

func (e *Editor) cursorRight() {
	if e.cx < e.screen.screenCols-1 && e.cx < e.buf.RowLen(e.cy) {
		e.cx++
		e.screen.SetCursor(e.cx, e.cy)
	}
}

func (e *Editor) cursorLeft() {
	if e.cx > 0 {
		e.cx--
		e.screen.SetCursor(e.cx, e.cy)
	}
}

func (e *Editor) cursorStart() {
	e.cx = 0
	e.screen.SetCursor(e.cx, e.cy)
}

func (e *Editor) cursorEnd() {
	l := e.buf.RowLen(e.cy)
	if l > 0 {
		l--
	}
	e.cx = l
	e.screen.SetCursor(e.cx, e.cy)
}

func (e *Editor) cursorStartNextRow() {
	if e.cy < e.screen.screenLines-2 {
		e.cx = 0
		e.cy++
		e.screen.SetCursor(e.cx, e.cy)
	}
}

func (e *Editor) cursorEndPreviousRow() {
	if e.cy > 0 {
		e.cy--
		e.cx = e.buf.RowLen(e.cy)
		e.screen.SetCursor(e.cx, e.cy)
	}
}

// keyNormal handles one key in NORMAL mode.
func (e *Editor) keyNormal(ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyArrowUp:
		e.cursorUp()
	case terminal.KeyArrowDown:
		e.cursorDown()
	case terminal.KeyArrowRight:
		e.cursorRight()
	case terminal.KeyArrowLeft:
		e.cursorLeft()
	case terminal.KeyEnter:
		e.cursorStartNextRow()
	case terminal.KeyBackspace:
		// move to the previous character, wrapping to the end of the
		// previous row from column 0
		if e.cx == 0 && e.cy > 0 {
			e.cursorEndPreviousRow()
		} else {
			e.cursorLeft()
		}
	case terminal.KeyChar:
		switch ev.Ch {
		case 'h':
			e.cursorLeft()
		case 'j':
			e.cursorDown()
		case 'k':
			e.cursorUp()
		case 'l':
			e.cursorRight()
		case '0':
			e.cursorStart()
		case '$':
			e.cursorEnd()
		case 'i':
			e.mode = INSERT
			e.screen.Print(0, e.statusRow(), "", "INSERT")
			e.screen.SetCursor(e.cx, e.cy)
		case 'a':
			e.cursorRight()
			e.mode = INSERT
			e.screen.Print(0, e.statusRow(), "", "INSERT")
			e.screen.SetCursor(e.cx, e.cy)
		case ':':
			e.mode = COMMAND_LINE
			e.storedx = e.cx
			e.cx = 1
			e.screen.Print(0, e.statusRow(), "", ":")
			e.screen.SetCursor(e.cx, e.statusRow())
		default:
			// unmapped characters do nothing in normal mode
		}
	default:
		// Esc and Delete have no normal-mode binding
	}
}

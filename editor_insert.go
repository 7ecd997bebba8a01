package main

import (
	"github.com/slzatz/govi/terminal"
)

// keyInsert handles one key in INSERT mode. Every buffer mutation redraws
// only the affected row and marks the buffer modified.
func (e *Editor) keyInsert(ev terminal.Event) {
	switch ev.Key {
	case terminal.KeyEsc:
		e.mode = NORMAL
		e.screen.ClearRow(e.statusRow())
		e.screen.SetCursor(e.cx, e.cy)
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
		// remove the character behind the cursor, if the cursor isn't
		// at the start of the row and the row has text
		if e.cx > 0 && e.buf.RowLen(e.cy) > 0 {
			e.modified = true
			e.buf.RemoveChar(e.cy, e.cx-1)
			e.drawRow(e.cy)
			e.cx--
			e.screen.SetCursor(e.cx, e.cy)
		}
	case terminal.KeyDelete:
		// remove the character at the cursor, if the row has text
		if e.buf.RowLen(e.cy) > 0 {
			e.modified = true
			e.buf.RemoveChar(e.cy, e.cx)
			e.drawRow(e.cy)
			e.screen.SetCursor(e.cx, e.cy)
		}
	case terminal.KeyChar:
		if e.cx < e.screen.screenCols-1 {
			e.modified = true
			e.buf.InsertChar(e.cy, e.cx, ev.Ch)
			e.drawRow(e.cy)
			e.cx++
			e.screen.SetCursor(e.cx, e.cy)
		}
	}
}

package main

import (
	"github.com/slzatz/govi/buffer"
	"github.com/slzatz/govi/terminal"
)

// Editor is the modal editing state machine: the text buffer, the cursor,
// the current mode, the command accumulator and the dirty/written flags.
type Editor struct {
	buf *buffer.Buffer
	cmd *buffer.Str // command accumulator, only live in COMMAND_LINE

	cx, cy  int // cursor position, 0-based
	storedx int // cx before entering command-line mode

	mode Mode

	fileName string // default target of :w / :wq
	modified bool   // buffer has unwritten changes
	written  bool   // at least one successful write this session
	done     bool   // main loop finishes when set

	screen *Screen
}

func NewEditor(screen *Screen, fileName string) *Editor {
	return &Editor{
		buf:      buffer.NewBuffer(buffer.InitialBufferRows),
		cmd:      buffer.NewStr(buffer.InitialCmdSize, buffer.CmdSizeIncrement),
		mode:     NORMAL,
		fileName: fileName,
		screen:   screen,
	}
}

// processKey routes one key event to the handler for the current mode.
func (e *Editor) processKey(ev terminal.Event) {
	switch e.mode {
	case COMMAND_LINE:
		e.keyCommandLine(ev)
	case INSERT:
		e.keyInsert(ev)
	case NORMAL:
		e.keyNormal(ev)
	}
}

// statusRow is the reserved last screen row.
func (e *Editor) statusRow() int {
	return e.screen.screenLines - 1
}

// drawRow reprints a single buffer row after a mutation. An absent row
// draws as a cleared row.
func (e *Editor) drawRow(y int) {
	text := ""
	if r := e.buf.Row(y); r != nil {
		text = r.String()
	}
	e.screen.Print(0, y, "", text)
}

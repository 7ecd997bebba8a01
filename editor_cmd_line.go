package main

import (
	"errors"
	"os"
	"strings"

	"github.com/slzatz/govi/terminal"
)

// keyCommandLine handles one key in COMMAND_LINE mode. The cursor lives on
// the status row with column 0 occupied by the ':' prompt, so the command
// accumulator index is always cx-1. Vertical movement is disabled.
func (e *Editor) keyCommandLine(ev terminal.Event) {
	row := e.statusRow()
	switch ev.Key {
	case terminal.KeyEsc:
		// discard the command and return to normal mode
		e.mode = NORMAL
		e.cmd.Reset()
		e.screen.ClearRow(row)
		e.cx = e.storedx
		e.screen.SetCursor(e.cx, e.cy)
	case terminal.KeyEnter:
		// execute, then return to normal mode whatever the outcome
		if e.execCmd() {
			e.screen.ClearRow(row)
		}
		e.mode = NORMAL
		e.cmd.Reset()
		e.cx = e.storedx
		e.screen.SetCursor(e.cx, e.cy)
	case terminal.KeyArrowRight:
		if e.cx < e.screen.screenCols-1 && e.cx-1 < e.cmd.Len() {
			e.cx++
			e.screen.SetCursor(e.cx, row)
		}
	case terminal.KeyArrowLeft:
		if e.cx > 1 {
			e.cx--
			e.screen.SetCursor(e.cx, row)
		}
	case terminal.KeyBackspace:
		if e.cx > 1 && e.cmd.Len() > 0 {
			e.cmd.RemoveChar(e.cx - 2)
			e.screen.Printf(0, row, "", ":%s", e.cmd)
			e.cx--
			e.screen.SetCursor(e.cx, row)
		}
	case terminal.KeyDelete:
		if e.cmd.Len() > 0 {
			e.cmd.RemoveChar(e.cx - 1)
			e.screen.Printf(0, row, "", ":%s", e.cmd)
			e.screen.SetCursor(e.cx, row)
		}
	case terminal.KeyChar:
		if e.cx > 0 && e.cx < e.screen.screenCols-1 {
			e.cmd.InsertChar(ev.Ch, e.cx-1)
			e.screen.Printf(0, row, "", ":%s", e.cmd)
			e.cx++
			e.screen.SetCursor(e.cx, row)
		}
	default:
		// arrows up/down have no command-line binding
	}
}

// cmdMatch reports whether the command text matches verb: the verb itself,
// optionally followed by a bang, terminated by end-of-string or a space.
// "q" and "q!" match verb "q"; "quit" does not; "wq!" matches verb "wq".
func cmdMatch(cmd, verb string) bool {
	if !strings.HasPrefix(cmd, verb) {
		return false
	}
	rest := strings.TrimPrefix(cmd[len(verb):], "!")
	return rest == "" || strings.HasPrefix(rest, " ")
}

// cmdBang reports whether a command matched by cmdMatch carries a bang.
func cmdBang(cmd, verb string) bool {
	return strings.HasPrefix(strings.TrimPrefix(cmd, verb), "!")
}

// cmdArg returns the first space-delimited token after the verb, or ""
// when the command ends at or before the space.
func cmdArg(cmd string) string {
	i := strings.IndexByte(cmd, ' ')
	if i < 0 {
		return ""
	}
	arg := strings.TrimLeft(cmd[i+1:], " ")
	if j := strings.IndexByte(arg, ' '); j >= 0 {
		arg = arg[:j]
	}
	return arg
}

// execCmd runs the accumulated command against the editor state. It
// reports whether the status row should be cleared; failed commands leave
// their message showing. Unrecognized verbs are accepted as a deliberate
// no-op.
func (e *Editor) execCmd() bool {
	cmd := e.cmd.String()
	switch {
	case cmdMatch(cmd, "q"):
		if !cmdBang(cmd, "q") && e.modified {
			e.screen.ShowMessage(RED, "buffer modified")
			return false
		}
		e.done = true

	case cmdMatch(cmd, "w"), cmdMatch(cmd, "wq"):
		quit := cmdMatch(cmd, "wq")
		bang := cmdBang(cmd, "w") || cmdBang(cmd, "wq")

		name := e.fileName
		if arg := cmdArg(cmd); arg != "" {
			name = arg
			if e.fileName == "" {
				// remember the name for later writes
				e.fileName = arg
			}
		}
		if name == "" {
			e.screen.ShowMessage(RED, "no file name specified")
			return false
		}

		// overwrite only when forced or after a successful write
		// this session; otherwise the create is exclusive
		if err := e.buf.WriteFile(name, bang || e.written); err != nil {
			if errors.Is(err, os.ErrExist) {
				e.screen.ShowMessage(RED, "file exists (add ! to override)")
			} else {
				e.screen.ShowMessage(RED, "writing to file failed: %s", err)
			}
			return false
		}
		e.modified = false
		e.written = true
		if quit {
			e.done = true
		}

	default:
		// unrecognized verbs are tolerated silently
	}
	return true
}

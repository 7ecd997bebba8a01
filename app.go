package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/slzatz/govi/terminal"
)

// App wires the terminal session, screen and editor together and owns the
// event loop and the fatal-error path.
type App struct {
	Session *terminal.Session
	Screen  *Screen
	Editor  *Editor
}

func CreateApp(fileName string) *App {
	screen := NewScreen()
	return &App{
		Session: terminal.NewSession(),
		Screen:  screen,
		Editor:  NewEditor(screen, fileName),
	}
}

var errTerminalTooSmall = errors.New("terminal height too low")

// updateWindowSize re-queries the terminal size, substituting the fallback
// dimensions when both the kernel query and the probe fail. A terminal too
// short to hold one text row plus the status row is fatal.
func (a *App) updateWindowSize() error {
	cols, rows, err := a.Session.Size()
	if err != nil {
		cols, rows = terminal.FallbackCols, terminal.FallbackRows
	}
	if rows < 2 {
		return errTerminalTooSmall
	}
	a.Screen.screenCols = cols
	a.Screen.screenLines = rows
	return nil
}

// resize handles a resize notification: new dimensions, then re-clamp the
// cursor in case the window shrank under it.
func (a *App) resize() error {
	if err := a.updateWindowSize(); err != nil {
		return err
	}
	e := a.Editor
	if e.cx >= a.Screen.screenCols-1 {
		e.cx = a.Screen.screenCols - 1
	}
	if e.cy >= a.Screen.screenLines-1 {
		e.cy = a.Screen.screenLines - 1
	}
	e.screen.SetCursor(e.cx, e.cy)
	return nil
}

// MainLoop blocks on one readiness wait at a time and dispatches events
// until the editor is done.
func (a *App) MainLoop() error {
	for !a.Editor.done {
		ev, err := a.Session.WaitEvent()
		if err != nil {
			return err
		}
		switch ev.Type {
		case terminal.EventResize:
			if err := a.resize(); err != nil {
				return err
			}
		case terminal.EventKey:
			a.Editor.processKey(ev)
		}
	}
	return nil
}

// die is the single fatal path: restore the terminal first, then report to
// stderr and exit non-zero. Session.Close is a no-op when the terminal was
// never altered.
func (a *App) die(err error) {
	a.Session.Close()
	fmt.Fprintf(os.Stderr, "govi: %s\n", err)
	os.Exit(1)
}

//go:build !windows

// Package terminal owns the raw-terminal session: the raw-mode lifecycle,
// the readiness wait on the input descriptor, decoding of multi-byte key
// sequences into events, and the window-size query with its escape-sequence
// fallback. The editor above it only ever sees Events.
package terminal

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/slzatz/govi/rawmode"
)

// EventType tags what a wait woke up for.
type EventType int

const (
	EventKey EventType = iota
	EventResize
)

// Key identifies a decoded keypress. KeyChar carries the byte in Event.Ch.
type Key int

const (
	KeyChar Key = iota
	KeyEsc
	KeyArrowUp
	KeyArrowDown
	KeyArrowRight
	KeyArrowLeft
	KeyEnter
	KeyBackspace
	KeyDelete
)

// Event is one terminal event: a resize notification or a decoded key.
type Event struct {
	Type EventType
	Key  Key
	Ch   byte
}

// Size reported when both the kernel query and the probe fail.
const (
	FallbackCols = 80
	FallbackRows = 24
)

// How long the escape-sequence size probe waits for the terminal's answer.
const probeTimeoutMs = 500

var ErrNotATerminal = errors.New("stdin and stdout must be a terminal")

// Session is the raw-terminal session. Open and Close bracket its lifetime;
// Close is safe to call from a fatal-error path and is idempotent.
type Session struct {
	in  int
	out int

	origTermios *unix.Termios
	origFlags   int

	// resize notification pipe; the write end is fed by the SIGWINCH
	// wiring (or by anything else on platforms without the signal) and
	// the read end participates in the readiness wait
	resizeR int
	resizeW int
	stop    func()

	open bool
}

func NewSession() *Session {
	return &Session{
		in:      int(os.Stdin.Fd()),
		out:     int(os.Stdout.Fd()),
		resizeR: -1,
		resizeW: -1,
	}
}

// Open verifies both standard streams are interactive, switches the input
// to raw non-blocking mode, wires the resize notification and clears the
// screen.
func (t *Session) Open() error {
	if !term.IsTerminal(t.in) || !term.IsTerminal(t.out) {
		return ErrNotATerminal
	}

	orig, err := rawmode.Enable(t.in)
	if err != nil {
		return fmt.Errorf("tcsetattr: %w", err)
	}
	t.origTermios = orig

	flags, err := rawmode.SetNonblock(t.in)
	if err != nil {
		rawmode.Restore(t.in, t.origTermios)
		return fmt.Errorf("fcntl: %w", err)
	}
	t.origFlags = flags

	var p [2]int
	if err := unix.Pipe(p[:]); err != nil {
		rawmode.RestoreFlags(t.in, t.origFlags)
		rawmode.Restore(t.in, t.origTermios)
		return fmt.Errorf("pipe: %w", err)
	}
	unix.SetNonblock(p[0], true)
	unix.SetNonblock(p[1], true)
	t.resizeR, t.resizeW = p[0], p[1]
	t.stop = t.notifyResize()

	t.Clear()
	t.open = true
	return nil
}

// Close restores the terminal attributes and blocking mode, tears down the
// resize wiring and clears the screen. Calling it twice, or on a session
// that never opened, does nothing.
func (t *Session) Close() {
	if !t.open {
		return
	}
	t.open = false

	if t.stop != nil {
		t.stop()
		t.stop = nil
	}
	unix.Close(t.resizeW)
	unix.Close(t.resizeR)
	t.resizeR, t.resizeW = -1, -1

	rawmode.RestoreFlags(t.in, t.origFlags)
	rawmode.Restore(t.in, t.origTermios)
	t.Clear()
}

// Clear erases the screen and homes the cursor.
func (t *Session) Clear() {
	unix.Write(t.out, []byte("\x1b[2J\x1b[;H"))
}

// WaitEvent blocks until input is readable or a resize notification
// arrives. Pending resize notifications are collapsed into a single
// EventResize, observed here and nowhere else, without consuming any input
// bytes.
func (t *Session) WaitEvent() (Event, error) {
	nfds := t.in
	if t.resizeR > nfds {
		nfds = t.resizeR
	}
	for {
		var fds unix.FdSet
		fds.Set(t.in)
		fds.Set(t.resizeR)

		n, err := unix.Select(nfds+1, &fds, nil, nil, nil)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return Event{}, fmt.Errorf("select: %w", err)
		}
		if n == 0 {
			continue
		}

		if fds.IsSet(t.resizeR) {
			t.drainResize()
			return Event{Type: EventResize}, nil
		}

		ev, ok, err := t.readKey()
		if err != nil {
			return Event{}, err
		}
		if !ok {
			// raced with another consumer or a spurious wakeup
			continue
		}
		return ev, nil
	}
}

// drainResize empties the notification pipe so any burst of resize signals
// collapses into the one event being reported.
func (t *Session) drainResize() {
	var buf [32]byte
	for {
		n, err := unix.Read(t.resizeR, buf[:])
		if n <= 0 || err != nil {
			return
		}
	}
}

// readKey reads and decodes one key. ok is false when no complete key could
// be produced from the bytes available this cycle.
func (t *Session) readKey() (Event, bool, error) {
	var rerr error
	next := func() (byte, bool) {
		b, ok, err := t.tryReadByte()
		if err != nil {
			rerr = err
		}
		return b, ok
	}
	for {
		c, ok, err := t.tryReadByte()
		if err != nil {
			return Event{}, false, err
		}
		if !ok {
			return Event{}, false, nil
		}
		key, ch, done := decodeKey(c, next)
		if rerr != nil {
			return Event{}, false, rerr
		}
		if done {
			return Event{Type: EventKey, Key: key, Ch: ch}, true, nil
		}
		// unrecognized sequence or unsupported byte: drop it
		// silently and resume reading
	}
}

// decodeKey maps a leading byte, plus whatever continuation bytes next can
// supply this cycle, to a key. done is false when the input should be
// dropped and reading resumed. A lone ESC with no continuation available is
// reported as KeyEsc: the disambiguation is timing-based, not a wait.
func decodeKey(c byte, next func() (byte, bool)) (key Key, ch byte, done bool) {
	switch {
	case c == 0x1b:
		c2, ok := next()
		if !ok {
			return KeyEsc, 0, true
		}
		if c2 != '[' {
			return 0, 0, false
		}
		c3, ok := next()
		if !ok {
			return 0, 0, false
		}
		switch c3 {
		case 'A':
			return KeyArrowUp, 0, true
		case 'B':
			return KeyArrowDown, 0, true
		case 'C':
			return KeyArrowRight, 0, true
		case 'D':
			return KeyArrowLeft, 0, true
		case '3':
			if c4, ok := next(); ok && c4 == '~' {
				return KeyDelete, 0, true
			}
		}
		return 0, 0, false
	case c == '\r':
		return KeyEnter, 0, true
	case c == 0x7f:
		return KeyBackspace, 0, true
	case c < 0x7f:
		return KeyChar, c, true
	}
	// bytes above DEL are unsupported single-byte input
	return 0, 0, false
}

// tryReadByte attempts a non-blocking one-byte read from the input
// descriptor. ok is false when no byte is available this cycle.
func (t *Session) tryReadByte() (byte, bool, error) {
	var b [1]byte
	for {
		n, err := unix.Read(t.in, b[:])
		if err == unix.EINTR {
			continue
		}
		if err == unix.EAGAIN {
			return 0, false, nil
		}
		if err != nil {
			return 0, false, fmt.Errorf("read: %w", err)
		}
		if n == 0 {
			return 0, false, nil
		}
		return b[0], true, nil
	}
}

// Size reports the terminal dimensions, preferring the kernel query and
// falling back to the cursor-report probe when that is unavailable or
// degenerate.
func (t *Session) Size() (cols, rows int, err error) {
	if ws, err := rawmode.GetWindowSize(); err == nil {
		return int(ws.Col), int(ws.Row), nil
	}
	return t.sizeProbe()
}

// sizeProbe moves the cursor to an extreme position and asks the terminal
// to report where it ended up, bounded by a sub-second timeout.
func (t *Session) sizeProbe() (cols, rows int, err error) {
	if _, err := unix.Write(t.out, []byte("\x1b[9999;9999H\x1b[6n")); err != nil {
		return 0, 0, fmt.Errorf("size probe: %w", err)
	}

	var fds unix.FdSet
	fds.Set(t.in)
	tv := unix.Timeval{Usec: probeTimeoutMs * 1000}
	n, err := unix.Select(t.in+1, &fds, nil, nil, &tv)
	if err != nil {
		return 0, 0, fmt.Errorf("size probe select: %w", err)
	}
	if n < 1 {
		return 0, 0, errors.New("size probe: no report from terminal")
	}

	report := make([]byte, 0, 16)
	for len(report) < cap(report) {
		b, ok, err := t.tryReadByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			break
		}
		report = append(report, b)
		if b == 'R' {
			break
		}
	}
	return rawmode.ParseCursorReport(report)
}

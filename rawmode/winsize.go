package rawmode

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Winsize represents terminal window dimensions in a platform-agnostic way
type Winsize struct {
	Row    uint16
	Col    uint16
	Xpixel uint16
	Ypixel uint16
}

// GetWindowSize queries the kernel for the terminal dimensions of stdin.
// A degenerate answer (zero rows or columns) is reported as an error so the
// caller can fall back to the escape-sequence probe.
func GetWindowSize() (*Winsize, error) {
	ws, err := unix.IoctlGetWinsize(0, unix.TIOCGWINSZ)
	if err != nil {
		return nil, err
	}
	if ws.Row == 0 || ws.Col == 0 {
		return nil, fmt.Errorf("degenerate window size %dx%d", ws.Col, ws.Row)
	}
	return &Winsize{Row: ws.Row, Col: ws.Col, Xpixel: ws.Xpixel, Ypixel: ws.Ypixel}, nil
}

// ParseCursorReport parses a cursor position report, ESC [ row ; col R,
// as produced by the ESC [ 6 n probe.
func ParseCursorReport(report []byte) (cols, rows int, err error) {
	n, err := fmt.Sscanf(string(report), "\x1b[%d;%dR", &rows, &cols)
	if err != nil {
		return 0, 0, fmt.Errorf("bad cursor report %q: %w", report, err)
	}
	if n != 2 || cols <= 0 || rows <= 0 {
		return 0, 0, fmt.Errorf("bad cursor report %q", report)
	}
	return cols, rows, nil
}

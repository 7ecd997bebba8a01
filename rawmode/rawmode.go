//go:build !windows

// Package rawmode owns the low-level terminal attribute plumbing: raw-mode
// enable/restore via termios and the non-blocking flag on the input
// descriptor. Nothing here mutates global state; callers hold the snapshots
// and decide when to restore them.
package rawmode

import (
	"golang.org/x/sys/unix"
)

// Enable snapshots the current attributes of fd and switches it to raw
// mode: no echo, no line discipline, no signal-generating keys, 8-bit
// clean, one-byte minimum non-timed reads. The returned snapshot is what
// Restore expects back.
func Enable(fd int) (*unix.Termios, error) {
	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}

	raw := *orig
	raw.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cflag &^= unix.CSIZE | unix.PARENB
	raw.Cflag |= unix.CS8
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, err
	}
	return orig, nil
}

// Restore puts a snapshot taken by Enable back on fd.
func Restore(fd int, orig *unix.Termios) error {
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, orig)
}

// SetNonblock switches fd to non-blocking reads and returns the previous
// descriptor flags for RestoreFlags.
func SetNonblock(fd int) (int, error) {
	flags, err := unix.FcntlInt(uintptr(fd), unix.F_GETFL, 0)
	if err != nil {
		return 0, err
	}
	if _, err := unix.FcntlInt(uintptr(fd), unix.F_SETFL, flags|unix.O_NONBLOCK); err != nil {
		return 0, err
	}
	return flags, nil
}

// RestoreFlags puts descriptor flags saved by SetNonblock back on fd.
func RestoreFlags(fd, flags int) error {
	_, err := unix.FcntlInt(uintptr(fd), unix.F_SETFL, flags)
	return err
}

//go:build !windows

package terminal

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// notifyResize wires SIGWINCH into the session's resize pipe. The wait only
// ever watches the pipe, so a platform without the signal can inject resize
// notifications by writing to it instead. The returned function tears the
// wiring down.
func (t *Session) notifyResize() func() {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, unix.SIGWINCH)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for range ch {
			unix.Write(t.resizeW, []byte{0})
		}
	}()

	return func() {
		signal.Stop(ch)
		close(ch)
		<-done
	}
}

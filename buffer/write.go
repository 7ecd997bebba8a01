package buffer

import (
	"os"

	"golang.org/x/sys/unix"
)

// How many scatter-gather descriptors to batch per writev call.
const iovSize = 32

var newline = []byte{'\n'}

// WriteFile serializes rows 0..Len()-1 to name, each row followed by a
// newline; an absent row serializes as a bare newline. Writes are batched
// into iovSize iovec entries and flushed with writev whenever the batch
// fills, plus a final flush for the remainder.
//
// With overwrite the file is created or truncated; without it the create is
// exclusive and a preexisting target surfaces as os.ErrExist. Any failure
// aborts the write, which can leave the destination truncated.
func (b *Buffer) WriteFile(name string, overwrite bool) error {
	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	f, err := os.OpenFile(name, flags, 0666)
	if err != nil {
		return err
	}

	fd := int(f.Fd())
	iov := make([][]byte, 0, iovSize)
	flush := func() error {
		if len(iov) == 0 {
			return nil
		}
		if _, err := unix.Writev(fd, iov); err != nil {
			return &os.PathError{Op: "writev", Path: name, Err: err}
		}
		iov = iov[:0]
		return nil
	}
	push := func(p []byte) error {
		if len(iov) == iovSize {
			if err := flush(); err != nil {
				return err
			}
		}
		iov = append(iov, p)
		return nil
	}

	for i := 0; i < b.length; i++ {
		if r := b.rows[i]; r != nil {
			if err := push(r.Bytes()); err != nil {
				f.Close()
				return err
			}
		}
		if err := push(newline); err != nil {
			f.Close()
			return err
		}
	}
	if err := flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

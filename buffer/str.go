package buffer

// Growth policy constants. A row starts at 128 bytes and grows by 64; the
// command accumulator starts at 16 and grows by 16. The buffer starts with
// 32 row slots and grows by 16.
const (
	InitialRowSize   = 128
	RowSizeIncrement = 64

	InitialCmdSize   = 16
	CmdSizeIncrement = 16

	InitialBufferRows = 32
	BufSizeIncrement  = 16
)

// Str is a growable single-byte character sequence. Capacity is managed
// explicitly: the backing array grows by a fixed increment whenever the
// remaining capacity cannot hold one more character plus the spare
// terminator byte, so amortized append stays O(1) and arbitrary
// insert/remove are O(n).
type Str struct {
	b         []byte
	increment int
}

// NewStr returns an empty Str with the given initial capacity and growth
// increment.
func NewStr(size, increment int) *Str {
	return &Str{b: make([]byte, 0, size), increment: increment}
}

func (s *Str) Len() int { return len(s.b) }

func (s *Str) String() string { return string(s.b) }

// Bytes returns the backing slice. The caller must not hold it across a
// mutation.
func (s *Str) Bytes() []byte { return s.b }

// Reset empties the string, keeping the backing storage.
func (s *Str) Reset() { s.b = s.b[:0] }

// InsertChar inserts c at index, clamping index to the current length so an
// out-of-range insert appends. Interior inserts shift the tail right by one.
func (s *Str) InsertChar(c byte, index int) {
	if len(s.b)+1 >= cap(s.b) {
		grown := make([]byte, len(s.b), cap(s.b)+s.increment)
		copy(grown, s.b)
		s.b = grown
	}
	if index < 0 {
		index = 0
	}
	if index > len(s.b) {
		index = len(s.b)
	}
	s.b = s.b[:len(s.b)+1]
	copy(s.b[index+1:], s.b[index:])
	s.b[index] = c
}

// RemoveChar removes the character at index. Removing from an empty string
// is a no-op; an out-of-range index is clamped to the last character.
func (s *Str) RemoveChar(index int) {
	if len(s.b) == 0 {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > len(s.b)-1 {
		index = len(s.b) - 1
	}
	copy(s.b[index:], s.b[index+1:])
	s.b = s.b[:len(s.b)-1]
}

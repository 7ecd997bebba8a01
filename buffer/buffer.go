package buffer

// Buffer is a sparse, growable array of rows. A nil slot is an absent row,
// which is distinct from a present-but-empty row: both render as a blank
// line but only the latter owns storage. Length is 1 + the highest present
// index, or 0 when nothing is present.
type Buffer struct {
	rows   []*Str
	length int
}

// NewBuffer returns a buffer with size absent row slots.
func NewBuffer(size int) *Buffer {
	return &Buffer{rows: make([]*Str, size)}
}

func roundUpTo(x, multiple int) int {
	return (x + multiple - 1) / multiple * multiple
}

// Len returns 1 + the highest present row index, or 0.
func (b *Buffer) Len() int { return b.length }

// Size returns the current slot capacity.
func (b *Buffer) Size() int { return len(b.rows) }

// Row returns the row at index, or nil when the row is absent or the index
// is out of range.
func (b *Buffer) Row(row int) *Str {
	if row < 0 || row >= len(b.rows) {
		return nil
	}
	return b.rows[row]
}

// RowLen returns the length of a row, or 0 when it is absent.
func (b *Buffer) RowLen(row int) int {
	if r := b.Row(row); r != nil {
		return r.Len()
	}
	return 0
}

// Resize grows or shrinks the buffer to exactly size slots. Growing
// preserves existing rows and leaves the new slots absent. Shrinking
// releases every row at index >= size and recomputes the length by scanning
// backward for the last present slot.
func (b *Buffer) Resize(size int) {
	if size < 0 || size == len(b.rows) {
		return
	}
	if size < len(b.rows) {
		for i := size; i < len(b.rows); i++ {
			b.rows[i] = nil
		}
		b.rows = b.rows[:size]
		if b.length > size {
			b.length = size
			for b.length > 0 && b.rows[b.length-1] == nil {
				b.length--
			}
		}
		return
	}
	grown := make([]*Str, size)
	copy(grown, b.rows)
	b.rows = grown
}

// InsertChar inserts c at (row, col), growing the slot array to the
// smallest increment multiple that covers row and lazily allocating a fresh
// single-character row when the slot is absent.
func (b *Buffer) InsertChar(row, col int, c byte) {
	if row < 0 {
		return
	}
	if row >= len(b.rows) {
		b.Resize(roundUpTo(row+1, BufSizeIncrement))
	}
	if row >= b.length {
		b.length = row + 1
	}
	if b.rows[row] == nil {
		r := NewStr(InitialRowSize, RowSizeIncrement)
		r.InsertChar(c, 0)
		b.rows[row] = r
		return
	}
	b.rows[row].InsertChar(c, col)
}

// RemoveChar removes the character at (row, col). Absent and out-of-range
// rows are a no-op.
func (b *Buffer) RemoveChar(row, col int) {
	if row >= 0 && row < len(b.rows) && b.rows[row] != nil {
		b.rows[row].RemoveChar(col)
	}
}

package buffer

import (
	"testing"
)

func TestBufferInsertChar(t *testing.T) {
	t.Run("Insert grows to increment multiple", func(t *testing.T) {
		b := NewBuffer(InitialBufferRows)
		b.InsertChar(100, 0, 'x')
		if b.Size() < 101 {
			t.Errorf("size %d does not cover row 100", b.Size())
		}
		if b.Size()%BufSizeIncrement != 0 {
			t.Errorf("size %d not a multiple of %d", b.Size(), BufSizeIncrement)
		}
		if b.Len() != 101 {
			t.Errorf("len %d, want 101", b.Len())
		}
		if got := b.RowLen(100); got != 1 {
			t.Errorf("row 100 len %d, want 1", got)
		}
	})

	t.Run("Insert at capacity boundary", func(t *testing.T) {
		b := NewBuffer(InitialBufferRows)
		b.InsertChar(InitialBufferRows, 0, 'x')
		if b.Size() < InitialBufferRows+1 {
			t.Errorf("size %d does not cover row %d", b.Size(), InitialBufferRows)
		}
	})

	t.Run("Absent row allocates single character", func(t *testing.T) {
		b := NewBuffer(InitialBufferRows)
		// column is irrelevant for a fresh row
		b.InsertChar(3, 7, 'z')
		if got := b.Row(3).String(); got != "z" {
			t.Errorf("row 3 = %q, want %q", got, "z")
		}
	})

	t.Run("Present row delegates to string insert", func(t *testing.T) {
		b := NewBuffer(InitialBufferRows)
		for i, c := range []byte("hello") {
			b.InsertChar(0, i, c)
		}
		b.InsertChar(0, 0, '>')
		if got := b.Row(0).String(); got != ">hello" {
			t.Errorf("row 0 = %q, want %q", got, ">hello")
		}
	})
}

func TestBufferRemoveChar(t *testing.T) {
	b := NewBuffer(InitialBufferRows)
	for i, c := range []byte("abc") {
		b.InsertChar(1, i, c)
	}

	t.Run("Absent and out-of-range rows are no-ops", func(t *testing.T) {
		b.RemoveChar(0, 0)
		b.RemoveChar(500, 0)
		b.RemoveChar(-1, 0)
		if got := b.Row(1).String(); got != "abc" {
			t.Errorf("row 1 = %q, want %q", got, "abc")
		}
	})

	t.Run("Removal leaves a present empty row", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			b.RemoveChar(1, 0)
		}
		if b.Row(1) == nil {
			t.Fatal("row 1 became absent, want present and empty")
		}
		if b.RowLen(1) != 0 {
			t.Errorf("row 1 len %d, want 0", b.RowLen(1))
		}
		// an emptied row still counts toward the buffer length
		if b.Len() != 2 {
			t.Errorf("len %d, want 2", b.Len())
		}
	})
}

func TestBufferLenInvariant(t *testing.T) {
	// len is always 1 + the highest present row index, or 0
	b := NewBuffer(InitialBufferRows)
	if b.Len() != 0 {
		t.Fatalf("empty buffer len %d, want 0", b.Len())
	}
	b.InsertChar(5, 0, 'x')
	if b.Len() != 6 {
		t.Errorf("len %d, want 6", b.Len())
	}
	b.InsertChar(2, 0, 'y')
	if b.Len() != 6 {
		t.Errorf("len %d after lower insert, want 6", b.Len())
	}
	b.InsertChar(40, 0, 'z')
	if b.Len() != 41 {
		t.Errorf("len %d, want 41", b.Len())
	}
}

func TestBufferResize(t *testing.T) {
	t.Run("Shrink frees trimmed rows and recomputes len", func(t *testing.T) {
		b := NewBuffer(InitialBufferRows)
		b.InsertChar(2, 0, 'a')
		b.InsertChar(10, 0, 'b')
		b.InsertChar(20, 0, 'c')

		b.Resize(8)
		if b.Size() != 8 {
			t.Errorf("size %d, want 8", b.Size())
		}
		if b.Len() != 3 {
			t.Errorf("len %d, want 3 (highest present row is 2)", b.Len())
		}
		if b.Row(2) == nil {
			t.Error("row 2 should survive the shrink")
		}
	})

	t.Run("Shrink below any present row yields len 0", func(t *testing.T) {
		b := NewBuffer(InitialBufferRows)
		b.InsertChar(5, 0, 'x')
		b.Resize(4)
		if b.Len() != 0 {
			t.Errorf("len %d, want 0", b.Len())
		}
	})

	t.Run("Grow preserves rows and leaves new slots absent", func(t *testing.T) {
		b := NewBuffer(4)
		b.InsertChar(1, 0, 'k')
		b.Resize(64)
		if got := b.Row(1).String(); got != "k" {
			t.Errorf("row 1 = %q, want %q", got, "k")
		}
		for i := 4; i < 64; i++ {
			if b.Row(i) != nil {
				t.Fatalf("row %d present after grow, want absent", i)
			}
		}
	})
}

func TestBufferRowLen(t *testing.T) {
	b := NewBuffer(InitialBufferRows)
	if b.RowLen(3) != 0 {
		t.Errorf("absent row len %d, want 0", b.RowLen(3))
	}
	if b.RowLen(-1) != 0 || b.RowLen(1000) != 0 {
		t.Error("out-of-range rows should report length 0")
	}
	// net insertions minus removals still present
	for i, c := range []byte("abcd") {
		b.InsertChar(0, i, c)
	}
	b.RemoveChar(0, 1)
	if b.RowLen(0) != 3 {
		t.Errorf("row 0 len %d, want 3", b.RowLen(0))
	}
}

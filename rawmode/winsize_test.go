package rawmode

import "testing"

func TestParseCursorReport(t *testing.T) {
	t.Run("Valid report", func(t *testing.T) {
		cols, rows, err := ParseCursorReport([]byte("\x1b[24;80R"))
		if err != nil {
			t.Fatalf("ParseCursorReport: %v", err)
		}
		if cols != 80 || rows != 24 {
			t.Errorf("got %dx%d, want 80x24", cols, rows)
		}
	})

	t.Run("Garbage rejected", func(t *testing.T) {
		for _, bad := range []string{"", "\x1b[R", "\x1b[24R", "24;80R", "\x1b[a;bR"} {
			if _, _, err := ParseCursorReport([]byte(bad)); err == nil {
				t.Errorf("%q: expected error", bad)
			}
		}
	})
}

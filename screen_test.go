package hints

import (
	"slices"
	"strings"
	"testing"
)

// TestScreenPlainText verifies simple text appears in the composed screen.
func TestScreenPlainText(t *testing.T) {
	s := NewScreen(80, 24)
	s.Write([]byte("Hello, World!"))

	if got := s.Text(); !strings.Contains(got, "Hello, World!") {
		t.Errorf("screen missing text, got %q", got)
	}
}

// TestScreenStripsANSI verifies color escapes don't leak into the text
// block handed to a marker.
func TestScreenStripsANSI(t *testing.T) {
	s := NewScreen(80, 24)
	s.Write([]byte("\x1b[31mred\x1b[0m plain"))

	got := s.Text()
	if !strings.Contains(got, "red plain") {
		t.Errorf("screen missing content, got %q", got)
	}
	if strings.Contains(got, "\x1b[") {
		t.Errorf("escape codes leaked into screen text: %q", got)
	}
}

// TestScreenCursorPositioning verifies cursor-addressed writes compose into
// lines; this is the reason for emulating instead of stripping escapes.
func TestScreenCursorPositioning(t *testing.T) {
	s := NewScreen(80, 24)
	s.Write([]byte("\x1b[2;1HWorld"))
	s.Write([]byte("\x1b[1;1HHello"))

	lines := strings.Split(s.Text(), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected two lines, got %q", lines)
	}
	if lines[0] != "Hello" || lines[1] != "World" {
		t.Errorf("lines = %q, want Hello then World", lines)
	}
}

// TestScreenTrimsTrailing verifies trailing blank rows and padding don't
// inflate the text block (they would put line-end offsets past the visible
// content).
func TestScreenTrimsTrailing(t *testing.T) {
	s := NewScreen(80, 24)
	s.Write([]byte("only line"))

	if got := s.Text(); got != "only line" {
		t.Errorf("Text() = %q, want %q", got, "only line")
	}
}

// TestScreenEmpty verifies a fresh screen yields an empty text block.
func TestScreenEmpty(t *testing.T) {
	s := NewScreen(80, 24)
	if got := s.Text(); got != "" {
		t.Errorf("Text() = %q, want empty", got)
	}
}

// TestScreenFeedsEntries runs a composed screen through the entry marker:
// the path the overlay host actually takes. Note a one-space sentinel line
// cannot survive a screen round trip, since blank rows are trimmed; entry
// emission doesn't depend on it.
func TestScreenFeedsEntries(t *testing.T) {
	s := NewScreen(80, 24)
	s.Write([]byte("pick one:\r\n: first choice\r\n: second choice\r\n"))

	marks := slices.Collect(Entries(s.Text(), nil))
	if len(marks) != 2 {
		t.Fatalf("got %d marks, want 2: %+v", len(marks), marks)
	}
	if marks[0].Text != ": first choice" || marks[0].Index != 0 {
		t.Errorf("first mark = %+v", marks[0])
	}
	if marks[1].Text != ": second choice" || marks[1].Index != 1 {
		t.Errorf("second mark = %+v", marks[1])
	}
}

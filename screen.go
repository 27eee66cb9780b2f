package hints

import (
	"strings"

	"github.com/charmbracelet/x/vt"
)

// Screen produces the text block a marking strategy scans. Raw PTY output
// is full of ANSI sequences, and a TUI program's "lines" only exist after
// cursor moves and clears have been applied, so instead of stripping
// escapes we feed the bytes through a virtual terminal and read the
// composed screen: the offsets the marks report then correspond to text a
// human actually sees.
type Screen struct {
	emu *vt.SafeEmulator
}

// NewScreen creates a virtual terminal with the given dimensions, which
// should match the PTY the bytes come from.
func NewScreen(cols, rows int) *Screen {
	return &Screen{emu: vt.NewSafeEmulator(cols, rows)}
}

// Write feeds raw PTY output into the virtual terminal. It satisfies
// io.Writer so the PTY can be copied straight into the screen.
func (s *Screen) Write(p []byte) (int, error) {
	return s.emu.Write(p)
}

// Resize changes the virtual terminal dimensions.
func (s *Screen) Resize(cols, rows int) {
	s.emu.Resize(cols, rows)
}

// Text returns the composed screen as plain text: trailing whitespace
// trimmed from each line, trailing blank lines dropped. This is the block
// handed to a marking strategy; trimming keeps line-end offsets at the end
// of the visible content instead of the emulator's column count.
func (s *Screen) Text() string {
	lines := strings.Split(s.emu.String(), "\n")
	last := -1
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimRight(lines[i], " \t\r") != "" {
			last = i
			break
		}
	}
	if last < 0 {
		return ""
	}
	for i := 0; i <= last; i++ {
		lines[i] = strings.TrimRight(lines[i], " \t\r")
	}
	return strings.Join(lines[:last+1], "\n")
}

package hints

import "strings"

// ANSI styling for the overlay: the hint key in bold green, the marked
// span in reverse video.
const (
	keyStyle  = "\x1b[1;32m"
	markStyle = "\x1b[7m"
	resetText = "\x1b[0m"
)

// Render returns text with every mark's span highlighted and prefixed by
// its hint key, ready to print to a terminal. Marks must be in increasing
// Start order and non-overlapping, which is how the strategies in this
// package produce them; a mark whose offsets fall outside the text or
// behind an earlier mark is skipped rather than corrupting the output.
func Render(text string, marks []Mark, opts *Options) string {
	alphabet := opts.alphabet()
	var b strings.Builder
	pos := 0
	for _, m := range marks {
		if m.Start < pos || m.Start > m.End || m.End > len(text) {
			continue
		}
		b.WriteString(text[pos:m.Start])
		b.WriteString(keyStyle)
		b.WriteString(EncodeKey(m.Index, alphabet))
		b.WriteString(resetText)
		b.WriteString(markStyle)
		b.WriteString(text[m.Start:m.End])
		b.WriteString(resetText)
		pos = m.End
	}
	b.WriteString(text[pos:])
	return b.String()
}

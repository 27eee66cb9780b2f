// Package hints classifies terminal text into keyboard-selectable marks.
//
// A host overlay (the thing that draws highlights on screen and maps a
// pressed key back to an action) hands a block of plain text to one of the
// marking strategies in this package and gets back a lazy sequence of Mark
// records: byte offsets into the original text plus a running index that
// the overlay turns into a hint key. The package never touches the screen
// itself; producing the text block (see Screen) and rendering the result
// (see Render) are separate concerns.
package hints

import (
	"iter"
	"regexp"
	"strings"
	"unicode"
)

// A Mark is one selectable region of the scanned text. Start and End are
// byte offsets of the region in the original text; Text is the region's
// content with NUL and newline characters removed.
type Mark struct {
	Index int `json:"index"`

	// ColonOffset is only set by Entries: the absolute offset of the first
	// ':' of the cleaned line. Zero for other strategies.
	ColonOffset int            `json:"colon_offset"`
	Start       int            `json:"start"`
	End         int            `json:"end"`
	Text        string         `json:"text"`
	Data        map[string]any `json:"data,omitempty"`
}

// Func is the signature shared by all marking strategies. Strategies that
// have no use for opts or the extra arguments still accept them, so the
// host can swap strategies without special-casing any of them.
type Func func(text string, opts *Options, extra ...string) iter.Seq[Mark]

// lineRe matches every line span of a text, empty lines included. Offsets
// of a match are absolute, which is what the marks need.
var lineRe = regexp.MustCompile(`(?m)^.*$`)

// lineCleaner strips characters that may be embedded in a line lifted out
// of a terminal buffer but carry no content.
var lineCleaner = strings.NewReplacer("\x00", "", "\n", "")

// Entries marks the "entry" lines of a choose-style listing: lines that,
// after trimming leading whitespace, start with ": " (colon, space).
//
// A line whose cleaned content is exactly one space is the start sentinel.
// Entry lines are emitted whether or not the sentinel has been seen, but
// once it has, every non-entry line consumes an index slot without being
// emitted. The producer of the text interleaves such lines deliberately
// (wrapped continuations, decorations), and the consumer's indices must
// stay aligned with them, so the counter advances even though nothing is
// yielded. Before the sentinel, non-entry lines are ignored outright.
//
// ColonOffset is the position of the cleaned line's first ':' added to the
// raw line start. When NULs precede the colon in the raw line the offset
// points before the raw colon; consumers depend on exactly this value, so
// it is not corrected here.
//
// opts and extra are accepted for signature uniformity and unused. A fresh
// call re-scans from the beginning; breaking out of the loop early is safe.
func Entries(text string, opts *Options, extra ...string) iter.Seq[Mark] {
	return func(yield func(Mark) bool) {
		idx := 0
		foundStartLine := false
		for _, span := range lineRe.FindAllStringIndex(text, -1) {
			start, end := span[0], span[1]
			line := lineCleaner.Replace(text[start:end])
			if line == " " {
				foundStartLine = true
				continue
			}
			if strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), ": ") {
				ok := yield(Mark{
					Index:       idx,
					ColonOffset: start + strings.IndexByte(line, ':'),
					Start:       start,
					End:         end,
					Text:        line,
					Data:        map[string]any{"index": idx},
				})
				if !ok {
					return
				}
				idx++
			} else if foundStartLine {
				// Skip this line, incrementing the index.
				idx++
			}
		}
	}
}

// Lines marks every line with visible content: each line whose cleaned,
// whitespace-trimmed text is non-empty becomes one mark spanning the whole
// line. opts and extra are accepted for signature uniformity and unused.
func Lines(text string, opts *Options, extra ...string) iter.Seq[Mark] {
	return func(yield func(Mark) bool) {
		idx := 0
		for _, span := range lineRe.FindAllStringIndex(text, -1) {
			start, end := span[0], span[1]
			line := lineCleaner.Replace(text[start:end])
			if strings.TrimSpace(line) == "" {
				continue
			}
			if !yield(Mark{Index: idx, Start: start, End: end, Text: line}) {
				return
			}
			idx++
		}
	}
}

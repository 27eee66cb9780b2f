package hints

import (
	"iter"
	"regexp"
)

// Pattern builds a marking strategy from a regular expression: every match
// in the text becomes one mark. When the expression has capture groups the
// first group is the marked span (so the expression can require context it
// doesn't want highlighted); named groups are copied into Mark.Data.
//
// Matches shorter than Options.MinimumMatchLength bytes are dropped and do
// not consume an index.
func Pattern(re *regexp.Regexp) Func {
	names := re.SubexpNames()
	return func(text string, opts *Options, extra ...string) iter.Seq[Mark] {
		return func(yield func(Mark) bool) {
			idx := 0
			minLen := opts.minimumMatchLength()
			for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
				start, end := m[0], m[1]
				if len(m) > 2 && m[2] >= 0 {
					start, end = m[2], m[3]
				}
				if end-start < minLen {
					continue
				}
				mark := Mark{
					Index: idx,
					Start: start,
					End:   end,
					Text:  lineCleaner.Replace(text[start:end]),
				}
				for i, name := range names {
					if name == "" || m[2*i] < 0 {
						continue
					}
					if mark.Data == nil {
						mark.Data = make(map[string]any)
					}
					mark.Data[name] = text[m[2*i]:m[2*i+1]]
				}
				if !yield(mark) {
					return
				}
				idx++
			}
		}
	}
}

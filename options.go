package hints

// DefaultAlphabet is the hint-key alphabet used when Options doesn't name
// one: digits first so the first ten hints are the number keys.
const DefaultAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// Options carries host configuration shared across marking strategies.
// Each strategy reads only the fields it cares about; Entries reads none
// of them, which is part of its contract.
type Options struct {
	// Alphabet is the set of keys hint indices are encoded with.
	// Empty means DefaultAlphabet.
	Alphabet string

	// MinimumMatchLength drops Pattern matches shorter than this many
	// bytes. Zero keeps everything.
	MinimumMatchLength int
}

// alphabet returns the configured alphabet, tolerating a nil receiver so
// strategies can be called with no options at all.
func (o *Options) alphabet() string {
	if o == nil || o.Alphabet == "" {
		return DefaultAlphabet
	}
	return o.Alphabet
}

// minimumMatchLength is nil-safe like alphabet.
func (o *Options) minimumMatchLength() int {
	if o == nil {
		return 0
	}
	return o.MinimumMatchLength
}

package hints

import "strings"

// EncodeKey converts a mark index into its hint key over the given
// alphabet: plain base-N with the alphabet as digit set, most significant
// digit first, so index 0 is the alphabet's first character and keys grow
// a character every len(alphabet) marks.
func EncodeKey(index int, alphabet string) string {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	d := len(alphabet)
	var b []byte
	for {
		r := index % d
		index /= d
		b = append(b, alphabet[r])
		if index == 0 {
			break
		}
	}
	// digits were produced least significant first
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

// DecodeKey is the inverse of EncodeKey. It returns -1 when the key
// contains a character outside the alphabet or is empty.
func DecodeKey(key, alphabet string) int {
	if alphabet == "" {
		alphabet = DefaultAlphabet
	}
	if key == "" {
		return -1
	}
	index := 0
	for _, c := range []byte(key) {
		i := strings.IndexByte(alphabet, c)
		if i < 0 {
			return -1
		}
		index = index*len(alphabet) + i
	}
	return index
}

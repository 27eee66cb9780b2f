package hints

import "testing"

// TestEncodeKey checks known encodings over a tiny alphabet where the
// base math is easy to eyeball.
func TestEncodeKey(t *testing.T) {
	tests := []struct {
		index    int
		alphabet string
		want     string
	}{
		{0, "ab", "a"},
		{1, "ab", "b"},
		{2, "ab", "ba"},
		{3, "ab", "bb"},
		{4, "ab", "baa"},
		{0, "", "0"},  // empty alphabet falls back to the default
		{10, "", "a"}, // first key after the digits
		{35, "", "z"},
		{36, "", "10"},
	}
	for _, tt := range tests {
		if got := EncodeKey(tt.index, tt.alphabet); got != tt.want {
			t.Errorf("EncodeKey(%d, %q) = %q, want %q", tt.index, tt.alphabet, got, tt.want)
		}
	}
}

// TestDecodeKey checks the inverse plus rejection of foreign characters.
func TestDecodeKey(t *testing.T) {
	if got := DecodeKey("bb", "ab"); got != 3 {
		t.Errorf("DecodeKey(bb) = %d, want 3", got)
	}
	if got := DecodeKey("", "ab"); got != -1 {
		t.Errorf("DecodeKey of empty key = %d, want -1", got)
	}
	if got := DecodeKey("a!", "ab"); got != -1 {
		t.Errorf("DecodeKey with foreign char = %d, want -1", got)
	}
}

// TestKeyRoundTrip encodes and decodes a range of indices.
func TestKeyRoundTrip(t *testing.T) {
	for _, alphabet := range []string{DefaultAlphabet, "asdf", "01"} {
		for i := 0; i < 200; i++ {
			key := EncodeKey(i, alphabet)
			if got := DecodeKey(key, alphabet); got != i {
				t.Fatalf("round trip %d over %q: key %q decoded to %d", i, alphabet, key, got)
			}
		}
	}
}

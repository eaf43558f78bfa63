package dicomcharset

import "testing"

func TestEmitRuneRanges(t *testing.T) {
	cases := []struct {
		r    rune
		want []byte
	}{
		{'A', []byte{0x41}},
		{0xE9, []byte{0xC3, 0xA9}},       // é
		{0x6F22, []byte{0xE6, 0xBC, 0xA2}}, // 漢
		{0x10000, []byte{0xF0, 0x90, 0x80, 0x80}},
		{0x110000, []byte{0xEF, 0xBF, 0xBD}}, // out of range -> U+FFFD
	}
	for _, c := range cases {
		got := EmitRune(nil, c.r)
		if string(got) != string(c.want) {
			t.Errorf("EmitRune(%#x) = % X, want % X", c.r, got, c.want)
		}
	}
}

func TestDecodeRuneASCII(t *testing.T) {
	r, n := DecodeRune([]byte("A"), 0)
	if r != 'A' || n != 1 {
		t.Fatalf("got %d,%d", r, n)
	}
}

func TestDecodeRuneOverlongRejected(t *testing.T) {
	// 0xC0 0x80 is an overlong encoding of NUL.
	r, n := DecodeRune([]byte{0xC0, 0x80}, 0)
	if r != runeMalformed || n != 1 {
		t.Fatalf("got %#x,%d, want malformed", r, n)
	}
}

func TestDecodeRuneTruncated(t *testing.T) {
	r, n := DecodeRune([]byte{0xE6, 0xBC}, 0)
	if r != runeTruncated || n != 0 {
		t.Fatalf("got %#x,%d, want truncated", r, n)
	}
}

func TestDecodeRuneSurrogatePairCombines(t *testing.T) {
	// UTF-8-encoded high surrogate D800 + low surrogate DC00.
	buf := []byte{0xED, 0xA0, 0x80, 0xED, 0xB0, 0x80}
	r, n := DecodeRune(buf, 0)
	if r != 0x10000 || n != 6 {
		t.Fatalf("got %#x,%d, want 0x10000,6", r, n)
	}
}

func TestRoundTripEmitDecode(t *testing.T) {
	for _, r := range []rune{'A', 0xE9, 0x6F22, 0x10000, 0x10FFFF} {
		buf := EmitRune(nil, r)
		got, n := DecodeRune(buf, 0)
		if got != r || n != len(buf) {
			t.Errorf("round trip %#x: got %#x,%d", r, got, n)
		}
	}
}

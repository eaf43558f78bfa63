package dicomcharset

import "testing"

func TestEUCJPToUTF8ASCII(t *testing.T) {
	out, pos := EUCJPToUTF8([]byte("Hi"), ModeReplace)
	if string(out) != "Hi" || pos != 2 {
		t.Fatalf("got %q,%d", out, pos)
	}
}

func TestEUCJPToUTF8HalfWidthKatakana(t *testing.T) {
	out, pos := EUCJPToUTF8([]byte{0x8E, 0xB1}, ModeReplace)
	if pos != 2 {
		t.Fatalf("pos = %d, want 2", pos)
	}
	r, _ := DecodeRune(out, 0)
	if r < 0xFF61 || r > 0xFF9F {
		t.Fatalf("got %#x, want half-width katakana range", r)
	}
}

func TestEUCJPRoundTripKanji(t *testing.T) {
	in := []byte("漢字")
	encoded, pos := UTF8ToEUCJP(in)
	if pos != len(in) {
		t.Fatalf("encode pos = %d, want %d", pos, len(in))
	}
	decoded, pos2 := EUCJPToUTF8(encoded, ModeReplace)
	if string(decoded) != "漢字" || pos2 != len(encoded) {
		t.Fatalf("round trip got %q,%d", decoded, pos2)
	}
}

func TestEUCJPToUTF8TruncatedTrailByte(t *testing.T) {
	out, pos := EUCJPToUTF8([]byte{0xA1}, ModeReplace)
	if pos != 0 {
		t.Fatalf("pos = %d, want 0", pos)
	}
	if string(out) != "�" {
		t.Fatalf("got %q", out)
	}
}

func TestEUCJPToUTF8JISX0212Prefix(t *testing.T) {
	// Smoke test of the 0x8F-prefixed JIS X 0212 decode path: a
	// well-formed three-byte sequence either decodes (pos 3) or is
	// reported unmapped at offset 0, without panicking.
	out, pos := EUCJPToUTF8([]byte{0x8F, 0xA1, 0xA1}, ModeReplace)
	if pos != 3 && pos != 0 {
		t.Fatalf("pos = %d, want 3 (decoded) or 0 (unmapped)", pos)
	}
	_ = out
}

func TestUTF8ToEUCJPUnmappableCodePointReportsErrorOffset(t *testing.T) {
	in := []byte("中☃国")
	out, pos := UTF8ToEUCJP(in)
	if pos != 3 {
		t.Fatalf("pos = %d, want 3 (byte offset of ☃)", pos)
	}
	if string(out) != "\xC3\xE6?\xB9\xF1" {
		t.Fatalf("got %q", out)
	}
}

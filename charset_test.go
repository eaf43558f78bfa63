package dicomcharset

import (
	"bytes"
	"testing"
)

func TestSpecWorkedExamples(t *testing.T) {
	t.Run("ISO_IR_100 accented Latin-1", func(t *testing.T) {
		in := []byte{0x48, 0xE9, 0x6C, 0x6C, 0x6F} // "H\xE9llo"
		out, pos := ToUTF8(ISO_IR_100, in, ModeReplace)
		want := "Héllo"
		if string(out) != want || pos != len(in) {
			t.Fatalf("got %q pos %d, want %q pos %d", out, pos, want, len(in))
		}
	})

	t.Run("X_SJIS encode of 漢字", func(t *testing.T) {
		in := []byte("漢字")
		out, pos := FromUTF8(X_SJIS, in)
		want := []byte{0x8A, 0xBF, 0x8E, 0x9A}
		if !bytes.Equal(out, want) || pos != len(in) {
			t.Fatalf("got % X pos %d, want % X", out, pos, want)
		}
	})

	t.Run("GB18030 4-byte Euro sign", func(t *testing.T) {
		in := []byte{0x81, 0x30, 0x84, 0x36}
		out, pos := ToUTF8(GB18030, in, ModeReplace)
		if string(out) != "€" || pos != len(in) {
			t.Fatalf("got %q pos %d", out, pos)
		}
	})

	t.Run("GB18030 literal U+FFFD encoding is not an error", func(t *testing.T) {
		in := []byte{0x84, 0x31, 0xA4, 0x37}
		out, pos := ToUTF8(GB18030, in, ModeReplace)
		if string(out) != "�" || pos != len(in) {
			t.Fatalf("got %q pos %d, want U+FFFD and no error", out, pos)
		}
	})

	t.Run("ISO-2022-JP escape-driven decode", func(t *testing.T) {
		in := []byte("ABC\x1B$B\x24\x2C\x1B(B")
		out, pos := ToUTF8(ISO_IR_6|ISO_2022, in, ModeReplace)
		want := "ABCが"
		if string(out) != want {
			t.Fatalf("got %q, want %q", out, want)
		}
		if pos != len(in) {
			t.Fatalf("got error pos %d, want %d (no error)", pos, len(in))
		}
	})

	t.Run("case fold eszett", func(t *testing.T) {
		got := CaseFoldedUTF8(ISO_IR_192, []byte("Straße"))
		if string(got) != "strasse" {
			t.Fatalf("got %q, want %q", got, "strasse")
		}
	})
}

func TestPureASCIIRoundTrip(t *testing.T) {
	s := []byte("The quick brown fox 0123456789!?")
	keys := []Key{ISO_IR_6, ISO_IR_100, ISO_IR_144, X_SJIS, GBK, GB18030, X_BIG5, X_EUCKR, ISO_IR_192}
	for _, k := range keys {
		out, pos := ToUTF8(k, s, ModeReplace)
		if !bytes.Equal(out, s) || pos != len(s) {
			t.Errorf("ToUTF8(%v): got %q pos %d, want %q", k, out, pos, s)
		}
		back, pos2 := FromUTF8(k, s)
		if !bytes.Equal(back, s) || pos2 != len(s) {
			t.Errorf("FromUTF8(%v): got %q pos %d, want %q", k, back, pos2, s)
		}
	}
}

func TestErrorOffsetIsFirst(t *testing.T) {
	in := []byte{'O', 'K', 0xFF, 'X'}
	out, pos := ToUTF8(ISO_IR_6, in, ModeReplace)
	if pos != 2 {
		t.Fatalf("error offset = %d, want 2", pos)
	}
	if string(out) != "OK�X" {
		t.Fatalf("got %q", out)
	}
}

func TestFromUTF8ASCIIUnmappableCodePointReportsErrorOffset(t *testing.T) {
	in := []byte("OK☃X")
	out, pos := FromUTF8(ISO_IR_6, in)
	if pos != 2 {
		t.Fatalf("error offset = %d, want 2", pos)
	}
	if string(out) != "OK?X" {
		t.Fatalf("got %q", out)
	}
}

func TestUTF8IdentityISOIR192(t *testing.T) {
	s := []byte("héllo 漢字 €")
	out, pos := ToUTF8(ISO_IR_192, s, ModeReplace)
	if !bytes.Equal(out, s) || pos != len(s) {
		t.Fatalf("ISO_IR_192 should pass valid UTF-8 through unchanged, got %q", out)
	}
}

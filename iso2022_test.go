package dicomcharset

import "testing"

func TestISO2022JapaneseDecode(t *testing.T) {
	in := []byte("ABC\x1B$B\x24\x2C\x1B(B")
	out, pos := ISO2022ToUTF8(ISO_IR_6|ISO_2022, in, ModeReplace)
	if string(out) != "ABCが" {
		t.Fatalf("got %q", out)
	}
	if pos != len(in) {
		t.Fatalf("pos = %d, want %d (no error)", pos, len(in))
	}
}

func TestISO2022AlternateCharsetPassthrough(t *testing.T) {
	// A non-ISO-2022 Key decodes as itself, with no escape handling.
	out, pos := ISO2022ToUTF8(ISO_IR_100, []byte{0x48, 0xE9}, ModeReplace)
	if string(out) != "Hé" || pos != 2 {
		t.Fatalf("got %q pos %d", out, pos)
	}
}

func TestISO2022CRNLResetsDesignation(t *testing.T) {
	// Designate JIS X 0208 into G0, then CR+NL should reset state back to
	// the initial designation so a later GL byte decodes as plain ASCII
	// again instead of continuing to be interpreted as a JIS X 0208 lead
	// byte.
	in := []byte("\x1B$B\x24\x2C\r\nB")
	out, pos := ISO2022ToUTF8(ISO_IR_6|ISO_2022, in, ModeReplace)
	if pos != len(in) {
		t.Fatalf("unexpected error at %d: %q", pos, out)
	}
	if out[len(out)-1] != 'B' {
		t.Fatalf("expected trailing ASCII 'B', got %q", out)
	}
}

func TestUTF8ToJISXRoundTrip(t *testing.T) {
	key := ISO_IR_13 | iso_IR_87b | ISO_2022
	in := []byte("AがB")
	encoded, pos := UTF8ToJISX(key, in)
	if pos != len(in) {
		t.Fatalf("encode pos = %d, want %d", pos, len(in))
	}
	decoded, pos2 := ISO2022ToUTF8(key, encoded, ModeReplace)
	if string(decoded) != "AがB" {
		t.Fatalf("round trip got %q", decoded)
	}
	if pos2 != len(encoded) {
		t.Fatalf("decode pos = %d, want %d", pos2, len(encoded))
	}
}

func TestScanEscape(t *testing.T) {
	code, n := scanEscape([]byte("$(D\x24"))
	if code != "$(D" || n != 3 {
		t.Fatalf("got %q,%d", code, n)
	}
}

func TestISO2022SS2DecodesThroughG2(t *testing.T) {
	// iso-2022-jp-2 designates ISO-8859-1 into G2 with "ESC . A", then
	// single-shifts one byte of it into the stream with "ESC N". 0x69 in
	// the GL range is 0xE9 ("é") once the high bit is restored.
	in := []byte("A\x1B.A\x1BN\x69B")
	out, pos := ISO2022ToUTF8(ISO_IR_6|ISO_2022, in, ModeReplace)
	if pos != len(in) {
		t.Fatalf("unexpected error at %d: %q", pos, out)
	}
	if string(out) != "AéB" {
		t.Fatalf("got %q", out)
	}
}

func TestISO2022SS3WithoutDesignationIsUnrecognized(t *testing.T) {
	// SS3 before anything has ever been designated into G3 must fail and
	// pass the escape through verbatim, with the error position recorded
	// at the escape itself, exactly like any other unrecognized escape.
	in := []byte("A\x1BO\x69B")
	out, pos := ISO2022ToUTF8(ISO_IR_6|ISO_2022, in, ModeReplace)
	if pos == len(in) {
		t.Fatalf("expected an error position, got none: %q", out)
	}
	if string(out) != "A\x1BOiB" {
		t.Fatalf("got %q", out)
	}
}

func TestISO2022JP2GreekViaG2(t *testing.T) {
	// "ESC . F" designates ISO-8859-7 (Greek) into G2, the second Latin
	// extension iso-2022-jp-2 supports via single-shift.
	in := []byte("\x1B.F\x1BN\x61")
	out, pos := ISO2022ToUTF8(ISO_IR_6|ISO_2022, in, ModeReplace)
	if pos != len(in) {
		t.Fatalf("unexpected error at %d: %q", pos, out)
	}
	if string(out) != "α" {
		t.Fatalf("got %q", out)
	}
}

func TestUTF8ToJISXUnmappableCodePointReportsErrorOffset(t *testing.T) {
	key := ISO_IR_13 | iso_IR_87b | ISO_2022
	in := []byte("A☃B")
	out, pos := UTF8ToJISX(key, in)
	if pos != 1 {
		t.Fatalf("pos = %d, want 1 (byte offset of ☃)", pos)
	}
	if string(out) != "A?B" {
		t.Fatalf("got %q", out)
	}
}

func TestUTF8ToISO2022UnmappableCodePointReportsErrorOffset(t *testing.T) {
	in := []byte("A☃B")
	out, pos := UTF8ToISO2022(ISO_IR_100|ISO_2022, in)
	if pos != 1 {
		t.Fatalf("pos = %d, want 1 (byte offset of ☃)", pos)
	}
	if string(out) != "\x1B-AA?B" {
		t.Fatalf("got %q", out)
	}
}

func TestRegistryRecognizesNewEscapeCodes(t *testing.T) {
	cases := []struct {
		code string
		want Key
	}{
		{")I", ISO_IR_13},
		{"(H", ISO_IR_13},
		{".A", ISO_IR_100},
		{".F", ISO_IR_126},
		{"$A", ISO_IR_58},
		{"$(A", ISO_IR_58},
		{"$(C", ISO_IR_149},
	}
	for _, c := range cases {
		if got := charsetFromEscape(c.code); got != c.want {
			t.Errorf("charsetFromEscape(%q) = %v, want %v", c.code, got, c.want)
		}
	}
}

func TestNextBackslashISO2022SingleShiftSkipsShiftedByte(t *testing.T) {
	// The byte single-shifted through G2 by SS2 must never be mistaken
	// for a literal backslash separator, even when its GL form is 0x5C.
	in := []byte("A\x1B.A\x1BN\x5CB\\C")
	i := NextBackslash(ISO_IR_6|ISO_2022, in, 0)
	want := len(in) - 2 // the real backslash right before "C"
	if i != want {
		t.Fatalf("NextBackslash = %d, want %d (text=%q)", i, want, in)
	}
}

func TestNextBackslashISO2022CRNLResetsShiftState(t *testing.T) {
	// A CR+NL run resets G0-G3 and the shift counter, so a backslash
	// right after one is a real separator even though a single-shift was
	// pending before the reset.
	in := []byte("\x1B.A\x1BN\r\n\\")
	i := NextBackslash(ISO_IR_6|ISO_2022, in, 0)
	if i != len(in)-1 {
		t.Fatalf("NextBackslash = %d, want %d (text=%q)", i, len(in)-1, in)
	}
}

package dicomcharset

import "testing"

func TestNextBackslashPlainASCII(t *testing.T) {
	text := []byte(`AAA\BBB`)
	if i := NextBackslash(ISO_IR_6, text, 0); i != 3 {
		t.Fatalf("got %d, want 3", i)
	}
}

func TestNextBackslashNone(t *testing.T) {
	if i := NextBackslash(ISO_IR_6, []byte("ABC"), 0); i != -1 {
		t.Fatalf("got %d, want -1", i)
	}
}

func TestNextBackslashSkipsSJISTrailByte(t *testing.T) {
	// 0x81 0x5C is one Shift-JIS double-byte character whose trail byte
	// happens to equal '\\'; it must not be mistaken for a separator.
	text := []byte{0x81, 0x5C, '\\', 'B'}
	i := NextBackslash(X_SJIS, text, 0)
	if i != 2 {
		t.Fatalf("got %d, want 2 (the real separator)", i)
	}
}

func TestNextBackslashSkipsGB18030FourByte(t *testing.T) {
	// 0x81 0x30 0x81 0x30 is a 4-byte GB18030 sequence; none of its
	// continuation bytes should be mistaken for a backslash even if they
	// numerically matched 0x5C (they don't here, but the 4-byte skip must
	// still consume exactly 4 bytes so the following real backslash is
	// found at the right offset).
	text := []byte{0x81, 0x30, 0x81, 0x30, '\\'}
	i := NextBackslash(GB18030, text, 0)
	if i != 4 {
		t.Fatalf("got %d, want 4", i)
	}
}

func TestNextBackslashISO2022SkipsJISXPair(t *testing.T) {
	// ESC $ B designates JIS X 0208 into G0; the GL pair 0x24 0x5C must
	// not be split at its second byte even though 0x5C == '\\'. ESC ( B
	// then returns G0 to ASCII, so the backslash at index 8 is a separator.
	text := []byte("\x1B$B\x24\x5C\x1B(B\\B")
	i := NextBackslash(ISO_IR_6|ISO_2022, text, 0)
	if i != 8 {
		t.Fatalf("got %d, want 8", i)
	}
}

func TestCountBackslashes(t *testing.T) {
	text := []byte(`A\B\C\D`)
	if n := CountBackslashes(ISO_IR_6, text); n != 3 {
		t.Fatalf("got %d, want 3", n)
	}
}

func TestCountBackslashesZero(t *testing.T) {
	if n := CountBackslashes(ISO_IR_6, []byte("ABC")); n != 0 {
		t.Fatalf("got %d, want 0", n)
	}
}

func TestToSafeUTF8EscapesControlBytes(t *testing.T) {
	text := []byte{'A', 0x07, 'B'}
	got := ToSafeUTF8(ISO_IR_6, text)
	want := `A\007B`
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToSafeUTF8EscapesBackslash(t *testing.T) {
	got := ToSafeUTF8(ISO_IR_6, []byte(`A\B`))
	want := `A\134B`
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestToSafeUTF8PreservesTabLFCR(t *testing.T) {
	text := []byte("A\tB\nC\rD")
	got := ToSafeUTF8(ISO_IR_6, text)
	if string(got) != string(text) {
		t.Fatalf("got %q, want unchanged %q", got, text)
	}
}

func TestToSafeUTF8PassesPrintableNonASCII(t *testing.T) {
	got := ToSafeUTF8(ISO_IR_100, []byte{0xC9}) // É
	if string(got) != "É" {
		t.Fatalf("got %q", got)
	}
}

package dicomcharset

import "testing"

func TestCaseFoldUnicodeASCII(t *testing.T) {
	got := CaseFoldUnicode(nil, 'Q')
	if string(got) != "q" {
		t.Fatalf("got %q", got)
	}
}

func TestCaseFoldUnicodeSharpS(t *testing.T) {
	got := CaseFoldUnicode(nil, 0x00DF)
	if string(got) != "ss" {
		t.Fatalf("got %q", got)
	}
}

func TestCaseFoldUnicodeLatin1(t *testing.T) {
	// É -> é
	got := CaseFoldUnicode(nil, 0x00C9)
	if len(got) != 1 || got[0] != 0x00E9 {
		t.Fatalf("got %q", got)
	}
}

func TestCaseFoldUnicodeGreek(t *testing.T) {
	// Σ -> σ
	got := CaseFoldUnicode(nil, 0x03A3)
	if len(got) != 1 || got[0] != 0x03C3 {
		t.Fatalf("got %q", got)
	}
}

func TestCaseFoldUnicodeCyrillic(t *testing.T) {
	// А -> а
	got := CaseFoldUnicode(nil, 0x0410)
	if len(got) != 1 || got[0] != 0x0430 {
		t.Fatalf("got %q", got)
	}
}

func TestCaseFoldUnicodeLigature(t *testing.T) {
	got := CaseFoldUnicode(nil, 0xFB03) // ffi
	if string(got) != "ffi" {
		t.Fatalf("got %q", got)
	}
}

func TestCaseFoldUnicodeAlreadyLower(t *testing.T) {
	got := CaseFoldUnicode(nil, 'q')
	if len(got) != 1 || got[0] != 'q' {
		t.Fatalf("got %q, want unchanged", got)
	}
}

func TestCaseFoldUnicodeIdempotent(t *testing.T) {
	for _, r := range []rune{'Q', 0x00DF, 0x00C9, 0x03A3, 0x0410, 0xFB03, 0x0130} {
		once := CaseFoldUnicode(nil, r)
		var twice []rune
		for _, c := range once {
			twice = CaseFoldUnicode(twice, c)
		}
		if string(twice) != string(once) {
			t.Errorf("fold(%#x) not idempotent: once %q, twice %q", r, once, twice)
		}
	}
}

func TestCaseFoldedUTF8DecodesThenFolds(t *testing.T) {
	// ISO_IR_100 (Latin-1) 0xC9 is É; folded to UTF-8 lowercase é.
	got := CaseFoldedUTF8(ISO_IR_100, []byte{0xC9, 'c', 'o', 'l', 'e'})
	if string(got) != "école" {
		t.Fatalf("got %q", got)
	}
}

func TestCaseFoldedUTF8OnUTF8Identity(t *testing.T) {
	got := CaseFoldedUTF8(ISO_IR_192, []byte("Straße"))
	if string(got) != "strasse" {
		t.Fatalf("got %q", got)
	}
}

func TestCaseFoldUnicodeLatinExtendedBIrregular(t *testing.T) {
	// U+0181 LATIN CAPITAL LETTER B WITH HOOK -> U+0253, via caseFold0180.
	got := CaseFoldUnicode(nil, 0x0181)
	if len(got) != 1 || got[0] != 0x0253 {
		t.Fatalf("got %q", got)
	}
	// U+01F1 LATIN CAPITAL LETTER DZ -> U+01F3, via caseFold01F0.
	got = CaseFoldUnicode(nil, 0x01F1)
	if len(got) != 1 || got[0] != 0x01F3 {
		t.Fatalf("got %q", got)
	}
}

func TestCaseFoldUnicodeGreekMultiCodepoint(t *testing.T) {
	// U+0390 (iota with dialytika and tonos) expands to iota + combining
	// diaeresis + combining acute, matching full Unicode case folding.
	got := CaseFoldUnicode(nil, 0x0390)
	want := []rune{0x03B9, 0x0308, 0x0301}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestCaseFoldUnicodeArmenianLigature(t *testing.T) {
	// U+FB13 ARMENIAN SMALL LIGATURE MEN NOW -> men + now.
	got := CaseFoldUnicode(nil, 0xFB13)
	want := []rune{0x0574, 0x0576}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestCaseFoldUnicodeLatinExtendedD(t *testing.T) {
	// U+A7AA LATIN CAPITAL LETTER H WITH HOOK -> U+0266.
	got := CaseFoldUnicode(nil, 0xA7AA)
	if len(got) != 1 || got[0] != 0x0266 {
		t.Fatalf("got %q", got)
	}
}

func TestCaseFoldUnicodeOldHungarian(t *testing.T) {
	// U+10C80 OLD HUNGARIAN CAPITAL LETTER A -> U+10CC0.
	got := CaseFoldUnicode(nil, 0x10C80)
	if len(got) != 1 || got[0] != 0x10CC0 {
		t.Fatalf("got %q", got)
	}
}

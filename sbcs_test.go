package dicomcharset

import "testing"

func TestSingleByteToUTF8Latin1(t *testing.T) {
	out, pos := SingleByteToUTF8(ISO_IR_100, []byte{0xC9}, ModeReplace)
	if string(out) != "É" || pos != 1 {
		t.Fatalf("got %q,%d", out, pos)
	}
}

func TestSingleByteToUTF8WindowsC1Overlay(t *testing.T) {
	// ISO_IR_100 byte 0x80 is optimistically read as Windows-1252's euro
	// sign rather than the plain Latin-1 C1 control it nominally is.
	out, pos := SingleByteToUTF8(ISO_IR_100, []byte{0x80}, ModeReplace)
	if string(out) != "€" || pos != 1 {
		t.Fatalf("got %q,%d, want euro sign", out, pos)
	}
}

func TestUTF8ToSingleByteRoundTrip(t *testing.T) {
	in := []byte("École")
	encoded, pos := UTF8ToSingleByte(ISO_IR_100, in)
	if pos != len(in) {
		t.Fatalf("encode pos = %d, want %d", pos, len(in))
	}
	decoded, pos2 := SingleByteToUTF8(ISO_IR_100, encoded, ModeReplace)
	if string(decoded) != "École" || pos2 != len(encoded) {
		t.Fatalf("round trip got %q,%d", decoded, pos2)
	}
}

func TestSingleByteToUTF8UnmappedByteIsMalformed(t *testing.T) {
	// ISO 8859-6 (Arabic) leaves several byte values unassigned.
	out, pos := SingleByteToUTF8(ISO_IR_127, []byte{'A', 0xA1, 'B'}, ModeReplace)
	if pos != 1 {
		t.Fatalf("pos = %d, want 1 (first malformed byte)", pos)
	}
	if string(out) != "A�B" {
		t.Fatalf("got %q", out)
	}
}

func TestToUTF8WithConfigDisablesWindowsC1Overlay(t *testing.T) {
	cfg := Config{Mode: ModeReplace, WindowsC1: false}
	out, pos := ToUTF8WithConfig(ISO_IR_100, []byte{0x80}, cfg)
	if pos != 1 {
		t.Fatalf("pos = %d, want 1 (no error)", pos)
	}
	if string(out) != "" {
		t.Fatalf("got %q, want plain Latin-1 C1 control U+0080", out)
	}
}

func TestToUTF8WithConfigOverlayOn(t *testing.T) {
	cfg := Config{Mode: ModeReplace, WindowsC1: true}
	out, _ := ToUTF8WithConfig(ISO_IR_100, []byte{0x80}, cfg)
	if string(out) != "€" {
		t.Fatalf("got %q, want euro sign", out)
	}
}

func TestResolveConfigFallsBackToGlobalDefault(t *testing.T) {
	saved := GlobalOverride
	GlobalOverride = nil
	defer func() { GlobalOverride = saved }()

	got := resolveConfig(Config{}, false)
	if got != GlobalDefault {
		t.Fatalf("got %+v, want GlobalDefault %+v", got, GlobalDefault)
	}
}

func TestResolveConfigExplicitWins(t *testing.T) {
	cfg := Config{Mode: ModeIgnore, WindowsC1: false}
	got := resolveConfig(cfg, true)
	if got != cfg {
		t.Fatalf("got %+v, want %+v", got, cfg)
	}
}

package dicomcharset

import "testing"

func TestEncodingDecoderRoundTrip(t *testing.T) {
	enc := Encoding{Key: ISO_IR_100, Mode: ModeReplace}
	encoded, _ := FromUTF8(ISO_IR_100, []byte("café"))
	decoded, err := enc.NewDecoder().Bytes(encoded)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if string(decoded) != "café" {
		t.Fatalf("got %q", decoded)
	}
}

func TestEncodingEncoderRoundTrip(t *testing.T) {
	enc := Encoding{Key: ISO_IR_100}
	encoded, err := enc.NewEncoder().Bytes([]byte("café"))
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, _ := ToUTF8(ISO_IR_100, encoded, ModeReplace)
	if string(decoded) != "café" {
		t.Fatalf("got %q", decoded)
	}
}

func TestNewCodingSystemSingleValue(t *testing.T) {
	cs, err := NewCodingSystem([]string{"ISO_IR 100"})
	if err != nil {
		t.Fatalf("NewCodingSystem: %v", err)
	}
	if cs.Alphabetic == nil || cs.Ideographic != cs.Alphabetic || cs.Phonetic != cs.Alphabetic {
		t.Fatalf("single-value CodingSystem should reuse one decoder for all three roles")
	}
}

func TestNewCodingSystemEmpty(t *testing.T) {
	cs, err := NewCodingSystem(nil)
	if err != nil {
		t.Fatalf("NewCodingSystem: %v", err)
	}
	if cs.Alphabetic != nil || cs.Ideographic != nil || cs.Phonetic != nil {
		t.Fatalf("expected zero-value CodingSystem for no names")
	}
}

func TestNewCodingSystemThreeValues(t *testing.T) {
	cs, err := NewCodingSystem([]string{"", "ISO 2022 IR 87", "ISO 2022 IR 87"})
	if err != nil {
		t.Fatalf("NewCodingSystem: %v", err)
	}
	if cs.Alphabetic == nil || cs.Ideographic == nil || cs.Phonetic == nil {
		t.Fatalf("expected three decoders")
	}
}

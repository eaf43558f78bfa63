package dicomcharset

import (
	"bytes"
	"testing"
)

func TestWriteReadTableRoundTrip(t *testing.T) {
	b := newTableBuilder()
	for i := uint16(0x41); i <= 0x5A; i++ {
		b.set(i, i+32)
	}
	b.set(10, 999) // a second, dense region
	orig := b.build(0x100, 2)

	var buf bytes.Buffer
	if err := WriteTable(&buf, orig); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	got, err := ReadTable(&buf, buf.Len())
	if err != nil {
		t.Fatalf("ReadTable: %v", err)
	}

	for i := uint16(0x41); i <= 0x5A; i++ {
		if want, have := orig.Lookup(i), got.Lookup(i); want != have {
			t.Errorf("Lookup(%#x): orig %#x, round trip %#x", i, want, have)
		}
	}
	if want, have := orig.Lookup(10), got.Lookup(10); want != have {
		t.Errorf("Lookup(10): orig %#x, round trip %#x", want, have)
	}
	if want, have := orig.Lookup(0), got.Lookup(0); want != have {
		t.Errorf("Lookup(0) (unmapped): orig %#x, round trip %#x", want, have)
	}
}

func TestReadTableRejectsTrailingBytes(t *testing.T) {
	b := newTableBuilder()
	b.set(1, 2)
	tbl := b.build(10, 1)

	var buf bytes.Buffer
	if err := WriteTable(&buf, tbl); err != nil {
		t.Fatalf("WriteTable: %v", err)
	}
	buf.WriteByte(0xFF) // one stray trailing byte

	if _, err := ReadTable(&buf, buf.Len()); err == nil {
		t.Fatalf("expected an error for trailing bytes, got nil")
	}
}

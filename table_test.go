package dicomcharset

import "testing"

func TestTableBuilderLinearRun(t *testing.T) {
	b := newTableBuilder()
	for i := uint16(0x41); i <= 0x5A; i++ {
		b.set(i, i+32) // A-Z -> a-z, a linear run
	}
	tbl := b.build(0x100, 1)
	for i := uint16(0x41); i <= 0x5A; i++ {
		if got := tbl.Lookup(i); got != i+32 {
			t.Errorf("Lookup(%#x) = %#x, want %#x", i, got, i+32)
		}
	}
	if got := tbl.Lookup(0x00); got != RCHAR {
		t.Errorf("Lookup(0x00) = %#x, want RCHAR", got)
	}
}

func TestTableBuilderDenseRun(t *testing.T) {
	b := newTableBuilder()
	b.set(10, 100)
	b.set(11, 50) // not linear: breaks the run, forces a dense block
	b.set(12, 300)
	tbl := b.build(20, 1)
	cases := map[uint16]uint16{10: 100, 11: 50, 12: 300, 13: RCHAR}
	for x, want := range cases {
		if got := tbl.Lookup(x); got != want {
			t.Errorf("Lookup(%d) = %d, want %d", x, got, want)
		}
	}
}

func TestReverseTableMissAboveRCHAR(t *testing.T) {
	b := newTableBuilder()
	b.set(0x41, 1)
	rt := b.buildReverse(0xFFFF, 1)
	if got := rt.Lookup('A'); got != 1 {
		t.Fatalf("Lookup('A') = %d, want 1", got)
	}
	if got := rt.Lookup(0x20000); got != RCHAR {
		t.Fatalf("Lookup(0x20000) = %d, want RCHAR (out of reverse-table range)", got)
	}
}

func TestGetBlock(t *testing.T) {
	b := newTableBuilder()
	b.set(5, 10)
	b.set(6, 99) // dense, not linear
	tbl := b.build(10, 1)
	block := tbl.GetBlock(5)
	if len(block) < 2 || block[0] != 10 || block[1] != 99 {
		t.Fatalf("GetBlock(5) = %v, want [10 99 ...]", block)
	}
}

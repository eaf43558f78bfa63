package dicomcharset

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// sbcsSource names, for every single-byte Key this package supports, the
// golang.org/x/text/encoding/charmap table that is authoritative for it.
// ISO_IR_166 (TIS-620) and X_CP874 share Windows-874, which is TIS-620 plus
// the Windows C1 overlay — the nearest available table in the ecosystem.
// init below resets ISO_IR_166's 0x80-0x9F to the C1 controls, so for the
// plain ISO_IR_166 defined term the Windows-874 assignments in that range
// come only from the overlay (wincodesUsed in sbcs.go).
var sbcsSource = map[Key]*charmap.Charmap{
	ISO_IR_100: charmap.ISO8859_1,
	ISO_IR_101: charmap.ISO8859_2,
	ISO_IR_109: charmap.ISO8859_3,
	ISO_IR_110: charmap.ISO8859_4,
	ISO_IR_144: charmap.ISO8859_5,
	ISO_IR_127: charmap.ISO8859_6,
	ISO_IR_126: charmap.ISO8859_7,
	ISO_IR_138: charmap.ISO8859_8,
	ISO_IR_148: charmap.ISO8859_9,
	ISO_IR_166: charmap.Windows874,

	X_LATIN6:  charmap.ISO8859_10,
	X_LATIN7:  charmap.ISO8859_13,
	X_LATIN8:  charmap.ISO8859_14,
	X_LATIN9:  charmap.ISO8859_15,
	X_LATIN10: charmap.ISO8859_16,

	X_CP874:  charmap.Windows874,
	X_CP1250: charmap.Windows1250,
	X_CP1251: charmap.Windows1251,
	X_CP1252: charmap.Windows1252,
	X_CP1253: charmap.Windows1253,
	X_CP1254: charmap.Windows1254,
	X_CP1255: charmap.Windows1255,
	X_CP1256: charmap.Windows1256,
	X_CP1257: charmap.Windows1257,
	X_CP1258: charmap.Windows1258,

	X_KOI8: charmap.KOI8R,
}

var (
	sbcsForward = map[Key]*compressedTable{}
	sbcsReverse = map[Key]*reverseTable{}
)

// init builds every single-byte compressedTable/reverseTable pair from the
// real x/text charmap decoders (per SPEC_FULL.md's DOMAIN STACK section):
// the lookup path at runtime is entirely our own compressedTable engine,
// but the 256-entry tables it's built from are grounded on the ecosystem's
// authoritative code page data rather than hand-transcribed.
func init() {
	for key, cm := range sbcsSource {
		dec := cm.NewDecoder()
		fb := newTableBuilder()
		rb := newTableBuilder()
		for b := 0; b < 256; b++ {
			out, err := dec.Bytes([]byte{byte(b)})
			if err != nil || len(out) == 0 {
				continue
			}
			r, size := utf8.DecodeRune(out)
			if r == utf8.RuneError && size <= 1 {
				continue
			}
			if key == ISO_IR_166 && b >= 0x80 && b < 0xA0 {
				r = rune(b)
			}
			fb.set(uint16(b), uint16(r))
			if r <= rune(RCHAR) {
				rb.set(uint16(r), uint16(b))
			}
		}
		sbcsForward[key] = fb.build(256, 2)
		sbcsReverse[key] = rb.buildReverse(0xFFFF, 2)
	}
}

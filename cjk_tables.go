package dicomcharset

// The dense CJK mapping tables below are generated, not hand-transcribed:
// each table's (index, code point) pairs come from feeding every valid
// lead/trail byte combination through the real golang.org/x/text CJK
// decoder for that charset and recording what it decodes to, the same
// approach sbcs_tables.go uses for the single-byte charsets. This package's
// own compressedTable/tableBuilder engine still does the runtime lookup;
// x/text only supplies the ground truth the tables are built from once, at
// init() time. See DESIGN.md.

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// decodeOne feeds raw through dec and returns the single rune it decodes to.
// It reports ok=false for anything that isn't exactly one valid, complete
// rune: an unassigned grid cell, which every table below has plenty of.
func decodeOne(dec *encoding.Decoder, raw []byte) (rune, bool) {
	dec.Reset()
	out, err := dec.Bytes(raw)
	if err != nil || len(out) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeRune(out)
	if r == utf8.RuneError || size != len(out) {
		return 0, false
	}
	return r, true
}

var (
	jisx0208Forward *compressedTable
	jisx0208Reverse *reverseTable
	jisx0212Forward *compressedTable
	jisx0212Reverse *reverseTable
)

// JIS X 0208 and JIS X 0212 both live in EUC-JP: the former as bare
// 0xA1-0xFE pairs, the latter 0x8F-prefixed. The row*94+col grid index
// (see iso2022.go, cjk_sjis.go, cjk_eucjp.go) addresses the same 94x94 space
// either encoding uses.
func init() {
	dec := japanese.EUCJP.NewDecoder()

	fb := newTableBuilder()
	rb := newTableBuilder()
	for row := 0; row < 94; row++ {
		for col := 0; col < 94; col++ {
			lead, trail := byte(0xA1+row), byte(0xA1+col)
			r, ok := decodeOne(dec, []byte{lead, trail})
			if !ok || r > 0xFFFF {
				continue
			}
			idx := uint16(row*94 + col)
			fb.set(idx, uint16(r))
			rb.set(uint16(r), idx)
		}
	}
	jisx0208Forward = fb.build(94*94, 2)
	jisx0208Reverse = rb.buildReverse(0xFFFF, 2)
	// NEC row-13/IBM extension quirk: JIS X 0208 index 2561 (row 27, col 23)
	// encodes U+20B9F, a non-BMP ideograph x/text's EUC-JP decoder doesn't
	// surface for that cell. The forward direction is left as whatever
	// x/text decodes (RCHAR, if anything); only the reverse direction is
	// special-cased, so encoding this one rune to EUC-JP/Shift-JIS still
	// lands on the byte pair the original decoder used.
	jisx0208Reverse.extraCode = 0x20B9F
	jisx0208Reverse.extraValue = 2561

	fb2 := newTableBuilder()
	rb2 := newTableBuilder()
	for row := 0; row < 94; row++ {
		for col := 0; col < 94; col++ {
			lead, trail := byte(0xA1+row), byte(0xA1+col)
			r, ok := decodeOne(dec, []byte{0x8F, lead, trail})
			if !ok || r > 0xFFFF {
				continue
			}
			idx := uint16(row*94 + col)
			fb2.set(idx, uint16(r))
			rb2.set(uint16(r), idx)
		}
	}
	jisx0212Forward = fb2.build(94*94, 1)
	jisx0212Reverse = rb2.buildReverse(0xFFFF, 1)
}

var (
	gb2312Forward  *compressedTable
	gb2312Reverse  *reverseTable
	big5Forward    *compressedTable
	big5Reverse    *reverseTable
	ksx1001Forward *compressedTable
	ksx1001Reverse *reverseTable
)

// GB 2312's 94x94 grid (both bytes 0xA1-0xFE) is a strict subset of GBK's
// mapping in that same range, so simplifiedchinese.GBK's decoder is ground
// truth for it too: x/text doesn't expose a dedicated EUC-CN/GB2312
// decoder, only HZGB2312 (a different 7-bit transport form).
func init() {
	fb := newTableBuilder()
	rb := newTableBuilder()
	dec := simplifiedchinese.GBK.NewDecoder()
	for row := 0; row < 94; row++ {
		for col := 0; col < 94; col++ {
			lead, trail := byte(0xA1+row), byte(0xA1+col)
			r, ok := decodeOne(dec, []byte{lead, trail})
			if !ok || r > 0xFFFF {
				continue
			}
			idx := uint16(row*94 + col)
			fb.set(idx, uint16(r))
			rb.set(uint16(r), idx)
		}
	}
	gb2312Forward = fb.build(94*94, 2)
	gb2312Reverse = rb.buildReverse(0xFFFF, 2)

	// Big5's 157-wide column space combines trail bytes 0x40-0x7E and
	// 0xA1-0xFE (cjk_big5.go's big5Offset), lead bytes 0x81-0xFE; the three
	// non-BMP entries (big5Supplement) are handled directly in cjk_big5.go
	// and skipped here since they don't fit a uint16 table cell.
	fb2 := newTableBuilder()
	rb2 := newTableBuilder()
	decBig5 := traditionalchinese.Big5.NewDecoder()
	for lead := 0x81; lead <= 0xFE; lead++ {
		for y := 0x40; y <= 0x7E; y++ {
			t := uint16(lead-0x81)*157 + uint16(y-0x40)
			r, ok := decodeOne(decBig5, []byte{byte(lead), byte(y)})
			if !ok || r > 0xFFFF {
				continue
			}
			fb2.set(t, uint16(r))
			rb2.set(uint16(r), t)
		}
		for y := 0xA1; y <= 0xFE; y++ {
			t := uint16(lead-0x81)*157 + uint16(y-0x62)
			r, ok := decodeOne(decBig5, []byte{byte(lead), byte(y)})
			if !ok || r > 0xFFFF {
				continue
			}
			fb2.set(t, uint16(r))
			rb2.set(uint16(r), t)
		}
	}
	big5Forward = fb2.build(157*(0xFE-0x81+1), 2)
	big5Reverse = rb2.buildReverse(0xFFFF, 2)

	// KS X 1001's precomposed-Hangul block (rows 16-40, grid index 1410 to
	// 3759) must land on its own region boundary so cjk_euckr.go's
	// GetBlock(1410) call can find it for the Jamo-suppression binary
	// search (spec.md §4.A/§4.E).
	fb3 := newTableBuilder()
	rb3 := newTableBuilder()
	decKR := korean.EUCKR.NewDecoder()
	fb3.forceBoundary(1410)
	for row := 0; row < 94; row++ {
		for col := 0; col < 94; col++ {
			lead, trail := byte(0xA1+row), byte(0xA1+col)
			r, ok := decodeOne(decKR, []byte{lead, trail})
			if !ok || r > 0xFFFF {
				continue
			}
			idx := uint16(row*94 + col)
			fb3.set(idx, uint16(r))
			rb3.set(uint16(r), idx)
		}
	}
	ksx1001Forward = fb3.build(94*94, 2)
	ksx1001Reverse = rb3.buildReverse(0xFFFF, 2)

	block := ksx1001Forward.GetBlock(1410)
	n := 2350
	if len(block) < n {
		n = len(block)
	}
	hangulBlock = append([]uint16(nil), block[:n]...)
}

// gb18030ExtForward covers the GB18030 BMP-extension dense index (A*1260+B
// for A<32, per spec.md §4.E), generated as real 4-byte GB18030 sequences
// decoded via simplifiedchinese.GB18030. A=0,B=36 is the Euro sign worked
// example from spec.md §8 (the 4-byte sequence 0x81 0x30 0x84 0x36).
var (
	gb18030ExtForward *compressedTable
	gb18030ExtReverse *reverseTable
)

func init() {
	fb := newTableBuilder()
	rb := newTableBuilder()
	dec := simplifiedchinese.GB18030.NewDecoder()
	for a := 0; a < 32; a++ {
		c := byte(0x81 + a/10)
		second := byte('0' + a%10)
		for b := 0; b < 1260; b++ {
			b3 := byte(0x81 + b/10)
			b4 := byte('0' + b%10)
			r, ok := decodeOne(dec, []byte{c, second, b3, b4})
			if !ok || r > 0xFFFF {
				continue
			}
			idx := uint16(a*1260 + b)
			fb.set(idx, uint16(r))
			rb.set(uint16(r), idx)
		}
	}
	gb18030ExtForward = fb.build(32*1260, 1)
	gb18030ExtReverse = rb.buildReverse(0xFFFF, 1)
}

// tableL and tableT convert a CP949/KS-X-1001 Jamo filler-block leading or
// trailing consonant byte (offset from 0xA1) into a 0-based jamo index.
// Grounded verbatim on vtkDICOMCharacterSet::EUCKRToUTF8/UTF8ToEUCKR.
var tableL = [52]byte{
	1, 2, 0, 3, 0, 0, 4, 5, 6, 0, 0, 0, 0, 0, 0,
	0, 7, 8, 9, 0, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 20,
}

var tableT = [52]byte{
	2, 3, 4, 5, 6, 7, 8, 0, 9, 10, 11, 12, 13, 14, 15,
	16, 17, 18, 0, 19, 20, 21, 22, 23, 0, 24, 25, 26, 27, 28, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 1,
}

// invTableL and invTableT are the encode-side inverses of tableL/tableT:
// given a 0-based leading or trailing jamo index, the CP949 byte offset
// (from 0xA1) that produces it.
var (
	invTableL [20]byte
	invTableT [28]byte
)

func init() {
	for off, v := range tableL {
		if v != 0 {
			invTableL[v-1] = byte(off)
		}
	}
	for off, v := range tableT {
		if v != 0 {
			invTableT[v-1] = byte(off)
		}
	}
}

// ksx1001ExtForward is the CP949 Hangul-completion extension region (spec.md
// §4.E "CP949 fallback"): syllables KS X 1001 itself can't encode, reachable
// only as a two-byte CP949 sequence via euckrExtIndex (cjk_euckr.go).
// golang.org/x/text/encoding/korean's EUCKR decoder implements this
// extension natively (it's built on the same CP949 mapping Microsoft ships),
// so the same decodeOne probe used for the core grid above generates it too.
var ksx1001ExtForward *compressedTable

func init() {
	fb := newTableBuilder()
	dec := korean.EUCKR.NewDecoder()
	for c := 0x81; c <= 0xFE; c++ {
		for y := 0x41; y <= 0xFE; y++ {
			idx, ok := euckrExtIndex(byte(c), byte(y))
			if !ok {
				continue
			}
			r, decOK := decodeOne(dec, []byte{byte(c), byte(y)})
			if !decOK || r > 0xFFFF {
				continue
			}
			fb.set(idx, uint16(r))
		}
	}
	ksx1001ExtForward = fb.build(8822, 1)
}

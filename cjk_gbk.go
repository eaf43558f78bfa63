package dicomcharset

import "golang.org/x/text/encoding/simplifiedchinese"

// gbkExtForward covers the GBK extension regions (3, 4 and 5 per spec.md
// §4.E) that lie outside the GB 2312 94x94 grid, keyed by the combined
// index scheme gbkIndex computes (region 3 offset +8836, regions 4/5 offset
// +14916). Generated from simplifiedchinese.GBK's decoder, probing every
// lead/trail pair gbkIndex reports as an extension-region index.
var (
	gbkExtForward *compressedTable
	gbkExtReverse *reverseTable
)

func init() {
	fb := newTableBuilder()
	rb := newTableBuilder()
	dec := simplifiedchinese.GBK.NewDecoder()
	for a := 0x81; a <= 0xFE; a++ {
		for b := 0x40; b <= 0xFE; b++ {
			if b == 0x7F {
				continue
			}
			idx, ext, ok := gbkIndex(byte(a), byte(b))
			if !ok || !ext {
				continue
			}
			r, decOK := decodeOne(dec, []byte{byte(a), byte(b)})
			if !decOK || r > 0xFFFF {
				continue
			}
			fb.set(idx, uint16(r))
			rb.set(uint16(r), idx)
		}
	}
	gbkExtForward = fb.build(14916+96*96, 1)
	gbkExtReverse = rb.buildReverse(0xFFFF, 1)
}

// gbkIndex computes the combined GBK index for a lead/trail pair per the
// three-region scheme of spec.md §4.E, or reports ok=false.
func gbkIndex(a, b byte) (index uint16, inExt bool, ok bool) {
	if b == 0x7F || b < 0x40 || b > 0xFE {
		return 0, false, false
	}
	switch {
	case a >= 0xA1 && b >= 0xA1:
		return (uint16(a)-0xA1)*94 + (uint16(b) - 0xA1), false, true
	case a < 0xA1:
		if a < 0x81 {
			return 0, false, false
		}
		adj := uint16(b) - 0x40
		if b > 0x7F {
			adj--
		}
		return (uint16(a)-0x81)*190 + adj + 8836, true, true
	default: // b < 0xA1, a >= 0xA1
		adj := uint16(b) - 0x40
		if b > 0x7F {
			adj--
		}
		return (uint16(a)-0xA1)*96 + adj + 14916, true, true
	}
}

// GBKToUTF8 decodes GBK.
func GBKToUTF8(text []byte, mode MalformedMode) ([]byte, int) {
	var out []byte
	errPos := -1
	i := 0
	for i < len(text) {
		c := text[i]
		if c < 0x80 {
			out = append(out, c)
			i++
			continue
		}
		ok := false
		var code rune
		if c >= 0x81 && c <= 0xFE && i+1 < len(text) {
			idx, ext, valid := gbkIndex(c, text[i+1])
			if valid {
				var r uint16
				if ext {
					r = gbkExtForward.Lookup(idx)
				} else {
					r = gb2312Forward.Lookup(idx)
				}
				if r != RCHAR {
					code, ok = rune(r), true
					i++
				}
			}
		}
		if !ok {
			if errPos < 0 {
				errPos = i
			}
			out = emitBadByte(out, c, mode)
			i++
			continue
		}
		out = EmitRune(out, code)
		i++
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

// gbkPack is the inverse of gbkIndex for the extension regions (used by
// both GBK and GB18030 encoders).
func gbkPack(idx uint16) (a, b byte) {
	switch {
	case idx < 8836:
		return byte(0xA1 + idx/94), byte(0xA1 + idx%94)
	case idx < 14916:
		rel := idx - 8836
		a = byte(0x81 + rel/190)
		adj := rel % 190
		if adj >= 0x7F-0x40 {
			b = byte(adj + 0x41)
		} else {
			b = byte(adj + 0x40)
		}
		return a, b
	default:
		rel := idx - 14916
		a = byte(0xA1 + rel/96)
		adj := rel % 96
		if adj >= 0x7F-0x40 {
			b = byte(adj + 0x41)
		} else {
			b = byte(adj + 0x40)
		}
		return a, b
	}
}

// UTF8ToGBK encodes UTF-8 into GBK.
func UTF8ToGBK(text []byte) ([]byte, int) {
	var out []byte
	errPos := -1
	pos := 0
	for pos < len(text) {
		r, n := DecodeRune(text, pos)
		if r < 0 || n == 0 {
			break
		}
		if r < 0x80 {
			out = append(out, byte(r))
			pos += n
			continue
		}
		if idx := gb2312Reverse.Lookup(r); idx != RCHAR {
			a, b := gbkPack(idx)
			out = append(out, a, b)
		} else if idx := gbkExtReverse.Lookup(r); idx != RCHAR {
			a, b := gbkPack(idx)
			out = append(out, a, b)
		} else if !LastChanceConversion(&out, r) && errPos < 0 {
			errPos = pos
		}
		pos += n
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

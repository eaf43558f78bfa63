package dicomcharset

// big5Supplement hard-codes three Big5 indices whose targets lie outside
// the BMP (and so aren't representable as a single uint16 table entry),
// grounded verbatim on the original decoder's special-cased constants.
var big5Supplement = map[uint16]rune{
	11205: 0x200CC,
	11207: 0x2008A,
	11213: 0x27607,
}

var big5SupplementReverse = func() map[rune]uint16 {
	m := make(map[rune]uint16, len(big5Supplement))
	for t, r := range big5Supplement {
		m[r] = t
	}
	return m
}()

func big5Offset(trail byte) byte {
	if trail < 0x7F {
		return 0x40
	}
	return 0x62
}

// Big5ToUTF8 decodes Big5 (X_BIG5).
func Big5ToUTF8(text []byte, mode MalformedMode) ([]byte, int) {
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
			y := text[i+1]
			if (y >= 0x40 && y <= 0x7E) || (y >= 0xA1 && y <= 0xFE) {
				t := uint16(c-0x81)*157 + uint16(y-big5Offset(y))
				if r, special := big5Supplement[t]; special {
					code, ok = r, true
				} else if r := big5Forward.Lookup(t); r != RCHAR {
					code, ok = rune(r), true
				}
				if ok {
					i += 2
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
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

// UTF8ToBig5 encodes UTF-8 into Big5, clamping at the table's 19782-entry
// upper bound per spec.md §4.E.
func UTF8ToBig5(text []byte) ([]byte, int) {
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
		var t uint16
		found := false
		if special, ok := big5SupplementReverse[r]; ok {
			t, found = special, true
		} else if idx := big5Reverse.Lookup(r); idx != RCHAR && idx < 19782 {
			t, found = idx, true
		}
		if !found {
			if !LastChanceConversion(&out, r) && errPos < 0 {
				errPos = pos
			}
			pos += n
			continue
		}
		lead := byte(0x81 + t/157)
		trail := t % 157
		if trail >= 0x7F-0x40 {
			out = append(out, lead, byte(trail+0x62))
		} else {
			out = append(out, lead, byte(trail+0x40))
		}
		pos += n
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

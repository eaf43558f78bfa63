package dicomcharset

// sjisCP932Subst overrides a handful of lead-0x81 JIS X 0208 row-1 code
// points with their CP932 (Windows-31J) values, verbatim from
// vtkDICOMCharacterSet::SJISToUTF8.
var sjisCP932Subst = map[byte]rune{
	0x5C: 0x2015, // HORIZONTAL BAR
	0x5F: 0xFF3C, // FULLWIDTH REVERSE SOLIDUS
	0x60: 0xFF5E, // FULLWIDTH TILDE
	0x61: 0x2225, // PARALLEL TO
	0x7C: 0xFF0D, // FULLWIDTH HYPHEN-MINUS
	0x91: 0xFFE0, // FULLWIDTH CENT SIGN
	0x92: 0xFFE1, // FULLWIDTH POUND SIGN
	0xCA: 0xFFE2, // FULLWIDTH NOT SIGN
}

var sjisCP932SubstReverse = func() map[rune]byte {
	m := make(map[rune]byte, len(sjisCP932Subst))
	for b, r := range sjisCP932Subst {
		m[r] = b
	}
	return m
}()

// sjisToIndex decodes a Shift-JIS lead/trail pair into the shared 94x94
// JIS row/col index space (see cjk_tables.go), or reports ok=false if the
// pair is out of range. Grounded verbatim on
// vtkDICOMCharacterSet::SJISToUTF8's arithmetic.
func sjisToIndex(x, y byte) (index uint16, ok bool) {
	if y < 0x40 || y > 0xFC || y == 0x7F {
		return 0, false
	}
	var a, b uint16
	if y < 0x9F {
		a = 0
		if y < 0x7F {
			b = uint16(y) - 0x40
		} else {
			b = uint16(y) - 0x41
		}
	} else {
		a = 1
		b = uint16(y) - 0x9F
	}
	if x <= 0x9F {
		a += (uint16(x) - 0x81) * 2
	} else {
		a += (uint16(x) - 0xC1) * 2
	}
	return a*94 + b, true
}

// indexToSJIS is the inverse of sjisToIndex.
func indexToSJIS(index uint16) (x, y byte) {
	a := index / 94
	b := index % 94
	half := a / 2
	if half <= 30 {
		x = byte(0x81 + half)
	} else {
		x = byte(0x81 + half + 64)
	}
	if a%2 == 0 {
		if b <= 0x3E {
			y = byte(b + 0x40)
		} else {
			y = byte(b + 0x41)
		}
	} else {
		y = byte(b + 0x9F)
	}
	return x, y
}

// SJISToUTF8 decodes Shift-JIS (X_SJIS), including half-width katakana and
// the CP932 substitutions for lead byte 0x81.
func SJISToUTF8(text []byte, mode MalformedMode) ([]byte, int) {
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
		code := rune(RCHAR)
		consumed := 1
		switch {
		case c >= 0xA1 && c <= 0xDF:
			code = rune(c) + 0xFEC0
		case c != 0x80 && c != 0xA0 && c <= 0xFC && i+1 < len(text):
			y := text[i+1]
			if idx, ok := sjisToIndex(c, y); ok {
				code = rune(jisx0208Forward.Lookup(idx))
				if c == 0x81 {
					if r, ok2 := sjisCP932Subst[y]; ok2 {
						code = r
					}
				}
				consumed = 2
			}
		}
		if code == rune(RCHAR) {
			if errPos < 0 {
				errPos = i
			}
			out = emitBadByte(out, c, mode)
			i++
			continue
		}
		out = EmitRune(out, code)
		i += consumed
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

// UTF8ToSJIS encodes UTF-8 into Shift-JIS.
func UTF8ToSJIS(text []byte) ([]byte, int) {
	var out []byte
	errPos := -1
	pos := 0
	for pos < len(text) {
		r, n := DecodeRune(text, pos)
		if r < 0 || n == 0 {
			break
		}
		switch {
		case r < 0x80:
			out = append(out, byte(r))
		case r >= 0xFF61 && r <= 0xFF9F:
			out = append(out, byte(r-0xFEC0))
		default:
			if b, ok := sjisCP932SubstReverse[r]; ok {
				out = append(out, 0x81, b)
			} else if idx := jisx0208Reverse.Lookup(r); idx != RCHAR {
				x, y := indexToSJIS(idx)
				out = append(out, x, y)
			} else {
				// JIS X 0212 has no Shift-JIS encoding in practice; fall
				// through to Last Chance like the original does for any
				// scalar the SJIS reverse table can't place.
				if !LastChanceConversion(&out, r) && errPos < 0 {
					errPos = pos
				}
			}
		}
		pos += n
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

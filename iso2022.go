package dicomcharset

// isoDesignableMax is the highest base Key value that has an ISO 2022
// escape form; bases above it (the CJK multi-byte encodings, the Latin6-10
// extensions, the Windows code pages and KOI8) are only ever used as
// "alternate" (non-ISO-2022) charsets, per spec.md §4.F.1.
const isoDesignableMax = ISO_IR_166

// iso2022Decoder tracks the G0-G3 designations, each register's
// MULTIBYTE_Gn/CHARSET96_Gn width bits (spec.md §3), and the "alternate
// charset" escape hatch for one decode pass, per spec.md §4.F.1.
type iso2022Decoder struct {
	g         [4]Key
	multibyte [4]bool
	charset96 [4]bool
	alternate bool
	altKey    Key
}

// gSetFlags reports the initial MULTIBYTE_G1/CHARSET96_G1 state for a base
// charset designated directly into G1 at decoder construction (i.e. without
// going through an escape sequence), grounded on InitISO2022.
func gSetFlags(base Key) (multibyte, charset96 bool) {
	switch base {
	case ISO_IR_149, ISO_IR_58:
		return true, false
	case ISO_IR_100, ISO_IR_101, ISO_IR_109, ISO_IR_110, ISO_IR_126, ISO_IR_127,
		ISO_IR_138, ISO_IR_144, ISO_IR_148, ISO_IR_166:
		return false, true
	default:
		return false, false
	}
}

func newISO2022Decoder(key Key) *iso2022Decoder {
	d := &iso2022Decoder{g: [4]Key{ISO_IR_6, Unknown, Unknown, Unknown}}
	if !key.IsISO2022() {
		d.alternate, d.altKey = true, key
		return d
	}
	base := key.Base()
	switch {
	case base.isJPCombination():
		if base&ISO_IR_13 != 0 {
			d.g[0] = ISO_IR_13
			d.g[1] = ISO_IR_13
		}
	case base > isoDesignableMax:
		d.alternate, d.altKey = true, base
	case base != 0:
		d.g[1] = base
		d.multibyte[1], d.charset96[1] = gSetFlags(base)
	}
	return d
}

func (d *iso2022Decoder) reset(key Key) {
	*d = *newISO2022Decoder(key)
}

func isISO2022Control(c byte) bool {
	return c == 0x1B || (c >= 0x0A && c <= 0x0F)
}

func isJISXDriverCharset(k Key) bool {
	switch k {
	case ISO_IR_6, ISO_IR_13, ISO_IR_87, ISO_IR_159, ISO_IR_149, ISO_IR_58:
		return true
	}
	return false
}

// charsetFromEscape resolves an escape's body (everything after ESC) to
// the Key it designates, via the registry (spec.md §4.F.2).
func charsetFromEscape(code string) Key {
	for _, row := range registryTable {
		if row.escapeCode == code {
			return row.key
		}
	}
	return Unknown
}

// scanEscape consumes zero or more intermediate bytes (0x20-0x2F) plus one
// final byte (0x30-0x7E) from rest, per spec.md §4.F.2.
func scanEscape(rest []byte) (code string, length int) {
	i := 0
	for i < len(rest) && rest[i] >= 0x20 && rest[i] <= 0x2F {
		i++
	}
	if i < len(rest) && rest[i] >= 0x30 && rest[i] <= 0x7E {
		i++
	}
	return string(rest[:i]), i
}

// gSetTarget reports which G-register (0-3) an escape's intermediate byte
// designates, and the MULTIBYTE_Gn/CHARSET96_Gn bits that register takes on
// as a result, per the original's EscapeCode. ok is false for anything that
// isn't a designating escape (SS2/SS3, the locking shifts, IRR and friends).
func gSetTarget(code string) (gset int, multibyte, charset96 bool, ok bool) {
	switch code[0] {
	case '(':
		return 0, false, false, true
	case ')':
		return 1, false, false, true
	case '-':
		return 1, false, true, true
	case '*':
		return 2, false, false, true
	case '.':
		return 2, false, true, true
	case '+':
		return 3, false, false, true
	case '/':
		return 3, false, true, true
	case '$':
		if len(code) < 2 {
			return 0, true, false, true
		}
		switch code[1] {
		case '(':
			return 0, true, false, true
		case ')':
			return 1, true, false, true
		case '-':
			return 1, true, true, true
		case '*':
			return 2, true, false, true
		case '.':
			return 2, true, true, true
		case '+':
			return 3, true, false, true
		case '/':
			return 3, true, true, true
		default:
			// bare "$X": a 94^n designation straight into G0 (e.g. "$A",
			// "$B", "$@"), with no secondary intermediate byte.
			return 0, true, false, true
		}
	}
	return 0, false, false, false
}

// singleShiftRegister reports which G-register an SS2 ("ESC N") or SS3
// ("ESC O") escape single-shifts from.
func singleShiftRegister(code string) (gset int, ok bool) {
	switch code {
	case "N":
		return 2, true
	case "O":
		return 3, true
	}
	return 0, false
}

// applyEscape updates d's designations for one parsed escape code,
// reporting whether the escape was recognized. SS2/SS3 and the locking
// shifts are handled by the caller, not here.
func (d *iso2022Decoder) applyEscape(code string) bool {
	if code == "" {
		return false
	}
	gset, multibyte, charset96, ok := gSetTarget(code)
	if !ok {
		return false
	}
	k := charsetFromEscape(code)
	if k == Unknown {
		return false
	}
	d.g[gset] = k
	d.multibyte[gset] = multibyte
	d.charset96[gset] = charset96
	return true
}

// singleShift consumes the 1-2 GR bytes an SS2/SS3 escape single-shifts out
// of rest, decoding them through G2/G3 (spec.md §4.F.3 step 4). ok is false
// when the targeted register isn't designated, or rest doesn't hold enough
// validly-ranged bytes, in which case the caller must treat the escape as
// unrecognized. Grounded on vtkDICOMCharacterSet::ISO2022ToUTF8's
// single-shift execution block.
func (d *iso2022Decoder) singleShift(gset int, rest []byte, mode MalformedMode) (consumed int, out []byte, decoded int, ok bool) {
	gs := d.g[gset]
	if gs == Unknown {
		return 0, nil, 0, false
	}
	width := 1
	if d.multibyte[gset] {
		width = 2
	}
	if len(rest) < width {
		return 0, nil, 0, false
	}
	shiftBytes := make([]byte, width)
	for k := 0; k < width; k++ {
		b := rest[k] | 0x80
		if !((b >= 0xA1 && b <= 0xFE) || (d.charset96[gset] && b >= 0xA0)) {
			return 0, nil, 0, false
		}
		shiftBytes[k] = b
	}
	segOut, m := AnyToUTF8(gs.Base(), shiftBytes, mode)
	return width, segOut, m, true
}

// ISO2022ToUTF8 decodes an ISO 2022 escape-driven stream, per spec.md
// §4.F.3. SS2/SS3 single-shift the next GR byte(s) through G2/G3. SI/SO
// shifting and the locking-shift escapes (LS2/LS3/LS1R/...) are out of
// scope (spec.md §1 Non-goals); unrecognized escapes, SI and SO are passed
// through verbatim with the error position recorded.
func ISO2022ToUTF8(key Key, text []byte, mode MalformedMode) ([]byte, int) {
	d := newISO2022Decoder(key)
	var out []byte
	errPos := -1
	n := len(text)
	i := 0
	for i < n {
		j := i
		for j < n && !isISO2022Control(text[j]) {
			j++
		}
		if i < j {
			seg := text[i:j]
			var segOut []byte
			var m int
			switch {
			case d.alternate:
				segOut, m = AnyToUTF8(d.altKey, seg, mode)
			case d.g[0] == ISO_IR_6 && d.g[1] == Unknown:
				segOut, m = ASCIIToUTF8(seg, mode)
			case d.g[0] == ISO_IR_6 && d.g[1] != ISO_IR_13:
				segOut, m = AnyToUTF8(d.g[1].Base(), seg, mode)
			case isJISXDriverCharset(d.g[0]):
				segOut, m = JISXToUTF8(d.g[0], d.g[1], seg, mode)
			default:
				segOut, m = ASCIIToUTF8(seg, mode)
			}
			out = append(out, segOut...)
			if m != len(seg) && errPos < 0 {
				errPos = i + m
			}
		}
		i = j

		var prev byte
		for i < n && text[i] >= 0x0A && text[i] <= 0x0F {
			c := text[i]
			if c == 0x0E || c == 0x0F {
				if errPos < 0 {
					errPos = i
				}
			} else if prev == '\r' && c == '\n' {
				d.reset(key)
			}
			out = append(out, c)
			prev = c
			i++
		}

		for i < n && text[i] == 0x1B {
			save := i
			i++
			code, l := scanEscape(text[i:])
			if d.alternate {
				out = append(out, 0x1B)
				out = append(out, text[i:i+l]...)
				i += l
				break
			}
			if gset, isShift := singleShiftRegister(code); isShift {
				consumed, segOut, m, ok := d.singleShift(gset, text[i+l:], mode)
				if ok {
					out = append(out, segOut...)
					if m != consumed && errPos < 0 {
						errPos = i + l
					}
					i += l + consumed
					continue
				}
				out = append(out, 0x1B)
				out = append(out, text[i:i+l]...)
				i += l
				if errPos < 0 {
					errPos = save
				}
				continue
			}
			if !d.applyEscape(code) {
				out = append(out, 0x1B)
				out = append(out, text[i:i+l]...)
				if errPos < 0 {
					errPos = save
				}
			}
			i += l
		}
	}
	if errPos < 0 {
		return out, n
	}
	return out, errPos
}

// JISXToUTF8 decodes one control-byte-free segment while G0/G1 are
// designated to one of the JIS-style charsets (spec.md §4.F.3's
// "dedicated JIS-style driver"): G0 occupies the GL range (0x21-0x7E), G1
// the GR range (bytes with the high bit set).
func JISXToUTF8(g0, g1 Key, text []byte, mode MalformedMode) ([]byte, int) {
	var out []byte
	errPos := -1
	i := 0
	for i < len(text) {
		c := text[i]
		if c >= 0x80 {
			if g1 == ISO_IR_13 {
				local := c & 0x7F
				if local >= 0x21 && local <= 0x5F {
					out = EmitRune(out, 0xFF61+rune(local-0x21))
					i++
					continue
				}
			}
			if errPos < 0 {
				errPos = i
			}
			out = emitBadByte(out, c, mode)
			i++
			continue
		}

		switch g0 {
		case ISO_IR_87, ISO_IR_159, ISO_IR_149, ISO_IR_58:
			if i+1 < len(text) && c >= 0x21 && c <= 0x7E && text[i+1] >= 0x21 && text[i+1] <= 0x7E {
				idx := (uint16(c)-0x21)*94 + (uint16(text[i+1]) - 0x21)
				var code uint16
				switch g0 {
				case ISO_IR_87:
					code = jisx0208Forward.Lookup(idx)
				case ISO_IR_159:
					code = jisx0212Forward.Lookup(idx)
				case ISO_IR_149:
					code = ksx1001Forward.Lookup(idx)
				case ISO_IR_58:
					code = gb2312Forward.Lookup(idx)
				}
				if code != RCHAR {
					out = EmitRune(out, rune(code))
					i += 2
					continue
				}
			}
		case ISO_IR_13:
			switch c {
			case 0x5C:
				out = EmitRune(out, 0x00A5) // yen sign
				i++
				continue
			case 0x7E:
				out = EmitRune(out, 0x203E) // overline
				i++
				continue
			}
			out = append(out, c)
			i++
			continue
		default:
			out = append(out, c)
			i++
			continue
		}
		if errPos < 0 {
			errPos = i
		}
		out = emitBadByte(out, c, mode)
		i++
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

// UTF8ToJISX encodes UTF-8 to ISO-2022-JP/-JP-2 (spec.md §4.F), switching
// G0 between ASCII, JIS X 0201 roman and the designated JIS X 0208/0212
// charsets as needed. Grounded on vtkDICOMCharacterSet::UTF8ToJISX.
func UTF8ToJISX(key Key, text []byte) ([]byte, int) {
	const (
		escBase  = "\x1B(B"
		esc0208  = "\x1B$B"
		esc0212  = "\x1B$(D"
		escRoman = "\x1B(J"
	)
	const (
		stAscii = iota
		st0208
		st0212
		stRoman
	)
	var out []byte
	state := stAscii
	errPos := -1
	pos := 0
	for pos < len(text) {
		r, n := DecodeRune(text, pos)
		if r < 0 || n == 0 {
			break
		}
		switch {
		case r == 0xA5 && key.HasJIS13():
			if state != stRoman {
				out = append(out, escRoman...)
				state = stRoman
			}
			out = append(out, 0x5C)
		case r == 0x203E && key.HasJIS13():
			if state != stRoman {
				out = append(out, escRoman...)
				state = stRoman
			}
			out = append(out, 0x7E)
		case r < 0x80:
			if state != stAscii {
				out = append(out, escBase...)
				state = stAscii
			}
			out = append(out, byte(r))
		default:
			if idx := jisx0208Reverse.Lookup(r); idx != RCHAR && key.HasJIS87() {
				if state != st0208 {
					out = append(out, esc0208...)
					state = st0208
				}
				out = append(out, byte(0x21+idx/94), byte(0x21+idx%94))
			} else if idx := jisx0212Reverse.Lookup(r); idx != RCHAR && key.HasJIS159() {
				if state != st0212 {
					out = append(out, esc0212...)
					state = st0212
				}
				out = append(out, byte(0x21+idx/94), byte(0x21+idx%94))
			} else {
				if !LastChanceConversion(&out, r) && errPos < 0 {
					errPos = pos
				}
			}
		}
		pos += n
	}
	if state != stAscii {
		out = append(out, escBase...)
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

// UTF8ToISO2022 encodes UTF-8 for the non-Japanese ISO 2022 forms: the
// multi-byte G1 designations (ISO_IR_149, ISO_IR_58) and the 96-char G1
// ISO-8859 designations.
func UTF8ToISO2022(key Key, text []byte) ([]byte, int) {
	base := key.Base()
	if base.isJPCombination() {
		return UTF8ToJISX(key, text)
	}

	var escCode string
	var multibyte *reverseTable
	switch base {
	case ISO_IR_149:
		escCode, multibyte = "\x1B$)C", ksx1001Reverse
	case ISO_IR_58:
		escCode, multibyte = "\x1B$)A", gb2312Reverse
	default:
		for _, row := range registryTable {
			if row.key == base && row.flags == flagFirst && len(row.escapeCode) > 0 && row.escapeCode[0] == '-' {
				escCode = "\x1B" + row.escapeCode
				break
			}
		}
	}

	var out []byte
	if escCode != "" {
		out = append(out, escCode...)
	}
	sbcsTable := sbcsReverse[base]
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
		case multibyte != nil:
			if idx := multibyte.Lookup(r); idx != RCHAR {
				out = append(out, byte(0xA1+idx/94), byte(0xA1+idx%94))
			} else if !LastChanceConversion(&out, r) && errPos < 0 {
				errPos = pos
			}
		case sbcsTable != nil:
			if code := sbcsTable.Lookup(r); code != RCHAR && code <= 0xFF {
				out = append(out, byte(code))
			} else if !LastChanceConversion(&out, r) && errPos < 0 {
				errPos = pos
			}
		default:
			if !LastChanceConversion(&out, r) && errPos < 0 {
				errPos = pos
			}
		}
		pos += n
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

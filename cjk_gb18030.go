package dicomcharset

// GB18030ToUTF8 decodes GB18030: a 2-byte form identical to GBK, and a
// 4-byte form for the remaining Unicode BMP plus all supplementary planes.
// Grounded on spec.md §4.E and the original's GB18030ToUTF8.
func GB18030ToUTF8(text []byte, mode MalformedMode) ([]byte, int) {
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
		if c < 0x81 || c > 0xFE || i+1 >= len(text) {
			if errPos < 0 {
				errPos = i
			}
			out = emitBadByte(out, c, mode)
			i++
			continue
		}
		second := text[i+1]
		if second >= 0x30 && second <= 0x39 {
			if i+3 >= len(text) {
				if errPos < 0 {
					errPos = i
				}
				out = emitBadByte(out, c, mode)
				i++
				continue
			}
			b3, b4 := text[i+2], text[i+3]
			if c == 0x84 && second == 0x31 && b3 == 0xA4 && b4 == 0x37 {
				// Legal encoding of U+FFFD: pass through, not an error.
				out = EmitRune(out, rune(RCHAR))
				i += 4
				continue
			}
			if b3 < 0x81 || b3 > 0xFE || b4 < 0x30 || b4 > 0x39 {
				if errPos < 0 {
					errPos = i
				}
				out = emitBadByte(out, c, mode)
				i++
				continue
			}
			A := (uint32(c)-0x81)*10 + uint32(second-'0')
			B := (uint32(b3)-0x81)*10 + uint32(b4-'0')
			switch {
			case A < 32:
				code := gb18030ExtForward.Lookup(uint16(A*1260 + B))
				if code == RCHAR {
					if errPos < 0 {
						errPos = i
					}
					out = emitBadByte(out, c, mode)
					i++
					continue
				}
				out = EmitRune(out, rune(code))
			case A >= 150:
				out = EmitRune(out, rune((A-150)*1260+B+0x10000))
			default:
				if errPos < 0 {
					errPos = i
				}
				out = emitBadByte(out, c, mode)
				i++
				continue
			}
			i += 4
			continue
		}
		idx, ext, ok := gbkIndex(c, second)
		if !ok {
			if errPos < 0 {
				errPos = i
			}
			out = emitBadByte(out, c, mode)
			i++
			continue
		}
		var code uint16
		if ext {
			code = gbkExtForward.Lookup(idx)
		} else {
			code = gb2312Forward.Lookup(idx)
		}
		if code == RCHAR {
			if errPos < 0 {
				errPos = i
			}
			out = emitBadByte(out, c, mode)
			i++
			continue
		}
		out = EmitRune(out, rune(code))
		i += 2
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

// UTF8ToGB18030 encodes UTF-8 into GB18030.
func UTF8ToGB18030(text []byte) ([]byte, int) {
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
		case r == 0xFFFE || r == 0xFFFF:
			if !LastChanceConversion(&out, r) && errPos < 0 {
				errPos = pos
			}
		case r > 0xFFFF:
			t := uint32(r) - 0x10000 + 150*1260
			out = append(out, gb18030Pack4(t)...)
		default:
			if idx := gb2312Reverse.Lookup(r); idx != RCHAR {
				a, b := gbkPack(idx)
				out = append(out, a, b)
			} else if idx := gbkExtReverse.Lookup(r); idx != RCHAR {
				a, b := gbkPack(idx)
				out = append(out, a, b)
			} else if idx := gb18030ExtReverse.Lookup(r); idx != RCHAR {
				out = append(out, gb18030Pack4(uint32(idx))...)
			} else if !LastChanceConversion(&out, r) && errPos < 0 {
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

// gb18030Pack4 renders a combined A*1260+B index as the 4-byte GB18030
// form.
func gb18030Pack4(t uint32) []byte {
	A := t / 1260
	B := t % 1260
	return []byte{
		byte(0x81 + A/10), byte('0' + A%10),
		byte(0x81 + B/10), byte('0' + B%10),
	}
}

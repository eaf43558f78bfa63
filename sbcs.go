package dicomcharset

// wincodes is the Windows-125x code page's C1-range (0x80-0x9F) overlay:
// several plain ISO-8859 DICOM defined terms are, in practice, produced by
// software that actually used the matching Windows code page, so C1 bytes
// are optimistically read as if this overlay were present. Grounded
// verbatim on vtkDICOMCharacterSet::ISO8859ToUTF8.
var wincodes = [32]uint16{
	0x20AC, 0xFFFD, 0x201A, 0x0192, 0x201E, 0x2026, 0x2020, 0x2021,
	0x02C6, 0x2030, 0x0160, 0x2039, 0x0152, 0xFFFD, 0x017D, 0xFFFD,
	0xFFFD, 0x2018, 0x2019, 0x201C, 0x201D, 0x2022, 0x2013, 0x2014,
	0x02DC, 0x2122, 0x0161, 0x203A, 0x0153, 0xFFFD, 0x017E, 0x0178,
}

// wincodesUsed returns the bitmask of wincodes entries enabled for key, or
// 0 if key gets no Windows C1 overlay. Only the three DICOM defined terms
// that are commonly conflated with a Windows code page get one.
func wincodesUsed(key Key) uint32 {
	switch key {
	case ISO_IR_100:
		return 0xDFFE5FFD
	case ISO_IR_148:
		return 0x9FFE1FFD
	case ISO_IR_166:
		return 0x00FE0021
	default:
		return 0
	}
}

// ASCIIToUTF8 decodes a 7-bit ISO_IR_6 (ASCII) buffer: bytes above 0x7F are
// malformed.
func ASCIIToUTF8(text []byte, mode MalformedMode) ([]byte, int) {
	var out []byte
	errPos := -1
	for i, c := range text {
		if c < 0x80 {
			out = append(out, c)
			continue
		}
		if errPos < 0 {
			errPos = i
		}
		out = emitBadByte(out, c, mode)
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

// SingleByteToUTF8 decodes text using the forward table registered for
// key (spec.md §4.D): any single-byte, non-ISO-2022 charset, including the
// ISO 8859 family with its Windows C1 overlay.
func SingleByteToUTF8(key Key, text []byte, mode MalformedMode) ([]byte, int) {
	table := sbcsForward[key.Base()]
	if table == nil {
		return ASCIIToUTF8(text, mode)
	}
	overlay := wincodesUsed(key.Base())
	var out []byte
	errPos := -1
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c < 0x80 {
			out = append(out, c)
			continue
		}
		code := table.Lookup(uint16(c))
		if c < 0xA0 {
			bit := uint32(c) - 0x80
			if overlay&(1<<bit) != 0 {
				code = wincodes[bit]
			}
		}
		if code == RCHAR {
			if errPos < 0 {
				errPos = i
			}
			out = emitBadByte(out, c, mode)
			continue
		}
		out = EmitRune(out, rune(code))
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

// UTF8ToSingleByte encodes UTF-8 text into the single-byte charset named
// by key, using the reverse table built alongside the forward one.
func UTF8ToSingleByte(key Key, text []byte) ([]byte, int) {
	rtable := sbcsReverse[key.Base()]
	var out []byte
	pos := 0
	errPos := -1
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
		var code uint16 = RCHAR
		if rtable != nil {
			code = rtable.Lookup(r)
		}
		if code == RCHAR || code > 0xFF {
			if !LastChanceConversion(&out, r) && errPos < 0 {
				errPos = pos
			}
		} else {
			out = append(out, byte(code))
		}
		pos += n
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

// emitBadByte renders one malformed input byte per mode (spec.md §4.B).
func emitBadByte(out []byte, c byte, mode MalformedMode) []byte {
	switch mode {
	case ModeIgnore:
		return out
	case ModeEscape:
		return EmitRune(out, 0xDC00+rune(c))
	default:
		return EmitRune(out, rune(RCHAR))
	}
}

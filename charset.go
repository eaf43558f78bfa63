package dicomcharset

// AnyToUTF8 decodes text from the charset named by base (a non-ISO-2022
// Key — the ISO_2022 flag, if set, is ignored) into UTF-8, dispatching to
// the transcoder registered for that charset. It is the single place every
// other decode path (the ISO 2022 driver, ToUTF8 below) funnels through,
// per spec.md §4.D's charset dispatch table.
func AnyToUTF8(base Key, text []byte, mode MalformedMode) ([]byte, int) {
	switch base.Base() {
	case ISO_IR_6:
		return ASCIIToUTF8(text, mode)
	case X_SJIS:
		return SJISToUTF8(text, mode)
	case X_EUCJP:
		return EUCJPToUTF8(text, mode)
	case X_BIG5:
		return Big5ToUTF8(text, mode)
	case X_GB2312, ISO_IR_58:
		return GB2312ToUTF8(text, mode)
	case GBK:
		return GBKToUTF8(text, mode)
	case GB18030:
		return GB18030ToUTF8(text, mode)
	case X_EUCKR, ISO_IR_149:
		return EUCKRToUTF8(text, mode)
	case ISO_IR_192:
		return validateUTF8(text, mode)
	default:
		return SingleByteToUTF8(base, text, mode)
	}
}

// validateUTF8 passes already-UTF-8 text through unchanged, only touching
// any malformed sequence per mode; this is ISO_IR_192's decode (spec.md
// §8's "UTF-8 identity" property).
func validateUTF8(text []byte, mode MalformedMode) ([]byte, int) {
	var out []byte
	errPos := -1
	pos := 0
	for pos < len(text) {
		r, n := DecodeRune(text, pos)
		if n == 0 {
			break
		}
		if r == runeMalformed {
			if errPos < 0 {
				errPos = pos
			}
			out = emitBadByte(out, text[pos], mode)
			pos++
			continue
		}
		out = append(out, text[pos:pos+n]...)
		pos += n
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

// anyFromUTF8 is the encode-side mirror of AnyToUTF8.
func anyFromUTF8(base Key, text []byte) ([]byte, int) {
	switch base.Base() {
	case ISO_IR_6:
		var out []byte
		errPos := -1
		pos := 0
		for pos < len(text) {
			r, n := DecodeRune(text, pos)
			if n == 0 {
				break
			}
			if r < 0x80 {
				out = append(out, byte(r))
			} else if !LastChanceConversion(&out, r) && errPos < 0 {
				errPos = pos
			}
			pos += n
		}
		if errPos < 0 {
			return out, len(text)
		}
		return out, errPos
	case X_SJIS:
		return UTF8ToSJIS(text)
	case X_EUCJP:
		return UTF8ToEUCJP(text)
	case X_BIG5:
		return UTF8ToBig5(text)
	case X_GB2312, ISO_IR_58:
		return UTF8ToGB2312(text)
	case GBK:
		return UTF8ToGBK(text)
	case GB18030:
		return UTF8ToGB18030(text)
	case X_EUCKR, ISO_IR_149:
		return UTF8ToEUCKR(text)
	case ISO_IR_192:
		return validateUTF8(text, ModeReplace)
	default:
		return UTF8ToSingleByte(base, text)
	}
}

// ToUTF8 converts text from the charset named by key to UTF-8, per
// spec.md §4.D. When key.IsISO2022(), decoding is driven by the escape
// state machine (iso2022.go); otherwise text is decoded directly by the
// single charset key names. The returned int is the offset of the first
// malformed sequence encountered, or len(text) if none.
func ToUTF8(key Key, text []byte, mode MalformedMode) ([]byte, int) {
	if key.IsISO2022() {
		return ISO2022ToUTF8(key, text, mode)
	}
	return AnyToUTF8(key, text, mode)
}

// FromUTF8 converts UTF-8 text into the charset named by key, per
// spec.md §4.D, falling back to LastChanceConversion for any code point
// the target charset cannot represent directly.
func FromUTF8(key Key, text []byte) ([]byte, int) {
	if key.IsISO2022() {
		return UTF8ToISO2022(key, text)
	}
	return anyFromUTF8(key, text)
}

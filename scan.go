package dicomcharset

import "fmt"

// NextBackslash returns the index of the next unescaped backslash in text
// starting at pos, or -1 if there is none, per spec.md §4.D. A backslash
// that falls inside a multi-byte lead/trail pair of a charset whose trail
// byte range includes 0x5C is not a separator: GB18030/GBK, Shift-JIS and
// Big5 all have trail bytes that legally equal '\\', so the scan must
// track lead/trail pairing per-charset rather than scanning byte-by-byte.
// Grounded on vtkDICOMCharacterSet::NextBackslash.
func NextBackslash(key Key, text []byte, pos int) int {
	base := key.Base()
	if key.IsISO2022() {
		return nextBackslashISO2022(key, text, pos)
	}
	i := pos
	n := len(text)
	for i < n {
		c := text[i]
		if c == '\\' {
			return i
		}
		switch base {
		case GB18030:
			if c >= 0x81 && c <= 0xFE && i+1 < n {
				second := text[i+1]
				if second >= 0x30 && second <= 0x39 {
					i += 4
					continue
				}
				i += 2
				continue
			}
		case GBK, X_GB2312, ISO_IR_58:
			if c >= 0x81 && c <= 0xFE && i+1 < n {
				i += 2
				continue
			}
		case X_SJIS:
			if (c >= 0x81 && c <= 0x9F || c >= 0xE0 && c <= 0xFC) && i+1 < n {
				i += 2
				continue
			}
		case X_BIG5:
			if c >= 0x81 && c <= 0xFE && i+1 < n {
				i += 2
				continue
			}
		}
		i++
	}
	return -1
}

// nextBackslashISO2022 scans for an unescaped backslash while tracking G0
// designation (since a JIS X 0208/0212/KS X 1001/GB 2312 GL pair can also
// legally contain the byte 0x5C as its second half), G2/G3 designation and
// the single-shift byte counter an SS2/SS3 escape leaves behind (a shifted
// G2/G3 octet can equally contain 0x5C), and a CR+NL line ending, which
// resets the whole driver state. Must track the same state ISO2022ToUTF8
// does. Grounded on vtkDICOMCharacterSet::NextBackslash's ISO-2022 branch.
func nextBackslashISO2022(key Key, text []byte, pos int) int {
	d := newISO2022Decoder(key)
	i := pos
	n := len(text)
	shiftcount := 0
	charset96 := false
	for i < n {
		c := text[i]
		if c == 0x1B {
			shiftcount = 0
			code, l := scanEscape(text[i+1:])
			if !d.alternate {
				if gset, isShift := singleShiftRegister(code); isShift {
					if d.g[gset] != Unknown {
						shiftcount = 1
						if d.multibyte[gset] {
							shiftcount = 2
						}
						charset96 = d.charset96[gset]
					}
				} else {
					d.applyEscape(code)
				}
			}
			// do not advance past a backslash inside the escape itself
			i++
			for k := 0; k < l && i < n; k++ {
				if text[i] == '\\' {
					break
				}
				i++
			}
			continue
		}
		if c == '\r' || c == '\n' {
			prev := c
			i++
			for i < n && (text[i] == '\r' || text[i] == '\n') {
				if prev == '\r' && text[i] == '\n' {
					d.reset(key)
					shiftcount = 0
					charset96 = false
				}
				prev = text[i]
				i++
			}
			continue
		}
		if shiftcount > 0 {
			cGL := c & 0x7F
			if (cGL >= 0x21 && cGL <= 0x7E) || (charset96 && cGL >= 0x20) {
				i++
				shiftcount--
			} else {
				shiftcount = 0
			}
			continue
		}
		if !d.alternate && isJISXDriverCharset(d.g[0]) && d.g[0] != ISO_IR_6 && d.g[0] != ISO_IR_13 &&
			c >= 0x21 && c <= 0x7E && i+1 < n {
			i += 2
			continue
		}
		if c == '\\' {
			return i
		}
		i++
	}
	return -1
}

// CountBackslashes returns the number of unescaped backslashes in text,
// using NextBackslash so multi-byte trail bytes that equal 0x5C are never
// miscounted as separators.
func CountBackslashes(key Key, text []byte) int {
	count := 0
	pos := 0
	for {
		i := NextBackslash(key, text, pos)
		if i < 0 {
			return count
		}
		count++
		pos = i + 1
	}
}

// ToSafeUTF8 converts text (in the charset named by key) to UTF-8, then
// escapes anything that isn't safe to print or pass through a text-based
// protocol verbatim: ASCII control bytes other than tab/LF/CR, a literal
// backslash, C1 controls, and the UTF-16-low-surrogate-encoded bad bytes
// ModeEscape produces. Escapes are rendered as "\nnn" (3-digit octal, C
// convention), per spec.md §4.D. Grounded on
// vtkDICOMCharacterSet::ToSafeUTF8.
func ToSafeUTF8(key Key, text []byte) []byte {
	utf8Text, _ := ToUTF8(key, text, ModeEscape)
	var out []byte
	pos := 0
	for pos < len(utf8Text) {
		r, n := DecodeRune(utf8Text, pos)
		if n == 0 {
			break
		}
		switch {
		case r == runeMalformed && n == 3 && utf8Text[pos+1] >= 0xB0 && utf8Text[pos+1] <= 0xB3:
			// ModeEscape's marker for one raw bad byte (U+DC00+byte, ED
			// B0..B3 xx), which DecodeRune reports as a lone low surrogate.
			out = appendOctalEscape(out, (utf8Text[pos+1]&0x03)<<6|utf8Text[pos+2]&0x3F)
		case r == '\\':
			out = appendOctalEscape(out, '\\')
		case r < 0x20 && r != '\t' && r != '\n' && r != '\r':
			out = appendOctalEscape(out, byte(r))
		case r >= 0x7F && r <= 0x9F:
			out = appendOctalEscape(out, byte(r))
		default:
			out = append(out, utf8Text[pos:pos+n]...)
		}
		pos += n
	}
	return out
}

func appendOctalEscape(out []byte, b byte) []byte {
	return append(out, []byte(fmt.Sprintf("\\%03o", b))...)
}

// CaseFoldedUTF8 decodes buf (in the charset named by key) to UTF-8, then
// streams each code point through CaseFoldUnicode, discarding U+FFFE and
// coercing U+FFFF to U+FFFD, per spec.md §4.H.
func CaseFoldedUTF8(key Key, buf []byte) []byte {
	utf8Text, _ := ToUTF8(key, buf, ModeReplace)
	var out []byte
	var folded []rune
	pos := 0
	for pos < len(utf8Text) {
		r, n := DecodeRune(utf8Text, pos)
		if n == 0 {
			break
		}
		switch r {
		case 0xFFFE:
			pos += n
			continue
		case 0xFFFF:
			r = rune(RCHAR)
		}
		folded = CaseFoldUnicode(folded[:0], r)
		for _, f := range folded {
			out = EmitRune(out, f)
		}
		pos += n
	}
	return out
}

package dicomcharset

import "sort"

// hangulBlock is the KS X 1001 precomposed-Hangul-syllable dense block
// (grid index 1410 to 3759, rows 16-40), fetched once via GetBlock so
// EUCKRToUTF8 can binary-search it instead of consulting a hand-picked
// sample. The original's own binary_search runs directly over this block,
// which only works because KS X 1001 happens to lay these 2350 syllables
// out in increasing code-point order (vtkDICOMCharacterSet::EUCKRToUTF8).
// Populated by an init() in cjk_tables.go, right after ksx1001Forward is
// built, so it doesn't depend on cross-file init ordering.
var hangulBlock []uint16

// hangulPrecomposedInKSX1001 reports whether syllable already has a direct
// KS X 1001 encoding: EUC-KR decode must suppress Jamo composition for any
// of these, so that decoding and then re-encoding round-trips through the
// table form instead of the composed form.
func hangulPrecomposedInKSX1001(syllable rune) bool {
	if syllable < 0xAC00 || len(hangulBlock) == 0 {
		return false
	}
	i := sort.Search(len(hangulBlock), func(i int) bool {
		return rune(hangulBlock[i]) >= syllable
	})
	return i < len(hangulBlock) && rune(hangulBlock[i]) == syllable
}

// euckrExtIndex computes the CP949 Hangul-completion extension index for a
// lead/trail byte pair (spec.md §4.E "CP949 fallback"), or reports ok=false.
// Shared between EUCKRToUTF8 and cjk_tables.go's ksx1001ExtForward
// generation loop so the index arithmetic can't drift between decode and
// table-build.
func euckrExtIndex(c, y byte) (index uint16, ok bool) {
	if c < 0x81 || c > 0xFE {
		return 0, false
	}
	if !((y >= 0x41 && y <= 0x5A) || (y >= 0x61 && y <= 0x7A) || (y >= 0x81 && y < 0xFF)) {
		return 0, false
	}
	a := uint16(c) - 0x81
	b := uint16(y) - 0x41
	if b >= 26 {
		b -= 6
		if b >= 52 {
			b -= 6
		}
	}
	var full uint16
	if a < 32 {
		full = a*178 + b
	} else {
		full = a*84 + b + 3008
	}
	if full >= 8822 {
		return 0, false
	}
	return full, true
}

// EUCKRToUTF8 decodes EUC-KR (X_EUCKR) with CP949 Hangul-completion
// fallback and Jamo-filler-block composition, per spec.md §4.E and
// vtkDICOMCharacterSet::EUCKRToUTF8.
func EUCKRToUTF8(text []byte, mode MalformedMode) ([]byte, int) {
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
		if c >= 0xA1 && c <= 0xFE && i+1 < len(text) && text[i+1] >= 0xA1 && text[i+1] <= 0xFE {
			x, y := c, text[i+1]
			idx := (uint16(x)-0xA1)*94 + (uint16(y) - 0xA1)
			code := rune(ksx1001Forward.Lookup(idx))
			consumed := 2
			var emitted []rune

			if x == 0xA4 && y == 0xD4 && i+8 <= len(text) &&
				text[i+2] == 0xA4 && text[i+4] == 0xA4 && text[i+6] == 0xA4 {
				y1, y2, y3 := text[i+3], text[i+5], text[i+7]
				if y1 >= 0xA1 && y1 <= 0xD4 && tableL[y1-0xA1] != 0 &&
					y2 >= 0xBF && y2 <= 0xD4 &&
					y3 >= 0xA1 && y3 <= 0xD4 && tableT[y3-0xA1] != 0 {
					L := rune(tableL[y1-0xA1]) - 1
					V := rune(y2) - 0xBF
					T := rune(tableT[y3-0xA1]) - 1
					switch {
					case L < 19 && V < 21:
						syllable := rune(0xAC00) + (L*21+V)*28 + T
						if hangulPrecomposedInKSX1001(syllable) {
							// A precomposed form already exists in KS X
							// 1001: emit the compatibility jamo sequence
							// instead, so this round-trips back to the
							// original 4 EUC-KR pairs rather than
							// colliding with the table entry.
							emitted = []rune{0x3164, 0x3090 + rune(y1), 0x3090 + rune(y2)}
							code = 0x3090 + rune(y3)
						} else {
							code = syllable
						}
					case L < 19 || V < 21 || T > 0:
						first := rune(0x115F)
						if L < 19 {
							first = 0x1100 + L
						}
						emitted = append(emitted, first)
						second := rune(0x1160)
						if V < 21 {
							second = 0x1161 + V
						}
						if T > 0 {
							emitted = append(emitted, second)
							code = 0x11A7 + T
						} else {
							code = second
						}
					default:
						emitted = []rune{0x3164, 0x3164, 0x3164}
						code = 0x3164
					}
					consumed = 8
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
			for _, r := range emitted {
				out = EmitRune(out, r)
			}
			out = EmitRune(out, code)
			i += consumed
			continue
		}

		if c >= 0x81 && c <= 0xFE && i+1 < len(text) {
			if idx, ok := euckrExtIndex(c, text[i+1]); ok {
				if code := ksx1001ExtForward.Lookup(idx); code != RCHAR {
					out = EmitRune(out, rune(code))
					i += 2
					continue
				}
			}
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

// UTF8ToEUCKR encodes UTF-8 into EUC-KR, decomposing any Hangul syllable
// absent from KS X 1001 into its 8-byte Jamo filler-block form.
func UTF8ToEUCKR(text []byte) ([]byte, int) {
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
		if idx := ksx1001Reverse.Lookup(r); idx != RCHAR {
			out = append(out, byte(0xA1+idx/94), byte(0xA1+idx%94))
			pos += n
			continue
		}
		if r >= 0xAC00 && r <= 0xD7A3 {
			z := int(r) - 0xAC00
			T := z % 28
			z /= 28
			V := z % 21
			L := z / 21
			out = append(out,
				0xA4, 0xD4,
				0xA4, byte(0xA1+invTableL[L]),
				0xA4, byte(0xBF+V),
				0xA4, byte(0xA1+invTableT[T]),
			)
			pos += n
			continue
		}
		if !LastChanceConversion(&out, r) && errPos < 0 {
			errPos = pos
		}
		pos += n
	}
	if errPos < 0 {
		return out, len(text)
	}
	return out, errPos
}

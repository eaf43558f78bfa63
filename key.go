package dicomcharset

// Key identifies a character set. It is an 8-bit value: the low 7 bits name
// a base charset (or, for the three combinable Japanese ISO 2022 charsets,
// a bitfield — see ISO_2022_JP_BASE below), and the top bit records whether
// the ISO 2022 escape-driven variant is in play.
//
// This mirrors vtkDICOMCharacterSet's packed "unsigned char Key" (see
// original_source/Source/vtkDICOMCharacterSet.cxx) rather than a Go-style
// tagged union, per spec.md's Design Notes: the bitfield is the documented
// wire-compatible representation, and IsISO2022/Base/HasJIS13/HasJIS87
// below give it a tagged-union-shaped API without reinterpreting bytes.
//
// The original source's header (which assigns the concrete numeric value
// of every Key constant) was not available for this port — only its .cxx.
// The numbering below is therefore this repo's own, chosen to reproduce
// every documented *behavior* of §3/§4.C exactly:
//   - ISO_IR_13, ISO_IR_87 and ISO_IR_159 are assigned single low bits so
//     that ORing them together (as the registry's Flags==2 "combine with
//     previous" rule does) produces the correct combined key, and so that
//     ISO_IR_159's own value already contains the ISO_IR_87 bit (making
//     "159 implies 87" a structural fact rather than a special case).
//   - Every other charset gets a value clear of that 3-bit combination
//     mask, so combining never collides with an unrelated charset.
type Key uint8

// ISO_2022_JP_BASE-combinable base values. ISO_IR_159 (JIS X 0212) is
// defined in terms of ISO_IR_87 (JIS X 0208) so that designating IR 159
// always structurally implies IR 87, per spec.md §4.C.
const (
	ISO_IR_13  Key = 0x01 // JIS X 0201 (romaji + katakana)
	iso_IR_87b Key = 0x02
	iso_IR_159 Key = 0x04
	ISO_IR_87  Key = iso_IR_87b
	ISO_IR_159 Key = iso_IR_87b | iso_IR_159
)

// Remaining base charset values.
const (
	ISO_IR_6 Key = 0x00 // ASCII; also the zero value

	ISO_IR_149 Key = 0x08 // KS X 1001, Korean
	ISO_IR_58  Key = 0x09 // GB 2312, Chinese

	ISO_IR_100 Key = 0x0A // Latin-1
	ISO_IR_101 Key = 0x0B // Latin-2
	ISO_IR_109 Key = 0x0C // Latin-3
	ISO_IR_110 Key = 0x0D // Latin-4
	ISO_IR_126 Key = 0x0E // Greek
	ISO_IR_127 Key = 0x0F // Arabic
	ISO_IR_138 Key = 0x10 // Hebrew
	ISO_IR_144 Key = 0x11 // Cyrillic
	ISO_IR_148 Key = 0x12 // Latin-5 (Turkish)
	ISO_IR_166 Key = 0x13 // TIS-620 (Thai)

	GB18030 Key = 0x14
	GBK     Key = 0x15
	X_BIG5  Key = 0x16
	X_SJIS  Key = 0x17
	X_EUCJP Key = 0x18
	X_EUCKR Key = 0x19
	X_GB2312 Key = 0x1A

	X_LATIN6  Key = 0x1B // ISO 8859-10
	X_LATIN7  Key = 0x1C // ISO 8859-13
	X_LATIN8  Key = 0x1D // ISO 8859-14
	X_LATIN9  Key = 0x1E // ISO 8859-15
	X_LATIN10 Key = 0x1F // ISO 8859-16

	X_CP874  Key = 0x20
	X_CP1250 Key = 0x21
	X_CP1251 Key = 0x22
	X_CP1252 Key = 0x23
	X_CP1253 Key = 0x24
	X_CP1254 Key = 0x25
	X_CP1255 Key = 0x26
	X_CP1256 Key = 0x27
	X_CP1257 Key = 0x28
	X_CP1258 Key = 0x29

	X_KOI8 Key = 0x2A

	ISO_IR_192 Key = 0x2B // UTF-8 itself, pass-through

	Unknown Key = 0xFF
)

// Flag bit.
const (
	// ISO_2022 marks the stateful ISO 2022 escape-driven variant of the
	// base charset named by the rest of the byte.
	ISO_2022 Key = 0x80

	// ISO_2022_BASE masks off the ISO_2022 flag only.
	ISO_2022_BASE Key = 0x7F

	// ISO_2022_JP_BASE masks the bits that combine ISO_IR_13, ISO_IR_87
	// and ISO_IR_159 into a single Key (spec.md §3: "Key & ISO_2022_JP_BASE
	// is non-zero only for legal combinations of the three JP charsets").
	ISO_2022_JP_BASE Key = ISO_IR_13 | iso_IR_87b | iso_IR_159
)

// IsISO2022 reports whether k selects the stateful ISO 2022 escape-driven
// variant of its base charset.
func (k Key) IsISO2022() bool {
	return k&ISO_2022 != 0
}

// Base returns k with the ISO_2022 flag cleared, but keeping any Japanese
// combination bits intact.
func (k Key) Base() Key {
	return k & ISO_2022_BASE
}

// HasJIS13 reports whether ISO_IR_13 (JIS X 0201) is one of the designated
// Japanese charsets combined into k.
func (k Key) HasJIS13() bool { return k.Base()&ISO_IR_13 != 0 }

// HasJIS87 reports whether ISO_IR_87 (JIS X 0208) is one of the designated
// Japanese charsets combined into k. This is also true when ISO_IR_159 was
// combined in, since ISO_IR_159's own value contains the ISO_IR_87 bit.
func (k Key) HasJIS87() bool { return k.Base()&iso_IR_87b != 0 }

// HasJIS159 reports whether ISO_IR_159 (JIS X 0212) is designated.
func (k Key) HasJIS159() bool { return k.Base()&iso_IR_159 != 0 }

// isJPCombination reports whether k's base value lies entirely within the
// three-bit Japanese combination mask (so it is a combination of IR 13/87/
// 159 rather than an unrelated charset that happens to be a small number).
func (k Key) isJPCombination() bool {
	b := k.Base()
	return b != 0 && b == b&ISO_2022_JP_BASE
}

// String returns the canonical DICOM defined term for k, or "Unknown".
func (k Key) String() string {
	if s := GetCharsetString(k); s != "" {
		return s
	}
	return "Unknown"
}

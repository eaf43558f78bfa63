package dicomcharset

import "strings"

// charsetFlag controls how a registry row combines into a multi-valued
// SpecificCharacterSet, per spec.md §3.
type charsetFlag uint8

const (
	flagFirst    charsetFlag = 0 // may appear as the first value
	flagReplace  charsetFlag = 1 // may only appear as the 2nd value (replaces)
	flagCombine  charsetFlag = 2 // may only appear as the 2nd/3rd value (combines)
)

// charsetInfo is one row of the charset registry (spec.md §3 "Charset
// registry entry"), grounded on vtkDICOMCharacterSet.cxx's anonymous
// CharsetInfo struct and its `Charsets[]` table.
type charsetInfo struct {
	key            Key
	flags          charsetFlag
	definedTerm    string // DICOM SpecificCharacterSet value, non-ISO-2022
	definedTermExt string // DICOM SpecificCharacterSet value, ISO-2022 form
	escapeCode     string // bytes following ESC that designate this charset
	names          []string
}

// registry lists every charset this package resolves by name. Order
// matters for GetCharsetString's first-match loop, mirroring
// the original source's Charsets[] array order (ASCII, then Japanese
// escape variants, then the 8-bit sets, then the DICOM-only Chinese/Korean
// multibyte sets, then the private extension charsets).
var registryTable = []charsetInfo{
	{ISO_IR_6, flagFirst, "ISO_IR 6", "ISO 2022 IR 6", "(B",
		[]string{"ansi_x3.4-1968", "ansi_x3.4-1986", "ascii", "iso-ir-6", "iso646-us", "us-ascii"}},

	{ISO_IR_13, flagFirst, "ISO_IR 13", "ISO 2022 IR 13", "(J",
		[]string{"iso-ir-13", "iso-ir-14", "jis_x0201", "x0201", "shift_jis"}},
	{ISO_IR_13, flagFirst, "", "", ")I", nil},  // JIS X 0201 katakana into G1
	{ISO_IR_13, flagFirst, "", "", "(H", nil},  // obsolete JIS X 0201 roman escape
	{ISO_IR_87, flagCombine, "", "ISO 2022 IR 87", "$B",
		[]string{"iso-2022-jp"}},
	{ISO_IR_87, flagCombine, "", "ISO 2022 IR 87", "$@", nil}, // obsolete JIS X 0208-1978 escape
	{ISO_IR_159, flagCombine, "", "ISO 2022 IR 159", "$(D",
		[]string{"iso-2022-jp-2"}},

	{ISO_IR_100, flagFirst, "ISO_IR 100", "ISO 2022 IR 100", "-A",
		[]string{"cp819", "csisolatin1", "ibm819", "iso-8859-1", "iso-ir-100", "iso8859-1", "iso88591", "l1", "latin1"}},
	{ISO_IR_100, flagFirst, "", "", ".A", nil}, // ISO-8859-1 designated into G2, used by iso-2022-jp-2
	{ISO_IR_101, flagFirst, "ISO_IR 101", "ISO 2022 IR 101", "-B",
		[]string{"csisolatin2", "iso-8859-2", "iso-ir-101", "iso8859-2", "iso88592", "l2", "latin2"}},
	{ISO_IR_109, flagFirst, "ISO_IR 109", "ISO 2022 IR 109", "-C",
		[]string{"csisolatin3", "iso-8859-3", "iso-ir-109", "iso8859-3", "iso88593", "l3", "latin3"}},
	{ISO_IR_110, flagFirst, "ISO_IR 110", "ISO 2022 IR 110", "-D",
		[]string{"csisolatin4", "iso-8859-4", "iso-ir-110", "iso8859-4", "iso88594", "l4", "latin4"}},
	{ISO_IR_144, flagFirst, "ISO_IR 144", "ISO 2022 IR 144", "-L",
		[]string{"csisolatincyrillic", "cyrillic", "iso-8859-5", "iso-ir-144", "iso8859-5", "iso88595"}},
	{ISO_IR_127, flagFirst, "ISO_IR 127", "ISO 2022 IR 127", "-G",
		[]string{"arabic", "asmo-708", "csisolatinarabic", "ecma-114", "iso-8859-6", "iso-ir-127", "iso8859-6", "iso88596"}},
	{ISO_IR_126, flagFirst, "ISO_IR 126", "ISO 2022 IR 126", "-F",
		[]string{"csisolatingreek", "ecma-118", "elot_928", "greek", "greek8", "iso-8859-7", "iso-ir-126", "iso8859-7", "iso88597"}},
	{ISO_IR_126, flagFirst, "", "", ".F", nil}, // ISO-8859-7 designated into G2, used by iso-2022-jp-2
	{ISO_IR_138, flagFirst, "ISO_IR 138", "ISO 2022 IR 138", "-H",
		[]string{"csisolatinhebrew", "hebrew", "iso-8859-8", "iso-ir-138", "iso8859-8", "iso88598"}},
	{ISO_IR_148, flagFirst, "ISO_IR 148", "ISO 2022 IR 148", "-M",
		[]string{"csisolatin5", "iso-8859-9", "iso-ir-148", "iso8859-9", "iso88599", "l5", "latin5"}},
	{ISO_IR_166, flagFirst, "ISO_IR 166", "ISO 2022 IR 166", "-T",
		[]string{"dos-874", "iso-8859-11", "iso-ir-166", "iso8859-11", "iso885911", "tis-620"}},

	{ISO_IR_58, flagReplace, "ISO_IR 58", "ISO 2022 IR 58", "$)A",
		[]string{"gb2312", "csgb2312", "csiso58gb231280", "iso-ir-58"}},
	{ISO_IR_58, flagReplace, "", "", "$A", nil},  // GB2312 designated into G0
	{ISO_IR_58, flagReplace, "", "", "$(A", nil}, // compatible form of the above
	{ISO_IR_149, flagReplace, "ISO_IR 149", "ISO 2022 IR 149", "$)C",
		[]string{"euc-kr", "cseuckr", "iso-ir-149", "ks_c_5601-1987", "ksc5601"}},
	{ISO_IR_149, flagReplace, "", "", "$(C", nil}, // Korean designated into G0

	{GB18030, flagFirst, "GB18030", "", "", []string{"gb18030"}},
	{GBK, flagFirst, "GBK", "", "", []string{"gbk", "cp936", "ms936", "windows-936"}},

	{X_BIG5, flagFirst, "", "", "", []string{"big5", "big-5", "big5-hkscs", "cn-big5", "csbig5"}},
	{X_SJIS, flagFirst, "", "", "", []string{"shift-jis", "sjis", "x-sjis", "ms_kanji", "cp932", "windows-31j"}},
	{X_EUCJP, flagFirst, "", "", "", []string{"eucjp", "cseucpkdfmtjapanese", "x-euc-jp"}},
	{X_EUCKR, flagFirst, "", "", "", []string{"euckr", "x-euc-kr"}},
	{X_GB2312, flagFirst, "", "", "", []string{"gb2312-80", "csiso58gb231280-raw"}},

	{X_LATIN6, flagFirst, "", "", "", []string{"csisolatin6", "iso-8859-10", "iso-ir-157", "iso8859-10", "l6", "latin6"}},
	{X_LATIN7, flagFirst, "", "", "", []string{"iso-8859-13", "iso-ir-179", "iso8859-13", "l7", "latin7"}},
	{X_LATIN8, flagFirst, "", "", "", []string{"iso-8859-14", "iso-ir-199", "iso8859-14", "l8", "latin8"}},
	{X_LATIN9, flagFirst, "", "", "", []string{"iso-8859-15", "iso-ir-203", "iso8859-15", "l9", "latin9", "latin-9"}},
	{X_LATIN10, flagFirst, "", "", "", []string{"iso-8859-16", "iso-ir-226", "iso8859-16", "l10", "latin10"}},

	{X_CP874, flagFirst, "", "", "", []string{"windows-874", "cp874", "ms874"}},
	{X_CP1250, flagFirst, "", "", "", []string{"windows-1250", "cp1250", "ms1250"}},
	{X_CP1251, flagFirst, "", "", "", []string{"windows-1251", "cp1251", "ms1251"}},
	{X_CP1252, flagFirst, "", "", "", []string{"windows-1252", "cp1252", "ms1252"}},
	{X_CP1253, flagFirst, "", "", "", []string{"windows-1253", "cp1253", "ms1253"}},
	{X_CP1254, flagFirst, "", "", "", []string{"windows-1254", "cp1254", "ms1254"}},
	{X_CP1255, flagFirst, "", "", "", []string{"windows-1255", "cp1255", "ms1255"}},
	{X_CP1256, flagFirst, "", "", "", []string{"windows-1256", "cp1256", "ms1256"}},
	{X_CP1257, flagFirst, "", "", "", []string{"windows-1257", "cp1257", "ms1257"}},
	{X_CP1258, flagFirst, "", "", "", []string{"windows-1258", "cp1258", "ms1258"}},

	{X_KOI8, flagFirst, "", "", "", []string{"koi8-r", "koi8-u", "koi8", "cskoi8r"}},

	{ISO_IR_192, flagFirst, "ISO_IR 192", "", "", []string{"iso_ir_192", "utf-8", "utf8"}},
}

// KeyFromString parses the DICOM SpecificCharacterSet syntax (spec.md
// §4.C, §6): one or more backslash-separated values, each trimmed of
// leading/trailing spaces. An empty overall string, or a first value that
// is empty, resolves to ISO_IR_6 — vtkDICOMCharacterSet::GetCharacterSet
// treats "no value at all" the same as "first value is the empty string"
// (see SPEC_FULL.md's supplemented-features list), so this implementation
// does too instead of only handling the latter.
func KeyFromString(text string) Key {
	values := splitDefinedTerms(text)
	if len(values) == 0 {
		return ISO_IR_6
	}

	var key Key
	found := false
	for n, raw := range values {
		value := strings.TrimSpace(raw)
		if value == "" {
			if n == 0 {
				key = ISO_IR_6
				found = true
			}
			continue
		}
		matched := false
		for _, row := range registryTable {
			var iso2022 Key
			switch {
			case row.definedTerm != "" && row.definedTerm == value:
				matched = true
			case row.definedTermExt != "" && row.definedTermExt == value:
				matched, iso2022 = true, ISO_2022
			}
			if !matched {
				continue
			}
			switch {
			case n == 0:
				key = row.key | iso2022
			case row.flags == flagReplace:
				key = row.key | ISO_2022
			case row.flags == flagCombine:
				key = (key & ISO_2022_JP_BASE) | row.key | ISO_2022
			}
			found = true
			break
		}
	}
	if found {
		return key
	}

	// No defined term matched the whole list: fall back to a single
	// case-folded match of the raw string against alternative names.
	folded := string(CaseFoldedUTF8(ISO_IR_192, []byte(strings.TrimSpace(text))))
	for _, row := range registryTable {
		for _, name := range row.names {
			if folded == name {
				k := row.key
				if k == ISO_IR_159 {
					// "always activate JISX0208 if JISX0212 is active"
					k |= ISO_IR_87
				}
				return k
			}
		}
	}
	return Unknown
}

// splitDefinedTerms splits on backslash without any charset-awareness: the
// syntax this function parses is pure ASCII/7-bit (SpecificCharacterSet's
// own value), so the ISO-2022-aware NextBackslash isn't needed here.
func splitDefinedTerms(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(text, "\\")
}

// GetCharsetString renders key back to its canonical DICOM defined-term
// form (spec.md §4.C), including the backslash-separated combination for
// multi-designated ISO 2022 Japanese keys.
func GetCharsetString(key Key) string {
	var parts []string
	remaining := key

	if remaining.isJPCombination() {
		b := remaining.Base()
		if b&ISO_IR_13 != 0 {
			parts = append(parts, "ISO 2022 IR 13")
		}
		switch {
		case b&iso_IR_159 != 0:
			// ISO_IR_159's own bit pattern already contains iso_IR_87b,
			// so a genuine IR 159 combination is checked before a bare
			// IR 87 one to avoid mistaking it for IR 87 alone.
			parts = append(parts, "ISO 2022 IR 159")
		case b&iso_IR_87b != 0:
			parts = append(parts, "ISO 2022 IR 87")
		}
		if len(parts) > 0 {
			return strings.Join(parts, "\\")
		}
	}

	iso2022 := key.IsISO2022()
	base := key.Base()
	for _, row := range registryTable {
		switch row.flags {
		case flagFirst:
			if row.key != base {
				continue
			}
			if iso2022 && row.definedTermExt != "" {
				return row.definedTermExt
			}
			return row.definedTerm
		case flagReplace:
			if row.key != base || !iso2022 {
				continue
			}
			return row.definedTermExt
		}
	}
	return ""
}

package dicomcharset

// LastChanceConversion handles a Unicode code point that has no
// representation in the target single-byte or multi-byte legacy charset,
// by substituting a plain-ASCII approximation for common punctuation
// (smart quotes, dashes, non-breaking space, ...) instead of simply
// failing. Grounded verbatim on vtkDICOMCharacterSet::LastChanceConversion
// (spec.md §4.F.4); returns false (an encoding error) when no
// approximation exists, in which case "?" is still emitted so the output
// stream stays aligned with its input — except for U+FFFE, for which
// nothing is emitted.
func LastChanceConversion(out *[]byte, code rune) bool {
	switch {
	case code == 0x00A0 || (code >= 0x2000 && code <= 0x200A) || code == 0x202F:
		*out = append(*out, ' ')
	case code == 0x00AD || (code >= 0x200B && code <= 0x200D) || code == 0x2060:
		// zero-width: emit nothing
	case code >= 0x2010 && code <= 0x2014:
		*out = append(*out, '-')
	case code == 0x2015:
		*out = append(*out, '-', '-')
	case code >= 0x2018 && code <= 0x201B:
		*out = append(*out, '\'')
	case code >= 0x201C && code <= 0x201F:
		*out = append(*out, '"')
	case code == 0x2026:
		*out = append(*out, '.', '.', '.')
	case code == 0x2044:
		*out = append(*out, '/')
	case code == 0x2053:
		*out = append(*out, '~')
	case code == 0xFFFE:
		return false
	default:
		*out = append(*out, '?')
		return false
	}
	return true
}

package dicomcharset

// CaseFoldUnicode case-folds one Unicode code point for DICOM's
// case-insensitive PN/CS-style comparisons (spec.md §4.G), appending the
// folded form (which may be more than one code point) to out. Grounded on
// vtkDICOMCharacterSet::CaseFoldUnicode, including its irregular-range
// tables and the handful of single-codepoint-to-multiple-codepoint
// expansions (German sharp s, the Greek iota-subscript/diaeresis-accent
// letters, ligatures, Armenian ligatures).
func CaseFoldUnicode(out []rune, code rune) []rune {
	var code2, code3 rune

	switch {
	case code <= 0x7F:
		if code >= 'A' && code <= 'Z' {
			code += 0x20
		}

	case code <= 0xFF:
		switch {
		case code >= 0xC0 && code <= 0xDE && code != 0xD7:
			code += 0x20
		case code == 0xDF: // ß -> ss
			code, code2 = 's', 's'
		case code == 0xB5: // micro sign -> greek mu
			code = 0x03BC
		}

	case code <= 0x017F:
		switch {
		case code >= 0x0100 && code <= 0x012F:
			code |= 0x0001
		case code == 0x0130: // İ -> i + combining dot above
			code, code2 = 'i', 0x0307
		case code >= 0x0132 && code <= 0x0137:
			code |= 0x0001
		case code >= 0x0139 && code <= 0x0148:
			code += code & 0x0001
		case code == 0x0149: // ʼn -> ʼ + n
			code, code2 = 0x02BC, 'n'
		case code >= 0x014A && code <= 0x0177:
			code |= 0x0001
		case code == 0x0178: // Ÿ -> ÿ
			code = 0xFF
		case code >= 0x0179 && code <= 0x017E:
			code += code & 0x0001
		case code == 0x017F: // long s -> s
			code = 's'
		}

	case code <= 0x036F:
		switch {
		case code >= 0x0180 && code <= 0x01CA:
			code = caseFold0180[code-0x0180]
		case code >= 0x01CB && code <= 0x01DC:
			code += code & 0x0001
		case code >= 0x01DE && code <= 0x01EF:
			code |= 0x0001
		case code == 0x01F0: // J-caron -> j + combining caron
			code, code2 = 0x006A, 0x030C
		case code >= 0x01F0 && code <= 0x024F:
			code = caseFold01F0[code-0x01F0]
		case code == 0x0345: // combining greek ypogegrammeni -> iota
			code = 0x03B9
		}

	case code <= 0x03FF: // greek
		switch {
		case code >= 0x0370 && code <= 0x038F:
			code = caseFold0370[code-0x0370]
		case (code >= 0x0391 && code <= 0x03A1) || (code >= 0x03A3 && code <= 0x03AB):
			code += 0x20
		case code == 0x0390:
			code, code2, code3 = 0x03B9, 0x0308, 0x0301
		case code == 0x03B0:
			code, code2, code3 = 0x03C5, 0x0308, 0x0301
		case code == 0x03C2: // final sigma -> sigma
			code += 0x01
		case code >= 0x03CF && code <= 0x03D6:
			code = caseFold03CF[code-0x03CF]
		case code >= 0x03D8 && code <= 0x03EF:
			code |= 0x0001
		case code >= 0x03F0 && code <= 0x03FF:
			code = caseFold03F0[code-0x03F0]
		}

	case code <= 0x052F: // cyrillic
		switch {
		case code >= 0x0400 && code <= 0x040F:
			code += 0x50
		case code >= 0x0410 && code <= 0x042F:
			code += 0x20
		case (code >= 0x0460 && code <= 0x0481) || (code >= 0x048A && code <= 0x04BF):
			code |= 0x0001
		case code == 0x04C0:
			code = 0x04CF
		case code >= 0x04C1 && code <= 0x04CE:
			code += code & 0x0001
		case code >= 0x04D0 && code <= 0x052F:
			code |= 0x0001
		}

	case code <= 0x1000: // armenian
		switch {
		case code >= 0x0531 && code <= 0x0556:
			code += 0x30
		case code == 0x0587: // ech-yiwn ligature -> ech + yiwn
			code, code2 = 0x0565, 0x0582
		}

	case code <= 0x13FF:
		switch {
		case (code >= 0x10A0 && code <= 0x10C5) || code == 0x10C7 || code == 0x10CD: // georgian
			code += 0x1C60
		case code >= 0x13F8 && code <= 0x13FD: // cherokee
			code -= 0x08
		}

	case code <= 0x1EFF: // vietnamese and other latin
		switch {
		case code >= 0x1E00 && code <= 0x1E95:
			code |= 0x0001
		case code >= 0x1E96 && code <= 0x1E9B:
			code2 = caseFold1E96b[code-0x1E96]
			code = caseFold1E96a[code-0x1E96]
		case code == 0x1E9E: // capital sharp s -> ss
			code, code2 = 's', 's'
		case code >= 0x1EA0 && code <= 0x1EFE:
			code |= 0x0001
		}

	case code <= 0x1FFF: // rare greek
		switch {
		case (code >= 0x1F08 && code <= 0x1F0F) ||
			(code >= 0x1F18 && code <= 0x1F1D) ||
			(code >= 0x1F28 && code <= 0x1F2F) ||
			(code >= 0x1F38 && code <= 0x1F3F) ||
			(code >= 0x1F48 && code <= 0x1F4D):
			code -= 0x08
		case code >= 0x1F50 && code <= 0x1F56 && code&0x1 == 0:
			code3 = caseFold1F50[code-0x1F50]
			code2 = 0x0313
			code = 0x03C5
		case (code >= 0x1F59 && code <= 0x1F5F && code&0x1 != 0) || (code >= 0x1F68 && code <= 0x1F6F):
			code -= 0x08
		case code >= 0x1F80 && code <= 0x1FAF:
			code2 = 0x03B9
			switch {
			case code <= 0x1F87:
				code -= 0x80
			case code <= 0x1F8F:
				code -= 0x88
			case code <= 0x1F97:
				code -= 0x70
			case code <= 0x1F9F:
				code -= 0x78
			case code <= 0x1FA7:
				code -= 0x40
			default:
				code -= 0x48
			}
		case code >= 0x1FB2 && code <= 0x1FFC:
			switch {
			case code <= 0x1FB4,
				code == 0x1FBC,
				code >= 0x1FC2 && code <= 0x1FC4,
				code == 0x1FCC,
				code >= 0x1FF2 && code <= 0x1FF4,
				code == 0x1FFC:
				code2 = 0x03B9
			case code == 0x1FB6 || code == 0x1FC6 || code == 0x1FD6 || code == 0x1FE6 || code == 0x1FF6:
				code2 = 0x0342
			case code == 0x1FB7 || code == 0x1FC7 || code == 0x1FF7:
				code2, code3 = 0x0342, 0x03B9
			case code >= 0x1FD2 && code <= 0x1FD3:
				code2, code3 = 0x0308, code-(0x1FD2-0x0300)
			case code == 0x1FD7 || code == 0x1FE7:
				code2, code3 = 0x0308, 0x0342
			case code >= 0x1FE2 && code <= 0x1FE3:
				code2, code3 = 0x0308, code-(0x1FE2-0x0300)
			case code == 0x1FE4:
				code2 = 0x0313
			}
			code = caseFold1FB2[code-0x1FB2]
		}

	case code <= 0x24FF: // symbols
		switch {
		case code == 0x2126: // ohm sign -> omega
			code = 0x03C9
		case code == 0x212A: // kelvin sign -> k
			code = 'k'
		case code == 0x212B: // angstrom sign -> a with ring above
			code = 0xE5
		case code == 0x2132:
			code = 0x214E
		case code >= 0x2160 && code <= 0x216F: // roman numerals
			code += 0x10
		case code == 0x2183:
			code += 0x01
		case code >= 0x24B6 && code <= 0x24CF: // circled latin
			code += 0x1A
		}

	case code <= 0x2CFF:
		switch {
		case code >= 0x2C00 && code <= 0x2C2E: // glagolitic
			code += 0x30
		case code >= 0x2C60 && code <= 0x2C7F: // rare latin
			code = caseFold2C60[code-0x2C60]
		case code >= 0x2C80 && code <= 0x2CF3: // coptic
			switch {
			case code <= 0x2CE3:
				code |= 0x0001
			case code == 0x2CEB || code == 0x2CED || code == 0x2CF2:
				code += 0x0001
			}
		}

	case code <= 0x9FFF:
		// cjk ideograms: no case distinction.

	case code <= 0xABFF:
		switch {
		case (code >= 0xA640 && code <= 0xA66D) || (code >= 0xA680 && code <= 0xA69B): // rare cyrillic
			code |= 0x0001
		case code >= 0xA722 && code <= 0xA76F && code != 0xA730: // rare latin
			code |= 0x0001
		case code >= 0xA779 && code <= 0xA77C:
			code += code & 0x0001
		case code == 0xA77D:
			code = 0x1D79
		case code >= 0xA77E && code <= 0xA787:
			code |= 0x0001
		case code == 0xA78B:
			code += 0x0001
		case code == 0xA78D:
			code = 0x0265
		case code >= 0xA790 && code <= 0xA7A9 && code != 0xA794:
			code |= 0x0001
		case code >= 0xA7AA && code <= 0xA7B6:
			code = caseFoldA7AA[code-0xA7AA]
		case code >= 0xAB70 && code <= 0xABBF: // cherokee
			code -= 0x97D0
		}

	case code <= 0xFAFF:
		// hangul, cjk, private use: no case distinction.

	case code <= 0xFBFF:
		switch {
		case code >= 0xFB00 && code <= 0xFB06: // latin ligatures
			switch {
			case code <= 0xFB04:
				switch code {
				case 0xFB01:
					code2 = 'i'
				case 0xFB02:
					code2 = 'l'
				default:
					code2 = 'f'
					switch code {
					case 0xFB03:
						code3 = 'i'
					case 0xFB04:
						code3 = 'l'
					}
				}
				code = 'f'
			case code <= 0xFB06:
				code, code2 = 's', 't'
			}
		case code >= 0xFB13 && code <= 0xFB17: // armenian ligatures
			code2 = caseFoldFB13b[code-0xFB13]
			code = caseFoldFB13a[code-0xFB13]
		}

	case code <= 0xFFFF:
		if code >= 0xFF21 && code <= 0xFF3A { // fullwidth latin uppercase
			code += 0x20
		}

	default:
		switch {
		case code >= 0x10400 && code <= 0x10427: // deseret
			code += 0x28
		case code >= 0x10C80 && code <= 0x10CB2: // old hungarian
			code += 0x40
		case code >= 0x118A0 && code <= 0x118BF: // warang citi
			code += 0x20
		}
	}

	out = append(out, code)
	if code2 != 0 {
		out = append(out, code2)
		if code3 != 0 {
			out = append(out, code3)
		}
	}
	return out
}

// caseFold0180 covers the irregular Latin Extended-B range 0x0180-0x01CA.
var caseFold0180 = [75]rune{
	0x0180, 0x0253, 0x0183, 0x0183, 0x0185, 0x0185, 0x0254, 0x0188,
	0x0188, 0x0256, 0x0257, 0x018C, 0x018C, 0x018D, 0x01DD, 0x0259,
	0x025B, 0x0192, 0x0192, 0x0260, 0x0263, 0x0195, 0x0269, 0x0268,
	0x0199, 0x0199, 0x019A, 0x019B, 0x026F, 0x0272, 0x019E, 0x0275,
	0x01A1, 0x01A1, 0x01A3, 0x01A3, 0x01A5, 0x01A5, 0x0280, 0x01A8,
	0x01A8, 0x0283, 0x01AA, 0x01AB, 0x01AD, 0x01AD, 0x0288, 0x01B0,
	0x01B0, 0x028A, 0x028B, 0x01B4, 0x01B4, 0x01B6, 0x01B6, 0x0292,
	0x01B9, 0x01B9, 0x01BA, 0x01BB, 0x01BD, 0x01BD, 0x01BE, 0x01BF,
	0x01C0, 0x01C1, 0x01C2, 0x01C3, 0x01C6, 0x01C6, 0x01C6, 0x01C9,
	0x01C9, 0x01C9, 0x01CC,
}

// caseFold01F0 covers the irregular Latin Extended-B range 0x01F0-0x024F.
var caseFold01F0 = [96]rune{
	0x01F0, 0x01F3, 0x01F3, 0x01F3, 0x01F5, 0x01F5, 0x0195, 0x01BF,
	0x01F9, 0x01F9, 0x01FB, 0x01FB, 0x01FD, 0x01FD, 0x01FF, 0x01FF,
	0x0201, 0x0201, 0x0203, 0x0203, 0x0205, 0x0205, 0x0207, 0x0207,
	0x0209, 0x0209, 0x020B, 0x020B, 0x020D, 0x020D, 0x020F, 0x020F,
	0x0211, 0x0211, 0x0213, 0x0213, 0x0215, 0x0215, 0x0217, 0x0217,
	0x0219, 0x0219, 0x021B, 0x021B, 0x021D, 0x021D, 0x021F, 0x021F,
	0x019E, 0x0221, 0x0223, 0x0223, 0x0225, 0x0225, 0x0227, 0x0227,
	0x0229, 0x0229, 0x022B, 0x022B, 0x022D, 0x022D, 0x022F, 0x022F,
	0x0231, 0x0231, 0x0233, 0x0233, 0x0234, 0x0235, 0x0236, 0x0237,
	0x0238, 0x0239, 0x2C65, 0x023C, 0x023C, 0x019A, 0x2C66, 0x023F,
	0x0240, 0x0242, 0x0242, 0x0180, 0x0289, 0x028C, 0x0247, 0x0247,
	0x0249, 0x0249, 0x024B, 0x024B, 0x024D, 0x024D, 0x024F, 0x024F,
}

// caseFold0370 covers the irregular range 0x0370-0x038F that precedes the
// regular Greek uppercase block.
var caseFold0370 = [32]rune{
	0x0371, 0x0371, 0x0373, 0x0373, 0x0374, 0x0375, 0x0377, 0x0377,
	0x0378, 0x0379, 0x037A, 0x037B, 0x037C, 0x037D, 0x037E, 0x03F3,
	0x0380, 0x0381, 0x0382, 0x0383, 0x0384, 0x0385, 0x03AC, 0x0387,
	0x03AD, 0x03AE, 0x03AF, 0x038B, 0x03CC, 0x038D, 0x03CD, 0x03CE,
}

// caseFold03CF covers the Greek archaic letters range 0x03CF-0x03D6.
var caseFold03CF = [8]rune{
	0x03D7, 0x03B2, 0x03B8, 0x03D2, 0x03D3, 0x03D4, 0x03C6, 0x03C0,
}

// caseFold03F0 covers Greek variant-letter range 0x03F0-0x03FF.
var caseFold03F0 = [16]rune{
	0x03BA, 0x03C1, 0x03F2, 0x03F3, 0x03B8, 0x03B5, 0x03F6, 0x03F8,
	0x03F8, 0x03F2, 0x03FB, 0x03FB, 0x03FC, 0x037B, 0x037C, 0x037D,
}

// caseFold1E96a and caseFold1E96b hold the two-codepoint expansions for the
// combining-mark-with-letter sequences at 0x1E96-0x1E9B.
var caseFold1E96a = [6]rune{'h', 't', 'w', 'y', 'a', 0x1E61}
var caseFold1E96b = [6]rune{0x0331, 0x0308, 0x030A, 0x030A, 0x02BE, 0}

// caseFold1F50 holds the third-codepoint accent for the even code points in
// 0x1F50-0x1F56 (upsilon with rough breathing and a varying tone accent).
var caseFold1F50 = [7]rune{0, 0, 0x0300, 0, 0x0301, 0, 0x0342}

// caseFold1FB2 covers the Greek-with-iota-subscript range 0x1FB2-0x1FFC.
var caseFold1FB2 = [75]rune{
	0x1F70, 0x03B1, 0x03AC, 0x1FB5, 0x03B1, 0x03B1, 0x1FB0, 0x1FB1,
	0x1F70, 0x1F71, 0x03B1, 0x1FBD, 0x03B9, 0x1FBF, 0x1FC0, 0x1FC1,
	0x1F74, 0x03B7, 0x03AE, 0x1FC5, 0x03B7, 0x03B7, 0x1F72, 0x1F73,
	0x1F74, 0x1F75, 0x03B7, 0x1FCD, 0x1FCE, 0x1FCF, 0x1FD0, 0x1FD1,
	0x03B9, 0x03B9, 0x1FD4, 0x1FD5, 0x03B9, 0x03B9, 0x1FD0, 0x1FD1,
	0x1F76, 0x1F77, 0x1FDC, 0x1FDD, 0x1FDE, 0x1FDF, 0x1FE0, 0x1FE1,
	0x03C5, 0x03C5, 0x03C1, 0x1FE5, 0x03C5, 0x03C5, 0x1FE0, 0x1FE1,
	0x1F7A, 0x1F7B, 0x1FE5, 0x1FED, 0x1FEE, 0x1FEF, 0x1FF0, 0x1FF1,
	0x1F7C, 0x03C9, 0x03CE, 0x1FF5, 0x03C9, 0x03C9, 0x1F78, 0x1F79,
	0x1F7C, 0x1F7D, 0x03C9,
}

// caseFold2C60 covers the rare-Latin range 0x2C60-0x2C7F.
var caseFold2C60 = [32]rune{
	0x2C61, 0x2C61, 0x026B, 0x1D7D, 0x027D, 0x2C65, 0x2C66, 0x2C68,
	0x2C68, 0x2C6A, 0x2C6A, 0x2C6C, 0x2C6C, 0x0251, 0x0271, 0x0250,
	0x0252, 0x2C71, 0x2C73, 0x2C73, 0x2C74, 0x2C76, 0x2C76, 0x2C77,
	0x2C78, 0x2C79, 0x2C7A, 0x2C7B, 0x2C7C, 0x2C7D, 0x023F, 0x0240,
}

// caseFoldA7AA covers the Latin Extended-D range 0xA7AA-0xA7B6.
var caseFoldA7AA = [13]rune{
	0x0266, 0x025C, 0x0261, 0x026C, 0xA7AE, 0xA7AF, 0x029E, 0x0287,
	0x029D, 0xAB53, 0xA7B5, 0xA7B5, 0xA7B7,
}

// caseFoldFB13a and caseFoldFB13b hold the two-codepoint expansions for the
// Armenian ligatures at 0xFB13-0xFB17.
var caseFoldFB13a = [5]rune{0x0574, 0x0574, 0x0574, 0x057E, 0x0574}
var caseFoldFB13b = [5]rune{0x0576, 0x0565, 0x056B, 0x0576, 0x056D}

package dicomcharset

import (
	"log"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// CodingSystem bundles the up-to-three decoders a DICOM PN-type element
// can use at once (Alphabetic, Ideographic, Phonetic, separated by "="
// within the element's value), per P3.5 6.2. Adapted from the teacher's
// original CodingSystem/parseSpecificCharacterSet: the same three-way
// split, now backed by this package's own codecs instead of delegating
// every charset straight to golang.org/x/text/encoding/htmlindex.
type CodingSystem struct {
	Alphabetic  *encoding.Decoder
	Ideographic *encoding.Decoder
	Phonetic    *encoding.Decoder
}

type CodingSystemType int

const (
	AlphabeticCodingSystem CodingSystemType = iota
	IdeographicCodingSystem
	PhoneticCodingSystem
)

// Encoding adapts a Key to golang.org/x/text/encoding.Encoding, so this
// package's codecs compose with the rest of the x/text ecosystem
// (transform.Chain, transform.NewReader, and so on).
type Encoding struct {
	Key  Key
	Mode MalformedMode
}

func (e Encoding) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: &decodeTransformer{key: e.Key, mode: e.Mode}}
}

func (e Encoding) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: &encodeTransformer{key: e.Key}}
}

type decodeTransformer struct {
	key  Key
	mode MalformedMode
}

func (t *decodeTransformer) Reset() {}

func (t *decodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !atEOF {
		// This package's decoders have no notion of a split multi-byte
		// sequence across calls; only accept a whole buffer at once.
		return 0, 0, transform.ErrShortSrc
	}
	out, _ := ToUTF8(t.key, src, t.mode)
	if len(dst) < len(out) {
		return 0, 0, transform.ErrShortDst
	}
	n := copy(dst, out)
	return n, len(src), nil
}

type encodeTransformer struct {
	key Key
}

func (t *encodeTransformer) Reset() {}

func (t *encodeTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	if !atEOF {
		return 0, 0, transform.ErrShortSrc
	}
	out, _ := FromUTF8(t.key, src)
	if len(dst) < len(out) {
		return 0, 0, transform.ErrShortDst
	}
	n := copy(dst, out)
	return n, len(src), nil
}

// htmlEncodingNames maps a name to the golang.org/x/text/encoding/htmlindex
// name NewCodingSystem falls back to, mirroring the teacher's original
// fallback path. NewCodingSystem consults it only when KeyFromString returns
// Unknown; every name listed here is also a registry alias, so KeyFromString
// resolves these names first and the map is not reached for them.
var htmlEncodingNames = map[string]string{
	"shift_jis": "shift_jis",
	"euc-kr":    "euc-kr",
	"gb18030":   "gb18030",
	"gbk":       "gbk",
	"big5":      "big5",
}

// NewCodingSystem resolves a DICOM SpecificCharacterSet value list
// (backslash-separated, as found in the element itself) to a CodingSystem,
// per the teacher's original parseSpecificCharacterSet. Unlike the
// original, the common path resolves entirely through KeyFromString/
// AnyToUTF8 rather than htmlindex; htmlindex is only consulted for a name
// this package's registry doesn't recognize at all.
func NewCodingSystem(encodingNames []string) (CodingSystem, error) {
	if len(encodingNames) == 0 {
		return CodingSystem{}, nil
	}
	var decoders []*encoding.Decoder
	for _, name := range encodingNames {
		key := KeyFromString(name)
		if key != Unknown {
			decoders = append(decoders, Encoding{Key: key}.NewDecoder())
			continue
		}
		htmlName, ok := htmlEncodingNames[name]
		if !ok {
			log.Printf("Unknown character set %q. Assuming UTF-8", name)
			decoders = append(decoders, nil)
			continue
		}
		d, err := htmlindex.Get(htmlName)
		if err != nil {
			log.Panicf("encoding name %s (for %s) not found", name, htmlName)
		}
		decoders = append(decoders, d.NewDecoder())
	}
	switch len(decoders) {
	case 1:
		return CodingSystem{decoders[0], decoders[0], decoders[0]}, nil
	case 2:
		return CodingSystem{decoders[0], decoders[1], decoders[1]}, nil
	default:
		return CodingSystem{decoders[0], decoders[1], decoders[2]}, nil
	}
}

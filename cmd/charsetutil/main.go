// Command charsetutil exercises the dicomcharset façade end to end:
// decode or encode a buffer under a named DICOM SpecificCharacterSet
// value, or print the canonical charset string for a given one. Shaped
// after the teacher's bin/dicom.go and dicomutil/dicomutil.go: flags in,
// buffers out, diagnostics via log.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/gillesdemey/dicomcharset"
)

func main() {
	charset := flag.String("charset", "", "DICOM SpecificCharacterSet value (backslash-separated for combined Japanese sets)")
	encode := flag.Bool("encode", false, "encode stdin (UTF-8) into the named charset instead of decoding")
	safe := flag.Bool("safe", false, "after decoding, octal-escape control bytes and backslashes")
	mode := flag.String("mode", "replace", "malformed-byte handling: ignore, replace, escape")
	flag.Parse()

	key := dicomcharset.KeyFromString(*charset)
	if key == dicomcharset.Unknown {
		log.Fatalf("charsetutil: unrecognized charset %q", *charset)
	}

	m, err := parseMode(*mode)
	if err != nil {
		log.Fatalf("charsetutil: %v", err)
	}

	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Fatalf("charsetutil: reading stdin: %v", err)
	}

	if *encode {
		out, pos := dicomcharset.FromUTF8(key, input)
		if pos != len(input) {
			log.Printf("charsetutil: first unmappable code point at UTF-8 byte offset %d", pos)
		}
		os.Stdout.Write(out)
		return
	}

	if *safe {
		os.Stdout.Write(dicomcharset.ToSafeUTF8(key, input))
		return
	}

	out, pos := dicomcharset.ToUTF8(key, input, m)
	if pos != len(input) {
		log.Printf("charsetutil: first malformed byte at offset %d", pos)
	}
	os.Stdout.Write(out)
}

func parseMode(s string) (dicomcharset.MalformedMode, error) {
	switch s {
	case "ignore":
		return dicomcharset.ModeIgnore, nil
	case "replace":
		return dicomcharset.ModeReplace, nil
	case "escape":
		return dicomcharset.ModeEscape, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}

package dicomcharset

// Config snapshots the process-wide tunables spec.md §5/§9 call for:
// the malformed-byte handling mode and whether the Windows-C1 overlay is
// applied to the three ISO-8859 defined terms DICOM producers sometimes
// conflate with a Windows code page (sbcs.go's wincodesUsed).
// ToUTF8WithConfig takes a Config value explicitly; the other façade entry
// points (ToUTF8, FromUTF8, ...) take a MalformedMode argument and read no
// Config. GlobalDefault/GlobalOverride below are what resolveConfig returns
// when no explicit Config is given; no façade entry point reads them.
type Config struct {
	Mode         MalformedMode
	WindowsC1    bool
}

// GlobalDefault is the Config resolveConfig returns when no explicit Config
// is given and GlobalOverride is nil: ModeReplace with the Windows C1
// overlay on, matching the original library's compiled-in defaults.
var GlobalDefault = Config{Mode: ModeReplace, WindowsC1: true}

// GlobalOverride, when non-nil, takes priority over GlobalDefault in
// resolveConfig.
var GlobalOverride *Config

// resolveConfig returns cfg if explicit is true, else the effective
// process-wide default (GlobalOverride if set, else GlobalDefault).
func resolveConfig(cfg Config, explicit bool) Config {
	if explicit {
		return cfg
	}
	if GlobalOverride != nil {
		return *GlobalOverride
	}
	return GlobalDefault
}

// ToUTF8WithConfig is ToUTF8 using a Config instead of an explicit mode,
// honoring cfg.WindowsC1 by disabling the Windows-C1 overlay on the
// single-byte charsets that normally get one (sbcs.go's wincodesUsed)
// when the caller opts out of it.
func ToUTF8WithConfig(key Key, text []byte, cfg Config) ([]byte, int) {
	base := key.Base()
	if !cfg.WindowsC1 && !key.IsISO2022() {
		switch base {
		case ISO_IR_100, ISO_IR_148, ISO_IR_166:
			return singleByteToUTF8NoOverlay(base, text, cfg.Mode)
		}
	}
	return ToUTF8(key, text, cfg.Mode)
}

// singleByteToUTF8NoOverlay is SingleByteToUTF8 with the Windows-C1
// overlay forced off, for Config.WindowsC1 == false.
func singleByteToUTF8NoOverlay(base Key, text []byte, mode MalformedMode) ([]byte, int) {
	table := sbcsForward[base]
	if table == nil {
		return ASCIIToUTF8(text, mode)
	}
	var out []byte
	errPos := -1
	for i, c := range text {
		if c < 0x80 {
			out = append(out, c)
			continue
		}
		code := table.Lookup(uint16(c))
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

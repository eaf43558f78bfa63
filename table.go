package dicomcharset

import "sort"

// RCHAR is the sentinel value used throughout the compressed tables: it
// marks a region as neither linear nor dense (an unmapped range), and is
// also the replacement code point emitted for input that can't be decoded.
// It is the same value as the Unicode replacement character, U+FFFD.
const RCHAR uint16 = 0xFFFD

// region describes one contiguous span of the table's input space, laid
// out exactly as spec.md §3 describes the on-disk layout (L/Clin/Cunc/D):
// a start L, and either a linear offset (Clin) or a dense-block offset
// (Cunc) into the table's D array — never both.
type region struct {
	start uint16 // L[i]: region start in input-key space
	clin  uint16 // Clin[i]; RCHAR if this region is not linear
	cunc  uint16 // Cunc[i]; RCHAR if this region is not dense
}

// compressedTable is the reader half of spec.md §4.A: an immutable index
// over monotonically increasing regions of 16-bit input keys, each either
// linearly shifted or backed by a dense block of decoded values. It
// corresponds to vtkDICOMCharacterSet's private CompressedTable class
// (original_source/Source/vtkDICOMCharacterSet.cxx): the hot-pointer
// linear probe tried before the binary search is carried over verbatim,
// since it is the documented reason the format is fast enough to embed
// several CJK tables inline (spec.md §4.A).
type compressedTable struct {
	hot     []int // H: indices into regions naming "hot" starting points
	regions []region
	upper   uint16 // L[N]: the upper sentinel, one past the last real region
	dense   []uint16 // D: dense decoded values
}

// newCompressedTable builds a table from already-decided regions (each
// covering [start, next region's start)) plus the dense value pool they
// reference, and picks hot pointers for the largest regions so that the
// common case is a linear probe instead of a binary search.
//
// regions must be sorted by start and describe a partition of the input
// space; upper is the exclusive upper bound of the last region.
func newCompressedTable(regions []region, upper uint16, dense []uint16, hotCount int) *compressedTable {
	t := &compressedTable{regions: regions, upper: upper, dense: dense}
	if hotCount > len(regions) {
		hotCount = len(regions)
	}
	if hotCount <= 0 {
		return t
	}
	// Rank regions by width and mark the widest hotCount of them, which
	// is the natural heuristic for "used most often" absent real traffic
	// statistics — the ASCII/Latin run in every table is both the widest
	// region and the hottest in practice.
	order := make([]int, len(regions))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return t.width(order[a]) > t.width(order[b])
	})
	t.hot = append([]int(nil), order[:hotCount]...)
	return t
}

func (t *compressedTable) width(i int) uint16 {
	if i+1 < len(t.regions) {
		return t.regions[i+1].start - t.regions[i].start
	}
	return t.upper - t.regions[i].start
}

// regionEnd returns the exclusive end of region i.
func (t *compressedTable) regionEnd(i int) uint16 {
	if i+1 < len(t.regions) {
		return t.regions[i+1].start
	}
	return t.upper
}

// Lookup implements the forward lookup T[x] of spec.md §4.A: probe the hot
// regions with a linear scan first, then fall back to a binary search over
// region starts.
func (t *compressedTable) Lookup(x uint16) uint16 {
	i, ok := t.findHot(x)
	if !ok {
		i = t.findBinary(x)
	}
	return t.resolve(i, x)
}

func (t *compressedTable) findHot(x uint16) (int, bool) {
	for _, i := range t.hot {
		if x >= t.regions[i].start && x < t.regionEnd(i) {
			return i, true
		}
	}
	return 0, false
}

// findBinary returns the index of the region with the greatest start <= x.
// x is assumed to be < t.upper; callers that allow x == t.upper (there is
// no such region) should not call this directly.
func (t *compressedTable) findBinary(x uint16) int {
	i := sort.Search(len(t.regions), func(i int) bool {
		return t.regions[i].start > x
	})
	return i - 1
}

func (t *compressedTable) resolve(i int, x uint16) uint16 {
	if i < 0 || i >= len(t.regions) {
		return RCHAR
	}
	r := t.regions[i]
	if r.clin != RCHAR {
		return r.clin + (x - r.start)
	}
	if r.cunc != RCHAR {
		off := r.cunc + (x - r.start)
		if int(off) < len(t.dense) {
			return t.dense[off]
		}
	}
	return RCHAR
}

// GetBlock returns the dense block starting at input key x, for callers
// (Hangul Jamo composition, cjk_euckr.go) that need to binary-search a
// whole precomposed-syllable block rather than probe one code at a time.
// x must be the exact start of a dense region; behavior is undefined
// otherwise, matching vtkDICOMCharacterSet::CompressedTable::GetBlock.
func (t *compressedTable) GetBlock(x uint16) []uint16 {
	for _, r := range t.regions {
		if r.start == x && r.cunc != RCHAR {
			return t.dense[r.cunc:]
		}
	}
	return nil
}

// reverseTable wraps a compressedTable to accept a 32-bit Unicode code
// point per spec.md §3's "Reverse lookup table": values above 0xFFFD (the
// sentinel) always miss.
type reverseTable struct {
	table *compressedTable
	// extraCode, when non-zero, special-cases one code point outside the
	// BMP, mapping it to extraValue (used by the JIS X 0208 reverse table
	// for U+20B9F; set in cjk_tables.go).
	extraCode  rune
	extraValue uint16
}

func (r *reverseTable) Lookup(cp rune) uint16 {
	if cp >= 0 && cp <= rune(RCHAR) {
		return r.table.Lookup(uint16(cp))
	}
	if r.extraCode != 0 && cp == r.extraCode {
		return r.extraValue
	}
	return RCHAR
}

// tableBuilder accumulates (input, output) pairs and compiles them into a
// compressedTable, merging adjacent linear runs and falling back to a
// dense block otherwise. It is the in-process equivalent of the "generate
// a compressed table" step that spec.md §9 says belongs in a companion
// tool if the target language lacks inline binary literals — Go doesn't
// lack them, but hand-transcribing several thousand-entry CJK tables by
// hand is exactly the case §9 describes, so charsets built from a real
// source (see sbcs_tables.go) go through this builder instead.
type tableBuilder struct {
	pairs      map[uint16]uint16
	max        uint16
	boundaries map[uint16]bool
}

func newTableBuilder() *tableBuilder {
	return &tableBuilder{pairs: make(map[uint16]uint16)}
}

func (b *tableBuilder) set(x, y uint16) {
	b.pairs[x] = y
	if x >= b.max {
		b.max = x + 1
	}
}

// forceBoundary guarantees that build's dense/linear region scan starts a
// new region at x, even if x continues a contiguous run from the previous
// key. Callers that later need GetBlock(x) to find a named sub-table (the
// EUC-KR Hangul composition block, cjk_euckr.go) must call this before
// build so the region the table-generation loop produced for the
// surrounding table actually has a boundary there.
func (b *tableBuilder) forceBoundary(x uint16) {
	if b.boundaries == nil {
		b.boundaries = make(map[uint16]bool)
	}
	b.boundaries[x] = true
}

// build compiles the accumulated pairs into a compressedTable covering
// [0, upper). Any input in that range with no recorded pair resolves to
// RCHAR, matching an unmapped byte/code point.
func (b *tableBuilder) build(upper uint16, hotCount int) *compressedTable {
	if upper < b.max {
		upper = b.max
	}
	keys := make([]uint16, 0, len(b.pairs))
	for k := range b.pairs {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var regions []region
	var dense []uint16
	i := 0
	prevEnd := uint16(0)
	for i < len(keys) {
		if keys[i] > prevEnd {
			// Gap: an implicit RCHAR region.
			regions = append(regions, region{start: prevEnd, clin: RCHAR, cunc: RCHAR})
		}
		start := keys[i]
		startVal := b.pairs[start]

		// Try to extend a linear run: y increases by exactly 1 per x.
		j := i + 1
		linear := true
		for j < len(keys) && keys[j] == keys[j-1]+1 && !b.boundaries[keys[j]] {
			if b.pairs[keys[j]] != startVal+uint16(j-i) {
				linear = false
				break
			}
			j++
		}
		if linear && j > i+1 {
			regions = append(regions, region{start: start, clin: startVal, cunc: RCHAR})
			prevEnd = keys[j-1] + 1
			i = j
			continue
		}

		// Otherwise accumulate a dense run of contiguous keys (not
		// necessarily linear in value), stopping early at a forced
		// boundary so a later GetBlock(x) call can find it.
		j = i + 1
		for j < len(keys) && keys[j] == keys[j-1]+1 && !b.boundaries[keys[j]] {
			j++
		}
		cuncBase := uint16(len(dense))
		for k := i; k < j; k++ {
			dense = append(dense, b.pairs[keys[k]])
		}
		regions = append(regions, region{start: start, clin: RCHAR, cunc: cuncBase})
		prevEnd = keys[j-1] + 1
		i = j
	}
	if prevEnd < upper {
		regions = append(regions, region{start: prevEnd, clin: RCHAR, cunc: RCHAR})
	}
	if len(regions) == 0 {
		regions = []region{{start: 0, clin: RCHAR, cunc: RCHAR}}
	}
	return newCompressedTable(regions, upper, dense, hotCount)
}

// buildReverse compiles the accumulated pairs (Unicode code point -> legacy
// code) into a reverseTable, the mirror of build for §3's reverse tables.
func (b *tableBuilder) buildReverse(upper uint16, hotCount int) *reverseTable {
	return &reverseTable{table: b.build(upper, hotCount)}
}

package dicomcharset

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Decoder reads primitive values off an io.Reader with a byte budget,
// adapted from the teacher's original buffer.go Decoder (itself built for
// streaming DICOM element values): same pos/limit-stack bookkeeping and
// binary.Read-based scalar decoders, retargeted here at the compressed
// table-file format (spec.md §6) instead of DICOM value fields.
type Decoder struct {
	in  io.Reader
	err error

	bo binary.ByteOrder

	pos    int
	limits []int
}

func NewDecoder(in io.Reader, limit int, bo binary.ByteOrder) *Decoder {
	return &Decoder{in: in, bo: bo, limits: []int{limit}}
}

func (d *Decoder) PushLimit(limit int) { d.limits = append(d.limits, d.pos+limit) }
func (d *Decoder) PopLimit()           { d.limits = d.limits[:len(d.limits)-1] }
func (d *Decoder) Pos() int            { return d.pos }
func (d *Decoder) Error() error        { return d.err }

func (d *Decoder) Finish() error {
	if d.err != nil {
		return d.err
	}
	if d.Available() != 0 {
		return fmt.Errorf("dicomcharset: table file has %d trailing bytes", d.Available())
	}
	return nil
}

func (d *Decoder) Available() int { return d.limits[len(d.limits)-1] - d.pos }

func (d *Decoder) Read(p []byte) (int, error) {
	desired := d.Available()
	if desired == 0 {
		if len(p) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	if desired < len(p) {
		p = p[:desired]
	}
	n, err := d.in.Read(p)
	d.pos += n
	return n, err
}

func (d *Decoder) DecodeUInt16() (v uint16) {
	if err := binary.Read(d, d.bo, &v); err != nil {
		d.err = err
	}
	return v
}

func (d *Decoder) DecodeUInt16Slice(n int) []uint16 {
	v := make([]uint16, n)
	for i := range v {
		v[i] = d.DecodeUInt16()
		if d.err != nil {
			break
		}
	}
	return v
}

// WriteTable serializes t per spec.md §6's "Compressed-table file layout":
// a header of M (region count), N (dense-array length) and the hot-pointer
// count, the hot-pointer list H, then the per-region L/Clin/Cunc arrays (L carries M+1 entries,
// the extra one being the upper sentinel), then the D dense array — all
// little-endian uint16.
func WriteTable(w io.Writer, t *compressedTable) error {
	bo := binary.LittleEndian
	M := uint16(len(t.regions))
	N := uint16(len(t.dense))
	if err := binary.Write(w, bo, M); err != nil {
		return err
	}
	if err := binary.Write(w, bo, N); err != nil {
		return err
	}
	if err := binary.Write(w, bo, uint16(len(t.hot))); err != nil {
		return err
	}
	for _, h := range t.hot {
		if err := binary.Write(w, bo, uint16(h)); err != nil {
			return err
		}
	}
	for _, r := range t.regions {
		if err := binary.Write(w, bo, r.start); err != nil {
			return err
		}
	}
	if err := binary.Write(w, bo, t.upper); err != nil {
		return err
	}
	for _, r := range t.regions {
		if err := binary.Write(w, bo, r.clin); err != nil {
			return err
		}
	}
	for _, r := range t.regions {
		if err := binary.Write(w, bo, r.cunc); err != nil {
			return err
		}
	}
	for _, v := range t.dense {
		if err := binary.Write(w, bo, v); err != nil {
			return err
		}
	}
	return nil
}

// ReadTable deserializes a compressedTable written by WriteTable.
func ReadTable(r io.Reader, byteLen int) (*compressedTable, error) {
	d := NewDecoder(r, byteLen, binary.LittleEndian)
	M := int(d.DecodeUInt16())
	N := int(d.DecodeUInt16())
	hotCount := int(d.DecodeUInt16())
	hot := make([]int, hotCount)
	for i := range hot {
		hot[i] = int(d.DecodeUInt16())
	}
	starts := d.DecodeUInt16Slice(M)
	upper := d.DecodeUInt16()
	clin := d.DecodeUInt16Slice(M)
	cunc := d.DecodeUInt16Slice(M)
	dense := d.DecodeUInt16Slice(N)
	if err := d.Finish(); err != nil {
		return nil, err
	}
	regions := make([]region, M)
	for i := range regions {
		regions[i] = region{start: starts[i], clin: clin[i], cunc: cunc[i]}
	}
	return &compressedTable{hot: hot, regions: regions, upper: upper, dense: dense}, nil
}

package interp

import (
	"encoding"
	"encoding/binary"
	"errors"
	"io"
	"math"
)

const (
	// maxLen is the biggest slice/array len one can create on a 32/64b platform.
	maxLen = int64(int(^uint(0) >> 1))
)

var (
	sizeInt64   = binary.Size(int64(0))
	sizeFloat64 = binary.Size(float64(0))

	_ encoding.BinaryMarshaler   = (*CSC)(nil)
	_ encoding.BinaryUnmarshaler = (*CSC)(nil)
	_ encoding.BinaryMarshaler   = (*Pattern)(nil)
	_ encoding.BinaryUnmarshaler = (*Pattern)(nil)

	errTooBig   = errors.New("interp: matrix too large to be serialised")
	errTooSmall = errors.New("interp: byte buffer too small to unmarshal a matrix")
)

func writeInts(buf []byte, p int, v []int) int {
	for _, x := range v {
		binary.LittleEndian.PutUint64(buf[p:p+sizeInt64], uint64(x))
		p += sizeInt64
	}
	return p
}

func writeFloats(buf []byte, p int, v []float64) int {
	for _, x := range v {
		binary.LittleEndian.PutUint64(buf[p:p+sizeFloat64], math.Float64bits(x))
		p += sizeFloat64
	}
	return p
}

func readInts(buf []byte, p int, v []int) int {
	for i := range v {
		v[i] = int(int64(binary.LittleEndian.Uint64(buf[p : p+sizeInt64])))
		p += sizeInt64
	}
	return p
}

func readFloats(buf []byte, p int, v []float64) int {
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[p : p+sizeFloat64]))
		p += sizeFloat64
	}
	return p
}

// MarshalBinary binary serialises the receiver into a []byte and returns the result.
//
// CSC is little-endian encoded as follows:
//
//	 0 -  7  number of rows    (int64)
//	 8 - 15  number of columns (int64)
//	16 - 23  number of non zero elements (int64)
//	24 - ..  column pointers   (cols+1 * int64)
//	.. - ..  row indices       (nnz * int64)
//	.. - ..  data elements     (nnz * float64)
func (c *CSC) MarshalBinary() ([]byte, error) {
	bufLen := int64(3+len(c.matrix.Indptr)+len(c.matrix.Ind))*int64(sizeInt64) +
		int64(len(c.matrix.Data))*int64(sizeFloat64)
	if bufLen <= 0 || bufLen > maxLen {
		return nil, errTooBig
	}

	buf := make([]byte, bufLen)
	p := writeInts(buf, 0, []int{c.matrix.J, c.matrix.I, c.NNZ()})
	p = writeInts(buf, p, c.matrix.Indptr)
	p = writeInts(buf, p, c.matrix.Ind)
	writeFloats(buf, p, c.matrix.Data)

	return buf, nil
}

// MarshalBinaryTo binary serialises the receiver and writes it into w.
// MarshalBinaryTo returns the number of bytes written into w and an error, if any.
//
// See MarshalBinary for the serialised layout.
func (c *CSC) MarshalBinaryTo(w io.Writer) (int, error) {
	buf, err := c.MarshalBinary()
	if err != nil {
		return 0, err
	}
	return w.Write(buf)
}

// UnmarshalBinary binary deserialises the []byte into the receiver,
// overwriting any previous contents.
//
// See MarshalBinary for the on-disk layout.
func (c *CSC) UnmarshalBinary(data []byte) error {
	if len(data) < 3*sizeInt64 {
		return errTooSmall
	}

	header := make([]int, 3)
	p := readInts(data, 0, header)
	r, cc, nnz := header[0], header[1], header[2]
	if r < 0 || cc < 0 || nnz < 0 {
		return errors.New("interp: unmarshalling a malformed matrix header")
	}
	want := int64(3+cc+1+nnz)*int64(sizeInt64) + int64(nnz)*int64(sizeFloat64)
	if int64(len(data)) < want {
		return errTooSmall
	}

	indptr := make([]int, cc+1)
	ind := make([]int, nnz)
	vals := make([]float64, nnz)
	p = readInts(data, p, indptr)
	p = readInts(data, p, ind)
	readFloats(data, p, vals)

	if indptr[cc] != nnz {
		return errors.New("interp: unmarshalling a malformed column pointer array")
	}
	for _, i := range ind {
		if i < 0 || i >= r {
			return errors.New("interp: unmarshalling a row index out of range")
		}
	}

	*c = *NewCSC(r, cc, indptr, ind, vals)
	return nil
}

// UnmarshalBinaryFrom binary deserialises the matrix read from r into the
// receiver.  It returns the number of bytes read and an error, if any.
//
// See MarshalBinary for the on-disk layout.
func (c *CSC) UnmarshalBinaryFrom(r io.Reader) (int, error) {
	header := make([]byte, 3*sizeInt64)
	n, err := io.ReadFull(r, header)
	if err != nil {
		return n, err
	}
	rows := int(int64(binary.LittleEndian.Uint64(header[0:sizeInt64])))
	cols := int(int64(binary.LittleEndian.Uint64(header[sizeInt64 : 2*sizeInt64])))
	nnz := int(int64(binary.LittleEndian.Uint64(header[2*sizeInt64 : 3*sizeInt64])))
	if rows < 0 || cols < 0 || nnz < 0 {
		return n, errors.New("interp: unmarshalling a malformed matrix header")
	}

	body := make([]byte, int64(cols+1+nnz)*int64(sizeInt64)+int64(nnz)*int64(sizeFloat64))
	nn, err := io.ReadFull(r, body)
	n += nn
	if err != nil {
		return n, err
	}

	buf := append(header, body...)
	return n, c.UnmarshalBinary(buf)
}

// MarshalBinary binary serialises the receiver into a []byte and returns the result.
//
// Pattern is little-endian encoded as follows:
//
//	 0 -  7  number of rows    (int64)
//	 8 - 15  number of columns (int64)
//	16 - 23  number of stored entries (int64)
//	24 - ..  column pointers   (cols+1 * int64)
//	.. - ..  row indices       (nnz * int64)
//
// No data elements are stored; every stored entry of a Pattern is implicitly 1.
func (p *Pattern) MarshalBinary() ([]byte, error) {
	bufLen := int64(3+len(p.indptr)+len(p.ind)) * int64(sizeInt64)
	if bufLen <= 0 || bufLen > maxLen {
		return nil, errTooBig
	}

	buf := make([]byte, bufLen)
	q := writeInts(buf, 0, []int{p.r, p.c, p.NNZ()})
	q = writeInts(buf, q, p.indptr)
	writeInts(buf, q, p.ind)

	return buf, nil
}

// MarshalBinaryTo binary serialises the receiver and writes it into w.
// MarshalBinaryTo returns the number of bytes written into w and an error, if any.
//
// See MarshalBinary for the serialised layout.
func (p *Pattern) MarshalBinaryTo(w io.Writer) (int, error) {
	buf, err := p.MarshalBinary()
	if err != nil {
		return 0, err
	}
	return w.Write(buf)
}

// UnmarshalBinary binary deserialises the []byte into the receiver.
//
// See MarshalBinary for the on-disk layout.
func (p *Pattern) UnmarshalBinary(data []byte) error {
	if len(data) < 3*sizeInt64 {
		return errTooSmall
	}

	header := make([]int, 3)
	q := readInts(data, 0, header)
	r, c, nnz := header[0], header[1], header[2]
	if r < 0 || c < 0 || nnz < 0 {
		return errors.New("interp: unmarshalling a malformed matrix header")
	}
	if int64(len(data)) < int64(3+c+1+nnz)*int64(sizeInt64) {
		return errTooSmall
	}

	indptr := make([]int, c+1)
	ind := make([]int, nnz)
	q = readInts(data, q, indptr)
	readInts(data, q, ind)

	if indptr[c] != nnz {
		return errors.New("interp: unmarshalling a malformed column pointer array")
	}
	for _, i := range ind {
		if i < 0 || i >= r {
			return errors.New("interp: unmarshalling a row index out of range")
		}
	}

	*p = *NewPattern(r, c, indptr, ind)
	return nil
}

// UnmarshalBinaryFrom binary deserialises the matrix read from r into the
// receiver.  It returns the number of bytes read and an error, if any.
//
// See MarshalBinary for the on-disk layout.
func (p *Pattern) UnmarshalBinaryFrom(r io.Reader) (int, error) {
	header := make([]byte, 3*sizeInt64)
	n, err := io.ReadFull(r, header)
	if err != nil {
		return n, err
	}
	cols := int(int64(binary.LittleEndian.Uint64(header[sizeInt64 : 2*sizeInt64])))
	nnz := int(int64(binary.LittleEndian.Uint64(header[2*sizeInt64 : 3*sizeInt64])))
	if cols < 0 || nnz < 0 {
		return n, errors.New("interp: unmarshalling a malformed matrix header")
	}

	body := make([]byte, int64(cols+1+nnz)*int64(sizeInt64))
	nn, err := io.ReadFull(r, body)
	n += nn
	if err != nil {
		return n, err
	}

	buf := append(header, body...)
	return n, p.UnmarshalBinary(buf)
}

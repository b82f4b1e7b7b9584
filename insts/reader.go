package insts

import "fmt"

// InsufficientBytesError reports a read past the end of the byte
// stream. Decoding a truncated stream surfaces it as a typed result.
type InsufficientBytesError struct {
	Need int // bytes requested
	Have int // bytes remaining
}

func (e *InsufficientBytesError) Error() string {
	return fmt.Sprintf("insufficient bytes: need %d, have %d", e.Need, e.Have)
}

// Reader is a cursor over a byte stream of encoded instructions.
// Reads never panic; running past the end returns
// *InsufficientBytesError and leaves the position unchanged.
type Reader struct {
	data []byte
	pos  int
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// ReadU8 consumes one byte.
func (r *Reader) ReadU8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, &InsufficientBytesError{Need: 1, Have: r.Remaining()}
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// ReadU16LE consumes two bytes as an unsigned little-endian value,
// low byte first.
func (r *Reader) ReadU16LE() (uint16, error) {
	if r.Remaining() < 2 {
		return 0, &InsufficientBytesError{Need: 2, Have: r.Remaining()}
	}
	lo := uint16(r.data[r.pos])
	hi := uint16(r.data[r.pos+1])
	r.pos += 2
	return hi<<8 | lo, nil
}

// Pos reports how many bytes have been consumed.
func (r *Reader) Pos() int {
	return r.pos
}

// Remaining reports how many bytes are left to read.
func (r *Reader) Remaining() int {
	return len(r.data) - r.pos
}

package classfile

import (
	"encoding/binary"
	"io"
	"math"
)

// Reader is a random-access, big-endian cursor over a class file's bytes.
// It is the only component in the package that touches raw bytes; every
// other decoder is defined purely in terms of Reader operations.
type Reader struct {
	buf    []byte
	offset int
}

// newReader loads source fully into memory and wraps it in a Reader.
// Class files are small enough (tens of milliseconds even at 6MB) that
// there is no benefit to a streaming interface here.
func newReader(source io.Reader) (*Reader, error) {
	buf, err := io.ReadAll(source)
	if err != nil {
		return nil, err
	}
	return &Reader{buf: buf}, nil
}

// Offset returns the current absolute byte offset.
func (r *Reader) Offset() int {
	return r.offset
}

// Len returns the total number of bytes in the source.
func (r *Reader) Len() int {
	return len(r.buf)
}

// Seek moves the cursor to an absolute offset. It does not validate that
// offset lies within bounds; the next read will fail with UnexpectedEof
// if it doesn't.
func (r *Reader) Seek(offset int) {
	r.offset = offset
}

func (r *Reader) require(n int) error {
	if r.offset+n > len(r.buf) {
		return &ParseError{Kind: KindUnexpectedEof, Offset: r.offset}
	}
	return nil
}

// ReadU1 reads a single unsigned byte.
func (r *Reader) ReadU1() (uint8, error) {
	if err := r.require(1); err != nil {
		return 0, err
	}
	b := r.buf[r.offset]
	r.offset++
	return b, nil
}

// ReadU2 reads a big-endian 16-bit unsigned integer.
func (r *Reader) ReadU2() (uint16, error) {
	if err := r.require(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.offset:])
	r.offset += 2
	return v, nil
}

// ReadU4 reads a big-endian 32-bit unsigned integer.
func (r *Reader) ReadU4() (uint32, error) {
	if err := r.require(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.offset:])
	r.offset += 4
	return v, nil
}

// ReadI4 reads a big-endian 32-bit signed integer.
func (r *Reader) ReadI4() (int32, error) {
	v, err := r.ReadU4()
	return int32(v), err
}

// ReadI8 reads a big-endian 64-bit signed integer.
func (r *Reader) ReadI8() (int64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.offset:])
	r.offset += 8
	return int64(v), nil
}

// ReadF4 reads a big-endian IEEE-754 32-bit float.
func (r *Reader) ReadF4() (float32, error) {
	v, err := r.ReadU4()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadF8 reads a big-endian IEEE-754 64-bit float.
func (r *Reader) ReadF8() (float64, error) {
	if err := r.require(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.offset:])
	r.offset += 8
	return math.Float64frombits(v), nil
}

// ReadBytes reads a slice of exactly n bytes. The returned slice is a copy;
// callers may retain it past the life of the Reader.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, &ParseError{Kind: KindUnexpectedEof, Offset: r.offset}
	}
	if err := r.require(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.offset:r.offset+n])
	r.offset += n
	return out, nil
}

// Remaining reports how many bytes are left unread.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.offset
}

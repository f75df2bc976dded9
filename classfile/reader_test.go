package classfile

import (
	"bytes"
	"errors"
	"testing"
)

func TestReaderFixedWidth(t *testing.T) {
	buf := []byte{
		0x01,                   // u1
		0x02, 0x03,             // u2
		0x04, 0x05, 0x06, 0x07, // u4
	}
	r, err := newReader(bytes.NewReader(buf))
	if err != nil {
		t.Fatalf("newReader: %v", err)
	}

	u1, err := r.ReadU1()
	if err != nil || u1 != 0x01 {
		t.Fatalf("ReadU1 = %d, %v", u1, err)
	}
	u2, err := r.ReadU2()
	if err != nil || u2 != 0x0203 {
		t.Fatalf("ReadU2 = %d, %v", u2, err)
	}
	u4, err := r.ReadU4()
	if err != nil || u4 != 0x04050607 {
		t.Fatalf("ReadU4 = %d, %v", u4, err)
	}
	if r.Remaining() != 0 {
		t.Fatalf("Remaining = %d, want 0", r.Remaining())
	}
}

func TestReaderUnexpectedEof(t *testing.T) {
	r, _ := newReader(bytes.NewReader([]byte{0x01}))
	if _, err := r.ReadU2(); err == nil {
		t.Fatal("expected error reading past end")
	} else {
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Kind != KindUnexpectedEof {
			t.Fatalf("got %v, want KindUnexpectedEof", err)
		}
	}
}

func TestReaderSeek(t *testing.T) {
	r, _ := newReader(bytes.NewReader([]byte{0xAA, 0xBB, 0xCC}))
	r.Seek(2)
	b, err := r.ReadU1()
	if err != nil || b != 0xCC {
		t.Fatalf("ReadU1 after Seek = %d, %v", b, err)
	}
}

func TestReaderReadBytesCopies(t *testing.T) {
	r, _ := newReader(bytes.NewReader([]byte{1, 2, 3, 4}))
	out, err := r.ReadBytes(4)
	if err != nil {
		t.Fatalf("ReadBytes: %v", err)
	}
	out[0] = 0xFF
	if r.buf[0] == 0xFF {
		t.Fatal("ReadBytes returned a view, not a copy")
	}
}

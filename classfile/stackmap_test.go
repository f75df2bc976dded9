package classfile

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeStackMapFrameSame(t *testing.T) {
	r, _ := newReader(bytes.NewReader([]byte{10}))
	f, err := decodeStackMapFrame(r)
	if err != nil {
		t.Fatalf("decodeStackMapFrame: %v", err)
	}
	if f.Kind != FrameSame || f.OffsetDelta != 10 {
		t.Fatalf("got %+v", f)
	}
}

func TestDecodeStackMapFrameAppend(t *testing.T) {
	// tag 252 => Append with k = 252-251 = 1 local
	buf := []byte{252, 0, 5, 1 /* Integer verification type */}
	r, _ := newReader(bytes.NewReader(buf))
	f, err := decodeStackMapFrame(r)
	if err != nil {
		t.Fatalf("decodeStackMapFrame: %v", err)
	}
	if f.Kind != FrameAppend || f.OffsetDelta != 5 || len(f.Locals) != 1 {
		t.Fatalf("got %+v", f)
	}
	if f.Locals[0].Kind != VInteger {
		t.Fatalf("Locals[0].Kind = %v, want VInteger", f.Locals[0].Kind)
	}
}

func TestDecodeStackMapFrameChop(t *testing.T) {
	// tag 249 => Chop with count = 251-249 = 2
	buf := []byte{249, 0, 7}
	r, _ := newReader(bytes.NewReader(buf))
	f, err := decodeStackMapFrame(r)
	if err != nil {
		t.Fatalf("decodeStackMapFrame: %v", err)
	}
	if f.Kind != FrameChop || f.ChopCount != 2 || f.OffsetDelta != 7 {
		t.Fatalf("got %+v", f)
	}
}

func TestDecodeStackMapFrameFull(t *testing.T) {
	buf := []byte{255, 0, 1, 0, 1, 1 /* Integer local */, 0, 1, 1 /* Integer stack */}
	r, _ := newReader(bytes.NewReader(buf))
	f, err := decodeStackMapFrame(r)
	if err != nil {
		t.Fatalf("decodeStackMapFrame: %v", err)
	}
	if f.Kind != FrameFull || len(f.FullLocals) != 1 || len(f.FullStack) != 1 {
		t.Fatalf("got %+v", f)
	}
}

func TestDecodeStackMapFrameReservedTagFatal(t *testing.T) {
	r, _ := newReader(bytes.NewReader([]byte{200}))
	if _, err := decodeStackMapFrame(r); err == nil {
		t.Fatal("expected error for reserved tag range")
	} else {
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Kind != KindUnknownStackMapFrameTag {
			t.Fatalf("got %v, want KindUnknownStackMapFrameTag", err)
		}
	}
}

func TestDecodeVerificationTypeUnknown(t *testing.T) {
	r, _ := newReader(bytes.NewReader([]byte{99}))
	if _, err := decodeVerificationType(r); err == nil {
		t.Fatal("expected error for unknown verification type tag")
	} else {
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Kind != KindUnknownVerificationType {
			t.Fatalf("got %v, want KindUnknownVerificationType", err)
		}
	}
}

package classfile

import (
	"bytes"
	"errors"
	"testing"
)

// buildPool assembles a constant_pool_count u2 followed by raw entry bytes.
func buildPool(count uint16, entries []byte) []byte {
	buf := []byte{byte(count >> 8), byte(count)}
	return append(buf, entries...)
}

func TestDecodePoolLongPhantomSlot(t *testing.T) {
	// count=3: slot 1 is a Long (consumes slots 1 and 2), slot 2 is phantom.
	entries := []byte{tagLong, 0, 0, 0, 0, 0, 0, 0, 42}
	r, _ := newReader(bytes.NewReader(buildPool(3, entries)))

	pool, err := decodePool(r)
	if err != nil {
		t.Fatalf("decodePool: %v", err)
	}
	if pool.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", pool.Len())
	}

	e, err := pool.Get(1)
	if err != nil || e.Kind != KindLong || e.Int64 != 42 {
		t.Fatalf("Get(1) = %+v, %v", e, err)
	}

	if _, err := pool.Get(2); err == nil {
		t.Fatal("Get(2) on a phantom slot should fail")
	} else {
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Kind != KindInvalidConstantIndex {
			t.Fatalf("got %v, want KindInvalidConstantIndex", err)
		}
	}
}

func TestDecodePoolLongAtFinalSlotIsFatal(t *testing.T) {
	// count=2: only slot 1 is addressable. A Long there needs slots 1 and 2,
	// but slot 2 doesn't exist — no room for the phantom.
	entries := []byte{tagLong, 0, 0, 0, 0, 0, 0, 0, 42}
	r, _ := newReader(bytes.NewReader(buildPool(2, entries)))

	_, err := decodePool(r)
	if err == nil {
		t.Fatal("decodePool should reject a Long with no room for its phantom slot")
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != KindPhantomSlotOverflow {
		t.Fatalf("got %v, want KindPhantomSlotOverflow", err)
	}
}

func TestDecodePoolUtf8(t *testing.T) {
	payload := []byte("hi")
	entries := []byte{tagUtf8, 0, byte(len(payload))}
	entries = append(entries, payload...)
	r, _ := newReader(bytes.NewReader(buildPool(2, entries)))

	pool, err := decodePool(r)
	if err != nil {
		t.Fatalf("decodePool: %v", err)
	}
	s, err := pool.GetUtf8String(1)
	if err != nil || s != "hi" {
		t.Fatalf("GetUtf8String(1) = %q, %v", s, err)
	}
}

func TestPoolGetZeroIndexFails(t *testing.T) {
	entries := []byte{tagUtf8, 0, 0}
	r, _ := newReader(bytes.NewReader(buildPool(2, entries)))
	pool, err := decodePool(r)
	if err != nil {
		t.Fatalf("decodePool: %v", err)
	}
	if _, err := pool.Get(0); err == nil {
		t.Fatal("Get(0) should always fail")
	}
}

func TestPoolWrongKind(t *testing.T) {
	entries := []byte{tagInteger, 0, 0, 0, 1}
	r, _ := newReader(bytes.NewReader(buildPool(2, entries)))
	pool, err := decodePool(r)
	if err != nil {
		t.Fatalf("decodePool: %v", err)
	}
	if _, err := pool.GetUtf8(1); err == nil {
		t.Fatal("GetUtf8 on an Integer entry should fail")
	} else {
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Kind != KindWrongConstantKind {
			t.Fatalf("got %v, want KindWrongConstantKind", err)
		}
	}
}

func TestDecodePoolUnknownTag(t *testing.T) {
	entries := []byte{0xFE}
	r, _ := newReader(bytes.NewReader(buildPool(2, entries)))
	if _, err := decodePool(r); err == nil {
		t.Fatal("expected error on unknown tag")
	} else {
		var pe *ParseError
		if !errors.As(err, &pe) || pe.Kind != KindUnknownConstantTag {
			t.Fatalf("got %v, want KindUnknownConstantTag", err)
		}
	}
}

package classfile

import (
	"bytes"
	"errors"
	"testing"
)

// poolWithUtf8 builds a Pool whose Utf8 entries are indices 1..len(names).
func poolWithUtf8(names ...string) *Pool {
	entries := make([]Entry, len(names)+1)
	for i, n := range names {
		entries[i+1] = Entry{Kind: KindUtf8, Bytes: []byte(n)}
	}
	return &Pool{entries: entries}
}

func TestDecodeAttributeUnknownNameIsCustom(t *testing.T) {
	pool := poolWithUtf8("FancyVendorExtension")
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x01})             // name_index = 1
	buf.Write([]byte{0x00, 0x00, 0x00, 0x03}) // length = 3
	buf.Write([]byte{0xAA, 0xBB, 0xCC})

	r, _ := newReader(bytes.NewReader(buf.Bytes()))
	attr, skip, err := decodeAttribute(r, pool, ContextClass, ParsingOption{ParseAttribute: true})
	if err != nil || skip {
		t.Fatalf("decodeAttribute: skip=%v err=%v", skip, err)
	}
	data, ok := attr.Data.(CustomAttribute)
	if !ok {
		t.Fatalf("Data = %T, want CustomAttribute", attr.Data)
	}
	if !bytes.Equal(data.Bytes, []byte{0xAA, 0xBB, 0xCC}) {
		t.Fatalf("Bytes = %v", data.Bytes)
	}
}

func TestDecodeAttributeSkipUnknown(t *testing.T) {
	pool := poolWithUtf8("FancyVendorExtension")
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x01})
	buf.Write([]byte{0x00, 0x00, 0x00, 0x02})
	buf.Write([]byte{0x01, 0x02})

	r, _ := newReader(bytes.NewReader(buf.Bytes()))
	_, skip, err := decodeAttribute(r, pool, ContextClass, ParsingOption{
		ParseAttribute:        true,
		SkipUnknownAttributes: true,
	})
	if err != nil {
		t.Fatalf("decodeAttribute: %v", err)
	}
	if !skip {
		t.Fatal("expected skip=true for an unregistered name under SkipUnknownAttributes")
	}
	if r.Offset() != r.Len() {
		t.Fatal("reader must still consume the full attribute body when skipping")
	}
}

func TestDecodeAttributeDeprecated(t *testing.T) {
	pool := poolWithUtf8(nameDeprecated)
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x01})
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00}) // length = 0

	r, _ := newReader(bytes.NewReader(buf.Bytes()))
	attr, _, err := decodeAttribute(r, pool, ContextClass, ParsingOption{ParseAttribute: true})
	if err != nil {
		t.Fatalf("decodeAttribute: %v", err)
	}
	if _, ok := attr.Data.(DeprecatedAttribute); !ok {
		t.Fatalf("Data = %T, want DeprecatedAttribute", attr.Data)
	}
}

func TestDecodeAttributeSignatureByContext(t *testing.T) {
	pool := poolWithUtf8(nameSignature, "Ljava/lang/String;")
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x01})             // name_index -> "Signature"
	buf.Write([]byte{0x00, 0x00, 0x00, 0x02}) // length = 2
	buf.Write([]byte{0x00, 0x02})             // signature_index -> #2

	r, _ := newReader(bytes.NewReader(buf.Bytes()))
	attr, _, err := decodeAttribute(r, pool, ContextField, ParsingOption{ParseAttribute: true, ParseSignature: true})
	if err != nil {
		t.Fatalf("decodeAttribute: %v", err)
	}
	sig, ok := attr.Data.(SignatureAttribute)
	if !ok {
		t.Fatalf("Data = %T, want SignatureAttribute", attr.Data)
	}
	if sig.Parsed == nil {
		t.Fatal("Parsed should be populated when ParseSignature is set")
	}
}

func TestDecodeAttributeLengthMismatchIsFatal(t *testing.T) {
	// ConstantValue's body is always exactly 2 bytes; declare 4 to trigger
	// the cursor-landed-short-of-declared-end check.
	pool := poolWithUtf8(nameConstantValue, "ignored")
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x01})
	buf.Write([]byte{0x00, 0x00, 0x00, 0x04}) // declared length 4, but ConstantValue only consumes 2
	buf.Write([]byte{0x00, 0x02, 0x00, 0x00})

	r, _ := newReader(bytes.NewReader(buf.Bytes()))
	_, _, err := decodeAttribute(r, pool, ContextField, ParsingOption{ParseAttribute: true})
	if err == nil {
		t.Fatal("expected AttributeLengthMismatch error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != KindAttributeLengthMismatch {
		t.Fatalf("got %v, want KindAttributeLengthMismatch", err)
	}
}

func TestDecodeAttributeParseAttributeFalseKeepsRaw(t *testing.T) {
	pool := poolWithUtf8(nameDeprecated)
	var buf bytes.Buffer
	buf.Write([]byte{0x00, 0x01})
	buf.Write([]byte{0x00, 0x00, 0x00, 0x00})

	r, _ := newReader(bytes.NewReader(buf.Bytes()))
	attr, _, err := decodeAttribute(r, pool, ContextClass, ParsingOption{ParseAttribute: false})
	if err != nil {
		t.Fatalf("decodeAttribute: %v", err)
	}
	if _, ok := attr.Data.(CustomAttribute); !ok {
		t.Fatalf("Data = %T, want CustomAttribute when ParseAttribute is false", attr.Data)
	}
	if attr.Name != nameDeprecated {
		t.Fatalf("Name = %q, want %q even with ParseAttribute off", attr.Name, nameDeprecated)
	}
}

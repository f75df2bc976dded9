package classfile

import (
	"bytes"
	"errors"
	"testing"
)

// minimalClassBytes builds the smallest well-formed class file: a pool
// holding just the Utf8/Class pair needed for this_class, no super class,
// no interfaces/fields/methods/attributes.
func minimalClassBytes() []byte {
	var buf bytes.Buffer
	buf.Write([]byte{0xCA, 0xFE, 0xBA, 0xBE}) // magic
	buf.Write([]byte{0x00, 0x00})             // minor
	buf.Write([]byte{0x00, 0x41})             // major = 65 (Java 21, intentionally out-of-strict-range for test)

	// constant_pool_count = 3 (slots 1 and 2 used)
	buf.Write([]byte{0x00, 0x03})
	buf.Write([]byte{tagUtf8, 0x00, 0x01, 'A'}) // #1 = Utf8 "A"
	buf.Write([]byte{tagClass, 0x00, 0x01})     // #2 = Class -> #1

	buf.Write([]byte{0x00, 0x21}) // access_flags = PUBLIC|SUPER
	buf.Write([]byte{0x00, 0x02}) // this_class = #2
	buf.Write([]byte{0x00, 0x00}) // super_class = 0

	buf.Write([]byte{0x00, 0x00}) // interfaces_count
	buf.Write([]byte{0x00, 0x00}) // fields_count
	buf.Write([]byte{0x00, 0x00}) // methods_count
	buf.Write([]byte{0x00, 0x00}) // attributes_count

	return buf.Bytes()
}

func TestToClassMinimal(t *testing.T) {
	cls, err := ToClass(bytes.NewReader(minimalClassBytes()), ParsingOption{})
	if err != nil {
		t.Fatalf("ToClass: %v", err)
	}
	if cls.MajorVersion != 65 {
		t.Fatalf("MajorVersion = %d, want 65", cls.MajorVersion)
	}
	name, err := cls.Pool.GetClassName(cls.ThisClass)
	if err != nil || name != "A" {
		t.Fatalf("GetClassName(ThisClass) = %q, %v", name, err)
	}
	if cls.SuperClass != 0 {
		t.Fatalf("SuperClass = %d, want 0", cls.SuperClass)
	}
}

func TestToClassBadMagic(t *testing.T) {
	buf := minimalClassBytes()
	buf[0] = 0x00
	_, err := ToClass(bytes.NewReader(buf), ParsingOption{})
	if err == nil {
		t.Fatal("expected BadMagic error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != KindBadMagic {
		t.Fatalf("got %v, want KindBadMagic", err)
	}
}

func TestToClassStrictVersionCheck(t *testing.T) {
	buf := minimalClassBytes()
	buf[6] = 0xFF // major = 0xFF00 | 0x41, well outside 45-64
	_, err := ToClass(bytes.NewReader(buf), ParsingOption{StrictVersionCheck: true})
	if err == nil {
		t.Fatal("expected UnsupportedClassVersion error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != KindUnsupportedClassVersion {
		t.Fatalf("got %v, want KindUnsupportedClassVersion", err)
	}
}

func TestToClassTrailingInput(t *testing.T) {
	buf := append(minimalClassBytes(), 0xFF)
	_, err := ToClass(bytes.NewReader(buf), ParsingOption{})
	if err == nil {
		t.Fatal("expected TrailingInput error")
	}
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != KindTrailingInput {
		t.Fatalf("got %v, want KindTrailingInput", err)
	}
}

func TestToClassDebugWriterTracesDecode(t *testing.T) {
	var trace bytes.Buffer
	_, err := ToClass(bytes.NewReader(minimalClassBytes()), ParsingOption{DebugWriter: &trace})
	if err != nil {
		t.Fatalf("ToClass: %v", err)
	}
	if trace.Len() == 0 {
		t.Fatal("DebugWriter was supplied but received no trace output")
	}
	if !bytes.Contains(trace.Bytes(), []byte("Constant pool: 3 entries")) {
		t.Fatalf("trace missing constant pool line: %q", trace.String())
	}
}

func TestToClassNoDebugWriterIsSilent(t *testing.T) {
	// ParsingOption{} leaves DebugWriter nil; debugf must be a no-op rather
	// than panic on a nil io.Writer.
	cls, err := ToClass(bytes.NewReader(minimalClassBytes()), ParsingOption{})
	if err != nil {
		t.Fatalf("ToClass: %v", err)
	}
	if cls == nil {
		t.Fatal("expected a parsed class")
	}
}

func TestToClassNeverReturnsPartialOnError(t *testing.T) {
	buf := minimalClassBytes()
	buf[0] = 0x00 // corrupt magic
	cls, err := ToClass(bytes.NewReader(buf), ParsingOption{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if cls != nil {
		t.Fatal("a failed parse must never return a non-nil *Class")
	}
}

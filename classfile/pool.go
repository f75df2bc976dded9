package classfile

// ConstantKind identifies the tagged-union variant a pool Entry holds.
type ConstantKind byte

const (
	KindReserved ConstantKind = iota // index 0, or the phantom 2nd slot of a Long/Double
	KindUtf8
	KindInteger
	KindFloat
	KindLong
	KindDouble
	KindClass
	KindString
	KindFieldref
	KindMethodref
	KindInterfaceMethodref
	KindNameAndType
	KindMethodHandle
	KindMethodType
	KindDynamic
	KindInvokeDynamic
	KindModule
	KindPackage
)

func (k ConstantKind) String() string {
	switch k {
	case KindReserved:
		return "Reserved"
	case KindUtf8:
		return "Utf8"
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "Float"
	case KindLong:
		return "Long"
	case KindDouble:
		return "Double"
	case KindClass:
		return "Class"
	case KindString:
		return "String"
	case KindFieldref:
		return "Fieldref"
	case KindMethodref:
		return "Methodref"
	case KindInterfaceMethodref:
		return "InterfaceMethodref"
	case KindNameAndType:
		return "NameAndType"
	case KindMethodHandle:
		return "MethodHandle"
	case KindMethodType:
		return "MethodType"
	case KindDynamic:
		return "Dynamic"
	case KindInvokeDynamic:
		return "InvokeDynamic"
	case KindModule:
		return "Module"
	case KindPackage:
		return "Package"
	default:
		return "Unknown"
	}
}

// Wire tag bytes, per JVM spec table 4.4-A.
const (
	tagUtf8               = 1
	tagInteger            = 3
	tagFloat              = 4
	tagLong               = 5
	tagDouble             = 6
	tagClass              = 7
	tagString             = 8
	tagFieldref           = 9
	tagMethodref          = 10
	tagInterfaceMethodref = 11
	tagNameAndType        = 12
	tagMethodHandle       = 15
	tagMethodType         = 16
	tagDynamic            = 17
	tagInvokeDynamic      = 18
	tagModule             = 19
	tagPackage            = 20
)

// ReferenceKind is the 1..9 reference_kind byte of a CONSTANT_MethodHandle.
type ReferenceKind uint8

const (
	RefGetField ReferenceKind = iota + 1
	RefGetStatic
	RefPutField
	RefPutStatic
	RefInvokeVirtual
	RefInvokeStatic
	RefInvokeSpecial
	RefNewInvokeSpecial
	RefInvokeInterface
)

// Entry is one slot of the constant pool. Only the fields relevant to Kind
// are populated; it stores raw indices, never resolving them — resolution
// is always a separate Pool.Get call the consumer makes explicitly.
type Entry struct {
	Kind ConstantKind

	// Utf8
	Bytes []byte // raw Modified-UTF-8 bytes, undecoded

	// Integer / Float / Long / Double
	Int32   int32
	Float32 float32
	Int64   int64
	Float64 float64

	// Class / String / MethodType / Module / Package: a single name/desc index
	Index1 uint16

	// Fieldref / Methodref / InterfaceMethodref / NameAndType: two indices
	Index2 uint16

	// MethodHandle
	RefKind ReferenceKind

	// Dynamic / InvokeDynamic: bootstrap_method_attr_index
	BootstrapIndex uint16
}

// Pool is the 1-indexed constant pool of a class file. Index 0 is never
// addressable; the second slot of a Long/Double is a phantom reserved slot.
type Pool struct {
	entries []Entry // entries[0] is the unused reserved slot
}

// Len returns the declared constant_pool_count (i.e. highest valid index + 1).
func (p *Pool) Len() int {
	return len(p.entries)
}

// Get returns the entry at slot i, failing if i is zero, out of range, or a
// phantom long/double slot.
func (p *Pool) Get(i uint16) (*Entry, error) {
	if i == 0 || int(i) >= len(p.entries) || p.entries[i].Kind == KindReserved {
		return nil, &ParseError{Kind: KindInvalidConstantIndex, Index: int(i)}
	}
	return &p.entries[i], nil
}

func wrongKind(index uint16, expected ConstantKind, got ConstantKind) error {
	return &ParseError{
		Kind:     KindWrongConstantKind,
		Index:    int(index),
		Expected: expected.String(),
		Got:      got.String(),
	}
}

// GetUtf8 resolves index i to a Utf8 entry and returns its raw Modified-UTF-8
// bytes. It does not decode them — use the mutf8 package for that.
func (p *Pool) GetUtf8(i uint16) ([]byte, error) {
	e, err := p.Get(i)
	if err != nil {
		return nil, err
	}
	if e.Kind != KindUtf8 {
		return nil, wrongKind(i, KindUtf8, e.Kind)
	}
	return e.Bytes, nil
}

// GetUtf8String is GetUtf8 with the bytes interpreted as plain Go string
// (i.e. as if they were standard UTF-8, not Modified-UTF-8). This is a
// convenience for the overwhelmingly common case where the string contains
// no NUL or supplementary characters; callers that need exact Modified-UTF-8
// semantics should use mutf8.Decode on GetUtf8's raw bytes instead.
func (p *Pool) GetUtf8String(i uint16) (string, error) {
	b, err := p.GetUtf8(i)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// GetClassName resolves index i to a CONSTANT_Class entry and then resolves
// its name_index to a Utf8, returning the internal class name (e.g. "java/lang/Object").
func (p *Pool) GetClassName(i uint16) (string, error) {
	e, err := p.Get(i)
	if err != nil {
		return "", err
	}
	if e.Kind != KindClass {
		return "", wrongKind(i, KindClass, e.Kind)
	}
	return p.GetUtf8String(e.Index1)
}

// decodePool reads a u16 constant_pool_count, then decodes count-1 entries.
// After a Long or Double, a phantom entry is appended and the loop skips an
// extra slot, matching the double-width rule in the JVM spec.
func decodePool(r *Reader) (*Pool, error) {
	count, err := r.ReadU2()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, count)
	i := uint16(1)
	for i < count {
		offset := r.Offset()
		tagByte, err := r.ReadU1()
		if err != nil {
			return nil, err
		}

		entry, extraSlot, err := decodeConstantEntry(r, tagByte, offset)
		if err != nil {
			return nil, err
		}
		entries[i] = entry

		longDoubleIndex := i
		i++
		if extraSlot {
			i++ // the phantom slot following Long/Double is left KindReserved
			if i > count {
				return nil, &ParseError{
					Kind:  KindPhantomSlotOverflow,
					Index: int(longDoubleIndex),
					Value: uint32(count),
				}
			}
		}
	}

	return &Pool{entries: entries}, nil
}

// decodeConstantEntry decodes a single tagged entry. extraSlot is true for
// Long/Double, which consume two pool indices.
func decodeConstantEntry(r *Reader, tagByte byte, offset int) (entry Entry, extraSlot bool, err error) {
	switch tagByte {
	case tagUtf8:
		length, err := r.ReadU2()
		if err != nil {
			return Entry{}, false, err
		}
		b, err := r.ReadBytes(int(length))
		if err != nil {
			return Entry{}, false, err
		}
		return Entry{Kind: KindUtf8, Bytes: b}, false, nil

	case tagInteger:
		v, err := r.ReadI4()
		if err != nil {
			return Entry{}, false, err
		}
		return Entry{Kind: KindInteger, Int32: v}, false, nil

	case tagFloat:
		v, err := r.ReadF4()
		if err != nil {
			return Entry{}, false, err
		}
		return Entry{Kind: KindFloat, Float32: v}, false, nil

	case tagLong:
		v, err := r.ReadI8()
		if err != nil {
			return Entry{}, false, err
		}
		return Entry{Kind: KindLong, Int64: v}, true, nil

	case tagDouble:
		v, err := r.ReadF8()
		if err != nil {
			return Entry{}, false, err
		}
		return Entry{Kind: KindDouble, Float64: v}, true, nil

	case tagClass:
		idx, err := r.ReadU2()
		if err != nil {
			return Entry{}, false, err
		}
		return Entry{Kind: KindClass, Index1: idx}, false, nil

	case tagString:
		idx, err := r.ReadU2()
		if err != nil {
			return Entry{}, false, err
		}
		return Entry{Kind: KindString, Index1: idx}, false, nil

	case tagFieldref, tagMethodref, tagInterfaceMethodref:
		classIdx, err := r.ReadU2()
		if err != nil {
			return Entry{}, false, err
		}
		natIdx, err := r.ReadU2()
		if err != nil {
			return Entry{}, false, err
		}
		kind := map[byte]ConstantKind{
			tagFieldref:           KindFieldref,
			tagMethodref:          KindMethodref,
			tagInterfaceMethodref: KindInterfaceMethodref,
		}[tagByte]
		return Entry{Kind: kind, Index1: classIdx, Index2: natIdx}, false, nil

	case tagNameAndType:
		nameIdx, err := r.ReadU2()
		if err != nil {
			return Entry{}, false, err
		}
		descIdx, err := r.ReadU2()
		if err != nil {
			return Entry{}, false, err
		}
		return Entry{Kind: KindNameAndType, Index1: nameIdx, Index2: descIdx}, false, nil

	case tagMethodHandle:
		refKind, err := r.ReadU1()
		if err != nil {
			return Entry{}, false, err
		}
		refIdx, err := r.ReadU2()
		if err != nil {
			return Entry{}, false, err
		}
		return Entry{Kind: KindMethodHandle, RefKind: ReferenceKind(refKind), Index1: refIdx}, false, nil

	case tagMethodType:
		descIdx, err := r.ReadU2()
		if err != nil {
			return Entry{}, false, err
		}
		return Entry{Kind: KindMethodType, Index1: descIdx}, false, nil

	case tagDynamic, tagInvokeDynamic:
		bsmIdx, err := r.ReadU2()
		if err != nil {
			return Entry{}, false, err
		}
		natIdx, err := r.ReadU2()
		if err != nil {
			return Entry{}, false, err
		}
		kind := KindDynamic
		if tagByte == tagInvokeDynamic {
			kind = KindInvokeDynamic
		}
		return Entry{Kind: kind, BootstrapIndex: bsmIdx, Index2: natIdx}, false, nil

	case tagModule:
		idx, err := r.ReadU2()
		if err != nil {
			return Entry{}, false, err
		}
		return Entry{Kind: KindModule, Index1: idx}, false, nil

	case tagPackage:
		idx, err := r.ReadU2()
		if err != nil {
			return Entry{}, false, err
		}
		return Entry{Kind: KindPackage, Index1: idx}, false, nil

	default:
		return Entry{}, false, &ParseError{Kind: KindUnknownConstantTag, Byte: tagByte, Offset: offset}
	}
}

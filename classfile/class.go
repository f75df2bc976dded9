package classfile

import "io"

const classMagic = 0xCAFEBABE

// Field is a decoded field_info structure.
type Field struct {
	AccessFlags     AccessFlags
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []Attribute
}

// Method is a decoded method_info structure.
type Method struct {
	AccessFlags     AccessFlags
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []Attribute
}

// Class is the fully-decoded in-memory tree of a class file: the typed
// equivalent of the ClassFile structure in JVM Spec §4.1.
type Class struct {
	MinorVersion uint16
	MajorVersion uint16

	Pool *Pool

	AccessFlags AccessFlags
	ThisClass   uint16
	SuperClass  uint16 // 0 for java/lang/Object

	Interfaces []uint16
	Fields     []Field
	Methods    []Method
	Attributes []Attribute
}

// ToClass decodes a complete class file from source into a Class tree. It
// reads source fully into memory first; there is no partial or streaming
// result. Every error is fatal: on any failure the returned *Class is nil,
// never a partially-built tree.
func ToClass(source io.Reader, opts ParsingOption) (*Class, error) {
	r, err := newReader(source)
	if err != nil {
		return nil, err
	}

	opts.debugf("--- Parsing ClassFile ---\n")

	magic, err := r.ReadU4()
	if err != nil {
		return nil, err
	}
	if magic != classMagic {
		return nil, &ParseError{Kind: KindBadMagic, Value: magic}
	}
	opts.debugf("Magic: 0x%08X\n", magic)

	minor, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	major, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	if opts.StrictVersionCheck && (major < 45 || major > 64) {
		return nil, &ParseError{Kind: KindUnsupportedClassVersion, Value: uint32(major)}
	}
	opts.debugf("Version: %d.%d\n", major, minor)

	pool, err := decodePool(r)
	if err != nil {
		return nil, err
	}
	opts.debugf("Constant pool: %d entries\n", pool.Len())

	accessFlags, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	opts.debugf("Access flags: 0x%04X\n", accessFlags)

	thisClass, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	superClass, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	opts.debugf("This class: #%d, super class: #%d\n", thisClass, superClass)

	interfaces, err := decodeU2List(r)
	if err != nil {
		return nil, err
	}
	opts.debugf("Interfaces: %d\n", len(interfaces))

	fields, err := decodeFields(r, pool, opts)
	if err != nil {
		return nil, err
	}
	opts.debugf("Fields: %d\n", len(fields))

	methods, err := decodeMethods(r, pool, opts)
	if err != nil {
		return nil, err
	}
	opts.debugf("Methods: %d\n", len(methods))

	attrs, err := decodeAttributes(r, pool, ContextClass, opts)
	if err != nil {
		return nil, err
	}
	opts.debugf("Class attributes: %d\n", len(attrs))

	if r.Remaining() != 0 {
		return nil, &ParseError{Kind: KindTrailingInput, Name: "class file", Remaining: r.Remaining()}
	}
	opts.debugf("Parsed successfully, %d bytes read\n", r.Offset())

	return &Class{
		MinorVersion: minor,
		MajorVersion: major,
		Pool:         pool,
		AccessFlags:  AccessFlags(accessFlags),
		ThisClass:    thisClass,
		SuperClass:   superClass,
		Interfaces:   interfaces,
		Fields:       fields,
		Methods:      methods,
		Attributes:   attrs,
	}, nil
}

func decodeFields(r *Reader, pool *Pool, opts ParsingOption) ([]Field, error) {
	count, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	fields := make([]Field, count)
	for i := range fields {
		flags, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		nameIdx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		descIdx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		attrs, err := decodeAttributes(r, pool, ContextField, opts)
		if err != nil {
			return nil, err
		}
		fields[i] = Field{
			AccessFlags: AccessFlags(flags), NameIndex: nameIdx,
			DescriptorIndex: descIdx, Attributes: attrs,
		}
	}
	return fields, nil
}

func decodeMethods(r *Reader, pool *Pool, opts ParsingOption) ([]Method, error) {
	count, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	methods := make([]Method, count)
	for i := range methods {
		flags, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		nameIdx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		descIdx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		attrs, err := decodeAttributes(r, pool, ContextMethod, opts)
		if err != nil {
			return nil, err
		}
		methods[i] = Method{
			AccessFlags: AccessFlags(flags), NameIndex: nameIdx,
			DescriptorIndex: descIdx, Attributes: attrs,
		}
	}
	return methods, nil
}

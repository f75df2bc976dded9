package classfile

// Context identifies where an attribute was encountered. The decoder is
// lenient: a Code attribute dispatches the same way on a field as it would
// on a method, and Context is carried purely as metadata for a consumer
// that wants to flag the mismatch itself.
type Context byte

const (
	ContextClass Context = iota
	ContextField
	ContextMethod
	ContextCode
	ContextRecordComponent
)

func (c Context) String() string {
	switch c {
	case ContextClass:
		return "class"
	case ContextField:
		return "field"
	case ContextMethod:
		return "method"
	case ContextCode:
		return "code"
	case ContextRecordComponent:
		return "record_component"
	default:
		return "unknown"
	}
}

// Attribute is a decoded (name, payload) pair. When
// ParsingOption.ParseAttribute is false the payload is never dispatched on:
// Name and Raw are populated and Data is a CustomAttribute holding the raw
// body.
type Attribute struct {
	Name    string
	Context Context
	Raw     []byte // the undecoded attribute_info body, always populated
	Data    AttributeData
}

// AttributeData is the marker interface implemented by every one of the
// ~30 attribute-kind payload structs (plus CustomAttribute, the catch-all
// for unrecognized names). A type switch on Data is the idiomatic Go
// substitute for the tagged union spec.md describes.
type AttributeData interface {
	attributeData()
}

// CustomAttribute is returned for an attribute name outside the JVM SE 20
// registry, or any name when ParsingOption.ParseAttribute is false.
type CustomAttribute struct {
	Bytes []byte
}

func (CustomAttribute) attributeData() {}

type ConstantValueAttribute struct{ ValueIndex uint16 }

func (ConstantValueAttribute) attributeData() {}

// ExceptionTableEntry is one row of a Code attribute's exception table.
type ExceptionTableEntry struct {
	StartPC   uint16
	EndPC     uint16
	HandlerPC uint16
	CatchType uint16 // 0 means catch-all (finally)
}

type CodeAttribute struct {
	MaxStack     uint16
	MaxLocals    uint16
	Code         []byte
	ExceptionTable []ExceptionTableEntry
	Attributes   []Attribute
}

func (CodeAttribute) attributeData() {}

type StackMapTableAttribute struct {
	Frames []StackMapFrame
}

func (StackMapTableAttribute) attributeData() {}

type ExceptionsAttribute struct {
	ExceptionIndexTable []uint16 // cp indices -> Class
}

func (ExceptionsAttribute) attributeData() {}

type InnerClassEntry struct {
	InnerClassInfoIndex   uint16
	OuterClassInfoIndex   uint16 // 0 if not a member
	InnerNameIndex        uint16 // 0 if anonymous
	InnerClassAccessFlags AccessFlags
}

type InnerClassesAttribute struct {
	Classes []InnerClassEntry
}

func (InnerClassesAttribute) attributeData() {}

type EnclosingMethodAttribute struct {
	ClassIndex  uint16
	MethodIndex uint16 // 0 if not enclosed by a method/constructor
}

func (EnclosingMethodAttribute) attributeData() {}

type SyntheticAttribute struct{}

func (SyntheticAttribute) attributeData() {}

type DeprecatedAttribute struct{}

func (DeprecatedAttribute) attributeData() {}

// SignatureAttribute retains the raw cp index; the string is parsed lazily
// via ParsingOption.ParseSignature into Parsed, or on demand by the caller.
type SignatureAttribute struct {
	SignatureIndex uint16
	Parsed         any // *signature.ClassSignature / *signature.MethodSignature / *signature.FieldSignature, or nil
}

func (SignatureAttribute) attributeData() {}

type SourceFileAttribute struct{ SourceFileIndex uint16 }

func (SourceFileAttribute) attributeData() {}

// SourceDebugExtensionAttribute is raw Modified-UTF-8 of the declared
// attribute length (it is not length-prefixed the way a Utf8 pool entry
// is — the whole attribute body is the string).
type SourceDebugExtensionAttribute struct{ DebugExtension []byte }

func (SourceDebugExtensionAttribute) attributeData() {}

type LineNumberEntry struct {
	StartPC    uint16
	LineNumber uint16
}

type LineNumberTableAttribute struct {
	Table []LineNumberEntry
}

func (LineNumberTableAttribute) attributeData() {}

type LocalVariableEntry struct {
	StartPC uint16
	Length  uint16
	NameIndex uint16
	DescriptorIndex uint16
	Index   uint16
}

type LocalVariableTableAttribute struct {
	Table []LocalVariableEntry
}

func (LocalVariableTableAttribute) attributeData() {}

type LocalVariableTypeEntry struct {
	StartPC       uint16
	Length        uint16
	NameIndex     uint16
	SignatureIndex uint16
	Index         uint16
}

type LocalVariableTypeTableAttribute struct {
	Table []LocalVariableTypeEntry
}

func (LocalVariableTypeTableAttribute) attributeData() {}

type RuntimeVisibleAnnotationsAttribute struct{ Annotations []Annotation }

func (RuntimeVisibleAnnotationsAttribute) attributeData() {}

type RuntimeInvisibleAnnotationsAttribute struct{ Annotations []Annotation }

func (RuntimeInvisibleAnnotationsAttribute) attributeData() {}

type RuntimeVisibleParameterAnnotationsAttribute struct {
	Parameters []ParameterAnnotations
}

func (RuntimeVisibleParameterAnnotationsAttribute) attributeData() {}

type RuntimeInvisibleParameterAnnotationsAttribute struct {
	Parameters []ParameterAnnotations
}

func (RuntimeInvisibleParameterAnnotationsAttribute) attributeData() {}

type RuntimeVisibleTypeAnnotationsAttribute struct{ Annotations []TypeAnnotation }

func (RuntimeVisibleTypeAnnotationsAttribute) attributeData() {}

type RuntimeInvisibleTypeAnnotationsAttribute struct{ Annotations []TypeAnnotation }

func (RuntimeInvisibleTypeAnnotationsAttribute) attributeData() {}

type AnnotationDefaultAttribute struct{ Value ElementValue }

func (AnnotationDefaultAttribute) attributeData() {}

type BootstrapMethodEntry struct {
	MethodHandleIndex uint16
	Arguments         []uint16 // cp indices
}

type BootstrapMethodsAttribute struct {
	Methods []BootstrapMethodEntry
}

func (BootstrapMethodsAttribute) attributeData() {}

type MethodParameterEntry struct {
	NameIndex uint16 // 0 means no name
	Flags     AccessFlags
}

type MethodParametersAttribute struct {
	Parameters []MethodParameterEntry
}

func (MethodParametersAttribute) attributeData() {}

type ModuleRequiresEntry struct {
	ModuleIndex uint16
	Flags       AccessFlags
	VersionIndex uint16 // 0 if absent
}

type ModuleExportsEntry struct {
	PackageIndex uint16
	Flags        AccessFlags
	ToIndices    []uint16 // module cp indices, empty means exported to all
}

type ModuleOpensEntry struct {
	PackageIndex uint16
	Flags        AccessFlags
	ToIndices    []uint16
}

type ModuleProvidesEntry struct {
	ServiceIndex   uint16
	WithIndices    []uint16 // implementation class cp indices
}

type ModuleAttribute struct {
	ModuleNameIndex    uint16
	ModuleFlags        AccessFlags
	ModuleVersionIndex uint16 // 0 if absent

	Requires []ModuleRequiresEntry
	Exports  []ModuleExportsEntry
	Opens    []ModuleOpensEntry
	Uses     []uint16 // class cp indices
	Provides []ModuleProvidesEntry
}

func (ModuleAttribute) attributeData() {}

type ModulePackagesAttribute struct{ PackageIndices []uint16 }

func (ModulePackagesAttribute) attributeData() {}

type ModuleMainClassAttribute struct{ MainClassIndex uint16 }

func (ModuleMainClassAttribute) attributeData() {}

type NestHostAttribute struct{ HostClassIndex uint16 }

func (NestHostAttribute) attributeData() {}

type NestMembersAttribute struct{ Classes []uint16 }

func (NestMembersAttribute) attributeData() {}

type PermittedSubclassesAttribute struct{ Classes []uint16 }

func (PermittedSubclassesAttribute) attributeData() {}

type RecordComponentEntry struct {
	NameIndex       uint16
	DescriptorIndex uint16
	Attributes      []Attribute
}

type RecordAttribute struct {
	Components []RecordComponentEntry
}

func (RecordAttribute) attributeData() {}

// attribute name registry — the JVM SE 20 exact-ASCII-name set.
const (
	nameConstantValue                        = "ConstantValue"
	nameCode                                  = "Code"
	nameStackMapTable                         = "StackMapTable"
	nameExceptions                            = "Exceptions"
	nameInnerClasses                          = "InnerClasses"
	nameEnclosingMethod                       = "EnclosingMethod"
	nameSynthetic                             = "Synthetic"
	nameDeprecated                            = "Deprecated"
	nameSignature                             = "Signature"
	nameSourceFile                            = "SourceFile"
	nameSourceDebugExtension                  = "SourceDebugExtension"
	nameLineNumberTable                       = "LineNumberTable"
	nameLocalVariableTable                    = "LocalVariableTable"
	nameLocalVariableTypeTable                = "LocalVariableTypeTable"
	nameRuntimeVisibleAnnotations             = "RuntimeVisibleAnnotations"
	nameRuntimeInvisibleAnnotations           = "RuntimeInvisibleAnnotations"
	nameRuntimeVisibleParameterAnnotations    = "RuntimeVisibleParameterAnnotations"
	nameRuntimeInvisibleParameterAnnotations  = "RuntimeInvisibleParameterAnnotations"
	nameRuntimeVisibleTypeAnnotations         = "RuntimeVisibleTypeAnnotations"
	nameRuntimeInvisibleTypeAnnotations       = "RuntimeInvisibleTypeAnnotations"
	nameAnnotationDefault                     = "AnnotationDefault"
	nameBootstrapMethods                      = "BootstrapMethods"
	nameMethodParameters                      = "MethodParameters"
	nameModule                                = "Module"
	nameModulePackages                        = "ModulePackages"
	nameModuleMainClass                       = "ModuleMainClass"
	nameNestHost                              = "NestHost"
	nameNestMembers                           = "NestMembers"
	namePermittedSubclasses                   = "PermittedSubclasses"
	nameRecord                                = "Record"
)

var knownAttributeNames = map[string]bool{
	nameConstantValue: true, nameCode: true, nameStackMapTable: true,
	nameExceptions: true, nameInnerClasses: true, nameEnclosingMethod: true,
	nameSynthetic: true, nameDeprecated: true, nameSignature: true,
	nameSourceFile: true, nameSourceDebugExtension: true,
	nameLineNumberTable: true, nameLocalVariableTable: true,
	nameLocalVariableTypeTable: true, nameRuntimeVisibleAnnotations: true,
	nameRuntimeInvisibleAnnotations: true, nameRuntimeVisibleParameterAnnotations: true,
	nameRuntimeInvisibleParameterAnnotations: true, nameRuntimeVisibleTypeAnnotations: true,
	nameRuntimeInvisibleTypeAnnotations: true, nameAnnotationDefault: true,
	nameBootstrapMethods: true, nameMethodParameters: true, nameModule: true,
	nameModulePackages: true, nameModuleMainClass: true, nameNestHost: true,
	nameNestMembers: true, namePermittedSubclasses: true, nameRecord: true,
}

// decodeAttributes reads a u2 attribute_count followed by that many
// attribute_info structures.
func decodeAttributes(r *Reader, pool *Pool, ctx Context, opts ParsingOption) ([]Attribute, error) {
	count, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	out := make([]Attribute, 0, count)
	for i := uint16(0); i < count; i++ {
		attr, skip, err := decodeAttribute(r, pool, ctx, opts)
		if err != nil {
			return nil, err
		}
		if !skip {
			out = append(out, attr)
		}
	}
	return out, nil
}

// decodeAttribute implements spec.md §4.D's algorithm: resolve the name,
// record end = offset+length, dispatch, then assert the sub-decoder landed
// exactly on end.
func decodeAttribute(r *Reader, pool *Pool, ctx Context, opts ParsingOption) (attr Attribute, skip bool, err error) {
	nameIndex, err := r.ReadU2()
	if err != nil {
		return Attribute{}, false, err
	}
	name, err := pool.GetUtf8String(nameIndex)
	if err != nil {
		return Attribute{}, false, err
	}

	length, err := r.ReadU4()
	if err != nil {
		return Attribute{}, false, err
	}

	start := r.Offset()
	end := start + int(length)

	if opts.SkipUnknownAttributes && !knownAttributeNames[name] {
		if _, err := r.ReadBytes(int(length)); err != nil {
			return Attribute{}, false, err
		}
		return Attribute{}, true, nil
	}

	raw, err := r.ReadBytes(int(length))
	if err != nil {
		return Attribute{}, false, err
	}

	attr = Attribute{Name: name, Context: ctx, Raw: raw}

	if !opts.ParseAttribute {
		attr.Data = CustomAttribute{Bytes: raw}
		return attr, false, nil
	}

	// Sub-decoders read from a private cursor over the same buffer,
	// starting at the attribute body, so that a length
	// mismatch inside a nested structure can never desynchronize the
	// outer reader; we re-assert against end using body's own position.
	body := &Reader{buf: r.buf, offset: start}
	data, derr := decodeAttributeBody(body, pool, name, end, ctx, opts)
	if derr != nil {
		return Attribute{}, false, derr
	}
	if body.Offset() != end {
		return Attribute{}, false, &ParseError{
			Kind:     KindAttributeLengthMismatch,
			Name:     name,
			Declared: int(length),
			Consumed: body.Offset() - start,
		}
	}
	r.Seek(end)

	attr.Data = data
	return attr, false, nil
}

func decodeAttributeBody(r *Reader, pool *Pool, name string, end int, ctx Context, opts ParsingOption) (AttributeData, error) {
	switch name {
	case nameConstantValue:
		idx, err := r.ReadU2()
		return ConstantValueAttribute{ValueIndex: idx}, err

	case nameCode:
		return decodeCodeAttribute(r, pool, opts)

	case nameStackMapTable:
		count, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		frames := make([]StackMapFrame, count)
		for i := range frames {
			f, err := decodeStackMapFrame(r)
			if err != nil {
				return nil, err
			}
			frames[i] = f
		}
		return StackMapTableAttribute{Frames: frames}, nil

	case nameExceptions:
		idxs, err := decodeU2List(r)
		return ExceptionsAttribute{ExceptionIndexTable: idxs}, err

	case nameInnerClasses:
		count, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		classes := make([]InnerClassEntry, count)
		for i := range classes {
			inner, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			outer, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			nameIdx, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			flags, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			classes[i] = InnerClassEntry{
				InnerClassInfoIndex: inner, OuterClassInfoIndex: outer,
				InnerNameIndex: nameIdx, InnerClassAccessFlags: AccessFlags(flags),
			}
		}
		return InnerClassesAttribute{Classes: classes}, nil

	case nameEnclosingMethod:
		classIdx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		methodIdx, err := r.ReadU2()
		return EnclosingMethodAttribute{ClassIndex: classIdx, MethodIndex: methodIdx}, err

	case nameSynthetic:
		return SyntheticAttribute{}, nil

	case nameDeprecated:
		return DeprecatedAttribute{}, nil

	case nameSignature:
		idx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		attr := SignatureAttribute{SignatureIndex: idx}
		if opts.ParseSignature {
			raw, gerr := pool.GetUtf8String(idx)
			if gerr != nil {
				return nil, gerr
			}
			parsed, serr := parseSignatureLazily(ctx, raw)
			if serr != nil {
				return nil, serr
			}
			attr.Parsed = parsed
		}
		return attr, nil

	case nameSourceFile:
		idx, err := r.ReadU2()
		return SourceFileAttribute{SourceFileIndex: idx}, err

	case nameSourceDebugExtension:
		b, err := r.ReadBytes(end - r.Offset())
		return SourceDebugExtensionAttribute{DebugExtension: b}, err

	case nameLineNumberTable:
		count, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		table := make([]LineNumberEntry, count)
		for i := range table {
			startPC, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			line, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			table[i] = LineNumberEntry{StartPC: startPC, LineNumber: line}
		}
		return LineNumberTableAttribute{Table: table}, nil

	case nameLocalVariableTable:
		count, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		table := make([]LocalVariableEntry, count)
		for i := range table {
			e, err := decodeLocalVariableRow(r)
			if err != nil {
				return nil, err
			}
			table[i] = LocalVariableEntry(e)
		}
		return LocalVariableTableAttribute{Table: table}, nil

	case nameLocalVariableTypeTable:
		count, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		table := make([]LocalVariableTypeEntry, count)
		for i := range table {
			e, err := decodeLocalVariableRow(r)
			if err != nil {
				return nil, err
			}
			table[i] = LocalVariableTypeEntry{
				StartPC: e.StartPC, Length: e.Length, NameIndex: e.NameIndex,
				SignatureIndex: e.DescriptorIndex, Index: e.Index,
			}
		}
		return LocalVariableTypeTableAttribute{Table: table}, nil

	case nameRuntimeVisibleAnnotations:
		anns, err := decodeAnnotations(r)
		return RuntimeVisibleAnnotationsAttribute{Annotations: anns}, err

	case nameRuntimeInvisibleAnnotations:
		anns, err := decodeAnnotations(r)
		return RuntimeInvisibleAnnotationsAttribute{Annotations: anns}, err

	case nameRuntimeVisibleParameterAnnotations:
		params, err := decodeParameterAnnotations(r)
		return RuntimeVisibleParameterAnnotationsAttribute{Parameters: params}, err

	case nameRuntimeInvisibleParameterAnnotations:
		params, err := decodeParameterAnnotations(r)
		return RuntimeInvisibleParameterAnnotationsAttribute{Parameters: params}, err

	case nameRuntimeVisibleTypeAnnotations:
		anns, err := decodeTypeAnnotations(r)
		return RuntimeVisibleTypeAnnotationsAttribute{Annotations: anns}, err

	case nameRuntimeInvisibleTypeAnnotations:
		anns, err := decodeTypeAnnotations(r)
		return RuntimeInvisibleTypeAnnotationsAttribute{Annotations: anns}, err

	case nameAnnotationDefault:
		v, err := decodeElementValue(r)
		return AnnotationDefaultAttribute{Value: v}, err

	case nameBootstrapMethods:
		count, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		methods := make([]BootstrapMethodEntry, count)
		for i := range methods {
			handleIdx, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			args, err := decodeU2List(r)
			if err != nil {
				return nil, err
			}
			methods[i] = BootstrapMethodEntry{MethodHandleIndex: handleIdx, Arguments: args}
		}
		return BootstrapMethodsAttribute{Methods: methods}, nil

	case nameMethodParameters:
		count, err := r.ReadU1()
		if err != nil {
			return nil, err
		}
		params := make([]MethodParameterEntry, count)
		for i := range params {
			nameIdx, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			flags, err := r.ReadU2()
			if err != nil {
				return nil, err
			}
			params[i] = MethodParameterEntry{NameIndex: nameIdx, Flags: AccessFlags(flags)}
		}
		return MethodParametersAttribute{Parameters: params}, nil

	case nameModule:
		return decodeModuleAttribute(r)

	case nameModulePackages:
		idxs, err := decodeU2List(r)
		return ModulePackagesAttribute{PackageIndices: idxs}, err

	case nameModuleMainClass:
		idx, err := r.ReadU2()
		return ModuleMainClassAttribute{MainClassIndex: idx}, err

	case nameNestHost:
		idx, err := r.ReadU2()
		return NestHostAttribute{HostClassIndex: idx}, err

	case nameNestMembers:
		idxs, err := decodeU2List(r)
		return NestMembersAttribute{Classes: idxs}, err

	case namePermittedSubclasses:
		idxs, err := decodeU2List(r)
		return PermittedSubclassesAttribute{Classes: idxs}, err

	case nameRecord:
		return decodeRecordAttribute(r, pool, opts)

	default:
		b, err := r.ReadBytes(end - r.Offset())
		return CustomAttribute{Bytes: b}, err
	}
}

// decodeU2List reads a u2 count followed by that many u2 values — the shape
// shared by Exceptions, ModulePackages, NestMembers, PermittedSubclasses,
// and a bootstrap method's argument list.
func decodeU2List(r *Reader) ([]uint16, error) {
	count, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	out := make([]uint16, count)
	for i := range out {
		v, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

type localVariableRow struct {
	StartPC         uint16
	Length          uint16
	NameIndex       uint16
	DescriptorIndex uint16
	Index           uint16
}

func decodeLocalVariableRow(r *Reader) (localVariableRow, error) {
	startPC, err := r.ReadU2()
	if err != nil {
		return localVariableRow{}, err
	}
	length, err := r.ReadU2()
	if err != nil {
		return localVariableRow{}, err
	}
	nameIdx, err := r.ReadU2()
	if err != nil {
		return localVariableRow{}, err
	}
	descIdx, err := r.ReadU2()
	if err != nil {
		return localVariableRow{}, err
	}
	index, err := r.ReadU2()
	if err != nil {
		return localVariableRow{}, err
	}
	return localVariableRow{startPC, length, nameIdx, descIdx, index}, nil
}

func decodeCodeAttribute(r *Reader, pool *Pool, opts ParsingOption) (AttributeData, error) {
	maxStack, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	maxLocals, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	codeLength, err := r.ReadU4()
	if err != nil {
		return nil, err
	}
	code, err := r.ReadBytes(int(codeLength))
	if err != nil {
		return nil, err
	}

	excCount, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	excTable := make([]ExceptionTableEntry, excCount)
	for i := range excTable {
		startPC, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		endPC, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		handlerPC, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		catchType, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		excTable[i] = ExceptionTableEntry{StartPC: startPC, EndPC: endPC, HandlerPC: handlerPC, CatchType: catchType}
	}

	nested, err := decodeAttributes(r, pool, ContextCode, opts)
	if err != nil {
		return nil, err
	}

	return CodeAttribute{
		MaxStack: maxStack, MaxLocals: maxLocals, Code: code,
		ExceptionTable: excTable, Attributes: nested,
	}, nil
}

func decodeModuleAttribute(r *Reader) (AttributeData, error) {
	nameIdx, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	flags, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	versionIdx, err := r.ReadU2()
	if err != nil {
		return nil, err
	}

	requiresCount, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	requires := make([]ModuleRequiresEntry, requiresCount)
	for i := range requires {
		modIdx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		reqFlags, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		reqVersion, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		requires[i] = ModuleRequiresEntry{ModuleIndex: modIdx, Flags: AccessFlags(reqFlags), VersionIndex: reqVersion}
	}

	exportsCount, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	exports := make([]ModuleExportsEntry, exportsCount)
	for i := range exports {
		pkgIdx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		expFlags, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		to, err := decodeU2List(r)
		if err != nil {
			return nil, err
		}
		exports[i] = ModuleExportsEntry{PackageIndex: pkgIdx, Flags: AccessFlags(expFlags), ToIndices: to}
	}

	opensCount, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	opens := make([]ModuleOpensEntry, opensCount)
	for i := range opens {
		pkgIdx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		openFlags, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		to, err := decodeU2List(r)
		if err != nil {
			return nil, err
		}
		opens[i] = ModuleOpensEntry{PackageIndex: pkgIdx, Flags: AccessFlags(openFlags), ToIndices: to}
	}

	uses, err := decodeU2List(r)
	if err != nil {
		return nil, err
	}

	providesCount, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	provides := make([]ModuleProvidesEntry, providesCount)
	for i := range provides {
		svcIdx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		with, err := decodeU2List(r)
		if err != nil {
			return nil, err
		}
		provides[i] = ModuleProvidesEntry{ServiceIndex: svcIdx, WithIndices: with}
	}

	return ModuleAttribute{
		ModuleNameIndex: nameIdx, ModuleFlags: AccessFlags(flags), ModuleVersionIndex: versionIdx,
		Requires: requires, Exports: exports, Opens: opens, Uses: uses, Provides: provides,
	}, nil
}

func decodeRecordAttribute(r *Reader, pool *Pool, opts ParsingOption) (AttributeData, error) {
	count, err := r.ReadU2()
	if err != nil {
		return nil, err
	}
	components := make([]RecordComponentEntry, count)
	for i := range components {
		nameIdx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		descIdx, err := r.ReadU2()
		if err != nil {
			return nil, err
		}
		attrs, err := decodeAttributes(r, pool, ContextRecordComponent, opts)
		if err != nil {
			return nil, err
		}
		components[i] = RecordComponentEntry{NameIndex: nameIdx, DescriptorIndex: descIdx, Attributes: attrs}
	}
	return RecordAttribute{Components: components}, nil
}

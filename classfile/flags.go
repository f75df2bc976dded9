package classfile

// AccessFlags is the raw 16-bit access-flag bitset carried by a class,
// field, or method. Named accessors below map it against the bitmask
// table for the relevant context; a bit undefined in that context is
// neither dropped nor misreported — UnknownClassBits/UnknownFieldBits/
// UnknownMethodBits expose it so a future emitter could round-trip it.
type AccessFlags uint16

const (
	AccPublic       AccessFlags = 0x0001
	AccPrivate      AccessFlags = 0x0002
	AccProtected    AccessFlags = 0x0004
	AccStatic       AccessFlags = 0x0008
	AccFinal        AccessFlags = 0x0010
	AccSuper        AccessFlags = 0x0020 // class
	AccSynchronized AccessFlags = 0x0020 // method
	AccOpen         AccessFlags = 0x0020 // module
	AccTransitive   AccessFlags = 0x0020 // module requires
	AccVolatile     AccessFlags = 0x0040 // field
	AccBridge       AccessFlags = 0x0040 // method
	AccStaticPhase  AccessFlags = 0x0040 // module requires
	AccTransient    AccessFlags = 0x0080 // field
	AccVarargs      AccessFlags = 0x0080 // method
	AccNative       AccessFlags = 0x0100
	AccInterface    AccessFlags = 0x0200
	AccAbstract     AccessFlags = 0x0400
	AccStrict       AccessFlags = 0x0800
	AccSynthetic    AccessFlags = 0x1000
	AccAnnotation   AccessFlags = 0x2000
	AccEnum         AccessFlags = 0x4000
	AccMandated     AccessFlags = 0x8000 // method parameter / module directive
	AccModule       AccessFlags = 0x8000 // class
)

// classFlagMask is every bit meaningful on a class_info access_flags field.
const classFlagMask = AccPublic | AccFinal | AccSuper | AccInterface |
	AccAbstract | AccSynthetic | AccAnnotation | AccEnum | AccModule

// fieldFlagMask is every bit meaningful on a field_info access_flags field.
const fieldFlagMask = AccPublic | AccPrivate | AccProtected | AccStatic |
	AccFinal | AccVolatile | AccTransient | AccSynthetic | AccEnum

// methodFlagMask is every bit meaningful on a method_info access_flags field.
const methodFlagMask = AccPublic | AccPrivate | AccProtected | AccStatic |
	AccFinal | AccSynchronized | AccBridge | AccVarargs | AccNative |
	AccAbstract | AccStrict | AccSynthetic

// Has reports whether every bit in mask is set.
func (f AccessFlags) Has(mask AccessFlags) bool {
	return f&mask == mask
}

// UnknownClassBits returns the bits of f that AccessFlags doesn't assign a
// meaning to in class context — preserved, not dropped.
func (f AccessFlags) UnknownClassBits() AccessFlags {
	return f &^ classFlagMask
}

// UnknownFieldBits is UnknownClassBits for field context.
func (f AccessFlags) UnknownFieldBits() AccessFlags {
	return f &^ fieldFlagMask
}

// UnknownMethodBits is UnknownClassBits for method context.
func (f AccessFlags) UnknownMethodBits() AccessFlags {
	return f &^ methodFlagMask
}

// ClassFlagNames returns the named flags set on f, interpreted in class
// context, in a stable order.
func ClassFlagNames(f AccessFlags) []string {
	return flagNames(f, []namedFlag{
		{AccPublic, "PUBLIC"}, {AccFinal, "FINAL"}, {AccSuper, "SUPER"},
		{AccInterface, "INTERFACE"}, {AccAbstract, "ABSTRACT"},
		{AccSynthetic, "SYNTHETIC"}, {AccAnnotation, "ANNOTATION"},
		{AccEnum, "ENUM"}, {AccModule, "MODULE"},
	})
}

// FieldFlagNames is ClassFlagNames for field context.
func FieldFlagNames(f AccessFlags) []string {
	return flagNames(f, []namedFlag{
		{AccPublic, "PUBLIC"}, {AccPrivate, "PRIVATE"}, {AccProtected, "PROTECTED"},
		{AccStatic, "STATIC"}, {AccFinal, "FINAL"}, {AccVolatile, "VOLATILE"},
		{AccTransient, "TRANSIENT"}, {AccSynthetic, "SYNTHETIC"}, {AccEnum, "ENUM"},
	})
}

// MethodFlagNames is ClassFlagNames for method context.
func MethodFlagNames(f AccessFlags) []string {
	return flagNames(f, []namedFlag{
		{AccPublic, "PUBLIC"}, {AccPrivate, "PRIVATE"}, {AccProtected, "PROTECTED"},
		{AccStatic, "STATIC"}, {AccFinal, "FINAL"}, {AccSynchronized, "SYNCHRONIZED"},
		{AccBridge, "BRIDGE"}, {AccVarargs, "VARARGS"}, {AccNative, "NATIVE"},
		{AccAbstract, "ABSTRACT"}, {AccStrict, "STRICT"}, {AccSynthetic, "SYNTHETIC"},
	})
}

type namedFlag struct {
	bit  AccessFlags
	name string
}

func flagNames(f AccessFlags, table []namedFlag) []string {
	var names []string
	for _, nf := range table {
		if f.Has(nf.bit) {
			names = append(names, nf.name)
		}
	}
	return names
}

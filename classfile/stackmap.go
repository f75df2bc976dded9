package classfile

// VTypeKind identifies the variant of a VerificationType.
type VTypeKind byte

const (
	VTop VTypeKind = iota
	VInteger
	VFloat
	VDouble
	VLong
	VNull
	VUninitializedThis
	VObject
	VUninitialized
)

func (k VTypeKind) String() string {
	switch k {
	case VTop:
		return "Top"
	case VInteger:
		return "Integer"
	case VFloat:
		return "Float"
	case VDouble:
		return "Double"
	case VLong:
		return "Long"
	case VNull:
		return "Null"
	case VUninitializedThis:
		return "UninitializedThis"
	case VObject:
		return "Object"
	case VUninitialized:
		return "Uninitialized"
	default:
		return "Unknown"
	}
}

// VerificationType describes the type of a single local or operand-stack
// slot in a stack map frame.
type VerificationType struct {
	Kind VTypeKind

	// Object: constant pool index of the CONSTANT_Class entry.
	ClassIndex uint16

	// Uninitialized: bytecode offset of the 'new' instruction.
	NewOffset uint16
}

func decodeVerificationType(r *Reader) (VerificationType, error) {
	tag, err := r.ReadU1()
	if err != nil {
		return VerificationType{}, err
	}

	switch tag {
	case 0:
		return VerificationType{Kind: VTop}, nil
	case 1:
		return VerificationType{Kind: VInteger}, nil
	case 2:
		return VerificationType{Kind: VFloat}, nil
	case 3:
		return VerificationType{Kind: VDouble}, nil
	case 4:
		return VerificationType{Kind: VLong}, nil
	case 5:
		return VerificationType{Kind: VNull}, nil
	case 6:
		return VerificationType{Kind: VUninitializedThis}, nil
	case 7:
		idx, err := r.ReadU2()
		if err != nil {
			return VerificationType{}, err
		}
		return VerificationType{Kind: VObject, ClassIndex: idx}, nil
	case 8:
		off, err := r.ReadU2()
		if err != nil {
			return VerificationType{}, err
		}
		return VerificationType{Kind: VUninitialized, NewOffset: off}, nil
	default:
		return VerificationType{}, &ParseError{Kind: KindUnknownVerificationType, Byte: tag}
	}
}

func decodeVerificationTypes(r *Reader, count int) ([]VerificationType, error) {
	out := make([]VerificationType, count)
	for i := range out {
		v, err := decodeVerificationType(r)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// FrameKind identifies the variant of a StackMapFrame. The variant is
// determined purely by the tag byte's range, never by an explicit
// discriminator field.
type FrameKind byte

const (
	FrameSame FrameKind = iota
	FrameSameLocals1StackItem
	FrameSameLocals1StackItemExtended
	FrameChop
	FrameSameExtended
	FrameAppend
	FrameFull
)

func (k FrameKind) String() string {
	switch k {
	case FrameSame:
		return "Same"
	case FrameSameLocals1StackItem:
		return "SameLocals1StackItem"
	case FrameSameLocals1StackItemExtended:
		return "SameLocals1StackItemExtended"
	case FrameChop:
		return "Chop"
	case FrameSameExtended:
		return "SameExtended"
	case FrameAppend:
		return "Append"
	case FrameFull:
		return "Full"
	default:
		return "Unknown"
	}
}

// StackMapFrame is one entry of a StackMapTable attribute.
type StackMapFrame struct {
	Kind FrameKind

	OffsetDelta int // all kinds; for Same it is the tag itself, for SameLocals1StackItem the tag minus 64

	// SameLocals1StackItem(Extended)
	Stack1 VerificationType

	// Chop: number of locals removed from the end (1..3)
	ChopCount int

	// Append: verification types of the additional locals (1..3 items)
	Locals []VerificationType

	// Full
	FullLocals []VerificationType
	FullStack  []VerificationType
}

// decodeStackMapFrame dispatches on a single tag byte per the six-family
// tag-range partition in the JVM spec.
func decodeStackMapFrame(r *Reader) (StackMapFrame, error) {
	tag, err := r.ReadU1()
	if err != nil {
		return StackMapFrame{}, err
	}

	switch {
	case tag <= 63:
		return StackMapFrame{Kind: FrameSame, OffsetDelta: int(tag)}, nil

	case tag <= 127:
		v, err := decodeVerificationType(r)
		if err != nil {
			return StackMapFrame{}, err
		}
		return StackMapFrame{Kind: FrameSameLocals1StackItem, OffsetDelta: int(tag) - 64, Stack1: v}, nil

	case tag <= 246:
		return StackMapFrame{}, &ParseError{Kind: KindUnknownStackMapFrameTag, Byte: tag}

	case tag == 247:
		delta, err := r.ReadU2()
		if err != nil {
			return StackMapFrame{}, err
		}
		v, err := decodeVerificationType(r)
		if err != nil {
			return StackMapFrame{}, err
		}
		return StackMapFrame{Kind: FrameSameLocals1StackItemExtended, OffsetDelta: int(delta), Stack1: v}, nil

	case tag <= 250:
		delta, err := r.ReadU2()
		if err != nil {
			return StackMapFrame{}, err
		}
		return StackMapFrame{Kind: FrameChop, OffsetDelta: int(delta), ChopCount: int(251 - tag)}, nil

	case tag == 251:
		delta, err := r.ReadU2()
		if err != nil {
			return StackMapFrame{}, err
		}
		return StackMapFrame{Kind: FrameSameExtended, OffsetDelta: int(delta)}, nil

	case tag <= 254:
		delta, err := r.ReadU2()
		if err != nil {
			return StackMapFrame{}, err
		}
		k := int(tag) - 251
		locals, err := decodeVerificationTypes(r, k)
		if err != nil {
			return StackMapFrame{}, err
		}
		return StackMapFrame{Kind: FrameAppend, OffsetDelta: int(delta), Locals: locals}, nil

	default: // 255
		delta, err := r.ReadU2()
		if err != nil {
			return StackMapFrame{}, err
		}
		localsCount, err := r.ReadU2()
		if err != nil {
			return StackMapFrame{}, err
		}
		locals, err := decodeVerificationTypes(r, int(localsCount))
		if err != nil {
			return StackMapFrame{}, err
		}
		stackCount, err := r.ReadU2()
		if err != nil {
			return StackMapFrame{}, err
		}
		stack, err := decodeVerificationTypes(r, int(stackCount))
		if err != nil {
			return StackMapFrame{}, err
		}
		return StackMapFrame{Kind: FrameFull, OffsetDelta: int(delta), FullLocals: locals, FullStack: stack}, nil
	}
}

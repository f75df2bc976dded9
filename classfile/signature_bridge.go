package classfile

import "github.com/mabhi256/jclassfile/classfile/signature"

// parseSignatureLazily parses a Signature attribute's Utf8 string using the
// grammar appropriate to the context it was found in: a class's Signature
// is a ClassSignature, a method's is a MethodSignature, and a field's or
// record component's is a FieldSignature (JVM Spec §4.7.9.1). Code never
// carries a Signature attribute; that case falls through to FieldSignature
// rather than panicking. Misplaced attributes are not rejected anywhere in
// the decoder: Context is metadata only.
func parseSignatureLazily(ctx Context, raw string) (any, error) {
	var (
		parsed any
		err    error
	)
	switch ctx {
	case ContextClass:
		parsed, err = signature.ParseClassSignature(raw)
	case ContextMethod:
		parsed, err = signature.ParseMethodSignature(raw)
	default:
		parsed, err = signature.ParseFieldSignature(raw)
	}
	if err != nil {
		return nil, wrapSignatureError(err)
	}
	return parsed, nil
}

// wrapSignatureError lifts a signature.ParseError into the classfile
// package's own ParseError, preserving it as the wrapped cause so that
// errors.As still finds the original.
func wrapSignatureError(err error) error {
	se, ok := err.(*signature.ParseError)
	if !ok {
		return err
	}

	pe := &ParseError{Position: se.Position, Expected: se.Expected, Got: se.Got, wrapped: se}
	switch se.Kind {
	case signature.KindUnexpectedChar:
		pe.Kind = KindUnexpectedChar
	case signature.KindUnexpectedEndOfSignature:
		pe.Kind = KindUnexpectedEndOfSignature
	case signature.KindTrailingInput:
		pe.Kind = KindTrailingInput
		pe.Name = "signature"
	default:
		pe.Kind = KindUnexpectedChar
	}
	return pe
}

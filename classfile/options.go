package classfile

import (
	"fmt"
	"io"
)

// ParsingOption controls how much work ToClass does beyond the mandatory
// structural decode. Every option defaults to off (false, or a nil
// DebugWriter), matching the source's
// observed behavior of doing the least work necessary and leaving richer
// decoding opt-in.
type ParsingOption struct {
	// ParseAttribute, when false, retains every attribute body as opaque
	// bytes (a Custom attribute) instead of dispatching on name. This is
	// the cheapest possible parse: constant pool, flags, and the
	// class/field/method skeleton only.
	ParseAttribute bool

	// ParseSignature, when true, additionally parses the string payload
	// of Signature attributes into a typed signature tree. Left off by
	// default so consumers uninterested in generics pay no cost.
	ParseSignature bool

	// SkipUnknownAttributes, when true, drops attributes whose name isn't
	// in the JVM SE 20 registry instead of retaining them as Custom.
	SkipUnknownAttributes bool

	// StrictVersionCheck, when true, rejects major versions outside 45-64
	// with UnsupportedClassVersion before the attribute phase. Off by
	// default: the source accepts arbitrary major versions silently.
	StrictVersionCheck bool

	// DebugWriter, when non-nil, receives a human-readable trace of
	// ToClass's decode as it progresses (one line per structural section).
	// Nil by default: no allocation, no I/O, unless a caller asks for it.
	DebugWriter io.Writer
}

// debugf writes a trace line to opts.DebugWriter if the caller supplied
// one, and is a no-op otherwise.
func (opts ParsingOption) debugf(format string, args ...any) {
	if opts.DebugWriter == nil {
		return
	}
	fmt.Fprintf(opts.DebugWriter, format, args...)
}

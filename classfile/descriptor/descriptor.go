// Package descriptor decodes JVM field and method descriptor strings
// (JVM Spec §4.3) into a typed shape. Descriptors are a simpler grammar
// than the generic signature grammar in classfile/signature: no type
// variables, no wildcards, no nested-class qualification — just base
// types, single array dimensions folded into a count, and class names.
package descriptor

import "fmt"

// Error reports a position within a descriptor string that did not match
// the expected grammar.
type Error struct {
	Position int
	Expected string
	Got      string
}

func (e *Error) Error() string {
	return fmt.Sprintf("descriptor position %d: expected %s, got %s", e.Position, e.Expected, e.Got)
}

// Kind identifies the variant of a FieldType.
type Kind int

const (
	KindByte Kind = iota
	KindChar
	KindDouble
	KindFloat
	KindInt
	KindLong
	KindShort
	KindBoolean
	KindClass
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindByte:
		return "byte"
	case KindChar:
		return "char"
	case KindDouble:
		return "double"
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindShort:
		return "short"
	case KindBoolean:
		return "boolean"
	case KindClass:
		return "class"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// FieldType is the decoded shape of a field descriptor, or of one
// parameter/return slot of a method descriptor.
type FieldType struct {
	Kind Kind

	// KindClass: internal name, e.g. "java/lang/String"
	ClassName string

	// KindArray: number of leading '[' and the element type
	Dimensions int
	Element    *FieldType
}

// MethodType is the decoded shape of a method descriptor.
type MethodType struct {
	Params []FieldType
	Return FieldType // zero value, not meaningful, when IsVoid is true
	IsVoid bool
}

var baseKinds = map[byte]Kind{
	'B': KindByte, 'C': KindChar, 'D': KindDouble, 'F': KindFloat,
	'I': KindInt, 'J': KindLong, 'S': KindShort, 'Z': KindBoolean,
}

type parser struct {
	s   string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.s) }

func (p *parser) peek() (byte, error) {
	if p.eof() {
		return 0, &Error{Position: p.pos, Expected: "more input", Got: "end of descriptor"}
	}
	return p.s[p.pos], nil
}

// ParseFieldType parses a single field descriptor, e.g. "I", "Ljava/lang/String;", "[[I".
func ParseFieldType(s string) (FieldType, error) {
	p := &parser{s: s}
	ft, err := p.fieldType()
	if err != nil {
		return FieldType{}, err
	}
	if !p.eof() {
		return FieldType{}, &Error{Position: p.pos, Expected: "end of descriptor", Got: string(s[p.pos])}
	}
	return ft, nil
}

func (p *parser) fieldType() (FieldType, error) {
	c, err := p.peek()
	if err != nil {
		return FieldType{}, err
	}

	if k, ok := baseKinds[c]; ok {
		p.pos++
		return FieldType{Kind: k}, nil
	}

	switch c {
	case 'L':
		p.pos++
		start := p.pos
		for !p.eof() && p.s[p.pos] != ';' {
			p.pos++
		}
		if p.eof() {
			return FieldType{}, &Error{Position: p.pos, Expected: "';'", Got: "end of descriptor"}
		}
		name := p.s[start:p.pos]
		p.pos++ // consume ';'
		return FieldType{Kind: KindClass, ClassName: name}, nil

	case '[':
		dims := 0
		for !p.eof() && p.s[p.pos] == '[' {
			dims++
			p.pos++
		}
		elem, err := p.fieldType()
		if err != nil {
			return FieldType{}, err
		}
		return FieldType{Kind: KindArray, Dimensions: dims, Element: &elem}, nil

	default:
		return FieldType{}, &Error{Position: p.pos, Expected: "field type", Got: string(c)}
	}
}

// ParseMethodType parses a method descriptor, e.g. "(ILjava/lang/String;)V".
func ParseMethodType(s string) (MethodType, error) {
	p := &parser{s: s}
	if err := p.expect('('); err != nil {
		return MethodType{}, err
	}

	var params []FieldType
	for {
		if p.eof() {
			return MethodType{}, &Error{Position: p.pos, Expected: "')'", Got: "end of descriptor"}
		}
		if p.s[p.pos] == ')' {
			p.pos++
			break
		}
		ft, err := p.fieldType()
		if err != nil {
			return MethodType{}, err
		}
		params = append(params, ft)
	}

	c, err := p.peek()
	if err != nil {
		return MethodType{}, err
	}
	if c == 'V' {
		p.pos++
		if !p.eof() {
			return MethodType{}, &Error{Position: p.pos, Expected: "end of descriptor", Got: string(p.s[p.pos])}
		}
		return MethodType{Params: params, IsVoid: true}, nil
	}

	ret, err := p.fieldType()
	if err != nil {
		return MethodType{}, err
	}
	if !p.eof() {
		return MethodType{}, &Error{Position: p.pos, Expected: "end of descriptor", Got: string(p.s[p.pos])}
	}
	return MethodType{Params: params, Return: ret}, nil
}

func (p *parser) expect(c byte) error {
	got, err := p.peek()
	if err != nil {
		return err
	}
	if got != c {
		return &Error{Position: p.pos, Expected: string(c), Got: string(got)}
	}
	p.pos++
	return nil
}

// Render reconstructs the descriptor string from a FieldType.
func (ft FieldType) Render() string {
	switch ft.Kind {
	case KindArray:
		out := make([]byte, ft.Dimensions)
		for i := range out {
			out[i] = '['
		}
		return string(out) + ft.Element.Render()
	case KindClass:
		return "L" + ft.ClassName + ";"
	default:
		for c, k := range baseKinds {
			if k == ft.Kind {
				return string(c)
			}
		}
		return ""
	}
}

// Render reconstructs the descriptor string from a MethodType.
func (mt MethodType) Render() string {
	s := "("
	for _, p := range mt.Params {
		s += p.Render()
	}
	s += ")"
	if mt.IsVoid {
		return s + "V"
	}
	return s + mt.Return.Render()
}

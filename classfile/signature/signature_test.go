package signature

import "testing"

func TestParseFieldSignatureRoundTrip(t *testing.T) {
	cases := []string{
		"Ljava/lang/String;",
		"Ljava/util/List<Ljava/lang/String;>;",
		"[Ljava/lang/Object;",
		"[[I",
		"TT;",
		"Ljava/util/Map<TK;TV;>;",
		"Ljava/util/List<+Ljava/lang/Number;>;",
		"Ljava/util/List<-Ljava/lang/Integer;>;",
		"Ljava/util/List<*>;",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			sig, err := ParseFieldSignature(in)
			if err != nil {
				t.Fatalf("ParseFieldSignature(%q): %v", in, err)
			}
			if got := sig.Render(); got != in {
				t.Fatalf("Render() = %q, want %q", got, in)
			}
		})
	}
}

func TestParseClassSignatureRoundTrip(t *testing.T) {
	cases := []string{
		"Ljava/lang/Object;",
		"<T:Ljava/lang/Object;>Ljava/lang/Object;Ljava/lang/Comparable<TT;>;",
		"Ljava/lang/Object;Ljava/io/Serializable;Ljava/lang/Cloneable;",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			sig, err := ParseClassSignature(in)
			if err != nil {
				t.Fatalf("ParseClassSignature(%q): %v", in, err)
			}
			if got := sig.Render(); got != in {
				t.Fatalf("Render() = %q, want %q", got, in)
			}
		})
	}
}

func TestParseMethodSignatureRoundTrip(t *testing.T) {
	cases := []string{
		"()V",
		"(I)Ljava/lang/String;",
		"<T:Ljava/lang/Object;>(TT;)V",
		"(Ljava/lang/String;)V^Ljava/io/IOException;",
	}
	for _, in := range cases {
		t.Run(in, func(t *testing.T) {
			sig, err := ParseMethodSignature(in)
			if err != nil {
				t.Fatalf("ParseMethodSignature(%q): %v", in, err)
			}
			if got := sig.Render(); got != in {
				t.Fatalf("Render() = %q, want %q", got, in)
			}
		})
	}
}

func TestParseClassSignatureRejectsTypeVariableSuperinterface(t *testing.T) {
	// A superinterface must be a ClassTypeSignature, never a type variable.
	_, err := ParseClassSignature("Ljava/lang/Object;TT;")
	if err == nil {
		t.Fatal("expected parse error: type variable is not a valid superinterface")
	}
}

func TestParseSignatureUnexpectedChar(t *testing.T) {
	_, err := ParseFieldSignature("Qjava/lang/String;")
	if err == nil {
		t.Fatal("expected error for invalid leading character")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != KindUnexpectedChar {
		t.Fatalf("got %v, want KindUnexpectedChar", err)
	}
}

func TestParseSignatureTrailingInput(t *testing.T) {
	_, err := ParseFieldSignature("Ljava/lang/String;extra")
	if err == nil {
		t.Fatal("expected trailing input error")
	}
	pe, ok := err.(*ParseError)
	if !ok || pe.Kind != KindTrailingInput {
		t.Fatalf("got %v, want KindTrailingInput", err)
	}
}

// internal/encoding/encoding_test.go
package encoding

import (
	"math"
	"testing"
)

func TestParse_Footprints(t *testing.T) {
	cases := []struct {
		token string
		enc   Encoding
		words uint16
	}{
		{"int8", Int8, 1},
		{"int16", Int16, 1},
		{"uint16", Uint16, 1},
		{"int32", Int32, 2},
		{"uint32", Uint32, 2},
		{"float32", Float32, 2},
	}

	for _, c := range cases {
		enc, err := Parse(c.token)
		if err != nil {
			t.Fatalf("Parse(%q) err=%v", c.token, err)
		}
		if enc != c.enc {
			t.Fatalf("Parse(%q)=%v, want %v", c.token, enc, c.enc)
		}
		if enc.Words() != c.words {
			t.Fatalf("%s.Words()=%d, want %d", enc, enc.Words(), c.words)
		}
	}
}

func TestParse_Unknown(t *testing.T) {
	if _, err := Parse("float128"); err == nil {
		t.Fatalf("expected error for float128, got nil")
	}
}

func TestFloat32_RoundTripExact(t *testing.T) {
	words := Float32.Encode(23.5)
	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d", len(words))
	}

	v, err := Float32.Decode(words)
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if v != 23.5 {
		t.Fatalf("round trip: got %v, want 23.5", v)
	}
}

func TestInt16_TwosComplement(t *testing.T) {
	words := Int16.Encode(-1)
	if len(words) != 1 || words[0] != 0xFFFF {
		t.Fatalf("Encode(-1)=%v, want [0xFFFF]", words)
	}

	v, err := Int16.Decode(words)
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if v != -1 {
		t.Fatalf("round trip: got %v, want -1", v)
	}
}

func TestInt32_HighWordFirst(t *testing.T) {
	words := Int32.Encode(65538) // 0x00010002
	if len(words) != 2 || words[0] != 0x0001 || words[1] != 0x0002 {
		t.Fatalf("Encode(65538)=%v, want [0x0001 0x0002]", words)
	}

	neg := Int32.Encode(-1)
	if neg[0] != 0xFFFF || neg[1] != 0xFFFF {
		t.Fatalf("Encode(-1)=%v, want [0xFFFF 0xFFFF]", neg)
	}

	v, err := Int32.Decode(neg)
	if err != nil {
		t.Fatalf("Decode err=%v", err)
	}
	if v != -1 {
		t.Fatalf("round trip: got %v, want -1", v)
	}
}

func TestEncode_TruncatesAndSaturates(t *testing.T) {
	if w := Int16.Encode(21.9); w[0] != 21 {
		t.Fatalf("Encode(21.9)=%d, want truncation to 21", w[0])
	}
	if w := Int16.Encode(70000); int16(w[0]) != 32767 {
		t.Fatalf("Encode(70000)=%d, want saturation at 32767", int16(w[0]))
	}
	if w := Uint16.Encode(-5); w[0] != 0 {
		t.Fatalf("Encode(-5)=%d, want saturation at 0", w[0])
	}
}

func TestEncode_NaNIsZeroForIntegers(t *testing.T) {
	if w := Int16.Encode(math.NaN()); w[0] != 0 {
		t.Fatalf("Int16.Encode(NaN)=%v, want [0]", w)
	}
	if w := Uint16.Encode(math.NaN()); w[0] != 0 {
		t.Fatalf("Uint16.Encode(NaN)=%v, want [0]", w)
	}
	if w := Int32.Encode(math.NaN()); w[0] != 0 || w[1] != 0 {
		t.Fatalf("Int32.Encode(NaN)=%v, want [0 0]", w)
	}
	if w := Uint32.Encode(math.NaN()); w[0] != 0 || w[1] != 0 {
		t.Fatalf("Uint32.Encode(NaN)=%v, want [0 0]", w)
	}
}

func TestDecode_WordCountChecked(t *testing.T) {
	if _, err := Float32.Decode([]uint16{1}); err == nil {
		t.Fatalf("expected error for short word slice, got nil")
	}
}

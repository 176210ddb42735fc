// internal/encoding/encoding.go
package encoding

import (
	"fmt"
	"math"
)

// Encoding is one of the recognized numeric register encodings.
type Encoding uint8

const (
	Int8 Encoding = iota
	Int16
	Uint16
	Int32
	Uint32
	Float32
)

// Parse maps a mapping-file token to an Encoding.
func Parse(token string) (Encoding, error) {
	switch token {
	case "int8":
		return Int8, nil
	case "int16":
		return Int16, nil
	case "uint16":
		return Uint16, nil
	case "int32":
		return Int32, nil
	case "uint32":
		return Uint32, nil
	case "float32":
		return Float32, nil
	default:
		return 0, fmt.Errorf("unknown encoding %q", token)
	}
}

func (e Encoding) String() string {
	switch e {
	case Int8:
		return "int8"
	case Int16:
		return "int16"
	case Uint16:
		return "uint16"
	case Int32:
		return "int32"
	case Uint32:
		return "uint32"
	case Float32:
		return "float32"
	default:
		return fmt.Sprintf("encoding(%d)", uint8(e))
	}
}

// Words returns the register footprint of the encoding.
func (e Encoding) Words() uint16 {
	switch e {
	case Int32, Uint32, Float32:
		return 2
	default:
		return 1
	}
}

// Encode converts a sensor value into register words: big-endian within a
// register, high word first for 32-bit encodings. Integer encodings
// truncate toward zero and saturate at the type bounds; signed types use
// two's complement.
func (e Encoding) Encode(v float64) []uint16 {
	switch e {
	case Int8:
		return []uint16{uint16(uint8(int8(clampInt(v, math.MinInt8, math.MaxInt8))))}
	case Int16:
		return []uint16{uint16(int16(clampInt(v, math.MinInt16, math.MaxInt16)))}
	case Uint16:
		return []uint16{uint16(clampUint(v, math.MaxUint16))}
	case Int32:
		u := uint32(int32(clampInt(v, math.MinInt32, math.MaxInt32)))
		return []uint16{uint16(u >> 16), uint16(u)}
	case Uint32:
		u := uint32(clampUint(v, math.MaxUint32))
		return []uint16{uint16(u >> 16), uint16(u)}
	case Float32:
		b := math.Float32bits(float32(v))
		return []uint16{uint16(b >> 16), uint16(b)}
	default:
		return []uint16{0}
	}
}

// Decode is the inverse of Encode.
func (e Encoding) Decode(words []uint16) (float64, error) {
	if len(words) != int(e.Words()) {
		return 0, fmt.Errorf("%s: want %d words, got %d", e, e.Words(), len(words))
	}
	switch e {
	case Int8:
		return float64(int8(words[0])), nil
	case Int16:
		return float64(int16(words[0])), nil
	case Uint16:
		return float64(words[0]), nil
	case Int32:
		return float64(int32(uint32(words[0])<<16 | uint32(words[1]))), nil
	case Uint32:
		return float64(uint32(words[0])<<16 | uint32(words[1])), nil
	case Float32:
		return float64(math.Float32frombits(uint32(words[0])<<16 | uint32(words[1]))), nil
	default:
		return 0, fmt.Errorf("cannot decode %s", e)
	}
}

func clampInt(v float64, lo, hi int64) int64 {
	if math.IsNaN(v) {
		return 0
	}
	t := math.Trunc(v)
	if t < float64(lo) {
		return lo
	}
	if t > float64(hi) {
		return hi
	}
	return int64(t)
}

func clampUint(v float64, hi uint64) uint64 {
	if math.IsNaN(v) {
		return 0
	}
	t := math.Trunc(v)
	if t < 0 {
		return 0
	}
	if t > float64(hi) {
		return hi
	}
	return uint64(t)
}

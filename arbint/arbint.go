// Package arbint provides unsigned integers bounded to an arbitrary bit width
// between 1 and 64.
//
// A bounded integer pairs a native storage type (uint8, uint16, uint32 or
// uint64) with a width marker (B1..B64). Construction through New rejects
// values that do not fit into the width, so a UInt never holds more bits than
// its type claims:
//
//	v, err := arbint.New[uint8, arbint.B3](5)   // ok
//	_, err = arbint.New[uint8, arbint.B3](8)    // *OutOfRangeError
//
// Code produced by bitenum-generator uses UInt as the packed representation
// of enumerations whose width is not a native one.
package arbint

//go:generate go run gen_widths.go

import (
	"math/bits"
	"strconv"
)

// Storage lists the native integer types a UInt can be stored in.
type Storage interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width is implemented by the width markers B1..B64.
type Width interface {
	Bits() uint
}

// UInt is an unsigned integer of W bits stored in T.
// The zero value is a valid zero.
type UInt[T Storage, W Width] struct {
	value T
}

// New returns value as a W-bit integer, or an error if it does not fit.
func New[T Storage, W Width](value T) (UInt[T, W], error) {
	width, storage := widthOf[W](), storageBits[T]()
	if width == 0 || width > storage {
		return UInt[T, W]{}, &WidthError{Bits: width, StorageBits: storage}
	}

	if value > Max[T, W]() {
		return UInt[T, W]{}, &OutOfRangeError{Value: uint64(value), Bits: width}
	}

	return UInt[T, W]{value: value}, nil
}

// MustNew is like New but panics if value does not fit.
func MustNew[T Storage, W Width](value T) UInt[T, W] {
	u, err := New[T, W](value)
	if err != nil {
		panic(err)
	}

	return u
}

// Max returns the largest value a W-bit integer stored in T can hold.
func Max[T Storage, W Width]() T {
	width := widthOf[W]()
	if width >= storageBits[T]() {
		return ^T(0)
	}

	return T(1)<<width - 1
}

// Value returns the underlying storage integer.
func (u UInt[T, W]) Value() T {
	return u.value
}

// Bits returns the width of u.
func (u UInt[T, W]) Bits() uint {
	return widthOf[W]()
}

// String formats u in decimal.
func (u UInt[T, W]) String() string {
	return strconv.FormatUint(uint64(u.value), 10)
}

func widthOf[W Width]() uint {
	var w W
	return w.Bits()
}

func storageBits[T Storage]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

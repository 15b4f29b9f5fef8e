// Package width maps a bit width to the Go types that carry a packed value.
//
// Widths that land exactly on a native size (8, 16, 32, 64) are represented
// by the storage integer itself. Every other width is wrapped in
// arbint.UInt, which rejects out-of-range construction, so generated code
// never truncates silently.
package width

import (
	"errors"
	"fmt"

	"bitenum-generator/utils"
)

const (
	MinBits = 1
	MaxBits = 64
)

var ErrUnsupportedWidth = errors.New("unsupported bit width")

// Profile describes how values of one bit width are stored and bounded.
type Profile struct {
	Bits          int
	Storage       Storage
	NeedsBounding bool
}

// Resolve returns the profile for bits.
func Resolve(bits int) (Profile, error) {
	if !utils.IsInRange(MinBits, bits, MaxBits) {
		return Profile{}, fmt.Errorf("%w: u%d, supported up to u%d", ErrUnsupportedWidth, bits, MaxBits)
	}

	storage := storageFor(bits)

	return Profile{
		Bits:          bits,
		Storage:       storage,
		NeedsBounding: bits != storage.Bits(),
	}, nil
}

// StorageType returns the Go name of the storage integer.
func (p Profile) StorageType() string {
	return p.Storage.String()
}

// MarkerType returns the arbint width marker, e.g. "arbint.B3".
func (p Profile) MarkerType(pkg string) string {
	return fmt.Sprintf("%s.B%d", pkg, p.Bits)
}

// BoundedType returns the type of the packed representation, qualified with
// the runtime package alias pkg.
func (p Profile) BoundedType(pkg string) string {
	if !p.NeedsBounding {
		return p.StorageType()
	}

	return fmt.Sprintf("%s.UInt[%s, %s]", pkg, p.StorageType(), p.MarkerType(pkg))
}

// Wrap returns an expression converting expr to the bounded type.
func (p Profile) Wrap(pkg, expr string) string {
	conv := fmt.Sprintf("%s(%s)", p.StorageType(), expr)
	if !p.NeedsBounding {
		return conv
	}

	return fmt.Sprintf("%s.MustNew[%s, %s](%s)", pkg, p.StorageType(), p.MarkerType(pkg), conv)
}

// Unwrap returns an expression extracting the storage integer from expr.
func (p Profile) Unwrap(expr string) string {
	if !p.NeedsBounding {
		return expr
	}

	return expr + ".Value()"
}

// Fits reports whether v is representable in p.Bits bits.
func (p Profile) Fits(v uint64) bool {
	return p.Bits >= 64 || v < uint64(1)<<p.Bits
}

// Capacity returns 2^Bits. ok is false when the count does not fit into a
// uint64, i.e. for 64 bits.
func (p Profile) Capacity() (n uint64, ok bool) {
	if p.Bits >= 64 {
		return 0, false
	}

	return uint64(1) << p.Bits, true
}

// Max returns the largest representable value.
func (p Profile) Max() uint64 {
	if p.Bits >= 64 {
		return ^uint64(0)
	}

	return uint64(1)<<p.Bits - 1
}

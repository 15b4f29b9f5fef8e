package arbint

import "fmt"

// OutOfRangeError reports a value that does not fit into the requested width.
type OutOfRangeError struct {
	Value uint64
	Bits  uint
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("arbint: value %d does not fit into %d bits", e.Value, e.Bits)
}

// WidthError reports a width marker that the storage type cannot hold.
type WidthError struct {
	Bits        uint
	StorageBits uint
}

func (e *WidthError) Error() string {
	return fmt.Sprintf("arbint: %d-bit width does not fit into %d-bit storage", e.Bits, e.StorageBits)
}

// UnmappedError is returned by generated non-exhaustive constructors when a
// raw value does not correspond to any variant. Value is the rejected raw
// value as it was passed in.
type UnmappedError[T Storage] struct {
	Type  string
	Value T
}

func (e *UnmappedError[T]) Error() string {
	return fmt.Sprintf("%s: raw value %d has no matching variant", e.Type, uint64(e.Value))
}

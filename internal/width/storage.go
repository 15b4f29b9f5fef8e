package width

//go:generate go tool stringer -type=Storage -linecomment -output=storage_string.go

// Storage is the native unsigned integer type that holds a packed value.
type Storage int

const (
	_ Storage = iota // skip zero value, use it as an invalid storage

	StorageUint8  // uint8
	StorageUint16 // uint16
	StorageUint32 // uint32
	StorageUint64 // uint64
)

// Bits returns the size of the storage type in bits.
func (s Storage) Bits() int {
	switch s {
	default:
		panic("only valid storages have a size, but requested for: " + s.String())
	case StorageUint8:
		return 8
	case StorageUint16:
		return 16
	case StorageUint32:
		return 32
	case StorageUint64:
		return 64
	}
}

// storageFor returns the smallest storage holding bits.
func storageFor(bits int) Storage {
	for s := StorageUint8; s <= StorageUint64; s++ {
		if bits <= s.Bits() {
			return s
		}
	}

	return 0
}

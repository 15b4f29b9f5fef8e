package utils

type integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T integer](min T, value T, max T) bool {
	return min <= value && value <= max
}

// IsDecimal reports whether s is a non-empty run of ASCII digits.
func IsDecimal(s string) bool {
	if s == "" {
		return false
	}

	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

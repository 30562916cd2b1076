package utils

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// IsPrintableASCII reports whether b renders as itself inside a Go rune literal.
func IsPrintableASCII(b byte) bool {
	return IsInRange(byte(0x20), b, byte(0x7e))
}

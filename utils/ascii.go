package utils

const caseBit = 'a' - 'A'

// ToUpperASCII maps a-z to A-Z and leaves every other byte untouched.
func ToUpperASCII(b byte) byte {
	if IsInRange(byte('a'), b, byte('z')) {
		return b - caseBit
	}

	return b
}

// ToLowerASCII maps A-Z to a-z and leaves every other byte untouched.
func ToLowerASCII(b byte) byte {
	if IsInRange(byte('A'), b, byte('Z')) {
		return b + caseBit
	}

	return b
}

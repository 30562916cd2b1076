package common

import "strings"

// UnknownStr is printed for enum values without a name.
const UnknownStr = "unknown"

// SnakeCase turns a Go identifier such as parseHTTPMethod into
// parse_http_method.
func SnakeCase(ident string) string {
	var b strings.Builder

	for i := 0; i < len(ident); i++ {
		c := ident[i]
		isUpper := 'A' <= c && c <= 'Z'

		if isUpper && i > 0 {
			prevLower := ident[i-1] < 'A' || ident[i-1] > 'Z'
			nextLower := i+1 < len(ident) && 'a' <= ident[i+1] && ident[i+1] <= 'z'

			if (prevLower || nextLower) && ident[i-1] != '_' {
				b.WriteByte('_')
			}
		}

		if isUpper {
			c += 'a' - 'A'
		}

		b.WriteByte(c)
	}

	return b.String()
}

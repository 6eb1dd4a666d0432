package models

// IsValidID reports whether s is a well-formed document identifier:
// exactly 24 hexadecimal characters. Every externally supplied id goes
// through this gate before it is allowed anywhere near the store.
func IsValidID(s string) bool {
	if len(s) != 24 {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

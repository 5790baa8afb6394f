package models

// idLength is the length of a hex-encoded ObjectID.
const idLength = 24

// IsValidID reports whether s is a well-formed 24-character hex identifier.
// Every lookup goes through this gate before a store query is built, so a
// malformed id becomes a clean rejection instead of a driver error.
func IsValidID(s string) bool {
	if len(s) != idLength {
		return false
	}
	for i := 0; i < idLength; i++ {
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

package format

const bytes32Len = 66

// IsBytes32 reports whether s looks like a 0x-prefixed 32-byte hex literal.
// Only the length and the prefix are checked; the 64 digits are not.
func IsBytes32(s string) bool {
	return len(s) == bytes32Len && s[:2] == "0x"
}

package format

import (
	"encoding/hex"
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/sha3"
)

const addressHexLen = 40

var (
	addressRe      = regexp.MustCompile(`^(0x)?[0-9a-fA-F]{40}$`)
	lowerAddressRe = regexp.MustCompile(`^[0-9a-f]{40}$`)
	upperAddressRe = regexp.MustCompile(`^[0-9A-F]{40}$`)
)

// ErrInvalidAddress is returned by ToChecksumAddress for malformed input.
var ErrInvalidAddress = errors.New("format: invalid ethereum address")

// IsAddress reports whether s is a 20-byte hex address with an optional 0x
// prefix (lowercase x only). All-lowercase and all-uppercase forms are accepted as
// non-checksummed; mixed case must carry a valid checksum.
func IsAddress(s string) bool {
	if !addressRe.MatchString(s) {
		return false
	}
	body := stripHexPrefix(s)
	if lowerAddressRe.MatchString(body) || upperAddressRe.MatchString(body) {
		return true
	}
	return IsChecksumAddress(s)
}

// IsChecksumAddress verifies the mixed-case checksum of s: the n-th hex digit
// must be uppercase when the n-th nibble of keccak256(lowercase digits) is
// greater than 7 and lowercase otherwise.
func IsChecksumAddress(s string) bool {
	body := stripHexPrefix(s)
	if len(body) != addressHexLen {
		return false
	}
	hash := keccakHex(strings.ToLower(body))
	for i := 0; i < addressHexLen; i++ {
		c := body[i]
		upper := nibble(hash[i]) > 7
		if upper && isLowerHexLetter(c) {
			return false
		}
		if !upper && isUpperHexLetter(c) {
			return false
		}
	}
	return true
}

// ToChecksumAddress renders s in its 0x-prefixed checksummed form.
func ToChecksumAddress(s string) (string, error) {
	if !addressRe.MatchString(s) {
		return "", ErrInvalidAddress
	}
	body := strings.ToLower(stripHexPrefix(s))
	hash := keccakHex(body)
	out := make([]byte, 0, 2+addressHexLen)
	out = append(out, '0', 'x')
	for i := 0; i < addressHexLen; i++ {
		c := body[i]
		if nibble(hash[i]) > 7 && c >= 'a' && c <= 'f' {
			c -= 'a' - 'A'
		}
		out = append(out, c)
	}
	return string(out), nil
}

func stripHexPrefix(s string) string {
	return strings.TrimPrefix(s, "0x")
}

func keccakHex(s string) string {
	h := sha3.NewLegacyKeccak256()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

func nibble(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return 0
	}
}

func isLowerHexLetter(c byte) bool { return c >= 'a' && c <= 'f' }
func isUpperHexLetter(c byte) bool { return c >= 'A' && c <= 'F' }

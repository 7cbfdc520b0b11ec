// Package vin validates Vehicle Identification Numbers against their
// embedded check digit.
package vin

import (
	"errors"
	"strings"
)

// ErrInvalidFormat is returned by CheckDigit when the input is not
// 17 characters drawn from the VIN alphabet.
var ErrInvalidFormat = errors.New("invalid vin format")

const (
	vinLength     = 17
	checkDigitPos = 8
)

// transliteration maps VIN letters to their checksum values. The
// letters I, O and Q are not part of the VIN alphabet and have no entry.
var transliteration = map[byte]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'F': 6, 'G': 7, 'H': 8,
	'J': 1, 'K': 2, 'L': 3, 'M': 4, 'N': 5, 'P': 7, 'R': 9,
	'S': 2, 'T': 3, 'U': 4, 'V': 5, 'W': 6, 'X': 7, 'Y': 8, 'Z': 9,
}

// weights holds the per-position multipliers. Position 8 is the check
// digit slot and carries weight 0, so its character never contributes
// to the sum.
var weights = [vinLength]int{8, 7, 6, 5, 4, 3, 2, 10, 0, 9, 8, 7, 6, 5, 4, 3, 2}

// Normalize returns the canonical form of a VIN: trimmed and upper-cased.
func Normalize(vin string) string {
	return strings.ToUpper(strings.TrimSpace(vin))
}

// IsValid reports whether vin is a well-formed 17-character VIN whose
// check digit matches the weighted checksum of its other positions.
// Input is treated case-insensitively. Malformed input yields false,
// never an error.
func IsValid(vin string) bool {
	s := Normalize(vin)

	want, err := CheckDigit(s)
	if err != nil {
		return false
	}

	return s[checkDigitPos] == want
}

// CheckDigit computes the expected check character for vin: a decimal
// digit, or 'X' when the weighted sum mod 11 is ten. The character
// currently occupying the check digit slot is ignored, since that
// position carries weight 0. ErrInvalidFormat is returned when vin is
// not 17 characters of the VIN alphabet, letting callers distinguish a
// malformed VIN from one with a wrong check digit.
func CheckDigit(vin string) (byte, error) {
	s := Normalize(vin)
	if len(s) != vinLength {
		return 0, ErrInvalidFormat
	}

	var sum int
	for i := range vinLength {
		v, ok := value(s[i])
		if !ok {
			return 0, ErrInvalidFormat
		}
		sum += v * weights[i]
	}

	if r := sum % 11; r != 10 {
		return byte('0' + r), nil
	}

	return 'X', nil
}

// value resolves a single normalized VIN character to its checksum
// value. Digits map to themselves, letters go through the
// transliteration table.
func value(c byte) (int, bool) {
	if c >= '0' && c <= '9' {
		return int(c - '0'), true
	}

	v, ok := transliteration[c]

	return v, ok
}

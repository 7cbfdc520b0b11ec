// Package vin implements ISO 3779 style check-digit validation for
// 17-character Vehicle Identification Numbers.
//
// The check digit occupies position 9 of the VIN (index 8). Every other
// position is transliterated to a numeric value, multiplied by a fixed
// per-position weight, and the products are summed. The sum modulo 11
// yields the expected check character: the matching decimal digit, or
// the letter X for a remainder of ten.
//
// # Usage
//
//	if !vin.IsValid("1M8GDM9AXKP042788") {
//		// reject before spending a network call
//	}
//
// [IsValid] is a pure predicate: any malformed input, including strings
// of the wrong length or containing the letters I, O or Q, yields
// false. Callers that need to tell a malformed VIN apart from a wrong
// check digit can use [CheckDigit], which reports [ErrInvalidFormat]
// for the former.
//
// All functions are stateless and safe for concurrent use.
package vin

/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2022 Philip Eklöf
 */

// Package hexcodec converts between raw bytes and hexadecimal text.
//
// Decoding is available under three policies: strict, hex-only (lenient
// recovery from noise) and find-anywhere (decode every hex digit pair found
// in arbitrary input, pass everything else through).
package hexcodec

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
)

// ErrOddLength is returned when a hex string has an odd number of digits.
var ErrOddLength = errors.New("Odd number of digits")

// ErrRecoveryExhausted is returned when lenient hex-only decoding hits an
// error it has no recovery for.
var ErrRecoveryExhausted = errors.New("hex-only recovery exhausted")

// InvalidCharacterError reports a byte that is not an ASCII hex digit.
type InvalidCharacterError struct {
	Char  byte
	Index int
}

func (e InvalidCharacterError) Error() string {
	return fmt.Sprintf("Invalid character %q at position %d", e.Char, e.Index)
}

// whitespace as trimmed by Trim.
const whitespace = " \t\n\f\r"

// Trim returns b without leading and trailing ASCII whitespace.
func Trim(b []byte) []byte {
	return bytes.Trim(b, whitespace)
}

func ishex(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}

// Encode returns the lowercase hex representation of b.
func Encode(b []byte) []byte {
	dst := make([]byte, hex.EncodedLen(len(b)))
	hex.Encode(dst, b)
	return dst
}

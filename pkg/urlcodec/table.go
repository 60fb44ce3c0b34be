/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2022 Philip Eklöf
 */

// Package urlcodec implements percent (URL) encoding and decoding.
package urlcodec

import (
	"strings"
)

// Table tells for every byte value whether it is to be percent-encoded.
//
// Character sets given as strings are matched against the byte values
// 0-255 as Latin-1 code points, i.e. byte 0xE9 is in the set "é".
type Table [256]bool

// reserved is the RFC 3986 set of reserved characters.
const reserved = "!#$%&'()*+,/:;=?@[]"

const lowerhex = "0123456789abcdef"

func inSet(set string, b byte) bool {
	return strings.ContainsRune(set, rune(b))
}

func isGraphic(b byte) bool {
	return '!' <= b && b <= '~'
}

func isAlnum(b byte) bool {
	switch {
	case '0' <= b && b <= '9':
		return true
	case 'a' <= b && b <= 'z':
		return true
	case 'A' <= b && b <= 'Z':
		return true
	}
	return false
}

// RFC3986Table encodes everything that is not a printable ASCII character
// and the RFC 3986 reserved characters not listed in exclude.
func RFC3986Table(exclude string) (t Table) {
	for i := range t {
		b := byte(i)
		t[i] = !isGraphic(b) || (inSet(reserved, b) && !inSet(exclude, b))
	}
	return t
}

// CustomTable encodes the characters in chars that are not in exclude.
func CustomTable(chars string, exclude string) (t Table) {
	for i := range t {
		b := byte(i)
		t[i] = inSet(chars, b) && !inSet(exclude, b)
	}
	return t
}

// DefaultTable encodes everything that is not ASCII alphanumeric, except
// the characters in exclude.
func DefaultTable(exclude string) (t Table) {
	for i := range t {
		b := byte(i)
		t[i] = !isAlnum(b) && !inSet(exclude, b)
	}
	return t
}

// Encode replaces every byte of b marked in t by "%xx".
func (t *Table) Encode(b []byte) []byte {
	out := make([]byte, 0, len(b))
	for _, c := range b {
		if t[c] {
			out = append(out, '%', lowerhex[c>>4], lowerhex[c&15])
		} else {
			out = append(out, c)
		}
	}
	return out
}

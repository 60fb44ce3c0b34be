/*
 * SPDX-License-Identifier: BSD-3-Clause
 *
 * Copyright (c) 2009 The Go Authors. All rights reserved.
 * Copyright (c) 2022 Philip Eklöf
 *
 */

/*
 * This code is based on:
 * net/url/url.go (standard library)
 *
 */

package urlcodec

import (
	"strconv"

	"github.com/phiekl/bkb/pkg/hexcodec"
)

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

type EscapeError string

func (e EscapeError) Error() string {
	return "invalid percentage escape " + strconv.Quote(string(e))
}

// escapeAt reports whether b[i] starts a well-formed "%AB" escape.
func escapeAt(b []byte, i int) bool {
	return b[i] == '%' && i+2 < len(b) && ishex(b[i+1]) && ishex(b[i+2])
}

// Decode trims b and converts each well-formed "%AB" escape into the byte
// 0xAB. A '%' not followed by two hexadecimal digits is kept as is.
func Decode(b []byte) []byte {
	b = hexcodec.Trim(b)
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if escapeAt(b, i) {
			out = append(out, unhex(b[i+1])<<4|unhex(b[i+2]))
			i += 2
			continue
		}
		out = append(out, b[i])
	}
	return out
}

// PercentUnescape trims b and converts each 3-byte encoded substring of the
// form "%AB" into the hex-decoded byte 0xAB. It returns an EscapeError if
// any % is not followed by two hexadecimal digits.
func PercentUnescape(b []byte) ([]byte, error) {
	b = hexcodec.Trim(b)

	// Count %, check that they're well-formed.
	n := 0
	for i := 0; i < len(b); {
		switch b[i] {
		case '%':
			n++
			if !escapeAt(b, i) {
				s := b[i:]
				if len(s) > 3 {
					s = s[:3]
				}
				return nil, EscapeError(s)
			}
			i += 3
		default:
			i++
		}
	}

	out := make([]byte, 0, len(b)-2*n)
	for i := 0; i < len(b); i++ {
		switch b[i] {
		case '%':
			out = append(out, unhex(b[i+1])<<4|unhex(b[i+2]))
			i += 2
		default:
			out = append(out, b[i])
		}
	}
	return out, nil
}

/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2022 Philip Eklöf
 */

package hexcodec

import (
	"bytes"
	"errors"
	"fmt"
)

// Policy selects how Decode interprets its input.
//
// The zero value decodes hex digit pairs found anywhere in the input.
// HexOnly expects the input to be (mostly) hex. Strict implies HexOnly and
// fails on any deviation.
type Policy struct {
	HexOnly bool
	Strict  bool
}

func (p Policy) normalize() Policy {
	if p.Strict {
		p.HexOnly = true
	}
	return p
}

func (p Policy) String() string {
	p = p.normalize()
	switch {
	case p.Strict:
		return "strict"
	case p.HexOnly:
		return "hex-only"
	}
	return "find-anywhere"
}

// Decode decodes b according to p.
func Decode(b []byte, p Policy) ([]byte, error) {
	p = p.normalize()
	if p.HexOnly {
		return DecodeHexOnly(b, p.Strict)
	}
	return DecodeAnywhere(b), nil
}

// DecodeStrict trims b and decodes it as a hex string. It fails with
// ErrOddLength or an InvalidCharacterError, in that order of precedence.
func DecodeStrict(b []byte) ([]byte, error) {
	return decodeStrict(Trim(b))
}

func decodeStrict(b []byte) ([]byte, error) {
	if len(b)%2 != 0 {
		return nil, ErrOddLength
	}
	out := make([]byte, len(b)/2)
	for i := 0; i < len(b); i += 2 {
		if !ishex(b[i]) {
			return nil, InvalidCharacterError{Char: b[i], Index: i}
		}
		if !ishex(b[i+1]) {
			return nil, InvalidCharacterError{Char: b[i+1], Index: i + 1}
		}
		out[i/2] = unhex(b[i])<<4 | unhex(b[i+1])
	}
	return out, nil
}

// DecodeHexOnly decodes b, which is expected to be a hex string.
//
// With strict set it behaves like DecodeStrict. Otherwise spaces are
// removed and decoding recovers from errors: from the first invalid
// character on, the rest of the input is copied through verbatim, and an
// odd trailing byte is copied through as is.
func DecodeHexOnly(b []byte, strict bool) ([]byte, error) {
	work := Trim(b)
	if strict {
		return decodeStrict(work)
	}
	work = bytes.ReplaceAll(work, []byte{' '}, nil)

	// Literal tails, in the order they were split off.
	var tails [][]byte
	for {
		work = Trim(work)
		out, err := decodeStrict(work)
		if err == nil {
			for i := len(tails) - 1; i >= 0; i-- {
				out = append(out, tails[i]...)
			}
			return out, nil
		}

		var ice InvalidCharacterError
		switch {
		case errors.As(err, &ice):
			tails = append(tails, work[ice.Index:])
			work = work[:ice.Index]
		case errors.Is(err, ErrOddLength):
			tails = append(tails, work[len(work)-1:])
			work = work[:len(work)-1]
		default:
			return nil, fmt.Errorf("%w: %v", ErrRecoveryExhausted, err)
		}
	}
}

// DecodeAnywhere decodes every pair of adjacent hex digits in b and copies
// all other bytes through unchanged. Pairs never overlap: scanning resumes
// right after a decoded pair.
func DecodeAnywhere(b []byte) []byte {
	out := make([]byte, 0, len(b))

	// carry holds the byte after the current window, if any; it is what is
	// left over once fewer than two bytes remain.
	carry := b
	if len(carry) > 1 {
		carry = nil
	}
	for i := 0; i+1 < len(b); {
		hi, lo := b[i], b[i+1]
		if ishex(hi) && ishex(lo) {
			out = append(out, unhex(hi)<<4|unhex(lo))
			if i+2 < len(b) {
				carry = b[i+2 : i+3]
			} else {
				carry = nil
			}
			i += 2
			continue
		}
		out = append(out, hi)
		carry = b[i+1 : i+2]
		i++
	}
	return append(out, carry...)
}

/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2022 Philip Eklöf
 */

// Package applet provides the byte transformations offered on the command
// line, each configured once and then applied to a whole input buffer.
package applet

import (
	"fmt"
	"log"

	"github.com/phiekl/bkb/pkg/hexcodec"
	"github.com/phiekl/bkb/pkg/urlcodec"
)

type Applet interface {
	Name() string
	Description() string
	Process(data []byte) ([]byte, error)
}

// Names lists the applets in the order they are offered.
func Names() []string {
	return []string{"hex", "unhex", "urlenc", "urldec"}
}

type Hex struct{}

func NewHex() *Hex {
	return &Hex{}
}

func (*Hex) Name() string        { return "hex" }
func (*Hex) Description() string { return "hex encode" }

func (*Hex) Process(data []byte) ([]byte, error) {
	return hexcodec.Encode(data), nil
}

type Unhex struct {
	Policy hexcodec.Policy
}

func NewUnhex(p hexcodec.Policy) *Unhex {
	return &Unhex{Policy: p}
}

func (*Unhex) Name() string        { return "unhex" }
func (*Unhex) Description() string { return "hex decode" }

func (u *Unhex) Process(data []byte) ([]byte, error) {
	log.Printf("unhex: decoding %d bytes, mode %s", len(data), u.Policy)
	out, err := hexcodec.Decode(data, u.Policy)
	if err != nil {
		return nil, fmt.Errorf("Invalid hex input: %w", err)
	}
	return out, nil
}

type URLEnc struct {
	Table urlcodec.Table
}

func NewURLEnc(t urlcodec.Table) *URLEnc {
	return &URLEnc{Table: t}
}

func (*URLEnc) Name() string        { return "urlenc" }
func (*URLEnc) Description() string { return "URL encode" }

func (e *URLEnc) Process(data []byte) ([]byte, error) {
	return e.Table.Encode(data), nil
}

type URLDec struct {
	Strict bool
}

func NewURLDec(strict bool) *URLDec {
	return &URLDec{Strict: strict}
}

func (*URLDec) Name() string        { return "urldec" }
func (*URLDec) Description() string { return "URL decode" }

func (d *URLDec) Process(data []byte) ([]byte, error) {
	if !d.Strict {
		return urlcodec.Decode(data), nil
	}
	out, err := urlcodec.PercentUnescape(data)
	if err != nil {
		return nil, fmt.Errorf("Failed percent-decoding input: %w", err)
	}
	return out, nil
}

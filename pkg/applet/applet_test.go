/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2022 Philip Eklöf
 */

package applet

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/phiekl/bkb/pkg/hexcodec"
	"github.com/phiekl/bkb/pkg/urlcodec"
)

func TestApplets(t *testing.T) {
	tests := []struct {
		applet Applet
		in     string
		want   []byte
	}{
		{NewHex(), "aAé!", []byte("6141c3a921")},
		{NewUnhex(hexcodec.Policy{}), "6141210a00ff", []byte("aA!\n\x00\xff")},
		{NewUnhex(hexcodec.Policy{HexOnly: true}), "41ff\n00FF", []byte("A\xff\n00FF")},
		{NewURLEnc(urlcodec.DefaultTable("")), "aAé!,", []byte("aA%c3%a9%21%2c")},
		{NewURLDec(false), "aA%c3%a9%21%2c\n", []byte("aAé!,")},
		{NewURLDec(true), "%41%", nil},
	}

	for _, tt := range tests {
		t.Run(tt.applet.Name(), func(t *testing.T) {
			got, err := tt.applet.Process([]byte(tt.in))
			if tt.want == nil {
				if err == nil {
					t.Fatalf("Process(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Process(%q) error = %v", tt.in, err)
			}
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("Process(%q) mismatch (-want +got):\n%s", tt.in, d)
			}
		})
	}
}

func TestUnhexStrictErrors(t *testing.T) {
	u := NewUnhex(hexcodec.Policy{Strict: true})

	_, err := u.Process([]byte("41l"))
	if !errors.Is(err, hexcodec.ErrOddLength) || !strings.Contains(err.Error(), "Odd number of digits") {
		t.Errorf("Process(41l) error = %v", err)
	}

	_, err = u.Process([]byte("41ll"))
	var ice hexcodec.InvalidCharacterError
	if !errors.As(err, &ice) || !strings.Contains(err.Error(), "Invalid character") {
		t.Errorf("Process(41ll) error = %v", err)
	}
}

func TestNames(t *testing.T) {
	applets := []Applet{NewHex(), NewUnhex(hexcodec.Policy{}), NewURLEnc(urlcodec.Table{}), NewURLDec(false)}
	var names []string
	for _, a := range applets {
		if a.Description() == "" {
			t.Errorf("%s: empty description", a.Name())
		}
		names = append(names, a.Name())
	}
	if d := cmp.Diff(Names(), names); d != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", d)
	}
}

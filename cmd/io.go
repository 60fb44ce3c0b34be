/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2022 Philip Eklöf
 */

package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/phiekl/bkb/pkg/applet"
)

// readInput returns the value argument if present, otherwise all of stdin.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) > 0 {
		return []byte(args[0]), nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Reading input from terminal, end with Ctrl-D.")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("Failed reading stdin: %v", err)
	}
	return data, nil
}

// runApplet feeds the command input through a and writes the result to
// stdout. Nothing is written if a fails.
func runApplet(cmd *cobra.Command, args []string, a applet.Applet) error {
	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	out, err := a.Process(data)
	if err != nil {
		return err
	}
	log.Printf("%s: %d bytes in, %d bytes out", a.Name(), len(data), len(out))

	_, err = cmd.OutOrStdout().Write(out)
	return err
}

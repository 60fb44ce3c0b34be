/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2022 Philip Eklöf
 */

package cmd

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/phiekl/bkb/pkg/applet"
)

var rootCmd = &cobra.Command{
	Short:             "Encode and decode hex and URL data.",
	Long:              "Encode and decode hex and URL data.\n\nApplets: " + strings.Join(applet.Names(), ", "),
	Use:               "bkb",
	PersistentPreRunE: setupLogging,
	SilenceErrors:     true,
	SilenceUsage:      true,
}

func init() {
	rootCmd.PersistentFlags().BoolP(
		"verbose",
		"v",
		false,
		"log diagnostics to stderr (also enabled by BKB_VERBOSE=1)",
	)
}

func setupLogging(cmd *cobra.Command, args []string) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	if os.Getenv("BKB_VERBOSE") == "1" {
		verbose = true
	}

	log.SetFlags(0)
	log.SetPrefix("bkb: ")
	if verbose {
		log.SetOutput(cmd.ErrOrStderr())
	} else {
		log.SetOutput(io.Discard)
	}
	return nil
}

// Execute runs the argument parsing and the rest of the configured program.
// Errors are reported on stderr before being returned.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		color.New(color.FgRed).Fprintf(rootCmd.ErrOrStderr(), "Error: %s\n", err)
	}
	return err
}

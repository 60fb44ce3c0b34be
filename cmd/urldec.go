/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2022 Philip Eklöf
 */

package cmd

import (
	"github.com/phiekl/bkb/pkg/applet"

	"github.com/spf13/cobra"
)

var urldecCmd = &cobra.Command{
	Short:        "URL decode.",
	Use:          "urldec [value]",
	Args:         cobra.MaximumNArgs(1),
	RunE:         urldecMain,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(urldecCmd)

	urldecCmd.Flags().BoolP(
		"strict",
		"s",
		false,
		"error on malformed escapes instead of copying them through",
	)
}

func urldecMain(cmd *cobra.Command, args []string) error {
	strict, err := cmd.Flags().GetBool("strict")
	if err != nil {
		return err
	}

	return runApplet(cmd, args, applet.NewURLDec(strict))
}

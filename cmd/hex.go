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

var hexCmd = &cobra.Command{
	Short:        "Hex encode.",
	Use:          "hex [value]",
	Args:         cobra.MaximumNArgs(1),
	RunE:         hexMain,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(hexCmd)
}

func hexMain(cmd *cobra.Command, args []string) error {
	return runApplet(cmd, args, applet.NewHex())
}

/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2022 Philip Eklöf
 */

package cmd

import (
	"github.com/phiekl/bkb/pkg/applet"
	"github.com/phiekl/bkb/pkg/hexcodec"

	"github.com/spf13/cobra"
)

var unhexCmd = &cobra.Command{
	Short:        "Hex decode.",
	Long:         "Hex decode.\n\nBy default, decode all hex data in the input, regardless of garbage in-between.",
	Use:          "unhex [value]",
	Args:         cobra.MaximumNArgs(1),
	RunE:         unhexMain,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(unhexCmd)

	unhexCmd.Flags().BoolP(
		"hex-only",
		"o",
		false,
		"expect only hex data, stop at first non-hex byte (but copy the rest, except spaces)",
	)

	unhexCmd.Flags().BoolP(
		"strict",
		"s",
		false,
		"strict decoding, error on invalid data",
	)
}

func unhexMain(cmd *cobra.Command, args []string) (err error) {
	p := hexcodec.Policy{}
	p.HexOnly, err = cmd.Flags().GetBool("hex-only")
	if err != nil {
		return
	}
	p.Strict, err = cmd.Flags().GetBool("strict")
	if err != nil {
		return
	}

	return runApplet(cmd, args, applet.NewUnhex(p))
}

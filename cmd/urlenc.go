/*
 * SPDX-License-Identifier: MIT
 *
 * Copyright (c) 2022 Philip Eklöf
 */

package cmd

import (
	"fmt"
	"log"

	"github.com/phiekl/bkb/pkg/applet"
	"github.com/phiekl/bkb/pkg/urlcodec"

	"github.com/spf13/cobra"
)

var urlencCmd = &cobra.Command{
	Short:        "URL encode.",
	Long:         "URL encode.\n\nBy default, encode all non alphanumeric characters in the input.",
	Use:          "urlenc [value]",
	Args:         cobra.MaximumNArgs(1),
	RunE:         urlencMain,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(urlencCmd)

	urlencCmd.Flags().BoolP(
		"rfc3986",
		"u",
		false,
		"use RFC3986 (URL) list of chars to encode",
	)

	urlencCmd.Flags().StringP(
		"custom",
		"c",
		"",
		"string specifying chars to encode",
	)

	urlencCmd.Flags().StringP(
		"exclude-chars",
		"e",
		"",
		"a string of chars to exclude from encoding",
	)
}

type urlencParam struct {
	Custom    string
	HasCustom bool
	Exclude   string
	RFC3986   bool
}

func (p *urlencParam) validate() error {
	if p.RFC3986 && p.HasCustom {
		return fmt.Errorf("--rfc3986 and --custom can't be used together")
	}
	return nil
}

func (p *urlencParam) table() urlcodec.Table {
	switch {
	case p.RFC3986:
		log.Printf("urlenc: RFC 3986 table, excluding %q", p.Exclude)
		return urlcodec.RFC3986Table(p.Exclude)
	case p.HasCustom:
		log.Printf("urlenc: custom table %q, excluding %q", p.Custom, p.Exclude)
		return urlcodec.CustomTable(p.Custom, p.Exclude)
	}
	log.Printf("urlenc: default table, excluding %q", p.Exclude)
	return urlcodec.DefaultTable(p.Exclude)
}

func urlencMain(cmd *cobra.Command, args []string) (err error) {
	param := urlencParam{}
	param.RFC3986, err = cmd.Flags().GetBool("rfc3986")
	if err != nil {
		return
	}
	param.Custom, err = cmd.Flags().GetString("custom")
	if err != nil {
		return
	}
	param.HasCustom = cmd.Flags().Changed("custom")
	param.Exclude, err = cmd.Flags().GetString("exclude-chars")
	if err != nil {
		return
	}
	if err = param.validate(); err != nil {
		return
	}

	return runApplet(cmd, args, applet.NewURLEnc(param.table()))
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os"
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/tfctl/cfgstore/internal/meta"
	"github.com/tfctl/cfgstore/internal/store"
)

// NewGlobalFlags returns the flags shared by every config subcommand. Defaults
// for output and padding come from the rc file when one was loaded.
func NewGlobalFlags(m meta.Meta) (flags []cli.Flag) {
	output, _ := m.Config.GetString("output", "text")
	padding, _ := m.Config.GetInt("padding", 2)

	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   term.IsTerminal(int(os.Stdout.Fd())),
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   output,
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:  "padding",
			Usage: "padding between text columns",
			Value: padding,
		},
		NewRootFlag(m.Config.Source),
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles and source details with text output",
			Value:   false,
		},
		NewTypeFlag(m.Config.Source),
	}

	return
}

// NewRootFlag constructs the "root" flag naming the config root directory.
// path is the rc file; when set its "root" key is consulted after the env.
func NewRootFlag(path string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "root",
		Aliases: []string{"r"},
		Usage:   "directory holding the config files",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CFGSTORE_ROOT"),
		),
		Value: "conf",
	}

	if path != "" {
		flag = ValueChainFlagFromConfigFile("root", path, flag)
	}

	return
}

// NewTypeFlag constructs the "type" flag selecting the config format.
func NewTypeFlag(path string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "type",
		Aliases: []string{"T"},
		Usage:   "config file format (json or properties)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CFGSTORE_TYPE"),
		),
		Value: string(store.DefaultFormat),
	}

	if path != "" {
		flag = ValueChainFlagFromConfigFile("format", path, flag)
	}

	return
}

// ValueChainFlagFromConfigFile adds the rc file key as a source at the end of
// the flag's Sources chain.
func ValueChainFlagFromConfigFile(key string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(key, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)
	return flag
}

// splitList splits a comma-separated flag value, dropping empty items.
func splitList(s string) (items []string) {
	for item := range strings.SplitSeq(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return
}

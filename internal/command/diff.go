// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/cfgstore/internal/differ"
	"github.com/tfctl/cfgstore/internal/meta"
)

// diffCommandAction compares NAME and OTHER, both read with the same --type.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 2); err != nil {
		return err
	}

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	left, err := Load(cmd, s, cmd.Args().Get(0))
	if err != nil {
		return err
	}
	right, err := Load(cmd, s, cmd.Args().Get(1))
	if err != nil {
		return err
	}

	filter := splitList(cmd.String("diff_filter"))
	if !cmd.IsSet("diff_filter") {
		filter, _ = GetMeta(cmd).Config.GetStringSlice("diff_filter", filter)
	}

	_, err = differ.Diff(Writer(cmd), left.Handler, right.Handler, differ.Options{
		Filter:   filter,
		Coloring: cmd.Bool("color"),
	})
	return err
}

func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "diff",
		Usage:     "show differences between two config files",
		UsageText: "cfgstore diff [options] NAME OTHER",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "diff_filter",
				Usage: "comma-separated list of top-level keys to ignore",
			},
		},
		Action: diffCommandAction,
		Meta:   meta,
	}).Build()
}

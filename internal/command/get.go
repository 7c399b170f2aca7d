// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/cfgstore/internal/meta"
	"github.com/tfctl/cfgstore/internal/output"
)

// getCommandAction is the action handler for the "get" subcommand. It loads
// NAME and prints either the whole document or the value at KEY.
func getCommandAction(ctx context.Context, cmd *cli.Command) error {
	if err := requireArgs(cmd, 1); err != nil {
		return err
	}

	s, err := OpenStore(cmd)
	if err != nil {
		return err
	}

	res, err := Load(cmd, s, cmd.Args().Get(0))
	if err != nil {
		return err
	}
	log.Debugf("get: path=%s cached=%t", res.Path, res.Cached)

	opts := OutputOptions(cmd)
	if key := cmd.Args().Get(1); key != "" {
		return output.SpitValue(Writer(cmd), res.Handler, key, opts)
	}
	return output.Spit(Writer(cmd), res, opts)
}

// getCommandBuilder constructs the cli.Command for "get".
func getCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "get",
		Usage:     "print a config file or one of its values",
		UsageText: "cfgstore get [options] NAME [KEY]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "comma-separated row filters, e.g. db.port>1024",
			},
		},
		Action: getCommandAction,
		Meta:   meta,
	}).Build()
}

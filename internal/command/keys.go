// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/cfgstore/internal/meta"
	"github.com/tfctl/cfgstore/internal/output"
)

func keysCommandAction(ctx context.Context, cmd *cli.Command) error {
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

	output.SpitKeys(Writer(cmd), res.Handler)
	return nil
}

func keysCommandBuilder(meta meta.Meta) *cli.Command {
	return (&CommandBuilder{
		Name:      "keys",
		Usage:     "list the top-level keys of a config file",
		UsageText: "cfgstore keys [options] NAME",
		Action:    keysCommandAction,
		Meta:      meta,
	}).Build()
}

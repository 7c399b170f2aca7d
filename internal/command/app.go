// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"sort"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/cfgstore/internal/config"
	"github.com/tfctl/cfgstore/internal/meta"
)

// InitApp builds the root command. A missing rc file is not an error; every
// flag then falls back to env vars and built-in defaults.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	cfg, err := config.Load()
	if err != nil {
		log.Debugf("no rc file: err=%v", err)
	}

	return NewApp(meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		Logger:      log.Log,
		StartingDir: sd,
	}), nil
}

// NewApp assembles the command tree around an already prepared meta.
func NewApp(meta meta.Meta) *cli.Command {
	app := &cli.Command{
		Name:  "cfgstore",
		Usage: "inspect JSON and properties config files",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "cfgstore version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		getCommandBuilder(meta),
		keysCommandBuilder(meta),
		diffCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/cfgstore/internal/meta"
	"github.com/tfctl/cfgstore/internal/output"
	"github.com/tfctl/cfgstore/internal/store"
	"github.com/tfctl/cfgstore/internal/util"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// OpenStore resolves --root and returns a store over it.
func OpenStore(cmd *cli.Command) (*store.Store, error) {
	root, err := util.ParseRootDir(cmd.String("root"))
	if err != nil {
		return nil, fmt.Errorf("failed to parse root (%s): %w", cmd.String("root"), err)
	}

	opts := []store.Option{}
	if m := GetMeta(cmd); m.Logger != nil {
		opts = append(opts, store.WithLogger(m.Logger))
	}
	return store.New(root, opts...), nil
}

// Load fetches one handler for the command's --type.
func Load(cmd *cli.Command, s *store.Store, name string) (store.Result, error) {
	res := s.GetFormat(name, cmd.String("type"))
	if !res.Ok() {
		return res, res.Err
	}
	return res, nil
}

// OutputOptions collects the rendering flags.
func OutputOptions(cmd *cli.Command) output.Options {
	return output.Options{
		Output:  cmd.String("output"),
		Titles:  cmd.Bool("titles"),
		Color:   cmd.Bool("color"),
		Padding: cmd.Int("padding"),
		Filter:  cmd.String("filter"),
		Config:  GetMeta(cmd).Config,
	}
}

// Writer returns the root command's writer.
func Writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

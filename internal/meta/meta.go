// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/apex/log"

	"github.com/tfctl/cfgstore/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries CLI arguments,
// the loaded rc file, context, the logger handed to stores, and the starting
// working directory.
type Meta struct {
	Args        []string
	Config      config.Type
	Context     context.Context
	Logger      log.Interface
	StartingDir string
}

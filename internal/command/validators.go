// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/cfgstore/internal/output"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks flag combinations. The type flag is left to the
// store so unsupported formats are reported the same way as for library
// callers.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.Int("padding") < 0 {
		return fmt.Errorf("padding must not be negative")
	}
	return nil
}

// requireArgs returns an error naming usage when fewer than n positional
// arguments were given.
func requireArgs(c *cli.Command, n int) error {
	if c.Args().Len() < n {
		return fmt.Errorf("expected %d argument(s), usage: %s", n, c.UsageText)
	}
	return nil
}

func OutputValidator(value any) error {
	s, _ := value.(string)
	if !slices.Contains(output.Outputs, s) {
		return fmt.Errorf("must be one of %v", output.Outputs)
	}
	return nil
}

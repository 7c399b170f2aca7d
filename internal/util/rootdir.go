// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"fmt"
	"os"
	"path/filepath"
)

// ParseRootDir resolves the config root to an absolute, cleaned directory. It
// returns an error if rootDir is empty, does not exist or is not a directory.
func ParseRootDir(rootDir string) (string, error) {
	if rootDir == "" {
		return "", os.ErrInvalid
	}

	dir, err := filepath.Abs(rootDir)
	if err != nil {
		return "", err
	}

	r, err := os.Stat(dir)
	if err != nil {
		return "", err
	}
	if !r.IsDir() {
		return "", fmt.Errorf("%s is not a directory: %w", dir, os.ErrInvalid)
	}

	return dir, nil
}

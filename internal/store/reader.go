// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Reader reads the entire content of a config file.
type Reader interface {
	ReadFile(path string) ([]byte, error)
}

// OSReader reads from the local filesystem.
type OSReader struct{}

func (OSReader) ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}

// FSReader reads from an fs.FS such as an embed.FS. Paths are converted to
// slash form.
type FSReader struct {
	FS fs.FS
}

func (r FSReader) ReadFile(path string) ([]byte, error) {
	b, err := fs.ReadFile(r.FS, filepath.ToSlash(path))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return b, nil
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"errors"
	"fmt"

	"github.com/tfctl/cfgstore/internal/handler"
)

// Error kinds carried by LoadError.Kind.
var (
	ErrUnsupportedFormat = handler.ErrUnsupportedFormat
	ErrInvalidName       = errors.New("invalid config file name")
	ErrRead              = errors.New("failed to read config file")
	ErrParse             = errors.New("failed to parse config file")
)

// LoadError describes why a handler could not be produced. errors.Is matches
// both Kind and the underlying cause.
type LoadError struct {
	Name   string
	Format string
	Path   string
	Kind   error
	Err    error
}

func (e *LoadError) Error() string {
	msg := fmt.Sprintf("%v: name=%q type=%q", e.Kind, e.Name, e.Format)
	if e.Path != "" {
		msg += fmt.Sprintf(" path=%s", e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *LoadError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Trace renders the cause with its stack trace when one was recorded.
func (e *LoadError) Trace() string {
	if e.Err == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.Err)
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"errors"
	"fmt"
)

// Format identifies the syntax of a config file. Its value doubles as the file
// extension.
type Format string

const (
	JSON       Format = "json"
	Properties Format = "properties"
)

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidContent    = errors.New("invalid config content")
	ErrKeyNotFound       = errors.New("key not found")
	ErrTypeMismatch      = errors.New("value has unexpected type")
	ErrTooManyDefaults   = errors.New("at most one default value is allowed")
)

// Formats lists the supported formats in a stable order.
var Formats = []Format{JSON, Properties}

// ParseFormat maps a format name to a Format. Matching is exact.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case JSON, Properties:
		return Format(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

func (f Format) String() string {
	return string(f)
}

// Handler is read-only access to one parsed config document. The only
// implementations are *JSONHandler and *PropertiesHandler; use a type switch to
// reach format specific behavior.
//
// Typed getters accept a single optional default that is returned when the key
// is missing. Passing more than one default is an error.
type Handler interface {
	Format() Format
	// Get returns the raw value at the dotted key path.
	Get(key string) (any, bool)
	GetString(key string, defaultValue ...string) (string, error)
	GetInt(key string, defaultValue ...int) (int, error)
	GetBool(key string, defaultValue ...bool) (bool, error)
	// Keys returns the sorted top-level keys.
	Keys() []string
	// Map returns a copy of the whole document.
	Map() map[string]any
	// Raw returns the content the handler was parsed from.
	Raw() string

	sealed()
}

// Parse builds the handler matching f from content.
func Parse(f Format, content string) (Handler, error) {
	switch f {
	case JSON:
		return ParseJSON(content)
	case Properties:
		return ParseProperties(content)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"sort"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
)

// PropertiesHandler wraps a flat key/value properties document. Dotted keys
// such as "db.host" are single keys, not paths.
type PropertiesHandler struct {
	props *properties.Properties
	raw   string
}

var _ Handler = (*PropertiesHandler)(nil)

// ParseProperties parses content in conventional properties syntax. ${key}
// references are kept verbatim.
func ParseProperties(content string) (*PropertiesHandler, error) {
	l := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
	}

	p, err := l.LoadBytes([]byte(content))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidContent, "malformed properties document: %v", err)
	}

	return &PropertiesHandler{props: p, raw: content}, nil
}

func (h *PropertiesHandler) Format() Format { return Properties }

func (h *PropertiesHandler) sealed() {}

func (h *PropertiesHandler) Get(key string) (any, bool) {
	v, ok := h.props.Get(key)
	if !ok {
		return nil, false
	}
	return v, true
}

func (h *PropertiesHandler) GetString(key string, defaultValue ...string) (string, error) {
	return getString(h, key, defaultValue)
}

func (h *PropertiesHandler) GetInt(key string, defaultValue ...int) (int, error) {
	return getInt(h, key, defaultValue)
}

func (h *PropertiesHandler) GetBool(key string, defaultValue ...bool) (bool, error) {
	return getBool(h, key, defaultValue)
}

func (h *PropertiesHandler) Keys() []string {
	keys := h.props.Keys()
	sort.Strings(keys)
	return keys
}

func (h *PropertiesHandler) Map() map[string]any {
	m := make(map[string]any, h.props.Len())
	for k, v := range h.props.Map() {
		m[k] = v
	}
	return m
}

func (h *PropertiesHandler) Raw() string {
	return h.raw
}

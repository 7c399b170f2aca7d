// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

// segmentPattern matches one path segment with an optional array index, e.g.
// "servers[1]".
var segmentPattern = regexp.MustCompile(`^(.+?)\[(\d+)\]$`)

// JSONHandler wraps a JSON object document.
type JSONHandler struct {
	doc gjson.Result
}

var _ Handler = (*JSONHandler)(nil)

// ParseJSON parses content, which must be a single JSON object.
func ParseJSON(content string) (*JSONHandler, error) {
	if !gjson.Valid(content) {
		return nil, errors.Wrap(ErrInvalidContent, "malformed JSON document")
	}

	doc := gjson.Parse(content)
	if !doc.IsObject() {
		kind := strings.ToLower(doc.Type.String())
		if doc.IsArray() {
			kind = "array"
		}
		return nil, errors.Wrapf(ErrInvalidContent, "JSON document is %s, not an object", kind)
	}

	return &JSONHandler{doc: doc}, nil
}

func (h *JSONHandler) Format() Format { return JSON }

func (h *JSONHandler) sealed() {}

// Get walks a dotted path such as "db.replicas[0].host". A present null value
// reports true with a nil value.
func (h *JSONHandler) Get(key string) (any, bool) {
	r := h.Result(key)
	if !r.Exists() {
		return nil, false
	}
	return r.Value(), true
}

// Result returns the gjson node at the dotted path, or a zero Result.
func (h *JSONHandler) Result(key string) gjson.Result {
	if key == "" {
		return gjson.Result{}
	}

	current := h.doc
	for _, seg := range strings.Split(key, ".") {
		name, index := seg, -1
		if m := segmentPattern.FindStringSubmatch(seg); m != nil {
			i, err := strconv.Atoi(m[2])
			if err != nil {
				return gjson.Result{}
			}
			name, index = m[1], i
		}

		current = child(current, name)
		if !current.Exists() {
			return gjson.Result{}
		}

		if index >= 0 {
			if !current.IsArray() {
				return gjson.Result{}
			}
			arr := current.Array()
			if index >= len(arr) {
				return gjson.Result{}
			}
			current = arr[index]
		}
	}

	return current
}

// child finds the member named key without interpreting gjson path syntax,
// so keys holding '*', '?' or '#' are matched literally. The last of
// duplicate members wins, as it does in Map.
func child(r gjson.Result, key string) gjson.Result {
	if !r.IsObject() {
		return gjson.Result{}
	}

	var out gjson.Result
	r.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			out = v
		}
		return true
	})
	return out
}

func (h *JSONHandler) GetString(key string, defaultValue ...string) (string, error) {
	return getString(h, key, defaultValue)
}

// GetInt reads numbers from their JSON text. Values outside the int range, or
// too large to be exact, are a type mismatch.
func (h *JSONHandler) GetInt(key string, defaultValue ...int) (int, error) {
	r := h.Result(key)
	if r.Type != gjson.Number {
		return getInt(h, key, defaultValue)
	}
	if len(defaultValue) > 1 {
		return 0, ErrTooManyDefaults
	}

	if i, ok := numberToInt(r.Raw, r.Num); ok {
		return i, nil
	}
	return 0, fmt.Errorf("%w: %s is not an int", ErrTypeMismatch, key)
}

func (h *JSONHandler) GetBool(key string, defaultValue ...bool) (bool, error) {
	return getBool(h, key, defaultValue)
}

func (h *JSONHandler) Keys() []string {
	var keys []string
	h.doc.ForEach(func(k, _ gjson.Result) bool {
		keys = append(keys, k.String())
		return true
	})
	sort.Strings(keys)
	return slices.Compact(keys)
}

func (h *JSONHandler) Map() map[string]any {
	m, ok := h.doc.Value().(map[string]interface{})
	if !ok {
		return map[string]any{}
	}
	return m
}

func (h *JSONHandler) Raw() string {
	return h.doc.Raw
}

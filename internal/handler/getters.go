// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package handler

import (
	"fmt"
	"math"
	"strconv"
)

// lookup resolves key on h, applying the variadic default convention shared by
// all typed getters.
func lookup[T any](h Handler, key string, defaultValue []T) (any, *T, error) {
	if len(defaultValue) > 1 {
		return nil, nil, ErrTooManyDefaults
	}

	val, ok := h.Get(key)
	if !ok {
		if len(defaultValue) == 1 {
			return nil, &defaultValue[0], nil
		}
		return nil, nil, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}

	return val, nil, nil
}

func getString(h Handler, key string, defaultValue []string) (string, error) {
	val, def, err := lookup(h, key, defaultValue)
	if err != nil {
		return "", err
	}
	if def != nil {
		return *def, nil
	}

	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", ErrTypeMismatch, key)
	}
	return s, nil
}

// getInt accepts integral numbers and strings holding a base 10 integer, so
// properties values convert the same way JSON numbers do.
func getInt(h Handler, key string, defaultValue []int) (int, error) {
	val, def, err := lookup(h, key, defaultValue)
	if err != nil {
		return 0, err
	}
	if def != nil {
		return *def, nil
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if i, ok := floatToInt(v); ok {
			return i, nil
		}
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %s is not an int", ErrTypeMismatch, key)
}

// maxExactFloat is the largest magnitude at which every integer is exactly
// representable as a float64.
const maxExactFloat = 1 << 53

// floatToInt converts integral values no larger than maxExactFloat.
func floatToInt(v float64) (int, bool) {
	if v != math.Trunc(v) || math.Abs(v) > maxExactFloat {
		return 0, false
	}
	return int(v), true
}

// numberToInt reads a JSON number from its literal text so integers past
// 2^53 keep every digit. Exponent or fraction forms fall back to num and must
// be exact.
func numberToInt(raw string, num float64) (int, bool) {
	if i, err := strconv.ParseInt(raw, 10, 0); err == nil {
		return int(i), true
	}
	return floatToInt(num)
}

func getBool(h Handler, key string, defaultValue []bool) (bool, error) {
	val, def, err := lookup(h, key, defaultValue)
	if err != nil {
		return false, err
	}
	if def != nil {
		return *def, nil
	}

	switch v := val.(type) {
	case bool:
		return v, nil
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b, nil
		}
	}

	return false, fmt.Errorf("%w: %s is not a bool", ErrTypeMismatch, key)
}

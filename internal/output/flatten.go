// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/tfctl/cfgstore/internal/filters"
	"github.com/tfctl/cfgstore/internal/handler"
)

// Row is one leaf of a flattened document.
type Row struct {
	Key   string
	Value any
}

// Flatten lists every leaf of h as dotted key rows. Object members are visited
// in key order and array elements in index order, e.g. "db.replicas[1].host".
// Properties documents are already flat.
func Flatten(h handler.Handler) []Row {
	var rows []Row
	m := h.Map()
	for _, k := range sortedKeys(m) {
		rows = flattenValue(rows, k, m[k])
	}
	return rows
}

// FilterRows keeps the rows passing every filter in spec.
func FilterRows(rows []Row, spec string) []Row {
	fs := filters.BuildFilters(spec)
	if len(fs) == 0 {
		return rows
	}

	var kept []Row
	for _, r := range rows {
		if filters.Match(r.Key, r.Value, fs) {
			kept = append(kept, r)
		}
	}
	return kept
}

func flattenValue(rows []Row, prefix string, value any) []Row {
	switch v := value.(type) {
	case map[string]interface{}:
		if len(v) == 0 {
			return append(rows, Row{Key: prefix, Value: v})
		}
		for _, k := range sortedKeys(v) {
			rows = flattenValue(rows, prefix+"."+k, v[k])
		}
	case []interface{}:
		if len(v) == 0 {
			return append(rows, Row{Key: prefix, Value: v})
		}
		for i, item := range v {
			rows = flattenValue(rows, fmt.Sprintf("%s[%d]", prefix, i), item)
		}
	default:
		rows = append(rows, Row{Key: prefix, Value: v})
	}
	return rows
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided for nil.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

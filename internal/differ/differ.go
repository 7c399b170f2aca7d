// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfctl/cfgstore/internal/handler"
)

// Options controls Diff.
type Options struct {
	// Filter lists top-level keys left out of the comparison.
	Filter   []string
	Coloring bool
}

// Diff compares two config documents and writes an ASCII delta to w. It
// reports whether the documents differ.
func Diff(w io.Writer, left, right handler.Handler, opts Options) (bool, error) {
	log.Debugf(">> differ(%s, %s)", left.Format(), right.Format())

	lhs, lraw, err := filtered(left, opts.Filter)
	if err != nil {
		return false, err
	}
	_, rraw, err := filtered(right, opts.Filter)
	if err != nil {
		return false, err
	}

	delta, err := gojsondiff.New().Compare(lraw, rraw)
	if err != nil {
		return false, fmt.Errorf("failed to compare configs: %w", err)
	}

	if !delta.Modified() {
		fmt.Fprintln(w, "The configs are identical.")
		return false, nil
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       opts.Coloring,
	}

	diffString, err := formatter.NewAsciiFormatter(lhs, config).Format(delta)
	if err != nil {
		return true, err
	}

	fmt.Fprint(w, diffString)
	return true, nil
}

// filtered returns the document of h without the filtered keys, both as a map
// and as JSON.
func filtered(h handler.Handler, filter []string) (map[string]interface{}, []byte, error) {
	doc := h.Map()
	for _, key := range filter {
		delete(doc, key)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return doc, raw, nil
}

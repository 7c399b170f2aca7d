// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"

	"github.com/tfctl/cfgstore/internal/config"
	"github.com/tfctl/cfgstore/internal/handler"
	"github.com/tfctl/cfgstore/internal/store"
)

// Outputs lists the values accepted by Options.Output.
var Outputs = []string{"text", "json", "yaml", "raw"}

// Options controls rendering.
type Options struct {
	Output  string
	Titles  bool
	Color   bool
	Padding int
	// Filter selects rows of the flattened document. Raw output ignores it.
	Filter string
	// Config supplies colors.title, colors.even and colors.odd.
	Config config.Type
}

// Spit renders a whole loaded document to w.
func Spit(w io.Writer, res store.Result, opts Options) error {
	if w == nil {
		w = os.Stdout
	}
	h := res.Handler

	switch opts.Output {
	case "raw":
		_, err := io.WriteString(w, h.Raw())
		return err
	case "json":
		return writeJSON(w, document(h, opts.Filter))
	case "yaml":
		return writeYAML(w, document(h, opts.Filter))
	default:
		TableWriter(w, FilterRows(Flatten(h), opts.Filter), opts)
		if opts.Titles {
			fmt.Fprintln(w, footer(res))
		}
		return nil
	}
}

// document returns the tree of h, or the filtered rows keyed by their dotted
// path when a filter is given.
func document(h handler.Handler, spec string) any {
	if spec == "" {
		return h.Map()
	}
	doc := map[string]any{}
	for _, r := range FilterRows(Flatten(h), spec) {
		doc[r.Key] = r.Value
	}
	return doc
}

// SpitValue renders the value at key to w.
func SpitValue(w io.Writer, h handler.Handler, key string, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	value, ok := h.Get(key)
	if !ok {
		return fmt.Errorf("%w: %s", handler.ErrKeyNotFound, key)
	}

	switch opts.Output {
	case "json":
		return writeJSON(w, value)
	case "yaml":
		return writeYAML(w, value)
	default:
		_, err := fmt.Fprintln(w, InterfaceToString(value, "null"))
		return err
	}
}

// SpitKeys writes the top-level keys of h, one per line.
func SpitKeys(w io.Writer, h handler.Handler) {
	for _, k := range h.Keys() {
		fmt.Fprintln(w, k)
	}
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeYAML(w io.Writer, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// footer names the source file, its size and how long ago it was loaded.
func footer(res store.Result) string {
	return fmt.Sprintf("%s  %s  loaded %s",
		res.Path,
		humanize.Bytes(uint64(res.Size)),
		humanize.Time(res.LoadedAt))
}

// TableWriter renders key/value rows honoring titles, color and padding.
func TableWriter(w io.Writer, rows []Row, opts Options) {
	if len(rows) == 0 {
		return
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors(opts.Config, "colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	cells := make([][]string, 0, len(rows))
	for _, r := range rows {
		cells = append(cells, []string{r.Key, InterfaceToString(r.Value, "null")})
	}

	pad := opts.Padding
	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(cells...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers("key", "value").BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}

// getColors returns configured color values for table rendering, falling back
// to defaults picked for the terminal background.
func getColors(cfg config.Type, key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		if c, err := cfg.GetString(key); err == nil {
			return lipgloss.Color(c)
		}
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}

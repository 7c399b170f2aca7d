// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package log

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/apex/log"
)

// traceField is printed on its own lines after the entry rather than inline.
const traceField = "trace"

// InitLogger sets up Apex with a LineHandler on stderr and a log level from the
// CFGSTORE_LOG env variable. The returned logger is the one stores should be
// given.
func InitLogger() log.Interface {
	log.SetHandler(&LineHandler{Out: os.Stderr})
	log.SetLevel(ParseLevel(os.Getenv("CFGSTORE_LOG")))
	return log.Log
}

// ParseLevel maps a level name to an apex level, defaulting to error.
func ParseLevel(name string) log.Level {
	switch strings.ToLower(name) {
	case "debug", "trace":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "warn", "warning":
		return log.WarnLevel
	case "fatal":
		return log.FatalLevel
	default:
		return log.ErrorLevel
	}
}

// LineHandler writes one line per entry: timestamp, level letter, message and
// sorted key=value fields. A trace field follows on its own lines.
type LineHandler struct {
	Out io.Writer
	// Now is used for timestamps when set.
	Now func() time.Time
}

// HandleLog implements the log.Handler interface
func (h *LineHandler) HandleLog(e *log.Entry) error {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}

	level := "?"
	switch e.Level {
	case log.DebugLevel:
		level = "D"
	case log.InfoLevel:
		level = "I"
	case log.WarnLevel:
		level = "W"
	case log.ErrorLevel:
		level = "E"
	case log.FatalLevel:
		level = "F"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s", now().Format("2006-01-02 15:04:05"), level, e.Message)

	names := e.Fields.Names()
	sort.Strings(names)
	var trace string
	for _, name := range names {
		if name == traceField {
			trace = fmt.Sprint(e.Fields.Get(name))
			continue
		}
		fmt.Fprintf(&b, " %s=%v", name, e.Fields.Get(name))
	}
	b.WriteByte('\n')

	if trace != "" {
		b.WriteString(strings.TrimRight(trace, "\n"))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(h.Out, b.String())
	return err
}

// Debugf logs at Debug level.
func Debugf(format string, args ...interface{}) {
	log.Debugf(format, args...)
}

// Infof logs at Info level.
func Infof(format string, args ...interface{}) {
	log.Infof(format, args...)
}

// Errorf logs at Error level.
func Errorf(format string, args ...interface{}) {
	log.Errorf(format, args...)
}

// WithError returns an entry with error.
func WithError(err error) *log.Entry {
	return log.WithError(err)
}

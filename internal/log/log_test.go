// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package log

import (
	"bytes"
	"testing"
	"time"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"":        log.ErrorLevel,
		"bogus":   log.ErrorLevel,
		"error":   log.ErrorLevel,
		"DEBUG":   log.DebugLevel,
		"trace":   log.DebugLevel,
		"info":    log.InfoLevel,
		"warning": log.WarnLevel,
		"warn":    log.WarnLevel,
		"fatal":   log.FatalLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLineHandler(t *testing.T) {
	var buf bytes.Buffer
	h := &LineHandler{
		Out: &buf,
		Now: func() time.Time { return time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC) },
	}
	logger := &log.Logger{Handler: h, Level: log.DebugLevel}

	logger.WithFields(log.Fields{"type": "xml", "file": "app"}).Error("invalid config file type")
	assert.Equal(t, "2026-03-04 05:06:07 E invalid config file type file=app type=xml\n", buf.String())

	buf.Reset()
	logger.WithField("file", "app").WithField("trace", "line one\nline two\n").Debug("loaded")
	assert.Equal(t, "2026-03-04 05:06:07 D loaded file=app\nline one\nline two\n", buf.String())
}

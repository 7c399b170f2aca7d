// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tfctl/cfgstore/internal/config"
)

func TestHandleVersion(t *testing.T) {
	assert.True(t, handleVersion([]string{"cfgstore", "--version"}))
	assert.True(t, handleVersion([]string{"cfgstore", "get", "-v"}))
	assert.False(t, handleVersion([]string{"cfgstore", "get", "app"}))
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"cfgstore", "--help"}, handleNakedCommand([]string{"cfgstore"}))
	assert.Equal(t, []string{"cfgstore", "keys"}, handleNakedCommand([]string{"cfgstore", "keys"}))
}

func TestProcessSetOnly(t *testing.T) {
	cfg := config.Type{Data: map[string]interface{}{
		"get": map[string]interface{}{
			"prod": []interface{}{"--root /etc/app", "--type properties"},
			"one":  []interface{}{"--titles"},
		},
	}}

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no set",
			args:     []string{"cfgstore", "get", "app"},
			expected: []string{"cfgstore", "get", "app"},
		},
		{
			name:     "too short",
			args:     []string{"cfgstore", "get"},
			expected: []string{"cfgstore", "get"},
		},
		{
			name:     "multi-word entries split",
			args:     []string{"cfgstore", "get", "@prod", "app"},
			expected: []string{"cfgstore", "get", "--root", "/etc/app", "--type", "properties", "app"},
		},
		{
			name:     "set after other flags",
			args:     []string{"cfgstore", "get", "-o", "json", "@one", "app", "key"},
			expected: []string{"cfgstore", "get", "-o", "json", "--titles", "app", "key"},
		},
		{
			name:     "unknown set dropped",
			args:     []string{"cfgstore", "get", "@missing", "app"},
			expected: []string{"cfgstore", "get", "app"},
		},
		{
			name:     "set under another subcommand",
			args:     []string{"cfgstore", "keys", "@prod", "app"},
			expected: []string{"cfgstore", "keys", "app"},
		},
		{
			name:     "completion untouched",
			args:     []string{"cfgstore", "completion", "@prod"},
			expected: []string{"cfgstore", "completion", "@prod"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, processSetOnly(cfg, tt.args))
		})
	}
}

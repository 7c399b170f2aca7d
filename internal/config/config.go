// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/apex/log"
	"gopkg.in/yaml.v3"
)

// ErrNoConfigFile is returned by Load when no rc file can be located.
var ErrNoConfigFile = errors.New("no config file found in standard locations")

// Type is the in-memory representation of the cfgstore rc file.
//
// Fields:
//   - Source: absolute path of the YAML file loaded, empty if none was found.
//   - Data: raw key/value tree unmarshaled from YAML.
type Type struct {
	Source string
	Data   map[string]interface{}
}

// Load reads the rc file. The CFGSTORE_CFG_FILE environment variable names it
// explicitly; otherwise cfgstore.yaml in os.UserConfigDir is used.
func Load() (Type, error) {
	path, err := getConfigFile()
	if err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return Type{Source: path, Data: data}, nil
}

// GetInt returns the integer value for the given dotted key path. A single
// defaultValue may be provided and is returned when the key is missing.
func (cfg Type) GetInt(key string, defaultValue ...int) (int, error) {
	if len(defaultValue) > 1 {
		return 0, errors.New("at most one default value is allowed")
	}

	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return 0, err
	}

	// YAML numbers may be unmarshaled as int/float64 depending on content.
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, errors.New("value is not an int")
	}
}

// GetString returns the string value for the given dotted key path. If the key
// is not found and a single defaultValue is provided, the default is returned.
func (cfg Type) GetString(key string, defaultValue ...string) (string, error) {
	if len(defaultValue) > 1 {
		return "", errors.New("at most one default value is allowed")
	}

	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return "", err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}

	return s, nil
}

// GetStringSlice returns the string slice value for the given dotted key path.
func (cfg Type) GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	if len(defaultValue) > 1 {
		return nil, errors.New("at most one default value is allowed")
	}

	val, err := cfg.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return defaultValue[0], nil
		}
		return nil, err
	}

	items, ok := val.([]interface{})
	if !ok {
		return nil, errors.New("value is not a slice")
	}

	result := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, errors.New("slice element is not a string")
		}
		result[i] = s
	}
	return result, nil
}

// get traverses the configuration tree using a dotted key path (e.g.
// "colors.title").
func (cfg Type) get(kspec string) (any, error) {
	var current interface{} = cfg.Data
	for _, key := range strings.Split(kspec, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("no value found at %s", kspec)
		}
		current, ok = m[key]
		if !ok {
			return nil, fmt.Errorf("no value found at %s", kspec)
		}
	}
	return current, nil
}

// getConfigFile returns the absolute path to the rc file. CFGSTORE_CFG_FILE
// must point at an existing file when set.
func getConfigFile() (string, error) {
	if cfgPath := os.Getenv("CFGSTORE_CFG_FILE"); cfgPath != "" {
		fileInfo, err := os.Stat(cfgPath)
		if err != nil {
			return "", fmt.Errorf("config file not found at CFGSTORE_CFG_FILE path: %s", cfgPath)
		}
		if fileInfo.IsDir() {
			return "", fmt.Errorf("CFGSTORE_CFG_FILE points to a directory: %s", cfgPath)
		}
		abs, err := filepath.Abs(cfgPath)
		if err != nil {
			return "", err
		}
		log.Debugf("using config file from CFGSTORE_CFG_FILE: %s", abs)
		return abs, nil
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, "cfgstore.yaml")
	if fileInfo, err := os.Stat(file); err == nil && !fileInfo.IsDir() {
		log.Debugf("using config file: %s", file)
		return file, nil
	}

	return "", ErrNoConfigFile
}

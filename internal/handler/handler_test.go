// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc
package handler

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*
var testDataFS embed.FS

// lookupTestCase represents a single case for TestJSONHandler_Lookup.
type lookupTestCase struct {
	Name       string `yaml:"name"`
	Path       string `yaml:"path"`
	Kind       string `yaml:"kind"`
	WantString string `yaml:"wantString"`
	WantInt    int    `yaml:"wantInt"`
	WantBool   bool   `yaml:"wantBool"`
}

func readTestData(t *testing.T, filename string) string {
	t.Helper()
	data, err := testDataFS.ReadFile("testdata/" + filename)
	require.NoError(t, err)
	return string(data)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("json")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	f, err = ParseFormat("properties")
	require.NoError(t, err)
	assert.Equal(t, Properties, f)

	for _, bad := range []string{"xml", "", "JSON", "yaml"} {
		_, err := ParseFormat(bad)
		assert.ErrorIs(t, err, ErrUnsupportedFormat, bad)
	}
}

func TestParse_Dispatch(t *testing.T) {
	h, err := Parse(JSON, `{"a":1}`)
	require.NoError(t, err)
	assert.IsType(t, &JSONHandler{}, h)
	assert.Equal(t, JSON, h.Format())

	h, err = Parse(Properties, "a=1")
	require.NoError(t, err)
	assert.IsType(t, &PropertiesHandler{}, h)
	assert.Equal(t, Properties, h.Format())

	_, err = Parse(Format("ini"), "a=1")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestJSONHandler_RoundTrip(t *testing.T) {
	h, err := ParseJSON(`{"a":1,"b":"x"}`)
	require.NoError(t, err)

	a, err := h.GetInt("a")
	require.NoError(t, err)
	assert.Equal(t, 1, a)

	b, err := h.GetString("b")
	require.NoError(t, err)
	assert.Equal(t, "x", b)

	assert.Equal(t, []string{"a", "b"}, h.Keys())
	assert.Equal(t, map[string]any{"a": float64(1), "b": "x"}, h.Map())
	assert.Equal(t, `{"a":1,"b":"x"}`, h.Raw())
}

func TestJSONHandler_Lookup(t *testing.T) {
	var tests []lookupTestCase
	require.NoError(t, yaml.Unmarshal([]byte(readTestData(t, "lookup_cases.yaml")), &tests))
	require.NotEmpty(t, tests)

	h, err := ParseJSON(readTestData(t, "app.json"))
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			switch tt.Kind {
			case "string":
				got, err := h.GetString(tt.Path)
				require.NoError(t, err)
				assert.Equal(t, tt.WantString, got)
			case "int":
				got, err := h.GetInt(tt.Path)
				require.NoError(t, err)
				assert.Equal(t, tt.WantInt, got)
			case "bool":
				got, err := h.GetBool(tt.Path)
				require.NoError(t, err)
				assert.Equal(t, tt.WantBool, got)
			case "missing":
				_, ok := h.Get(tt.Path)
				assert.False(t, ok)
				_, err := h.GetString(tt.Path)
				assert.ErrorIs(t, err, ErrKeyNotFound)
			default:
				t.Fatalf("unknown kind %q", tt.Kind)
			}
		})
	}
}

func TestJSONHandler_Getters(t *testing.T) {
	h, err := ParseJSON(readTestData(t, "app.json"))
	require.NoError(t, err)

	t.Run("null is present", func(t *testing.T) {
		v, ok := h.Get("feature.flag")
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("object value", func(t *testing.T) {
		v, ok := h.Get("db.replicas[0]")
		require.True(t, ok)
		assert.Equal(t, map[string]interface{}{"host": "replica-a", "weight": float64(3)}, v)
	})

	t.Run("default for missing key", func(t *testing.T) {
		s, err := h.GetString("missing", "fallback")
		require.NoError(t, err)
		assert.Equal(t, "fallback", s)

		i, err := h.GetInt("missing", 7)
		require.NoError(t, err)
		assert.Equal(t, 7, i)

		b, err := h.GetBool("missing", true)
		require.NoError(t, err)
		assert.True(t, b)
	})

	t.Run("default ignored for present key", func(t *testing.T) {
		s, err := h.GetString("b", "fallback")
		require.NoError(t, err)
		assert.Equal(t, "x", s)
	})

	t.Run("multiple defaults", func(t *testing.T) {
		_, err := h.GetString("missing", "one", "two")
		assert.ErrorIs(t, err, ErrTooManyDefaults)
		_, err = h.GetInt("a", 1, 2)
		assert.ErrorIs(t, err, ErrTooManyDefaults)
	})

	t.Run("type mismatch", func(t *testing.T) {
		_, err := h.GetString("a")
		assert.ErrorIs(t, err, ErrTypeMismatch)
		_, err = h.GetInt("b")
		assert.ErrorIs(t, err, ErrTypeMismatch)
		_, err = h.GetInt("limits.ratio")
		assert.ErrorIs(t, err, ErrTypeMismatch)
		_, err = h.GetBool("db.port")
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("empty key", func(t *testing.T) {
		_, ok := h.Get("")
		assert.False(t, ok)
	})

	t.Run("keys", func(t *testing.T) {
		assert.Equal(t, []string{"a", "b", "db", "feature", "limits"}, h.Keys())
	})
}

func TestJSONHandler_GetIntRange(t *testing.T) {
	h, err := ParseJSON(`{"big":1e300,"exact":9007199254740993,"neg":-9007199254740993,` +
		`"exp":5e3,"whole":12.0,"huge":99999999999999999999,"inexact":1e17}`)
	require.NoError(t, err)

	tests := []struct {
		key  string
		want int
		ok   bool
	}{
		{key: "big"},
		{key: "exact", want: 9007199254740993, ok: true},
		{key: "neg", want: -9007199254740993, ok: true},
		{key: "exp", want: 5000, ok: true},
		{key: "whole", want: 12, ok: true},
		{key: "huge"},
		{key: "inexact"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := h.GetInt(tt.key)
			if !tt.ok {
				assert.ErrorIs(t, err, ErrTypeMismatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJSONHandler_DuplicateMembers(t *testing.T) {
	h, err := ParseJSON(`{"a":1,"b":true,"a":2}`)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, h.Keys())

	v, ok := h.Get("a")
	require.True(t, ok)
	assert.Equal(t, h.Map()["a"], v)

	i, err := h.GetInt("a")
	require.NoError(t, err)
	assert.Equal(t, 2, i)
}

func TestParseJSON_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "empty", content: "", errMsg: "malformed"},
		{name: "truncated", content: `{"a":`, errMsg: "malformed"},
		{name: "trailing garbage", content: `{"a":1} x`, errMsg: "malformed"},
		{name: "array", content: `[1,2]`, errMsg: "array"},
		{name: "scalar", content: `"text"`, errMsg: "not an object"},
		{name: "number", content: `12`, errMsg: "not an object"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, err := ParseJSON(tt.content)
			assert.Nil(t, h)
			assert.ErrorIs(t, err, ErrInvalidContent)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestPropertiesHandler(t *testing.T) {
	h, err := ParseProperties(readTestData(t, "app.properties"))
	require.NoError(t, err)

	tests := []struct {
		key  string
		want string
	}{
		{key: "k", want: "v"},
		{key: "db.host", want: "localhost"},
		{key: "db.port", want: "5432"},
		{key: "db.tls", want: "true"},
		{key: "greeting", want: "hello world"},
		{key: "path", want: "${HOME}/conf"},
		{key: "unicode", want: "café"},
		{key: "empty", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			got, err := h.GetString(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	port, err := h.GetInt("db.port")
	require.NoError(t, err)
	assert.Equal(t, 5432, port)

	tls, err := h.GetBool("db.tls")
	require.NoError(t, err)
	assert.True(t, tls)

	_, err = h.GetInt("k")
	assert.ErrorIs(t, err, ErrTypeMismatch)

	_, err = h.GetString("missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	assert.Equal(t,
		[]string{"db.host", "db.port", "db.tls", "empty", "greeting", "k", "path", "unicode"},
		h.Keys())
	assert.Equal(t, "v", h.Map()["k"])
	assert.Len(t, h.Map(), 8)
}

func TestPropertiesHandler_RoundTrip(t *testing.T) {
	h, err := ParseProperties("k=v")
	require.NoError(t, err)

	v, err := h.GetString("k")
	require.NoError(t, err)
	assert.Equal(t, "v", v)
	assert.Equal(t, "k=v", h.Raw())
}

func TestParseProperties_Empty(t *testing.T) {
	h, err := ParseProperties("")
	require.NoError(t, err)
	assert.Empty(t, h.Keys())
	assert.Empty(t, h.Map())
}

func TestParseProperties_Invalid(t *testing.T) {
	h, err := ParseProperties("k=\\uZZZZ")
	assert.Nil(t, h)
	assert.ErrorIs(t, err, ErrInvalidContent)
}

func TestHandler_TypeSwitch(t *testing.T) {
	j, err := ParseJSON(`{"a":{"b":1}}`)
	require.NoError(t, err)
	p, err := ParseProperties("a.b=1")
	require.NoError(t, err)

	for _, h := range []Handler{j, p} {
		switch v := h.(type) {
		case *JSONHandler:
			assert.True(t, v.Result("a").IsObject())
		case *PropertiesHandler:
			got, ok := v.Get("a.b")
			assert.True(t, ok)
			assert.Equal(t, "1", got)
		default:
			t.Fatalf("unexpected handler %T", h)
		}
	}
}

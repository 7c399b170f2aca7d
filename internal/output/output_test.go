// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"testing"
	"testing/fstest"
	"time"

	"github.com/apex/log"
	"github.com/apex/log/handlers/discard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/cfgstore/internal/handler"
	"github.com/tfctl/cfgstore/internal/store"
)

func loadResult(t *testing.T, name, format string) store.Result {
	t.Helper()
	files := fstest.MapFS{
		"conf/app.json":       {Data: []byte(`{"a":1,"b":"x"}`)},
		"conf/nested.json":    {Data: []byte(`{"db":{"host":"h","ports":[5432,5433],"opts":{}},"on":true,"none":null}`)},
		"conf/app.properties": {Data: []byte("k=v\nz=last\n")},
	}
	s := store.New("conf",
		store.WithReader(store.FSReader{FS: files}),
		store.WithLogger(&log.Logger{Handler: discard.New()}),
		store.WithClock(func() time.Time { return time.Now().Add(-3 * time.Minute) }),
	)
	res := s.GetFormat(name, format)
	require.True(t, res.Ok(), res.Err)
	return res
}

func TestFlatten(t *testing.T) {
	res := loadResult(t, "nested", "json")
	assert.Equal(t, []Row{
		{Key: "db.host", Value: "h"},
		{Key: "db.opts", Value: map[string]interface{}{}},
		{Key: "db.ports[0]", Value: float64(5432)},
		{Key: "db.ports[1]", Value: float64(5433)},
		{Key: "none", Value: nil},
		{Key: "on", Value: true},
	}, Flatten(res.Handler))

	res = loadResult(t, "app", "properties")
	assert.Equal(t, []Row{
		{Key: "k", Value: "v"},
		{Key: "z", Value: "last"},
	}, Flatten(res.Handler))
}

func TestInterfaceToString(t *testing.T) {
	tests := []struct {
		name  string
		value any
		empty []string
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "nil custom", value: nil, empty: []string{"null"}, want: "null"},
		{name: "string", value: "x", want: "x"},
		{name: "int", value: 3, want: "3"},
		{name: "integral float", value: float64(1), want: "1"},
		{name: "fraction", value: 0.25, want: "0.25"},
		{name: "bool", value: false, want: "false"},
		{name: "empty map", value: map[string]interface{}{}, want: "{}"},
		{name: "slice", value: []interface{}{"a", float64(2)}, want: `["a",2]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InterfaceToString(tt.value, tt.empty...))
		})
	}
}

func TestSpit(t *testing.T) {
	res := loadResult(t, "app", "json")

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Spit(&buf, res, Options{Output: "json"}))
		assert.JSONEq(t, `{"a":1,"b":"x"}`, buf.String())
	})

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Spit(&buf, res, Options{Output: "yaml"}))
		assert.Equal(t, "a: 1\nb: x\n", buf.String())
	})

	t.Run("raw", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Spit(&buf, res, Options{Output: "raw"}))
		assert.Equal(t, `{"a":1,"b":"x"}`, buf.String())
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Spit(&buf, res, Options{Output: "text", Padding: 2}))
		out := buf.String()
		assert.Contains(t, out, "a")
		assert.Contains(t, out, "x")
		assert.NotContains(t, out, "loaded")
	})

	t.Run("text with titles", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, Spit(&buf, res, Options{Output: "text", Titles: true}))
		out := buf.String()
		assert.Contains(t, out, "key")
		assert.Contains(t, out, "value")
		assert.Contains(t, out, "app.json")
		assert.Contains(t, out, "15 B")
		assert.Contains(t, out, "loaded 3 minutes ago")
	})
}

func TestSpit_Properties(t *testing.T) {
	res := loadResult(t, "app", "properties")

	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, res, Options{Output: "raw"}))
	assert.Equal(t, "k=v\nz=last\n", buf.String())

	buf.Reset()
	require.NoError(t, Spit(&buf, res, Options{Output: "json"}))
	assert.JSONEq(t, `{"k":"v","z":"last"}`, buf.String())
}

func TestSpitValue(t *testing.T) {
	res := loadResult(t, "nested", "json")

	var buf bytes.Buffer
	require.NoError(t, SpitValue(&buf, res.Handler, "db.host", Options{Output: "text"}))
	assert.Equal(t, "h\n", buf.String())

	buf.Reset()
	require.NoError(t, SpitValue(&buf, res.Handler, "db.ports", Options{Output: "json"}))
	assert.JSONEq(t, `[5432,5433]`, buf.String())

	buf.Reset()
	require.NoError(t, SpitValue(&buf, res.Handler, "none", Options{Output: "text"}))
	assert.Equal(t, "null\n", buf.String())

	buf.Reset()
	require.NoError(t, SpitValue(&buf, res.Handler, "db.ports[1]", Options{Output: "yaml"}))
	assert.Equal(t, "5433\n", buf.String())

	err := SpitValue(&buf, res.Handler, "db.nope", Options{})
	assert.ErrorIs(t, err, handler.ErrKeyNotFound)
}

func TestSpitKeys(t *testing.T) {
	res := loadResult(t, "nested", "json")

	var buf bytes.Buffer
	SpitKeys(&buf, res.Handler)
	assert.Equal(t, "db\nnone\non\n", buf.String())
}

func TestFilterRows(t *testing.T) {
	res := loadResult(t, "nested", "json")
	rows := Flatten(res.Handler)

	assert.Equal(t, rows, FilterRows(rows, ""))

	got := FilterRows(rows, "db.ports")
	require.Len(t, got, 2)
	assert.Equal(t, "db.ports[0]", got[0].Key)
	assert.Equal(t, "db.ports[1]", got[1].Key)

	got = FilterRows(rows, "db.ports>5432")
	require.Len(t, got, 1)
	assert.Equal(t, float64(5433), got[0].Value)

	assert.Empty(t, FilterRows(rows, "db.host=nope"))

	got = FilterRows(rows, "db.ports>5432,db.host=h")
	require.Len(t, got, 2)
	assert.Equal(t, "db.host", got[0].Key)
	assert.Equal(t, "db.ports[1]", got[1].Key)

	got = FilterRows(rows, "on,none")
	require.Len(t, got, 2)
	assert.Equal(t, "none", got[0].Key)
	assert.Equal(t, "on", got[1].Key)
}

func TestSpit_Filter(t *testing.T) {
	res := loadResult(t, "nested", "json")

	var buf bytes.Buffer
	require.NoError(t, Spit(&buf, res, Options{Output: "json", Filter: "db.host"}))
	assert.JSONEq(t, `{"db.host":"h"}`, buf.String())

	buf.Reset()
	require.NoError(t, Spit(&buf, res, Options{Output: "text", Filter: "on"}))
	assert.Contains(t, buf.String(), "true")
	assert.NotContains(t, buf.String(), "db.host")

	buf.Reset()
	require.NoError(t, Spit(&buf, res, Options{Output: "raw", Filter: "on"}))
	assert.Contains(t, buf.String(), `"db"`)
}

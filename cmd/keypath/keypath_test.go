package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keypath-kit/container"
	"keypath-kit/internal/document"
	"keypath-kit/kperr"
)

func testConfig() *MainConfig {
	return &MainConfig{Sep: ".", Escape: `\`}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestGet(t *testing.T) {
	path := writeFile(t, "doc.json", `{"users": [{"id": 1, "name": "ann"}, {"id": 2}]}`)

	tests := []struct {
		name    string
		kp      string
		def     string
		strict  bool
		want    string
		wantErr error
	}{
		{name: "present", kp: "users.1.id", want: "2\n"},
		{name: "object", kp: "users.0", want: "{\n  \"id\": 1,\n  \"name\": \"ann\"\n}\n"},
		{name: "absent", kp: "users.1.name", want: "null\n"},
		{name: "default", kp: "users.1.name", def: "none", want: "\"none\"\n"},
		{name: "strict", kp: "users.1.name", strict: true, wantErr: kperr.ErrMissingElement},
		{name: "through scalar", kp: "users.0.id.x", want: "null\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &GetConfig{MainConfig: testConfig(), Default: tt.def, Strict: tt.strict}

			var out bytes.Buffer

			err := runGet(cfg, nil, &out, path, tt.kp)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestGet_Stdin(t *testing.T) {
	cfg := &GetConfig{MainConfig: testConfig()}

	var out bytes.Buffer

	require.NoError(t, runGet(cfg, strings.NewReader("a:\n  b: 1\n"), &out, "-", "a.b"))
	assert.Equal(t, "1\n", out.String())
}

func TestGet_TOMLScalarFallsBackToYAML(t *testing.T) {
	path := writeFile(t, "doc.toml", "[a]\nb = 1\n")
	cfg := &GetConfig{MainConfig: testConfig()}

	var out bytes.Buffer

	require.NoError(t, runGet(cfg, nil, &out, path, "a.b"))
	assert.Equal(t, "1\n", out.String())

	out.Reset()
	require.NoError(t, runGet(cfg, nil, &out, path, "a"))
	assert.Equal(t, "b = 1\n", out.String())
}

func TestGet_OtherSeparator(t *testing.T) {
	path := writeFile(t, "doc.yaml", "a.b:\n  c: 1\n")
	cfg := &GetConfig{MainConfig: &MainConfig{Sep: "/", Escape: `\`}}

	var out bytes.Buffer

	require.NoError(t, runGet(cfg, nil, &out, path, "a.b/c"))
	assert.Equal(t, "1\n", out.String())
}

func TestHas(t *testing.T) {
	path := writeFile(t, "doc.yaml", "a:\n  b: null\n")
	cfg := &HasConfig{MainConfig: testConfig()}

	var out bytes.Buffer

	ok, err := runHas(cfg, nil, &out, path, "a.b")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = runHas(cfg, nil, &out, path, "a.c")
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, "true\nfalse\n", out.String())
}

func TestSet(t *testing.T) {
	path := writeFile(t, "doc.json", `{"a": {"b": 1}}`)
	cfg := &SetConfig{MainConfig: testConfig()}

	var out bytes.Buffer

	require.NoError(t, runSet(cfg, nil, &out, path, "a.c", "x"))
	assert.Equal(t, "{\n  \"a\": {\n    \"b\": 1,\n    \"c\": \"x\"\n  }\n}\n", out.String())

	out.Reset()
	require.NoError(t, runSet(cfg, nil, &out, path, "a.b.c", "{d: 2}"))
	assert.Equal(t, "{\n  \"a\": {\n    \"b\": {\n      \"c\": {\n        \"d\": 2\n      }\n    }\n  }\n}\n", out.String())
}

func TestSet_Strict(t *testing.T) {
	path := writeFile(t, "doc.json", `{"a": {"b": 1}}`)
	cfg := &SetConfig{MainConfig: testConfig(), Strict: true}

	err := runSet(cfg, nil, &bytes.Buffer{}, path, "a.b.c", "1")
	require.ErrorIs(t, err, kperr.ErrCollision)
}

func TestSet_InPlace(t *testing.T) {
	path := writeFile(t, "doc.yaml", "a: 1\n")
	cfg := &SetConfig{MainConfig: testConfig(), InPlace: true}

	var out bytes.Buffer

	require.NoError(t, runSet(cfg, nil, &out, path, "b.c", "2"))
	assert.Empty(t, out.String())

	c, _, err := document.LoadFile(path, "")
	require.NoError(t, err)
	assert.Equal(t, []any{"a", "b"}, c.Keys())

	b, _ := c.Get("b")
	assert.Equal(t, container.Of("c", 2), b)
}

func TestSet_InPlaceStdin(t *testing.T) {
	cfg := &SetConfig{MainConfig: testConfig(), InPlace: true}

	err := runSet(cfg, strings.NewReader("a: 1\n"), &bytes.Buffer{}, "-", "a", "2")
	require.Error(t, err)
}

func TestSet_Diff(t *testing.T) {
	path := writeFile(t, "doc.yaml", "a: 1\nb: 2\n")
	mc := testConfig()
	mc.Diff = true
	cfg := &SetConfig{MainConfig: mc}

	var out bytes.Buffer

	require.NoError(t, runSet(cfg, nil, &out, path, "b", "3"))
	assert.Equal(t, "  a: 1\n- b: 2\n+ b: 3\n", out.String())
}

func TestSet_Patch(t *testing.T) {
	path := writeFile(t, "doc.json", `{"a": 1, "b": 2}`)
	mc := testConfig()
	mc.Patch = true
	cfg := &SetConfig{MainConfig: mc}

	var out bytes.Buffer

	require.NoError(t, runSet(cfg, nil, &out, path, "b", "3"))
	assert.JSONEq(t, `{"b": 3}`, out.String())
}

func TestSet_OutputFormat(t *testing.T) {
	path := writeFile(t, "doc.json", `{"a": 1}`)
	mc := testConfig()
	mc.OutFormat = document.YAML
	cfg := &SetConfig{MainConfig: mc}

	var out bytes.Buffer

	require.NoError(t, runSet(cfg, nil, &out, path, "b", "two"))
	assert.Equal(t, "a: 1\nb: two\n", out.String())
}

func TestUnset(t *testing.T) {
	path := writeFile(t, "doc.yaml", "a: 1\nb: 2\n")
	cfg := &UnsetConfig{MainConfig: testConfig()}

	var out bytes.Buffer

	require.NoError(t, runUnset(cfg, nil, &out, path, "a"))
	assert.Equal(t, "b: 2\n", out.String())

	out.Reset()
	require.NoError(t, runUnset(cfg, nil, &out, path, "c.d"))
	assert.Equal(t, "a: 1\nb: 2\n", out.String())

	cfg.Strict = true
	err := runUnset(cfg, nil, &out, path, "c.d")
	require.ErrorIs(t, err, kperr.ErrMissingElement)
}

func TestExpand(t *testing.T) {
	path := writeFile(t, "doc.json", `{"users": [{"id": 1}, {"id": 2}], "a.b": {"x": 1}}`)
	cfg := &ExpandConfig{MainConfig: testConfig()}

	var out bytes.Buffer

	require.NoError(t, runExpand(cfg, nil, &out, path, "users.%i%.id"))
	assert.Equal(t, "users.0.id\nusers.1.id\n", out.String())

	out.Reset()
	require.NoError(t, runExpand(cfg, nil, &out, path, `a\.b.%k%`))
	assert.Equal(t, "a\\.b.x\n", out.String())

	err := runExpand(cfg, nil, &out, path, "users.%i")
	require.ErrorIs(t, err, kperr.ErrPattern)
}

func TestExpand_Omit(t *testing.T) {
	path := writeFile(t, "doc.json", `{"a": {"x": 1}, "b": 5}`)
	cfg := &ExpandConfig{MainConfig: testConfig()}

	var out bytes.Buffer

	err := runExpand(cfg, nil, &out, path, "%k%.%j%")
	require.ErrorIs(t, err, kperr.ErrType)

	cfg.Omit = true
	require.NoError(t, runExpand(cfg, nil, &out, path, "%k%.%j%"))
	assert.Equal(t, "a.x\n", out.String())
}

func TestSplitJoin(t *testing.T) {
	var out bytes.Buffer

	split := &SplitConfig{MainConfig: testConfig()}
	require.NoError(t, runSplit(split, &out, `a.b\.c`))
	assert.Equal(t, "a\nb.c\n", out.String())

	out.Reset()
	split.Limit = 2
	require.NoError(t, runSplit(split, &out, "a.b.c"))
	assert.Equal(t, "a\nb.c\n", out.String())

	out.Reset()
	join := &JoinConfig{MainConfig: testConfig()}
	require.NoError(t, runJoin(join, &out, []string{"a", "b.c"}))
	assert.Equal(t, "a.b\\.c\n", out.String())

	out.Reset()
	join.NoEscape = true
	require.NoError(t, runJoin(join, &out, []string{"a", "b.c"}))
	assert.Equal(t, "a.b.c\n", out.String())
}

func TestSplit_BadEscape(t *testing.T) {
	cfg := &SplitConfig{MainConfig: &MainConfig{Sep: ".", Escape: "."}}

	err := runSplit(cfg, &bytes.Buffer{}, "a.b")
	require.ErrorIs(t, err, kperr.ErrConfiguration)
}

func TestRemap(t *testing.T) {
	mappingPath := writeFile(t, "transpose.yaml", "wildcard: true\nmap:\n  static.%x%.%y%: s.%y%.%x%\n")
	path := writeFile(t, "doc.json", `{"static": {"a": {"first": 1}, "b": {"first": 2}}}`)
	cfg := &RemapConfig{MainConfig: testConfig()}

	var out bytes.Buffer

	require.NoError(t, runRemap(cfg, nil, &out, mappingPath, path))
	assert.JSONEq(t, `{"s": {"first": {"a": 1, "b": 2}}}`, out.String())
	assert.Less(t, strings.Index(out.String(), `"a"`), strings.Index(out.String(), `"b"`))
}

func TestRemap_InvalidMapping(t *testing.T) {
	mappingPath := writeFile(t, "empty.yaml", "version: \"1\"\n")
	path := writeFile(t, "doc.json", `{}`)
	cfg := &RemapConfig{MainConfig: testConfig()}

	err := runRemap(cfg, nil, &bytes.Buffer{}, mappingPath, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty_map")

	var out bytes.Buffer

	err = runCheck(cfg, &out, mappingPath)
	require.Error(t, err)
	assert.Contains(t, out.String(), "[empty_map]")
}

func TestCheck_Warnings(t *testing.T) {
	mappingPath := writeFile(t, "warn.yaml", "map:\n  a.%x%: b\n")
	cfg := &RemapConfig{MainConfig: testConfig()}

	var out bytes.Buffer

	require.NoError(t, runCheck(cfg, &out, mappingPath))
	assert.Contains(t, out.String(), "[possible_wildcard]")
	assert.Contains(t, out.String(), "(try: wildcard: true)")
}

func TestLineDiff(t *testing.T) {
	assert.Equal(t, "  a\n- b\n+ c\n  d\n", lineDiff("a\nb\nd\n", "a\nc\nd\n", false))
	assert.Equal(t, "  a\n", lineDiff("a\n", "a\n", false))
}

func TestParseValue(t *testing.T) {
	v, err := parseValue("3")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = parseValue("")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	v, err = parseValue("{a: 1}")
	require.NoError(t, err)
	assert.Equal(t, container.Of("a", 1), v)
}

package keypath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keypath-kit/container"
	"keypath-kit/kperr"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		kp   any
		sep  string
		esc  string
		want Path
	}{
		{name: "string", kp: "a.b.c", sep: ".", esc: `\`, want: Path{"a", "b", "c"}},
		{name: "escaped", kp: `a\.b.c`, sep: ".", esc: `\`, want: Path{"a.b", "c"}},
		{name: "no escape", kp: `a\.b`, sep: ".", want: Path{`a\`, "b"}},
		{name: "numeric segments stay strings", kp: "users.0", sep: ".", esc: `\`, want: Path{"users", "0"}},
		{name: "empty string is one empty key", kp: "", sep: ".", esc: `\`, want: Path{""}},
		{name: "path", kp: Path{"a", 1}, sep: ".", want: Path{"a", 1}},
		{name: "any slice", kp: []any{"a.b", 2}, sep: ".", want: Path{"a.b", 2}},
		{name: "string slice", kp: []string{"x", "y"}, sep: ".", want: Path{"x", "y"}},
		{name: "int slice", kp: []int{0, 1}, sep: ".", want: Path{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Normalize(tt.kp, tt.sep, tt.esc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	tests := []struct {
		name string
		kp   any
		msg  string
	}{
		{name: "empty sequence", kp: []string{}, msg: "at least one key must be given"},
		{name: "bad element", kp: []any{"a", true}, msg: "bool given at index 1"},
		{name: "bad type", kp: 3.14, msg: "must be a string or a sequence of keys, float64 given"},
		{name: "nil", kp: nil, msg: "null given"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.kp, ".", `\`)
			require.ErrorIs(t, err, kperr.ErrValidation)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	_, err := Normalize("a.b", ".", ".")
	require.ErrorIs(t, err, kperr.ErrValidation)
	assert.ErrorIs(t, err, kperr.ErrConfiguration, "tokenizer error is kept as the cause")
}

func TestPath_Join(t *testing.T) {
	p := Path{"a.b", 0, `c\`}

	s, err := p.Join(".", `\`)
	require.NoError(t, err)
	assert.Equal(t, `a\.b.0.c\\`, s)

	back, err := Normalize(s, ".", `\`)
	require.NoError(t, err)
	assert.Equal(t, Path{"a.b", "0", `c\`}, back)

	assert.Equal(t, `["a.b",0,"c\\"]`, p.String())
}

func TestPathMap_Compile(t *testing.T) {
	m := NewPathMap().
		Add("users.0.id", "user.id", "owner.id").
		Add(Path{"a", 1}, []string{"b", "c"})

	pairs, err := m.Compile(".", `\`)
	require.NoError(t, err)
	assert.Equal(t, []Pair{
		{Input: Path{"users", "0", "id"}, Outputs: []Path{{"user", "id"}, {"owner", "id"}}},
		{Input: Path{"a", 1}, Outputs: []Path{{"b", "c"}}},
	}, pairs)

	assert.Equal(t, 2, m.Len())
	assert.Len(t, m.Entries(), 2)
}

func TestPathMap_CompileErrors(t *testing.T) {
	_, err := NewPathMap().Compile(".", `\`)
	require.ErrorIs(t, err, kperr.ErrValidation)
	assert.Contains(t, err.Error(), "at least one element")

	var nilMap *PathMap
	_, err = nilMap.Compile(".", `\`)
	require.ErrorIs(t, err, kperr.ErrValidation)

	_, err = NewPathMap().Add("a").Compile(".", `\`)
	require.ErrorIs(t, err, kperr.ErrValidation)
	assert.Contains(t, err.Error(), "has no output key path")

	_, err = NewPathMap().Add("a", "b").Add("c", 1.5).Compile(".", `\`)
	require.ErrorIs(t, err, kperr.ErrValidation)
	assert.Contains(t, err.Error(), "invalid key path map entry 1")
}

func TestCopyByMap(t *testing.T) {
	input := container.Of(
		"users", container.ListOf(container.Of("id", 7)),
		"input", container.Of("first", 1, "second", 2),
	)
	output := container.Of("keep", true)

	m := NewPathMap().
		Add("users.0.id", "user.id", "owner.id").
		Add("input.first", "output.first").
		Add("input.second", "output.first").
		Add("input.missing", "output.missing")

	require.NoError(t, CopyByMap(input, output, m, WithDefault("n/a")))

	assert.Equal(t, map[string]any{
		"keep":   true,
		"user":   map[string]any{"id": 7},
		"owner":  map[string]any{"id": 7},
		"output": map[string]any{"first": 2, "missing": "n/a"},
	}, container.ToNative(output))
}

func TestCopyByMap_OmitNonExisting(t *testing.T) {
	input := container.Of("a", 1)
	output := container.NewMap()

	m := NewPathMap().Add("a", "x").Add("b", "y")

	require.NoError(t, CopyByMap(input, output, m, OmitNonExisting(true), WithDefault("unused")))
	assert.Equal(t, map[string]any{"x": 1}, container.ToNative(output))
}

func TestCopyByMap_Collision(t *testing.T) {
	output := container.Of("x", "scalar")
	m := NewPathMap().Add("a", "x.y")

	err := CopyByMap(container.Of("a", 1), output, m, ThrowOnCollision(true))
	require.ErrorIs(t, err, kperr.ErrCollision)

	err = CopyByMap(container.Of("a", 1), "nope", m)
	require.ErrorIs(t, err, kperr.ErrValidation)
	assert.Contains(t, err.Error(), "output must be")
}

func TestCopy_Pairs(t *testing.T) {
	pairs := []Pair{{Input: Path{"a"}, Outputs: []Path{{"b", "c"}}}}
	output := container.NewMap()

	require.NoError(t, Copy(container.Of("a", 5), output, pairs))
	assert.Equal(t, map[string]any{"b": map[string]any{"c": 5}}, container.ToNative(output))
}

func TestCopy_InvalidPairs(t *testing.T) {
	tests := []struct {
		name  string
		pairs []Pair
	}{
		{name: "empty output path", pairs: []Pair{{Input: Path{"a"}, Outputs: []Path{{}}}}},
		{name: "empty input path", pairs: []Pair{{Input: Path{}, Outputs: []Path{{"b"}}}}},
		{name: "no outputs", pairs: []Pair{{Input: Path{"a"}}}},
		{name: "bad key", pairs: []Pair{{Input: Path{"a"}, Outputs: []Path{{"b", 1.5}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output := container.NewMap()

			err := Copy(container.Of("a", 1), output, tt.pairs)
			require.ErrorIs(t, err, kperr.ErrValidation)
			assert.Contains(t, err.Error(), "invalid key path pair 0")
			assert.Zero(t, output.Len())
		})
	}
}

func TestTransformByMap_LeavesInputUntouched(t *testing.T) {
	input := container.Of("a", container.Of("b", 1), "k", 2)
	m := NewPathMap().Add("a", "x").Add("k", "x.k")

	out, err := TransformByMap(input, m)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"x": map[string]any{"b": 1, "k": 2}}, container.ToNative(out))
	assert.Equal(t, map[string]any{"a": map[string]any{"b": 1}, "k": 2}, container.ToNative(input))
}

func TestTransformByMap_SiblingOutputsIndependent(t *testing.T) {
	input := container.Of("a", container.Of("b", 1))
	m := NewPathMap().Add("a", "x", "y").Add("a", "z").Add("a.b", "x.c")

	out, err := TransformByMap(input, m)
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"x": map[string]any{"b": 1, "c": 1},
		"y": map[string]any{"b": 1},
		"z": map[string]any{"b": 1},
	}, container.ToNative(out))

	ok, err := Has(out, "y.c")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTransformByMap(t *testing.T) {
	input := map[string]any{"database": map[string]any{"host": "localhost", "port": 5432}}
	m := NewPathMap().Add("database.host", "db.addr.host").Add("database.port", "db.addr.port")

	out, err := TransformByMap(input, m)
	require.NoError(t, err)

	native, ok := out.(container.Native)
	require.True(t, ok, "output has the kind of the input")
	assert.Equal(t, container.Native{"db": map[string]any{
		"addr": map[string]any{"host": "localhost", "port": 5432},
	}}, native)

	proto := container.Of("generated", true)

	out, err = TransformByMap(input, m, WithPrototype(proto))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"generated": true,
		"db": map[string]any{
			"generated": true,
			"addr":      map[string]any{"generated": true, "host": "localhost", "port": 5432},
		},
	}, container.ToNative(out))

	_, err = TransformByMap(42, m)
	require.ErrorIs(t, err, kperr.ErrValidation)
}

package wildcard

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keypath-kit/container"
	"keypath-kit/keypath"
	"keypath-kit/kperr"
)

func staticDoc() *container.Map {
	return container.Of("static", container.Of(
		"first", container.Of("x", 1, "y", 2),
		"second", container.Of("x", 3, "y", 4),
	))
}

func TestCompileInput(t *testing.T) {
	in, err := CompileInput("static.%x%.%y%")
	require.NoError(t, err)

	assert.Equal(t, keypath.Path{"static", "%x%", "%y%"}, in.Path)
	assert.Equal(t, map[int]string{1: "x", 2: "y"}, in.Params)
	assert.Equal(t, []string{"x", "y"}, in.Names())
	assert.Equal(t, "'static.%x%.%y%'", in.String())

	pos, ok := in.Position("y")
	assert.True(t, ok)
	assert.Equal(t, 2, pos)

	name, ok := in.Param(1)
	assert.True(t, ok)
	assert.Equal(t, "x", name)
}

func TestCompileInput_Literals(t *testing.T) {
	in, err := CompileInput([]any{"100%%", "%%%%x", 3, "%p%"})
	require.NoError(t, err)

	assert.Equal(t, keypath.Path{"100%", "%%x", 3, "%p%"}, in.Path)
	assert.Equal(t, map[int]string{3: "p"}, in.Params)
}

func TestCompileInput_DoesNotAliasCaller(t *testing.T) {
	src := keypath.Path{"a%%", "%x%"}

	_, err := CompileInput(src)
	require.NoError(t, err)
	assert.Equal(t, keypath.Path{"a%%", "%x%"}, src)
}

func TestCompileInput_Errors(t *testing.T) {
	tests := []struct {
		pattern any
		msg     string
	}{
		{pattern: "a.%x%.%x%", msg: "parameter 'x' occurs more than once in key path 'a.%x%.%x%'"},
		{pattern: []string{"%x%", "%x%"}, msg: `occurs more than once in key path ["%x%","%x%"]`},
		{pattern: "a.%x", msg: "invalid key '%x' in key path 'a.%x'"},
		{pattern: "a.b%%%c", msg: "invalid key 'b%%%c'"},
		{pattern: "a.%x-y%", msg: "invalid key '%x-y%'"},
		{pattern: "%", msg: "invalid key '%'"},
	}

	for _, tt := range tests {
		_, err := CompileInput(tt.pattern)
		require.ErrorIs(t, err, kperr.ErrPattern, "%v", tt.pattern)
		assert.Contains(t, err.Error(), tt.msg)
	}
}

func TestCompileSegment(t *testing.T) {
	lit := func(s string) Fragment { return Fragment{Text: s} }
	param := func(s string) Fragment { return Fragment{IsParam: true, Text: s} }

	tests := []struct {
		segment string
		want    OutputSegment
	}{
		{segment: "static", want: OutputSegment{lit("static")}},
		{segment: "static1%%", want: OutputSegment{lit("static1%")}},
		{segment: "%%static1%%static2%%", want: OutputSegment{lit("%static1%static2%")}},
		{segment: "%x%", want: OutputSegment{param("x")}},
		{segment: "static1%var1%%var2%static2", want: OutputSegment{lit("static1"), param("var1"), param("var2"), lit("static2")}},
		{segment: "static1%%%x%%%%%", want: OutputSegment{lit("static1%"), param("x"), lit("%%")}},
		{segment: "static1%x%%y%", want: OutputSegment{lit("static1"), param("x"), param("y")}},
		{segment: "prefix_%x%_suffix", want: OutputSegment{lit("prefix_"), param("x"), lit("_suffix")}},
		{segment: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.segment, func(t *testing.T) {
			got, err := CompileSegment(tt.segment)
			require.NoError(t, err)

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("CompileSegment(%q) mismatch (-want +got):\n%s", tt.segment, diff)
			}
		})
	}
}

func TestCompileSegment_Errors(t *testing.T) {
	tests := []struct {
		segment string
		msg     string
	}{
		{segment: "%x@#%", msg: "invalid parameter 'x@#'"},
		{segment: "%x%static%dd", msg: "started but not finished parameter: 'dd' in '%x%static%dd'"},
		{segment: "static%", msg: "unescaped wildcard character(%) at the end: 'static%'"},
		{segment: "%x%%", msg: "unescaped wildcard character(%) at the end"},
		{segment: "%", msg: "unescaped wildcard character(%) at the end"},
	}

	for _, tt := range tests {
		_, err := CompileSegment(tt.segment)
		require.ErrorIs(t, err, kperr.ErrPattern, tt.segment)
		assert.Contains(t, err.Error(), tt.msg)
	}
}

func TestCompileOutput(t *testing.T) {
	out, err := CompileOutput([]any{"s", 2, "%y%_%x%"})
	require.NoError(t, err)

	assert.Equal(t, []string{"y", "x"}, out.Params())
	assert.Len(t, out.Segments, 3)
	assert.Equal(t, OutputSegment{{Text: "2"}}, out.Segments[1])
}

func TestCompilePair_Symmetry(t *testing.T) {
	_, err := CompilePair("a.%x%.%y%", []any{"b.%x%"})
	require.ErrorIs(t, err, kperr.ErrPattern)
	assert.Contains(t, err.Error(), `parameters ["y"] in the input('a.%x%.%y%') are not used in the output('b.%x%')`)

	_, err = CompilePair("a.%x%", []any{"b.%x%.%z%"})
	require.ErrorIs(t, err, kperr.ErrPattern)
	assert.Contains(t, err.Error(), `parameters ["z"] in the output('b.%x%.%z%') are not defined in the input('a.%x%')`)

	// checked per output pattern
	_, err = CompilePair("a.%x%", []any{"b.%x%", "c"})
	require.ErrorIs(t, err, kperr.ErrPattern)

	_, err = CompilePair("a.%x%", nil)
	require.ErrorIs(t, err, kperr.ErrValidation)

	pair, err := CompilePair("a.%x%.%y%", []any{"b.%y%.%x%", "c.%x%_%y%"})
	require.NoError(t, err)
	assert.Len(t, pair.Outputs, 2)
}

func TestCompileMap(t *testing.T) {
	m := keypath.NewPathMap().
		Add("static.%x%.%y%", "s.%y%.%x%").
		Add("plain.key", "other.key")

	pairs, err := CompileMap(m)
	require.NoError(t, err)
	assert.Len(t, pairs, 2)

	_, err = CompileMap(keypath.NewPathMap())
	require.ErrorIs(t, err, kperr.ErrValidation)

	_, err = CompileMap(keypath.NewPathMap().Add("ok", "ok").Add("%x%", "%y%"))
	require.ErrorIs(t, err, kperr.ErrPattern)
}

func TestExpand(t *testing.T) {
	in, err := CompileInput("static.%x%.%y%")
	require.NoError(t, err)

	paths, err := Expand(staticDoc(), in)
	require.NoError(t, err)

	want := []keypath.Path{
		{"static", "first", "x"},
		{"static", "first", "y"},
		{"static", "second", "x"},
		{"static", "second", "y"},
	}

	if diff := cmp.Diff(want, paths); diff != "" {
		t.Errorf("Expand mismatch (-want +got):\n%s", diff)
	}
}

func TestExpand_TopLevelParameter(t *testing.T) {
	in, err := CompileInput("%x%")
	require.NoError(t, err)

	paths, err := Expand(container.Of("a", 1, "b", 2, "c", 3), in)
	require.NoError(t, err)
	assert.Equal(t, []keypath.Path{{"a"}, {"b"}, {"c"}}, paths)
}

func TestExpand_LiteralsAreNotChecked(t *testing.T) {
	in, err := CompileInput("missing.%x%.leaf")
	require.NoError(t, err)

	_, err = Expand(staticDoc(), in)
	require.ErrorIs(t, err, kperr.ErrMissingElement)
	assert.Contains(t, err.Error(), `element at ["missing"] does not exist`)

	in, err = CompileInput("static.%x%.absent")
	require.NoError(t, err)

	paths, err := Expand(staticDoc(), in)
	require.NoError(t, err)
	assert.Equal(t, []keypath.Path{{"static", "first", "absent"}, {"static", "second", "absent"}}, paths)
}

func TestExpand_NotAContainer(t *testing.T) {
	doc := container.Of("static", container.Of("first", container.Of("x", 1), "second", "scalar"))

	in, err := CompileInput("static.%x%.%y%")
	require.NoError(t, err)

	_, err = Expand(doc, in)
	require.ErrorIs(t, err, kperr.ErrType)
	assert.Contains(t, err.Error(), `element at ["static","second"] is not a container, string given`)

	paths, err := Expand(doc, in, keypath.OmitNonExisting(true))
	require.NoError(t, err)
	assert.Equal(t, []keypath.Path{{"static", "first", "x"}}, paths)

	in, err = CompileInput("nope.%x%")
	require.NoError(t, err)

	paths, err = Expand(doc, in, keypath.OmitNonExisting(true))
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestExpand_InvalidContainer(t *testing.T) {
	in, err := CompileInput("%x%")
	require.NoError(t, err)

	_, err = Expand("scalar", in)
	require.ErrorIs(t, err, kperr.ErrValidation)
}

func TestSubstitute(t *testing.T) {
	in, err := CompileInput("static.%x%.%y%")
	require.NoError(t, err)

	out, err := CompileOutput("s.%y%.%x%")
	require.NoError(t, err)

	got, err := Substitute(keypath.Path{"static", "first", "x"}, in, out)
	require.NoError(t, err)
	assert.Equal(t, keypath.Path{"s", "x", "first"}, got)

	out, err = CompileOutput("s.%y%_%x%.n%%")
	require.NoError(t, err)

	got, err = Substitute(keypath.Path{"static", 0, "x"}, in, out)
	require.NoError(t, err)
	assert.Equal(t, keypath.Path{"s", "x_0", "n%"}, got)

	_, err = Substitute(keypath.Path{"static"}, in, out)
	require.ErrorIs(t, err, kperr.ErrValidation)
}

func TestSubstitute_KeepsKeyType(t *testing.T) {
	in, err := CompileInput("list.%i%")
	require.NoError(t, err)

	out, err := CompileOutput("copy.%i%")
	require.NoError(t, err)

	got, err := Substitute(keypath.Path{"list", 3}, in, out)
	require.NoError(t, err)
	assert.Equal(t, keypath.Path{"copy", 3}, got)
}

func TestPaths(t *testing.T) {
	pairs, err := CompileMap(keypath.NewPathMap().Add("static.%x%.%y%", "s.%y%.%x%", "flat.%x%_%y%"))
	require.NoError(t, err)

	got, err := Paths(staticDoc(), pairs)
	require.NoError(t, err)
	require.Len(t, got, 4)

	assert.Equal(t, keypath.Pair{
		Input:   keypath.Path{"static", "second", "y"},
		Outputs: []keypath.Path{{"s", "y", "second"}, {"flat", "second_y"}},
	}, got[3])
}

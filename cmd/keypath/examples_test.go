package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"keypath-kit/internal/document"
)

func TestExamples_Remap(t *testing.T) {
	t.Parallel()

	root, err := filepath.Abs(filepath.Join("..", "..", "examples"))
	require.NoError(t, err)

	dirs, err := os.ReadDir(root)
	require.NoError(t, err)

	for _, dir := range dirs {
		if !dir.IsDir() {
			continue
		}

		t.Run(dir.Name(), func(t *testing.T) {
			t.Parallel()

			base := filepath.Join(root, dir.Name())
			mappingPath := findOne(t, base, "mapping.*")
			inputPath := findOne(t, base, "input.*")

			expected, err := os.ReadFile(filepath.Join(base, "expected.json"))
			require.NoError(t, err)

			mc := testConfig()
			mc.OutFormat = document.JSON
			cfg := &RemapConfig{MainConfig: mc}

			var out bytes.Buffer

			require.NoError(t, runRemap(cfg, nil, &out, mappingPath, inputPath))
			assert.JSONEq(t, string(expected), out.String())
		})
	}
}

func findOne(t *testing.T, dir, pattern string) string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	require.NoError(t, err)
	require.Len(t, matches, 1, "%s in %s", pattern, dir)

	return matches[0]
}

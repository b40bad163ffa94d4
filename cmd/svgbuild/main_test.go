package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/benoitkugler/svgbuild/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "scene.yaml")
	configPath := filepath.Join(dir, "render.toml")
	outPath := filepath.Join(dir, "out.svg")
	require.NoError(t, os.WriteFile(scenePath, []byte("width: 10\nshapes:\n  - {kind: circle, center: [5, 5], radius: 4}\n"), 0o644))
	require.NoError(t, os.WriteFile(configPath, []byte("declaration = false\n"), 0o644))

	require.NoError(t, run(scenePath, configPath, outPath))
	content, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"10\">\n"+
		"\t<path d=\"M 9,5 A 4 4 0 0 1 1,5 A 4 4 0 0 1 9,5\"/>\n"+
		"</svg>", string(content))

	err = run(scenePath, "", filepath.Join(dir, "missing", "out.svg"))
	assert.Error(t, err)

	err = run(filepath.Join(dir, "scene.json"), "", outPath)
	assert.ErrorIs(t, err, config.ErrUnsupportedFormat)
}

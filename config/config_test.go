package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benoitkugler/svgbuild/xmlbuild"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	assert.Equal(t, xmlbuild.DefaultSettings(), Default().Settings())
}

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader("precision = 3\nindent = \"  \"\nlist_separator = \",\"\n"), TOML)
	require.NoError(t, err)
	expected := Default()
	expected.Precision = 3
	expected.Indent = "  "
	expected.ListSeparator = ","
	assert.Equal(t, expected, cfg)

	cfg, err = Decode(strings.NewReader("precision: 3\nindent: \"  \"\nlist_separator: \",\"\n"), YAML)
	require.NoError(t, err)
	assert.Equal(t, expected, cfg)

	cfg, err = Decode(strings.NewReader(""), YAML)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	cfg, err = Decode(strings.NewReader("declaration: false\nencoding: windows-1252\n"), YAML)
	require.NoError(t, err)
	assert.False(t, cfg.Declaration)
	assert.Equal(t, "windows-1252", cfg.Settings().Encoding)

	_, err = Decode(strings.NewReader("unknown = 1\n"), TOML)
	assert.Error(t, err)
	_, err = Decode(strings.NewReader("unknown: 1\n"), YAML)
	assert.Error(t, err)
	_, err = Decode(strings.NewReader(""), "ini")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "render.yml")
	require.NoError(t, os.WriteFile(path, []byte("precision: 2\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Precision)

	_, err = Load(filepath.Join(dir, "render.json"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFromMap(t *testing.T) {
	cfg, err := FromMap(map[string]interface{}{"precision": "4", "declaration": false})
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Precision)
	assert.False(t, cfg.Declaration)
	assert.Equal(t, "\t", cfg.Indent)

	_, err = FromMap(map[string]interface{}{"colour": "red"})
	assert.Error(t, err)
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Precision = 1
	cfg.Declaration = false
	doc := xmlbuild.NewDocument("circle", cfg.Options()...).SetAttr("r", 1.25)
	s, err := doc.Markup()
	require.NoError(t, err)
	assert.Equal(t, `<circle r="1.3"/>`, s)
}

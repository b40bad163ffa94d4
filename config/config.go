// Package config loads the rendering settings of SVG documents
// from TOML or YAML files, or from generic maps.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/benoitkugler/svgbuild/xmlbuild"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for files which are
// neither TOML nor YAML.
var ErrUnsupportedFormat = errors.New("unsupported configuration format")

// Format is a configuration file syntax.
type Format string

const (
	TOML Format = "toml"
	YAML Format = "yaml"
)

// FormatOf returns the format of a file, from its extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return "", errors.Wrapf(ErrUnsupportedFormat, "file %s", path)
}

// Config stores how documents are serialized.
type Config struct {
	// Precision is the maximum number of decimals of numbers,
	// negative for the shortest exact representation
	Precision int `toml:"precision" yaml:"precision" mapstructure:"precision"`
	// Indent is the indentation unit, a tab by default
	Indent string `toml:"indent" yaml:"indent" mapstructure:"indent"`
	// ListSeparator joins the glyph positions of texts
	ListSeparator string `toml:"list_separator" yaml:"list_separator" mapstructure:"list_separator"`
	// Encoding is the charset label of the output
	Encoding    string `toml:"encoding" yaml:"encoding" mapstructure:"encoding"`
	Declaration bool   `toml:"declaration" yaml:"declaration" mapstructure:"declaration"`
}

// Default returns the configuration of xmlbuild.DefaultSettings.
func Default() Config {
	s := xmlbuild.DefaultSettings()
	return Config{
		Precision:     s.Format.Precision,
		Indent:        s.Indent,
		ListSeparator: s.ListSeparator,
		Encoding:      s.Encoding,
		Declaration:   s.Declaration,
	}
}

// Load reads the file at path, whose format is deduced from its extension.
// Missing fields keep their default value.
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "loading configuration")
	}
	defer f.Close()

	cfg, err := Decode(f, format)
	if err != nil {
		return Config{}, errors.Wrapf(err, "file %s", path)
	}
	return cfg, nil
}

// Decode reads a configuration. Unknown fields are rejected.
func Decode(r io.Reader, format Format) (Config, error) {
	cfg := Default()
	switch format {
	case TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Config{}, errors.Wrap(err, "decoding toml configuration")
		}
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && err != io.EOF {
			return Config{}, errors.Wrap(err, "decoding yaml configuration")
		}
	default:
		return Config{}, errors.Wrapf(ErrUnsupportedFormat, "%q", format)
	}
	return cfg, nil
}

// FromMap builds a configuration from generic values, such as
// the ones of a larger document. Values are weakly typed:
// "3" is accepted as a precision.
func FromMap(m map[string]interface{}) (Config, error) {
	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, err
	}
	if err := dec.Decode(m); err != nil {
		return Config{}, errors.Wrap(err, "decoding configuration")
	}
	return cfg, nil
}

// Settings returns the xmlbuild settings described by cfg.
func (cfg Config) Settings() xmlbuild.Settings {
	return xmlbuild.Settings{
		Indent:        cfg.Indent,
		Format:        xmlbuild.NumberFormat{Precision: cfg.Precision},
		Encoding:      cfg.Encoding,
		Declaration:   cfg.Declaration,
		ListSeparator: cfg.ListSeparator,
	}
}

// Options returns the options to pass to svg.New or xmlbuild.NewDocument.
func (cfg Config) Options() []xmlbuild.Option {
	return []xmlbuild.Option{xmlbuild.WithSettings(cfg.Settings())}
}

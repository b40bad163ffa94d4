// Package scene reads declarative descriptions of SVG documents.
//
// A scene lists shapes by kind:
//
//	width: 200
//	height: 200
//	viewBox: [0, 0, 200, 200]
//	shapes:
//	  - kind: star
//	    center: [100, 100]
//	    n: 5
//	    radius: 80
//	    radii: [35]
//	    attrs: {fill: gold}
//
// Geometric shapes are emitted as <path> elements.
package scene

import (
	"io"
	"os"
	"sort"

	"github.com/benoitkugler/svgbuild/config"
	"github.com/benoitkugler/svgbuild/internal/logging"
	"github.com/benoitkugler/svgbuild/svg"
	"github.com/go-viper/mapstructure/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ErrUnknownShape is returned for shapes with an unsupported kind.
var ErrUnknownShape = errors.New("unknown shape")

// Scene is the content of a scene file.
type Scene struct {
	Width   float64                  `yaml:"width" toml:"width"`
	Height  float64                  `yaml:"height" toml:"height"`
	ViewBox []float64                `yaml:"viewBox" toml:"viewBox"`
	Title   string                   `yaml:"title" toml:"title"`
	Shapes  []map[string]interface{} `yaml:"shapes" toml:"shapes"`
}

// Load reads the file at path, in TOML or YAML according to its extension.
func Load(path string) (*Scene, error) {
	format, err := config.FormatOf(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loading scene")
	}
	defer f.Close()

	s, err := Decode(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "file %s", path)
	}
	return s, nil
}

// Decode reads a scene.
func Decode(r io.Reader, format config.Format) (*Scene, error) {
	var s Scene
	switch format {
	case config.TOML:
		dec := toml.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&s); err != nil {
			return nil, errors.Wrap(err, "decoding toml scene")
		}
	case config.YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "decoding yaml scene")
		}
	default:
		return nil, errors.Wrapf(config.ErrUnsupportedFormat, "%q", format)
	}
	return &s, nil
}

func optional(v float64) interface{} {
	if v == 0 {
		return nil
	}
	return v
}

// Build returns the SVG document of the scene.
func (s *Scene) Build(cfg config.Config) (*svg.Element, error) {
	var viewBox interface{}
	if len(s.ViewBox) != 0 {
		if len(s.ViewBox) != 4 {
			return nil, errors.Errorf("viewBox needs 4 numbers, got %d", len(s.ViewBox))
		}
		viewBox = s.ViewBox
	}
	doc := svg.New(optional(s.Width), optional(s.Height), viewBox, cfg.Options()...)
	if s.Title != "" {
		doc.Title(s.Title)
	}

	for i, raw := range s.Shapes {
		shape, err := decodeShape(raw)
		if err != nil {
			return nil, errors.Wrapf(err, "shape %d", i+1)
		}
		e, err := shape.build(doc)
		if err != nil {
			return nil, errors.Wrapf(err, "shape %d", i+1)
		}
		e.SetID(shape.ID)
		keys := make([]string, 0, len(shape.Attrs))
		for k := range shape.Attrs {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			e.SetAttr(k, shape.Attrs[k])
		}
	}
	if err := doc.Err(); err != nil {
		return nil, err
	}
	logging.Logger().Debug().Int("shapes", len(s.Shapes)).Msg("scene built")
	return doc, nil
}

func decodeShape(raw map[string]interface{}) (Shape, error) {
	var shape Shape
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           &shape,
	})
	if err != nil {
		return shape, err
	}
	if err := dec.Decode(raw); err != nil {
		return shape, errors.Wrap(err, "decoding shape")
	}
	return shape, nil
}

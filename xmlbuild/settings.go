// Package xmlbuild builds XML element trees and serializes them
// to indented markup.
//
// Attributes follow two rules: setting a nil value omits the attribute
// entirely, and multi-valued attributes (such as SVG `points` or `d`)
// are token accumulators, only flattened to text at render time.
package xmlbuild

import (
	"math"
	"strconv"
)

// DefaultPrecision is the number of decimals kept when formatting numbers.
const DefaultPrecision = 10

// NumberFormat formats the numeric attribute values.
// The output never depends on the locale, never uses exponents
// and has no trailing zeros.
type NumberFormat struct {
	// Precision is the maximum number of decimals.
	// A negative value keeps the shortest exact representation.
	Precision int
}

// Float returns the text of v.
func (nf NumberFormat) Float(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	if nf.Precision >= 0 {
		scale := math.Pow10(nf.Precision)
		if s := v * scale; !math.IsInf(s, 0) && math.Abs(s) < 1<<53 {
			v = math.Round(s) / scale
		}
	}
	if v == 0 { // also catches -0
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Settings control the serialization of a document.
type Settings struct {
	// Indent is repeated once per nesting level
	Indent string
	// Format is used for every numeric value
	Format NumberFormat
	// Encoding is the output charset label, UTF-8 if empty
	Encoding string
	// Declaration adds the leading <?xml ... ?> line to documents
	Declaration bool
	// ListSeparator is the default separator of list valued attributes
	ListSeparator string
}

// DefaultSettings returns tab-indented, UTF-8 settings, with
// a declaration and space separated lists.
func DefaultSettings() Settings {
	return Settings{
		Indent:        "\t",
		Format:        NumberFormat{Precision: DefaultPrecision},
		Encoding:      "UTF-8",
		Declaration:   true,
		ListSeparator: " ",
	}
}

// Option modifies the Settings of a document.
type Option func(*Settings)

// WithIndent sets the indentation unit.
func WithIndent(indent string) Option { return func(s *Settings) { s.Indent = indent } }

// WithPrecision sets the number of decimals of numeric values.
func WithPrecision(decimals int) Option {
	return func(s *Settings) { s.Format.Precision = decimals }
}

// WithEncoding sets the output charset label (for instance "windows-1252").
func WithEncoding(label string) Option { return func(s *Settings) { s.Encoding = label } }

// WithDeclaration enables or disables the XML declaration.
func WithDeclaration(enabled bool) Option { return func(s *Settings) { s.Declaration = enabled } }

// WithListSeparator sets the separator of document-level lists.
func WithListSeparator(sep string) Option { return func(s *Settings) { s.ListSeparator = sep } }

// WithSettings replaces all the settings.
func WithSettings(settings Settings) Option { return func(s *Settings) { *s = settings } }

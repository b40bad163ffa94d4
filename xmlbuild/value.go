package xmlbuild

import (
	"fmt"
	"reflect"
	"strings"
)

// Value is an attribute value, turned into text when the
// document is rendered.
type Value interface {
	Text(nf NumberFormat) string
}

// Str is a literal text value.
type Str string

func (s Str) Text(NumberFormat) string { return string(s) }

// Number is a numeric value.
type Number float64

func (n Number) Text(nf NumberFormat) string { return nf.Float(float64(n)) }

// Pair renders as `x,y`.
type Pair struct{ X, Y float64 }

func (p Pair) Text(nf NumberFormat) string { return nf.Float(p.X) + "," + nf.Float(p.Y) }

// Numbers renders as a space separated list.
type Numbers []float64

func (ns Numbers) Text(nf NumberFormat) string {
	chunks := make([]string, len(ns))
	for i, n := range ns {
		chunks[i] = nf.Float(n)
	}
	return strings.Join(chunks, " ")
}

// List is a multi-valued attribute: an ordered accumulator of tokens.
// Empty tokens are ignored when joining.
type List struct {
	Sep   string
	Items []Value
}

func (l *List) Text(nf NumberFormat) string {
	chunks := make([]string, 0, len(l.Items))
	for _, item := range l.Items {
		if s := item.Text(nf); s != "" {
			chunks = append(chunks, s)
		}
	}
	return strings.Join(chunks, l.Sep)
}

// Append adds one token.
func (l *List) Append(v Value) { l.Items = append(l.Items, v) }

// Len returns the number of tokens.
func (l *List) Len() int { return len(l.Items) }

// isNil reports nil interfaces and typed nil pointers, which
// mean "no value".
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Func:
		return rv.IsNil()
	}
	return false
}

// AsValue converts v into a Value. ok is false for
// nil values, which must be skipped.
// Slices and arrays (except strings) become space separated lists.
func AsValue(v interface{}) (val Value, ok bool) {
	if isNil(v) {
		return nil, false
	}
	switch v := v.(type) {
	case Value:
		return v, true
	case string:
		return Str(v), true
	case *string:
		return Str(*v), true
	case float64:
		return Number(v), true
	case *float64:
		return Number(*v), true
	case float32:
		return Number(v), true
	case int:
		return Number(v), true
	case *int:
		return Number(*v), true
	case bool:
		if v {
			return Str("true"), true
		}
		return Str("false"), true
	case fmt.Stringer:
		return Str(v.String()), true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return Number(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float()), true
	case reflect.String:
		return Str(rv.String()), true
	case reflect.Slice, reflect.Array:
		return asList(rv, " "), true
	}
	return Str(fmt.Sprint(v)), true
}

// asList flattens nested slices into one list joined by sep.
func asList(rv reflect.Value, sep string) *List {
	l := &List{Sep: sep}
	appendItems(l, rv)
	return l
}

func appendItems(l *List, rv reflect.Value) {
	for i := 0; i < rv.Len(); i++ {
		item := rv.Index(i)
		for item.Kind() == reflect.Interface && !item.IsNil() {
			item = item.Elem()
		}
		if item.Kind() == reflect.Slice || item.Kind() == reflect.Array {
			appendItems(l, item)
			continue
		}
		if !item.IsValid() || (item.Kind() == reflect.Interface && item.IsNil()) {
			continue
		}
		if v, ok := AsValue(item.Interface()); ok {
			l.Append(v)
		}
	}
}

package xmlbuild

import "reflect"

type attribute struct {
	name  string
	value Value
}

// document is shared by all the elements of a tree
type document struct {
	settings Settings
	root     *Element
}

// Element is a node of an XML tree. Attribute order is
// the order of insertion.
// An element with an empty name is an anonymous container:
// only its children are rendered.
type Element struct {
	name     string
	attrs    []attribute
	children []*Element
	text     string
	parent   *Element
	inline   bool
	doc      *document
}

func newRoot(name string, settings Settings, opts []Option) *Element {
	doc := &document{settings: settings}
	for _, opt := range opts {
		opt(&doc.settings)
	}
	doc.root = &Element{name: name, doc: doc}
	return doc.root
}

// NewDocument returns the root of a new document, rendered
// with the DefaultSettings modified by opts.
func NewDocument(name string, opts ...Option) *Element {
	return newRoot(name, DefaultSettings(), opts)
}

// NewFragment returns the root of a tree meant to be embedded
// in another document: it has no XML declaration.
// name may be empty to build a list of sibling elements.
func NewFragment(name string, opts ...Option) *Element {
	settings := DefaultSettings()
	settings.Declaration = false
	return newRoot(name, settings, opts)
}

// Append adds a child element and returns it. The optional
// texts are concatenated into its character data.
func (e *Element) Append(name string, text ...string) *Element {
	child := &Element{name: name, parent: e, doc: e.doc}
	for _, t := range text {
		child.text += t
	}
	e.children = append(e.children, child)
	return child
}

// SetText replaces the character data of the element.
func (e *Element) SetText(text string) *Element {
	e.text = text
	return e
}

// Content returns the character data of the element.
func (e *Element) Content() string { return e.text }

// SetAttr sets the attribute name, keeping its position if
// it is already present. A nil value (including typed nil pointers)
// removes the attribute.
func (e *Element) SetAttr(name string, value interface{}) *Element {
	v, ok := AsValue(value)
	if !ok {
		e.RemoveAttr(name)
		return e
	}
	if i := e.attrIndex(name); i >= 0 {
		e.attrs[i].value = v
		return e
	}
	e.attrs = append(e.attrs, attribute{name: name, value: v})
	return e
}

// AppendAttr appends token to the list valued attribute name,
// creating it if needed. An existing scalar value becomes the first
// token of the list. Slices and arrays are appended token by token.
// sep is only used when the list is created. A nil token is ignored.
func (e *Element) AppendAttr(name string, token interface{}, sep string) *Element {
	if isNil(token) {
		return e
	}
	var list *List
	if i := e.attrIndex(name); i >= 0 {
		if l, isList := e.attrs[i].value.(*List); isList {
			list = l
		} else {
			list = &List{Sep: sep, Items: []Value{e.attrs[i].value}}
			e.attrs[i].value = list
		}
	} else {
		list = &List{Sep: sep}
		e.attrs = append(e.attrs, attribute{name: name, value: list})
	}

	switch token.(type) {
	case Value, string:
	default:
		if rv := reflect.ValueOf(token); rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
			appendItems(list, rv)
			return e
		}
	}
	if v, ok := AsValue(token); ok {
		list.Append(v)
	}
	return e
}

// RemoveAttr deletes the attribute name, if present.
func (e *Element) RemoveAttr(name string) *Element {
	if i := e.attrIndex(name); i >= 0 {
		e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
	}
	return e
}

func (e *Element) attrIndex(name string) int {
	for i, a := range e.attrs {
		if a.name == name {
			return i
		}
	}
	return -1
}

// Attr returns the rendered text of the attribute name.
func (e *Element) Attr(name string) (string, bool) {
	v := e.AttrValue(name)
	if v == nil {
		return "", false
	}
	return v.Text(e.doc.settings.Format), true
}

// AttrValue returns the raw value of the attribute name, or nil.
func (e *Element) AttrValue(name string) Value {
	if i := e.attrIndex(name); i >= 0 {
		return e.attrs[i].value
	}
	return nil
}

// AttrNames returns the attribute names, in rendering order.
func (e *Element) AttrNames() []string {
	out := make([]string, len(e.attrs))
	for i, a := range e.attrs {
		out[i] = a.name
	}
	return out
}

func (e *Element) Name() string { return e.name }

// Parent returns the parent element, or nil for the root.
func (e *Element) Parent() *Element { return e.parent }

// Root returns the root of the tree.
func (e *Element) Root() *Element { return e.doc.root }

// IsRoot is true for the root of the tree.
func (e *Element) IsRoot() bool { return e.doc.root == e }

// Children returns the child elements. The slice must not be modified.
func (e *Element) Children() []*Element { return e.children }

// Settings returns the settings shared by the tree.
func (e *Element) Settings() Settings { return e.doc.settings }

// SetInline renders the element children on the same line
// as the element itself.
func (e *Element) SetInline(inline bool) *Element {
	e.inline = inline
	return e
}

// Inline reports whether the children are rendered on one line.
func (e *Element) Inline() bool { return e.inline }

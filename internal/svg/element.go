// Package svg is a small retained-mode drawing surface: an element tree that
// renderers append to and that encodes as SVG markup.
package svg

import (
	"fmt"
	"strconv"
	"strings"
)

// Namespace is the SVG XML namespace.
const Namespace = "http://www.w3.org/2000/svg"

// Attr is a single element attribute. Order is preserved on output.
type Attr struct {
	Name  string
	Value string
}

// Element is a node in the drawing tree.
type Element struct {
	Tag      string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// New creates a detached element.
func New(tag string) *Element {
	return &Element{Tag: tag}
}

// NewDocument creates a root <svg> element of the given pixel size.
func NewDocument(width, height float64) *Element {
	return New("svg").
		Set("xmlns", Namespace).
		SetFloat("width", width).
		SetFloat("height", height)
}

// Set sets an attribute, replacing any existing value.
func (e *Element) Set(name, value string) *Element {
	for i := range e.Attrs {
		if e.Attrs[i].Name == name {
			e.Attrs[i].Value = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// SetFloat sets a numeric attribute using the shortest exact representation.
func (e *Element) SetFloat(name string, v float64) *Element {
	return e.Set(name, FormatFloat(v))
}

// SetInt sets an integer attribute.
func (e *Element) SetInt(name string, v int) *Element {
	return e.Set(name, strconv.Itoa(v))
}

// Translate sets a translate transform, shifting the child coordinate system.
func (e *Element) Translate(x, y float64) *Element {
	return e.Set("transform", fmt.Sprintf("translate(%s,%s)", FormatFloat(x), FormatFloat(y)))
}

// SetText sets the element's character data.
func (e *Element) SetText(s string) *Element {
	e.Text = s
	return e
}

// Append creates a child element and returns it.
func (e *Element) Append(tag string) *Element {
	child := New(tag)
	e.Children = append(e.Children, child)
	return child
}

// Attr returns an attribute value.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasClass reports whether the element's class list contains class.
func (e *Element) HasClass(class string) bool {
	v, ok := e.Attr("class")
	if !ok {
		return false
	}
	for _, c := range strings.Fields(v) {
		if c == class {
			return true
		}
	}
	return false
}

// Walk visits e and its descendants depth-first in document order. Returning
// false from fn skips the element's children.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range e.Children {
		c.Walk(fn)
	}
}

// FindID returns the first element whose id attribute equals id, or nil.
func (e *Element) FindID(id string) *Element {
	var found *Element
	e.Walk(func(el *Element) bool {
		if found != nil {
			return false
		}
		if v, ok := el.Attr("id"); ok && v == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// FindAll returns every element (including e) matching pred, in document order.
func (e *Element) FindAll(pred func(*Element) bool) []*Element {
	var out []*Element
	e.Walk(func(el *Element) bool {
		if pred(el) {
			out = append(out, el)
		}
		return true
	})
	return out
}

// ByClass matches elements carrying class.
func ByClass(class string) func(*Element) bool {
	return func(el *Element) bool { return el.HasClass(class) }
}

// ByTag matches elements with the given tag name.
func ByTag(tag string) func(*Element) bool {
	return func(el *Element) bool { return el.Tag == tag }
}

// FormatFloat renders v with the fewest digits that round-trip exactly.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

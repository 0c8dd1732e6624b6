package ui

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attr is a single HTML attribute. Attributes are written in the order they are declared.
type Attr struct {
	Key   string
	Value string
	// Bare attributes are written without a value, e.g. disabled.
	Bare bool
	omit bool
}

// Attrs is an ordered attribute list.
type Attrs []Attr

// A returns an attribute that is always written, even when value is empty.
func A(key, value string) Attr {
	return Attr{Key: key, Value: value}
}

// Opt returns an attribute that is omitted when value is empty.
func Opt(key, value string) Attr {
	return Attr{Key: key, Value: value, omit: value == ""}
}

// Flag returns a bare boolean attribute, written only when on.
func Flag(key string, on bool) Attr {
	return Attr{Key: key, Bare: true, omit: !on}
}

func (a Attrs) writeTo(w io.Writer) error {
	var b strings.Builder
	for _, attr := range a {
		if attr.omit {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(attr.Key)
		if attr.Bare {
			continue
		}
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(attr.Value))
		b.WriteByte('"')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Element renders <tag attrs>children</tag>. Nil children are skipped.
func Element(tag string, attrs Attrs, children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if err := attrs.writeTo(w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ">"); err != nil {
			return err
		}
		if err := renderAll(ctx, w, children); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</"+tag+">")
		return err
	})
}

// Void renders an element without content or closing tag, such as img or input.
func Void(tag string, attrs Attrs) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<"+tag); err != nil {
			return err
		}
		if err := attrs.writeTo(w); err != nil {
			return err
		}
		_, err := io.WriteString(w, ">")
		return err
	})
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Group renders its children one after the other with no wrapping element.
func Group(children ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return renderAll(ctx, w, children)
	})
}

// When returns c if cond holds, nil otherwise. A nil child renders nothing.
func When(cond bool, c templ.Component) templ.Component {
	if !cond {
		return nil
	}
	return c
}

// Render renders c into a string.
func Render(ctx context.Context, c templ.Component) (string, error) {
	var b strings.Builder
	if c == nil {
		return "", nil
	}
	if err := c.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderAll(ctx context.Context, w io.Writer, children []templ.Component) error {
	for _, child := range children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}
	return nil
}

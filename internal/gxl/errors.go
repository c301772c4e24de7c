package gxl

import (
	"errors"
	"fmt"
)

// ErrNoGraph is returned when a document has no <graph> element.
var ErrNoGraph = errors.New("GXL document contains no <graph> element")

// MalformedAttributeError reports an <attr> whose shape is invalid: it has
// zero or several value children, repeats a name already used on the same
// element, or holds an integer that does not parse.
type MalformedAttributeError struct {
	Name   string
	Reason string
	Err    error
}

func (e *MalformedAttributeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed <attr name=%q>: %s: %v", e.Name, e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed <attr name=%q>: %s", e.Name, e.Reason)
}

func (e *MalformedAttributeError) Unwrap() error {
	return e.Err
}

// UnsupportedAttributeTypeError reports a value child that is neither <int>
// nor <string>.
type UnsupportedAttributeTypeError struct {
	Name string
	Tag  string
}

func (e *UnsupportedAttributeTypeError) Error() string {
	return fmt.Sprintf("unexpected tag <%s> in <attr name=%q>", e.Tag, e.Name)
}

// MissingAttributeError reports a required attribute that an element lacks.
type MissingAttributeError struct {
	Name string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("missing required attribute %q", e.Name)
}

// AttributeKindError reports an attribute read as one kind while it holds
// the other, e.g. a "Weight" given as <string>.
type AttributeKindError struct {
	Name string
	Want Kind
	Got  Kind
}

func (e *AttributeKindError) Error() string {
	return fmt.Sprintf("attribute %q: expected <%s> value, got <%s>", e.Name, e.Want, e.Got)
}

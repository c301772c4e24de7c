package gxl

import (
	"strconv"
	"strings"
)

// Attributes maps attribute names to typed values for a single element.
type Attributes map[string]Value

// ParseAttributes extracts the typed attributes of one element. It fails on
// the first <attr> that is malformed or uses a type other than int or string.
func ParseAttributes(el Element) (Attributes, error) {
	raw := el.RawAttributes()
	attrs := make(Attributes, len(raw))

	for _, a := range raw {
		if len(a.Values) != 1 {
			return nil, &MalformedAttributeError{
				Name:   a.Name,
				Reason: "expected exactly one child element, found " + strconv.Itoa(len(a.Values)),
			}
		}
		if _, dup := attrs[a.Name]; dup {
			return nil, &MalformedAttributeError{Name: a.Name, Reason: "attribute declared more than once"}
		}

		v, err := parseValue(a.Name, a.Values[0])
		if err != nil {
			return nil, err
		}
		attrs[a.Name] = v
	}

	return attrs, nil
}

func parseValue(name string, raw RawValue) (Value, error) {
	switch raw.Tag() {
	case "int":
		n, err := strconv.ParseInt(strings.TrimSpace(raw.Text), 10, 64)
		if err != nil {
			return Value{}, &MalformedAttributeError{Name: name, Reason: "invalid integer", Err: err}
		}
		return IntValue(n), nil
	case "string":
		return TextValue(raw.Text), nil
	default:
		return Value{}, &UnsupportedAttributeTypeError{Name: name, Tag: raw.Tag()}
	}
}

// Lookup returns the named value and whether it was present.
func (a Attributes) Lookup(name string) (Value, bool) {
	v, ok := a[name]
	return v, ok
}

// Int returns a required integer attribute.
func (a Attributes) Int(name string) (int64, error) {
	v, ok := a[name]
	if !ok {
		return 0, &MissingAttributeError{Name: name}
	}
	n, ok := v.Int()
	if !ok {
		return 0, &AttributeKindError{Name: name, Want: KindInteger, Got: v.Kind()}
	}
	return n, nil
}

// Text returns a required string attribute.
func (a Attributes) Text(name string) (string, error) {
	v, ok := a[name]
	if !ok {
		return "", &MissingAttributeError{Name: name}
	}
	s, ok := v.Text()
	if !ok {
		return "", &AttributeKindError{Name: name, Want: KindText, Got: v.Kind()}
	}
	return s, nil
}

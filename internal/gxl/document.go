package gxl

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
)

// Document is the root <gxl> element.
type Document struct {
	XMLName xml.Name `xml:"gxl"`
	Graphs  []Graph  `xml:"graph"`
}

// Graph is a <graph> element with its graph-level attributes.
type Graph struct {
	ID    string `xml:"id,attr"`
	Attrs []Attr `xml:"attr"`
	Nodes []Node `xml:"node"`
	Edges []Edge `xml:"edge"`
}

// Node is a <node> element.
type Node struct {
	ID    string `xml:"id,attr"`
	Attrs []Attr `xml:"attr"`
}

// Edge is an <edge> element.
type Edge struct {
	From  string `xml:"from,attr"`
	To    string `xml:"to,attr"`
	Attrs []Attr `xml:"attr"`
}

// Attr is a named <attr> element. Values holds every child element so that
// shape errors can be reported instead of being dropped by the decoder.
type Attr struct {
	Name   string     `xml:"name,attr"`
	Values []RawValue `xml:",any"`
}

// RawValue is one typed value child of an <attr>, e.g. <int>5</int>.
type RawValue struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// Tag returns the local element name of the value, e.g. "int".
func (v RawValue) Tag() string {
	return v.XMLName.Local
}

// Element is anything that carries GXL attributes.
type Element interface {
	RawAttributes() []Attr
}

func (g *Graph) RawAttributes() []Attr { return g.Attrs }
func (n *Node) RawAttributes() []Attr { return n.Attrs }
func (e *Edge) RawAttributes() []Attr { return e.Attrs }

// Decode reads a whole GXL document from r.
func Decode(r io.Reader) (*Document, error) {
	var doc Document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode GXL document: %w", err)
	}
	return &doc, nil
}

// ReadFile opens, decodes and closes the GXL file at path.
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// FirstGraph returns the first <graph> in the document. Exchange files in a
// fixture corpus hold a single graph each; any further graphs are ignored.
func (d *Document) FirstGraph() (*Graph, error) {
	if len(d.Graphs) == 0 {
		return nil, ErrNoGraph
	}
	return &d.Graphs[0], nil
}

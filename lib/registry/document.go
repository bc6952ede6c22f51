package registry

import (
	"errors"
	"io"
	"strings"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
)

const (
	partListTag  = "part_list"
	errorTag     = "ERROR"
	parameterTag = "parameter"
)

// Document is a parsed registry response. It is never mutated after Decode.
type Document struct {
	doc *etree.Document
}

// Decode parses a registry response. Encodings other than UTF-8 declared in the prolog are honoured.
func Decode(r io.Reader) (*Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, err
	}
	if doc.Root() == nil {
		return nil, errors.New("registry document has no root element")
	}
	return &Document{doc: doc}, nil
}

func (d *Document) Root() *etree.Element {
	return d.doc.Root()
}

// PartList returns the primary list node, or nil if the document has none.
func (d *Document) PartList() *etree.Element {
	return d.Root().SelectElement(partListTag)
}

// Parts returns the children of part_list. An error document has the ERROR node as its only child.
func (d *Document) Parts() []*etree.Element {
	partList := d.PartList()
	if partList == nil {
		return nil
	}
	return partList.ChildElements()
}

// Error reports the text of the registry's ERROR node.
func (d *Document) Error() (string, bool) {
	partList := d.PartList()
	if partList == nil {
		return "", false
	}
	e := partList.SelectElement(errorTag)
	if e == nil {
		return "", false
	}
	return strings.TrimSpace(e.Text()), true
}

// Parameter returns the value of the first parameter anywhere in the document whose name equals name.
func (d *Document) Parameter(name string) (string, bool) {
	for _, p := range d.Root().FindElements("//" + parameterTag) {
		n := p.SelectElement("name")
		if n == nil || n.Text() != name {
			continue
		}
		v := p.SelectElement("value")
		if v == nil {
			return "", false
		}
		return v.Text(), true
	}
	return "", false
}

// Find returns the first element matching path under the first child of part_list.
// A nil element with a nil error means nothing matched.
func (d *Document) Find(path string) (*etree.Element, error) {
	compiled, err := etree.CompilePath(path)
	if err != nil {
		return nil, err
	}
	parts := d.Parts()
	if len(parts) == 0 {
		return nil, nil
	}
	return parts[0].FindElementPath(compiled), nil
}

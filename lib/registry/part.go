package registry

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Aliases for attributes that live directly under the part element, plus the sequence path.
const (
	PartID            = "part_id"
	PartName          = "part_name"
	PartShortName     = "part_short_name"
	PartShortDesc     = "part_short_desc"
	PartType          = "part_type"
	UniProtID         = "uniprot_id"
	ReleaseStatus     = "release_status"
	SampleStatus      = "sample_status"
	PartResults       = "part_results"
	PartNickname      = "part_nickname"
	PartRating        = "part_rating"
	PartUrl           = "part_url"
	PartEntered       = "part_entered"
	PartAuthor        = "part_author"
	DeepSubparts      = "deep_subparts"
	SpecifiedSubparts = "specified_subparts"
	SpecifiedSubscars = "specified_subscars"
	SequenceData      = "sequences/seq_data"
)

// uniProtParameter is the parameter name the registry files UniProt accessions under.
const uniProtParameter = "swisspro"

// Part is a registry record. Use Client.Fetch to obtain one.
type Part struct {
	ID  string
	doc *Document
}

func NewPart(id string, doc *Document) *Part {
	return &Part{ID: id, doc: doc}
}

func (p *Part) Document() *Document {
	return p.doc
}

func (p *Part) String() string {
	return fmt.Sprintf("BioBrick object, ID: %s - for further information, use 'overview' method.", p.ID)
}

// Attribute returns the text of the first node matching path. The uniprot_id alias is resolved from the
// part's parameters rather than from the tree. Newlines are stripped from the result.
func (p *Part) Attribute(path string) (string, error) {
	if path == UniProtID {
		return p.UniProtID()
	}
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidPath)
	}

	el, err := p.doc.Find(path)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidPath, path, err)
	}
	if el == nil {
		return "", &AbsentError{Path: path}
	}
	return cleanText(el.Text()), nil
}

// UniProtID returns the accession stored in the swisspro parameter.
func (p *Part) UniProtID() (string, error) {
	v, ok := p.doc.Parameter(uniProtParameter)
	if !ok || strings.TrimSpace(v) == "" {
		return "", ErrNoUniProtID
	}
	return strings.TrimSpace(v), nil
}

func (p *Part) Sequence() (string, error) {
	return p.Attribute(SequenceData)
}

// Overview writes the most relevant attributes in a fixed layout.
func (p *Part) Overview(w io.Writer) error {
	lines := []struct {
		label string
		path  string
	}{
		{"Part ID  : ", PartName},
		{"Part Type: ", PartType},
		{"Part Nick: ", PartNickname},
		{"Part Desc: ", PartShortDesc},
		{"Part URL : ", PartUrl},
		{"Part Seq :\n", SequenceData},
	}
	for _, line := range lines {
		value, err := p.Attribute(line.path)
		var absent *AbsentError
		if errors.As(err, &absent) {
			value = absent.Message()
		} else if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s%s\n", line.label, value); err != nil {
			return err
		}
	}
	return nil
}

func cleanText(s string) string {
	s = strings.NewReplacer("\n", "", "\r", "").Replace(s)
	return norm.NFC.String(s)
}

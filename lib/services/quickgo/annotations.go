package quickgo

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
)

// Annotation is one row of a QuickGO annotation search.
type Annotation struct {
	GeneProductID string `json:"geneProductId"`
	Symbol        string `json:"symbol"`
	Qualifier     string `json:"qualifier"`
	GOID          string `json:"goId"`
	GOName        string `json:"goName"`
	GOEvidence    string `json:"goEvidence"`
	GOAspect      string `json:"goAspect"`
	EvidenceCode  string `json:"evidenceCode"`
	Reference     string `json:"reference"`
	TaxonID       int    `json:"taxonId"`
	AssignedBy    string `json:"assignedBy"`
}

// Column indexes a field of Annotation in table order.
type Column int

const (
	GeneProductID Column = iota
	Symbol
	Qualifier
	GOID
	GOName
	GOEvidence
	GOAspect
	EvidenceCode
	Reference
	TaxonID
	AssignedBy
)

var columnNames = []string{
	"GENE PRODUCT ID",
	"SYMBOL",
	"QUALIFIER",
	"GO TERM",
	"GO NAME",
	"GO EVIDENCE CODE",
	"GO ASPECT",
	"ECO ID",
	"REFERENCE",
	"TAXON ID",
	"ASSIGNED BY",
}

func (c Column) String() string {
	if c < 0 || int(c) >= len(columnNames) {
		return fmt.Sprintf("Column(%d)", int(c))
	}
	return columnNames[c]
}

func (a Annotation) Value(c Column) string {
	switch c {
	case GeneProductID:
		return a.GeneProductID
	case Symbol:
		return a.Symbol
	case Qualifier:
		return a.Qualifier
	case GOID:
		return a.GOID
	case GOName:
		return a.GOName
	case GOEvidence:
		return a.GOEvidence
	case GOAspect:
		return a.GOAspect
	case EvidenceCode:
		return a.EvidenceCode
	case Reference:
		return a.Reference
	case TaxonID:
		return strconv.Itoa(a.TaxonID)
	case AssignedBy:
		return a.AssignedBy
	}
	return ""
}

// Annotations is the tabular result of an annotation search, one row per annotation.
type Annotations []Annotation

// GOIDs returns the GO id of every row, in row order. Duplicates are kept so indexes line up with rows.
func (as Annotations) GOIDs() []string {
	ids := make([]string, len(as))
	for i, a := range as {
		ids[i] = a.GOID
	}
	return ids
}

// WriteColumns writes the selected columns as an aligned table with a header and a row index.
func (as Annotations) WriteColumns(w io.Writer, cols ...Column) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = c.String()
	}
	if _, err := fmt.Fprintf(tw, "\t%s\n", strings.Join(header, "\t")); err != nil {
		return err
	}

	row := make([]string, len(cols))
	for i, a := range as {
		for j, c := range cols {
			row[j] = a.Value(c)
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\n", i, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

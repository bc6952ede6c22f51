package seq

import (
	"fmt"

	bioseq "github.com/shenwei356/bio/seq"
)

// Table selects one of the NCBI genetic codes by its transl_table id.
type Table struct {
	ID   int
	Name string
}

var (
	Standard                = mustTable(1)
	VertebrateMitochondrial = mustTable(2)
	Bacterial               = mustTable(11)
)

func TableByID(id int) (Table, error) {
	t, ok := bioseq.CodonTables[id]
	if !ok {
		return Table{}, fmt.Errorf("unsupported translation table %d", id)
	}
	return Table{ID: t.ID, Name: t.Name}, nil
}

func mustTable(id int) Table {
	t, err := TableByID(id)
	if err != nil {
		panic(err)
	}
	return t
}

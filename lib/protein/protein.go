package protein

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/registry"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/seq"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services/pdb"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services/quickgo"
	"gitlab.mdcatapult.io/informatics/software-engineering/biobrick/lib/services/uniprot"
)

var (
	ErrStructureIndex = errors.New("structure index out of range")
	ErrTermIndex      = errors.New("GO term index out of range")
)

type UniProt interface {
	Entry(ctx context.Context, accession string, format uniprot.Format) ([]byte, error)
	PDBCrossReferences(ctx context.Context, accession string) ([]string, error)
	Search(ctx context.Context, query string, limit int) ([]string, error)
}

type PDB interface {
	File(ctx context.Context, id string, format pdb.Format) ([]byte, error)
}

type QuickGO interface {
	Annotations(ctx context.Context, accession string) (quickgo.Annotations, error)
}

type BioModels interface {
	ModelsByUniProt(ctx context.Context, accession string) ([]string, error)
}

// Services are the upstream clients a Protein derives its data from.
type Services struct {
	UniProt   UniProt
	PDB       PDB
	QuickGO   QuickGO
	BioModels BioModels
}

// Protein is a part whose sequence codes for a protein.
type Protein struct {
	*registry.Part
	services Services
}

func New(part *registry.Part, services Services) *Protein {
	return &Protein{
		Part:     part,
		services: services,
	}
}

func (p *Protein) String() string {
	return fmt.Sprintf("BioBrick protein object, ID: %s - for further information, use 'overview' method.", p.ID)
}

// Translate translates the part sequence, reading through stop codons.
func (p *Protein) Translate(table seq.Table) (string, error) {
	dna, err := p.Sequence()
	if err != nil {
		return "", err
	}
	return seq.Translate(dna, table)
}

// TranslateToStop translates the part sequence up to the first stop codon.
func (p *Protein) TranslateToStop(table seq.Table) (string, error) {
	dna, err := p.Sequence()
	if err != nil {
		return "", err
	}
	return seq.TranslateToStop(dna, table)
}

// UniProtOverview returns the UniProt entry for the part in the given format, unmodified.
func (p *Protein) UniProtOverview(ctx context.Context, format uniprot.Format) ([]byte, error) {
	accession, err := p.UniProtID()
	if err != nil {
		return nil, err
	}
	return p.services.UniProt.Entry(ctx, accession, format)
}

// Structures returns the PDB accessions mapped to the part's UniProt accession.
func (p *Protein) Structures(ctx context.Context) ([]string, error) {
	accession, err := p.UniProtID()
	if err != nil {
		return nil, err
	}
	return p.services.UniProt.PDBCrossReferences(ctx, accession)
}

func (p *Protein) StructureCount(ctx context.Context) (int, error) {
	ids, err := p.Structures(ctx)
	if err != nil {
		return 0, err
	}
	return len(ids), nil
}

// StructureFile downloads the n-th structure, counting from 1.
func (p *Protein) StructureFile(ctx context.Context, n int, format pdb.Format) ([]byte, error) {
	ids, err := p.Structures(ctx)
	if err != nil {
		return nil, err
	}
	if n < 1 || n > len(ids) {
		return nil, fmt.Errorf("%w: %d of %d", ErrStructureIndex, n, len(ids))
	}
	return p.services.PDB.File(ctx, ids[n-1], format)
}

func (p *Protein) GOAnnotations(ctx context.Context) (quickgo.Annotations, error) {
	accession, err := p.UniProtID()
	if err != nil {
		return nil, err
	}
	return p.services.QuickGO.Annotations(ctx, accession)
}

// PrintGOAttributes writes the GO id and name of every annotation as a table.
func (p *Protein) PrintGOAttributes(ctx context.Context, w io.Writer) error {
	annotations, err := p.GOAnnotations(ctx)
	if err != nil {
		return err
	}
	return annotations.WriteColumns(w, quickgo.GOID, quickgo.GOName)
}

// RelatedModels pairs model ids with the proteins they were found for.
// Models[i] lists the models that reference Proteins[i].
type RelatedModels struct {
	Models   [][]string `json:"models"`
	Proteins []string   `json:"proteins"`
}

// RelatedModels finds BioModels models containing proteins that share a GO term with this part.
// term indexes the part's GO annotations from 0 and limit caps the number of proteins searched.
func (p *Protein) RelatedModels(ctx context.Context, term, limit int) (RelatedModels, error) {
	var related RelatedModels

	accession, err := p.UniProtID()
	if err != nil {
		return related, err
	}

	annotations, err := p.services.QuickGO.Annotations(ctx, accession)
	if err != nil {
		return related, err
	}
	goIDs := annotations.GOIDs()
	if term < 0 || term >= len(goIDs) {
		return related, fmt.Errorf("%w: %d, part has %d annotations", ErrTermIndex, term, len(goIDs))
	}

	proteins, err := p.services.UniProt.Search(ctx, uniprot.GOTermQuery(goIDs[term]), limit)
	if err != nil {
		return related, err
	}

	for _, protein := range proteins {
		if protein == accession {
			continue
		}
		models, err := p.services.BioModels.ModelsByUniProt(ctx, protein)
		if err != nil {
			return RelatedModels{}, err
		}
		if len(models) == 0 {
			continue
		}
		related.Models = append(related.Models, models)
		related.Proteins = append(related.Proteins, protein)
	}

	log.Debug().
		Str("part", p.ID).
		Str("go_id", goIDs[term]).
		Int("searched", len(proteins)).
		Int("found", len(related.Proteins)).
		Msg("related models")

	return related, nil
}
